package seedcmder_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	seedcmder "github.com/perusehq/peruse/cmd/peruse/seed"
	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/eventstream/nop"
	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/ingest"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
	vectorinmemory "github.com/perusehq/peruse/pkg/vector/inmemory"
)

func TestSeed(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Seed Suite")
}

var _ = Describe("SeedDemo", func() {
	var (
		ctx     context.Context
		driver  *inmemory.Driver
		vectors *vectorinmemory.Driver
		ing     *ingest.Service
		cs      *comments.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		vectors = vectorinmemory.NewDriver()
		ing = ingest.NewService(driver, vectors, nop.NewPublisher(), zap.NewNop())
		cs = comments.NewService(driver, storage.DefaultRetryConfig(), zap.NewNop())
	})

	It("seeds articles, history, and a comment thread", func() {
		summary, err := seedcmder.SeedDemo(ctx, ing, cs)
		Expect(err).NotTo(HaveOccurred())

		Expect(summary.Articles).To(Equal(8))
		Expect(summary.HistoryEntries).To(Equal(2))
		Expect(summary.Comments).To(Equal(2))
	})

	It("keeps history articles out of the candidate window", func() {
		_, err := seedcmder.SeedDemo(ctx, ing, cs)
		Expect(err).NotTo(HaveOccurred())

		candidates, err := driver.ListCandidates(ctx, feed.CandidateQuery{Limit: 100})
		Expect(err).NotTo(HaveOccurred())
		Expect(candidates).To(HaveLen(6))
		for _, a := range candidates {
			Expect(a.URL).NotTo(Equal("https://example.com/articles/viper-precedence"))
			Expect(a.URL).NotTo(Equal("https://example.com/articles/kafka-keys"))
		}
	})

	It("mirrors chunk embeddings into the vector index", func() {
		_, err := seedcmder.SeedDemo(ctx, ing, cs)
		Expect(err).NotTo(HaveOccurred())

		chunks, err := driver.ChunksByArticles(ctx, []int{1})
		Expect(err).NotTo(HaveOccurred())
		Expect(chunks).To(HaveLen(1))

		docs, err := vectors.Get(ctx, []string{chunks[0].ID})
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(1))
		Expect(docs[0].ArticleID).To(Equal(1))
	})

	It("threads the demo reply under the root comment", func() {
		_, err := seedcmder.SeedDemo(ctx, ing, cs)
		Expect(err).NotTo(HaveOccurred())

		tree, err := cs.Thread(ctx, comments.ThreadQuery{
			Category: "blog",
			Slug:     "hello-peruse",
		}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(tree).To(HaveLen(1))
		Expect(tree[0].Children).To(HaveLen(1))
	})

	It("is idempotent for articles on reseed", func() {
		_, err := seedcmder.SeedDemo(ctx, ing, cs)
		Expect(err).NotTo(HaveOccurred())

		summary, err := seedcmder.SeedDemo(ctx, ing, cs)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Articles).To(Equal(8))

		candidates, err := driver.ListCandidates(ctx, feed.CandidateQuery{Limit: 100})
		Expect(err).NotTo(HaveOccurred())
		Expect(candidates).To(HaveLen(6))
	})
})
