package backfill_test

import (
	"context"
	"strconv"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/backfill"
	"github.com/perusehq/peruse/pkg/ingest"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
	vectorinmemory "github.com/perusehq/peruse/pkg/vector/inmemory"
)

func TestBackfill(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Backfill Suite")
}

var _ = Describe("Reindexer", func() {
	var (
		ctx     context.Context
		driver  *inmemory.Driver
		vectors *vectorinmemory.Driver
	)

	// seedChunks ingests n articles with one embedded chunk each, without
	// touching the vector index.
	seedChunks := func(n int) {
		ingestor := ingest.NewService(driver, nil, nil, zap.NewNop())
		for i := 0; i < n; i++ {
			_, err := ingestor.Ingest(ctx, ingest.Submission{
				URL:        "https://example.com/" + strconv.Itoa(i),
				Title:      "article " + strconv.Itoa(i),
				SourceKey:  "hn",
				Embeddings: [][]float32{{float32(i), 1}},
			})
			Expect(err).NotTo(HaveOccurred())
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		vectors = vectorinmemory.NewDriver()
	})

	It("mirrors every embedded chunk into the vector index", func() {
		seedChunks(5)

		r := backfill.NewReindexer(driver, vectors, backfill.Options{}, zap.NewNop())
		result, err := r.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Scanned).To(Equal(5))
		Expect(result.Mirrored).To(Equal(5))
		Expect(result.Skipped).To(BeZero())

		chunks, err := driver.ListChunks(ctx, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(chunks).To(HaveLen(5))

		for _, ch := range chunks {
			docs, err := vectors.Get(ctx, []string{ch.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(1))
			Expect(docs[0].ArticleID).To(Equal(ch.ArticleID))
		}
	})

	It("walks the table in batches", func() {
		seedChunks(5)

		r := backfill.NewReindexer(driver, vectors, backfill.Options{BatchSize: 2}, zap.NewNop())
		result, err := r.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Mirrored).To(Equal(5))
		Expect(result.Batches).To(Equal(3))
	})

	It("leaves the index untouched on a dry run", func() {
		seedChunks(3)

		r := backfill.NewReindexer(driver, vectors, backfill.Options{DryRun: true}, zap.NewNop())
		result, err := r.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Mirrored).To(Equal(3))

		results, err := vectors.Query(ctx, []float32{1, 1}, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(BeEmpty())
	})

	It("finishes cleanly on an empty store", func() {
		r := backfill.NewReindexer(driver, vectors, backfill.Options{}, zap.NewNop())
		result, err := r.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Scanned).To(BeZero())
		Expect(result.Summary()).To(ContainSubstring("0 chunks scanned"))
	})
})
