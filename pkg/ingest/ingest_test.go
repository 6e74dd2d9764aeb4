package ingest_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/eventstream"
	"github.com/perusehq/peruse/pkg/eventstream/nop"
	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/ingest"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
	vectorinmemory "github.com/perusehq/peruse/pkg/vector/inmemory"
)

func TestIngest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ingest Suite")
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	events []*eventstream.ArticleIngestedEvent
}

func (p *capturePublisher) PublishArticleIngested(_ context.Context, e *eventstream.ArticleIngestedEvent) error {
	p.events = append(p.events, e)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

var _ = Describe("Service", func() {
	var (
		ctx       context.Context
		driver    *inmemory.Driver
		vectors   *vectorinmemory.Driver
		publisher *capturePublisher
		service   *ingest.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		vectors = vectorinmemory.NewDriver()
		publisher = &capturePublisher{}
		service = ingest.NewService(driver, vectors, publisher, zap.NewNop())
	})

	Describe("Ingest", func() {
		submission := func() ingest.Submission {
			score := 42.0
			return ingest.Submission{
				URL:           "https://example.com/a",
				Title:         "A",
				ContentText:   "body",
				SourceKey:     "hn",
				SourceName:    "Hacker News",
				ExternalScore: &score,
				SubmittedAt:   time.Now().Add(-time.Hour),
				Metadata:      map[string]any{"external_id": "101"},
				Embeddings:    [][]float32{{1, 0}, {0, 1}},
			}
		}

		It("requires a url and a source key", func() {
			_, err := service.Ingest(ctx, ingest.Submission{SourceKey: "hn"})
			Expect(err).To(HaveOccurred())

			_, err = service.Ingest(ctx, ingest.Submission{URL: "https://example.com/a"})
			Expect(err).To(HaveOccurred())
		})

		It("persists the article with its source metadata", func() {
			article, err := service.Ingest(ctx, submission())
			Expect(err).NotTo(HaveOccurred())

			Expect(article.ID).NotTo(BeZero())
			Expect(article.Sources).To(HaveLen(1))
			Expect(article.Sources[0].SourceKey).To(Equal("hn"))

			got, err := driver.GetSourceByKey(ctx, "hn")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Hacker News"))
		})

		It("rejects malformed metadata at the boundary", func() {
			sub := submission()
			sub.Metadata = map[string]any{"external_id": 101}

			_, err := service.Ingest(ctx, sub)
			Expect(err).To(HaveOccurred())
		})

		It("deduplicates by url across sources", func() {
			first, err := service.Ingest(ctx, submission())
			Expect(err).NotTo(HaveOccurred())

			sub := submission()
			sub.SourceKey = "lobsters"
			sub.SourceName = "Lobsters"
			second, err := service.Ingest(ctx, sub)
			Expect(err).NotTo(HaveOccurred())

			Expect(second.ID).To(Equal(first.ID))
			Expect(second.Sources).To(HaveLen(2))
		})

		It("replaces chunks and mirrors them into the vector index", func() {
			article, err := service.Ingest(ctx, submission())
			Expect(err).NotTo(HaveOccurred())

			chunks, err := driver.ChunksByArticles(ctx, []int{article.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(chunks).To(HaveLen(2))

			results, err := vectors.Query(ctx, []float32{1, 0}, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].ArticleID).To(Equal(article.ID))

			// Re-ingesting replaces rather than accumulates.
			sub := submission()
			sub.Embeddings = [][]float32{{0.5, 0.5}}
			_, err = service.Ingest(ctx, sub)
			Expect(err).NotTo(HaveOccurred())

			chunks, err = driver.ChunksByArticles(ctx, []int{article.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(chunks).To(HaveLen(1))

			// The replaced documents are evicted from the index too.
			results, err = vectors.Query(ctx, []float32{1, 0}, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			Expect(results[0].ID).To(Equal(chunks[0].ID))
		})

		It("publishes an ingestion event", func() {
			article, err := service.Ingest(ctx, submission())
			Expect(err).NotTo(HaveOccurred())

			Expect(publisher.events).To(HaveLen(1))
			e := publisher.events[0]
			Expect(e.EventType).To(Equal(eventstream.EventTypeArticleIngested))
			Expect(e.SchemaVersion).To(Equal(eventstream.SchemaVersionV1))
			Expect(e.ArticleID).To(Equal(article.ID))
			Expect(e.SourceKey).To(Equal("hn"))
			Expect(e.NewArticle).To(BeTrue())
			Expect(e.ChunkCount).To(Equal(2))
			Expect(e.EventID).NotTo(BeEmpty())

			_, err = service.Ingest(ctx, submission())
			Expect(err).NotTo(HaveOccurred())
			Expect(publisher.events[1].NewArticle).To(BeFalse())
		})

		It("works with the side effects disabled", func() {
			bare := ingest.NewService(driver, nil, nop.NewPublisher(), zap.NewNop())

			_, err := bare.Ingest(ctx, submission())
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("RecordHistory", func() {
		It("appends a weighted entry", func() {
			article, err := service.Ingest(ctx, ingest.Submission{
				URL: "https://example.com/a", SourceKey: "hn",
			})
			Expect(err).NotTo(HaveOccurred())

			entry, err := service.RecordHistory(ctx, article.ID, 0.7)
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.Weight).To(Equal(0.7))

			entries, err := driver.ListHistory(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})

		It("rejects history for an unknown article", func() {
			_, err := service.RecordHistory(ctx, 999, 1)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("candidate exclusion", func() {
		It("keeps history articles out of the feed window", func() {
			a, err := service.Ingest(ctx, ingest.Submission{URL: "https://example.com/a", SourceKey: "hn"})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Ingest(ctx, ingest.Submission{URL: "https://example.com/b", SourceKey: "hn"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.RecordHistory(ctx, a.ID, 1)
			Expect(err).NotTo(HaveOccurred())

			candidates, err := driver.ListCandidates(ctx, feed.CandidateQuery{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(candidates).To(HaveLen(1))
			Expect(candidates[0].URL).To(Equal("https://example.com/b"))
		})
	})
})
