package feed_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/ingest"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
	vectorinmemory "github.com/perusehq/peruse/pkg/vector/inmemory"
)

var _ = Describe("Ranker", func() {
	var (
		ctx     context.Context
		driver  *inmemory.Driver
		vectors *vectorinmemory.Driver
		ing     *ingest.Service
		ranker  *feed.Ranker
	)

	score := func(s float64) *float64 { return &s }

	submit := func(url, sourceKey string, external *float64, age time.Duration, embedding []float32) *feed.Article {
		sub := ingest.Submission{
			URL:           url,
			Title:         url,
			SourceKey:     sourceKey,
			ExternalScore: external,
			SubmittedAt:   time.Now().Add(-age),
		}
		if embedding != nil {
			sub.Embeddings = [][]float32{embedding}
		}
		article, err := ing.Ingest(ctx, sub)
		Expect(err).NotTo(HaveOccurred())
		return article
	}

	rank := func(q feed.Query) []feed.FeedItem {
		page, err := ranker.Rank(ctx, q)
		Expect(err).NotTo(HaveOccurred())
		return page.Items
	}

	urls := func(items []feed.FeedItem) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.URL)
		}
		return out
	}

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		vectors = vectorinmemory.NewDriver()
		ing = ingest.NewService(driver, vectors, nil, zap.NewNop())
		ranker = feed.NewRanker(feed.DefaultConfig(), driver, driver, driver, vectors, zap.NewNop())
	})

	Describe("query validation", func() {
		It("rejects an unknown preset", func() {
			_, err := ranker.Rank(ctx, feed.Query{Limit: 10, Preset: "spicy"})
			Expect(err).To(MatchError(feed.ErrInvalidPreset))
		})

		It("rejects an unregistered source filter", func() {
			_, err := ranker.Rank(ctx, feed.Query{Limit: 10, Source: "nope"})
			Expect(err).To(MatchError(feed.ErrInvalidSource))
		})

		It("rejects a negative offset", func() {
			_, err := ranker.Rank(ctx, feed.Query{Offset: -1, Limit: 10})
			Expect(err).To(MatchError(feed.ErrInvalidPage))
		})

		It("rejects a non-positive limit", func() {
			_, err := ranker.Rank(ctx, feed.Query{Limit: 0})
			Expect(err).To(MatchError(feed.ErrInvalidPage))
		})

		It("serves an empty store as an empty page", func() {
			items := rank(feed.Query{Limit: 10})
			Expect(items).To(BeEmpty())
		})
	})

	Describe("newer_first", func() {
		It("orders strictly by submission time descending", func() {
			submit("https://a.example/old", "hn", score(900), 72*time.Hour, nil)
			submit("https://a.example/new", "hn", score(1), 1*time.Hour, nil)
			submit("https://a.example/mid", "hn", score(500), 24*time.Hour, nil)

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetNewerFirst})
			Expect(urls(items)).To(Equal([]string{
				"https://a.example/new",
				"https://a.example/mid",
				"https://a.example/old",
			}))
		})

		It("breaks submission-time ties by article id descending", func() {
			at := 6 * time.Hour
			submit("https://a.example/one", "hn", nil, at, nil)
			submit("https://a.example/two", "hn", nil, at, nil)

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetNewerFirst})
			Expect(items[0].ID).To(BeNumerically(">", items[1].ID))
		})
	})

	Describe("top_first", func() {
		It("orders by best external score descending", func() {
			submit("https://a.example/low", "hn", score(10), 1*time.Hour, nil)
			submit("https://a.example/high", "hn", score(400), 48*time.Hour, nil)
			submit("https://a.example/mid", "hn", score(90), 2*time.Hour, nil)

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetTopFirst})
			Expect(urls(items)).To(Equal([]string{
				"https://a.example/high",
				"https://a.example/mid",
				"https://a.example/low",
			}))
		})

		It("sorts unscored articles after every scored one", func() {
			submit("https://a.example/unscored", "blog", nil, 1*time.Hour, nil)
			submit("https://a.example/scored", "hn", score(3), 90*time.Hour, nil)

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetTopFirst})
			Expect(urls(items)).To(Equal([]string{
				"https://a.example/scored",
				"https://a.example/unscored",
			}))
		})
	})

	Describe("balanced", func() {
		It("defaults to balanced for an empty preset", func() {
			submit("https://a.example/only", "hn", nil, 1*time.Hour, nil)

			items := rank(feed.Query{Limit: 10})
			Expect(items).To(HaveLen(1))
		})

		It("ranks an article that wins every signal first", func() {
			submit("https://a.example/stale", "hn", score(2), 200*time.Hour, nil)
			submit("https://a.example/winner", "hn", score(500), 1*time.Hour, nil)

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetBalanced})
			Expect(items[0].URL).To(Equal("https://a.example/winner"))
		})

		It("breaks identical signals by article id descending", func() {
			submit("https://a.example/first", "hn", score(50), 10*time.Hour, nil)
			submit("https://a.example/second", "hn", score(50), 10*time.Hour, nil)

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetBalanced})
			Expect(items[0].ID).To(BeNumerically(">", items[1].ID))
		})
	})

	Describe("similar_first", func() {
		readHistory := func(url string, embedding []float32, weight float64) {
			article := submit(url, "hn", nil, 48*time.Hour, embedding)
			_, err := ing.RecordHistory(ctx, article.ID, weight)
			Expect(err).NotTo(HaveOccurred())
		}

		It("ranks candidates nearest the history centroid first", func() {
			readHistory("https://a.example/read", []float32{1, 0, 0, 0}, 1)
			submit("https://a.example/near", "hn", nil, 30*time.Hour, []float32{1, 0, 0, 0})
			submit("https://a.example/far", "hn", score(999), 1*time.Hour, []float32{0, 1, 0, 0})

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetSimilarFirst, Authenticated: true})
			Expect(urls(items)).To(Equal([]string{
				"https://a.example/near",
				"https://a.example/far",
			}))
			Expect(items[0].SimilarityScore).NotTo(BeNil())
			Expect(*items[0].SimilarityScore).To(BeNumerically("~", 1.0, 1e-6))
		})

		It("keeps history articles out of the page", func() {
			readHistory("https://a.example/read", []float32{1, 0, 0, 0}, 1)
			submit("https://a.example/near", "hn", nil, 30*time.Hour, []float32{1, 0, 0, 0})

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetSimilarFirst, Authenticated: true})
			Expect(urls(items)).NotTo(ContainElement("https://a.example/read"))
		})

		It("degrades to balanced when there is no history", func() {
			submit("https://a.example/stale", "hn", score(2), 200*time.Hour, []float32{0, 1, 0, 0})
			submit("https://a.example/winner", "hn", score(500), 1*time.Hour, []float32{1, 0, 0, 0})

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetSimilarFirst, Authenticated: true})
			Expect(items[0].URL).To(Equal("https://a.example/winner"))
		})

		It("degrades to balanced for unauthenticated requests", func() {
			readHistory("https://a.example/read", []float32{1, 0, 0, 0}, 1)
			submit("https://a.example/near", "hn", score(2), 200*time.Hour, []float32{1, 0, 0, 0})
			submit("https://a.example/loud", "hn", score(500), 1*time.Hour, []float32{0, 1, 0, 0})

			items := rank(feed.Query{Limit: 10, Preset: feed.PresetSimilarFirst})
			Expect(items[0].URL).To(Equal("https://a.example/loud"))
		})
	})

	Describe("source filter", func() {
		It("restricts the page to one source", func() {
			submit("https://a.example/hn", "hn", score(10), 1*time.Hour, nil)
			submit("https://a.example/blog", "blog", nil, 2*time.Hour, nil)

			items := rank(feed.Query{Limit: 10, Source: "hn"})
			Expect(urls(items)).To(Equal([]string{"https://a.example/hn"}))
		})

		It("treats the all filter as no filter", func() {
			submit("https://a.example/hn", "hn", score(10), 1*time.Hour, nil)
			submit("https://a.example/blog", "blog", nil, 2*time.Hour, nil)

			items := rank(feed.Query{Limit: 10, Source: feed.SourceAll})
			Expect(items).To(HaveLen(2))
		})
	})

	Describe("pagination", func() {
		BeforeEach(func() {
			for i, u := range []string{"a", "b", "c", "d", "e"} {
				submit("https://a.example/"+u, "hn", nil, time.Duration(i+1)*time.Hour, nil)
			}
		})

		It("serves disjoint consecutive pages", func() {
			first := rank(feed.Query{Limit: 2, Preset: feed.PresetNewerFirst})
			second := rank(feed.Query{Offset: 2, Limit: 2, Preset: feed.PresetNewerFirst})
			third := rank(feed.Query{Offset: 4, Limit: 2, Preset: feed.PresetNewerFirst})

			Expect(first).To(HaveLen(2))
			Expect(second).To(HaveLen(2))
			Expect(third).To(HaveLen(1))

			seen := map[int]bool{}
			for _, it := range append(append(first, second...), third...) {
				Expect(seen[it.ID]).To(BeFalse())
				seen[it.ID] = true
			}
		})

		It("serves an offset past the window as an empty page", func() {
			items := rank(feed.Query{Offset: 50, Limit: 10})
			Expect(items).To(BeEmpty())
		})
	})
})
