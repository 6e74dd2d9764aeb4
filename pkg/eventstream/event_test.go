package eventstream_test

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/eventstream"
	"github.com/perusehq/peruse/pkg/eventstream/nop"
)

func TestEventstream(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Eventstream Suite")
}

var _ = Describe("ArticleIngestedEvent", func() {
	It("serializes the versioned envelope fields", func() {
		event := eventstream.ArticleIngestedEvent{
			SchemaVersion: eventstream.SchemaVersionV1,
			EventType:     eventstream.EventTypeArticleIngested,
			EventID:       "evt-1",
			EmittedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			ArticleID:     42,
			URL:           "https://example.com/a",
			SourceKey:     "hn",
			NewArticle:    true,
			ChunkCount:    3,
		}

		raw, err := json.Marshal(event)
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		Expect(decoded["schema_version"]).To(BeEquivalentTo(1))
		Expect(decoded["event_type"]).To(Equal("peruse.article.ingested"))
		Expect(decoded["article_id"]).To(BeEquivalentTo(42))
		Expect(decoded["new_article"]).To(BeTrue())
		Expect(decoded["chunk_count"]).To(BeEquivalentTo(3))
		Expect(decoded["emitted_at"]).To(Equal("2026-01-02T03:04:05Z"))
	})
})

var _ = Describe("nop publisher", func() {
	It("accepts events and rejects nil", func() {
		p := nop.NewPublisher()
		defer p.Close()

		err := p.PublishArticleIngested(nil, &eventstream.ArticleIngestedEvent{})
		Expect(err).NotTo(HaveOccurred())

		err = p.PublishArticleIngested(nil, nil)
		Expect(err).To(MatchError(eventstream.ErrNilEvent))
	})
})
