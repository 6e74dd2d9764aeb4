package feed_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/feed"
)

var _ = Describe("MetadataEnvelope", func() {
	Describe("ParseEnvelope", func() {
		It("parses nil as an empty envelope", func() {
			env, err := feed.ParseEnvelope(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(env.ExternalID).To(BeEmpty())
			Expect(env.Extra).To(BeNil())
		})

		It("lifts the known fields", func() {
			env, err := feed.ParseEnvelope(map[string]any{
				"external_id":  "39120001",
				"comments_url": "https://news.ycombinator.com/item?id=39120001",
				"tags":         []any{"go", "databases"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(env.ExternalID).To(Equal("39120001"))
			Expect(env.CommentsURL).To(Equal("https://news.ycombinator.com/item?id=39120001"))
			Expect(env.Tags).To(Equal([]string{"go", "databases"}))
		})

		It("preserves unknown fields in Extra", func() {
			env, err := feed.ParseEnvelope(map[string]any{
				"external_id": "1",
				"upvotes":     float64(42),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(env.Extra).To(HaveKeyWithValue("upvotes", float64(42)))
		})

		It("rejects a known field of the wrong type", func() {
			_, err := feed.ParseEnvelope(map[string]any{"external_id": 42})
			Expect(err).To(HaveOccurred())

			_, err = feed.ParseEnvelope(map[string]any{"tags": "not-a-list"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("AsMap", func() {
		It("round-trips through ParseEnvelope", func() {
			raw := map[string]any{
				"external_id": "7",
				"tags":        []any{"go"},
				"upvotes":     float64(3),
			}
			env, err := feed.ParseEnvelope(raw)
			Expect(err).NotTo(HaveOccurred())

			again, err := feed.ParseEnvelope(env.AsMap())
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(env))
		})

		It("flattens an empty envelope to nil", func() {
			Expect(feed.MetadataEnvelope{}.AsMap()).To(BeNil())
		})
	})

	Describe("MarshalJSON", func() {
		It("serializes as the source's original field names", func() {
			env, err := feed.ParseEnvelope(map[string]any{
				"external_id": "7",
				"upvotes":     float64(3),
			})
			Expect(err).NotTo(HaveOccurred())

			data, err := json.Marshal(env)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(MatchJSON(`{"external_id": "7", "upvotes": 3}`))
		})

		It("serializes an empty envelope as null", func() {
			data, err := json.Marshal(feed.MetadataEnvelope{})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("null"))
		})
	})
})
