package feed_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/feed"
)

var _ = Describe("ParsePreset", func() {
	It("maps the empty string to balanced", func() {
		preset, err := feed.ParsePreset("")
		Expect(err).NotTo(HaveOccurred())
		Expect(preset).To(Equal(feed.PresetBalanced))
	})

	It("accepts every named preset", func() {
		for _, name := range []string{"balanced", "top_first", "newer_first", "similar_first"} {
			preset, err := feed.ParsePreset(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(preset)).To(Equal(name))
		}
	})

	It("rejects unknown presets instead of defaulting", func() {
		_, err := feed.ParsePreset("hot")
		Expect(err).To(MatchError(feed.ErrInvalidPreset))
	})
})

var _ = Describe("Query validation", func() {
	It("accepts sane pagination", func() {
		Expect(feed.Query{Limit: 30}.Validate()).To(Succeed())
		Expect(feed.Query{Offset: 60, Limit: 30}.Validate()).To(Succeed())
	})

	It("rejects negative offsets and non-positive limits", func() {
		Expect(feed.Query{Offset: -1, Limit: 30}.Validate()).To(MatchError(feed.ErrInvalidPage))
		Expect(feed.Query{Limit: 0}.Validate()).To(MatchError(feed.ErrInvalidPage))
		Expect(feed.Query{Limit: -5}.Validate()).To(MatchError(feed.ErrInvalidPage))
	})
})
