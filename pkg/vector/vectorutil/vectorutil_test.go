package vectorutil_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/vector/vectorutil"
)

func TestVectorutil(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Vectorutil Suite")
}

var _ = Describe("Cosine", func() {
	It("is 1 for parallel vectors regardless of magnitude", func() {
		Expect(vectorutil.Cosine([]float32{1, 2, 3}, []float32{2, 4, 6})).To(BeNumerically("~", 1.0, 1e-9))
	})

	It("is 0 for orthogonal vectors", func() {
		Expect(vectorutil.Cosine([]float32{1, 0}, []float32{0, 1})).To(BeNumerically("~", 0.0, 1e-9))
	})

	It("is -1 for opposed vectors", func() {
		Expect(vectorutil.Cosine([]float32{1, 1}, []float32{-1, -1})).To(BeNumerically("~", -1.0, 1e-9))
	})

	It("returns 0 on length mismatch or zero vectors", func() {
		Expect(vectorutil.Cosine([]float32{1, 2}, []float32{1, 2, 3})).To(BeZero())
		Expect(vectorutil.Cosine(nil, nil)).To(BeZero())
		Expect(vectorutil.Cosine([]float32{0, 0}, []float32{1, 1})).To(BeZero())
	})
})

var _ = Describe("WeightedCentroid", func() {
	It("averages equally weighted vectors", func() {
		c := vectorutil.WeightedCentroid([][]float32{{1, 0}, {0, 1}}, []float64{1, 1})
		Expect(c).To(HaveLen(2))
		Expect(c[0]).To(BeNumerically("~", 0.5, 1e-6))
		Expect(c[1]).To(BeNumerically("~", 0.5, 1e-6))
	})

	It("pulls the centroid toward heavier vectors", func() {
		c := vectorutil.WeightedCentroid([][]float32{{1, 0}, {0, 1}}, []float64{3, 1})
		Expect(c[0]).To(BeNumerically("~", 0.75, 1e-6))
		Expect(c[1]).To(BeNumerically("~", 0.25, 1e-6))
	})

	It("skips vectors whose dimension disagrees", func() {
		c := vectorutil.WeightedCentroid([][]float32{{1, 0}, {1, 2, 3}}, []float64{1, 1})
		Expect(c).To(Equal([]float32{1, 0}))
	})

	It("returns nil when nothing contributes", func() {
		Expect(vectorutil.WeightedCentroid(nil, nil)).To(BeNil())
		Expect(vectorutil.WeightedCentroid([][]float32{{1, 1}}, []float64{1, 1})).To(BeNil())
		Expect(vectorutil.WeightedCentroid([][]float32{{1, 1}}, []float64{0})).To(BeNil())
		Expect(vectorutil.WeightedCentroid([][]float32{{}}, []float64{1})).To(BeNil())
	})
})
