package inmemory_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/vector"
	"github.com/perusehq/peruse/pkg/vector/inmemory"
)

func TestInmemory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Vector Inmemory Suite")
}

var _ = Describe("Driver", func() {
	var (
		ctx    context.Context
		driver *inmemory.Driver
	)

	seed := func() {
		Expect(driver.Add(ctx, []vector.Document{
			{ID: "x", ArticleID: 1, Embedding: []float32{1, 0}},
			{ID: "y", ArticleID: 2, Embedding: []float32{0, 1}},
			{ID: "z", ArticleID: 3, Embedding: []float32{0.9, 0.1}},
		})).To(Succeed())
	}

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		seed()
	})

	It("ranks query results by cosine similarity", func() {
		results, err := driver.Query(ctx, []float32{1, 0}, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(3))
		Expect(results[0].ID).To(Equal("x"))
		Expect(results[1].ID).To(Equal("z"))
		Expect(results[2].ID).To(Equal("y"))
		Expect(results[0].Score).To(BeNumerically("~", 1.0, 1e-6))
	})

	It("caps results at topK", func() {
		results, err := driver.Query(ctx, []float32{1, 0}, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].ID).To(Equal("x"))
	})

	It("replaces documents added under an existing ID", func() {
		Expect(driver.Add(ctx, []vector.Document{
			{ID: "x", ArticleID: 1, Embedding: []float32{0, 1}},
		})).To(Succeed())

		docs, err := driver.Get(ctx, []string{"x"})
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(1))
		Expect(docs[0].Embedding).To(Equal([]float32{0, 1}))
	})

	It("skips missing IDs on Get", func() {
		docs, err := driver.Get(ctx, []string{"x", "missing", "y"})
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(2))
	})

	It("deletes documents by ID", func() {
		Expect(driver.Delete(ctx, []string{"x", "missing"})).To(Succeed())

		results, err := driver.Query(ctx, []float32{1, 0}, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		for _, r := range results {
			Expect(r.ID).NotTo(Equal("x"))
		}
	})
})
