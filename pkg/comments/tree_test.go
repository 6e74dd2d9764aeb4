package comments_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/comments"
)

var _ = Describe("BuildTree", func() {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	comment := func(id int, parentID *int, upvote int, minutes int) *comments.Comment {
		return &comments.Comment{
			ID:        id,
			ParentID:  parentID,
			Upvote:    upvote,
			CreatedAt: base.Add(time.Duration(minutes) * time.Minute),
		}
	}
	ptr := func(i int) *int { return &i }

	It("nests children under their parents regardless of input order", func() {
		flat := []*comments.Comment{
			comment(3, ptr(1), 0, 30),
			comment(1, nil, 0, 10),
			comment(4, ptr(3), 0, 40),
			comment(2, ptr(1), 0, 20),
		}

		roots := comments.BuildTree(flat, comments.SortBest)
		Expect(roots).To(HaveLen(1))
		Expect(roots[0].ID).To(Equal(1))
		Expect(roots[0].Children).To(HaveLen(2))
		Expect(roots[0].Children[0].ID).To(Equal(2))
		Expect(roots[0].Children[1].ID).To(Equal(3))
		Expect(roots[0].Children[1].Children[0].ID).To(Equal(4))
	})

	It("derives depth from nesting, with roots at zero", func() {
		flat := []*comments.Comment{
			comment(1, nil, 0, 10),
			comment(2, ptr(1), 0, 20),
			comment(3, ptr(2), 0, 30),
			comment(4, nil, 0, 40),
		}

		roots := comments.BuildTree(flat, comments.SortBest)
		Expect(roots[0].Depth).To(Equal(0))
		Expect(roots[1].Depth).To(Equal(0))
		Expect(roots[0].Children[0].Depth).To(Equal(1))
		Expect(roots[0].Children[0].Children[0].Depth).To(Equal(2))
	})

	It("drops orphans whose parent is missing", func() {
		flat := []*comments.Comment{
			comment(1, nil, 0, 10),
			comment(2, ptr(99), 0, 20),
		}

		roots := comments.BuildTree(flat, comments.SortBest)
		Expect(roots).To(HaveLen(1))
		Expect(roots[0].ID).To(Equal(1))
	})

	It("returns an empty slice for no comments", func() {
		Expect(comments.BuildTree(nil, comments.SortBest)).To(BeEmpty())
	})

	It("orders best by upvotes, then oldest, then id", func() {
		flat := []*comments.Comment{
			comment(1, nil, 1, 10),
			comment(2, nil, 5, 20),
			comment(3, nil, 1, 5),
			comment(4, nil, 1, 5),
		}

		roots := comments.BuildTree(flat, comments.SortBest)
		ids := []int{roots[0].ID, roots[1].ID, roots[2].ID, roots[3].ID}
		Expect(ids).To(Equal([]int{2, 3, 4, 1}))
	})

	It("orders new by creation time descending, then id descending", func() {
		flat := []*comments.Comment{
			comment(1, nil, 9, 10),
			comment(2, nil, 0, 30),
			comment(3, nil, 0, 30),
		}

		roots := comments.BuildTree(flat, comments.SortNew)
		ids := []int{roots[0].ID, roots[1].ID, roots[2].ID}
		Expect(ids).To(Equal([]int{3, 2, 1}))
	})

	It("applies the sort at every level of the tree", func() {
		flat := []*comments.Comment{
			comment(1, nil, 0, 10),
			comment(2, ptr(1), 2, 20),
			comment(3, ptr(1), 7, 30),
		}

		roots := comments.BuildTree(flat, comments.SortBest)
		Expect(roots[0].Children[0].ID).To(Equal(3))
		Expect(roots[0].Children[1].ID).To(Equal(2))
	})
})

var _ = Describe("ParseSort", func() {
	It("defaults the empty string to best", func() {
		s, err := comments.ParseSort("")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(comments.SortBest))
	})

	It("accepts best and new", func() {
		for _, name := range []string{"best", "new"} {
			s, err := comments.ParseSort(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(s)).To(Equal(name))
		}
	})

	It("rejects unknown sorts", func() {
		_, err := comments.ParseSort("controversial")
		Expect(err).To(MatchError(comments.ErrInvalidSort))
	})
})
