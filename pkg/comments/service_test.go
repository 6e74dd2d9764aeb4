package comments_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/identity"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
)

var _ = Describe("Service", func() {
	var (
		ctx     context.Context
		driver  *inmemory.Driver
		service *comments.Service
		alice   *identity.Identity
		bob     *identity.Identity
		admin   *identity.Identity
	)

	newIdentity := func(email, name string) *identity.Identity {
		id, err := driver.CreateIdentity(ctx, email, name)
		Expect(err).NotTo(HaveOccurred())
		return id
	}

	create := func(req comments.CreateRequest, viewer *identity.Identity) *comments.Comment {
		c, err := service.Create(ctx, req, viewer)
		Expect(err).NotTo(HaveOccurred())
		return c
	}

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		service = comments.NewService(driver, storage.DefaultRetryConfig(), zap.NewNop())

		alice = newIdentity("alice@example.com", "Alice")
		bob = newIdentity("bob@example.com", "Bob")
		admin = newIdentity("admin@example.com", "Admin")
		driver.SetSiteOwner(admin.ID, true)
		admin.SiteOwner = true
	})

	Describe("Create", func() {
		It("creates an anonymous comment with an author name", func() {
			c := create(comments.CreateRequest{
				Category:    "blog",
				Slug:        "hello",
				Content:     "  first  ",
				AuthorName:  " anon ",
				AuthorEmail: " Anon@Example.COM ",
			}, nil)

			Expect(c.ID).NotTo(BeZero())
			Expect(c.Content).To(Equal("first"))
			Expect(c.AuthorName).To(Equal("anon"))
			Expect(c.AuthorEmail).To(Equal("anon@example.com"))
			Expect(c.IdentityID).To(BeNil())
			Expect(c.IsCommentOwner).To(BeTrue())
			Expect(c.Children).To(BeEmpty())
		})

		It("rejects an anonymous comment without an author name", func() {
			_, err := service.Create(ctx, comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi",
			}, nil)
			Expect(err).To(MatchError(comments.ErrValidation))
		})

		It("rejects a malformed anonymous email", func() {
			_, err := service.Create(ctx, comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi",
				AuthorName: "anon", AuthorEmail: "not-an-email",
			}, nil)
			Expect(err).To(MatchError(comments.ErrValidation))
		})

		It("rejects empty and oversized content", func() {
			_, err := service.Create(ctx, comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "   ", AuthorName: "anon",
			}, nil)
			Expect(err).To(MatchError(comments.ErrValidation))

			_, err = service.Create(ctx, comments.CreateRequest{
				Category: "blog", Slug: "hello",
				Content:    strings.Repeat("x", 5001),
				AuthorName: "anon",
			}, nil)
			Expect(err).To(MatchError(comments.ErrValidation))
		})

		It("rejects an oversized author name", func() {
			_, err := service.Create(ctx, comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi",
				AuthorName: strings.Repeat("n", 51),
			}, nil)
			Expect(err).To(MatchError(comments.ErrValidation))
		})

		It("stamps authenticated comments with the viewer's profile", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi",
				AuthorName: "spoofed", AuthorEmail: "spoofed@example.com",
			}, alice)

			Expect(c.IdentityID).NotTo(BeNil())
			Expect(*c.IdentityID).To(Equal(alice.ID))
			Expect(c.AuthorName).To(Equal("Alice"))
			Expect(c.AuthorEmail).To(Equal("alice@example.com"))
		})

		It("falls back to the viewer's email when they have no name", func() {
			nameless := newIdentity("nameless@example.com", "")

			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi",
			}, nameless)
			Expect(c.AuthorName).To(Equal("nameless@example.com"))
		})

		It("threads replies under an existing parent on the same post", func() {
			root := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "root", AuthorName: "anon",
			}, nil)

			reply := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", ParentID: &root.ID,
				Content: "reply", AuthorName: "anon",
			}, nil)
			Expect(reply.ParentID).NotTo(BeNil())
			Expect(*reply.ParentID).To(Equal(root.ID))
		})

		It("rejects a reply to a missing parent", func() {
			missing := 999
			_, err := service.Create(ctx, comments.CreateRequest{
				Category: "blog", Slug: "hello", ParentID: &missing,
				Content: "reply", AuthorName: "anon",
			}, nil)
			Expect(err).To(MatchError(comments.ErrInvalidParent))
		})

		It("rejects a reply whose parent lives on another post", func() {
			other := create(comments.CreateRequest{
				Category: "blog", Slug: "other-post", Content: "root", AuthorName: "anon",
			}, nil)

			_, err := service.Create(ctx, comments.CreateRequest{
				Category: "blog", Slug: "hello", ParentID: &other.ID,
				Content: "reply", AuthorName: "anon",
			}, nil)
			Expect(err).To(MatchError(comments.ErrInvalidParent))
		})
	})

	Describe("Thread", func() {
		It("serves an unknown post as an empty thread", func() {
			roots, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "never-posted",
			}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(roots).To(BeEmpty())
		})

		It("rejects a negative page offset", func() {
			_, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello", Offset: -1,
			}, nil)
			Expect(err).To(MatchError(comments.ErrValidation))
		})

		It("returns the nested tree", func() {
			root := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "root", AuthorName: "anon",
			}, nil)
			create(comments.CreateRequest{
				Category: "blog", Slug: "hello", ParentID: &root.ID,
				Content: "reply", AuthorName: "anon",
			}, nil)

			roots, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello",
			}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(roots).To(HaveLen(1))
			Expect(roots[0].Children).To(HaveLen(1))
		})

		It("marks ownership for the viewer only", func() {
			create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "mine",
			}, alice)
			create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "theirs",
			}, bob)

			roots, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello", Sort: comments.SortNew,
			}, alice)
			Expect(err).NotTo(HaveOccurred())

			owned := map[string]bool{}
			for _, c := range roots {
				owned[c.Content] = c.IsCommentOwner
			}
			Expect(owned).To(HaveKeyWithValue("mine", true))
			Expect(owned).To(HaveKeyWithValue("theirs", false))
		})

		It("marks every comment owned for a site owner", func() {
			create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "a",
			}, alice)
			create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "b", AuthorName: "anon",
			}, nil)

			roots, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello",
			}, admin)
			Expect(err).NotTo(HaveOccurred())
			for _, c := range roots {
				Expect(c.IsCommentOwner).To(BeTrue())
			}
		})

		It("derives depth and badges the site owner's comments", func() {
			root := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "question",
			}, alice)
			create(comments.CreateRequest{
				Category: "blog", Slug: "hello", ParentID: &root.ID,
				Content: "answer",
			}, admin)

			roots, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello",
			}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(roots[0].Depth).To(Equal(0))
			Expect(roots[0].IsPostAuthor).To(BeFalse())

			reply := roots[0].Children[0]
			Expect(reply.Depth).To(Equal(1))
			Expect(reply.IsPostAuthor).To(BeTrue())
		})

		It("leaves ownership unmarked for anonymous viewers", func() {
			create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "a",
			}, alice)

			roots, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello",
			}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(roots[0].IsCommentOwner).To(BeFalse())
		})

		It("paginates root comments, replies riding along", func() {
			for _, content := range []string{"one", "two", "three"} {
				create(comments.CreateRequest{
					Category: "blog", Slug: "hello", Content: content, AuthorName: "anon",
				}, nil)
			}

			roots, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello", Sort: comments.SortNew, Offset: 1, Size: 1,
			}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(roots).To(HaveLen(1))
			Expect(roots[0].Content).To(Equal("two"))
		})

		It("serves an offset past the roots as an empty thread", func() {
			create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "only", AuthorName: "anon",
			}, nil)

			roots, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello", Offset: 10,
			}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(roots).To(BeEmpty())
		})
	})

	Describe("Edit", func() {
		It("lets the owner edit their comment", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "before",
			}, alice)

			updated, err := service.Edit(ctx, c.ID, "after", alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Content).To(Equal("after"))
			Expect(updated.IsCommentOwner).To(BeTrue())
		})

		It("forbids editing someone else's comment", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi",
			}, alice)

			_, err := service.Edit(ctx, c.ID, "hacked", bob)
			Expect(err).To(MatchError(comments.ErrForbidden))
		})

		It("forbids a site owner from editing someone else's comment", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi",
			}, alice)

			_, err := service.Edit(ctx, c.ID, "moderated", admin)
			Expect(err).To(MatchError(comments.ErrForbidden))

			fetched, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello", Sort: comments.SortNew,
			}, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched[0].Content).To(Equal("hi"))
		})

		It("keeps anonymous comments immutable, even for site owners", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi", AuthorName: "anon",
			}, nil)

			_, err := service.Edit(ctx, c.ID, "changed", admin)
			Expect(err).To(MatchError(comments.ErrForbidden))
		})

		It("forbids unauthenticated edits", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi", AuthorName: "anon",
			}, nil)

			_, err := service.Edit(ctx, c.ID, "changed", nil)
			Expect(err).To(MatchError(comments.ErrForbidden))
		})

		It("validates the replacement content", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi",
			}, alice)

			_, err := service.Edit(ctx, c.ID, "   ", alice)
			Expect(err).To(MatchError(comments.ErrValidation))
		})

		It("propagates not-found for a missing comment", func() {
			_, err := service.Edit(ctx, 999, "content", alice)
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("deletes the comment and its whole subtree", func() {
			root := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "root",
			}, alice)
			reply := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", ParentID: &root.ID, Content: "reply",
			}, bob)
			create(comments.CreateRequest{
				Category: "blog", Slug: "hello", ParentID: &reply.ID, Content: "deep", AuthorName: "anon",
			}, nil)
			keeper := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "keeper",
			}, bob)

			Expect(service.Delete(ctx, root.ID, alice)).To(Succeed())

			roots, err := service.Thread(ctx, comments.ThreadQuery{
				Category: "blog", Slug: "hello",
			}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(roots).To(HaveLen(1))
			Expect(roots[0].ID).To(Equal(keeper.ID))
		})

		It("forbids deleting someone else's comment", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi",
			}, alice)

			Expect(service.Delete(ctx, c.ID, bob)).To(MatchError(comments.ErrForbidden))
		})

		It("lets a site owner delete an anonymous comment", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "spam", AuthorName: "anon",
			}, nil)

			Expect(service.Delete(ctx, c.ID, admin)).To(Succeed())
		})

		It("forbids unauthenticated deletes", func() {
			c := create(comments.CreateRequest{
				Category: "blog", Slug: "hello", Content: "hi", AuthorName: "anon",
			}, nil)

			Expect(service.Delete(ctx, c.ID, nil)).To(MatchError(comments.ErrForbidden))
		})

		It("propagates not-found for a missing comment", func() {
			err := service.Delete(ctx, 999, alice)
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})
	})
})
