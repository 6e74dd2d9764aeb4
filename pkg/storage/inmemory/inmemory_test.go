package inmemory_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
)

func TestInmemory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inmemory Suite")
}

var _ = Describe("Driver", func() {
	var (
		ctx    context.Context
		driver *inmemory.Driver
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
	})

	Describe("articles", func() {
		It("watermarks and counts newly ingested articles", func() {
			max, err := driver.MaxArticleID(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(max).To(Equal(0))

			_, _, err = driver.UpsertArticle(ctx, "https://e.com/a", "A", "")
			Expect(err).NotTo(HaveOccurred())
			_, _, err = driver.UpsertArticle(ctx, "https://e.com/b", "B", "")
			Expect(err).NotTo(HaveOccurred())

			watermark, err := driver.MaxArticleID(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, _, err = driver.UpsertArticle(ctx, "https://e.com/c", "C", "")
			Expect(err).NotTo(HaveOccurred())

			newest, err := driver.MaxArticleID(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(newest).To(BeNumerically(">", watermark))

			count, err := driver.CountArticlesAfter(ctx, watermark, newest)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))

			count, err = driver.CountArticlesAfter(ctx, newest, newest)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(0))
		})

		It("keeps the count inside the given id window", func() {
			for _, u := range []string{"a", "b", "c"} {
				_, _, err := driver.UpsertArticle(ctx, "https://e.com/"+u, u, "")
				Expect(err).NotTo(HaveOccurred())
			}
			upTo, err := driver.MaxArticleID(ctx)
			Expect(err).NotTo(HaveOccurred())

			// Articles beyond upTo stay countable against a later window.
			_, _, err = driver.UpsertArticle(ctx, "https://e.com/d", "d", "")
			Expect(err).NotTo(HaveOccurred())

			count, err := driver.CountArticlesAfter(ctx, 0, upTo)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))

			count, err = driver.CountArticlesAfter(ctx, upTo, upTo+1)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})

		It("lists candidates newest-first", func() {
			for _, u := range []string{"a", "b", "c"} {
				_, _, err := driver.UpsertArticle(ctx, "https://e.com/"+u, u, "")
				Expect(err).NotTo(HaveOccurred())
			}

			articles, err := driver.ListCandidates(ctx, feed.CandidateQuery{Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(articles).To(HaveLen(2))
			Expect(articles[0].ID).To(BeNumerically(">", articles[1].ID))
		})

		It("resolves sources by key", func() {
			_, err := driver.EnsureSource(ctx, "hn", "Hacker News", "")
			Expect(err).NotTo(HaveOccurred())

			s, err := driver.GetSourceByKey(ctx, "hn")
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Name).To(Equal("Hacker News"))

			_, err = driver.GetSourceByKey(ctx, "missing")
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("history", func() {
		It("keeps one entry per article, updating the weight", func() {
			a, _, err := driver.UpsertArticle(ctx, "https://e.com/a", "A", "")
			Expect(err).NotTo(HaveOccurred())

			first, err := driver.AddHistory(ctx, a.ID, 1.0)
			Expect(err).NotTo(HaveOccurred())
			second, err := driver.AddHistory(ctx, a.ID, 3.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))

			entries, err := driver.ListHistory(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Weight).To(Equal(3.0))
		})

		It("rejects history for unknown articles", func() {
			_, err := driver.AddHistory(ctx, 42, 1.0)
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("comments", func() {
		ptr := func(i int) *int { return &i }

		It("cascades deletion through the whole subtree", func() {
			post, err := driver.GetOrCreatePost(ctx, "blog", "hello")
			Expect(err).NotTo(HaveOccurred())

			root, err := driver.CreateComment(ctx, &comments.Comment{PostID: post.ID, Content: "root", AuthorName: "a"})
			Expect(err).NotTo(HaveOccurred())
			mid, err := driver.CreateComment(ctx, &comments.Comment{PostID: post.ID, ParentID: ptr(root.ID), Content: "mid", AuthorName: "a"})
			Expect(err).NotTo(HaveOccurred())
			_, err = driver.CreateComment(ctx, &comments.Comment{PostID: post.ID, ParentID: ptr(mid.ID), Content: "leaf", AuthorName: "a"})
			Expect(err).NotTo(HaveOccurred())
			other, err := driver.CreateComment(ctx, &comments.Comment{PostID: post.ID, Content: "other", AuthorName: "a"})
			Expect(err).NotTo(HaveOccurred())

			Expect(driver.DeleteComment(ctx, root.ID)).To(Succeed())

			flat, err := driver.ListComments(ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(flat).To(HaveLen(1))
			Expect(flat[0].ID).To(Equal(other.ID))
		})

		It("returns not-found for missing comments and posts", func() {
			_, err := driver.GetComment(ctx, 1)
			Expect(storage.IsNotFound(err)).To(BeTrue())

			_, err = driver.GetPost(ctx, "blog", "missing")
			Expect(storage.IsNotFound(err)).To(BeTrue())

			Expect(storage.IsNotFound(driver.DeleteComment(ctx, 1))).To(BeTrue())
		})

		It("reuses a post per category and slug", func() {
			first, err := driver.GetOrCreatePost(ctx, "blog", "hello")
			Expect(err).NotTo(HaveOccurred())
			second, err := driver.GetOrCreatePost(ctx, "blog", "hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))

			third, err := driver.GetOrCreatePost(ctx, "docs", "hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(third.ID).NotTo(Equal(first.ID))
		})
	})

	Describe("sessions", func() {
		It("removes only expired sessions on sweep", func() {
			ident, err := driver.CreateIdentity(ctx, "a@example.com", "A")
			Expect(err).NotTo(HaveOccurred())

			_, err = driver.CreateSession(ctx, ident.ID, "prs_dead", time.Now().Add(-time.Minute))
			Expect(err).NotTo(HaveOccurred())
			_, err = driver.CreateSession(ctx, ident.ID, "prs_live", time.Now().Add(time.Hour))
			Expect(err).NotTo(HaveOccurred())

			n, err := driver.DeleteExpiredSessions(ctx, time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))

			_, err = driver.GetSessionByToken(ctx, "prs_dead")
			Expect(storage.IsNotFound(err)).To(BeTrue())
			_, err = driver.GetSessionByToken(ctx, "prs_live")
			Expect(err).NotTo(HaveOccurred())
		})

		It("finds identities by email", func() {
			created, err := driver.CreateIdentity(ctx, "a@example.com", "A")
			Expect(err).NotTo(HaveOccurred())

			found, err := driver.GetIdentityByEmail(ctx, "a@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(created.ID))

			_, err = driver.GetIdentityByEmail(ctx, "nobody@example.com")
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})
	})
})
