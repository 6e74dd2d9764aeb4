package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/identity"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
)

var _ = Describe("comment endpoints", func() {
	var (
		server *Server
		store  *inmemory.Driver
		auth   *identity.Authenticator
		ctx    context.Context

		aliceToken string
		bobToken   string
	)

	signIn := func(email, name string) string {
		session, _, err := auth.SignIn(ctx, email, name, "github", email)
		Expect(err).NotTo(HaveOccurred())
		return session.Token
	}

	do := func(method, target, token string, payload any) *http.Response {
		var body io.Reader
		if payload != nil {
			raw, err := json.Marshal(payload)
			Expect(err).NotTo(HaveOccurred())
			body = bytes.NewReader(raw)
		}

		req, err := http.NewRequest(method, target, body)
		Expect(err).NotTo(HaveOccurred())
		if payload != nil {
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		}
		if token != "" {
			req.AddCookie(&http.Cookie{Name: authCookie, Value: token})
		}

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())
		return resp
	}

	decodeComment := func(resp *http.Response) comments.Comment {
		raw, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())

		var out comments.Comment
		Expect(json.Unmarshal(raw, &out)).To(Succeed())
		return out
	}

	decodeTree := func(resp *http.Response) []*comments.Comment {
		raw, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())

		var out []*comments.Comment
		Expect(json.Unmarshal(raw, &out)).To(Succeed())
		return out
	}

	BeforeEach(func() {
		ctx = context.Background()
		server, store, _, auth = newTestServer()
		aliceToken = signIn("alice@example.com", "Alice")
		bobToken = signIn("bob@example.com", "Bob")
	})

	Describe("creating", func() {
		It("accepts an anonymous comment with an author name", func() {
			resp := do(http.MethodPost, "/blog/hello/comments", "", map[string]any{
				"content":     "first!",
				"author_name": "drive-by",
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusCreated))

			created := decodeComment(resp)
			Expect(created.AuthorName).To(Equal("drive-by"))
			Expect(created.Content).To(Equal("first!"))
		})

		It("rejects an anonymous comment without an author name", func() {
			resp := do(http.MethodPost, "/blog/hello/comments", "", map[string]any{
				"content": "who am I",
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
			Expect(decodeError(resp).Reason).To(Equal("validation"))
		})

		It("binds a signed-in comment to the viewer", func() {
			resp := do(http.MethodPost, "/blog/hello/comments", aliceToken, map[string]any{
				"content": "signed in",
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusCreated))
			Expect(decodeComment(resp).AuthorName).To(Equal("Alice"))
		})

		It("threads replies under their parent", func() {
			root := decodeComment(do(http.MethodPost, "/blog/hello/comments", aliceToken, map[string]any{
				"content": "root",
			}))

			resp := do(http.MethodPost, "/blog/hello/comments", bobToken, map[string]any{
				"content":   "reply",
				"parent_id": root.ID,
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusCreated))

			tree := decodeTree(do(http.MethodGet, "/blog/hello/comments", "", nil))
			Expect(tree).To(HaveLen(1))
			Expect(tree[0].Children).To(HaveLen(1))
			Expect(tree[0].Children[0].Content).To(Equal("reply"))
		})

		It("rejects a reply to a missing parent", func() {
			resp := do(http.MethodPost, "/blog/hello/comments", aliceToken, map[string]any{
				"content":   "orphan",
				"parent_id": 9999,
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
			Expect(decodeError(resp).Reason).To(Equal("invalid_parent"))
		})

		It("rejects a malformed body", func() {
			req, err := http.NewRequest(http.MethodPost, "/blog/hello/comments", bytes.NewReader([]byte("{nope")))
			Expect(err).NotTo(HaveOccurred())
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})
	})

	Describe("reading the tree", func() {
		It("returns an empty tree for an undiscussed post", func() {
			tree := decodeTree(do(http.MethodGet, "/blog/quiet/comments", "", nil))
			Expect(tree).To(BeEmpty())
		})

		It("marks ownership for the viewer only", func() {
			do(http.MethodPost, "/blog/hello/comments", aliceToken, map[string]any{"content": "mine"})
			do(http.MethodPost, "/blog/hello/comments", bobToken, map[string]any{"content": "theirs"})

			tree := decodeTree(do(http.MethodGet, "/blog/hello/comments?sort=new", aliceToken, nil))
			Expect(tree).To(HaveLen(2))
			Expect(tree[0].Content).To(Equal("theirs"))
			Expect(tree[0].IsCommentOwner).To(BeFalse())
			Expect(tree[1].Content).To(Equal("mine"))
			Expect(tree[1].IsCommentOwner).To(BeTrue())
		})

		It("exposes depth and badges the post author's replies", func() {
			session, owner, err := auth.SignIn(ctx, "owner@example.com", "Owner", "github", "owner@example.com")
			Expect(err).NotTo(HaveOccurred())
			store.SetSiteOwner(owner.ID, true)

			root := decodeComment(do(http.MethodPost, "/blog/hello/comments", aliceToken, map[string]any{
				"content": "question",
			}))
			do(http.MethodPost, "/blog/hello/comments", session.Token, map[string]any{
				"content":   "answer",
				"parent_id": root.ID,
			})

			tree := decodeTree(do(http.MethodGet, "/blog/hello/comments", "", nil))
			Expect(tree).To(HaveLen(1))
			Expect(tree[0].Depth).To(Equal(0))
			Expect(tree[0].IsPostAuthor).To(BeFalse())
			Expect(tree[0].Children[0].Depth).To(Equal(1))
			Expect(tree[0].Children[0].IsPostAuthor).To(BeTrue())
		})

		It("rejects an unknown sort", func() {
			resp := do(http.MethodGet, "/blog/hello/comments?sort=controversial", "", nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
			Expect(decodeError(resp).Reason).To(Equal("validation"))
		})

		It("pages root comments", func() {
			for _, content := range []string{"one", "two", "three"} {
				do(http.MethodPost, "/blog/hello/comments", aliceToken, map[string]any{"content": content})
			}

			tree := decodeTree(do(http.MethodGet, "/blog/hello/comments?sort=new&page_offset=1&page_size=1", "", nil))
			Expect(tree).To(HaveLen(1))
			Expect(tree[0].Content).To(Equal("two"))
		})
	})

	Describe("editing", func() {
		var owned comments.Comment

		BeforeEach(func() {
			owned = decodeComment(do(http.MethodPost, "/blog/hello/comments", aliceToken, map[string]any{
				"content": "original",
			}))
		})

		It("lets the owner edit", func() {
			resp := do(http.MethodPatch, "/blog/hello/comments/"+strconv.Itoa(owned.ID), aliceToken, map[string]any{
				"content": "edited",
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))
			Expect(decodeComment(resp).Content).To(Equal("edited"))
		})

		It("requires authentication", func() {
			resp := do(http.MethodPatch, "/blog/hello/comments/"+strconv.Itoa(owned.ID), "", map[string]any{
				"content": "sneaky",
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusUnauthorized))
			Expect(decodeError(resp).Reason).To(Equal("unauthenticated"))
		})

		It("forbids editing someone else's comment", func() {
			resp := do(http.MethodPatch, "/blog/hello/comments/"+strconv.Itoa(owned.ID), bobToken, map[string]any{
				"content": "hijack",
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusForbidden))
			Expect(decodeError(resp).Reason).To(Equal("forbidden"))
		})

		It("404s on a missing comment", func() {
			resp := do(http.MethodPatch, "/blog/hello/comments/9999", aliceToken, map[string]any{
				"content": "ghost",
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusNotFound))
			Expect(decodeError(resp).Reason).To(Equal("not_found"))
		})

		It("rejects a non-numeric comment id", func() {
			resp := do(http.MethodPatch, "/blog/hello/comments/abc", aliceToken, map[string]any{
				"content": "nope",
			})
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})
	})

	Describe("deleting", func() {
		It("cascades to the subtree", func() {
			root := decodeComment(do(http.MethodPost, "/blog/hello/comments", aliceToken, map[string]any{
				"content": "root",
			}))
			do(http.MethodPost, "/blog/hello/comments", bobToken, map[string]any{
				"content":   "reply",
				"parent_id": root.ID,
			})

			resp := do(http.MethodDelete, "/blog/hello/comments/"+strconv.Itoa(root.ID), aliceToken, nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			tree := decodeTree(do(http.MethodGet, "/blog/hello/comments", "", nil))
			Expect(tree).To(BeEmpty())
		})

		It("requires authentication", func() {
			resp := do(http.MethodDelete, "/blog/hello/comments/1", "", nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusUnauthorized))
		})

		It("forbids deleting someone else's comment", func() {
			owned := decodeComment(do(http.MethodPost, "/blog/hello/comments", aliceToken, map[string]any{
				"content": "keep out",
			}))

			resp := do(http.MethodDelete, "/blog/hello/comments/"+strconv.Itoa(owned.ID), bobToken, nil)
			Expect(resp.StatusCode).To(Equal(fiber.StatusForbidden))
		})
	})
})
