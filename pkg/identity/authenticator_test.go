package identity_test

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/identity"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
)

var _ = Describe("Authenticator", func() {
	var (
		ctx    context.Context
		driver *inmemory.Driver
		auth   *identity.Authenticator
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		auth = identity.NewAuthenticator(driver, storage.DefaultRetryConfig(), zap.NewNop())
	})

	Describe("SignIn", func() {
		It("creates an identity and issues a prefixed session token", func() {
			session, ident, err := auth.SignIn(ctx, "Alice@Example.com ", "Alice", "github", "gh-1")
			Expect(err).NotTo(HaveOccurred())

			Expect(ident.Email).To(Equal("alice@example.com"))
			Expect(session.Token).To(HavePrefix("prs_"))
			Expect(session.ExpiresAt).To(BeTemporally(">", time.Now().Add(360*24*time.Hour)))
		})

		It("reuses the identity on repeat sign-ins", func() {
			_, first, err := auth.SignIn(ctx, "alice@example.com", "Alice", "github", "gh-1")
			Expect(err).NotTo(HaveOccurred())

			_, second, err := auth.SignIn(ctx, "alice@example.com", "Alice", "google", "g-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))
		})

		It("rejects malformed emails", func() {
			_, _, err := auth.SignIn(ctx, "not-an-email", "X", "github", "gh-1")
			Expect(err).To(MatchError(identity.ErrInvalidEmail))

			_, _, err = auth.SignIn(ctx, "", "X", "github", "gh-1")
			Expect(err).To(MatchError(identity.ErrInvalidEmail))
		})

		It("issues distinct tokens per sign-in", func() {
			s1, _, err := auth.SignIn(ctx, "alice@example.com", "Alice", "", "")
			Expect(err).NotTo(HaveOccurred())
			s2, _, err := auth.SignIn(ctx, "alice@example.com", "Alice", "", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(s1.Token).NotTo(Equal(s2.Token))
		})
	})

	Describe("Authenticate", func() {
		It("resolves a valid token to its identity", func() {
			session, ident, err := auth.SignIn(ctx, "alice@example.com", "Alice", "", "")
			Expect(err).NotTo(HaveOccurred())

			got, err := auth.Authenticate(ctx, session.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(ident.ID))
		})

		It("rejects empty and unprefixed tokens without a store lookup", func() {
			_, err := auth.Authenticate(ctx, "")
			Expect(err).To(MatchError(identity.ErrUnauthenticated))

			_, err = auth.Authenticate(ctx, "some-other-token")
			Expect(err).To(MatchError(identity.ErrUnauthenticated))
		})

		It("rejects unknown tokens", func() {
			_, err := auth.Authenticate(ctx, identity.NewToken())
			Expect(err).To(MatchError(identity.ErrUnauthenticated))
		})

		It("rejects and removes expired sessions", func() {
			ident, err := driver.CreateIdentity(ctx, "old@example.com", "Old")
			Expect(err).NotTo(HaveOccurred())

			token := identity.NewToken()
			_, err = driver.CreateSession(ctx, ident.ID, token, time.Now().Add(-time.Hour))
			Expect(err).NotTo(HaveOccurred())

			_, err = auth.Authenticate(ctx, token)
			Expect(err).To(MatchError(identity.ErrUnauthenticated))

			_, err = driver.GetSessionByToken(ctx, token)
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("SignOut", func() {
		It("revokes the session", func() {
			session, _, err := auth.SignIn(ctx, "alice@example.com", "Alice", "", "")
			Expect(err).NotTo(HaveOccurred())

			Expect(auth.SignOut(ctx, session.Token)).To(Succeed())

			_, err = auth.Authenticate(ctx, session.Token)
			Expect(err).To(MatchError(identity.ErrUnauthenticated))
		})

		It("treats unknown tokens as already signed out", func() {
			Expect(auth.SignOut(ctx, identity.NewToken())).To(Succeed())
			Expect(auth.SignOut(ctx, "")).To(Succeed())
		})
	})

	Describe("Sweep", func() {
		It("removes only expired sessions", func() {
			ident, err := driver.CreateIdentity(ctx, "a@example.com", "A")
			Expect(err).NotTo(HaveOccurred())

			_, err = driver.CreateSession(ctx, ident.ID, identity.NewToken(), time.Now().Add(-time.Hour))
			Expect(err).NotTo(HaveOccurred())
			live, err := driver.CreateSession(ctx, ident.ID, identity.NewToken(), time.Now().Add(time.Hour))
			Expect(err).NotTo(HaveOccurred())

			n, err := auth.Sweep(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))

			_, err = driver.GetSessionByToken(ctx, live.Token)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

var _ = Describe("NewToken", func() {
	It("mints prefixed tokens without separators", func() {
		token := identity.NewToken()
		Expect(token).To(HavePrefix("prs_"))
		Expect(strings.ContainsRune(token, '-')).To(BeFalse())
	})
})

var _ = Describe("Owns", func() {
	id := func(i int) *int { return &i }

	It("is false for a nil identity", func() {
		var nobody *identity.Identity
		Expect(nobody.Owns(id(1))).To(BeFalse())
	})

	It("is true for the matching owner id", func() {
		viewer := &identity.Identity{ID: 7}
		Expect(viewer.Owns(id(7))).To(BeTrue())
		Expect(viewer.Owns(id(8))).To(BeFalse())
		Expect(viewer.Owns(nil)).To(BeFalse())
	})

	It("is always true for a site owner", func() {
		admin := &identity.Identity{ID: 1, SiteOwner: true}
		Expect(admin.Owns(id(99))).To(BeTrue())
		Expect(admin.Owns(nil)).To(BeTrue())
	})
})
