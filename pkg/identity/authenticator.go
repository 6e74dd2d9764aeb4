package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/storage"
)

const (
	// tokenPrefix marks session tokens so they're recognizable in logs
	// and cookie jars without revealing anything.
	tokenPrefix = "prs_"

	// sessionTTL is how long an issued session stays valid.
	sessionTTL = 365 * 24 * time.Hour
)

// Authenticator resolves session tokens to identities and issues new
// sessions after an OAuth sign-in completes.
type Authenticator struct {
	store  Store
	retry  storage.RetryConfig
	logger *zap.Logger
}

// NewAuthenticator creates an authenticator over the given store.
func NewAuthenticator(store Store, retry storage.RetryConfig, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		store:  store,
		retry:  retry,
		logger: logger,
	}
}

// Authenticate resolves a session token to its identity. An empty, unknown,
// or expired token returns ErrUnauthenticated; expired sessions are removed
// as a side effect.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" || !strings.HasPrefix(token, tokenPrefix) {
		return nil, ErrUnauthenticated
	}

	var session *Session
	err := storage.WithRetry(ctx, a.retry, func(ctx context.Context) error {
		var err error
		session, err = a.store.GetSessionByToken(ctx, token)
		return err
	})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("looking up session: %w", err)
	}

	if session.Expired(time.Now()) {
		if err := a.store.DeleteSession(ctx, token); err != nil && !storage.IsNotFound(err) {
			a.logger.Warn("could not remove expired session", zap.Error(err))
		}
		return nil, ErrUnauthenticated
	}

	var ident *Identity
	err = storage.WithRetry(ctx, a.retry, func(ctx context.Context) error {
		var err error
		ident, err = a.store.GetIdentity(ctx, session.IdentityID)
		return err
	})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("looking up identity: %w", err)
	}

	return ident, nil
}

// SignIn finishes an OAuth exchange: it finds or creates the identity for
// the verified email, links the provider account, and issues a session.
func (a *Authenticator) SignIn(ctx context.Context, email, name, provider, providerAccountID string) (*Session, *Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	ident, err := a.store.GetIdentityByEmail(ctx, email)
	if err != nil {
		if !storage.IsNotFound(err) {
			return nil, nil, fmt.Errorf("looking up identity: %w", err)
		}
		ident, err = a.store.CreateIdentity(ctx, email, name)
		if err != nil {
			return nil, nil, fmt.Errorf("creating identity: %w", err)
		}
	}

	if provider != "" {
		if _, err := a.store.UpsertCredential(ctx, ident.ID, provider, providerAccountID); err != nil {
			return nil, nil, fmt.Errorf("linking credential: %w", err)
		}
	}

	token := NewToken()
	session, err := a.store.CreateSession(ctx, ident.ID, token, time.Now().Add(sessionTTL))
	if err != nil {
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	a.logger.Info("session issued",
		zap.Int("identity_id", ident.ID),
		zap.String("provider", provider))

	return session, ident, nil
}

// SignOut revokes a session token. Revoking an unknown token is not an
// error.
func (a *Authenticator) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := a.store.DeleteSession(ctx, token)
	if err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("revoking session: %w", err)
	}

	return nil
}

// Sweep removes expired sessions.
func (a *Authenticator) Sweep(ctx context.Context) (int, error) {
	return a.store.DeleteExpiredSessions(ctx, time.Now())
}

// NewToken mints a fresh session token.
func NewToken() string {
	return tokenPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
