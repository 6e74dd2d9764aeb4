package identity

import (
	"context"
	"time"
)

// Store is the persistence surface the authenticator needs. The storage
// backends implement it.
type Store interface {
	// GetIdentity retrieves an identity by id.
	GetIdentity(ctx context.Context, id int) (*Identity, error)

	// GetIdentityByEmail retrieves an identity by its (lowercased) email.
	GetIdentityByEmail(ctx context.Context, email string) (*Identity, error)

	// CreateIdentity persists a new identity.
	CreateIdentity(ctx context.Context, email, name string) (*Identity, error)

	// UpsertCredential links an OAuth account to an identity, idempotently.
	UpsertCredential(ctx context.Context, identityID int, provider, providerAccountID string) (*Credential, error)

	// CreateSession persists a new session.
	CreateSession(ctx context.Context, identityID int, token string, expiresAt time.Time) (*Session, error)

	// GetSessionByToken retrieves a session by its token.
	GetSessionByToken(ctx context.Context, token string) (*Session, error)

	// DeleteSession removes a session by its token.
	DeleteSession(ctx context.Context, token string) error

	// DeleteExpiredSessions removes sessions past their expiry, returning
	// how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}
