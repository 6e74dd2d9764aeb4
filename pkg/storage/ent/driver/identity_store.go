package entdriver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/perusehq/peruse/pkg/identity"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/ent"
	"github.com/perusehq/peruse/pkg/storage/ent/credential"
	entidentity "github.com/perusehq/peruse/pkg/storage/ent/identity"
	"github.com/perusehq/peruse/pkg/storage/ent/session"
)

// GetIdentity retrieves an identity by id.
func (ed *EntDriver) GetIdentity(ctx context.Context, id int) (*identity.Identity, error) {
	row, err := ed.Client.Identity.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound{Entity: "identity", Key: strconv.Itoa(id)}
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return entIdentityToIdentity(row), nil
}

// GetIdentityByEmail retrieves an identity by its email.
func (ed *EntDriver) GetIdentityByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	row, err := ed.Client.Identity.Query().
		Where(entidentity.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound{Entity: "identity", Key: email}
		}
		return nil, fmt.Errorf("failed to get identity by email: %w", err)
	}

	return entIdentityToIdentity(row), nil
}

// CreateIdentity persists a new identity.
func (ed *EntDriver) CreateIdentity(ctx context.Context, email, name string) (*identity.Identity, error) {
	create := ed.Client.Identity.Create().
		SetEmail(email)
	if name != "" {
		create.SetName(name)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	return entIdentityToIdentity(row), nil
}

// UpsertCredential links an OAuth account to an identity, idempotently.
func (ed *EntDriver) UpsertCredential(ctx context.Context, identityID int, provider, providerAccountID string) (*identity.Credential, error) {
	existing, err := ed.Client.Credential.Query().
		Where(
			credential.Provider(provider),
			credential.ProviderAccountID(providerAccountID),
		).
		Only(ctx)
	if err == nil {
		return entCredentialToCredential(existing), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check credential existence: %w", err)
	}

	row, err := ed.Client.Credential.Create().
		SetIdentityID(identityID).
		SetProvider(provider).
		SetProviderAccountID(providerAccountID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	return entCredentialToCredential(row), nil
}

// CreateSession persists a new session.
func (ed *EntDriver) CreateSession(ctx context.Context, identityID int, token string, expiresAt time.Time) (*identity.Session, error) {
	row, err := ed.Client.Session.Create().
		SetIdentityID(identityID).
		SetToken(token).
		SetExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return entSessionToSession(row), nil
}

// GetSessionByToken retrieves a session by its token.
func (ed *EntDriver) GetSessionByToken(ctx context.Context, token string) (*identity.Session, error) {
	row, err := ed.Client.Session.Query().
		Where(session.Token(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound{Entity: "session"}
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return entSessionToSession(row), nil
}

// DeleteSession removes a session by its token.
func (ed *EntDriver) DeleteSession(ctx context.Context, token string) error {
	n, err := ed.Client.Session.Delete().
		Where(session.Token(token)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound{Entity: "session"}
	}

	return nil
}

// DeleteExpiredSessions removes sessions past their expiry.
func (ed *EntDriver) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	n, err := ed.Client.Session.Delete().
		Where(session.ExpiresAtLTE(now)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return n, nil
}

// Conversion helpers
func entIdentityToIdentity(ei *ent.Identity) *identity.Identity {
	return &identity.Identity{
		ID:        ei.ID,
		Email:     ei.Email,
		Name:      ei.Name,
		SiteOwner: ei.SiteOwner,
		CreatedAt: ei.CreatedAt,
	}
}

func entSessionToSession(es *ent.Session) *identity.Session {
	return &identity.Session{
		ID:         es.ID,
		IdentityID: es.IdentityID,
		Token:      es.Token,
		ExpiresAt:  es.ExpiresAt,
		CreatedAt:  es.CreatedAt,
	}
}

func entCredentialToCredential(ec *ent.Credential) *identity.Credential {
	return &identity.Credential{
		ID:                ec.ID,
		IdentityID:        ec.IdentityID,
		Provider:          ec.Provider,
		ProviderAccountID: ec.ProviderAccountID,
		CreatedAt:         ec.CreatedAt,
	}
}
