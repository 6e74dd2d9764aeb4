package inmemory

import (
	"context"
	"strconv"
	"time"

	"github.com/perusehq/peruse/pkg/identity"
	"github.com/perusehq/peruse/pkg/storage"
)

// GetIdentity retrieves an identity by id.
func (d *Driver) GetIdentity(_ context.Context, id int) (*identity.Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.identities[id]
	if !ok {
		return nil, storage.ErrNotFound{Entity: "identity", Key: strconv.Itoa(id)}
	}

	out := *i
	return &out, nil
}

// GetIdentityByEmail retrieves an identity by its email.
func (d *Driver) GetIdentityByEmail(_ context.Context, email string) (*identity.Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, i := range d.identities {
		if i.Email == email {
			out := *i
			return &out, nil
		}
	}

	return nil, storage.ErrNotFound{Entity: "identity", Key: email}
}

// CreateIdentity persists a new identity.
func (d *Driver) CreateIdentity(_ context.Context, email, name string) (*identity.Identity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextIdentityID++
	i := &identity.Identity{
		ID:        d.nextIdentityID,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
	d.identities[i.ID] = i

	out := *i
	return &out, nil
}

// SetSiteOwner flips the moderation flag on an identity. Test helper; the
// relational backends manage this out of band.
func (d *Driver) SetSiteOwner(id int, siteOwner bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i, ok := d.identities[id]; ok {
		i.SiteOwner = siteOwner
	}
}

// UpsertCredential links an OAuth account to an identity, idempotently.
func (d *Driver) UpsertCredential(_ context.Context, identityID int, provider, providerAccountID string) (*identity.Credential, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, c := range d.credentials {
		if c.Provider == provider && c.ProviderAccountID == providerAccountID {
			out := *c
			return &out, nil
		}
	}

	d.nextCredID++
	c := &identity.Credential{
		ID:                d.nextCredID,
		IdentityID:        identityID,
		Provider:          provider,
		ProviderAccountID: providerAccountID,
		CreatedAt:         time.Now(),
	}
	d.credentials[c.ID] = c

	out := *c
	return &out, nil
}

// CreateSession persists a new session.
func (d *Driver) CreateSession(_ context.Context, identityID int, token string, expiresAt time.Time) (*identity.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextSessionID++
	s := &identity.Session{
		ID:         d.nextSessionID,
		IdentityID: identityID,
		Token:      token,
		ExpiresAt:  expiresAt,
		CreatedAt:  time.Now(),
	}
	d.sessions[token] = s

	out := *s
	return &out, nil
}

// GetSessionByToken retrieves a session by its token.
func (d *Driver) GetSessionByToken(_ context.Context, token string) (*identity.Session, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.sessions[token]
	if !ok {
		return nil, storage.ErrNotFound{Entity: "session"}
	}

	out := *s
	return &out, nil
}

// DeleteSession removes a session by its token.
func (d *Driver) DeleteSession(_ context.Context, token string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.sessions[token]; !ok {
		return storage.ErrNotFound{Entity: "session"}
	}
	delete(d.sessions, token)

	return nil
}

// DeleteExpiredSessions removes sessions past their expiry.
func (d *Driver) DeleteExpiredSessions(_ context.Context, now time.Time) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for token, s := range d.sessions {
		if s.Expired(now) {
			delete(d.sessions, token)
			removed++
		}
	}

	return removed, nil
}
