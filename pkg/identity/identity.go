// Package identity binds requests to authenticated people. A session token
// from the auth cookie resolves to an Identity; ownership checks elsewhere
// compare against its id or the site_owner flag.
package identity

import "time"

// Identity is one authenticated person.
type Identity struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	SiteOwner bool      `json:"site_owner"`
	CreatedAt time.Time `json:"created_at"`
}

// Session maps a bearer token to an identity until it expires.
type Session struct {
	ID         int
	IdentityID int
	Token      string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Credential links one external OAuth account to an identity.
type Credential struct {
	ID                int
	IdentityID        int
	Provider          string
	ProviderAccountID string
	CreatedAt         time.Time
}

// Owns reports whether the identity may modify a record owned by ownerID.
// Site owners may modify anything; anonymous records (nil owner) belong to
// nobody.
func (i *Identity) Owns(ownerID *int) bool {
	if i == nil {
		return false
	}
	if i.SiteOwner {
		return true
	}

	return ownerID != nil && *ownerID == i.ID
}
