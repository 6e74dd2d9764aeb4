package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/identity"
)

// authCookie is the cookie the frontend stores the session token in.
const authCookie = "auth_token"

// identityKey is the request-local slot the resolved identity lives in.
const identityKey = "identity"

// withIdentity resolves the auth cookie to an identity for every request.
// Auth is optional at this layer; handlers that require it call viewer()
// and reject nil themselves.
func (s *Server) withIdentity(c *fiber.Ctx) error {
	token := c.Cookies(authCookie)
	if token == "" {
		return c.Next()
	}

	ident, err := s.auth.Authenticate(c.Context(), token)
	if err != nil {
		if !errors.Is(err, identity.ErrUnauthenticated) {
			s.logger.Warn("could not resolve session", zap.Error(err))
		}
		// A stale cookie degrades to anonymous rather than failing
		// read-only requests.
		return c.Next()
	}

	c.Locals(identityKey, ident)

	return c.Next()
}

// viewer returns the authenticated identity for the request, or nil.
func viewer(c *fiber.Ctx) *identity.Identity {
	ident, _ := c.Locals(identityKey).(*identity.Identity)
	return ident
}

// requireViewer returns the authenticated identity or writes a 401.
func (s *Server) requireViewer(c *fiber.Ctx) (*identity.Identity, error) {
	ident := viewer(c)
	if ident == nil {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Msg:    "authentication required",
			Reason: "unauthenticated",
		})
	}

	return ident, nil
}
