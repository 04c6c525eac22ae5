package middleware

import (
	"errors"
	"strings"

	"iadev-dashboard/internal/core/domain"
	"iadev-dashboard/internal/pkg/metrics"
	"iadev-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// Authenticator turns a bearer token into a caller session
type Authenticator interface {
	Authenticate(token string) (*domain.Session, error)
}

// RequireSession validates the bearer token and stores the caller session.
// It performs no store lookup.
func RequireSession(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))

		session, err := auth.Authenticate(token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return response.Forbidden(c, "Token not provided")
			}
			return response.Unauthorized(c, "Session expired")
		}

		c.Locals(sessionKey, session)
		return c.Next()
	}
}

// RequireCapability allows the super-administrator unconditionally and
// anyone else whose session snapshot grants capability
func RequireCapability(capability domain.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := SessionFrom(c)
		if session == nil {
			return response.Forbidden(c, "Token not provided")
		}

		if !session.Can(capability) {
			metrics.AuthorizationDenials.WithLabelValues(string(capability)).Inc()
			return response.Forbidden(c, "You do not have permission to perform this action")
		}

		return c.Next()
	}
}

// MasterOnly allows only the super-administrator, whatever its capability map
func MasterOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := SessionFrom(c)
		if session == nil || !session.IsMaster {
			return response.Forbidden(c, "Only the master administrator can perform this action")
		}
		return c.Next()
	}
}

// SessionFrom returns the session stored by RequireSession, or nil
func SessionFrom(c *fiber.Ctx) *domain.Session {
	session, _ := c.Locals(sessionKey).(*domain.Session)
	return session
}

// bearerToken extracts the token from "Bearer <token>"; anything else yields ""
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
