package handlers

import (
	"errors"
	"log"

	"iadev-dashboard/internal/core/domain"
	"iadev-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// writeError maps service errors onto the response taxonomy. Upstream
// details are logged, never returned.
func writeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return response.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, domain.ErrPermissionDenied):
		return response.Forbidden(c, "You do not have permission to perform this action")
	case errors.Is(err, domain.ErrMemberNotFound):
		return response.NotFound(c, "Member not found")
	case errors.Is(err, domain.ErrTransactionNotFound):
		return response.NotFound(c, "Transaction not found")
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Resource not found")
	case errors.Is(err, domain.ErrConflict):
		return response.Conflict(c, "A member with this name already exists")
	default:
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
		return response.InternalServerError(c, fallback)
	}
}
