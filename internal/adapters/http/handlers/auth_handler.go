package handlers

import (
	"errors"

	"iadev-dashboard/internal/adapters/http/middleware"
	"iadev-dashboard/internal/core/domain"
	"iadev-dashboard/internal/core/services"
	"iadev-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"usuario" form:"usuario"`
	Password string `json:"senha" form:"senha"`
}

// LoginResponse represents an issued session
type LoginResponse struct {
	Auth        bool                 `json:"auth"`
	Token       string               `json:"token"`
	IsMaster    bool                 `json:"isMaster"`
	Permissions *domain.Capabilities `json:"permissoes,omitempty"`
}

// VerifyMasterRequest represents the master password re-confirmation body
type VerifyMasterRequest struct {
	Password string `json:"senha" form:"senha"`
}

// Login handles user login
// @Summary Login
// @Description Authenticate the master administrator or an administrator member
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.Context(), &services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Username and password are required")
		case errors.Is(err, domain.ErrAuthenticationFailed):
			return response.Unauthorized(c, "Invalid credentials")
		default:
			return writeError(c, err, "Failed to login")
		}
	}

	resp := LoginResponse{
		Auth:     true,
		Token:    result.Token,
		IsMaster: result.IsMaster,
	}
	if !result.IsMaster {
		perms := result.Permissions
		resp.Permissions = &perms
	}
	return response.JSON(c, resp)
}

// VerifyMaster re-confirms the master password
// @Summary Verify master password
// @Description Re-confirm the master password before a sensitive action
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body VerifyMasterRequest true "Master password"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/verify-master [post]
func (h *AuthHandler) VerifyMaster(c *fiber.Ctx) error {
	var req VerifyMasterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	err := h.authService.VerifyMasterPassword(middleware.SessionFrom(c), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPermissionDenied):
			return response.Forbidden(c, "Token not provided")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Password is required")
		default:
			return response.Unauthorized(c, "Incorrect master password")
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

// Ping reports liveness for authenticated clients
// @Summary Ping
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/ping [get]
func (h *AuthHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "online"})
}
