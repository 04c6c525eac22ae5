package handlers

import (
	"iadev-dashboard/internal/core/services"
	"iadev-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OrganizationHandler handles the organization profile endpoints
type OrganizationHandler struct {
	orgService *services.OrganizationService
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// Get returns the organization profile
// @Summary Get organization profile
// @Description Returns an empty object when no profile was saved yet
// @Tags Organization
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Organization
// @Router /api/igreja [get]
func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	org, err := h.orgService.Get(c.Context())
	if err != nil {
		return writeError(c, err, "Failed to load organization profile")
	}
	if org == nil {
		return response.JSON(c, fiber.Map{})
	}
	return response.JSON(c, org)
}

// Set creates or merges the organization profile
// @Summary Save organization profile
// @Tags Organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.OrganizationInput true "Profile fields"
// @Success 200 {object} models.Organization
// @Failure 403 {object} response.Response
// @Router /api/igreja [post]
func (h *OrganizationHandler) Set(c *fiber.Ctx) error {
	var input services.OrganizationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	org, err := h.orgService.Set(c.Context(), &input)
	if err != nil {
		return writeError(c, err, "Failed to save organization profile")
	}
	return response.JSON(c, org)
}
