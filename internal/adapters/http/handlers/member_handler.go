package handlers

import (
	"iadev-dashboard/internal/adapters/http/middleware"
	"iadev-dashboard/internal/core/services"
	"iadev-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// List lists members
// @Summary List members
// @Description List members ordered by name, without credentials
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.MemberSummary
// @Router /api/membros [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	members, err := h.memberService.List(c.Context())
	if err != nil {
		return writeError(c, err, "Failed to list members")
	}
	return response.JSON(c, members)
}

// Get gets a member by ID
// @Summary Get member
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} models.Member
// @Failure 404 {object} response.Response
// @Router /api/membros/{id} [get]
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.memberService.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err, "Failed to get member")
	}
	return response.JSON(c, member)
}

// Create creates a member
// @Summary Create member
// @Description Create a member. Promoting to administrator requires manage-administrators.
// @Tags Members
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param nome formData string true "Name"
// @Param isAdministrador formData string false "true to create an administrator"
// @Param usuario formData string false "Administrator username"
// @Param senha formData string false "Administrator password"
// @Param permissoes formData string false "Capability map as JSON"
// @Param fotoPerfil formData file false "Profile photo"
// @Success 201 {object} models.Member
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/membros [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	input, done, err := memberInput(c)
	if err != nil {
		return writeError(c, err, "Failed to create member")
	}
	defer done()

	result, err := h.memberService.Create(c.Context(), middleware.SessionFrom(c), input)
	if err != nil {
		return writeError(c, err, "Failed to create member")
	}

	setUploadWarning(c, result.Warning)
	return response.Created(c, result.Member)
}

// Update updates a member
// @Summary Update member
// @Description Update a member. Demotion clears credentials; a blank password keeps the stored one.
// @Tags Members
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} models.Member
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/membros/{id} [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid member ID")
	}

	input, done, err := memberInput(c)
	if err != nil {
		return writeError(c, err, "Failed to update member")
	}
	defer done()

	result, err := h.memberService.Update(c.Context(), middleware.SessionFrom(c), id, input)
	if err != nil {
		return writeError(c, err, "Failed to update member")
	}

	setUploadWarning(c, result.Warning)
	return response.JSON(c, result.Member)
}

// Delete deletes a member
// @Summary Delete member
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/membros/{id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.memberService.Delete(c.Context(), id); err != nil {
		return writeError(c, err, "Failed to delete member")
	}
	return response.Success(c, "Member deleted")
}

// History lists the latest transactions mentioning a member
// @Summary Member history
// @Description Up to 20 transactions whose description matches the name, newest first
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param nome path string true "Member name"
// @Success 200 {array} models.Transaction
// @Router /api/membros/historico/{nome} [get]
func (h *MemberHandler) History(c *fiber.Ctx) error {
	name, err := pathUnescape(c.Params("nome"))
	if err != nil {
		return response.BadRequest(c, "Invalid name")
	}

	txs, err := h.memberService.History(c.Context(), name)
	if err != nil {
		return writeError(c, err, "Failed to load history")
	}
	return response.JSON(c, txs)
}

// memberInput reads submitted member fields, keeping unsent fields nil
func memberInput(c *fiber.Ctx) (*services.MemberInput, func(), error) {
	form, err := readForm(c)
	if err != nil {
		return nil, func() {}, err
	}

	perms, err := form.capabilities("permissoes")
	if err != nil {
		return nil, func() {}, err
	}

	photo, done, err := form.file("fotoPerfil")
	if err != nil {
		return nil, done, err
	}

	return &services.MemberInput{
		Name:            form.str("nome"),
		Document:        form.str("cpf"),
		Phone:           form.str("telefone"),
		Address:         form.str("endereco"),
		BirthDate:       form.str("dataNascimento"),
		IsAdministrator: form.flag("isAdministrador"),
		Username:        form.str("usuario"),
		Password:        form.str("senha"),
		Permissions:     perms,
		Photo:           photo,
	}, done, nil
}

func setUploadWarning(c *fiber.Ctx, warning string) {
	if warning != "" {
		c.Set(middleware.UploadWarningHeader, warning)
	}
}
