package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// LeadHandler maneja las peticiones HTTP de leads anidados bajo un cliente.
type LeadHandler struct {
	uc *crm.LeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *crm.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create POST /api/customers/:id/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	customerID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(details))
	}
	lead, err := h.uc.Create(GetIdentity(c), customerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(fiber.Map{"lead": lead}))
}

// List GET /api/customers/:id/leads?status=New&page=1&limit=10
func (h *LeadHandler) List(c *fiber.Ctx) error {
	customerID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	status := c.Query("status")
	if status != "" && !entity.ValidLeadStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation([]dto.FieldError{
			{Field: "status", Message: "status debe ser New, Contacted, Converted o Lost"},
		}))
	}
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 10),
	}
	out, err := h.uc.List(GetIdentity(c), customerID, status, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update PUT /api/customers/:id/leads/:leadId
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	customerID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	leadID, err := pathID(c, "leadId")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(details))
	}
	lead, err := h.uc.Update(GetIdentity(c), customerID, leadID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(fiber.Map{"lead": lead}))
}

// Delete DELETE /api/customers/:id/leads/:leadId
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	customerID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	leadID, err := pathID(c, "leadId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(GetIdentity(c), customerID, leadID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "lead eliminado"})
}
