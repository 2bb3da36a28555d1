package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *crm.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *crm.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(details))
	}
	customer, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(fiber.Map{"customer": customer}))
}

// List GET /api/customers?page=1&limit=10&q=acme
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 10),
	}
	out, err := h.uc.List(GetIdentity(c), c.Query("q"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID GET /api/customers/:id: cliente con sus leads.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(GetIdentity(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(details))
	}
	customer, err := h.uc.Update(GetIdentity(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(fiber.Map{"customer": customer}))
}

// Delete DELETE /api/customers/:id: borra el cliente y sus leads (una tx).
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), GetIdentity(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "cliente y leads eliminados"})
}
