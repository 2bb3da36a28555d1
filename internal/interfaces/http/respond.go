package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
)

// respondError traduce errores de dominio al envolvente HTTP. Nada escapa
// crudo al cliente: lo no clasificado se loguea y sale como 500 genérico.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_ID", "identificador mal formado"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("EMAIL_EXISTS", "el email ya está registrado"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("DUPLICATE", "ya existe un registro con ese email"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "no tiene acceso a este recurso"))
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "recurso no encontrado"))
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "error interno del servidor"))
	}
}

// pathID extrae y valida un parámetro de ruta con formato UUID.
func pathID(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	if _, err := uuid.Parse(raw); err != nil {
		return "", domain.ErrInvalidID
	}
	return raw, nil
}
