package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/pkg/validation"
)

// responderError traduce los errores de dominio a HTTP. Los sentinelas
// conocidos llevan código propio; lo demás es 500 genérico.
func responderError(c *fiber.Ctx, err error) error {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrConfirmRequired):
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrLastTemplate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LAST_TEMPLATE", Message: err.Error()})
	case errors.Is(err, domain.ErrVersionMismatch):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VERSION_MISMATCH", Message: err.Error()})
	case errors.Is(err, domain.ErrStorageFull):
		return c.Status(fiber.StatusInsufficientStorage).JSON(dto.ErrorResponse{Code: "STORAGE_FULL", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
