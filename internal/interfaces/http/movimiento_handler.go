package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// MovimientoHandler maneja las peticiones HTTP de ingresos y gastos.
type MovimientoHandler struct {
	uc *usecase.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *usecase.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// ListIngresos devuelve los ingresos de la plantilla activa.
func (h *MovimientoHandler) ListIngresos(c *fiber.Ctx) error {
	movs, err := h.uc.ListarIngresos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(movs)
}

// CreateIngreso registra un ingreso manual.
func (h *MovimientoHandler) CreateIngreso(c *fiber.Ctx) error {
	var in dto.CrearIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearIngreso(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateIngreso edita un ingreso manual.
func (h *MovimientoHandler) UpdateIngreso(c *fiber.Ctx) error {
	var in dto.ActualizarIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarIngreso(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DeleteIngreso borra un ingreso manual.
func (h *MovimientoHandler) DeleteIngreso(c *fiber.Ctx) error {
	if err := h.uc.EliminarIngreso(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListGastos devuelve los gastos de la plantilla activa.
func (h *MovimientoHandler) ListGastos(c *fiber.Ctx) error {
	movs, err := h.uc.ListarGastos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(movs)
}

// CreateGasto registra un gasto manual.
func (h *MovimientoHandler) CreateGasto(c *fiber.Ctx) error {
	var in dto.CrearGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearGasto(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateGasto edita un gasto manual.
func (h *MovimientoHandler) UpdateGasto(c *fiber.Ctx) error {
	var in dto.ActualizarGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarGasto(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DeleteGasto borra un gasto manual.
func (h *MovimientoHandler) DeleteGasto(c *fiber.Ctx) error {
	if err := h.uc.EliminarGasto(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
