package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// CuentasHandler maneja las peticiones HTTP de cuentas por cobrar y
// por pagar.
type CuentasHandler struct {
	uc *usecase.CuentasUseCase
}

// NewCuentasHandler construye el handler.
func NewCuentasHandler(uc *usecase.CuentasUseCase) *CuentasHandler {
	return &CuentasHandler{uc: uc}
}

// ListCxc devuelve las cuentas por cobrar. Acepta ?estado=, incluido
// el derivado "Vencido".
func (h *CuentasHandler) ListCxc(c *fiber.Ctx) error {
	cuentas, err := h.uc.ListarCxc(c.Context(), c.Query("estado"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cuentas)
}

// CreateCxc da de alta una cuenta por cobrar manual.
func (h *CuentasHandler) CreateCxc(c *fiber.Ctx) error {
	var in dto.CrearCxcRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearCxc(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCxc edita una cuenta por cobrar.
func (h *CuentasHandler) UpdateCxc(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ActualizarCxcRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarCxc(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PayCxc salda la cuenta y registra el ingreso. Exige confirmar en el
// cuerpo.
func (h *CuentasHandler) PayCxc(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.PagarCuentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.PagarCxc(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DeleteCxc borra una cuenta por cobrar.
func (h *CuentasHandler) DeleteCxc(c *fiber.Ctx) error {
	if err := h.uc.EliminarCxc(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCxp devuelve las cuentas por pagar.
func (h *CuentasHandler) ListCxp(c *fiber.Ctx) error {
	cuentas, err := h.uc.ListarCxp(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cuentas)
}

// CreateCxp da de alta una cuenta por pagar.
func (h *CuentasHandler) CreateCxp(c *fiber.Ctx) error {
	var in dto.CrearCxpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearCxp(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCxp edita una cuenta por pagar; el gasto espejo se
// resincroniza solo.
func (h *CuentasHandler) UpdateCxp(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ActualizarCxpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarCxp(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PayCxp salda la cuenta y genera el gasto espejo. Exige confirmar en
// el cuerpo.
func (h *CuentasHandler) PayCxp(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.PagarCuentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.PagarCxp(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DeleteCxp borra una cuenta por pagar junto con su gasto espejo.
func (h *CuentasHandler) DeleteCxp(c *fiber.Ctx) error {
	if err := h.uc.EliminarCxp(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
