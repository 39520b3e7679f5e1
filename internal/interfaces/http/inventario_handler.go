package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// InventarioHandler maneja las peticiones HTTP del inventario.
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// List devuelve el inventario de la plantilla activa.
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	articulos, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(articulos)
}

// BajoStock devuelve los artículos en o por debajo del mínimo.
func (h *InventarioHandler) BajoStock(c *fiber.Ctx) error {
	bajos, err := h.uc.BajoStock(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(bajos)
}

// Create da de alta un artículo.
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update edita un artículo.
func (h *InventarioHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete borra un artículo.
func (h *InventarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
