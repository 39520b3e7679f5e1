package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// PlantillaHandler maneja las peticiones HTTP del ciclo de vida de
// plantillas.
type PlantillaHandler struct {
	uc *usecase.PlantillaUseCase
}

// NewPlantillaHandler construye el handler.
func NewPlantillaHandler(uc *usecase.PlantillaUseCase) *PlantillaHandler {
	return &PlantillaHandler{uc: uc}
}

// List devuelve el listado con la activa marcada.
func (h *PlantillaHandler) List(c *fiber.Ctx) error {
	filas, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(filas)
}

// Activa devuelve la plantilla activa completa.
func (h *PlantillaHandler) Activa(c *fiber.Ctx) error {
	t, err := h.uc.Activa(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(t)
}

// Create da de alta una plantilla vacía.
func (h *PlantillaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearPlantillaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Clone arma el mes nuevo desde la activa.
func (h *PlantillaHandler) Clone(c *fiber.Ctx) error {
	var in dto.ClonarPlantillaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Clonar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename renombra la plantilla activa.
func (h *PlantillaHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenombrarPlantillaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Renombrar(c.Context(), in); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Activate cambia la plantilla activa.
func (h *PlantillaHandler) Activate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Activar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete borra una plantilla.
func (h *PlantillaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
