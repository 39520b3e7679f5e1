package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// AlumnoHandler maneja las peticiones HTTP de alumnos.
type AlumnoHandler struct {
	uc *usecase.AlumnoUseCase
}

// NewAlumnoHandler construye el handler.
func NewAlumnoHandler(uc *usecase.AlumnoUseCase) *AlumnoHandler {
	return &AlumnoHandler{uc: uc}
}

// List devuelve los alumnos de la plantilla activa. Acepta ?estado=.
func (h *AlumnoHandler) List(c *fiber.Ctx) error {
	alumnos, err := h.uc.Listar(c.Context(), c.Query("estado"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(alumnos)
}

// Create da de alta un alumno; su cuota del mes sale en la misma
// operación.
func (h *AlumnoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearAlumnoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update edita un alumno.
func (h *AlumnoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ActualizarAlumnoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete borra un alumno con su cascada de cuentas.
func (h *AlumnoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Eliminar(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
