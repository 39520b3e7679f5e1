package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// BackupHandler maneja la exportación e importación del respaldo
// completo.
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export devuelve el respaldo con todas las plantillas.
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	respaldo, err := h.uc.Exportar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="xtreme-backup.json"`)
	return c.JSON(respaldo)
}

// Import fusiona un respaldo por nombre de plantilla.
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportarBackupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Importar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
