package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// ReporteHandler sirve el reporte mensual en PDF.
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Mes descarga el PDF del mes activo.
func (h *ReporteHandler) Mes(c *fiber.Ctx) error {
	datos, nombre, err := h.uc.MesPDF(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(datos)
}
