package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// CSVHandler maneja la exportación e importación CSV por colección.
type CSVHandler struct {
	uc *usecase.CSVUseCase
}

// NewCSVHandler construye el handler.
func NewCSVHandler(uc *usecase.CSVUseCase) *CSVHandler {
	return &CSVHandler{uc: uc}
}

// Export descarga una colección de la plantilla activa como CSV.
func (h *CSVHandler) Export(c *fiber.Ctx) error {
	datos, nombre, err := h.uc.Exportar(c.Context(), c.Params("coleccion"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", nombre))
	return c.Send(datos)
}

// Import agrega filas de un CSV (cuerpo crudo) a una colección.
func (h *CSVHandler) Import(c *fiber.Ctx) error {
	out, err := h.uc.Importar(c.Context(), c.Params("coleccion"), c.Body())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
