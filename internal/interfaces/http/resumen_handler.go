package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// ResumenHandler maneja el tablero y la búsqueda global.
type ResumenHandler struct {
	uc *usecase.ResumenUseCase
}

// NewResumenHandler construye el handler.
func NewResumenHandler(uc *usecase.ResumenUseCase) *ResumenHandler {
	return &ResumenHandler{uc: uc}
}

// Resumen devuelve los indicadores de la plantilla activa.
func (h *ResumenHandler) Resumen(c *fiber.Ctx) error {
	res, err := h.uc.Resumen(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(res)
}

// Buscar corre la búsqueda global (?q=texto) sobre todas las
// plantillas.
func (h *ResumenHandler) Buscar(c *fiber.Ctx) error {
	resultados, err := h.uc.Buscar(c.Context(), c.Query("q"))
	if err != nil {
		return responderError(c, err)
	}
	if resultados == nil {
		resultados = []dto.BusquedaResultado{}
	}
	return c.JSON(resultados)
}
