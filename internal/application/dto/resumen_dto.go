package dto

import "github.com/shopspring/decimal"

// ResumenResponse son los indicadores del tablero para la plantilla
// activa.
type ResumenResponse struct {
	Plantilla      string          `json:"plantilla"`
	TotalIngresos  decimal.Decimal `json:"totalIngresos"`
	TotalGastos    decimal.Decimal `json:"totalGastos"`
	Balance        decimal.Decimal `json:"balance"`
	CxcAbiertas    int             `json:"cxcAbiertas"`
	CxcPorCobrar   decimal.Decimal `json:"cxcPorCobrar"`
	CxpAbiertas    int             `json:"cxpAbiertas"`
	CxpPorPagar    decimal.Decimal `json:"cxpPorPagar"`
	AlumnosActivos int             `json:"alumnosActivos"`
	BajoStock      int             `json:"bajoStock"`
}

// BusquedaResultado es una coincidencia de la búsqueda global, que
// recorre todas las plantillas y no solo la activa.
type BusquedaResultado struct {
	PlantillaID     string `json:"plantillaId"`
	PlantillaNombre string `json:"plantillaNombre"`
	Coleccion       string `json:"coleccion"`
	ItemID          string `json:"itemId"`
	Detalle         string `json:"detalle"`
}
