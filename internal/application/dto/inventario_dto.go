package dto

import "github.com/shopspring/decimal"

// CrearArticuloRequest alta de un artículo de inventario.
type CrearArticuloRequest struct {
	Categoria string           `json:"categoria"`
	Producto  string           `json:"producto"`
	Stock     int              `json:"stock"`
	Minimo    int              `json:"minimo"`
	Costo     *decimal.Decimal `json:"costo"`
}

// ActualizarArticuloRequest edición parcial de un artículo.
type ActualizarArticuloRequest struct {
	Categoria *string          `json:"categoria"`
	Producto  *string          `json:"producto"`
	Stock     *int             `json:"stock"`
	Minimo    *int             `json:"minimo"`
	Costo     *decimal.Decimal `json:"costo"`
}
