package entity

import "github.com/shopspring/decimal"

// Articulo es un ítem de inventario (uniformes, equipamiento, etc.).
// Costo es opcional: nil cuando no se conoce el costo unitario.
type Articulo struct {
	ID        string           `json:"id"`
	Categoria string           `json:"categoria"`
	Producto  string           `json:"producto"`
	Stock     int              `json:"stock"`
	Minimo    int              `json:"minimo"`
	Costo     *decimal.Decimal `json:"costo"`
}

// BajoStock indica si el stock cayó al mínimo configurado o por debajo.
func (a *Articulo) BajoStock() bool { return a.Stock <= a.Minimo }
