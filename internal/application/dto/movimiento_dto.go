package dto

import "github.com/shopspring/decimal"

// CrearIngresoRequest alta manual de un ingreso.
type CrearIngresoRequest struct {
	Fecha    string          `json:"fecha"`
	Nombre   string          `json:"nombre"`
	Concepto string          `json:"concepto"`
	Monto    decimal.Decimal `json:"monto"`
	Medio    string          `json:"medio"`
	Estado   string          `json:"estado"`
	Notas    string          `json:"notas"`
}

// ActualizarIngresoRequest edición parcial de un ingreso.
type ActualizarIngresoRequest struct {
	Fecha    *string          `json:"fecha"`
	Nombre   *string          `json:"nombre"`
	Concepto *string          `json:"concepto"`
	Monto    *decimal.Decimal `json:"monto"`
	Medio    *string          `json:"medio"`
	Estado   *string          `json:"estado"`
	Notas    *string          `json:"notas"`
}

// CrearGastoRequest alta manual de un gasto.
type CrearGastoRequest struct {
	Fecha     string          `json:"fecha"`
	Concepto  string          `json:"concepto"`
	Categoria string          `json:"categoria"`
	Monto     decimal.Decimal `json:"monto"`
	Notas     string          `json:"notas"`
}

// ActualizarGastoRequest edición parcial de un gasto.
type ActualizarGastoRequest struct {
	Fecha     *string          `json:"fecha"`
	Concepto  *string          `json:"concepto"`
	Categoria *string          `json:"categoria"`
	Monto     *decimal.Decimal `json:"monto"`
	Notas     *string          `json:"notas"`
}
