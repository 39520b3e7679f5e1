package dto

import "github.com/shopspring/decimal"

// CrearCxcRequest alta manual de una cuenta por cobrar.
type CrearCxcRequest struct {
	AlumnoID string          `json:"alumnoId"`
	Nombre   string          `json:"nombre"`
	Concepto string          `json:"concepto"`
	Monto    decimal.Decimal `json:"monto"`
	Vence    string          `json:"vence"`
	Estado   string          `json:"estado"`
	Notas    string          `json:"notas"`
}

// ActualizarCxcRequest edición parcial de una cuenta por cobrar.
type ActualizarCxcRequest struct {
	Nombre   *string          `json:"nombre"`
	Concepto *string          `json:"concepto"`
	Monto    *decimal.Decimal `json:"monto"`
	Vence    *string          `json:"vence"`
	Estado   *string          `json:"estado"`
	Notas    *string          `json:"notas"`
}

// PagarCuentaRequest salda una cuenta por cobrar o por pagar. El pago
// mueve el libro (genera ingreso o gasto espejo), así que exige
// confirmación explícita.
type PagarCuentaRequest struct {
	Confirmar bool `json:"confirmar"`
}

// CrearCxpRequest alta de una cuenta por pagar.
type CrearCxpRequest struct {
	Proveedor string          `json:"proveedor"`
	Concepto  string          `json:"concepto"`
	Monto     decimal.Decimal `json:"monto"`
	Vence     string          `json:"vence"`
	Estado    string          `json:"estado"`
	PagadoEn  string          `json:"pagadoEn"`
	Notas     string          `json:"notas"`
}

// ActualizarCxpRequest edición parcial de una cuenta por pagar. Un
// cambio de estado dispara la sincronización del gasto espejo.
type ActualizarCxpRequest struct {
	Proveedor *string          `json:"proveedor"`
	Concepto  *string          `json:"concepto"`
	Monto     *decimal.Decimal `json:"monto"`
	Vence     *string          `json:"vence"`
	Estado    *string          `json:"estado"`
	PagadoEn  *string          `json:"pagadoEn"`
	Notas     *string          `json:"notas"`
}
