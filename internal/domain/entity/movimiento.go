package entity

import "github.com/shopspring/decimal"

// Ingreso es un movimiento de entrada de dinero. Origen/RefID señalan
// los ingresos generados automáticamente al saldar una cuenta por
// cobrar (origen "CXC", refId = id de la cxc).
type Ingreso struct {
	ID       string          `json:"id"`
	Fecha    string          `json:"fecha"` // YYYY-MM-DD
	Nombre   string          `json:"nombre,omitempty"`
	Concepto string          `json:"concepto"`
	Monto    decimal.Decimal `json:"monto"`
	Medio    string          `json:"medio,omitempty"` // Efectivo, Transferencia, etc.
	Estado   string          `json:"estado,omitempty"`
	Notas    string          `json:"notas,omitempty"`
	Origen   string          `json:"origen,omitempty"`
	RefID    string          `json:"refId,omitempty"`
}

// Gasto es un movimiento de salida de dinero. Los gastos espejo de
// cuentas por pagar llevan origen "CXP" y refId = id de la cxp.
type Gasto struct {
	ID        string          `json:"id"`
	Fecha     string          `json:"fecha"`
	Concepto  string          `json:"concepto"`
	Categoria string          `json:"categoria,omitempty"`
	Monto     decimal.Decimal `json:"monto"`
	Notas     string          `json:"notas,omitempty"`
	Origen    string          `json:"origen,omitempty"`
	RefID     string          `json:"refId,omitempty"`
}
