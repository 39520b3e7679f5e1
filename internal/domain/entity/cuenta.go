package entity

import "github.com/shopspring/decimal"

// Cxc es una cuenta por cobrar: dinero que le deben a la academia,
// típicamente la cuota pendiente de un alumno. AlumnoID es una
// referencia blanda: las cuentas cargadas a mano pueden no tenerla.
// Numero y ATA son campos viejos de filas cargadas a mano; solo se
// usan para decidir la pertenencia al borrar un alumno.
type Cxc struct {
	ID       string          `json:"id"`
	AlumnoID string          `json:"alumnoId,omitempty"`
	Nombre   string          `json:"nombre"`
	Concepto string          `json:"concepto"`
	Monto    decimal.Decimal `json:"monto"`
	Vence    string          `json:"vence"` // YYYY-MM-DD
	Estado   string          `json:"estado"`
	PagadoEn string          `json:"pagadoEn,omitempty"`
	Numero   string          `json:"numero,omitempty"`
	ATA      string          `json:"ata,omitempty"`
	Notas    string          `json:"notas,omitempty"`
}

// Abierta indica si la cuenta sigue sin saldar (pendiente o vencida).
func (c *Cxc) Abierta() bool { return EsAbierto(c.Estado) }

// Cxp es una cuenta por pagar: dinero que la academia le debe a un
// proveedor. Una Cxp pagada tiene exactamente un gasto espejo con
// origen CXP y refId igual a su id (ver ledger.SyncCxpGasto).
type Cxp struct {
	ID        string          `json:"id"`
	Proveedor string          `json:"proveedor"`
	Concepto  string          `json:"concepto"`
	Monto     decimal.Decimal `json:"monto"`
	Vence     string          `json:"vence"`
	Estado    string          `json:"estado"`
	PagadoEn  string          `json:"pagadoEn,omitempty"`
	Notas     string          `json:"notas,omitempty"`
}

// Pagada indica si la cuenta por pagar ya fue saldada.
func (c *Cxp) Pagada() bool { return EsPagado(c.Estado) }
