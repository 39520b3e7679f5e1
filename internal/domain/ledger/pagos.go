package ledger

import (
	"github.com/google/uuid"

	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
)

// MedioEfectivo es el medio por defecto del ingreso generado al saldar
// una cuenta por cobrar.
const MedioEfectivo = "Efectivo"

// MarcarCxcPagada salda la cuenta por cobrar en la posición dada y
// registra el ingreso correspondiente, vinculado a la cuenta por
// origen y refId para que el asiento sobreviva renombres del alumno.
// Devuelve false si la posición no existe o la cuenta ya estaba
// pagada.
func MarcarCxcPagada(t *entity.Plantilla, idx int) bool {
	if t == nil || idx < 0 || idx >= len(t.Cxc) {
		return false
	}
	c := &t.Cxc[idx]
	if entity.EsPagado(c.Estado) {
		return false
	}
	c.Estado = entity.EstadoPagado
	c.PagadoEn = entity.HoyISO()

	t.Ingresos = append(t.Ingresos, entity.Ingreso{
		ID:       uuid.New().String(),
		Fecha:    c.PagadoEn,
		Nombre:   c.Nombre,
		Concepto: c.Concepto,
		Monto:    c.Monto,
		Medio:    MedioEfectivo,
		Estado:   entity.EstadoPagado,
		Origen:   entity.OrigenCxc,
		RefID:    c.ID,
	})
	return true
}

// MarcarCxcPagadaPorID localiza la cuenta por id y la salda. Devuelve
// false si no existe o ya estaba pagada.
func MarcarCxcPagadaPorID(t *entity.Plantilla, id string) bool {
	if t == nil {
		return false
	}
	for i := range t.Cxc {
		if t.Cxc[i].ID == id {
			return MarcarCxcPagada(t, i)
		}
	}
	return false
}

// SyncCxpGasto mantiene el gasto espejo de una cuenta por pagar:
// pagada implica exactamente un gasto con origen CXP y refId de la
// cuenta (se crea o se actualiza en sitio); no pagada implica ninguno.
// La transición Pendiente→Pagado→Pendiente deja cero gastos espejo.
func SyncCxpGasto(t *entity.Plantilla, c entity.Cxp) {
	if t == nil {
		return
	}
	if !c.Pagada() {
		filtrados := t.Gastos[:0]
		for _, g := range t.Gastos {
			if g.Origen == entity.OrigenCxp && g.RefID == c.ID {
				continue
			}
			filtrados = append(filtrados, g)
		}
		t.Gastos = filtrados
		return
	}

	fecha := c.PagadoEn
	if fecha == "" {
		fecha = entity.HoyISO()
	}
	for i := range t.Gastos {
		g := &t.Gastos[i]
		if g.Origen == entity.OrigenCxp && g.RefID == c.ID {
			g.Fecha = fecha
			g.Concepto = c.Concepto
			g.Categoria = c.Proveedor
			g.Monto = c.Monto
			g.Notas = c.Notas
			return
		}
	}
	t.Gastos = append(t.Gastos, entity.Gasto{
		ID:        uuid.New().String(),
		Fecha:     fecha,
		Concepto:  c.Concepto,
		Categoria: c.Proveedor,
		Monto:     c.Monto,
		Notas:     c.Notas,
		Origen:    entity.OrigenCxp,
		RefID:     c.ID,
	})
}
