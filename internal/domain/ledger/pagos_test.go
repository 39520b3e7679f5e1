package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestMarcarCxcPagada cubre la regla "pago dispara asiento": saldar una cuenta
// por cobrar registra un ingreso vinculado por origen CXC + refId, con el
// monto y el concepto de la cuenta, y el vínculo sobrevive a renombres porque
// se hace por id y no por nombre.
// ──────────────────────────────────────────────────────────────────────────────
func TestMarcarCxcPagada_GeneraIngreso(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	tpl.Cxc = append(tpl.Cxc, entity.Cxc{
		ID: "cxc-1", AlumnoID: "al-1", Nombre: "Ana",
		Concepto: ledger.ConceptoCuota,
		Monto:    decimal.NewFromInt(150),
		Estado:   entity.EstadoPendiente,
	})

	ok := ledger.MarcarCxcPagadaPorID(tpl, "cxc-1")

	require.True(t, ok)
	assert.Equal(t, entity.EstadoPagado, tpl.Cxc[0].Estado)
	assert.Equal(t, entity.HoyISO(), tpl.Cxc[0].PagadoEn)

	require.Len(t, tpl.Ingresos, 1)
	ing := tpl.Ingresos[0]
	assert.Equal(t, entity.OrigenCxc, ing.Origen)
	assert.Equal(t, "cxc-1", ing.RefID)
	assert.Equal(t, "Ana", ing.Nombre)
	assert.Equal(t, ledger.MedioEfectivo, ing.Medio)
	assert.Equal(t, entity.EstadoPagado, ing.Estado)
	assert.True(t, decimal.NewFromInt(150).Equal(ing.Monto))
}

// TestMarcarCxcPagada_YaPagada verifica que saldar dos veces no duplica el
// ingreso.
func TestMarcarCxcPagada_YaPagada(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	tpl.Cxc = append(tpl.Cxc, entity.Cxc{
		ID: "cxc-1", Nombre: "Ana", Monto: decimal.NewFromInt(150),
		Estado: entity.EstadoPendiente,
	})

	require.True(t, ledger.MarcarCxcPagadaPorID(tpl, "cxc-1"))
	assert.False(t, ledger.MarcarCxcPagadaPorID(tpl, "cxc-1"))
	assert.Len(t, tpl.Ingresos, 1)
}

// TestMarcarCxcPagada_NoExiste verifica el id desconocido.
func TestMarcarCxcPagada_NoExiste(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	assert.False(t, ledger.MarcarCxcPagadaPorID(tpl, "nada"))
	assert.Empty(t, tpl.Ingresos)
}

// ──────────────────────────────────────────────────────────────────────────────
// TestSyncCxpGasto cubre el gasto espejo de una cuenta por pagar: pagada
// implica exactamente un gasto vinculado; no pagada, ninguno. El escenario
// "Luz SA" del flujo real: pagar la cuenta del proveedor crea el gasto con la
// categoría tomada del proveedor; volverla a Pendiente lo retira.
// ──────────────────────────────────────────────────────────────────────────────
func TestSyncCxpGasto_PagarCreaGasto(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	cuenta := entity.Cxp{
		ID: "cxp-1", Proveedor: "Luz SA", Concepto: "Energía marzo",
		Monto: decimal.NewFromInt(80), Estado: entity.EstadoPagado,
		PagadoEn: "2025-03-12", Notas: "recibo 443",
	}

	ledger.SyncCxpGasto(tpl, cuenta)

	require.Len(t, tpl.Gastos, 1)
	g := tpl.Gastos[0]
	assert.Equal(t, entity.OrigenCxp, g.Origen)
	assert.Equal(t, "cxp-1", g.RefID)
	assert.Equal(t, "2025-03-12", g.Fecha)
	assert.Equal(t, "Energía marzo", g.Concepto)
	assert.Equal(t, "Luz SA", g.Categoria, "la categoría del gasto es el proveedor")
	assert.Equal(t, "recibo 443", g.Notas)
}

// TestSyncCxpGasto_ActualizaEnSitio verifica que re-sincronizar una cuenta
// pagada actualiza el gasto existente en lugar de duplicarlo.
func TestSyncCxpGasto_ActualizaEnSitio(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	cuenta := entity.Cxp{
		ID: "cxp-1", Proveedor: "Luz SA", Concepto: "Energía",
		Monto: decimal.NewFromInt(80), Estado: entity.EstadoPagado, PagadoEn: "2025-03-12",
	}
	ledger.SyncCxpGasto(tpl, cuenta)

	cuenta.Monto = decimal.NewFromInt(95)
	cuenta.Concepto = "Energía marzo"
	ledger.SyncCxpGasto(tpl, cuenta)

	require.Len(t, tpl.Gastos, 1)
	assert.Equal(t, "Energía marzo", tpl.Gastos[0].Concepto)
	assert.True(t, decimal.NewFromInt(95).Equal(tpl.Gastos[0].Monto))
}

// TestSyncCxpGasto_RevertirRetiraGasto verifica la transición de ida y
// vuelta Pendiente→Pagado→Pendiente: quedan cero gastos espejo.
func TestSyncCxpGasto_RevertirRetiraGasto(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	tpl.Gastos = append(tpl.Gastos, entity.Gasto{
		ID: "g-manual", Fecha: "2025-03-01", Concepto: "Papelería",
		Monto: decimal.NewFromInt(10),
	})
	cuenta := entity.Cxp{
		ID: "cxp-1", Proveedor: "Luz SA", Concepto: "Energía",
		Monto: decimal.NewFromInt(80), Estado: entity.EstadoPagado, PagadoEn: "2025-03-12",
	}
	ledger.SyncCxpGasto(tpl, cuenta)
	require.Len(t, tpl.Gastos, 2)

	cuenta.Estado = entity.EstadoPendiente
	cuenta.PagadoEn = ""
	ledger.SyncCxpGasto(tpl, cuenta)

	require.Len(t, tpl.Gastos, 1)
	assert.Equal(t, "g-manual", tpl.Gastos[0].ID, "los gastos manuales no se tocan")
}

// TestSyncCxpGasto_SinFechaDePago verifica el respaldo a la fecha del día
// cuando la cuenta pagada no trae pagadoEn.
func TestSyncCxpGasto_SinFechaDePago(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	ledger.SyncCxpGasto(tpl, entity.Cxp{
		ID: "cxp-1", Proveedor: "Luz SA", Monto: decimal.NewFromInt(80),
		Estado: entity.EstadoPagado,
	})

	require.Len(t, tpl.Gastos, 1)
	assert.Equal(t, entity.HoyISO(), tpl.Gastos[0].Fecha)
}
