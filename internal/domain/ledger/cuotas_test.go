package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/domain/ledger"
)

func alumnoActivo(nombre string, cuota float64) entity.Alumno {
	a := entity.Alumno{
		ID:     "al-" + nombre,
		Nombre: nombre,
		Cuota:  decimal.NewFromFloat(cuota),
		Estado: entity.AlumnoActivo,
	}
	return a
}

// ──────────────────────────────────────────────────────────────────────────────
// TestAddCuotaPendiente_CreaCuota verifica la generación de la cuota mensual
// para un alumno activo sin cuentas previas: concepto fijo, vencimiento el día
// 10 del mes de la plantilla y estado Pendiente.
// ──────────────────────────────────────────────────────────────────────────────
func TestAddCuotaPendiente_CreaCuota(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	ana := alumnoActivo("Ana", 150)

	ledger.AddCuotaPendiente(tpl, ana)

	require.Len(t, tpl.Cxc, 1)
	c := tpl.Cxc[0]
	assert.Equal(t, "Ana", c.Nombre)
	assert.Equal(t, ana.ID, c.AlumnoID)
	assert.Equal(t, ledger.ConceptoCuota, c.Concepto)
	assert.Equal(t, "2025-03-10", c.Vence)
	assert.Equal(t, entity.EstadoPendiente, c.Estado)
	assert.True(t, decimal.NewFromInt(150).Equal(c.Monto))
}

// TestAddCuotaPendiente_Idempotente verifica que correr la reconciliación
// varias veces deja exactamente una cuenta abierta por alumno.
func TestAddCuotaPendiente_Idempotente(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	ana := alumnoActivo("Ana", 150)

	ledger.AddCuotaPendiente(tpl, ana)
	ledger.AddCuotaPendiente(tpl, ana)
	ledger.AddCuotaPendiente(tpl, ana)

	require.Len(t, tpl.Cxc, 1)
	assert.Equal(t, entity.EstadoPendiente, tpl.Cxc[0].Estado)
}

// TestAddCuotaPendiente_ActualizaEnSitio verifica que una cuenta abierta
// existente se actualiza con el nombre y la cuota vigentes en lugar de
// duplicarse, conservando su id.
func TestAddCuotaPendiente_ActualizaEnSitio(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	ana := alumnoActivo("Ana", 150)
	tpl.Cxc = append(tpl.Cxc, entity.Cxc{
		ID:       "cxc-1",
		AlumnoID: ana.ID,
		Nombre:   "Ana Vieja",
		Concepto: ledger.ConceptoCuota,
		Monto:    decimal.NewFromInt(100),
		Estado:   entity.EstadoVencido,
	})

	ledger.AddCuotaPendiente(tpl, ana)

	require.Len(t, tpl.Cxc, 1)
	c := tpl.Cxc[0]
	assert.Equal(t, "cxc-1", c.ID, "la cuenta abierta se actualiza, no se reemplaza")
	assert.Equal(t, "Ana", c.Nombre)
	assert.True(t, decimal.NewFromInt(150).Equal(c.Monto))
	assert.Equal(t, entity.EstadoVencido, c.Estado, "el estado abierto no cambia")
}

// TestAddCuotaPendiente_DescartaSobrantes verifica que cuando hay varias
// cuentas abiertas del mismo alumno sobrevive solo la primera.
func TestAddCuotaPendiente_DescartaSobrantes(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	ana := alumnoActivo("Ana", 150)
	tpl.Cxc = append(tpl.Cxc,
		entity.Cxc{ID: "cxc-1", AlumnoID: ana.ID, Nombre: "Ana", Estado: entity.EstadoPendiente},
		entity.Cxc{ID: "cxc-2", AlumnoID: ana.ID, Nombre: "Ana", Estado: entity.EstadoVencido},
		entity.Cxc{ID: "cxc-3", Nombre: "Otro", Estado: entity.EstadoPendiente},
	)

	ledger.AddCuotaPendiente(tpl, ana)

	require.Len(t, tpl.Cxc, 2)
	assert.Equal(t, "cxc-1", tpl.Cxc[0].ID)
	assert.Equal(t, "cxc-3", tpl.Cxc[1].ID, "las cuentas de otros alumnos no se tocan")
}

// TestAddCuotaPendiente_NoRegeneraPagada verifica que un alumno con su cuota
// ya pagada no recibe una cuota nueva en la misma plantilla.
func TestAddCuotaPendiente_NoRegeneraPagada(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	ana := alumnoActivo("Ana", 150)
	tpl.Cxc = append(tpl.Cxc, entity.Cxc{
		ID: "cxc-1", AlumnoID: ana.ID, Nombre: "Ana",
		Concepto: ledger.ConceptoCuota, Estado: entity.EstadoPagado, PagadoEn: "2025-03-05",
	})

	ledger.AddCuotaPendiente(tpl, ana)

	require.Len(t, tpl.Cxc, 1)
	assert.Equal(t, entity.EstadoPagado, tpl.Cxc[0].Estado)
}

// TestAddCuotaPendiente_InactivoRetiraAbiertas verifica que marcar un alumno
// como inactivo retira sus cuentas abiertas pero conserva las pagadas como
// historial.
func TestAddCuotaPendiente_InactivoRetiraAbiertas(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	ana := alumnoActivo("Ana", 150)
	ana.Estado = entity.AlumnoInactivo
	tpl.Cxc = append(tpl.Cxc,
		entity.Cxc{ID: "cxc-1", AlumnoID: ana.ID, Nombre: "Ana", Estado: entity.EstadoPendiente},
		entity.Cxc{ID: "cxc-2", AlumnoID: ana.ID, Nombre: "Ana", Estado: entity.EstadoPagado, PagadoEn: "2025-03-02"},
	)

	ledger.AddCuotaPendiente(tpl, ana)

	require.Len(t, tpl.Cxc, 1)
	assert.Equal(t, "cxc-2", tpl.Cxc[0].ID, "la cuenta pagada queda como historial")
}

// TestAddCuotaPendiente_EmpatePorNombre verifica que una fila vieja sin
// alumnoId se adopta por nombre normalizado (acentos y mayúsculas aparte) y
// queda vinculada por id.
func TestAddCuotaPendiente_EmpatePorNombre(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	ana := alumnoActivo("Ana María", 150)
	tpl.Cxc = append(tpl.Cxc, entity.Cxc{
		ID: "cxc-1", Nombre: "  ana maria ", Estado: entity.EstadoPendiente,
	})

	ledger.AddCuotaPendiente(tpl, ana)

	require.Len(t, tpl.Cxc, 1)
	assert.Equal(t, ana.ID, tpl.Cxc[0].AlumnoID, "la fila vieja queda vinculada por id")
	assert.Equal(t, "Ana María", tpl.Cxc[0].Nombre)
}

// TestVenceDia10_SinMesEnNombre verifica el respaldo al mes corriente cuando
// el nombre de la plantilla no contiene un mes.
func TestVenceDia10_SinMesEnNombre(t *testing.T) {
	tpl := entity.NuevaPlantilla("Plantilla de prueba")
	assert.Equal(t, entity.MesISO()+"-10", ledger.VenceDia10(tpl))
}
