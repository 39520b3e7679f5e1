package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/domain/ledger"
)

// TestNormalizar_ColeccionesNulas verifica la reparación de una plantilla con
// colecciones ausentes: las seis quedan como slices vacíos, nunca nulos.
func TestNormalizar_ColeccionesNulas(t *testing.T) {
	var tpl entity.Plantilla
	ledger.Normalizar(&tpl)

	assert.NotNil(t, tpl.Ingresos)
	assert.NotNil(t, tpl.Gastos)
	assert.NotNil(t, tpl.Cxc)
	assert.NotNil(t, tpl.Cxp)
	assert.NotNil(t, tpl.Inventario)
	assert.NotNil(t, tpl.Alumnos)
}

// TestNormalizar_MigraClaveLegada verifica la migración de la clave vieja
// "Cxc" (mayúscula) al campo canónico, tal como la escribían versiones
// anteriores del almacenamiento.
func TestNormalizar_MigraClaveLegada(t *testing.T) {
	crudo := []byte(`{"id":"t1","name":"2025-03","Cxc":[{"id":"c1","nombre":"Ana","estado":"Pendiente"}]}`)

	var tpl entity.Plantilla
	require.NoError(t, json.Unmarshal(crudo, &tpl))
	ledger.Normalizar(&tpl)

	require.Len(t, tpl.Cxc, 1)
	assert.Equal(t, "c1", tpl.Cxc[0].ID)
	assert.Nil(t, tpl.CxcLegado, "la forma legada no debe volver a serializarse")

	salida, err := json.Marshal(&tpl)
	require.NoError(t, err)
	assert.NotContains(t, string(salida), `"Cxc"`)
}

// TestNormalizar_NoPisaCanonica verifica que la clave legada no pisa datos
// canónicos ya presentes.
func TestNormalizar_NoPisaCanonica(t *testing.T) {
	tpl := entity.Plantilla{
		Cxc:       []entity.Cxc{{ID: "nueva"}},
		CxcLegado: []entity.Cxc{{ID: "vieja"}},
	}
	ledger.Normalizar(&tpl)

	require.Len(t, tpl.Cxc, 1)
	assert.Equal(t, "nueva", tpl.Cxc[0].ID)
}

// TestNormalizar_Idempotente verifica que normalizar dos veces no cambia nada.
func TestNormalizar_Idempotente(t *testing.T) {
	tpl := entity.NuevaPlantilla("2025-03")
	tpl.Cxc = append(tpl.Cxc, entity.Cxc{ID: "c1"})

	ledger.Normalizar(tpl)
	antes := len(tpl.Cxc)
	ledger.Normalizar(tpl)

	assert.Equal(t, antes, len(tpl.Cxc))
}
