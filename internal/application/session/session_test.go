package session_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtreme-academy/cuentas-api/internal/application/session"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/infrastructure/localstore"
	"github.com/xtreme-academy/cuentas-api/internal/infrastructure/sqlite"
	"github.com/xtreme-academy/cuentas-api/pkg/logger"
)

// TestSesion_ActivaReconciliaNombre verifica la reparación de lectura:
// una copia de trabajo sin nombre toma el nombre del listado durable y
// la reparación queda asentada en el conjunto de trabajo.
func TestSesion_ActivaReconciliaNombre(t *testing.T) {
	dir := t.TempDir()
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	db, err := sqlite.Open(filepath.Join(dir, "plantillas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := sqlite.NewPlantillaRepository(db, log)

	work, err := localstore.NewWorkingStore(filepath.Join(dir, "working"), 0, log)
	require.NoError(t, err)

	ctx := context.Background()
	tpl := entity.NuevaPlantilla("2025-03")
	require.NoError(t, repo.Put(ctx, tpl))

	// Conjunto de trabajo con la misma plantilla pero sin nombre.
	copia := *tpl
	copia.Nombre = ""
	blob, err := json.Marshal(map[string]*entity.Plantilla{tpl.ID: &copia})
	require.NoError(t, err)
	require.NoError(t, work.SaveBlob(blob))
	require.NoError(t, work.SetActiveID(tpl.ID))

	ses := session.New(repo, work, log)
	require.NoError(t, ses.Bootstrap(ctx))

	activa, err := ses.Activa(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-03", activa.Nombre)

	datos, err := work.LoadBlob()
	require.NoError(t, err)
	var guardado map[string]entity.Plantilla
	require.NoError(t, json.Unmarshal(datos, &guardado))
	assert.Equal(t, "2025-03", guardado[tpl.ID].Nombre)
}
