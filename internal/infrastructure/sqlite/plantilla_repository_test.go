package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/infrastructure/sqlite"
	"github.com/xtreme-academy/cuentas-api/pkg/logger"
)

func abrirRepo(t *testing.T) *sqlite.PlantillaRepository {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "plantillas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlite.NewPlantillaRepository(db, logger.New(logger.Config{Env: "development", Level: "error"}))
}

// TestPlantillaRepository_PutGet verifica el ciclo completo guardar y
// recuperar con las colecciones intactas.
func TestPlantillaRepository_PutGet(t *testing.T) {
	repo := abrirRepo(t)
	ctx := context.Background()

	tpl := entity.NuevaPlantilla("2025-03")
	tpl.Alumnos = append(tpl.Alumnos, entity.Alumno{ID: "al-1", Nombre: "Ana"})

	require.NoError(t, repo.Put(ctx, tpl))

	leida, err := repo.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, leida.ID)
	assert.Equal(t, "2025-03", leida.Nombre)
	require.Len(t, leida.Alumnos, 1)
	assert.Equal(t, "Ana", leida.Alumnos[0].Nombre)
}

// TestPlantillaRepository_PutReemplaza verifica que Put con el mismo id
// reemplaza en lugar de duplicar.
func TestPlantillaRepository_PutReemplaza(t *testing.T) {
	repo := abrirRepo(t)
	ctx := context.Background()

	tpl := entity.NuevaPlantilla("2025-03")
	require.NoError(t, repo.Put(ctx, tpl))
	tpl.Nombre = "2025-03 corregida"
	require.NoError(t, repo.Put(ctx, tpl))

	lista, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "2025-03 corregida", lista[0].Nombre)
}

// TestPlantillaRepository_NombresRepetidos verifica que el índice de nombre
// no es único: dos plantillas pueden llamarse igual (pasa al importar
// respaldos).
func TestPlantillaRepository_NombresRepetidos(t *testing.T) {
	repo := abrirRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, entity.NuevaPlantilla("2025-03")))
	require.NoError(t, repo.Put(ctx, entity.NuevaPlantilla("2025-03")))

	lista, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}

// TestPlantillaRepository_ListOrden verifica el orden por nombre
// descendente: los meses recientes primero.
func TestPlantillaRepository_ListOrden(t *testing.T) {
	repo := abrirRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, entity.NuevaPlantilla("2025-01")))
	require.NoError(t, repo.Put(ctx, entity.NuevaPlantilla("2025-03")))
	require.NoError(t, repo.Put(ctx, entity.NuevaPlantilla("2025-02")))

	lista, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lista, 3)
	assert.Equal(t, "2025-03", lista[0].Nombre)
	assert.Equal(t, "2025-02", lista[1].Nombre)
	assert.Equal(t, "2025-01", lista[2].Nombre)
}

// TestPlantillaRepository_GetNoExiste verifica el sentinela ErrNotFound.
func TestPlantillaRepository_GetNoExiste(t *testing.T) {
	repo := abrirRepo(t)

	_, err := repo.Get(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestPlantillaRepository_Delete verifica eliminar y el id desconocido.
func TestPlantillaRepository_Delete(t *testing.T) {
	repo := abrirRepo(t)
	ctx := context.Background()

	tpl := entity.NuevaPlantilla("2025-03")
	require.NoError(t, repo.Put(ctx, tpl))
	require.NoError(t, repo.Delete(ctx, tpl.ID))

	_, err := repo.Get(ctx, tpl.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, tpl.ID), domain.ErrNotFound)
}

// TestPlantillaRepository_PutAsignaID verifica que una plantilla sin id
// recibe uno al guardarse.
func TestPlantillaRepository_PutAsignaID(t *testing.T) {
	repo := abrirRepo(t)
	ctx := context.Background()

	tpl := &entity.Plantilla{Nombre: "2025-04"}
	require.NoError(t, repo.Put(ctx, tpl))
	require.NotEmpty(t, tpl.ID)

	leida, err := repo.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-04", leida.Nombre)
}

// TestOpen_ReparaIndiceUnicoViejo verifica la reparación del índice de
// nombre: una base vieja con índice UNIQUE se reabre, el índice se
// recrea sin unicidad y los nombres repetidos dejan de fallar. La
// reparación además es idempotente al reabrir.
func TestOpen_ReparaIndiceUnicoViejo(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "plantillas.db")
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	crudo, err := sql.Open("sqlite", ruta)
	require.NoError(t, err)
	_, err = crudo.Exec(`CREATE TABLE plantillas (
		id             TEXT PRIMARY KEY,
		nombre         TEXT NOT NULL DEFAULT '',
		creado_en      INTEGER NOT NULL DEFAULT 0,
		actualizado_en INTEGER NOT NULL DEFAULT 0,
		datos          BLOB NOT NULL
	)`)
	require.NoError(t, err)
	_, err = crudo.Exec(`CREATE UNIQUE INDEX idx_plantillas_nombre ON plantillas (nombre)`)
	require.NoError(t, err)
	require.NoError(t, crudo.Close())

	db, err := sqlite.Open(ruta)
	require.NoError(t, err)
	repo := sqlite.NewPlantillaRepository(db, log)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, entity.NuevaPlantilla("2025-03")))
	require.NoError(t, repo.Put(ctx, entity.NuevaPlantilla("2025-03")))
	require.NoError(t, db.Close())

	otraVez, err := sqlite.Open(ruta)
	require.NoError(t, err)
	t.Cleanup(func() { otraVez.Close() })

	lista, err := sqlite.NewPlantillaRepository(otraVez, log).List(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}
