package localstore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/infrastructure/localstore"
	"github.com/xtreme-academy/cuentas-api/pkg/logger"
)

func abrirStore(t *testing.T, limite int64) (*localstore.WorkingStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := localstore.NewWorkingStore(dir, limite, logger.New(logger.Config{Env: "development", Level: "error"}))
	require.NoError(t, err)
	return s, dir
}

// TestWorkingStore_CicloBlob verifica guardar y leer el blob.
func TestWorkingStore_CicloBlob(t *testing.T) {
	s, _ := abrirStore(t, 0)

	require.NoError(t, s.SaveBlob([]byte(`{"t1":{"id":"t1"}}`)))

	datos, err := s.LoadBlob()
	require.NoError(t, err)
	assert.JSONEq(t, `{"t1":{"id":"t1"}}`, string(datos))
}

// TestWorkingStore_BlobAusente verifica que sin blob previo la lectura
// devuelve vacío sin error.
func TestWorkingStore_BlobAusente(t *testing.T) {
	s, _ := abrirStore(t, 0)

	datos, err := s.LoadBlob()
	require.NoError(t, err)
	assert.Nil(t, datos)
}

// TestWorkingStore_BlobCorrupto verifica que un blob con JSON roto se trata
// como vacío en lugar de propagar el error.
func TestWorkingStore_BlobCorrupto(t *testing.T) {
	s, dir := abrirStore(t, 0)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "store.json"), []byte(`{"rota`), 0o644))

	datos, err := s.LoadBlob()
	require.NoError(t, err)
	assert.Nil(t, datos)
}

// TestWorkingStore_TechoDeTamano verifica que una escritura sobre el techo se
// rechaza con ErrStorageFull y el blob anterior queda intacto.
func TestWorkingStore_TechoDeTamano(t *testing.T) {
	s, _ := abrirStore(t, 32)

	require.NoError(t, s.SaveBlob([]byte(`{"chico":true}`)))

	grande := []byte(`{"relleno":"` + strings.Repeat("x", 64) + `"}`)
	err := s.SaveBlob(grande)
	require.ErrorIs(t, err, domain.ErrStorageFull)

	datos, err := s.LoadBlob()
	require.NoError(t, err)
	assert.JSONEq(t, `{"chico":true}`, string(datos))
}

// TestWorkingStore_Punteros verifica el ciclo de los punteros activo y
// legado, incluido borrar con "".
func TestWorkingStore_Punteros(t *testing.T) {
	s, _ := abrirStore(t, 0)

	assert.Empty(t, s.ActiveID())
	require.NoError(t, s.SetActiveID("t1"))
	assert.Equal(t, "t1", s.ActiveID())
	require.NoError(t, s.SetActiveID(""))
	assert.Empty(t, s.ActiveID())

	require.NoError(t, s.SetLastTemplateID("t9"))
	assert.Equal(t, "t9", s.LastTemplateID())
}
