package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/application/session"
	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/infrastructure/localstore"
	"github.com/xtreme-academy/cuentas-api/internal/infrastructure/pdf"
	"github.com/xtreme-academy/cuentas-api/internal/infrastructure/sqlite"
	apphttp "github.com/xtreme-academy/cuentas-api/internal/interfaces/http"
	"github.com/xtreme-academy/cuentas-api/pkg/logger"
)

func armarApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	dir := t.TempDir()

	db, err := sqlite.Open(filepath.Join(dir, "plantillas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	work, err := localstore.NewWorkingStore(filepath.Join(dir, "working"), 0, log)
	require.NoError(t, err)

	ses := session.New(sqlite.NewPlantillaRepository(db, log), work, log)
	require.NoError(t, ses.Bootstrap(context.Background()))
	co := persist.NewCoordinator(ses, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		PlantillaUC:  usecase.NewPlantillaUseCase(co),
		AlumnoUC:     usecase.NewAlumnoUseCase(co),
		CuentasUC:    usecase.NewCuentasUseCase(co),
		MovimientoUC: usecase.NewMovimientoUseCase(co),
		InventarioUC: usecase.NewInventarioUseCase(co),
		ResumenUC:    usecase.NewResumenUseCase(co),
		BackupUC:     usecase.NewBackupUseCase(co),
		CSVUC:        usecase.NewCSVUseCase(co),
		ReporteUC:    usecase.NewReporteUseCase(co, pdf.NewMarotoReporteMensual("Xtreme Academy")),
	})
	return app
}

func hacerJSON(t *testing.T, app *fiber.App, metodo, ruta string, cuerpo any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if cuerpo != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(cuerpo))
	}
	req := httptest.NewRequest(metodo, ruta, &buf)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

// TestRouter_Health verifica el endpoint de salud.
func TestRouter_Health(t *testing.T) {
	app := armarApp(t)
	req := httptest.NewRequest("GET", "/health", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

// TestRouter_FlujoCuota cubre el flujo completo por HTTP: alta de
// alumno, cuota generada, pago confirmado e ingreso resultante.
func TestRouter_FlujoCuota(t *testing.T) {
	app := armarApp(t)

	res := hacerJSON(t, app, "POST", "/api/alumnos", fiber.Map{"nombre": "Ana", "cuota": "150"})
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	req := httptest.NewRequest("GET", "/api/cxc/", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	var cxc []entity.Cxc
	require.NoError(t, json.NewDecoder(res.Body).Decode(&cxc))
	require.Len(t, cxc, 1)

	// Sin confirmar, el pago no corre.
	res = hacerJSON(t, app, "POST", "/api/cxc/"+cxc[0].ID+"/pagar", fiber.Map{})
	assert.Equal(t, fiber.StatusPreconditionRequired, res.StatusCode)

	res = hacerJSON(t, app, "POST", "/api/cxc/"+cxc[0].ID+"/pagar", fiber.Map{"confirmar": true})
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	req = httptest.NewRequest("GET", "/api/ingresos/", nil)
	res, err = app.Test(req, -1)
	require.NoError(t, err)
	var ingresos []entity.Ingreso
	require.NoError(t, json.NewDecoder(res.Body).Decode(&ingresos))
	require.Len(t, ingresos, 1)
	assert.Equal(t, cxc[0].ID, ingresos[0].RefID)
}

// TestRouter_AlumnoSinNombre verifica el 400 de validación.
func TestRouter_AlumnoSinNombre(t *testing.T) {
	app := armarApp(t)
	res := hacerJSON(t, app, "POST", "/api/alumnos", fiber.Map{"nombre": "   "})
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

// TestRouter_CSVExport verifica la descarga CSV de una colección.
func TestRouter_CSVExport(t *testing.T) {
	app := armarApp(t)
	req := httptest.NewRequest("GET", "/api/csv/gastos", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/csv")
}

// TestRouter_CSVColeccionInvalida verifica el 400 por colección
// desconocida.
func TestRouter_CSVColeccionInvalida(t *testing.T) {
	app := armarApp(t)
	req := httptest.NewRequest("GET", "/api/csv/alumnos", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}
