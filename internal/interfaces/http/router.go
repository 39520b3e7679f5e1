package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlantillaUC  *usecase.PlantillaUseCase
	AlumnoUC     *usecase.AlumnoUseCase
	CuentasUC    *usecase.CuentasUseCase
	MovimientoUC *usecase.MovimientoUseCase
	InventarioUC *usecase.InventarioUseCase
	ResumenUC    *usecase.ResumenUseCase
	BackupUC     *usecase.BackupUseCase
	CSVUC        *usecase.CSVUseCase
	ReporteUC    *usecase.ReporteUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Plantillas y sesión
	plantillas := api.Group("/plantillas")
	plantillaHandler := NewPlantillaHandler(deps.PlantillaUC)
	plantillas.Get("/", plantillaHandler.List)
	plantillas.Post("/", plantillaHandler.Create)
	plantillas.Get("/activa", plantillaHandler.Activa)
	plantillas.Put("/activa/nombre", plantillaHandler.Rename)
	plantillas.Post("/clonar", plantillaHandler.Clone)
	plantillas.Post("/:id/activar", plantillaHandler.Activate)
	plantillas.Delete("/:id", plantillaHandler.Delete)

	// Alumnos
	alumnos := api.Group("/alumnos")
	alumnoHandler := NewAlumnoHandler(deps.AlumnoUC)
	alumnos.Get("/", alumnoHandler.List)
	alumnos.Post("/", alumnoHandler.Create)
	alumnos.Put("/:id", alumnoHandler.Update)
	alumnos.Delete("/:id", alumnoHandler.Delete)

	// Cuentas por cobrar / por pagar
	cuentasHandler := NewCuentasHandler(deps.CuentasUC)
	cxc := api.Group("/cxc")
	cxc.Get("/", cuentasHandler.ListCxc)
	cxc.Post("/", cuentasHandler.CreateCxc)
	cxc.Put("/:id", cuentasHandler.UpdateCxc)
	cxc.Post("/:id/pagar", cuentasHandler.PayCxc)
	cxc.Delete("/:id", cuentasHandler.DeleteCxc)

	cxp := api.Group("/cxp")
	cxp.Get("/", cuentasHandler.ListCxp)
	cxp.Post("/", cuentasHandler.CreateCxp)
	cxp.Put("/:id", cuentasHandler.UpdateCxp)
	cxp.Post("/:id/pagar", cuentasHandler.PayCxp)
	cxp.Delete("/:id", cuentasHandler.DeleteCxp)

	// Movimientos
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	ingresos := api.Group("/ingresos")
	ingresos.Get("/", movimientoHandler.ListIngresos)
	ingresos.Post("/", movimientoHandler.CreateIngreso)
	ingresos.Put("/:id", movimientoHandler.UpdateIngreso)
	ingresos.Delete("/:id", movimientoHandler.DeleteIngreso)

	gastos := api.Group("/gastos")
	gastos.Get("/", movimientoHandler.ListGastos)
	gastos.Post("/", movimientoHandler.CreateGasto)
	gastos.Put("/:id", movimientoHandler.UpdateGasto)
	gastos.Delete("/:id", movimientoHandler.DeleteGasto)

	// Inventario
	inventario := api.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Get("/", inventarioHandler.List)
	inventario.Get("/bajo-stock", inventarioHandler.BajoStock)
	inventario.Post("/", inventarioHandler.Create)
	inventario.Put("/:id", inventarioHandler.Update)
	inventario.Delete("/:id", inventarioHandler.Delete)

	// Tablero y búsqueda global
	resumenHandler := NewResumenHandler(deps.ResumenUC)
	api.Get("/resumen", resumenHandler.Resumen)
	api.Get("/buscar", resumenHandler.Buscar)

	// Respaldos, CSV y reportes
	backupHandler := NewBackupHandler(deps.BackupUC)
	api.Get("/backup/export", backupHandler.Export)
	api.Post("/backup/import", backupHandler.Import)

	csvHandler := NewCSVHandler(deps.CSVUC)
	api.Get("/csv/:coleccion", csvHandler.Export)
	api.Post("/csv/:coleccion", csvHandler.Import)

	reporteHandler := NewReporteHandler(deps.ReporteUC)
	api.Get("/reportes/mes.pdf", reporteHandler.Mes)
}
