package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/application/session"
	"github.com/xtreme-academy/cuentas-api/internal/application/usecase"
	"github.com/xtreme-academy/cuentas-api/internal/infrastructure/localstore"
	infrapdf "github.com/xtreme-academy/cuentas-api/internal/infrastructure/pdf"
	"github.com/xtreme-academy/cuentas-api/internal/infrastructure/sqlite"
	httpRouter "github.com/xtreme-academy/cuentas-api/internal/interfaces/http"
	"github.com/xtreme-academy/cuentas-api/pkg/config"
	"github.com/xtreme-academy/cuentas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("datos", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	if err := os.MkdirAll(cfg.Store.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de datos")
	}

	db, err := sqlite.Open(cfg.Store.DBPath())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén durable")
	}
	defer db.Close()

	work, err := localstore.NewWorkingStore(cfg.Store.WorkingDir(), cfg.Store.WorkingLimitBytes, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de trabajo")
	}

	repo := sqlite.NewPlantillaRepository(db, log)
	ses := session.New(repo, work, log)
	if err := ses.Bootstrap(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("levantar sesión")
	}
	co := persist.NewCoordinator(ses, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		PlantillaUC:  usecase.NewPlantillaUseCase(co),
		AlumnoUC:     usecase.NewAlumnoUseCase(co),
		CuentasUC:    usecase.NewCuentasUseCase(co),
		MovimientoUC: usecase.NewMovimientoUseCase(co),
		InventarioUC: usecase.NewInventarioUseCase(co),
		ResumenUC:    usecase.NewResumenUseCase(co),
		BackupUC:     usecase.NewBackupUseCase(co),
		CSVUC:        usecase.NewCSVUseCase(co),
		ReporteUC:    usecase.NewReporteUseCase(co, infrapdf.NewMarotoReporteMensual(cfg.App.Name)),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
