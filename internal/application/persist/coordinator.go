// Package persist serializa el acceso a la sesión: toda lectura o
// mutación de la plantilla activa pasa por el Coordinator, que toma el
// candado, aplica el cambio y corre el ciclo de persistencia completo
// antes de soltar. Es el único punto de escritura de la aplicación.
package persist

import (
	"context"
	"sync"

	"github.com/xtreme-academy/cuentas-api/internal/application/session"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/pkg/logger"
)

// Coordinator envuelve la sesión con un candado de proceso.
type Coordinator struct {
	mu  sync.Mutex
	ses *session.Session
	log *logger.Logger
}

// NewCoordinator crea el coordinador sobre una sesión ya levantada.
func NewCoordinator(ses *session.Session, log *logger.Logger) *Coordinator {
	return &Coordinator{ses: ses, log: log}
}

// Mutate aplica fn sobre la plantilla activa y persiste el resultado.
// Si fn devuelve error no se persiste nada y el error sube tal cual.
func (c *Coordinator) Mutate(ctx context.Context, fn func(t *entity.Plantilla) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.ses.Activa(ctx)
	if err != nil {
		return err
	}
	if err := fn(t); err != nil {
		return err
	}
	return c.ses.PersistActiva(ctx)
}

// View aplica fn sobre la plantilla activa sin persistir. La plantilla
// llega ya reparada; fn no debe mutarla.
func (c *Coordinator) View(ctx context.Context, fn func(t *entity.Plantilla) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.ses.Activa(ctx)
	if err != nil {
		return err
	}
	return fn(t)
}

// Do corre fn con la sesión completa bajo el candado, para operaciones
// de nivel plantilla (crear, clonar, activar, eliminar, respaldos).
// La persistencia queda a cargo de fn.
func (c *Coordinator) Do(ctx context.Context, fn func(ctx context.Context, ses *session.Session) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(ctx, c.ses)
}
