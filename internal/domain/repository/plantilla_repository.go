package repository

import (
	"context"

	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
)

// PlantillaRepository define el contrato del almacén durable e
// indexado de plantillas. La implementación vive en infrastructure.
type PlantillaRepository interface {
	// Put guarda o reemplaza la plantilla completa por id.
	Put(ctx context.Context, t *entity.Plantilla) error

	// Get recupera una plantilla por id. Devuelve domain.ErrNotFound
	// si no existe.
	Get(ctx context.Context, id string) (*entity.Plantilla, error)

	// List devuelve todas las plantillas ordenadas por nombre
	// descendente, de modo que los meses más recientes queden primero.
	List(ctx context.Context) ([]entity.Plantilla, error)

	// Delete elimina la plantilla por id. Devuelve domain.ErrNotFound
	// si no existe.
	Delete(ctx context.Context, id string) error
}
