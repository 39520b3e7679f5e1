package usecase

import (
	"context"
	"fmt"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/application/session"
	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/domain/ledger"
)

// PlantillaUseCase maneja el ciclo de vida de las plantillas: listar,
// crear, clonar, renombrar, activar y eliminar.
type PlantillaUseCase struct {
	co *persist.Coordinator
}

// NewPlantillaUseCase construye el caso de uso.
func NewPlantillaUseCase(co *persist.Coordinator) *PlantillaUseCase {
	return &PlantillaUseCase{co: co}
}

// Listar devuelve el listado de plantillas con la activa marcada.
func (uc *PlantillaUseCase) Listar(ctx context.Context) ([]dto.PlantillaResumen, error) {
	var filas []dto.PlantillaResumen
	err := uc.co.Do(ctx, func(ctx context.Context, ses *session.Session) error {
		if err := ses.RefrescarLista(ctx); err != nil {
			return err
		}
		lista := ses.Lista()
		filas = make([]dto.PlantillaResumen, 0, len(lista))
		for i := range lista {
			filas = append(filas, dto.ToPlantillaResumen(&lista[i], ses.ActivaID()))
		}
		return nil
	})
	return filas, err
}

// Activa devuelve la plantilla activa completa, ya reparada.
func (uc *PlantillaUseCase) Activa(ctx context.Context) (*entity.Plantilla, error) {
	var copia entity.Plantilla
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		copia = *t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &copia, nil
}

// Crear da de alta una plantilla vacía. Sin nombre, toma el mes
// corriente. Un nombre repetido se rechaza salvo que venga Forzar.
func (uc *PlantillaUseCase) Crear(ctx context.Context, in dto.CrearPlantillaRequest) (*dto.PlantillaResumen, error) {
	nombre := in.Nombre
	if nombre == "" {
		nombre = entity.MesISO()
	}
	t := entity.NuevaPlantilla(nombre)

	err := uc.co.Do(ctx, func(ctx context.Context, ses *session.Session) error {
		if !in.Forzar {
			if err := ses.RefrescarLista(ctx); err != nil {
				return err
			}
			for _, fila := range ses.Lista() {
				if ledger.NormalizarTexto(fila.Nombre) == ledger.NormalizarTexto(nombre) {
					return fmt.Errorf("ya existe una plantilla %q: %w", fila.Nombre, domain.ErrDuplicate)
				}
			}
		}
		if err := ses.Guardar(ctx, t); err != nil {
			return err
		}
		if in.Activar {
			return ses.Activar(ctx, t.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fila := dto.ToPlantillaResumen(t, t.ID)
	fila.Activa = in.Activar
	return &fila, nil
}

// Clonar arma un mes nuevo desde la plantilla activa: arrastra
// alumnos, inventario y cuentas, nunca los movimientos, y reconcilia
// las cuotas del mes nuevo.
func (uc *PlantillaUseCase) Clonar(ctx context.Context, in dto.ClonarPlantillaRequest) (*dto.PlantillaResumen, error) {
	nombre := in.Nombre
	if nombre == "" {
		nombre = entity.MesISO()
	}

	var nueva *entity.Plantilla
	err := uc.co.Do(ctx, func(ctx context.Context, ses *session.Session) error {
		origen, err := ses.Activa(ctx)
		if err != nil {
			return err
		}
		nueva = origen.Clonar(nombre)
		ledger.ReconciliarCuotas(nueva)
		if err := ses.Guardar(ctx, nueva); err != nil {
			return err
		}
		if in.Activar {
			return ses.Activar(ctx, nueva.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fila := dto.ToPlantillaResumen(nueva, nueva.ID)
	fila.Activa = in.Activar
	return &fila, nil
}

// Renombrar cambia el nombre de la plantilla activa.
func (uc *PlantillaUseCase) Renombrar(ctx context.Context, in dto.RenombrarPlantillaRequest) error {
	nombre := in.Nombre
	if nombre == "" {
		nombre = entity.MesISO()
	}
	return uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		t.Nombre = nombre
		return nil
	})
}

// Activar cambia la plantilla activa.
func (uc *PlantillaUseCase) Activar(ctx context.Context, id string) error {
	return uc.co.Do(ctx, func(ctx context.Context, ses *session.Session) error {
		return ses.Activar(ctx, id)
	})
}

// Eliminar borra una plantilla; la última en pie no se puede borrar.
func (uc *PlantillaUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.co.Do(ctx, func(ctx context.Context, ses *session.Session) error {
		return ses.Eliminar(ctx, id)
	})
}
