package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/domain/ledger"
	"github.com/xtreme-academy/cuentas-api/pkg/validation"
)

// AlumnoUseCase maneja los alumnos de la plantilla activa. Toda alta o
// edición reconcilia la cuota mensual del alumno en la misma mutación.
type AlumnoUseCase struct {
	co *persist.Coordinator
}

// NewAlumnoUseCase construye el caso de uso.
func NewAlumnoUseCase(co *persist.Coordinator) *AlumnoUseCase {
	return &AlumnoUseCase{co: co}
}

// Listar devuelve los alumnos de la plantilla activa.
func (uc *AlumnoUseCase) Listar(ctx context.Context, estado string) ([]entity.Alumno, error) {
	var alumnos []entity.Alumno
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		alumnos = make([]entity.Alumno, 0, len(t.Alumnos))
		filtro := ledger.NormalizarTexto(estado)
		for _, a := range t.Alumnos {
			switch filtro {
			case "":
			case "activo":
				// Sin estado cuenta como activo.
				if !a.Activo() {
					continue
				}
			default:
				if ledger.NormalizarTexto(a.Estado) != filtro {
					continue
				}
			}
			alumnos = append(alumnos, a)
		}
		return nil
	})
	return alumnos, err
}

// Crear da de alta un alumno y genera su cuota del mes si corresponde.
func (uc *AlumnoUseCase) Crear(ctx context.Context, in dto.CrearAlumnoRequest) (*entity.Alumno, error) {
	nombre, err := validation.TextoObligatorio(in.Nombre, "el nombre del alumno")
	if err != nil {
		return nil, err
	}
	a := entity.Alumno{
		ID:         uuid.New().String(),
		Nombre:     nombre,
		Nacimiento: in.Nacimiento,
		Numero:     in.Numero,
		Ingreso:    in.Ingreso,
		Programa:   in.Programa,
		Rango:      in.Rango,
		Cuota:      in.Cuota,
		ATA:        in.ATA,
		Estado:     in.Estado,
		Email:      in.Email,
		Direccion:  in.Direccion,
		Notas:      in.Notas,
	}
	err = uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		t.Alumnos = append(t.Alumnos, a)
		ledger.AddCuotaPendiente(t, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Actualizar edita un alumno campo a campo y reconcilia su cuota: un
// cambio de cuota o de estado se refleja en las cuentas por cobrar.
func (uc *AlumnoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarAlumnoRequest) (*entity.Alumno, error) {
	var actualizado entity.Alumno
	err := uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		var a *entity.Alumno
		for i := range t.Alumnos {
			if t.Alumnos[i].ID == id {
				a = &t.Alumnos[i]
				break
			}
		}
		if a == nil {
			return domain.ErrNotFound
		}
		if in.Nombre != nil {
			nombre, err := validation.TextoObligatorio(*in.Nombre, "el nombre del alumno")
			if err != nil {
				return err
			}
			a.Nombre = nombre
		}
		if in.Nacimiento != nil {
			a.Nacimiento = *in.Nacimiento
		}
		if in.Numero != nil {
			a.Numero = *in.Numero
		}
		if in.Ingreso != nil {
			a.Ingreso = *in.Ingreso
		}
		if in.Programa != nil {
			a.Programa = *in.Programa
		}
		if in.Rango != nil {
			a.Rango = *in.Rango
		}
		if in.Cuota != nil {
			a.Cuota = *in.Cuota
		}
		if in.Estado != nil {
			a.Estado = *in.Estado
		}
		if in.ATA != nil {
			a.ATA = *in.ATA
		}
		if in.Email != nil {
			a.Email = *in.Email
		}
		if in.Direccion != nil {
			a.Direccion = *in.Direccion
		}
		if in.Notas != nil {
			a.Notas = *in.Notas
		}
		ledger.AddCuotaPendiente(t, *a)
		actualizado = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// Eliminar borra un alumno con cascada sobre sus cuentas por cobrar.
func (uc *AlumnoUseCase) Eliminar(ctx context.Context, id string) (*dto.EliminarAlumnoResponse, error) {
	var res dto.EliminarAlumnoResponse
	err := uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		eliminadas, ok := ledger.EliminarAlumno(t, id)
		if !ok {
			return domain.ErrNotFound
		}
		res.CuentasEliminadas = eliminadas
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
