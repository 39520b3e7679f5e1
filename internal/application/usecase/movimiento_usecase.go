package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/pkg/validation"
)

// MovimientoUseCase maneja los movimientos manuales del libro:
// ingresos y gastos. Los movimientos generados (origen CXC/CXP) no se
// editan por acá; pertenecen a la cuenta que los generó.
type MovimientoUseCase struct {
	co *persist.Coordinator
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(co *persist.Coordinator) *MovimientoUseCase {
	return &MovimientoUseCase{co: co}
}

// ListarIngresos devuelve los ingresos de la plantilla activa.
func (uc *MovimientoUseCase) ListarIngresos(ctx context.Context) ([]entity.Ingreso, error) {
	var movs []entity.Ingreso
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		movs = append([]entity.Ingreso{}, t.Ingresos...)
		return nil
	})
	return movs, err
}

// CrearIngreso registra un ingreso manual.
func (uc *MovimientoUseCase) CrearIngreso(ctx context.Context, in dto.CrearIngresoRequest) (*entity.Ingreso, error) {
	fecha, err := validation.FechaObligatoria(in.Fecha, "el ingreso")
	if err != nil {
		return nil, err
	}
	if err := validation.MontoPositivoDecimal(in.Monto, "el ingreso"); err != nil {
		return nil, err
	}
	mov := entity.Ingreso{
		ID:       uuid.New().String(),
		Fecha:    fecha,
		Nombre:   in.Nombre,
		Concepto: in.Concepto,
		Monto:    in.Monto,
		Medio:    in.Medio,
		Estado:   in.Estado,
		Notas:    in.Notas,
	}
	err = uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		t.Ingresos = append(t.Ingresos, mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &mov, nil
}

// ActualizarIngreso edita un ingreso manual. Un ingreso generado por
// una cuenta por cobrar no se toca.
func (uc *MovimientoUseCase) ActualizarIngreso(ctx context.Context, id string, in dto.ActualizarIngresoRequest) (*entity.Ingreso, error) {
	var actualizado entity.Ingreso
	err := uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		var mov *entity.Ingreso
		for i := range t.Ingresos {
			if t.Ingresos[i].ID == id {
				mov = &t.Ingresos[i]
				break
			}
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Origen == entity.OrigenCxc {
			return domain.ErrConflict
		}
		if in.Fecha != nil {
			fecha, err := validation.FechaObligatoria(*in.Fecha, "el ingreso")
			if err != nil {
				return err
			}
			mov.Fecha = fecha
		}
		if in.Nombre != nil {
			mov.Nombre = *in.Nombre
		}
		if in.Concepto != nil {
			mov.Concepto = *in.Concepto
		}
		if in.Monto != nil {
			if err := validation.MontoPositivoDecimal(*in.Monto, "el ingreso"); err != nil {
				return err
			}
			mov.Monto = *in.Monto
		}
		if in.Medio != nil {
			mov.Medio = *in.Medio
		}
		if in.Estado != nil {
			mov.Estado = *in.Estado
		}
		if in.Notas != nil {
			mov.Notas = *in.Notas
		}
		actualizado = *mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// EliminarIngreso borra un ingreso manual. El ingreso de una cuota
// cobrada pertenece a su cuenta y no se borra a mano.
func (uc *MovimientoUseCase) EliminarIngreso(ctx context.Context, id string) error {
	return uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		for i := range t.Ingresos {
			if t.Ingresos[i].ID != id {
				continue
			}
			if t.Ingresos[i].Origen == entity.OrigenCxc {
				return domain.ErrConflict
			}
			t.Ingresos = append(t.Ingresos[:i], t.Ingresos[i+1:]...)
			return nil
		}
		return domain.ErrNotFound
	})
}

// ListarGastos devuelve los gastos de la plantilla activa.
func (uc *MovimientoUseCase) ListarGastos(ctx context.Context) ([]entity.Gasto, error) {
	var movs []entity.Gasto
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		movs = append([]entity.Gasto{}, t.Gastos...)
		return nil
	})
	return movs, err
}

// CrearGasto registra un gasto manual.
func (uc *MovimientoUseCase) CrearGasto(ctx context.Context, in dto.CrearGastoRequest) (*entity.Gasto, error) {
	fecha, err := validation.FechaObligatoria(in.Fecha, "el gasto")
	if err != nil {
		return nil, err
	}
	if err := validation.MontoPositivoDecimal(in.Monto, "el gasto"); err != nil {
		return nil, err
	}
	mov := entity.Gasto{
		ID:        uuid.New().String(),
		Fecha:     fecha,
		Concepto:  in.Concepto,
		Categoria: in.Categoria,
		Monto:     in.Monto,
		Notas:     in.Notas,
	}
	err = uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		t.Gastos = append(t.Gastos, mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &mov, nil
}

// ActualizarGasto edita un gasto manual. Los gastos espejo de cuentas
// por pagar se gobiernan desde la cuenta, no por acá.
func (uc *MovimientoUseCase) ActualizarGasto(ctx context.Context, id string, in dto.ActualizarGastoRequest) (*entity.Gasto, error) {
	var actualizado entity.Gasto
	err := uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		var mov *entity.Gasto
		for i := range t.Gastos {
			if t.Gastos[i].ID == id {
				mov = &t.Gastos[i]
				break
			}
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Origen == entity.OrigenCxp {
			return domain.ErrConflict
		}
		if in.Fecha != nil {
			fecha, err := validation.FechaObligatoria(*in.Fecha, "el gasto")
			if err != nil {
				return err
			}
			mov.Fecha = fecha
		}
		if in.Concepto != nil {
			mov.Concepto = *in.Concepto
		}
		if in.Categoria != nil {
			mov.Categoria = *in.Categoria
		}
		if in.Monto != nil {
			if err := validation.MontoPositivoDecimal(*in.Monto, "el gasto"); err != nil {
				return err
			}
			mov.Monto = *in.Monto
		}
		if in.Notas != nil {
			mov.Notas = *in.Notas
		}
		actualizado = *mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// EliminarGasto borra un gasto manual.
func (uc *MovimientoUseCase) EliminarGasto(ctx context.Context, id string) error {
	return uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		for i := range t.Gastos {
			if t.Gastos[i].ID != id {
				continue
			}
			if t.Gastos[i].Origen == entity.OrigenCxp {
				return domain.ErrConflict
			}
			t.Gastos = append(t.Gastos[:i], t.Gastos[i+1:]...)
			return nil
		}
		return domain.ErrNotFound
	})
}
