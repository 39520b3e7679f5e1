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

// CuentasUseCase maneja las cuentas por cobrar y por pagar de la
// plantilla activa, junto con sus efectos sobre el libro: el pago de
// una cxc genera un ingreso, el estado de una cxp gobierna su gasto
// espejo.
type CuentasUseCase struct {
	co *persist.Coordinator
}

// NewCuentasUseCase construye el caso de uso.
func NewCuentasUseCase(co *persist.Coordinator) *CuentasUseCase {
	return &CuentasUseCase{co: co}
}

// ─── Cuentas por cobrar ───────────────────────────────────────────────

// EstadoVencido es un filtro derivado: cuentas sin pagar cuyo
// vencimiento ya pasó. No se persiste como estado.
const EstadoVencido = "Vencido"

// ListarCxc devuelve las cuentas por cobrar de la plantilla activa,
// opcionalmente filtradas por estado.
func (uc *CuentasUseCase) ListarCxc(ctx context.Context, estado string) ([]entity.Cxc, error) {
	hoy := entity.HoyISO()
	var cuentas []entity.Cxc
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		cuentas = make([]entity.Cxc, 0, len(t.Cxc))
		for _, c := range t.Cxc {
			switch estado {
			case "":
			case EstadoVencido:
				if entity.EsPagado(c.Estado) || c.Vence == "" || c.Vence >= hoy {
					continue
				}
			default:
				if c.Estado != estado {
					continue
				}
			}
			cuentas = append(cuentas, c)
		}
		return nil
	})
	return cuentas, err
}

// CrearCxc da de alta una cuenta por cobrar manual.
func (uc *CuentasUseCase) CrearCxc(ctx context.Context, in dto.CrearCxcRequest) (*entity.Cxc, error) {
	nombre, err := validation.TextoObligatorio(in.Nombre, "el nombre del deudor")
	if err != nil {
		return nil, err
	}
	if err := validation.MontoPositivoDecimal(in.Monto, "la cuenta"); err != nil {
		return nil, err
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoPendiente
	}
	c := entity.Cxc{
		ID:       uuid.New().String(),
		AlumnoID: in.AlumnoID,
		Nombre:   nombre,
		Concepto: in.Concepto,
		Monto:    in.Monto,
		Vence:    in.Vence,
		Estado:   estado,
		Notas:    in.Notas,
	}
	err = uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		t.Cxc = append(t.Cxc, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ActualizarCxc edita una cuenta por cobrar campo a campo.
func (uc *CuentasUseCase) ActualizarCxc(ctx context.Context, id string, in dto.ActualizarCxcRequest) (*entity.Cxc, error) {
	var actualizada entity.Cxc
	err := uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		var c *entity.Cxc
		for i := range t.Cxc {
			if t.Cxc[i].ID == id {
				c = &t.Cxc[i]
				break
			}
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if in.Nombre != nil {
			c.Nombre = *in.Nombre
		}
		if in.Concepto != nil {
			c.Concepto = *in.Concepto
		}
		if in.Monto != nil {
			if err := validation.MontoPositivoDecimal(*in.Monto, "la cuenta"); err != nil {
				return err
			}
			c.Monto = *in.Monto
		}
		if in.Vence != nil {
			c.Vence = *in.Vence
		}
		if in.Estado != nil {
			c.Estado = *in.Estado
		}
		if in.Notas != nil {
			c.Notas = *in.Notas
		}
		actualizada = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizada, nil
}

// PagarCxc salda una cuenta por cobrar y registra el ingreso. Sin
// confirmación explícita la operación no corre.
func (uc *CuentasUseCase) PagarCxc(ctx context.Context, id string, in dto.PagarCuentaRequest) (*entity.Cxc, error) {
	if !in.Confirmar {
		return nil, domain.ErrConfirmRequired
	}
	var pagada entity.Cxc
	err := uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		for i := range t.Cxc {
			if t.Cxc[i].ID != id {
				continue
			}
			if entity.EsPagado(t.Cxc[i].Estado) {
				return domain.ErrConflict
			}
			ledger.MarcarCxcPagada(t, i)
			pagada = t.Cxc[i]
			return nil
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &pagada, nil
}

// EliminarCxc borra una cuenta por cobrar.
func (uc *CuentasUseCase) EliminarCxc(ctx context.Context, id string) error {
	return uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		for i := range t.Cxc {
			if t.Cxc[i].ID == id {
				t.Cxc = append(t.Cxc[:i], t.Cxc[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// ─── Cuentas por pagar ────────────────────────────────────────────────

// ListarCxp devuelve las cuentas por pagar de la plantilla activa.
func (uc *CuentasUseCase) ListarCxp(ctx context.Context) ([]entity.Cxp, error) {
	var cuentas []entity.Cxp
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		cuentas = append([]entity.Cxp{}, t.Cxp...)
		return nil
	})
	return cuentas, err
}

// CrearCxp da de alta una cuenta por pagar. Si nace pagada, el gasto
// espejo se genera en la misma mutación.
func (uc *CuentasUseCase) CrearCxp(ctx context.Context, in dto.CrearCxpRequest) (*entity.Cxp, error) {
	proveedor, err := validation.TextoObligatorio(in.Proveedor, "el proveedor")
	if err != nil {
		return nil, err
	}
	if err := validation.MontoPositivoDecimal(in.Monto, "la cuenta"); err != nil {
		return nil, err
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoPendiente
	}
	c := entity.Cxp{
		ID:        uuid.New().String(),
		Proveedor: proveedor,
		Concepto:  in.Concepto,
		Monto:     in.Monto,
		Vence:     in.Vence,
		Estado:    estado,
		PagadoEn:  in.PagadoEn,
		Notas:     in.Notas,
	}
	if c.Pagada() && c.PagadoEn == "" {
		c.PagadoEn = entity.HoyISO()
	}
	err = uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		t.Cxp = append(t.Cxp, c)
		ledger.SyncCxpGasto(t, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ActualizarCxp edita una cuenta por pagar y resincroniza su gasto
// espejo: pasar a pagada lo crea, volver a pendiente lo retira.
func (uc *CuentasUseCase) ActualizarCxp(ctx context.Context, id string, in dto.ActualizarCxpRequest) (*entity.Cxp, error) {
	var actualizada entity.Cxp
	err := uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		var c *entity.Cxp
		for i := range t.Cxp {
			if t.Cxp[i].ID == id {
				c = &t.Cxp[i]
				break
			}
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if in.Proveedor != nil {
			proveedor, err := validation.TextoObligatorio(*in.Proveedor, "el proveedor")
			if err != nil {
				return err
			}
			c.Proveedor = proveedor
		}
		if in.Concepto != nil {
			c.Concepto = *in.Concepto
		}
		if in.Monto != nil {
			if err := validation.MontoPositivoDecimal(*in.Monto, "la cuenta"); err != nil {
				return err
			}
			c.Monto = *in.Monto
		}
		if in.Vence != nil {
			c.Vence = *in.Vence
		}
		if in.Estado != nil {
			c.Estado = *in.Estado
		}
		if in.PagadoEn != nil {
			c.PagadoEn = *in.PagadoEn
		}
		if c.Pagada() && c.PagadoEn == "" {
			c.PagadoEn = entity.HoyISO()
		}
		if !c.Pagada() {
			c.PagadoEn = ""
		}
		ledger.SyncCxpGasto(t, *c)
		actualizada = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizada, nil
}

// PagarCxp salda una cuenta por pagar y genera su gasto espejo. Igual
// que el cobro, exige confirmación explícita.
func (uc *CuentasUseCase) PagarCxp(ctx context.Context, id string, in dto.PagarCuentaRequest) (*entity.Cxp, error) {
	if !in.Confirmar {
		return nil, domain.ErrConfirmRequired
	}
	var pagada entity.Cxp
	err := uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		for i := range t.Cxp {
			if t.Cxp[i].ID != id {
				continue
			}
			if t.Cxp[i].Pagada() {
				return domain.ErrConflict
			}
			t.Cxp[i].Estado = entity.EstadoPagado
			if t.Cxp[i].PagadoEn == "" {
				t.Cxp[i].PagadoEn = entity.HoyISO()
			}
			ledger.SyncCxpGasto(t, t.Cxp[i])
			pagada = t.Cxp[i]
			return nil
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &pagada, nil
}

// EliminarCxp borra una cuenta por pagar junto con su gasto espejo.
func (uc *CuentasUseCase) EliminarCxp(ctx context.Context, id string) error {
	return uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		for i := range t.Cxp {
			if t.Cxp[i].ID != id {
				continue
			}
			huerfana := t.Cxp[i]
			huerfana.Estado = entity.EstadoPendiente
			t.Cxp = append(t.Cxp[:i], t.Cxp[i+1:]...)
			// Con la cuenta fuera, el espejo se retira.
			ledger.SyncCxpGasto(t, huerfana)
			return nil
		}
		return domain.ErrNotFound
	})
}
