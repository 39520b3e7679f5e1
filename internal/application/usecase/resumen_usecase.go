package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/application/session"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/domain/ledger"
)

// ResumenUseCase arma los indicadores del tablero y la búsqueda
// global entre plantillas.
type ResumenUseCase struct {
	co *persist.Coordinator
}

// NewResumenUseCase construye el caso de uso.
func NewResumenUseCase(co *persist.Coordinator) *ResumenUseCase {
	return &ResumenUseCase{co: co}
}

// Resumen calcula los indicadores de la plantilla activa: totales del
// mes, cuentas abiertas con su monto acumulado, alumnos activos y
// artículos bajo stock.
func (uc *ResumenUseCase) Resumen(ctx context.Context) (*dto.ResumenResponse, error) {
	var res dto.ResumenResponse
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		res.Plantilla = t.Nombre
		res.TotalIngresos = decimal.Zero
		res.TotalGastos = decimal.Zero
		res.CxcPorCobrar = decimal.Zero
		res.CxpPorPagar = decimal.Zero

		for _, mov := range t.Ingresos {
			res.TotalIngresos = res.TotalIngresos.Add(mov.Monto)
		}
		for _, mov := range t.Gastos {
			res.TotalGastos = res.TotalGastos.Add(mov.Monto)
		}
		res.Balance = res.TotalIngresos.Sub(res.TotalGastos)

		for _, c := range t.Cxc {
			if c.Abierta() {
				res.CxcAbiertas++
				res.CxcPorCobrar = res.CxcPorCobrar.Add(c.Monto)
			}
		}
		for _, c := range t.Cxp {
			if !c.Pagada() {
				res.CxpAbiertas++
				res.CxpPorPagar = res.CxpPorPagar.Add(c.Monto)
			}
		}
		for _, a := range t.Alumnos {
			if a.Activo() {
				res.AlumnosActivos++
			}
		}
		for _, art := range t.Inventario {
			if art.BajoStock() {
				res.BajoStock++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Buscar recorre todas las plantillas buscando el texto en alumnos,
// movimientos, cuentas e inventario. La comparación va sin acentos ni
// mayúsculas.
func (uc *ResumenUseCase) Buscar(ctx context.Context, consulta string) ([]dto.BusquedaResultado, error) {
	aguja := ledger.NormalizarTexto(consulta)
	if aguja == "" {
		return nil, nil
	}

	var resultados []dto.BusquedaResultado
	err := uc.co.Do(ctx, func(ctx context.Context, ses *session.Session) error {
		if err := ses.RefrescarLista(ctx); err != nil {
			return err
		}
		for _, t := range ses.Lista() {
			resultados = append(resultados, buscarEnPlantilla(&t, aguja)...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultados, nil
}

func buscarEnPlantilla(t *entity.Plantilla, aguja string) []dto.BusquedaResultado {
	var res []dto.BusquedaResultado
	agregar := func(coleccion, itemID, detalle string, campos ...string) {
		for _, campo := range campos {
			if strings.Contains(ledger.NormalizarTexto(campo), aguja) {
				res = append(res, dto.BusquedaResultado{
					PlantillaID:     t.ID,
					PlantillaNombre: t.Nombre,
					Coleccion:       coleccion,
					ItemID:          itemID,
					Detalle:         detalle,
				})
				return
			}
		}
	}

	for _, a := range t.Alumnos {
		agregar("alumnos", a.ID, a.Nombre, a.Nombre, a.Numero, a.ATA, a.Programa)
	}
	for _, mov := range t.Ingresos {
		agregar("ingresos", mov.ID, fmt.Sprintf("%s · %s", mov.Fecha, mov.Concepto), mov.Nombre, mov.Concepto)
	}
	for _, mov := range t.Gastos {
		agregar("gastos", mov.ID, fmt.Sprintf("%s · %s", mov.Fecha, mov.Concepto), mov.Concepto, mov.Categoria)
	}
	for _, c := range t.Cxc {
		agregar("cxc", c.ID, fmt.Sprintf("%s · %s", c.Nombre, c.Concepto), c.Nombre, c.Concepto)
	}
	for _, c := range t.Cxp {
		agregar("cxp", c.ID, fmt.Sprintf("%s · %s", c.Proveedor, c.Concepto), c.Proveedor, c.Concepto)
	}
	for _, art := range t.Inventario {
		agregar("inventario", art.ID, art.Producto, art.Producto, art.Categoria)
	}
	return res
}
