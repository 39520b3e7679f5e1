// Package pdf genera el reporte mensual de la academia en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Academia + mes de la plantilla                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos / Gastos / Balance / Por cobrar          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ingresos del mes                                    │
//	│  TABLA: Gastos del mes                                      │
//	│  TABLA: Cuentas por cobrar abiertas                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReporteMensual genera el reporte del mes usando Maroto v2.
type MarotoReporteMensual struct {
	academia string
}

// NewMarotoReporteMensual construye el generador con el nombre de la
// academia para el encabezado.
func NewMarotoReporteMensual(academia string) *MarotoReporteMensual {
	return &MarotoReporteMensual{academia: academia}
}

// Generar arma el PDF del mes y devuelve sus bytes.
func (g *MarotoReporteMensual) Generar(t *entity.Plantilla) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte mensual "+t.Nombre, true).
		WithAuthor(g.academia, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.academia, t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	agregarTabla(m, "Ingresos", []string{"Fecha", "Concepto", "Medio", "Monto"}, filasIngresos(t))
	agregarTabla(m, "Gastos", []string{"Fecha", "Concepto", "Categoría", "Monto"}, filasGastos(t))
	agregarTabla(m, "Cuentas por cobrar abiertas", []string{"Vence", "Alumno", "Concepto", "Monto"}, filasCxcAbiertas(t))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: academia (izq) y mes (der).
func headerRow(academia string, t *entity.Plantilla) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(academia, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte mensual", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(t.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
		),
	)
}

// resumenRow: los cuatro indicadores del mes en una línea.
func resumenRow(t *entity.Plantilla) core.Row {
	ingresos, gastos, porCobrar := decimal.Zero, decimal.Zero, decimal.Zero
	for _, mov := range t.Ingresos {
		ingresos = ingresos.Add(mov.Monto)
	}
	for _, mov := range t.Gastos {
		gastos = gastos.Add(mov.Monto)
	}
	for _, c := range t.Cxc {
		if c.Abierta() {
			porCobrar = porCobrar.Add(c.Monto)
		}
	}
	balance := ingresos.Sub(gastos)

	indicador := func(titulo, valor string) core.Col {
		return col.New(3).Add(
			text.New(titulo, props.Text{Size: 8, Color: colorGray}),
			text.New(valor, props.Text{Style: fontstyle.Bold, Size: 11, Top: 4}),
		)
	}
	return row.New(12).Add(
		indicador("Ingresos", ingresos.StringFixed(2)),
		indicador("Gastos", gastos.StringFixed(2)),
		indicador("Balance", balance.StringFixed(2)),
		indicador("Por cobrar", porCobrar.StringFixed(2)),
	)
}

func agregarTabla(m core.Maroto, titulo string, encabezados []string, filas [][]string) {
	m.AddRows(row.New(8).Add(
		col.New(12).Add(text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		})),
	))
	m.AddRows(tablaEncabezado(encabezados))
	if len(filas) == 0 {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Sin registros", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
		return
	}
	for _, fila := range filas {
		m.AddRows(tablaFila(fila))
	}
}

func tablaEncabezado(celdas []string) core.Row {
	cols := make([]core.Col, 0, len(celdas))
	for i, celda := range celdas {
		alinear := align.Left
		if i == len(celdas)-1 {
			alinear = align.Right
		}
		cols = append(cols, col.New(12/len(celdas)).Add(
			text.New(celda, props.Text{Style: fontstyle.Bold, Size: 8, Align: alinear}),
		))
	}
	return row.New(6).Add(cols...)
}

func tablaFila(celdas []string) core.Row {
	cols := make([]core.Col, 0, len(celdas))
	for i, celda := range celdas {
		alinear := align.Left
		if i == len(celdas)-1 {
			alinear = align.Right
		}
		cols = append(cols, col.New(12/len(celdas)).Add(
			text.New(celda, props.Text{Size: 8, Align: alinear}),
		))
	}
	return row.New(5).Add(cols...)
}

func filasIngresos(t *entity.Plantilla) [][]string {
	var filas [][]string
	for _, mov := range t.Ingresos {
		filas = append(filas, []string{mov.Fecha, mov.Concepto, mov.Medio, mov.Monto.StringFixed(2)})
	}
	return filas
}

func filasGastos(t *entity.Plantilla) [][]string {
	var filas [][]string
	for _, mov := range t.Gastos {
		filas = append(filas, []string{mov.Fecha, mov.Concepto, mov.Categoria, mov.Monto.StringFixed(2)})
	}
	return filas
}

func filasCxcAbiertas(t *entity.Plantilla) [][]string {
	var filas [][]string
	for _, c := range t.Cxc {
		if c.Abierta() {
			filas = append(filas, []string{c.Vence, c.Nombre, c.Concepto, c.Monto.StringFixed(2)})
		}
	}
	return filas
}
