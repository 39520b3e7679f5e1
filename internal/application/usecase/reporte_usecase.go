package usecase

import (
	"context"
	"fmt"

	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
)

// ReportePDF genera el PDF del mes a partir de la plantilla.
type ReportePDF interface {
	Generar(t *entity.Plantilla) ([]byte, error)
}

// ReporteUseCase arma el reporte mensual de la plantilla activa.
type ReporteUseCase struct {
	co  *persist.Coordinator
	gen ReportePDF
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(co *persist.Coordinator, gen ReportePDF) *ReporteUseCase {
	return &ReporteUseCase{co: co, gen: gen}
}

// MesPDF devuelve el PDF del mes activo y el nombre de archivo
// sugerido.
func (uc *ReporteUseCase) MesPDF(ctx context.Context) ([]byte, string, error) {
	var datos []byte
	var nombre string
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		pdf, err := uc.gen.Generar(t)
		if err != nil {
			return err
		}
		datos = pdf
		nombre = fmt.Sprintf("reporte-%s.pdf", t.Nombre)
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return datos, nombre, nil
}
