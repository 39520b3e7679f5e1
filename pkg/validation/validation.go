// Package validation reúne las validaciones de entrada compartidas por
// los casos de uso: texto obligatorio, fechas y montos positivos. Los
// mensajes están pensados para mostrarse tal cual al usuario.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Error marca una falla de validación de entrada; el transporte la
// traduce a 400 con el mensaje tal cual.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func falla(formato string, args ...any) error {
	return &Error{msg: fmt.Sprintf(formato, args...)}
}

// TextoObligatorio normaliza el valor (espacios fuera) y exige que no
// quede vacío. Devuelve el valor limpio o el mensaje de error.
func TextoObligatorio(valor, etiqueta string) (string, error) {
	if etiqueta == "" {
		etiqueta = "este campo"
	}
	limpio := strings.TrimSpace(valor)
	if limpio == "" {
		return "", falla("ingresá %s; no puede quedar vacío", etiqueta)
	}
	return limpio, nil
}

// FechaObligatoria exige una fecha no vacía; el formato se deja al
// control de entrada, igual que el resto del sistema.
func FechaObligatoria(valor, etiqueta string) (string, error) {
	if etiqueta == "" {
		etiqueta = "este dato"
	}
	limpio := strings.TrimSpace(valor)
	if limpio == "" {
		return "", falla("ingresá la fecha de %s", etiqueta)
	}
	return limpio, nil
}

// MontoPositivo parsea el monto y exige que sea estrictamente mayor a
// cero.
func MontoPositivo(valor, etiqueta string) (decimal.Decimal, error) {
	if etiqueta == "" {
		etiqueta = "este monto"
	}
	crudo := strings.TrimSpace(valor)
	if crudo == "" {
		return decimal.Zero, falla("ingresá el monto de %s", etiqueta)
	}
	monto, err := decimal.NewFromString(crudo)
	if err != nil || monto.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, falla("ingresá un monto mayor a 0 para %s", etiqueta)
	}
	return monto, nil
}

// MontoPositivoDecimal aplica la misma regla a un monto ya parseado.
func MontoPositivoDecimal(monto decimal.Decimal, etiqueta string) error {
	if etiqueta == "" {
		etiqueta = "este monto"
	}
	if monto.LessThanOrEqual(decimal.Zero) {
		return falla("ingresá un monto mayor a 0 para %s", etiqueta)
	}
	return nil
}
