package entity

import "github.com/shopspring/decimal"

// Alumno representa un estudiante de la academia. La cuota mensual
// (Cuota) alimenta la generación automática de cuentas por cobrar.
type Alumno struct {
	ID         string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Nacimiento string          `json:"nacimiento,omitempty"` // YYYY-MM-DD
	Numero     string          `json:"numero,omitempty"`     // teléfono de contacto
	Ingreso    string          `json:"ingreso,omitempty"`    // fecha de alta
	Programa   string          `json:"programa,omitempty"`
	Rango      string          `json:"rango,omitempty"`
	Cuota      decimal.Decimal `json:"cuota"`
	ATA        string          `json:"ata,omitempty"` // número ATA (federación)
	Estado     string          `json:"estado,omitempty"`
	Email      string          `json:"email,omitempty"`
	Direccion  string          `json:"direccion,omitempty"`
	Notas      string          `json:"notas,omitempty"`
}

// Activo indica si el alumno está en estado "Activo" (o sin estado).
func (a *Alumno) Activo() bool { return EsAlumnoActivo(a.Estado) }
