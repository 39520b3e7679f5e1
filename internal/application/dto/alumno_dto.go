package dto

import "github.com/shopspring/decimal"

// CrearAlumnoRequest alta de alumno en la plantilla activa.
type CrearAlumnoRequest struct {
	Nombre     string          `json:"nombre"`
	Nacimiento string          `json:"nacimiento"`
	Numero     string          `json:"numero"`
	Ingreso    string          `json:"ingreso"`
	Programa   string          `json:"programa"`
	Rango      string          `json:"rango"`
	Cuota      decimal.Decimal `json:"cuota"`
	ATA        string          `json:"ata"`
	Estado     string          `json:"estado"`
	Email      string          `json:"email"`
	Direccion  string          `json:"direccion"`
	Notas      string          `json:"notas"`
}

// ActualizarAlumnoRequest edición parcial; los campos nulos no se tocan.
type ActualizarAlumnoRequest struct {
	Nombre     *string          `json:"nombre"`
	Nacimiento *string          `json:"nacimiento"`
	Numero     *string          `json:"numero"`
	Ingreso    *string          `json:"ingreso"`
	Programa   *string          `json:"programa"`
	Rango      *string          `json:"rango"`
	Cuota      *decimal.Decimal `json:"cuota"`
	ATA        *string          `json:"ata"`
	Estado     *string          `json:"estado"`
	Email      *string          `json:"email"`
	Direccion  *string          `json:"direccion"`
	Notas      *string          `json:"notas"`
}

// EliminarAlumnoResponse resultado de la cascada.
type EliminarAlumnoResponse struct {
	CuentasEliminadas int `json:"cuentasEliminadas"`
}
