package entity

import "strings"

// Estados de cuentas por cobrar/pagar. "Vencido" es además un estado
// derivado en los listados (vence < hoy y no pagada), pero puede venir
// persistido desde datos importados.
const (
	EstadoPendiente = "Pendiente"
	EstadoVencido   = "Vencido"
	EstadoPagado    = "Pagado"
)

// Estados de alumno.
const (
	AlumnoActivo   = "Activo"
	AlumnoInactivo = "Inactivo"
)

// Orígenes de movimientos generados automáticamente al saldar cuentas.
const (
	OrigenCxc = "CXC"
	OrigenCxp = "CXP"
)

// EsPagado compara el estado sin distinguir mayúsculas ni espacios,
// igual que los datos históricos que mezclan "Pagado"/"pagado".
func EsPagado(estado string) bool {
	return strings.EqualFold(strings.TrimSpace(estado), EstadoPagado)
}

// EsAbierto indica un estado no saldado (pendiente o vencido).
func EsAbierto(estado string) bool {
	s := strings.ToLower(strings.TrimSpace(estado))
	return s == "pendiente" || s == "vencido"
}

// EsAlumnoActivo trata la ausencia de estado como "Activo" (datos viejos
// no guardaban el campo).
func EsAlumnoActivo(estado string) bool {
	if strings.TrimSpace(estado) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(estado), AlumnoActivo)
}
