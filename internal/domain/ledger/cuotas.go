package ledger

import (
	"github.com/google/uuid"

	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
)

// ConceptoCuota es el concepto fijo de la cuota mensual generada.
const ConceptoCuota = "Cuota mensual"

// VenceDia10 calcula el vencimiento de la cuota: el día 10 del mes de
// la plantilla si el nombre contiene uno, o del mes corriente si no.
func VenceDia10(t *entity.Plantilla) string {
	mes := entity.MesISO()
	if t != nil {
		if m, ok := entity.MesDeNombre(t.Nombre); ok {
			mes = m
		}
	}
	return mes + "-10"
}

// perteneceA indica si una cuenta por cobrar corresponde al alumno,
// por id cuando la fila lo trae o por nombre normalizado como respaldo
// para filas viejas sin vínculo.
func perteneceA(c entity.Cxc, a entity.Alumno) bool {
	if c.AlumnoID != "" {
		return c.AlumnoID == a.ID
	}
	return mismoTexto(c.Nombre, a.Nombre)
}

// AddCuotaPendiente reconcilia la cuota mensual de un alumno dentro de
// la plantilla. Idempotente: correrla varias veces deja exactamente una
// cuenta abierta por alumno activo y ninguna por alumno inactivo.
//
//   - Alumno inactivo: se eliminan sus cuentas abiertas; las pagadas
//     quedan como historial.
//   - Con cuentas abiertas: la primera se actualiza en sitio (nombre,
//     monto a la cuota vigente, alumnoId) y las abiertas sobrantes se
//     descartan.
//   - Sin cuentas abiertas: se crea una cuota Pendiente solo si el
//     alumno no tiene ya una cuenta no pagada.
func AddCuotaPendiente(t *entity.Plantilla, a entity.Alumno) {
	if t == nil {
		return
	}
	if !a.Activo() {
		filtradas := t.Cxc[:0]
		for _, c := range t.Cxc {
			if perteneceA(c, a) && c.Abierta() {
				continue
			}
			filtradas = append(filtradas, c)
		}
		t.Cxc = filtradas
		return
	}

	primera := -1
	sinPagar := false
	for i, c := range t.Cxc {
		if !perteneceA(c, a) {
			continue
		}
		if !entity.EsPagado(c.Estado) {
			sinPagar = true
		}
		if c.Abierta() && primera < 0 {
			primera = i
		}
	}

	if primera >= 0 {
		t.Cxc[primera].Nombre = a.Nombre
		t.Cxc[primera].Monto = a.Cuota
		t.Cxc[primera].AlumnoID = a.ID
		filtradas := t.Cxc[:0]
		for i, c := range t.Cxc {
			if i != primera && perteneceA(c, a) && c.Abierta() {
				continue
			}
			filtradas = append(filtradas, c)
		}
		t.Cxc = filtradas
		return
	}

	if sinPagar {
		return
	}

	t.Cxc = append(t.Cxc, entity.Cxc{
		ID:       uuid.New().String(),
		AlumnoID: a.ID,
		Nombre:   a.Nombre,
		Concepto: ConceptoCuota,
		Monto:    a.Cuota,
		Vence:    VenceDia10(t),
		Estado:   entity.EstadoPendiente,
	})
}

// ReconciliarCuotas corre AddCuotaPendiente para todos los alumnos de
// la plantilla, en orden.
func ReconciliarCuotas(t *entity.Plantilla) {
	if t == nil {
		return
	}
	for _, a := range t.Alumnos {
		AddCuotaPendiente(t, a)
	}
}
