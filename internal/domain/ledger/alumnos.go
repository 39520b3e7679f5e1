package ledger

import "github.com/xtreme-academy/cuentas-api/internal/domain/entity"

// EliminarAlumno quita al alumno de la plantilla y arrastra sus
// cuentas por cobrar, incluidas las filas viejas sin alumnoId: la
// pertenencia se decide por id, por nombre normalizado, por número de
// documento o por número ATA. Devuelve cuántas cuentas se eliminaron
// junto con el alumno, y false si el alumno no estaba en la plantilla.
func EliminarAlumno(t *entity.Plantilla, alumnoID string) (int, bool) {
	if t == nil {
		return 0, false
	}
	var alumno *entity.Alumno
	for i := range t.Alumnos {
		if t.Alumnos[i].ID == alumnoID {
			alumno = &t.Alumnos[i]
			break
		}
	}
	if alumno == nil {
		return 0, false
	}
	objetivo := *alumno

	restantes := t.Alumnos[:0]
	for _, a := range t.Alumnos {
		if a.ID == alumnoID {
			continue
		}
		restantes = append(restantes, a)
	}
	t.Alumnos = restantes

	eliminadas := 0
	filtradas := t.Cxc[:0]
	for _, c := range t.Cxc {
		if cuentaDeAlumno(c, objetivo) {
			eliminadas++
			continue
		}
		filtradas = append(filtradas, c)
	}
	t.Cxc = filtradas
	return eliminadas, true
}

// cuentaDeAlumno: las filas vinculadas se deciden solo por id; el
// empate por nombre, número o ATA aplica únicamente a filas viejas sin
// alumnoId, para no arrastrar homónimos de otro alumno.
func cuentaDeAlumno(c entity.Cxc, a entity.Alumno) bool {
	if c.AlumnoID != "" {
		return c.AlumnoID == a.ID
	}
	if mismoTexto(c.Nombre, a.Nombre) {
		return true
	}
	if mismoTexto(c.Numero, a.Numero) {
		return true
	}
	return mismoTexto(c.ATA, a.ATA)
}
