// Package ledger contiene el motor de consistencia del libro: las
// reglas puras que mantienen los invariantes entre colecciones de una
// plantilla (cuota única por alumno, movimientos espejo de cuentas
// saldadas, cascada al borrar alumnos, migración de formas legadas).
// Todas las funciones mutan la plantilla recibida y no tocan
// almacenamiento: la orquestación de persistencia vive en application.
package ledger

import "github.com/xtreme-academy/cuentas-api/internal/domain/entity"

// Normalizar repara una plantilla leída de almacenamiento local: las
// seis colecciones quedan como slices no nulos y la clave legada "Cxc"
// (mayúscula, escrita por versiones viejas) se migra a la canónica y se
// descarta. Es idempotente y se corre en cada lectura del working
// store, sin validación previa río arriba.
func Normalizar(t *entity.Plantilla) {
	if t == nil {
		return
	}
	if len(t.CxcLegado) > 0 && len(t.Cxc) == 0 {
		t.Cxc = t.CxcLegado
	}
	t.CxcLegado = nil

	if t.Ingresos == nil {
		t.Ingresos = []entity.Ingreso{}
	}
	if t.Gastos == nil {
		t.Gastos = []entity.Gasto{}
	}
	if t.Cxc == nil {
		t.Cxc = []entity.Cxc{}
	}
	if t.Cxp == nil {
		t.Cxp = []entity.Cxp{}
	}
	if t.Inventario == nil {
		t.Inventario = []entity.Articulo{}
	}
	if t.Alumnos == nil {
		t.Alumnos = []entity.Alumno{}
	}
}
