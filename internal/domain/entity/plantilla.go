package entity

import "github.com/google/uuid"

// Plantilla es un período contable mensual: identidad, nombre (en
// general un YYYY-MM) y las seis colecciones del libro. Es a la vez el
// registro del almacén durable y el formato de los respaldos.
type Plantilla struct {
	ID            string `json:"id"`
	Nombre        string `json:"name"`
	CreadoEn      int64  `json:"createdAt"`
	ActualizadoEn int64  `json:"updatedAt"`

	Ingresos   []Ingreso  `json:"ingresos"`
	Gastos     []Gasto    `json:"gastos"`
	Cxc        []Cxc      `json:"cxc"`
	Cxp        []Cxp      `json:"cxp"`
	Inventario []Articulo `json:"inventario"`
	Alumnos    []Alumno   `json:"alumnos"`

	// CxcLegado captura la clave "Cxc" con mayúscula que escribían
	// versiones viejas; la migración de ledger.Normalizar la vuelca en
	// Cxc y la descarta. Nunca se escribe de vuelta.
	CxcLegado []Cxc `json:"Cxc,omitempty"`
}

// NuevaPlantilla crea una plantilla vacía con id propio y las seis
// colecciones inicializadas.
func NuevaPlantilla(nombre string) *Plantilla {
	ahora := AhoraMillis()
	return &Plantilla{
		ID:            uuid.New().String(),
		Nombre:        nombre,
		CreadoEn:      ahora,
		ActualizadoEn: ahora,
		Ingresos:      []Ingreso{},
		Gastos:        []Gasto{},
		Cxc:           []Cxc{},
		Cxp:           []Cxp{},
		Inventario:    []Articulo{},
		Alumnos:       []Alumno{},
	}
}

// Clonar arma una plantilla nueva a partir de otra: copia alumnos,
// inventario y cuentas (cxc/cxp). Los ingresos y gastos nunca se
// arrastran — son historia del mes de origen. Los alumnos conservan su
// id (identidad estable entre meses, las cxc copiadas los referencian);
// las filas de inventario y cuentas reciben ids nuevos.
func (p *Plantilla) Clonar(nombre string) *Plantilla {
	t := NuevaPlantilla(nombre)

	t.Alumnos = make([]Alumno, len(p.Alumnos))
	copy(t.Alumnos, p.Alumnos)
	t.Inventario = make([]Articulo, len(p.Inventario))
	for i, art := range p.Inventario {
		art.ID = uuid.New().String()
		t.Inventario[i] = art
	}
	t.Cxc = make([]Cxc, len(p.Cxc))
	for i, c := range p.Cxc {
		c.ID = uuid.New().String()
		t.Cxc[i] = c
	}
	t.Cxp = make([]Cxp, len(p.Cxp))
	for i, c := range p.Cxp {
		c.ID = uuid.New().String()
		t.Cxp[i] = c
	}
	return t
}
