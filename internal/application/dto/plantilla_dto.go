package dto

import "github.com/xtreme-academy/cuentas-api/internal/domain/entity"

// CrearPlantillaRequest alta de una plantilla vacía.
type CrearPlantillaRequest struct {
	Nombre string `json:"nombre"`
	// Activar deja la plantilla nueva como activa.
	Activar bool `json:"activar"`
	// Forzar permite repetir un nombre ya usado.
	Forzar bool `json:"forzar"`
}

// ClonarPlantillaRequest arma un mes nuevo a partir de la activa.
type ClonarPlantillaRequest struct {
	Nombre  string `json:"nombre"`
	Activar bool   `json:"activar"`
}

// RenombrarPlantillaRequest cambia el nombre de la activa.
type RenombrarPlantillaRequest struct {
	Nombre string `json:"nombre"`
}

// PlantillaResumen es la fila del listado de plantillas.
type PlantillaResumen struct {
	ID            string `json:"id"`
	Nombre        string `json:"name"`
	CreadoEn      int64  `json:"createdAt"`
	ActualizadoEn int64  `json:"updatedAt"`
	Activa        bool   `json:"activa"`
	Alumnos       int    `json:"alumnos"`
	Movimientos   int    `json:"movimientos"`
}

// ToPlantillaResumen arma la fila del listado.
func ToPlantillaResumen(t *entity.Plantilla, activaID string) PlantillaResumen {
	return PlantillaResumen{
		ID:            t.ID,
		Nombre:        t.Nombre,
		CreadoEn:      t.CreadoEn,
		ActualizadoEn: t.ActualizadoEn,
		Activa:        t.ID == activaID,
		Alumnos:       len(t.Alumnos),
		Movimientos:   len(t.Ingresos) + len(t.Gastos),
	}
}
