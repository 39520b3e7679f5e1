package dto

import "github.com/xtreme-academy/cuentas-api/internal/domain/entity"

// BackupVersion es la versión vigente del formato de respaldo.
const BackupVersion = 1

// Backup es el documento de exportación completo: todas las
// plantillas con sus colecciones.
type Backup struct {
	Version    int                `json:"version"`
	ExportedAt string             `json:"exportedAt"`
	Templates  []entity.Plantilla `json:"templates"`
}

// ImportarBackupRequest controla la importación. Forzar acepta un
// respaldo con versión distinta a la vigente. Con Nombres presente,
// solo entran las plantillas listadas.
type ImportarBackupRequest struct {
	Backup  Backup   `json:"backup"`
	Forzar  bool     `json:"forzar"`
	Nombres []string `json:"nombres,omitempty"`
}

// ImportarBackupResponse resume la fusión.
type ImportarBackupResponse struct {
	Creadas      int `json:"creadas"`
	Reemplazadas int `json:"reemplazadas"`
}
