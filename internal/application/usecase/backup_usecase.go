package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/application/session"
	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/domain/ledger"
)

// BackupUseCase exporta e importa el respaldo completo: todas las
// plantillas en un solo documento versionado.
type BackupUseCase struct {
	co *persist.Coordinator
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(co *persist.Coordinator) *BackupUseCase {
	return &BackupUseCase{co: co}
}

// Exportar arma el respaldo con todas las plantillas del almacén
// durable.
func (uc *BackupUseCase) Exportar(ctx context.Context) (*dto.Backup, error) {
	respaldo := &dto.Backup{
		Version:    dto.BackupVersion,
		ExportedAt: entity.HoyISO(),
	}
	err := uc.co.Do(ctx, func(ctx context.Context, ses *session.Session) error {
		if err := ses.RefrescarLista(ctx); err != nil {
			return err
		}
		respaldo.Templates = append([]entity.Plantilla{}, ses.Lista()...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return respaldo, nil
}

// Importar fusiona un respaldo por nombre: una plantilla entrante con
// el nombre de una existente la reemplaza conservando el id local; el
// resto entra con id nuevo. Un respaldo de otra versión solo pasa con
// Forzar.
func (uc *BackupUseCase) Importar(ctx context.Context, in dto.ImportarBackupRequest) (*dto.ImportarBackupResponse, error) {
	if in.Backup.Version != dto.BackupVersion && !in.Forzar {
		return nil, fmt.Errorf("respaldo versión %d, se esperaba %d: %w",
			in.Backup.Version, dto.BackupVersion, domain.ErrVersionMismatch)
	}
	if len(in.Backup.Templates) == 0 {
		return nil, fmt.Errorf("respaldo sin plantillas: %w", domain.ErrInvalidInput)
	}

	var res dto.ImportarBackupResponse
	err := uc.co.Do(ctx, func(ctx context.Context, ses *session.Session) error {
		if err := ses.RefrescarLista(ctx); err != nil {
			return err
		}
		porNombre := map[string]string{}
		for _, existente := range ses.Lista() {
			if _, ya := porNombre[existente.Nombre]; !ya {
				porNombre[existente.Nombre] = existente.ID
			}
		}

		filtro := map[string]bool{}
		for _, nombre := range in.Nombres {
			filtro[ledger.NormalizarTexto(nombre)] = true
		}

		for i := range in.Backup.Templates {
			entrante := in.Backup.Templates[i]
			ledger.Normalizar(&entrante)
			if entrante.Nombre == "" {
				entrante.Nombre = entity.MesISO()
			}
			if len(filtro) > 0 && !filtro[ledger.NormalizarTexto(entrante.Nombre)] {
				continue
			}
			if idLocal, ya := porNombre[entrante.Nombre]; ya {
				entrante.ID = idLocal
				res.Reemplazadas++
			} else {
				entrante.ID = uuid.New().String()
				porNombre[entrante.Nombre] = entrante.ID
				res.Creadas++
			}
			if err := ses.Guardar(ctx, &entrante); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
