// Package localstore implementa el almacén de trabajo sobre archivos
// planos: el blob JSON de la sesión más dos punteros chicos. Es el
// espacio rápido y tolerante a fallas; el durable vive en sqlite.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/metrics"
	"github.com/xtreme-academy/cuentas-api/pkg/logger"
)

const (
	archivoBlob     = "store.json"
	archivoActivo   = "active_id"
	archivoUltima   = "last_template"
	archivoTemporal = "store.json.tmp"
)

// WorkingStore implementa repository.WorkingStore sobre un directorio.
type WorkingStore struct {
	dir    string
	limite int64
	log    *logger.Logger
}

// NewWorkingStore crea el almacén en dir, creando el directorio si
// hace falta. limite es el techo en bytes del blob; cero o negativo
// deja el techo por defecto de 4.5 MiB.
func NewWorkingStore(dir string, limite int64, log *logger.Logger) (*WorkingStore, error) {
	if limite <= 0 {
		limite = 4_718_592
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de trabajo: %w", err)
	}
	return &WorkingStore{dir: dir, limite: limite, log: log}, nil
}

// LoadBlob lee el blob de la sesión. Ausente, ilegible o con JSON
// corrupto equivale a vacío: se avisa y se arranca de cero, nunca se
// propaga la corrupción.
func (s *WorkingStore) LoadBlob() ([]byte, error) {
	datos, err := os.ReadFile(filepath.Join(s.dir, archivoBlob))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		metrics.WorkingReadCorrupt.Inc()
		s.log.Warn().Err(err).Msg("blob de trabajo ilegible, se arranca vacío")
		return nil, nil
	}
	if len(datos) > 0 && !json.Valid(datos) {
		metrics.WorkingReadCorrupt.Inc()
		s.log.Warn().Msg("blob de trabajo corrupto, se arranca vacío")
		return nil, nil
	}
	return datos, nil
}

// SaveBlob escribe el blob completo. Una escritura que excede el techo
// se rechaza con ErrStorageFull y deja el valor anterior intacto. Si
// la escritura falla por otra causa se elimina el blob previo y se
// reintenta una vez, imitando liberar espacio cuando el medio está
// lleno.
func (s *WorkingStore) SaveBlob(datos []byte) error {
	if int64(len(datos)) > s.limite {
		metrics.WorkingWriteRejects.Inc()
		return fmt.Errorf("blob de %d bytes excede el techo de %d: %w",
			len(datos), s.limite, domain.ErrStorageFull)
	}

	if err := s.escribirAtomico(archivoBlob, datos); err != nil {
		s.log.Warn().Err(err).Msg("escritura del blob falló, se libera y reintenta")
		_ = os.Remove(filepath.Join(s.dir, archivoBlob))
		if err := s.escribirAtomico(archivoBlob, datos); err != nil {
			metrics.WorkingWriteFailures.Inc()
			return fmt.Errorf("escribir blob de trabajo: %w", err)
		}
	}
	return nil
}

// escribirAtomico escribe vía archivo temporal y rename, para que una
// caída a mitad de escritura no deje un blob troncado.
func (s *WorkingStore) escribirAtomico(nombre string, datos []byte) error {
	tmp := filepath.Join(s.dir, archivoTemporal)
	if err := os.WriteFile(tmp, datos, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(s.dir, nombre))
}

// ActiveID devuelve el id de la plantilla activa, o "" si no hay.
func (s *WorkingStore) ActiveID() string {
	return s.leerPuntero(archivoActivo)
}

// SetActiveID fija el id activo; con "" lo borra.
func (s *WorkingStore) SetActiveID(id string) error {
	return s.escribirPuntero(archivoActivo, id)
}

// LastTemplateID devuelve el puntero legado a la última plantilla.
func (s *WorkingStore) LastTemplateID() string {
	return s.leerPuntero(archivoUltima)
}

// SetLastTemplateID fija el puntero legado.
func (s *WorkingStore) SetLastTemplateID(id string) error {
	return s.escribirPuntero(archivoUltima, id)
}

func (s *WorkingStore) leerPuntero(nombre string) string {
	datos, err := os.ReadFile(filepath.Join(s.dir, nombre))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(datos))
}

func (s *WorkingStore) escribirPuntero(nombre, valor string) error {
	ruta := filepath.Join(s.dir, nombre)
	if valor == "" {
		err := os.Remove(ruta)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.WriteFile(ruta, []byte(valor), 0o644); err != nil {
		return fmt.Errorf("escribir puntero %s: %w", nombre, err)
	}
	return nil
}
