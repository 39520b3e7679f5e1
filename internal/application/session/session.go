// Package session mantiene la sesión de trabajo: el conjunto de
// plantillas cargado del almacén de trabajo, el puntero a la activa y
// la reparación incondicional al leerla. No sabe de HTTP ni de
// concurrencia; el candado vive en persist.Coordinator.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/internal/domain/ledger"
	"github.com/xtreme-academy/cuentas-api/internal/domain/repository"
	"github.com/xtreme-academy/cuentas-api/internal/metrics"
	"github.com/xtreme-academy/cuentas-api/pkg/logger"
)

// Session es el estado vivo de la aplicación entre peticiones.
type Session struct {
	repo repository.PlantillaRepository
	work repository.WorkingStore
	log  *logger.Logger

	plantillas map[string]*entity.Plantilla
	activa     string
	lista      []entity.Plantilla
}

// New crea una sesión vacía; Bootstrap la deja lista para usar.
func New(repo repository.PlantillaRepository, work repository.WorkingStore, log *logger.Logger) *Session {
	return &Session{
		repo:       repo,
		work:       work,
		log:        log,
		plantillas: map[string]*entity.Plantilla{},
	}
}

// Bootstrap levanta la sesión al arrancar: carga el conjunto de
// trabajo, resuelve qué plantilla queda activa y garantiza que exista
// al menos una. El orden de resolución es puntero activo, puntero
// legado, la plantilla creada más recientemente en el almacén durable,
// y como último recurso una plantilla nueva con el mes corriente.
func (s *Session) Bootstrap(ctx context.Context) error {
	if err := s.cargarTrabajo(); err != nil {
		return err
	}
	if err := s.RefrescarLista(ctx); err != nil {
		return err
	}

	id := s.work.ActiveID()
	if id == "" || !s.existe(ctx, id) {
		id = s.work.LastTemplateID()
	}
	if id == "" || !s.existe(ctx, id) {
		id = s.masReciente()
	}
	if id == "" {
		t := entity.NuevaPlantilla(entity.MesISO())
		s.plantillas[t.ID] = t
		id = t.ID
		s.log.Info().Str("plantilla", t.Nombre).Msg("sin plantillas, se crea la del mes")
	}

	s.activa = id
	if err := s.work.SetActiveID(id); err != nil {
		return err
	}
	if _, err := s.Activa(ctx); err != nil {
		return err
	}
	return s.PersistActiva(ctx)
}

// cargarTrabajo vuelca el blob del almacén de trabajo en memoria. Un
// blob corrupto o vacío arranca la sesión de cero.
func (s *Session) cargarTrabajo() error {
	datos, err := s.work.LoadBlob()
	if err != nil {
		return err
	}
	s.plantillas = map[string]*entity.Plantilla{}
	if len(datos) == 0 {
		return nil
	}
	var crudo map[string]*entity.Plantilla
	if err := json.Unmarshal(datos, &crudo); err != nil {
		metrics.WorkingReadCorrupt.Inc()
		s.log.Warn().Err(err).Msg("conjunto de trabajo ilegible, se arranca vacío")
		return nil
	}
	for id, t := range crudo {
		if t == nil || id == "" {
			continue
		}
		if t.ID == "" {
			t.ID = id
		}
		s.plantillas[t.ID] = t
	}
	return nil
}

// Activa devuelve la plantilla activa reparada. La reparación corre en
// cada lectura, sin condición previa: colecciones forzadas a existir,
// forma legada migrada y nombre repuesto si quedó vacío.
func (s *Session) Activa(ctx context.Context) (*entity.Plantilla, error) {
	if s.activa == "" {
		return nil, domain.ErrNotFound
	}
	t, ok := s.plantillas[s.activa]
	if !ok {
		durable, err := s.repo.Get(ctx, s.activa)
		if err != nil {
			return nil, fmt.Errorf("cargar plantilla activa: %w", err)
		}
		s.plantillas[s.activa] = durable
		t = durable
	}
	ledger.Normalizar(t)
	for i := range s.lista {
		if s.lista[i].ID == t.ID {
			if s.lista[i].Nombre != "" {
				t.Nombre = s.lista[i].Nombre
			}
			break
		}
	}
	if t.Nombre == "" {
		t.Nombre = entity.MesISO()
	}
	// La reparación se asienta en el conjunto de trabajo en cada
	// lectura; si el disco falla, la copia en memoria sigue reparada.
	if err := s.guardarTrabajo(); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo asentar la plantilla reparada")
	}
	return t, nil
}

// ActivaID devuelve el id de la plantilla activa.
func (s *Session) ActivaID() string { return s.activa }

// Activar cambia la plantilla activa, cargándola del almacén durable
// si no está en el conjunto de trabajo, y persiste el cambio.
func (s *Session) Activar(ctx context.Context, id string) error {
	if _, ok := s.plantillas[id]; !ok {
		durable, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		s.plantillas[id] = durable
	}
	s.activa = id
	if err := s.work.SetActiveID(id); err != nil {
		return err
	}
	if err := s.work.SetLastTemplateID(id); err != nil {
		return err
	}
	return s.PersistActiva(ctx)
}

// Agregar suma una plantilla al conjunto de trabajo sin activarla.
func (s *Session) Agregar(t *entity.Plantilla) {
	s.plantillas[t.ID] = t
}

// Guardar persiste una plantilla puntual (no necesariamente la activa)
// en ambos almacenes y refresca el listado.
func (s *Session) Guardar(ctx context.Context, t *entity.Plantilla) error {
	ledger.Normalizar(t)
	t.ActualizadoEn = entity.AhoraMillis()
	if t.CreadoEn == 0 {
		t.CreadoEn = t.ActualizadoEn
	}
	s.plantillas[t.ID] = t
	if err := s.guardarTrabajo(); err != nil {
		metrics.PersistFailures.Inc()
		return err
	}
	if err := s.repo.Put(ctx, t); err != nil {
		metrics.PersistFailures.Inc()
		return fmt.Errorf("guardar plantilla %s: %w", t.ID, err)
	}
	return s.RefrescarLista(ctx)
}

// Eliminar borra una plantilla de los dos almacenes. La última no se
// puede borrar; si cae la activa, la más reciente toma su lugar.
func (s *Session) Eliminar(ctx context.Context, id string) error {
	if len(s.lista) <= 1 {
		return domain.ErrLastTemplate
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	delete(s.plantillas, id)
	if err := s.RefrescarLista(ctx); err != nil {
		return err
	}
	if s.activa == id {
		s.activa = s.masReciente()
		if err := s.work.SetActiveID(s.activa); err != nil {
			return err
		}
	}
	return s.guardarTrabajo()
}

// PersistActiva corre el ciclo de persistencia completo, en orden: se
// estampa la plantilla, se escribe el conjunto de trabajo, se confirma
// en el almacén durable y se refresca el listado. Cualquier paso que
// falle corta el ciclo y cuenta la falla.
func (s *Session) PersistActiva(ctx context.Context) error {
	t, err := s.Activa(ctx)
	if err != nil {
		return err
	}
	t.ActualizadoEn = entity.AhoraMillis()
	if t.CreadoEn == 0 {
		t.CreadoEn = t.ActualizadoEn
	}
	if t.Nombre == "" {
		t.Nombre = entity.MesISO()
	}

	if err := s.guardarTrabajo(); err != nil {
		metrics.PersistFailures.Inc()
		return err
	}
	if err := s.repo.Put(ctx, t); err != nil {
		metrics.PersistFailures.Inc()
		return fmt.Errorf("confirmar plantilla activa: %w", err)
	}
	return s.RefrescarLista(ctx)
}

func (s *Session) guardarTrabajo() error {
	datos, err := json.Marshal(s.plantillas)
	if err != nil {
		return fmt.Errorf("serializar conjunto de trabajo: %w", err)
	}
	return s.work.SaveBlob(datos)
}

// Lista devuelve el listado durable cacheado (nombre descendente).
func (s *Session) Lista() []entity.Plantilla { return s.lista }

// RefrescarLista recarga el listado desde el almacén durable.
func (s *Session) RefrescarLista(ctx context.Context) error {
	lista, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	s.lista = lista
	return nil
}

// existe consulta el id contra el conjunto de trabajo y el durable.
func (s *Session) existe(ctx context.Context, id string) bool {
	if id == "" {
		return false
	}
	if _, ok := s.plantillas[id]; ok {
		return true
	}
	_, err := s.repo.Get(ctx, id)
	return err == nil
}

// masReciente devuelve el id de la plantilla creada más recientemente,
// mirando el listado durable y el conjunto de trabajo.
func (s *Session) masReciente() string {
	var id string
	var creado int64 = -1
	for _, t := range s.lista {
		if t.CreadoEn > creado {
			id, creado = t.ID, t.CreadoEn
		}
	}
	for _, t := range s.plantillas {
		if t.CreadoEn > creado {
			id, creado = t.ID, t.CreadoEn
		}
	}
	return id
}
