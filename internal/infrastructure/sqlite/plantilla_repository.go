// Package sqlite implementa el almacén durable de plantillas sobre un
// archivo SQLite: una fila por plantilla con el documento JSON
// completo como payload y columnas indexadas para id y nombre.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/pkg/logger"
)

// Open abre (o crea) la base y aplica el esquema. El pool se limita a
// una conexión: SQLite embebido, un solo escritor.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := migrar(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// migrar crea el esquema y repara el índice de nombre de versiones
// viejas, que lo declaraban UNIQUE y rompía los respaldos con nombres
// repetidos. La reparación es idempotente: detecta el índice viejo en
// sqlite_master, lo tira y lo recrea sin unicidad.
func migrar(db *sql.DB) error {
	const esquema = `
CREATE TABLE IF NOT EXISTS plantillas (
	id             TEXT PRIMARY KEY,
	nombre         TEXT NOT NULL DEFAULT '',
	creado_en      INTEGER NOT NULL DEFAULT 0,
	actualizado_en INTEGER NOT NULL DEFAULT 0,
	datos          BLOB NOT NULL
);`
	if _, err := db.Exec(esquema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}

	var ddl sql.NullString
	err := db.QueryRow(
		`SELECT sql FROM sqlite_master WHERE type = 'index' AND name = 'idx_plantillas_nombre'`,
	).Scan(&ddl)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// sin índice todavía
	case err != nil:
		return fmt.Errorf("inspeccionar índice: %w", err)
	case ddl.Valid && strings.Contains(strings.ToUpper(ddl.String), "UNIQUE"):
		if _, err := db.Exec(`DROP INDEX idx_plantillas_nombre`); err != nil {
			return fmt.Errorf("tirar índice único viejo: %w", err)
		}
	}

	if _, err := db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_plantillas_nombre ON plantillas(nombre)`,
	); err != nil {
		return fmt.Errorf("crear índice de nombre: %w", err)
	}
	return nil
}

// PlantillaRepository implementa repository.PlantillaRepository.
type PlantillaRepository struct {
	db  *sql.DB
	log *logger.Logger
}

// NewPlantillaRepository crea el repositorio sobre una base ya abierta.
func NewPlantillaRepository(db *sql.DB, log *logger.Logger) *PlantillaRepository {
	return &PlantillaRepository{db: db, log: log}
}

// Put guarda o reemplaza la plantilla completa por id. Una plantilla
// sin id recibe uno nuevo.
func (r *PlantillaRepository) Put(ctx context.Context, t *entity.Plantilla) error {
	if t == nil {
		return fmt.Errorf("plantilla nula: %w", domain.ErrInvalidInput)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	datos, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("serializar plantilla %s: %w", t.ID, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO plantillas (id, nombre, creado_en, actualizado_en, datos)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			nombre = excluded.nombre,
			creado_en = excluded.creado_en,
			actualizado_en = excluded.actualizado_en,
			datos = excluded.datos`,
		t.ID, t.Nombre, t.CreadoEn, t.ActualizadoEn, datos,
	)
	if err != nil {
		return fmt.Errorf("guardar plantilla %s: %w", t.ID, err)
	}
	return nil
}

// Get recupera una plantilla por id.
func (r *PlantillaRepository) Get(ctx context.Context, id string) (*entity.Plantilla, error) {
	var datos []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT datos FROM plantillas WHERE id = ?`, id,
	).Scan(&datos)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer plantilla %s: %w", id, err)
	}
	var t entity.Plantilla
	if err := json.Unmarshal(datos, &t); err != nil {
		return nil, fmt.Errorf("deserializar plantilla %s: %w", id, err)
	}
	return &t, nil
}

// List devuelve todas las plantillas ordenadas por nombre descendente.
func (r *PlantillaRepository) List(ctx context.Context) ([]entity.Plantilla, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT datos FROM plantillas ORDER BY nombre DESC, creado_en DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listar plantillas: %w", err)
	}
	defer rows.Close()

	var lista []entity.Plantilla
	for rows.Next() {
		var datos []byte
		if err := rows.Scan(&datos); err != nil {
			return nil, fmt.Errorf("escanear plantilla: %w", err)
		}
		var t entity.Plantilla
		if err := json.Unmarshal(datos, &t); err != nil {
			// Una fila ilegible no tumba el listado completo.
			r.log.Warn().Err(err).Msg("plantilla ilegible en el almacén durable, se omite")
			continue
		}
		lista = append(lista, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar plantillas: %w", err)
	}
	return lista, nil
}

// Delete elimina la plantilla por id.
func (r *PlantillaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plantillas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("eliminar plantilla %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("eliminar plantilla %s: %w", id, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
