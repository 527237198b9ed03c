package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

var _ repository.EspecialidadRepository = (*EspecialidadRepo)(nil)

// EspecialidadRepo implementación de EspecialidadRepository (usable con pool o tx).
type EspecialidadRepo struct {
	q Querier
}

// NewEspecialidadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEspecialidadRepository(q Querier) *EspecialidadRepo {
	return &EspecialidadRepo{q: q}
}

// Create persiste una nueva especialidad.
func (r *EspecialidadRepo) Create(e *entity.Especialidad) error {
	query := `
		INSERT INTO especialidades (id, nombre, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.Nombre, e.Descripcion, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert especialidad: %w", err)
	}
	return nil
}

// GetByID obtiene una especialidad por ID. nil, nil si no existe.
func (r *EspecialidadRepo) GetByID(id string) (*entity.Especialidad, error) {
	query := `
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM especialidades WHERE id = $1`
	var e entity.Especialidad
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nombre, &e.Descripcion, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get especialidad: %w", err)
	}
	return &e, nil
}

// Update actualiza una especialidad.
func (r *EspecialidadRepo) Update(e *entity.Especialidad) error {
	query := `
		UPDATE especialidades SET nombre = $2, descripcion = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.Nombre, e.Descripcion, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update especialidad: %w", err)
	}
	return nil
}

// Delete elimina una especialidad por ID.
func (r *EspecialidadRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM especialidades WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict // hay contratistas clasificados con ella
		}
		return fmt.Errorf("delete especialidad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el catálogo completo ordenado por nombre.
func (r *EspecialidadRepo) List() ([]*entity.Especialidad, error) {
	query := `
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM especialidades ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list especialidades: %w", err)
	}
	defer rows.Close()
	var list []*entity.Especialidad
	for rows.Next() {
		var e entity.Especialidad
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Descripcion, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan especialidad: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
