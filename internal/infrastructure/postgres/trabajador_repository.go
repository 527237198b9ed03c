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

var _ repository.TrabajadorRepository = (*TrabajadorRepo)(nil)

// TrabajadorRepo implementación de TrabajadorRepository (usable con pool o tx).
type TrabajadorRepo struct {
	q Querier
}

// NewTrabajadorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrabajadorRepository(q Querier) *TrabajadorRepo {
	return &TrabajadorRepo{q: q}
}

// Create persiste un nuevo trabajador.
func (r *TrabajadorRepo) Create(t *entity.Trabajador) error {
	query := `
		INSERT INTO trabajadores (id, nombre, telefono, puesto, salario_semanal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Nombre, t.Telefono, t.Puesto, t.SalarioSemanal, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trabajador: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID. nil, nil si no existe.
func (r *TrabajadorRepo) GetByID(id string) (*entity.Trabajador, error) {
	query := `
		SELECT id, nombre, telefono, puesto, salario_semanal, created_at, updated_at
		FROM trabajadores WHERE id = $1`
	var t entity.Trabajador
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Nombre, &t.Telefono, &t.Puesto, &t.SalarioSemanal, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador: %w", err)
	}
	return &t, nil
}

// Update actualiza un trabajador.
func (r *TrabajadorRepo) Update(t *entity.Trabajador) error {
	query := `
		UPDATE trabajadores SET nombre = $2, telefono = $3, puesto = $4, salario_semanal = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Nombre, t.Telefono, t.Puesto, t.SalarioSemanal, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update trabajador: %w", err)
	}
	return nil
}

// Delete elimina un trabajador por ID.
func (r *TrabajadorRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM trabajadores WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict // referenciado desde pagos de nómina
		}
		return fmt.Errorf("delete trabajador: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista trabajadores con paginación.
func (r *TrabajadorRepo) List(limit, offset int) ([]*entity.Trabajador, error) {
	query := `
		SELECT id, nombre, telefono, puesto, salario_semanal, created_at, updated_at
		FROM trabajadores ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trabajadores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Trabajador
	for rows.Next() {
		var t entity.Trabajador
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Telefono, &t.Puesto, &t.SalarioSemanal, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trabajador: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
