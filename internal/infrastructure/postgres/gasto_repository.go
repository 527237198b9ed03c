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

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación de GastoRepository (usable con pool o tx).
type GastoRepo struct {
	q Querier
}

// NewGastoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

// Create persiste un nuevo gasto general.
func (r *GastoRepo) Create(g *entity.GastoGeneral) error {
	query := `
		INSERT INTO gastos_generales (id, descripcion, monto, fecha, tipo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Descripcion, g.Monto, g.Fecha, string(g.Tipo), g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID. nil, nil si no existe.
func (r *GastoRepo) GetByID(id string) (*entity.GastoGeneral, error) {
	query := `
		SELECT id, descripcion, monto, fecha, tipo, created_at, updated_at
		FROM gastos_generales WHERE id = $1`
	var g entity.GastoGeneral
	var tipo string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Descripcion, &g.Monto, &g.Fecha, &tipo, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	g.Tipo = entity.TipoGasto(tipo)
	return &g, nil
}

// Update actualiza un gasto.
func (r *GastoRepo) Update(g *entity.GastoGeneral) error {
	query := `
		UPDATE gastos_generales SET descripcion = $2, monto = $3, fecha = $4, tipo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Descripcion, g.Monto, g.Fecha, string(g.Tipo), g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update gasto: %w", err)
	}
	return nil
}

// Delete elimina un gasto por ID.
func (r *GastoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM gastos_generales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List busca gastos con filtros server-side (rango de fechas, texto, tipo).
func (r *GastoRepo) List(filtro repository.FiltroGastos) ([]*entity.GastoGeneral, error) {
	query := `
		SELECT id, descripcion, monto, fecha, tipo, created_at, updated_at
		FROM gastos_generales WHERE 1=1`
	args := []any{}
	i := 0
	next := func() string { i++; return fmt.Sprintf("$%d", i) }

	if filtro.FechaDesde != nil {
		query += " AND fecha >= " + next()
		args = append(args, *filtro.FechaDesde)
	}
	if filtro.FechaHasta != nil {
		query += " AND fecha <= " + next()
		args = append(args, *filtro.FechaHasta)
	}
	if filtro.Descripcion != "" {
		query += " AND descripcion ILIKE " + next()
		args = append(args, "%"+filtro.Descripcion+"%")
	}
	if filtro.Tipo != "" {
		query += " AND tipo = " + next()
		args = append(args, string(filtro.Tipo))
	}
	query += " ORDER BY fecha DESC LIMIT " + next()
	args = append(args, filtro.Limit)
	query += " OFFSET " + next()
	args = append(args, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []*entity.GastoGeneral
	for rows.Next() {
		var g entity.GastoGeneral
		var tipo string
		if err := rows.Scan(&g.ID, &g.Descripcion, &g.Monto, &g.Fecha, &tipo, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		g.Tipo = entity.TipoGasto(tipo)
		list = append(list, &g)
	}
	return list, rows.Err()
}
