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

var _ repository.ProspectoRepository = (*ProspectoRepo)(nil)

// ProspectoRepo implementación de ProspectoRepository (usable con pool o tx).
type ProspectoRepo struct {
	q Querier
}

// NewProspectoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProspectoRepository(q Querier) *ProspectoRepo {
	return &ProspectoRepo{q: q}
}

// Create persiste un nuevo prospecto.
func (r *ProspectoRepo) Create(p *entity.Prospecto) error {
	query := `
		INSERT INTO prospectos (id, nombre, cliente, ubicacion, presupuesto_estimado, estado,
		                        monto_total, porcentaje_iva, iva, anticipo, fecha_finalizacion,
		                        proyecto_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Cliente, p.Ubicacion, p.PresupuestoEstimado, string(p.Estado),
		p.MontoTotal, p.PorcentajeIVA, p.IVA, p.Anticipo, p.FechaFinalizacion,
		nullIfEmpty(p.ProyectoID), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert prospecto: %w", err)
	}
	return nil
}

// GetByID obtiene un prospecto con sus notas cargadas.
func (r *ProspectoRepo) GetByID(id string) (*entity.Prospecto, error) {
	ctx := context.Background()
	query := `
		SELECT id, nombre, cliente, ubicacion, presupuesto_estimado, estado,
		       monto_total, porcentaje_iva, iva, anticipo, fecha_finalizacion,
		       COALESCE(proyecto_id::text, ''), created_at, updated_at
		FROM prospectos WHERE id = $1`
	p, err := scanProspecto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prospecto: %w", err)
	}
	if err := r.cargarNotas(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func scanProspecto(row pgx.Row) (*entity.Prospecto, error) {
	var p entity.Prospecto
	var estado string
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Cliente, &p.Ubicacion, &p.PresupuestoEstimado, &estado,
		&p.MontoTotal, &p.PorcentajeIVA, &p.IVA, &p.Anticipo, &p.FechaFinalizacion,
		&p.ProyectoID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Estado = entity.EstadoProspecto(estado)
	return &p, nil
}

func (r *ProspectoRepo) cargarNotas(ctx context.Context, p *entity.Prospecto) error {
	query := `
		SELECT id, prospecto_id, contenido, created_at
		FROM prospecto_notas WHERE prospecto_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, p.ID)
	if err != nil {
		return fmt.Errorf("list notas de prospecto: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n entity.NotaProspecto
		if err := rows.Scan(&n.ID, &n.ProspectoID, &n.Contenido, &n.CreatedAt); err != nil {
			return fmt.Errorf("scan nota de prospecto: %w", err)
		}
		p.Notas = append(p.Notas, n)
	}
	return rows.Err()
}

// Update actualiza un prospecto.
func (r *ProspectoRepo) Update(p *entity.Prospecto) error {
	query := `
		UPDATE prospectos SET nombre = $2, cliente = $3, ubicacion = $4, presupuesto_estimado = $5,
		       estado = $6, monto_total = $7, porcentaje_iva = $8, iva = $9, anticipo = $10,
		       fecha_finalizacion = $11, proyecto_id = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Cliente, p.Ubicacion, p.PresupuestoEstimado, string(p.Estado),
		p.MontoTotal, p.PorcentajeIVA, p.IVA, p.Anticipo, p.FechaFinalizacion,
		nullIfEmpty(p.ProyectoID), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update prospecto: %w", err)
	}
	return nil
}

// Delete elimina un prospecto por ID (sus notas caen en cascada).
func (r *ProspectoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM prospectos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prospecto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List busca prospectos con filtros server-side.
func (r *ProspectoRepo) List(filtro repository.FiltroProspectos) ([]*entity.Prospecto, error) {
	query := `
		SELECT id, nombre, cliente, ubicacion, presupuesto_estimado, estado,
		       monto_total, porcentaje_iva, iva, anticipo, fecha_finalizacion,
		       COALESCE(proyecto_id::text, ''), created_at, updated_at
		FROM prospectos WHERE 1=1`
	args := []any{}
	n := 0
	next := func() string { n++; return fmt.Sprintf("$%d", n) }

	if filtro.Estado != "" {
		query += " AND estado = " + next()
		args = append(args, string(filtro.Estado))
	}
	if filtro.Cliente != "" {
		query += " AND cliente ILIKE " + next()
		args = append(args, "%"+filtro.Cliente+"%")
	}
	if filtro.Texto != "" {
		ph := next()
		query += " AND (nombre ILIKE " + ph + " OR ubicacion ILIKE " + ph + ")"
		args = append(args, "%"+filtro.Texto+"%")
	}
	query += " ORDER BY created_at DESC LIMIT " + next()
	args = append(args, filtro.Limit)
	query += " OFFSET " + next()
	args = append(args, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prospectos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Prospecto
	for rows.Next() {
		p, err := scanProspecto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prospecto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// AddNota agrega una nota de seguimiento.
func (r *ProspectoRepo) AddNota(nota *entity.NotaProspecto) error {
	query := `
		INSERT INTO prospecto_notas (id, prospecto_id, contenido, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, nota.ID, nota.ProspectoID, nota.Contenido, nota.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert nota de prospecto: %w", err)
	}
	return nil
}

// DeleteNota elimina una nota de seguimiento.
func (r *ProspectoRepo) DeleteNota(prospectoID, notaID string) error {
	query := `DELETE FROM prospecto_notas WHERE prospecto_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, prospectoID, notaID)
	if err != nil {
		return fmt.Errorf("delete nota de prospecto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
