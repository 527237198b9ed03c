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

var _ repository.ConceptoRepository = (*ConceptoRepo)(nil)

// ConceptoRepo implementación de ConceptoRepository (usable con pool o tx).
type ConceptoRepo struct {
	q Querier
}

// NewConceptoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConceptoRepository(q Querier) *ConceptoRepo {
	return &ConceptoRepo{q: q}
}

// Create persiste un nuevo concepto.
func (r *ConceptoRepo) Create(c *entity.Concepto) error {
	query := `
		INSERT INTO conceptos (id, contratista_id, proyecto_id, descripcion, monto_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ContratistaID, c.ProyectoID, c.Descripcion, c.MontoTotal, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert concepto: %w", err)
	}
	return nil
}

// GetByID obtiene un concepto con sus pagos cargados.
func (r *ConceptoRepo) GetByID(id string) (*entity.Concepto, error) {
	ctx := context.Background()
	query := `
		SELECT id, contratista_id, proyecto_id, descripcion, monto_total, created_at, updated_at
		FROM conceptos WHERE id = $1`
	var c entity.Concepto
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ContratistaID, &c.ProyectoID, &c.Descripcion, &c.MontoTotal, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get concepto: %w", err)
	}
	if err := r.cargarPagos(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConceptoRepo) cargarPagos(ctx context.Context, c *entity.Concepto) error {
	query := `
		SELECT id, concepto_id, monto, fecha, created_at
		FROM concepto_pagos WHERE concepto_id = $1 ORDER BY fecha, created_at`
	rows, err := r.q.Query(ctx, query, c.ID)
	if err != nil {
		return fmt.Errorf("list pagos de concepto: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.PagoConcepto
		if err := rows.Scan(&p.ID, &p.ConceptoID, &p.Monto, &p.Fecha, &p.CreatedAt); err != nil {
			return fmt.Errorf("scan pago de concepto: %w", err)
		}
		c.Pagos = append(c.Pagos, p)
	}
	return rows.Err()
}

// Update actualiza descripción y monto del concepto.
func (r *ConceptoRepo) Update(c *entity.Concepto) error {
	query := `
		UPDATE conceptos SET descripcion = $2, monto_total = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Descripcion, c.MontoTotal, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update concepto: %w", err)
	}
	return nil
}

// Delete elimina un concepto por ID (sus pagos caen en cascada).
func (r *ConceptoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM conceptos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete concepto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByContratistaYProyecto lista los conceptos (con pagos) de un contratista
// dentro de un proyecto.
func (r *ConceptoRepo) ListByContratistaYProyecto(contratistaID, proyectoID string) ([]*entity.Concepto, error) {
	ctx := context.Background()
	query := `
		SELECT id, contratista_id, proyecto_id, descripcion, monto_total, created_at, updated_at
		FROM conceptos WHERE contratista_id = $1 AND proyecto_id = $2 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, contratistaID, proyectoID)
	if err != nil {
		return nil, fmt.Errorf("list conceptos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Concepto
	for rows.Next() {
		var c entity.Concepto
		if err := rows.Scan(&c.ID, &c.ContratistaID, &c.ProyectoID, &c.Descripcion, &c.MontoTotal,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan concepto: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		if err := r.cargarPagos(ctx, c); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// DeleteByContratista elimina todos los conceptos del contratista (cascada).
func (r *ConceptoRepo) DeleteByContratista(contratistaID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM conceptos WHERE contratista_id = $1`, contratistaID)
	if err != nil {
		return fmt.Errorf("delete conceptos de contratista: %w", err)
	}
	return nil
}

// AddPago registra un abono contra el concepto.
func (r *ConceptoRepo) AddPago(pago *entity.PagoConcepto) error {
	query := `
		INSERT INTO concepto_pagos (id, concepto_id, monto, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.ConceptoID, pago.Monto, pago.Fecha, pago.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert pago de concepto: %w", err)
	}
	return nil
}

// GetPago obtiene un abono del concepto. nil, nil si no existe.
func (r *ConceptoRepo) GetPago(conceptoID, pagoID string) (*entity.PagoConcepto, error) {
	query := `
		SELECT id, concepto_id, monto, fecha, created_at
		FROM concepto_pagos WHERE concepto_id = $1 AND id = $2`
	var p entity.PagoConcepto
	err := r.q.QueryRow(context.Background(), query, conceptoID, pagoID).Scan(
		&p.ID, &p.ConceptoID, &p.Monto, &p.Fecha, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago de concepto: %w", err)
	}
	return &p, nil
}

// DeletePago elimina un abono del concepto.
func (r *ConceptoRepo) DeletePago(conceptoID, pagoID string) error {
	query := `DELETE FROM concepto_pagos WHERE concepto_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, conceptoID, pagoID)
	if err != nil {
		return fmt.Errorf("delete pago de concepto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
