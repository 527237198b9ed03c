package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

var _ repository.ProyectoRepository = (*ProyectoRepo)(nil)

// ProyectoRepo implementación de ProyectoRepository (usable con pool o tx).
type ProyectoRepo struct {
	q Querier
}

// NewProyectoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProyectoRepository(q Querier) *ProyectoRepo {
	return &ProyectoRepo{q: q}
}

// Create persiste un nuevo proyecto.
func (r *ProyectoRepo) Create(p *entity.Proyecto) error {
	query := `
		INSERT INTO proyectos (id, nombre, monto_total, iva, anticipo, fecha_inicio, fecha_finalizacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.MontoTotal, p.IVA, p.Anticipo, p.FechaInicio, p.FechaFinalizacion,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proyecto: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto con pagos, contratistas y trabajadores cargados.
func (r *ProyectoRepo) GetByID(id string) (*entity.Proyecto, error) {
	ctx := context.Background()
	query := `
		SELECT id, nombre, monto_total, iva, anticipo, fecha_inicio, fecha_finalizacion, created_at, updated_at
		FROM proyectos WHERE id = $1`
	var p entity.Proyecto
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Nombre, &p.MontoTotal, &p.IVA, &p.Anticipo, &p.FechaInicio, &p.FechaFinalizacion,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proyecto: %w", err)
	}
	if err := r.cargarPagos(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.cargarContratistas(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.cargarTrabajadores(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProyectoRepo) cargarPagos(ctx context.Context, p *entity.Proyecto) error {
	query := `
		SELECT id, proyecto_id, tipo, monto, fecha, COALESCE(concepto, ''), created_at
		FROM proyecto_pagos WHERE proyecto_id = $1 ORDER BY fecha, created_at`
	rows, err := r.q.Query(ctx, query, p.ID)
	if err != nil {
		return fmt.Errorf("list pagos de proyecto: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pg entity.PagoProyecto
		var tipo string
		if err := rows.Scan(&pg.ID, &pg.ProyectoID, &tipo, &pg.Monto, &pg.Fecha, &pg.Concepto, &pg.CreatedAt); err != nil {
			return fmt.Errorf("scan pago de proyecto: %w", err)
		}
		pg.Tipo = finanzas.TipoPago(tipo)
		p.Pagos = append(p.Pagos, pg)
	}
	return rows.Err()
}

func (r *ProyectoRepo) cargarContratistas(ctx context.Context, p *entity.Proyecto) error {
	query := `
		SELECT c.id, c.nombre, c.rfc, c.telefono, COALESCE(c.especialidad_id::text, ''), c.created_at, c.updated_at
		FROM contratistas c
		JOIN contratista_proyectos cp ON cp.contratista_id = c.id
		WHERE cp.proyecto_id = $1 ORDER BY c.nombre`
	rows, err := r.q.Query(ctx, query, p.ID)
	if err != nil {
		return fmt.Errorf("list contratistas de proyecto: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c entity.Contratista
		if err := rows.Scan(&c.ID, &c.Nombre, &c.RFC, &c.Telefono, &c.EspecialidadID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return fmt.Errorf("scan contratista de proyecto: %w", err)
		}
		p.Contratistas = append(p.Contratistas, c)
	}
	return rows.Err()
}

func (r *ProyectoRepo) cargarTrabajadores(ctx context.Context, p *entity.Proyecto) error {
	query := `
		SELECT t.id, t.nombre, t.telefono, t.puesto, t.salario_semanal, t.created_at, t.updated_at
		FROM trabajadores t
		JOIN proyecto_trabajadores pt ON pt.trabajador_id = t.id
		WHERE pt.proyecto_id = $1 ORDER BY t.nombre`
	rows, err := r.q.Query(ctx, query, p.ID)
	if err != nil {
		return fmt.Errorf("list trabajadores de proyecto: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t entity.Trabajador
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Telefono, &t.Puesto, &t.SalarioSemanal, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return fmt.Errorf("scan trabajador de proyecto: %w", err)
		}
		p.Trabajadores = append(p.Trabajadores, t)
	}
	return rows.Err()
}

// Update actualiza un proyecto.
func (r *ProyectoRepo) Update(p *entity.Proyecto) error {
	query := `
		UPDATE proyectos SET nombre = $2, monto_total = $3, iva = $4, anticipo = $5,
		       fecha_inicio = $6, fecha_finalizacion = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.MontoTotal, p.IVA, p.Anticipo, p.FechaInicio, p.FechaFinalizacion, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proyecto: %w", err)
	}
	return nil
}

// Delete elimina un proyecto por ID.
func (r *ProyectoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM proyectos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proyecto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista proyectos con sus pagos (el resumen financiero los necesita).
func (r *ProyectoRepo) List(limit, offset int) ([]*entity.Proyecto, error) {
	ctx := context.Background()
	query := `
		SELECT id, nombre, monto_total, iva, anticipo, fecha_inicio, fecha_finalizacion, created_at, updated_at
		FROM proyectos ORDER BY fecha_inicio DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proyecto
	for rows.Next() {
		var p entity.Proyecto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.MontoTotal, &p.IVA, &p.Anticipo, &p.FechaInicio,
			&p.FechaFinalizacion, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proyecto: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		if err := r.cargarPagos(ctx, p); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// AddPago registra un pago contra el proyecto.
func (r *ProyectoRepo) AddPago(pago *entity.PagoProyecto) error {
	query := `
		INSERT INTO proyecto_pagos (id, proyecto_id, tipo, monto, fecha, concepto, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.ProyectoID, string(pago.Tipo), pago.Monto, pago.Fecha,
		nullIfEmpty(pago.Concepto), pago.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert pago de proyecto: %w", err)
	}
	return nil
}

// GetPago obtiene un pago del proyecto. nil, nil si no existe.
func (r *ProyectoRepo) GetPago(proyectoID, pagoID string) (*entity.PagoProyecto, error) {
	query := `
		SELECT id, proyecto_id, tipo, monto, fecha, COALESCE(concepto, ''), created_at
		FROM proyecto_pagos WHERE proyecto_id = $1 AND id = $2`
	var pg entity.PagoProyecto
	var tipo string
	err := r.q.QueryRow(context.Background(), query, proyectoID, pagoID).Scan(
		&pg.ID, &pg.ProyectoID, &tipo, &pg.Monto, &pg.Fecha, &pg.Concepto, &pg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago de proyecto: %w", err)
	}
	pg.Tipo = finanzas.TipoPago(tipo)
	return &pg, nil
}

// DeletePago elimina un pago del proyecto.
func (r *ProyectoRepo) DeletePago(proyectoID, pagoID string) error {
	query := `DELETE FROM proyecto_pagos WHERE proyecto_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, proyectoID, pagoID)
	if err != nil {
		return fmt.Errorf("delete pago de proyecto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AsignarTrabajador liga un trabajador al proyecto.
func (r *ProyectoRepo) AsignarTrabajador(proyectoID, trabajadorID string) error {
	query := `INSERT INTO proyecto_trabajadores (proyecto_id, trabajador_id) VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, proyectoID, trabajadorID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("asignar trabajador a proyecto: %w", err)
	}
	return nil
}

// RemoverTrabajador quita la asignación proyecto-trabajador.
func (r *ProyectoRepo) RemoverTrabajador(proyectoID, trabajadorID string) error {
	query := `DELETE FROM proyecto_trabajadores WHERE proyecto_id = $1 AND trabajador_id = $2`
	tag, err := r.q.Exec(context.Background(), query, proyectoID, trabajadorID)
	if err != nil {
		return fmt.Errorf("remover trabajador de proyecto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
