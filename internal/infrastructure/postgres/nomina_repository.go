package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

var _ repository.NominaRepository = (*NominaRepo)(nil)

// NominaRepo implementación de NominaRepository (usable con pool o tx).
type NominaRepo struct {
	q Querier
}

// NewNominaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNominaRepository(q Querier) *NominaRepo {
	return &NominaRepo{q: q}
}

// GetByID obtiene la semana con sus pagos cargados.
func (r *NominaRepo) GetByID(id string) (*entity.NominaSemanal, error) {
	ctx := context.Background()
	query := `
		SELECT id, numero_semana, anio, fecha_inicio, fecha_fin, cerrada, created_at, updated_at
		FROM nominas_semanales WHERE id = $1`
	var n entity.NominaSemanal
	err := r.q.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.NumeroSemana, &n.Anio, &n.FechaInicio, &n.FechaFin, &n.Cerrada, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nomina: %w", err)
	}
	if err := r.cargarPagos(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NominaRepo) cargarPagos(ctx context.Context, n *entity.NominaSemanal) error {
	query := `
		SELECT id, nomina_id, COALESCE(trabajador_id::text, ''), nombre_receptor, monto,
		       fecha_pago, estado, created_at, updated_at
		FROM nomina_pagos WHERE nomina_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, n.ID)
	if err != nil {
		return fmt.Errorf("list pagos de nomina: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanPagoNomina(rows)
		if err != nil {
			return fmt.Errorf("scan pago de nomina: %w", err)
		}
		n.Pagos = append(n.Pagos, *p)
	}
	return rows.Err()
}

func scanPagoNomina(row pgx.Row) (*entity.PagoNomina, error) {
	var p entity.PagoNomina
	var estado string
	err := row.Scan(
		&p.ID, &p.NominaID, &p.TrabajadorID, &p.NombreReceptor, &p.Monto,
		&p.FechaPago, &estado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Estado = entity.EstadoPagoNomina(estado)
	return &p, nil
}

// List busca semanas con filtros server-side. Filtrar por trabajador o estado
// de pago restringe a las semanas que tienen al menos un pago que coincide.
func (r *NominaRepo) List(filtro repository.FiltroNominas) ([]*entity.NominaSemanal, error) {
	ctx := context.Background()
	query := `
		SELECT n.id, n.numero_semana, n.anio, n.fecha_inicio, n.fecha_fin, n.cerrada, n.created_at, n.updated_at
		FROM nominas_semanales n WHERE 1=1`
	args := []any{}
	i := 0
	next := func() string { i++; return fmt.Sprintf("$%d", i) }

	if filtro.Anio != 0 {
		query += " AND n.anio = " + next()
		args = append(args, filtro.Anio)
	}
	if filtro.NumeroSemana != 0 {
		query += " AND n.numero_semana = " + next()
		args = append(args, filtro.NumeroSemana)
	}
	if filtro.TrabajadorID != "" {
		query += " AND EXISTS (SELECT 1 FROM nomina_pagos p WHERE p.nomina_id = n.id AND p.trabajador_id = " + next() + ")"
		args = append(args, filtro.TrabajadorID)
	}
	if filtro.EstadoPago != "" {
		query += " AND EXISTS (SELECT 1 FROM nomina_pagos p WHERE p.nomina_id = n.id AND p.estado = " + next() + ")"
		args = append(args, string(filtro.EstadoPago))
	}
	query += " ORDER BY n.anio DESC, n.numero_semana DESC LIMIT " + next()
	args = append(args, filtro.Limit)
	query += " OFFSET " + next()
	args = append(args, filtro.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list nominas: %w", err)
	}
	defer rows.Close()
	var list []*entity.NominaSemanal
	for rows.Next() {
		var n entity.NominaSemanal
		if err := rows.Scan(&n.ID, &n.NumeroSemana, &n.Anio, &n.FechaInicio, &n.FechaFin, &n.Cerrada,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan nomina: %w", err)
		}
		list = append(list, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, n := range list {
		if err := r.cargarPagos(ctx, n); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// GetPorFecha devuelve la semana que contiene la fecha dada.
func (r *NominaRepo) GetPorFecha(fecha time.Time) (*entity.NominaSemanal, error) {
	ctx := context.Background()
	query := `
		SELECT id, numero_semana, anio, fecha_inicio, fecha_fin, cerrada, created_at, updated_at
		FROM nominas_semanales
		WHERE fecha_inicio <= $1::date AND fecha_fin >= $1::date
		ORDER BY anio, numero_semana LIMIT 1`
	var n entity.NominaSemanal
	err := r.q.QueryRow(ctx, query, fecha).Scan(
		&n.ID, &n.NumeroSemana, &n.Anio, &n.FechaInicio, &n.FechaFin, &n.Cerrada, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nomina por fecha: %w", err)
	}
	if err := r.cargarPagos(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// SetCerrada fija el candado de la semana.
func (r *NominaRepo) SetCerrada(id string, cerrada bool) error {
	query := `UPDATE nominas_semanales SET cerrada = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, cerrada)
	if err != nil {
		return fmt.Errorf("set cerrada: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AniosDisponibles devuelve los años con semanas generadas, descendente.
func (r *NominaRepo) AniosDisponibles() ([]int, error) {
	query := `SELECT DISTINCT anio FROM nominas_semanales ORDER BY anio DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list anios de nomina: %w", err)
	}
	defer rows.Close()
	var anios []int
	for rows.Next() {
		var a int
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan anio: %w", err)
		}
		anios = append(anios, a)
	}
	return anios, rows.Err()
}

// ExisteAnio indica si el año ya tiene semanas generadas.
func (r *NominaRepo) ExisteAnio(anio int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM nominas_semanales WHERE anio = $1)`
	var existe bool
	if err := r.q.QueryRow(context.Background(), query, anio).Scan(&existe); err != nil {
		return false, fmt.Errorf("existe anio: %w", err)
	}
	return existe, nil
}

// CrearSemanas inserta el lote de semanas de un año.
func (r *NominaRepo) CrearSemanas(semanas []*entity.NominaSemanal) error {
	ctx := context.Background()
	query := `
		INSERT INTO nominas_semanales (id, numero_semana, anio, fecha_inicio, fecha_fin, cerrada, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, s := range semanas {
		_, err := r.q.Exec(ctx, query,
			s.ID, s.NumeroSemana, s.Anio, s.FechaInicio, s.FechaFin, s.Cerrada, s.CreatedAt, s.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert semana %d/%d: %w", s.NumeroSemana, s.Anio, err)
		}
	}
	return nil
}

// EliminarAnio borra las semanas del año (los pagos caen en cascada).
func (r *NominaRepo) EliminarAnio(anio int) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM nominas_semanales WHERE anio = $1`, anio)
	if err != nil {
		return fmt.Errorf("delete anio de nomina: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddPago registra un pago de la semana.
func (r *NominaRepo) AddPago(pago *entity.PagoNomina) error {
	query := `
		INSERT INTO nomina_pagos (id, nomina_id, trabajador_id, nombre_receptor, monto, fecha_pago, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.NominaID, nullIfEmpty(pago.TrabajadorID), pago.NombreReceptor,
		pago.Monto, pago.FechaPago, string(pago.Estado), pago.CreatedAt, pago.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert pago de nomina: %w", err)
	}
	return nil
}

// GetPago obtiene un pago de la semana. nil, nil si no existe.
func (r *NominaRepo) GetPago(nominaID, pagoID string) (*entity.PagoNomina, error) {
	query := `
		SELECT id, nomina_id, COALESCE(trabajador_id::text, ''), nombre_receptor, monto,
		       fecha_pago, estado, created_at, updated_at
		FROM nomina_pagos WHERE nomina_id = $1 AND id = $2`
	p, err := scanPagoNomina(r.q.QueryRow(context.Background(), query, nominaID, pagoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago de nomina: %w", err)
	}
	return p, nil
}

// UpdatePago actualiza un pago de la semana.
func (r *NominaRepo) UpdatePago(pago *entity.PagoNomina) error {
	query := `
		UPDATE nomina_pagos SET nombre_receptor = $2, monto = $3, fecha_pago = $4, estado = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.NombreReceptor, pago.Monto, pago.FechaPago, string(pago.Estado), pago.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pago de nomina: %w", err)
	}
	return nil
}

// DeletePago elimina un pago de la semana.
func (r *NominaRepo) DeletePago(nominaID, pagoID string) error {
	query := `DELETE FROM nomina_pagos WHERE nomina_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, nominaID, pagoID)
	if err != nil {
		return fmt.Errorf("delete pago de nomina: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
