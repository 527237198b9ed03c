package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para las tarjetas del dashboard.
// La agregación vive en SQL; COALESCE garantiza cero sin filas.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// GetResumenProyectos cuenta los proyectos activos y suma el monto contratado
// (monto_total + iva). Activo: sin fecha de finalización o con fecha futura.
func (r *StatsRepo) GetResumenProyectos(ctx context.Context) (int, decimal.Decimal, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE fecha_finalizacion IS NULL OR fecha_finalizacion > now()) AS activos,
	    COALESCE(SUM(monto_total + iva), 0)                                              AS monto_contratado
	FROM proyectos`

	var activos int
	var monto decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&activos, &monto); err != nil {
		return 0, decimal.Zero, fmt.Errorf("stats.GetResumenProyectos: %w", err)
	}
	return activos, monto, nil
}

// GetTotalPagadoClientes suma los pagos tipo "cliente" del rango de fechas.
func (r *StatsRepo) GetTotalPagadoClientes(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(monto), 0)
	FROM proyecto_pagos
	WHERE tipo = 'cliente' AND fecha BETWEEN $1 AND $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, desde, hasta).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("stats.GetTotalPagadoClientes: %w", err)
	}
	return total, nil
}

// GetGastos suma los gastos generales del rango de fechas.
func (r *StatsRepo) GetGastos(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(monto), 0)
	FROM gastos_generales
	WHERE fecha BETWEEN $1 AND $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, desde, hasta).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("stats.GetGastos: %w", err)
	}
	return total, nil
}

// GetNominaPendiente suma los pagos de nómina pendientes de semanas no cerradas.
func (r *StatsRepo) GetNominaPendiente(ctx context.Context) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(p.monto), 0)
	FROM nomina_pagos p
	JOIN nominas_semanales n ON n.id = p.nomina_id
	WHERE p.estado = 'pendiente' AND NOT n.cerrada`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("stats.GetNominaPendiente: %w", err)
	}
	return total, nil
}
