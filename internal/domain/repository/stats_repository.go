package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatsRepository define las consultas de lectura para las tarjetas del dashboard.
// Las implementaciones son read-only y usan COALESCE para devolver cero sin filas.
type StatsRepository interface {
	// GetResumenProyectos devuelve el número de proyectos activos (sin fecha de
	// finalización o con fecha futura) y el monto contratado total (monto + IVA).
	GetResumenProyectos(ctx context.Context) (activos int, montoContratado decimal.Decimal, err error)

	// GetTotalPagadoClientes suma los pagos tipo "cliente" de todos los proyectos
	// en el rango de fechas dado.
	GetTotalPagadoClientes(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)

	// GetGastos suma los gastos generales del rango de fechas dado.
	GetGastos(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)

	// GetNominaPendiente suma los pagos de nómina en estado "pendiente" de
	// semanas no cerradas.
	GetNominaPendiente(ctx context.Context) (decimal.Decimal, error)
}
