package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGastoRequest entrada para registrar un gasto general.
type CreateGastoRequest struct {
	Descripcion string          `json:"descripcion" validate:"required,min=1"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
	Tipo        string          `json:"tipo" validate:"required,oneof=operativo administrativo otros"`
}

// UpdateGastoRequest entrada para actualizar un gasto (parcial).
type UpdateGastoRequest struct {
	Descripcion *string          `json:"descripcion"`
	Monto       *decimal.Decimal `json:"monto"`
	Fecha       *time.Time       `json:"fecha"`
	Tipo        *string          `json:"tipo"`
}

// GastoResponse salida de un gasto general.
type GastoResponse struct {
	ID          string          `json:"id"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
	Tipo        string          `json:"tipo"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// GastoListResponse lista paginada de gastos con el total del filtro aplicado.
type GastoListResponse struct {
	Items      []GastoResponse `json:"items"`
	TotalMonto decimal.Decimal `json:"total_monto"`
	Page       PageResponse    `json:"page"`
}

// FiltroGastosRequest criterios de búsqueda (query params). Fechas en RFC 3339
// o YYYY-MM-DD.
type FiltroGastosRequest struct {
	FechaDesde  string `query:"fecha_desde"`
	FechaHasta  string `query:"fecha_hasta"`
	Descripcion string `query:"descripcion"`
	Tipo        string `query:"tipo"`
	PageRequest
}
