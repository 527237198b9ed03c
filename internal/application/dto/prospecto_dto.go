package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProspectoRequest entrada para crear un prospecto. El IVA no se captura:
// se deriva de montoTotal y porcentajeIva en el caso de uso.
type CreateProspectoRequest struct {
	Nombre              string          `json:"nombre" validate:"required,min=1,max=200"`
	Cliente             string          `json:"cliente" validate:"required"`
	Ubicacion           string          `json:"ubicacion"`
	PresupuestoEstimado decimal.Decimal `json:"presupuesto_estimado"`
	MontoTotal          decimal.Decimal `json:"montoTotal"`
	PorcentajeIVA       decimal.Decimal `json:"porcentajeIva"`
	Anticipo            decimal.Decimal `json:"anticipo"`
	FechaFinalizacion   *time.Time      `json:"fechaFinalizacion"`
}

// UpdateProspectoRequest entrada para actualizar un prospecto (parcial).
// Cambiar montoTotal o porcentajeIva recalcula el IVA.
type UpdateProspectoRequest struct {
	Nombre              *string          `json:"nombre"`
	Cliente             *string          `json:"cliente"`
	Ubicacion           *string          `json:"ubicacion"`
	PresupuestoEstimado *decimal.Decimal `json:"presupuesto_estimado"`
	Estado              *string          `json:"estado"`
	MontoTotal          *decimal.Decimal `json:"montoTotal"`
	PorcentajeIVA       *decimal.Decimal `json:"porcentajeIva"`
	Anticipo            *decimal.Decimal `json:"anticipo"`
	FechaFinalizacion   *time.Time       `json:"fechaFinalizacion"`
}

// CreateNotaRequest entrada para agregar una nota de seguimiento.
type CreateNotaRequest struct {
	Contenido string `json:"contenido" validate:"required,min=1"`
}

// NotaResponse salida de una nota de seguimiento.
type NotaResponse struct {
	ID        string    `json:"id"`
	Contenido string    `json:"contenido"`
	CreatedAt time.Time `json:"created_at"`
}

// ProspectoResponse salida de un prospecto con notas.
type ProspectoResponse struct {
	ID                  string          `json:"id"`
	Nombre              string          `json:"nombre"`
	Cliente             string          `json:"cliente"`
	Ubicacion           string          `json:"ubicacion"`
	PresupuestoEstimado decimal.Decimal `json:"presupuesto_estimado"`
	Estado              string          `json:"estado"`
	MontoTotal          decimal.Decimal `json:"montoTotal"`
	PorcentajeIVA       decimal.Decimal `json:"porcentajeIva"`
	IVA                 decimal.Decimal `json:"iva"`
	Anticipo            decimal.Decimal `json:"anticipo"`
	FechaFinalizacion   *time.Time      `json:"fechaFinalizacion,omitempty"`
	ProyectoID          string          `json:"proyecto_id,omitempty"`
	Notas               []NotaResponse  `json:"notas,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ProspectoListResponse lista paginada de prospectos.
type ProspectoListResponse struct {
	Items []ProspectoResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// FiltroProspectosRequest criterios de búsqueda (query params).
type FiltroProspectosRequest struct {
	Estado  string `query:"estado"`
	Cliente string `query:"cliente"`
	Texto   string `query:"buscar"`
	PageRequest
}
