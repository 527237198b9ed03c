package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProyectoRequest entrada para crear un proyecto.
type CreateProyectoRequest struct {
	Nombre            string          `json:"nombre" validate:"required,min=1,max=200"`
	MontoTotal        decimal.Decimal `json:"montoTotal"`
	IVA               decimal.Decimal `json:"iva"`
	Anticipo          decimal.Decimal `json:"anticipo"`
	FechaInicio       time.Time       `json:"fechaInicio"`
	FechaFinalizacion *time.Time      `json:"fechaFinalizacion"`
}

// UpdateProyectoRequest entrada para actualizar un proyecto (parcial).
type UpdateProyectoRequest struct {
	Nombre            *string          `json:"nombre"`
	MontoTotal        *decimal.Decimal `json:"montoTotal"`
	IVA               *decimal.Decimal `json:"iva"`
	Anticipo          *decimal.Decimal `json:"anticipo"`
	FechaInicio       *time.Time       `json:"fechaInicio"`
	FechaFinalizacion *time.Time       `json:"fechaFinalizacion"`
}

// CreatePagoProyectoRequest entrada para registrar un pago de proyecto.
// Tipo debe pertenecer a la enumeración cerrada (cliente|contratista|trabajador|otro).
type CreatePagoProyectoRequest struct {
	Tipo     string          `json:"tipo" validate:"required,oneof=cliente contratista trabajador otro"`
	Monto    decimal.Decimal `json:"monto"`
	Fecha    time.Time       `json:"fecha"`
	Concepto string          `json:"concepto"`
}

// PagoProyectoResponse salida de un pago de proyecto.
type PagoProyectoResponse struct {
	ID       string          `json:"id"`
	Tipo     string          `json:"tipo"`
	Monto    decimal.Decimal `json:"monto"`
	Fecha    time.Time       `json:"fecha"`
	Concepto string          `json:"concepto,omitempty"`
}

// ResumenFinancieroDTO cifras derivadas de un ente con pagos anidados.
// Los montos crudos conservan precisión completa; los formateados son para
// tarjetas de presentación.
type ResumenFinancieroDTO struct {
	Total               decimal.Decimal `json:"total"`
	Pagado              decimal.Decimal `json:"pagado"`
	Pendiente           decimal.Decimal `json:"pendiente"`
	PorcentajePagado    decimal.Decimal `json:"porcentajePagado"`
	TotalFormateado     string          `json:"totalFormateado"`
	PagadoFormateado    string          `json:"pagadoFormateado"`
	PendienteFormateado string          `json:"pendienteFormateado"`
}

// ProyectoResponse salida de un proyecto con colecciones y resumen financiero.
type ProyectoResponse struct {
	ID                string                 `json:"id"`
	Nombre            string                 `json:"nombre"`
	MontoTotal        decimal.Decimal        `json:"montoTotal"`
	IVA               decimal.Decimal        `json:"iva"`
	Anticipo          decimal.Decimal        `json:"anticipo"`
	FechaInicio       time.Time              `json:"fechaInicio"`
	FechaFinalizacion *time.Time             `json:"fechaFinalizacion,omitempty"`
	Contratistas      []ContratistaResponse  `json:"contratistas,omitempty"`
	Trabajadores      []TrabajadorResponse   `json:"trabajadores,omitempty"`
	Pagos             []PagoProyectoResponse `json:"pagos,omitempty"`
	Resumen           *ResumenFinancieroDTO  `json:"resumen,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// ProyectoListResponse lista paginada de proyectos.
type ProyectoListResponse struct {
	Items []ProyectoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
