package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateConceptoRequest entrada para crear un concepto de obra.
type CreateConceptoRequest struct {
	ContratistaID string          `json:"contratista_id" validate:"required,uuid"`
	ProyectoID    string          `json:"proyecto_id" validate:"required,uuid"`
	Descripcion   string          `json:"descripcion" validate:"required,min=1"`
	MontoTotal    decimal.Decimal `json:"monto_total"`
}

// UpdateConceptoRequest entrada para actualizar un concepto (parcial).
type UpdateConceptoRequest struct {
	Descripcion *string          `json:"descripcion"`
	MontoTotal  *decimal.Decimal `json:"monto_total"`
}

// CreatePagoConceptoRequest entrada para abonar a un concepto.
type CreatePagoConceptoRequest struct {
	Monto decimal.Decimal `json:"monto"`
	Fecha time.Time       `json:"fecha"`
}

// PagoConceptoResponse salida de un abono de concepto.
type PagoConceptoResponse struct {
	ID    string          `json:"id"`
	Monto decimal.Decimal `json:"monto"`
	Fecha time.Time       `json:"fecha"`
}

// ConceptoResponse salida de un concepto con pagos y resumen.
// PorcentajePagado viene recortado a 100 para presentación.
type ConceptoResponse struct {
	ID               string                 `json:"id"`
	ContratistaID    string                 `json:"contratista_id"`
	ProyectoID       string                 `json:"proyecto_id"`
	Descripcion      string                 `json:"descripcion"`
	MontoTotal       decimal.Decimal        `json:"monto_total"`
	Pagos            []PagoConceptoResponse `json:"pagos"`
	Resumen          *ResumenFinancieroDTO  `json:"resumen,omitempty"`
	PorcentajePagado decimal.Decimal        `json:"porcentaje_pagado"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}
