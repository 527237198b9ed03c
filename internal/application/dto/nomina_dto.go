package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NominaResponse salida de una semana de nómina con sus pagos.
type NominaResponse struct {
	ID           string               `json:"id"`
	NumeroSemana int                  `json:"numero_semana"`
	Anio         int                  `json:"anio"`
	FechaInicio  time.Time            `json:"fecha_inicio"`
	FechaFin     time.Time            `json:"fecha_fin"`
	Cerrada      bool                 `json:"cerrada"`
	Pagos        []PagoNominaResponse `json:"pagos"`
	TotalPagos   decimal.Decimal      `json:"total_pagos"`
}

// NominaListResponse lista de semanas de nómina.
type NominaListResponse struct {
	Items []NominaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreatePagoNominaRequest entrada para registrar un pago de nómina.
type CreatePagoNominaRequest struct {
	TrabajadorID   string          `json:"trabajador_id" validate:"omitempty,uuid"`
	NombreReceptor string          `json:"nombre_receptor" validate:"required,min=1"`
	Monto          decimal.Decimal `json:"monto"`
	FechaPago      *time.Time      `json:"fecha_pago"`
	Estado         string          `json:"estado" validate:"omitempty,oneof=pendiente pagado"`
}

// UpdatePagoNominaRequest entrada para actualizar un pago de nómina (parcial).
type UpdatePagoNominaRequest struct {
	NombreReceptor *string          `json:"nombre_receptor"`
	Monto          *decimal.Decimal `json:"monto"`
	FechaPago      *time.Time       `json:"fecha_pago"`
	Estado         *string          `json:"estado"`
}

// PagoNominaResponse salida de un pago de nómina.
type PagoNominaResponse struct {
	ID             string          `json:"id"`
	TrabajadorID   string          `json:"trabajador_id,omitempty"`
	NombreReceptor string          `json:"nombre_receptor"`
	Monto          decimal.Decimal `json:"monto"`
	FechaPago      *time.Time      `json:"fecha_pago,omitempty"`
	Estado         string          `json:"estado"`
}

// FiltroNominasRequest criterios de búsqueda (query params).
type FiltroNominasRequest struct {
	Anio         int    `query:"anio"`
	NumeroSemana int    `query:"numero_semana"`
	TrabajadorID string `query:"trabajador_id"`
	EstadoPago   string `query:"estado"`
	PageRequest
}

// AniosResponse años con semanas de nómina generadas.
type AniosResponse struct {
	Anios []int `json:"anios"`
}

// GenerarSemanasResponse resultado de generar las semanas de un año.
type GenerarSemanasResponse struct {
	Anio    int `json:"anio"`
	Semanas int `json:"semanas"`
}
