package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTrabajadorRequest entrada para dar de alta un trabajador.
type CreateTrabajadorRequest struct {
	Nombre         string          `json:"nombre" validate:"required,min=1,max=200"`
	Telefono       string          `json:"telefono"`
	Puesto         string          `json:"puesto"`
	SalarioSemanal decimal.Decimal `json:"salario_semanal"`
}

// UpdateTrabajadorRequest entrada para actualizar un trabajador (parcial).
type UpdateTrabajadorRequest struct {
	Nombre         *string          `json:"nombre"`
	Telefono       *string          `json:"telefono"`
	Puesto         *string          `json:"puesto"`
	SalarioSemanal *decimal.Decimal `json:"salario_semanal"`
}

// TrabajadorResponse salida de un trabajador.
type TrabajadorResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Telefono       string          `json:"telefono"`
	Puesto         string          `json:"puesto"`
	SalarioSemanal decimal.Decimal `json:"salario_semanal"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TrabajadorListResponse lista paginada de trabajadores.
type TrabajadorListResponse struct {
	Items []TrabajadorResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
