package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trabajador es un trabajador de obra asignable a proyectos y referenciable
// desde los pagos de nómina.
type Trabajador struct {
	ID             string
	Nombre         string
	Telefono       string
	Puesto         string
	SalarioSemanal decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
