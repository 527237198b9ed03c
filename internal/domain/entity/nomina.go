package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoPagoNomina enumeración cerrada del estado de un pago de nómina.
type EstadoPagoNomina string

const (
	PagoNominaPendiente EstadoPagoNomina = "pendiente"
	PagoNominaPagado    EstadoPagoNomina = "pagado"
)

// Valid indica si el estado pertenece a la enumeración.
func (e EstadoPagoNomina) Valid() bool {
	return e == PagoNominaPendiente || e == PagoNominaPagado
}

// NominaSemanal es una semana de nómina. Cerrada=true bloquea toda mutación de
// sus pagos; la regla se verifica en el caso de uso, no solo en la UI.
type NominaSemanal struct {
	ID           string
	NumeroSemana int
	Anio         int
	FechaInicio  time.Time
	FechaFin     time.Time
	Cerrada      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Pagos []PagoNomina
}

// PagoNomina es un pago de la semana a un receptor (trabajador u otro).
type PagoNomina struct {
	ID             string
	NominaID       string
	TrabajadorID   string // opcional: vacío si el receptor no es trabajador registrado
	NombreReceptor string
	Monto          decimal.Decimal
	FechaPago      *time.Time
	Estado         EstadoPagoNomina
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalPagos suma los montos de todos los pagos de la semana.
func (n *NominaSemanal) TotalPagos() decimal.Decimal {
	total := decimal.Zero
	for _, p := range n.Pagos {
		total = total.Add(p.Monto)
	}
	return total
}
