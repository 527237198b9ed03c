package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
)

// Proyecto es una obra contratada. El saldo de cara al cliente se calcula sobre
// monto_total + iva y solo descuenta pagos con tipo "cliente".
type Proyecto struct {
	ID                string
	Nombre            string
	MontoTotal        decimal.Decimal
	IVA               decimal.Decimal
	Anticipo          decimal.Decimal
	FechaInicio       time.Time
	FechaFinalizacion *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Contratistas []Contratista
	Trabajadores []Trabajador
	Pagos        []PagoProyecto
}

// PagoProyecto es un pago registrado contra un proyecto (de cliente, a
// contratista, a trabajador u otro).
type PagoProyecto struct {
	ID         string
	ProyectoID string
	Tipo       finanzas.TipoPago
	Monto      decimal.Decimal
	Fecha      time.Time
	Concepto   string // descripción libre del pago
	CreatedAt  time.Time
}

// PagosFinancieros proyecta los pagos a la forma que consume finanzas.
func (p *Proyecto) PagosFinancieros() []finanzas.Pago {
	out := make([]finanzas.Pago, 0, len(p.Pagos))
	for _, pg := range p.Pagos {
		out = append(out, finanzas.Pago{Monto: pg.Monto, Tipo: pg.Tipo})
	}
	return out
}

// Resumen devuelve el resumen financiero de cara al cliente.
func (p *Proyecto) Resumen() finanzas.Resumen {
	return finanzas.ResumenProyecto(p.MontoTotal, p.IVA, p.PagosFinancieros())
}
