package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
)

// Concepto es una partida de obra de un contratista dentro de un proyecto.
// Todos sus pagos cuentan para el porcentaje pagado (no hay discriminador de tipo).
type Concepto struct {
	ID            string
	ContratistaID string
	ProyectoID    string
	Descripcion   string
	MontoTotal    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Pagos []PagoConcepto
}

// PagoConcepto es un abono registrado contra un concepto.
type PagoConcepto struct {
	ID         string
	ConceptoID string
	Monto      decimal.Decimal
	Fecha      time.Time
	CreatedAt  time.Time
}

// Resumen deriva pagado/pendiente/porcentaje del concepto.
func (c *Concepto) Resumen() finanzas.Resumen {
	pagos := make([]finanzas.Pago, 0, len(c.Pagos))
	for _, p := range c.Pagos {
		pagos = append(pagos, finanzas.Pago{Monto: p.Monto})
	}
	return finanzas.CalcularResumen(c.MontoTotal, pagos)
}
