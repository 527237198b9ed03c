// Package finanzas concentra el cálculo financiero derivado (servicios de dominio).
// Toda suma de pagos, saldo, porcentaje e IVA de la aplicación pasa por aquí:
// las pantallas de prospecto, proyecto y concepto comparten el mismo redondeo.
package finanzas

import "github.com/shopspring/decimal"

// TipoPago discrimina a quién corresponde un pago de proyecto.
// Enumeración cerrada: cualquier otro valor se rechaza en la capa de entrada.
type TipoPago string

const (
	TipoCliente     TipoPago = "cliente"
	TipoContratista TipoPago = "contratista"
	TipoTrabajador  TipoPago = "trabajador"
	TipoOtro        TipoPago = "otro"
)

// Valid indica si el tipo pertenece a la enumeración.
func (t TipoPago) Valid() bool {
	switch t {
	case TipoCliente, TipoContratista, TipoTrabajador, TipoOtro:
		return true
	}
	return false
}

// Pago es la vista mínima de un pago que necesita la agregación.
// Las entidades (concepto, proyecto, nómina) se proyectan a esta forma.
type Pago struct {
	Monto decimal.Decimal
	Tipo  TipoPago
}

// Resumen agrupa las cifras derivadas de un ente con pagos anidados.
type Resumen struct {
	Total            decimal.Decimal
	Pagado           decimal.Decimal
	Pendiente        decimal.Decimal
	PorcentajePagado decimal.Decimal
}

// SumarPagos suma los importes de la colección. Lista nil o vacía suma cero.
func SumarPagos(pagos []Pago) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pagos {
		total = total.Add(p.Monto)
	}
	return total
}

// CalcularResumen deriva total/pagado/pendiente/porcentaje a partir del total
// del ente y sus pagos. Con total <= 0 el porcentaje es 0, nunca NaN ni infinito.
func CalcularResumen(total decimal.Decimal, pagos []Pago) Resumen {
	pagado := SumarPagos(pagos)
	r := Resumen{
		Total:     total,
		Pagado:    pagado,
		Pendiente: total.Sub(pagado),
	}
	if total.IsPositive() {
		r.PorcentajePagado = pagado.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return r
}

// PorcentajeParaMostrar recorta el porcentaje a 100 para presentación.
// El valor crudo se conserva en Resumen; el recorte es solo de salida.
func PorcentajeParaMostrar(porcentaje decimal.Decimal) decimal.Decimal {
	cien := decimal.NewFromInt(100)
	if porcentaje.GreaterThan(cien) {
		return cien
	}
	return porcentaje
}

// FiltrarPorTipo devuelve los pagos cuyo tipo coincide. El filtro es idempotente:
// aplicarlo sobre su propio resultado no cambia nada.
func FiltrarPorTipo(pagos []Pago, tipo TipoPago) []Pago {
	out := make([]Pago, 0, len(pagos))
	for _, p := range pagos {
		if p.Tipo == tipo {
			out = append(out, p)
		}
	}
	return out
}

// ResumenProyecto calcula el resumen de cara al cliente: el total incluye IVA
// y solo cuentan los pagos con tipo "cliente" (los pagos a contratistas y
// trabajadores no afectan el saldo facturable).
func ResumenProyecto(montoTotal, iva decimal.Decimal, pagos []Pago) Resumen {
	return CalcularResumen(TotalConIVA(montoTotal, iva), FiltrarPorTipo(pagos, TipoCliente))
}

// CalcularIVA deriva el IVA de un monto y un porcentaje: monto × pct / 100,
// redondeado half-up a 2 decimales. Único sitio de cálculo de IVA de la app.
func CalcularIVA(montoTotal, porcentajeIVA decimal.Decimal) decimal.Decimal {
	return montoTotal.Mul(porcentajeIVA).Div(decimal.NewFromInt(100)).Round(2)
}

// TotalConIVA devuelve montoTotal + iva (el total facturable de un proyecto).
func TotalConIVA(montoTotal, iva decimal.Decimal) decimal.Decimal {
	return montoTotal.Add(iva)
}
