package finanzas_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Suma de pagos y pendiente: pagado = Σ montos, pendiente = total − pagado.
func TestCalcularResumen_SumaYPendiente(t *testing.T) {
	pagos := []finanzas.Pago{
		{Monto: d("250")},
		{Monto: d("250")},
	}
	r := finanzas.CalcularResumen(d("1000"), pagos)

	assert.True(t, r.Pagado.Equal(d("500")), "pagado debe ser 500, fue %s", r.Pagado)
	assert.True(t, r.Pendiente.Equal(d("500")), "pendiente debe ser 500, fue %s", r.Pendiente)
	assert.True(t, r.PorcentajePagado.Equal(d("50")), "porcentaje debe ser 50, fue %s", r.PorcentajePagado)
}

// Lista vacía o nil: pagado = 0 y pendiente = total, sin pánico.
func TestCalcularResumen_SinPagos(t *testing.T) {
	r := finanzas.CalcularResumen(d("750.50"), nil)

	assert.True(t, r.Pagado.IsZero())
	assert.True(t, r.Pendiente.Equal(d("750.50")))

	r = finanzas.CalcularResumen(d("750.50"), []finanzas.Pago{})
	assert.True(t, r.Pagado.IsZero())
}

// Con total cero el porcentaje es 0, nunca NaN ni infinito, aunque haya pagos.
func TestCalcularResumen_TotalCero(t *testing.T) {
	pagos := []finanzas.Pago{{Monto: d("300")}}
	r := finanzas.CalcularResumen(decimal.Zero, pagos)

	assert.True(t, r.PorcentajePagado.IsZero(), "porcentaje con total 0 debe ser 0")
	assert.True(t, r.Pagado.Equal(d("300")))
	assert.True(t, r.Pendiente.Equal(d("-300")))
}

// Total negativo tampoco divide: porcentaje 0.
func TestCalcularResumen_TotalNegativo(t *testing.T) {
	r := finanzas.CalcularResumen(d("-100"), []finanzas.Pago{{Monto: d("10")}})
	assert.True(t, r.PorcentajePagado.IsZero())
}

// El porcentaje crudo puede superar 100 (sobrepago); la vista lo recorta.
func TestPorcentajeParaMostrar_RecortaA100(t *testing.T) {
	r := finanzas.CalcularResumen(d("1000"), []finanzas.Pago{{Monto: d("1500")}})
	assert.True(t, r.PorcentajePagado.Equal(d("150")))
	assert.True(t, finanzas.PorcentajeParaMostrar(r.PorcentajePagado).Equal(d("100")))
	assert.True(t, finanzas.PorcentajeParaMostrar(d("99.9")).Equal(d("99.9")))
}

// Filtrar por tipo es idempotente: filtrar el resultado no cambia nada.
func TestFiltrarPorTipo_Idempotente(t *testing.T) {
	pagos := []finanzas.Pago{
		{Monto: d("20000"), Tipo: finanzas.TipoCliente},
		{Monto: d("5000"), Tipo: finanzas.TipoContratista},
		{Monto: d("1200"), Tipo: finanzas.TipoTrabajador},
	}
	una := finanzas.FiltrarPorTipo(pagos, finanzas.TipoCliente)
	dos := finanzas.FiltrarPorTipo(una, finanzas.TipoCliente)

	require.Len(t, una, 1)
	assert.Equal(t, una, dos, "re-filtrar debe ser un no-op")
}

// Escenario de proyecto: montoTotal=50000, iva=8000, un pago cliente de 20000
// y uno a contratista de 5000. Solo el pago cliente cuenta: saldo = 58000 − 20000.
func TestResumenProyecto_SoloPagosCliente(t *testing.T) {
	pagos := []finanzas.Pago{
		{Monto: d("20000"), Tipo: finanzas.TipoCliente},
		{Monto: d("5000"), Tipo: finanzas.TipoContratista},
	}
	r := finanzas.ResumenProyecto(d("50000"), d("8000"), pagos)

	assert.True(t, r.Total.Equal(d("58000")), "total debe incluir IVA")
	assert.True(t, r.Pagado.Equal(d("20000")), "solo pagos tipo cliente cuentan")
	assert.True(t, r.Pendiente.Equal(d("38000")))
}

// IVA determinista con redondeo a 2 decimales: 10000 × 16% = 1600.00.
func TestCalcularIVA(t *testing.T) {
	casos := []struct {
		nombre     string
		monto      string
		porcentaje string
		esperado   string
	}{
		{"dieciséis por ciento", "10000", "16", "1600"},
		{"monto con centavos", "1234.56", "16", "197.53"},
		{"porcentaje cero", "10000", "0", "0"},
		{"monto cero", "0", "16", "0"},
		{"redondeo half-up", "100.03", "16", "16"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			iva := finanzas.CalcularIVA(d(c.monto), d(c.porcentaje))
			assert.True(t, iva.Equal(d(c.esperado)),
				"IVA de %s al %s%% debe ser %s, fue %s", c.monto, c.porcentaje, c.esperado, iva)
		})
	}
}

func TestTipoPago_Valid(t *testing.T) {
	assert.True(t, finanzas.TipoCliente.Valid())
	assert.True(t, finanzas.TipoOtro.Valid())
	assert.False(t, finanzas.TipoPago("proveedor").Valid())
	assert.False(t, finanzas.TipoPago("").Valid())
}
