package reportes_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/constructora-api/internal/application/reportes"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
)

func proyectoDePrueba() *entity.Proyecto {
	fecha := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	return &entity.Proyecto{
		ID:         "pr1",
		Nombre:     "Torre Reforma",
		MontoTotal: decimal.NewFromInt(1_000_000),
		IVA:        decimal.NewFromInt(160_000),
		Pagos: []entity.PagoProyecto{
			{ID: "pg1", Tipo: finanzas.TipoCliente, Monto: decimal.NewFromInt(300_000), Fecha: fecha, Concepto: "Anticipo"},
			{ID: "pg2", Tipo: finanzas.TipoCliente, Monto: decimal.NewFromInt(200_000), Fecha: fecha.AddDate(0, 1, 0)},
			{ID: "pg3", Tipo: finanzas.TipoContratista, Monto: decimal.NewFromInt(150_000), Fecha: fecha},
		},
	}
}

func TestExportarPagosXML_SoloPagosCliente(t *testing.T) {
	out, err := reportes.ExportarPagosXML(proyectoDePrueba())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("EstadoCuenta")
	require.NotNil(t, root)
	assert.Equal(t, "Torre Reforma", root.SelectAttrValue("proyecto", ""))

	pagos := root.SelectElement("Pagos").SelectElements("Pago")
	require.Len(t, pagos, 2, "los pagos a contratista no van al comprobante del cliente")
	assert.Equal(t, "pg1", pagos[0].SelectAttrValue("id", ""))
	assert.Equal(t, "2025-05-10", pagos[0].SelectAttrValue("fecha", ""))
	assert.Equal(t, "300000.00", pagos[0].SelectAttrValue("monto", ""))

	concepto := pagos[0].SelectElement("Concepto")
	require.NotNil(t, concepto)
	assert.Equal(t, "Anticipo", concepto.Text())
	assert.Nil(t, pagos[1].SelectElement("Concepto"), "sin concepto no se emite el elemento")
}

func TestExportarPagosXML_Resumen(t *testing.T) {
	out, err := reportes.ExportarPagosXML(proyectoDePrueba())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	resumen := doc.SelectElement("EstadoCuenta").SelectElement("Resumen")
	require.NotNil(t, resumen)

	// Total facturable = monto + IVA; pagado solo cuenta pagos de cliente.
	assert.Equal(t, "1160000.00", resumen.SelectAttrValue("total", ""))
	assert.Equal(t, "500000.00", resumen.SelectAttrValue("pagado", ""))
	assert.Equal(t, "660000.00", resumen.SelectAttrValue("pendiente", ""))
}
