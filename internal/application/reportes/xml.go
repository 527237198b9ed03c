package reportes

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
)

// ExportarPagosXML serializa los pagos de cliente del proyecto a XML, con el
// resumen financiero como atributos del documento. Solo se exportan pagos tipo
// "cliente": es el comprobante que se entrega al cliente de la obra.
func ExportarPagosXML(p *entity.Proyecto) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("EstadoCuenta")
	root.CreateAttr("proyecto", p.Nombre)
	root.CreateAttr("generado", time.Now().Format(time.RFC3339))

	resumen := p.Resumen()
	totales := root.CreateElement("Resumen")
	totales.CreateAttr("total", resumen.Total.StringFixed(2))
	totales.CreateAttr("pagado", resumen.Pagado.StringFixed(2))
	totales.CreateAttr("pendiente", resumen.Pendiente.StringFixed(2))
	totales.CreateAttr("porcentajePagado",
		finanzas.PorcentajeParaMostrar(resumen.PorcentajePagado).StringFixed(2))

	pagos := root.CreateElement("Pagos")
	for _, pg := range p.Pagos {
		if pg.Tipo != finanzas.TipoCliente {
			continue
		}
		e := pagos.CreateElement("Pago")
		e.CreateAttr("id", pg.ID)
		e.CreateAttr("fecha", pg.Fecha.Format("2006-01-02"))
		e.CreateAttr("monto", pg.Monto.StringFixed(2))
		if pg.Concepto != "" {
			e.CreateElement("Concepto").SetText(pg.Concepto)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("reportes: serializar XML de pagos: %w", err)
	}
	return out, nil
}
