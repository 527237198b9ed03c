// Package reportes genera los reportes descargables de la aplicación: el
// reporte PDF de una semana de nómina, el estado de cuenta PDF de un proyecto
// y la exportación XML de pagos de cliente.
//
// Layout del estado de cuenta (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del proyecto  │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total con IVA / Pagado / Pendiente / % avance      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Concepto | Tipo | Monto                      │
//	└─────────────────────────────────────────────────────────────┘
package reportes

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	marotoentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
	"github.com/jhoicas/constructora-api/pkg/moneda"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// GenerarReporteNomina genera el PDF de una semana de nómina y devuelve sus bytes.
func GenerarReporteNomina(n *entity.NominaSemanal) ([]byte, error) {
	m := maroto.New(baseConfig(fmt.Sprintf("Nómina semana %d / %d", n.NumeroSemana, n.Anio)))

	estado := "ABIERTA"
	if n.Cerrada {
		estado = "CERRADA"
	}
	m.AddRows(row.New(16).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Nómina semanal %d — %d", n.NumeroSemana, n.Anio), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Del %s al %s",
				n.FechaInicio.Format("02/01/2006"),
				n.FechaFin.Format("02/01/2006"),
			), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(estado, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tablaNominaHeader())
	for _, p := range n.Pagos {
		m.AddRows(tablaNominaRow(p))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(10).Add(
		col.New(8).Add(text.New("TOTAL DE LA SEMANA:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(moneda.Formatear(n.TotalPagos()), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("reportes: generar pdf de nómina: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerarEstadoCuenta genera el estado de cuenta PDF del proyecto.
func GenerarEstadoCuenta(p *entity.Proyecto) ([]byte, error) {
	m := maroto.New(baseConfig("Estado de cuenta — " + p.Nombre))

	m.AddRows(row.New(16).Add(
		col.New(8).Add(
			text.New(p.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inicio: "+p.FechaInicio.Format("02/01/2006"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 3,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	resumen := p.Resumen()
	m.AddRows(resumenRow(resumen))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tablaPagosHeader())
	for _, pg := range p.Pagos {
		m.AddRows(tablaPagosRow(pg))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("reportes: generar estado de cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

func baseConfig(titulo string) *marotoentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		Build()
}

// resumenRow: bloque de resumen financiero de cara al cliente.
func resumenRow(r finanzas.Resumen) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(32).Add(
		col.New(3),
		col.New(4).Add(
			label("Total contratado (con IVA):"),
			label("Pagado por el cliente:"),
			label("Pendiente por cobrar:"),
			label("Avance de cobranza:"),
		),
		col.New(3).Add(
			value(moneda.Formatear(r.Total)),
			value(moneda.Formatear(r.Pagado)),
			value(moneda.Formatear(r.Pendiente)),
			value(finanzas.PorcentajeParaMostrar(r.PorcentajePagado).StringFixed(1)+" %"),
		),
		col.New(2),
	)
}

func tablaNominaHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Receptor", 5, align.Left),
		h("Estado", 2, align.Center),
		h("Fecha de pago", 2, align.Center),
		h("Monto", 3, align.Right),
	)
}

func tablaNominaRow(p entity.PagoNomina) core.Row {
	fecha := "—"
	if p.FechaPago != nil {
		fecha = p.FechaPago.Format("02/01/2006")
	}
	return row.New(7).Add(
		col.New(5).Add(text.New(p.NombreReceptor, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(string(p.Estado), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New(fecha, props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(3).Add(text.New(moneda.Formatear(p.Monto), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

func tablaPagosHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Center),
		h("Concepto", 5, align.Left),
		h("Tipo", 2, align.Center),
		h("Monto", 3, align.Right),
	)
}

func tablaPagosRow(p entity.PagoProyecto) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(p.Fecha.Format("02/01/2006"), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(5).Add(text.New(p.Concepto, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(string(p.Tipo), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(3).Add(text.New(moneda.Formatear(p.Monto), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}
