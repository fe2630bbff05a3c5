// Package pdf implementa la generación del reporte imprimible de un
// cierre de caja usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del comercio  │  Fecha del cierre           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Método de pago | Total                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ventas / Gastos / Sistema / Real / Diferencia     │
//	│  OBSERVACIONES                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa caja.CierrePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCierrePDF genera el PDF del cierre y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCierrePDF(
	_ context.Context,
	cierre *entity.CierreCaja,
	comercio *entity.Comercio,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre de Caja", true).
		WithAuthor(comercio.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(cierre, comercio))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Desglose por método de pago
	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(cierre.Detalle) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(cierre))

	if cierre.Observaciones != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(observacionesRow(cierre.Observaciones))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del comercio (izq) y fecha del cierre (der).
func headerRow(cierre *entity.CierreCaja, comercio *entity.Comercio) core.Row {
	fecha := cierre.Fecha.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(comercio.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de cierre de caja", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CIERRE DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de métodos de pago.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Método de pago", 8, align.Left),
		h("Total vendido", 4, align.Right),
	)
}

// tableDetailRows: una fila por método de pago del desglose.
func tableDetailRows(detalle []entity.MetodoTotal) []core.Row {
	result := make([]core.Row, 0, len(detalle))
	for _, d := range detalle {
		result = append(result, row.New(7).Add(
			col.New(8).Add(text.New(
				d.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				d.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. La diferencia se
// resalta en rojo cuando es negativa (faltante de caja).
func totalsRow(cierre *entity.CierreCaja) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	diffColor := colorPrimary
	if cierre.Diferencia.LessThan(decimal.Zero) {
		diffColor = colorRed
	}
	grand := func(s string, c *props.Color, right float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: c, Right: right,
		})
	}

	return row.New(34).Add(
		col.New(3),
		col.New(4).Add(
			label("Total ventas:"),
			label("Total gastos:"),
			label("Total sistema:"),
			label("Total real:"),
			grand("DIFERENCIA:", diffColor, 2),
		),
		col.New(3).Add(
			value(cierre.TotalVentas.StringFixed(2)),
			value(cierre.TotalGastos.StringFixed(2)),
			value(cierre.TotalSistema.StringFixed(2)),
			value(cierre.TotalReal.StringFixed(2)),
			grand(cierre.Diferencia.StringFixed(2), diffColor, 1),
		),
		col.New(2),
	)
}

// observacionesRow: notas libres del cajero al cerrar.
func observacionesRow(obs string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(obs, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}
