// Package pdf implementa el reporte de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + usuario        │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Stock | P.Unit | Valor       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades / Productos con stock bajo / Valor total │
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/gestion-stock/internal/application/report"
	"github.com/jhoicas/gestion-stock/internal/domain/inventory"
)

var _ report.StockReportGenerator = (*MarotoStockReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// MarotoStockReportGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoStockReportGenerator struct {
	printer *message.Printer
}

// NewMarotoStockReportGenerator construye el generador. locale define el formato
// de los montos (ej. "es" → 1.234,50; "en" → 1,234.50).
func NewMarotoStockReportGenerator(locale string) *MarotoStockReportGenerator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &MarotoStockReportGenerator{printer: message.NewPrinter(tag)}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReport(_ context.Context, rep *report.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock", true).
		WithAuthor(rep.OwnerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(rep)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoStockReportGenerator) headerRow(rep *report.StockReport) core.Row {
	owner := rep.OwnerName
	if owner == "" {
		owner = "-"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(owner, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Stock", 1, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

func (g *MarotoStockReportGenerator) tableRows(rep *report.StockReport) []core.Row {
	if len(rep.Lines) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin productos registrados", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	rows := make([]core.Row, 0, len(rep.Lines))
	for _, l := range rep.Lines {
		stockProps := props.Text{Size: 8, Align: align.Center, Top: 1}
		if l.LowStock {
			stockProps.Style = fontstyle.Bold
			stockProps.Color = colorAlert
		}
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.CategoryName, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Stock), stockProps)),
			col.New(2).Add(text.New(g.money(l.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.money(l.Value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func (g *MarotoStockReportGenerator) totalsRow(rep *report.StockReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(4).Add(
			label("Unidades en stock:"),
			label(fmt.Sprintf("Stock bajo (<= %d):", inventory.LowStockThreshold)),
			label("VALOR TOTAL:"),
		),
		col.New(2).Add(
			value(g.printer.Sprintf("%d", rep.TotalUnits)),
			value(g.printer.Sprintf("%d", rep.LowStockCount)),
			value(g.money(rep.TotalValue)),
		),
	)
}

// money formatea un monto con separadores del idioma configurado.
func (g *MarotoStockReportGenerator) money(d decimal.Decimal) string {
	return "$" + g.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
