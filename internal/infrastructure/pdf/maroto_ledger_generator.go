// Package pdf implementa la exportación del estado de cuenta de un material:
// el libro de movimientos con saldo corrido, en PDF para archivo o impresión.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del material  │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Stock vigente + unidad + período cubierto          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Referencia | Entrada | Salida | Saldo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda del saldo derivado                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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
	"golang.org/x/text/number"

	appledger "github.com/tu-usuario/fabrica-api/internal/application/ledger"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorInflow  = &props.Color{Red: 0, Green: 110, Blue: 60}
	colorOutflow = &props.Color{Red: 160, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appledger.StatementGenerator = (*MarotoLedgerGenerator)(nil)

// MarotoLedgerGenerator implementa ledger.StatementGenerator usando Maroto v2.
type MarotoLedgerGenerator struct {
	printer *message.Printer
}

// NewMarotoLedgerGenerator construye el generador. Las cantidades se formatean
// con separadores de la localización española (1.234,5).
func NewMarotoLedgerGenerator() *MarotoLedgerGenerator {
	return &MarotoLedgerGenerator{printer: message.NewPrinter(language.Spanish)}
}

// LedgerStatement genera el estado de cuenta y devuelve sus bytes.
func (g *MarotoLedgerGenerator) LedgerStatement(
	material *entity.Material,
	transactions []ledger.Transaction,
	period ledger.Range,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta de material", true).
		WithAuthor("fabrica-api", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(material))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(material, period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableRows(transactions) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del material (izq) y fecha de emisión (der).
func (g *MarotoLedgerGenerator) headerRow(material *entity.Material) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(material.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Categoría: "+material.Category, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: stock vigente y período cubierto.
func (g *MarotoLedgerGenerator) summaryRow(material *entity.Material, period ledger.Range) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("STOCK VIGENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(g.formatQty(material.CurrentStock)+" "+material.Unit, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(periodLabel(period), props.Text{
				Size: 9, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 2, align.Left),
		h("Referencia", 3, align.Left),
		h("Entrada", 1, align.Right),
		h("Salida", 1, align.Right),
		h("Saldo", 3, align.Right),
	)
}

// tableRows: una fila por transacción, en el mismo orden del libro
// (descendente, con el saldo inicial sintético al final).
func (g *MarotoLedgerGenerator) tableRows(transactions []ledger.Transaction) []core.Row {
	result := make([]core.Row, 0, len(transactions))
	for _, tx := range transactions {
		inflow, outflow := "—", "—"
		if tx.Inflow != nil {
			inflow = g.formatQty(*tx.Inflow)
		}
		if tx.Outflow != nil {
			outflow = g.formatQty(*tx.Outflow)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(tx.FormattedDate, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(categoryLabel(tx), props.Text{
				Size: 8, Align: align.Left, Top: 1,
			})),
			col.New(3).Add(text.New(tx.Reference, props.Text{
				Size: 8, Align: align.Left, Top: 1,
			})),
			col.New(1).Add(text.New(inflow, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorInflow,
			})),
			col.New(1).Add(text.New(outflow, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorOutflow,
			})),
			col.New(3).Add(text.New(g.formatQty(tx.Stock), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// footerRow: leyenda sobre el origen de los saldos.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Los saldos de este estado de cuenta se derivan hacia atrás desde el stock vigente "+
				"del material al momento de la emisión. El stock vigente es la fuente de verdad.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *MarotoLedgerGenerator) formatQty(d decimal.Decimal) string {
	f, _ := d.Float64()
	return g.printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}

func categoryLabel(tx ledger.Transaction) string {
	if tx.ID == ledger.StartingBalanceID {
		return "Saldo inicial"
	}
	switch tx.Category {
	case ledger.CategoryPurchase:
		return "Entrada"
	case ledger.CategoryConsumption:
		return "Consumo"
	default:
		return tx.Category
	}
}

func periodLabel(period ledger.Range) string {
	const layout = "02/01/2006"
	switch {
	case period.From != nil && period.To != nil:
		return period.From.Format(layout) + " – " + period.To.Format(layout)
	case period.From != nil:
		return "Desde " + period.From.Format(layout)
	case period.To != nil:
		return "Hasta " + period.To.Format(layout)
	default:
		return "Historial completo"
	}
}
