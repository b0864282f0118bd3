// Package pdf implementa la representación gráfica descargable de una
// factura de servicio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  N° Factura + Fecha                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + dirección + email                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Valor                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + estado + fecha de vencimiento                      │
//	│  FOOTER: notas                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

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
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fieldpro-api/internal/application/billing"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// Generate genera el PDF de la factura y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(d *billing.InvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+d.Invoice.InvoiceNumber, true).
		WithAuthor(nonEmpty(d.CompanyName, "FieldPro"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range chargeRows(d.Invoice) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(d.Invoice))
	for _, r := range footerRows(d.Invoice) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y número de factura + fecha (der).
func headerRow(d *billing.InvoiceDocument) core.Row {
	fecha := d.Invoice.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(d.CompanyName, "FieldPro"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Servicios de climatización", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(d.Invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente facturado.
func customerRow(d *billing.InvoiceDocument) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(d.CustomerName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Email: %s",
				nonEmpty(d.CustomerAddress, "—"),
				nonEmpty(d.CustomerEmail, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// chargeRows: una fila por concepto con valor asignado.
func chargeRows(inv *entity.Invoice) []core.Row {
	charge := func(label string, v decimal.Decimal) core.Row {
		return row.New(7).Add(
			col.New(8).Add(text.New(label, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(4).Add(text.New("$"+v.StringFixed(2), props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		)
	}
	rows := []core.Row{}
	if inv.LaborCost != nil {
		rows = append(rows, charge("Mano de obra", *inv.LaborCost))
	}
	if inv.MaterialCost != nil {
		rows = append(rows, charge("Materiales", *inv.MaterialCost))
	}
	if inv.TaxAmount != nil {
		rows = append(rows, charge("Impuestos", *inv.TaxAmount))
	}
	if len(rows) == 0 {
		rows = append(rows, charge("Servicio", inv.Amount))
	}
	return rows
}

// totalRow: total a pagar destacado.
func totalRow(inv *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL A PAGAR", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New("$"+inv.Amount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// footerRows: estado, vencimiento y notas.
func footerRows(inv *entity.Invoice) []core.Row {
	estado := "Estado: " + inv.Status
	if inv.DueDate != nil {
		estado += "   |   Vence: " + inv.DueDate.Format("02/01/2006")
	}
	if inv.PaidDate != nil {
		estado += "   |   Pagada: " + inv.PaidDate.Format("02/01/2006")
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(estado, props.Text{Size: 8, Color: colorGray, Top: 3}),
		)),
	}
	if inv.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+inv.Notes, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
