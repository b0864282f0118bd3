// Package xmlexport serializa facturas como XML para integraciones
// contables externas.
package xmlexport

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fieldpro-api/internal/application/billing"
)

// EtreeXMLBuilder implementa billing.InvoiceXMLBuilder usando etree.
type EtreeXMLBuilder struct{}

// NewEtreeXMLBuilder construye el builder.
func NewEtreeXMLBuilder() *EtreeXMLBuilder { return &EtreeXMLBuilder{} }

var _ billing.InvoiceXMLBuilder = (*EtreeXMLBuilder)(nil)

// Build serializa la factura con declaración XML e indentación de 2 espacios.
func (b *EtreeXMLBuilder) Build(d *billing.InvoiceDocument) ([]byte, error) {
	inv := d.Invoice
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("number", inv.InvoiceNumber)

	issuer := root.CreateElement("Issuer")
	issuer.CreateElement("Name").SetText(d.CompanyName)

	customer := root.CreateElement("Customer")
	customer.CreateElement("Name").SetText(d.CustomerName)
	customer.CreateElement("Address").SetText(d.CustomerAddress)
	customer.CreateElement("Email").SetText(d.CustomerEmail)

	amounts := root.CreateElement("Amounts")
	amounts.CreateElement("Total").SetText(inv.Amount.StringFixed(2))
	addOptionalAmount(amounts, "LaborCost", inv.LaborCost)
	addOptionalAmount(amounts, "MaterialCost", inv.MaterialCost)
	addOptionalAmount(amounts, "TaxAmount", inv.TaxAmount)

	root.CreateElement("Status").SetText(inv.Status)
	addOptionalDate(root, "DueDate", inv.DueDate)
	addOptionalDate(root, "PaidDate", inv.PaidDate)
	root.CreateElement("IssuedAt").SetText(inv.CreatedAt.Format(time.RFC3339))
	if inv.JobID != nil {
		root.CreateElement("JobRef").SetText(fmt.Sprintf("%d", *inv.JobID))
	}
	if inv.Notes != "" {
		root.CreateElement("Notes").SetText(inv.Notes)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar factura %s: %w", inv.InvoiceNumber, err)
	}
	return out, nil
}

func addOptionalAmount(parent *etree.Element, tag string, v *decimal.Decimal) {
	if v == nil {
		return
	}
	parent.CreateElement(tag).SetText(v.StringFixed(2))
}

func addOptionalDate(parent *etree.Element, tag string, t *time.Time) {
	if t == nil {
		return
	}
	parent.CreateElement(tag).SetText(t.Format("2006-01-02"))
}
