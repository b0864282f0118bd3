package xmlexport

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fieldpro-api/internal/application/billing"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
)

func documentoDePrueba() *billing.InvoiceDocument {
	labor := decimal.RequireFromString("120.00")
	due := time.Date(2026, 2, 14, 0, 0, 0, 0, time.Local)
	jobID := int64(42)
	return &billing.InvoiceDocument{
		Invoice: &entity.Invoice{
			ID:            1,
			CompanyID:     "company-1",
			CustomerID:    7,
			JobID:         &jobID,
			InvoiceNumber: "INV-0A1B2C3D",
			Amount:        decimal.RequireFromString("150.50"),
			LaborCost:     &labor,
			Status:        entity.InvoiceStatusPending,
			DueDate:       &due,
			Notes:         "Invoice for Cambio de compresor",
			CreatedAt:     time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		CompanyName:     "nandu HVAC Services",
		CustomerName:    "Hotel Plaza",
		CustomerAddress: "Calle 10 #5-23",
		CustomerEmail:   "admin@hotelplaza.com",
	}
}

func parseXML(t *testing.T, raw []byte) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw), "la salida debe ser XML válido")
	return doc
}

func TestBuild_EstructuraCompleta(t *testing.T) {
	out, err := NewEtreeXMLBuilder().Build(documentoDePrueba())
	require.NoError(t, err)

	doc := parseXML(t, out)
	root := doc.SelectElement("Invoice")
	require.NotNil(t, root)
	assert.Equal(t, "INV-0A1B2C3D", root.SelectAttrValue("number", ""))

	assert.Equal(t, "nandu HVAC Services", root.FindElement("Issuer/Name").Text())
	assert.Equal(t, "Hotel Plaza", root.FindElement("Customer/Name").Text())
	assert.Equal(t, "admin@hotelplaza.com", root.FindElement("Customer/Email").Text())

	assert.Equal(t, "150.50", root.FindElement("Amounts/Total").Text())
	assert.Equal(t, "120.00", root.FindElement("Amounts/LaborCost").Text())
	assert.Equal(t, "pending", root.FindElement("Status").Text())
	assert.Equal(t, "2026-02-14", root.FindElement("DueDate").Text())
	assert.Equal(t, "42", root.FindElement("JobRef").Text())
	assert.Equal(t, "Invoice for Cambio de compresor", root.FindElement("Notes").Text())
}

func TestBuild_OmiteCamposOpcionales(t *testing.T) {
	d := documentoDePrueba()
	d.Invoice.LaborCost = nil
	d.Invoice.MaterialCost = nil
	d.Invoice.TaxAmount = nil
	d.Invoice.DueDate = nil
	d.Invoice.PaidDate = nil
	d.Invoice.JobID = nil
	d.Invoice.Notes = ""

	out, err := NewEtreeXMLBuilder().Build(d)
	require.NoError(t, err)

	root := parseXML(t, out).SelectElement("Invoice")
	require.NotNil(t, root)
	assert.Nil(t, root.FindElement("Amounts/LaborCost"), "sin costo de mano de obra no hay elemento")
	assert.Nil(t, root.FindElement("DueDate"))
	assert.Nil(t, root.FindElement("PaidDate"))
	assert.Nil(t, root.FindElement("JobRef"))
	assert.Nil(t, root.FindElement("Notes"))
	require.NotNil(t, root.FindElement("Amounts/Total"), "el total siempre se emite")
}

func TestBuild_FechaPagoParaFacturaPagada(t *testing.T) {
	d := documentoDePrueba()
	paid := time.Date(2026, 1, 20, 9, 0, 0, 0, time.Local)
	d.Invoice.Status = entity.InvoiceStatusPaid
	d.Invoice.PaidDate = &paid

	out, err := NewEtreeXMLBuilder().Build(d)
	require.NoError(t, err)

	root := parseXML(t, out).SelectElement("Invoice")
	assert.Equal(t, "paid", root.FindElement("Status").Text())
	assert.Equal(t, "2026-01-20", root.FindElement("PaidDate").Text())
}
