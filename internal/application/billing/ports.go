package billing

import "github.com/tu-usuario/fieldpro-api/internal/domain/entity"

// InvoiceDocument datos ya resueltos para renderizar una factura
// (la capa de render no consulta repositorios).
type InvoiceDocument struct {
	Invoice         *entity.Invoice
	CompanyName     string
	CustomerName    string
	CustomerAddress string
	CustomerEmail   string
}

// InvoicePDFGenerator renderiza la factura como documento PDF.
type InvoicePDFGenerator interface {
	Generate(doc *InvoiceDocument) ([]byte, error)
}

// InvoiceXMLBuilder serializa la factura como documento XML.
type InvoiceXMLBuilder interface {
	Build(doc *InvoiceDocument) ([]byte, error)
}
