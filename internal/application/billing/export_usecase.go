package billing

import (
	"fmt"

	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

// ExportUseCase genera representaciones descargables de una factura.
type ExportUseCase struct {
	repo         repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	pdf          InvoicePDFGenerator
	xml          InvoiceXMLBuilder
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	repo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	pdf InvoicePDFGenerator,
	xml InvoiceXMLBuilder,
) *ExportUseCase {
	return &ExportUseCase{repo: repo, customerRepo: customerRepo, companyRepo: companyRepo, pdf: pdf, xml: xml}
}

// PDF renderiza la factura como PDF. Devuelve el contenido y el nombre
// de archivo sugerido.
func (uc *ExportUseCase) PDF(companyID string, id int64) ([]byte, string, error) {
	doc, err := uc.buildDocument(companyID, id)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.Generate(doc)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de factura %s: %w", doc.Invoice.InvoiceNumber, err)
	}
	return data, fmt.Sprintf("factura_%s.pdf", doc.Invoice.InvoiceNumber), nil
}

// XML serializa la factura como XML. Devuelve el contenido y el nombre
// de archivo sugerido.
func (uc *ExportUseCase) XML(companyID string, id int64) ([]byte, string, error) {
	doc, err := uc.buildDocument(companyID, id)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.xml.Build(doc)
	if err != nil {
		return nil, "", fmt.Errorf("generar XML de factura %s: %w", doc.Invoice.InvoiceNumber, err)
	}
	return data, fmt.Sprintf("factura_%s.xml", doc.Invoice.InvoiceNumber), nil
}

func (uc *ExportUseCase) buildDocument(companyID string, id int64) (*InvoiceDocument, error) {
	inv, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	doc := &InvoiceDocument{Invoice: inv}

	customer, err := uc.customerRepo.GetByID(inv.CustomerID, companyID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		doc.CustomerName = customer.Name
		doc.CustomerAddress = customer.Address
		doc.CustomerEmail = customer.Email
	}

	var company *entity.Company
	company, err = uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company != nil {
		doc.CompanyName = company.Name
	}
	return doc, nil
}
