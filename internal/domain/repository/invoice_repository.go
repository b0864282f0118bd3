package repository

import (
	"time"

	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
)

// InvoiceFilter filtros opcionales para listar facturas.
// OnlyOverdue aplica el predicado compartido: pendiente y vencida a Today.
type InvoiceFilter struct {
	Status      string // vacío = todos
	OnlyOverdue bool
	Today       time.Time // referencia para el predicado de vencimiento
}

// InvoiceRepository puerto de persistencia para facturas.
// Create retorna domain.ErrDuplicate si invoice_number ya existe, para
// que el caso de uso reintente con un número fresco.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error // asigna invoice.ID
	GetByID(id int64, companyID string) (*entity.Invoice, error)
	ListByCompany(companyID string, f InvoiceFilter) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id int64, companyID string) error
}
