package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados almacenados de factura. "overdue" NO es un estado almacenado:
// es una vista derivada (pendiente + vencida) calculada en consulta.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice representa una factura emitida a un cliente, opcionalmente
// derivada de un trabajo completado. Invariante: PaidDate está asignado
// si y solo si Status == paid.
type Invoice struct {
	ID            int64
	CompanyID     string
	CustomerID    int64
	JobID         *int64 // trabajo de origen; nil si se creó manualmente
	InvoiceNumber string // único a nivel global (índice UNIQUE en DB)
	Amount        decimal.Decimal
	LaborCost     *decimal.Decimal
	MaterialCost  *decimal.Decimal
	TaxAmount     *decimal.Decimal
	Status        string // pending, paid, cancelled
	DueDate       *time.Time
	PaidDate      *time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidInvoiceStatus informa si s es un estado almacenable de factura.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// IsOverdue aplica el predicado de vencimiento: pendiente y con fecha de
// vencimiento en o antes del día indicado. Es la contraparte en memoria
// del fragmento SQL compartido por listados y dashboard.
func (i *Invoice) IsOverdue(today time.Time) bool {
	if i.Status != InvoiceStatusPending || i.DueDate == nil {
		return false
	}
	y, m, d := today.Date()
	endOfDay := time.Date(y, m, d, 23, 59, 59, 0, today.Location())
	return !i.DueDate.After(endOfDay)
}
