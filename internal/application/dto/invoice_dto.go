package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura manual.
// El invoice_number lo genera siempre el servidor.
type CreateInvoiceRequest struct {
	CustomerID   int64            `json:"customer_id" validate:"required"`
	JobID        *int64           `json:"job_id"`
	Amount       decimal.Decimal  `json:"amount" validate:"required"`
	LaborCost    *decimal.Decimal `json:"labor_cost"`
	MaterialCost *decimal.Decimal `json:"material_cost"`
	TaxAmount    *decimal.Decimal `json:"tax_amount"`
	DueDate      *time.Time       `json:"due_date"`
	Notes        string           `json:"notes"`
}

// UpdateInvoiceRequest actualización parcial. Pasar status=paid asigna
// paid_date en el servidor; salir de paid lo limpia.
type UpdateInvoiceRequest struct {
	Amount       *decimal.Decimal `json:"amount"`
	LaborCost    *decimal.Decimal `json:"labor_cost"`
	MaterialCost *decimal.Decimal `json:"material_cost"`
	TaxAmount    *decimal.Decimal `json:"tax_amount"`
	Status       *string          `json:"status"`
	DueDate      *time.Time       `json:"due_date"`
	Notes        *string          `json:"notes"`
}

// InvoiceResponse salida de una factura. Overdue es derivado (pendiente
// y vencida al momento de la consulta), nunca un estado almacenado.
type InvoiceResponse struct {
	ID            int64            `json:"id"`
	CompanyID     string           `json:"company_id"`
	CustomerID    int64            `json:"customer_id"`
	JobID         *int64           `json:"job_id"`
	InvoiceNumber string           `json:"invoice_number"`
	Amount        decimal.Decimal  `json:"amount"`
	LaborCost     *decimal.Decimal `json:"labor_cost"`
	MaterialCost  *decimal.Decimal `json:"material_cost"`
	TaxAmount     *decimal.Decimal `json:"tax_amount"`
	Status        string           `json:"status"`
	Overdue       bool             `json:"overdue"`
	DueDate       *time.Time       `json:"due_date"`
	PaidDate      *time.Time       `json:"paid_date"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ServiceHistoryResponse salida de una entrada del historial de servicio.
type ServiceHistoryResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	JobID        int64     `json:"job_id"`
	EquipmentID  *int64    `json:"equipment_id"`
	ServiceDate  time.Time `json:"service_date"`
	ServiceType  string    `json:"service_type"`
	Description  string    `json:"description,omitempty"`
	TechnicianID *string   `json:"technician_id"`
	CreatedAt    time.Time `json:"created_at"`
}
