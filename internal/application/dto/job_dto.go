package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateJobRequest entrada para crear una orden de trabajo.
// TechnicianID puede omitirse: si el creador es solo_owner se autoasigna.
type CreateJobRequest struct {
	CustomerID        int64            `json:"customer_id" validate:"required"`
	TechnicianID      *string          `json:"technician_id"`
	Title             string           `json:"title" validate:"required,min=1,max=200"`
	Description       string           `json:"description"`
	Type              string           `json:"type" validate:"required,oneof=Install Repair Maintenance Quote"`
	Priority          string           `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	ScheduledDate     *time.Time       `json:"scheduled_date"`
	ScheduledTime     string           `json:"scheduled_time"`
	EstimatedDuration *int             `json:"estimated_duration"` // minutos
	EstimatedCost     *decimal.Decimal `json:"estimated_cost"`
	Notes             string           `json:"notes"`
	EquipmentIDs      string           `json:"equipment_ids"`
	PartsUsed         string           `json:"parts_used"`
}

// UpdateJobRequest actualización parcial. Pasar status=completed asigna
// completed_at en el servidor; salir de completed lo limpia.
type UpdateJobRequest struct {
	TechnicianID      *string          `json:"technician_id"`
	Title             *string          `json:"title"`
	Description       *string          `json:"description"`
	Type              *string          `json:"type"`
	Priority          *string          `json:"priority"`
	Status            *string          `json:"status"`
	ScheduledDate     *time.Time       `json:"scheduled_date"`
	ScheduledTime     *string          `json:"scheduled_time"`
	EstimatedDuration *int             `json:"estimated_duration"`
	EstimatedCost     *decimal.Decimal `json:"estimated_cost"`
	ActualCost        *decimal.Decimal `json:"actual_cost"`
	LaborTime         *int             `json:"labor_time"`
	Notes             *string          `json:"notes"`
	EquipmentIDs      *string          `json:"equipment_ids"`
	PartsUsed         *string          `json:"parts_used"`
}

// JobResponse salida de una orden de trabajo.
type JobResponse struct {
	ID                int64            `json:"id"`
	CompanyID         string           `json:"company_id"`
	CustomerID        int64            `json:"customer_id"`
	TechnicianID      *string          `json:"technician_id"`
	Title             string           `json:"title"`
	Description       string           `json:"description,omitempty"`
	Type              string           `json:"type"`
	Priority          string           `json:"priority"`
	Status            string           `json:"status"`
	ScheduledDate     *time.Time       `json:"scheduled_date"`
	ScheduledTime     string           `json:"scheduled_time,omitempty"`
	EstimatedDuration *int             `json:"estimated_duration"`
	EstimatedCost     *decimal.Decimal `json:"estimated_cost"`
	ActualCost        *decimal.Decimal `json:"actual_cost"`
	LaborTime         *int             `json:"labor_time"`
	Notes             string           `json:"notes,omitempty"`
	EquipmentIDs      string           `json:"equipment_ids,omitempty"`
	PartsUsed         string           `json:"parts_used,omitempty"`
	CompletedAt       *time.Time       `json:"completed_at"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
