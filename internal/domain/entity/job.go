package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de trabajo.
const (
	JobTypeInstall     = "Install"
	JobTypeRepair      = "Repair"
	JobTypeMaintenance = "Maintenance"
	JobTypeQuote       = "Quote"
)

// Prioridades de trabajo.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Estados de trabajo.
const (
	JobStatusScheduled  = "scheduled"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Job representa una orden de trabajo. Invariante: CompletedAt está
// asignado si y solo si Status == completed.
type Job struct {
	ID                int64
	CompanyID         string
	CustomerID        int64
	TechnicianID      *string // usuario asignado; nil = sin asignar
	Title             string
	Description       string
	Type              string // Install, Repair, Maintenance, Quote
	Priority          string // low, medium, high, urgent
	Status            string // scheduled, in_progress, completed, cancelled
	ScheduledDate     *time.Time
	ScheduledTime     string
	EstimatedDuration *int // minutos
	EstimatedCost     *decimal.Decimal
	ActualCost        *decimal.Decimal
	LaborTime         *int // minutos reales de mano de obra
	Notes             string
	EquipmentIDs      string // JSON array de IDs de equipos
	PartsUsed         string // JSON array de repuestos
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidJobStatus informa si s es un estado de trabajo conocido.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}
