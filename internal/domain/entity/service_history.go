package entity

import "time"

// ServiceHistory es el registro de auditoría (append-only) que se crea
// cuando un trabajo pasa a completed. Nunca se actualiza ni se elimina.
type ServiceHistory struct {
	ID           int64
	CustomerID   int64
	JobID        int64
	EquipmentID  *int64
	ServiceDate  time.Time
	ServiceType  string
	Description  string
	TechnicianID *string
	CreatedAt    time.Time
}
