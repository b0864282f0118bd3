package dto

import "time"

// CreateEquipmentRequest entrada para registrar un equipo instalado.
type CreateEquipmentRequest struct {
	CustomerID      int64      `json:"customer_id" validate:"required"`
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	SerialNumber    string     `json:"serial_number"`
	Type            string     `json:"type" validate:"required,min=1"`
	InstallDate     *time.Time `json:"install_date"`
	WarrantyExpires *time.Time `json:"warranty_expires"`
	Notes           string     `json:"notes"`
}

// UpdateEquipmentRequest actualización parcial de un equipo.
type UpdateEquipmentRequest struct {
	Make            *string    `json:"make"`
	Model           *string    `json:"model"`
	SerialNumber    *string    `json:"serial_number"`
	Type            *string    `json:"type"`
	InstallDate     *time.Time `json:"install_date"`
	WarrantyExpires *time.Time `json:"warranty_expires"`
	Notes           *string    `json:"notes"`
}

// EquipmentResponse salida de un equipo.
type EquipmentResponse struct {
	ID              int64      `json:"id"`
	CustomerID      int64      `json:"customer_id"`
	Make            string     `json:"make,omitempty"`
	Model           string     `json:"model,omitempty"`
	SerialNumber    string     `json:"serial_number,omitempty"`
	Type            string     `json:"type"`
	InstallDate     *time.Time `json:"install_date"`
	WarrantyExpires *time.Time `json:"warranty_expires"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
