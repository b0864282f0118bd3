package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente. Solo name es obligatorio.
type CreateCustomerRequest struct {
	Name                   string `json:"name" validate:"required,min=1,max=200"`
	Email                  string `json:"email" validate:"omitempty,email"`
	Phone                  string `json:"phone" validate:"omitempty,max=50"`
	Address                string `json:"address"`
	Notes                  string `json:"notes"`
	PreferredContactMethod string `json:"preferred_contact_method" validate:"omitempty,oneof=email phone text"`
}

// UpdateCustomerRequest actualización parcial: solo los campos presentes se aplican.
type UpdateCustomerRequest struct {
	Name                   *string `json:"name"`
	Email                  *string `json:"email"`
	Phone                  *string `json:"phone"`
	Address                *string `json:"address"`
	Notes                  *string `json:"notes"`
	PreferredContactMethod *string `json:"preferred_contact_method"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID                     int64     `json:"id"`
	CompanyID              string    `json:"company_id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email,omitempty"`
	Phone                  string    `json:"phone,omitempty"`
	Address                string    `json:"address,omitempty"`
	Notes                  string    `json:"notes,omitempty"`
	PreferredContactMethod string    `json:"preferred_contact_method,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}
