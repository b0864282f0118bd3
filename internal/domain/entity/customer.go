package entity

import "time"

// Métodos de contacto preferidos.
const (
	ContactEmail = "email"
	ContactPhone = "phone"
	ContactText  = "text"
)

// Customer representa un cliente de la empresa. Solo el nombre es obligatorio.
type Customer struct {
	ID                     int64
	CompanyID              string
	Name                   string
	Email                  string
	Phone                  string
	Address                string
	Notes                  string
	PreferredContactMethod string // email, phone, text
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
