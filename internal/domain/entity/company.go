package entity

import "time"

// Company representa una empresa contratista HVAC: la frontera del tenant.
// Toda entidad de negocio referencia a una Company directa o transitivamente.
// Se crea una sola vez al completar el onboarding y no se elimina.
type Company struct {
	ID        string
	Name      string
	IsSolo    bool // true = un solo técnico (el dueño)
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
}
