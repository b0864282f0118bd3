package entity

import "time"

// Roles válidos para User.
const (
	RoleSoloOwner  = "solo_owner"
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleTech       = "tech"
)

// User representa un usuario del sistema. CompanyID es nil hasta que
// el usuario completa el onboarding y queda asociado a su Company.
type User struct {
	ID                     string
	CompanyID              *string
	Email                  string
	PasswordHash           string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName              string
	LastName               string
	Role                   string // solo_owner, admin, dispatcher, tech
	IsOwner                bool
	HasCompletedOnboarding bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsTechnician informa si el usuario puede ser asignado a trabajos.
func (u *User) IsTechnician() bool {
	return u.Role == RoleTech || u.Role == RoleSoloOwner
}
