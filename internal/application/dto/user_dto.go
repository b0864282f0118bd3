package dto

import "time"

// SignupRequest entrada para registro de credenciales. El usuario nace
// sin empresa: el onboarding la crea después.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,min=1"`
	LastName  string `json:"last_name" validate:"required,min=1"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID                     string    `json:"id"`
	CompanyID              *string   `json:"company_id"`
	Email                  string    `json:"email"`
	FirstName              string    `json:"first_name"`
	LastName               string    `json:"last_name"`
	Role                   string    `json:"role"`
	IsOwner                bool      `json:"is_owner"`
	HasCompletedOnboarding bool      `json:"has_completed_onboarding"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT y perfil.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// OnboardingRequest entrada para completar el onboarding.
// TeamSize "solo" produce una empresa unipersonal con rol solo_owner;
// cualquier otro valor produce rol admin. CompanyName y FullName son
// opcionales (hay fallback por email).
type OnboardingRequest struct {
	TeamSize    string `json:"team_size" validate:"required"`
	CompanyName string `json:"company_name" validate:"omitempty,max=200"`
	FullName    string `json:"full_name" validate:"omitempty,max=200"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsSolo    bool      `json:"is_solo"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OnboardingResponse salida del onboarding. Incluye un token fresco con
// el company_id recién asignado: el token anterior no lo lleva.
type OnboardingResponse struct {
	Token   string          `json:"token"`
	User    UserResponse    `json:"user"`
	Company CompanyResponse `json:"company"`
}
