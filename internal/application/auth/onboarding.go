package auth

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/tu-usuario/fieldpro-api/internal/application/dto"
	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TeamSizeSolo indica una empresa unipersonal: el dueño es el único técnico.
const TeamSizeSolo = "solo"

// OnboardingTxRunner ejecuta el aprovisionamiento del tenant dentro de una
// transacción: la Company y la actualización del User se persisten juntas
// o ninguna de las dos.
type OnboardingTxRunner interface {
	RunOnboarding(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}

// OnboardingUseCase convierte a un usuario autenticado sin empresa en un
// miembro con tenant: crea exactamente una Company y deja al usuario como
// dueño con el onboarding completado.
type OnboardingUseCase struct {
	userRepo repository.UserRepository
	txRunner OnboardingTxRunner
	authUC   *AuthUseCase // para emitir el token fresco con el company_id nuevo
}

// NewOnboardingUseCase construye el caso de uso.
func NewOnboardingUseCase(userRepo repository.UserRepository, txRunner OnboardingTxRunner, authUC *AuthUseCase) *OnboardingUseCase {
	return &OnboardingUseCase{userRepo: userRepo, txRunner: txRunner, authUC: authUC}
}

// Complete ejecuta el onboarding para el usuario indicado.
//
// Reglas:
//   - team_size "solo" → rol solo_owner e is_solo=true; otro valor → admin.
//   - company_name vacío → fallback "<slug del email> HVAC Services".
//   - full_name, si viene, actualiza first_name/last_name.
//   - Reinvocar con el onboarding ya completado → ErrAlreadyOnboarded,
//     sin segunda Company.
func (uc *OnboardingUseCase) Complete(ctx context.Context, userID string, in dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	if in.TeamSize == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.HasCompletedOnboarding || user.CompanyID != nil {
		return nil, domain.ErrAlreadyOnboarded
	}

	isSolo := in.TeamSize == TeamSizeSolo
	role := entity.RoleAdmin
	if isSolo {
		role = entity.RoleSoloOwner
	}

	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		name = companyNameFromEmail(user.Email)
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      name,
		IsSolo:    isSolo,
		Email:     user.Email,
		CreatedAt: now,
	}

	if full := strings.TrimSpace(in.FullName); full != "" {
		first, last, _ := strings.Cut(full, " ")
		user.FirstName = first
		user.LastName = strings.TrimSpace(last)
	}
	user.CompanyID = &company.ID
	user.Role = role
	user.IsOwner = true
	user.HasCompletedOnboarding = true
	user.UpdatedAt = now

	// Escritura atómica: o existen la empresa y el usuario actualizado, o nada.
	err = uc.txRunner.RunOnboarding(ctx, func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		return userRepo.Update(user)
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.authUC.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.OnboardingResponse{
		Token: token,
		User:  *toUserResponse(user),
		Company: dto.CompanyResponse{
			ID:        company.ID,
			Name:      company.Name,
			IsSolo:    company.IsSolo,
			Email:     company.Email,
			CreatedAt: company.CreatedAt,
		},
	}, nil
}

// companyNameFromEmail deriva el nombre de empresa del local-part del email:
// "juan.perez@x.com" → "juan.perez HVAC Services". Normaliza diacríticos
// para que el slug quede en ASCII.
func companyNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.TrimSpace(local)
	if local == "" {
		return "HVAC Company"
	}
	return asciiFold(local) + " HVAC Services"
}

// asciiFold elimina marcas diacríticas (NFD + remoción de combining marks).
func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
