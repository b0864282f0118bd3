package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fieldpro-api/internal/application/dto"
	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]entity.User // por ID; se guardan copias, no punteros
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copia := u
	return &copia, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copia := u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[u.ID] = *u
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]entity.Company
	createErr error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]entity.Company{}}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.companies[c.ID] = *c
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	copia := c
	return &copia, nil
}

// fakeTxRunner simula la transacción: si fn falla, descarta los cambios
// del userRepo reteniendo una copia previa (rollback de juguete).
type fakeTxRunner struct {
	companyRepo *fakeCompanyRepo
	userRepo    *fakeUserRepo
}

func (r *fakeTxRunner) RunOnboarding(_ context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
) error) error {
	snapshot := map[string]entity.User{}
	for k, v := range r.userRepo.users {
		snapshot[k] = v
	}
	if err := fn(r.companyRepo, r.userRepo); err != nil {
		r.userRepo.users = snapshot
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func nuevoUsuarioSinEmpresa(id, email string) entity.User {
	now := time.Now()
	return entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		FirstName:    "Juan",
		LastName:     "Pérez",
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func buildOnboarding(userRepo *fakeUserRepo, companyRepo *fakeCompanyRepo) *OnboardingUseCase {
	authUC := NewAuthUseCase(userRepo, JWTConfig{
		Secret:     "secret-de-pruebas",
		ExpMinutes: 60,
		Issuer:     "fieldpro-test",
	})
	return NewOnboardingUseCase(userRepo, &fakeTxRunner{companyRepo: companyRepo, userRepo: userRepo}, authUC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestOnboarding_Solo(t *testing.T) {
	userRepo := newFakeUserRepo(nuevoUsuarioSinEmpresa("u1", "ana@taller.com"))
	companyRepo := newFakeCompanyRepo()
	uc := buildOnboarding(userRepo, companyRepo)

	out, err := uc.Complete(context.Background(), "u1", dto.OnboardingRequest{
		TeamSize:    TeamSizeSolo,
		CompanyName: "Clima Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleSoloOwner, out.User.Role, "team_size solo produce rol solo_owner")
	assert.True(t, out.User.IsOwner)
	assert.True(t, out.User.HasCompletedOnboarding)
	assert.True(t, out.Company.IsSolo)
	assert.Equal(t, "Clima Ana", out.Company.Name)
	assert.NotEmpty(t, out.Token, "debe emitirse un token fresco con el company_id nuevo")
	require.NotNil(t, out.User.CompanyID)
	assert.Equal(t, out.Company.ID, *out.User.CompanyID)

	// El estado persistido refleja lo mismo
	stored, _ := userRepo.GetByID("u1")
	assert.True(t, stored.HasCompletedOnboarding)
	require.Len(t, companyRepo.companies, 1)
}

func TestOnboarding_Equipo(t *testing.T) {
	userRepo := newFakeUserRepo(nuevoUsuarioSinEmpresa("u1", "ana@taller.com"))
	companyRepo := newFakeCompanyRepo()
	uc := buildOnboarding(userRepo, companyRepo)

	out, err := uc.Complete(context.Background(), "u1", dto.OnboardingRequest{
		TeamSize:    "2-5",
		CompanyName: "Clima Norte SAS",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role, "cualquier team_size distinto de solo produce admin")
	assert.False(t, out.Company.IsSolo)
}

func TestOnboarding_NombreFallbackDesdeEmail(t *testing.T) {
	userRepo := newFakeUserRepo(nuevoUsuarioSinEmpresa("u1", "josé.garcía@taller.com"))
	companyRepo := newFakeCompanyRepo()
	uc := buildOnboarding(userRepo, companyRepo)

	out, err := uc.Complete(context.Background(), "u1", dto.OnboardingRequest{TeamSize: TeamSizeSolo})
	require.NoError(t, err)
	assert.Equal(t, "jose.garcia HVAC Services", out.Company.Name,
		"el fallback usa el local-part del email normalizado a ASCII")
}

func TestOnboarding_FullNameActualizaNombre(t *testing.T) {
	userRepo := newFakeUserRepo(nuevoUsuarioSinEmpresa("u1", "ana@taller.com"))
	companyRepo := newFakeCompanyRepo()
	uc := buildOnboarding(userRepo, companyRepo)

	out, err := uc.Complete(context.Background(), "u1", dto.OnboardingRequest{
		TeamSize: TeamSizeSolo,
		FullName: "María Fernanda López",
	})
	require.NoError(t, err)
	assert.Equal(t, "María", out.User.FirstName)
	assert.Equal(t, "Fernanda López", out.User.LastName)
}

func TestOnboarding_TeamSizeRequerido(t *testing.T) {
	userRepo := newFakeUserRepo(nuevoUsuarioSinEmpresa("u1", "ana@taller.com"))
	uc := buildOnboarding(userRepo, newFakeCompanyRepo())

	_, err := uc.Complete(context.Background(), "u1", dto.OnboardingRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOnboarding_UsuarioInexistente(t *testing.T) {
	uc := buildOnboarding(newFakeUserRepo(), newFakeCompanyRepo())

	_, err := uc.Complete(context.Background(), "no-existe", dto.OnboardingRequest{TeamSize: TeamSizeSolo})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Reinvocar el onboarding no debe crear una segunda empresa.
func TestOnboarding_Reinvocacion(t *testing.T) {
	userRepo := newFakeUserRepo(nuevoUsuarioSinEmpresa("u1", "ana@taller.com"))
	companyRepo := newFakeCompanyRepo()
	uc := buildOnboarding(userRepo, companyRepo)

	_, err := uc.Complete(context.Background(), "u1", dto.OnboardingRequest{TeamSize: TeamSizeSolo})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), "u1", dto.OnboardingRequest{TeamSize: TeamSizeSolo})
	assert.ErrorIs(t, err, domain.ErrAlreadyOnboarded)
	assert.Len(t, companyRepo.companies, 1, "no debe crearse una segunda empresa")
}

// Si la empresa no se puede crear, el usuario debe quedar intacto.
func TestOnboarding_Atomicidad(t *testing.T) {
	userRepo := newFakeUserRepo(nuevoUsuarioSinEmpresa("u1", "ana@taller.com"))
	companyRepo := newFakeCompanyRepo()
	companyRepo.createErr = errors.New("insert company: conexión perdida")
	uc := buildOnboarding(userRepo, companyRepo)

	_, err := uc.Complete(context.Background(), "u1", dto.OnboardingRequest{TeamSize: TeamSizeSolo})
	require.Error(t, err)

	stored, _ := userRepo.GetByID("u1")
	assert.False(t, stored.HasCompletedOnboarding, "el fallo de la tx no debe dejar al usuario onboarded")
	assert.Nil(t, stored.CompanyID)
}

func TestCompanyNameFromEmail(t *testing.T) {
	assert.Equal(t, "juan.perez HVAC Services", companyNameFromEmail("juan.perez@x.com"))
	assert.Equal(t, "HVAC Company", companyNameFromEmail("@x.com"))
	// NFD descompone ñ en n + U+0303 y la marca combinante se remueve
	assert.Equal(t, "nandu HVAC Services", companyNameFromEmail("ñandu@x.com"))
}
