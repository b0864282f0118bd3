package billing

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
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

type fakeInvoiceRepo struct {
	invoices   map[int64]entity.Invoice
	nextID     int64
	duplicates int // Create falla con ErrDuplicate esta cantidad de veces
	attempts   int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[int64]entity.Invoice{}, nextID: 1}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.attempts++
	if r.duplicates > 0 {
		r.duplicates--
		return domain.ErrDuplicate
	}
	inv.ID = r.nextID
	r.nextID++
	r.invoices[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id int64, companyID string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok || inv.CompanyID != companyID {
		return nil, nil
	}
	copia := inv
	return &copia, nil
}

func (r *fakeInvoiceRepo) ListByCompany(companyID string, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CompanyID != companyID {
			continue
		}
		if f.Status != "" && inv.Status != f.Status {
			continue
		}
		if f.OnlyOverdue && !inv.IsOverdue(f.Today) {
			continue
		}
		copia := inv
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	r.invoices[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) Delete(id int64, companyID string) error {
	delete(r.invoices, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) GetByID(id int64, companyID string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	copia := c
	return &copia, nil
}
func (r *fakeCustomerRepo) ListByCompany(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(int64, string) error    { return nil }

type fakeJobRepo struct {
	jobs map[int64]entity.Job
}

func (r *fakeJobRepo) Create(*entity.Job) error { return nil }
func (r *fakeJobRepo) GetByID(id int64, companyID string) (*entity.Job, error) {
	j, ok := r.jobs[id]
	if !ok || j.CompanyID != companyID {
		return nil, nil
	}
	copia := j
	return &copia, nil
}
func (r *fakeJobRepo) ListByCompany(string, repository.JobFilter) ([]*entity.Job, error) {
	return nil, nil
}
func (r *fakeJobRepo) ListScheduledBetween(string, time.Time, time.Time) ([]*entity.Job, error) {
	return nil, nil
}
func (r *fakeJobRepo) Update(*entity.Job) error    { return nil }
func (r *fakeJobRepo) Delete(int64, string) error  { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testCompany = "company-1"

var hoy = time.Date(2026, 1, 15, 10, 30, 0, 0, time.Local)

func buildInvoiceUC(invRepo *fakeInvoiceRepo, jobs map[int64]entity.Job) *InvoiceUseCase {
	customers := &fakeCustomerRepo{customers: map[int64]entity.Customer{
		7: {ID: 7, CompanyID: testCompany, Name: "Hotel Plaza"},
	}}
	uc := NewInvoiceUseCase(invRepo, customers, &fakeJobRepo{jobs: jobs})
	uc.now = func() time.Time { return hoy }
	return uc
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Número de factura
// ──────────────────────────────────────────────────────────────────────────────

func TestNewInvoiceNumber_Formato(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := NewInvoiceNumber()
		require.True(t, strings.HasPrefix(n, "INV-"), "prefijo INV-: %s", n)
		require.Len(t, n, len("INV-")+8, "8 caracteres hex: %s", n)
		suffix := strings.TrimPrefix(n, "INV-")
		assert.Equal(t, strings.ToUpper(suffix), suffix, "hex en mayúsculas: %s", n)
		seen[n] = true
	}
	assert.Greater(t, len(seen), 45, "colisiones masivas delatan un generador roto")
}

func TestCreate_ReintentaAnteNumeroDuplicado(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.duplicates = 2 // los dos primeros intentos chocan con el índice único
	uc := buildInvoiceUC(repo, nil)

	out, err := uc.Create(testCompany, dto.CreateInvoiceRequest{CustomerID: 7, Amount: dec("100")})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.attempts, "dos colisiones + un éxito")
	assert.NotEmpty(t, out.InvoiceNumber)
}

func TestCreate_AgotaReintentos(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.duplicates = 10
	uc := buildInvoiceUC(repo, nil)

	_, err := uc.Create(testCompany, dto.CreateInvoiceRequest{CustomerID: 7, Amount: dec("100")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 3, repo.attempts, "no más de 3 intentos")
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ClienteDeOtroTenant(t *testing.T) {
	uc := buildInvoiceUC(newFakeInvoiceRepo(), nil)
	_, err := uc.Create("otra-empresa", dto.CreateInvoiceRequest{CustomerID: 7, Amount: dec("100")})
	assert.ErrorIs(t, err, domain.ErrNotFound, "un cliente ajeno se comporta como inexistente")
}

func TestCreate_MontoNegativo(t *testing.T) {
	uc := buildInvoiceUC(newFakeInvoiceRepo(), nil)
	_, err := uc.Create(testCompany, dto.CreateInvoiceRequest{CustomerID: 7, Amount: dec("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_TransicionAPagadaAsignaPaidDate(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := buildInvoiceUC(repo, nil)
	created, err := uc.Create(testCompany, dto.CreateInvoiceRequest{CustomerID: 7, Amount: dec("200")})
	require.NoError(t, err)
	require.Nil(t, created.PaidDate)

	paid := entity.InvoiceStatusPaid
	out, err := uc.Update(testCompany, created.ID, dto.UpdateInvoiceRequest{Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, out.PaidDate, "pasar a paid asigna paid_date")
	assert.Equal(t, hoy, *out.PaidDate)

	// Volver a pending limpia paid_date
	pending := entity.InvoiceStatusPending
	out, err = uc.Update(testCompany, created.ID, dto.UpdateInvoiceRequest{Status: &pending})
	require.NoError(t, err)
	assert.Nil(t, out.PaidDate, "salir de paid limpia paid_date")
}

func TestUpdate_EstadoDesconocido(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := buildInvoiceUC(repo, nil)
	created, err := uc.Create(testCompany, dto.CreateInvoiceRequest{CustomerID: 7, Amount: dec("200")})
	require.NoError(t, err)

	overdue := "overdue" // vista derivada, no almacenable
	_, err = uc.Update(testCompany, created.ID, dto.UpdateInvoiceRequest{Status: &overdue})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_EstadoInvalido(t *testing.T) {
	uc := buildInvoiceUC(newFakeInvoiceRepo(), nil)
	_, err := uc.List(testCompany, "desconocido", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_DerivaOverdue(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := buildInvoiceUC(repo, nil)
	vencida := hoy.AddDate(0, 0, -1)
	created, err := uc.Create(testCompany, dto.CreateInvoiceRequest{
		CustomerID: 7, Amount: dec("300"), DueDate: &vencida,
	})
	require.NoError(t, err)

	out, err := uc.GetByID(testCompany, created.ID)
	require.NoError(t, err)
	assert.True(t, out.Overdue, "pendiente con due_date pasado se reporta vencida")
	assert.Equal(t, entity.InvoiceStatusPending, out.Status, "overdue no es un estado almacenado")
}
