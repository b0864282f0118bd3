package usecase

import (
	"context"
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

type fakeJobRepo struct {
	jobs   map[int64]entity.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]entity.Job{}, nextID: 1}
}

func (r *fakeJobRepo) Create(j *entity.Job) error {
	j.ID = r.nextID
	r.nextID++
	r.jobs[j.ID] = *j
	return nil
}

func (r *fakeJobRepo) GetByID(id int64, companyID string) (*entity.Job, error) {
	j, ok := r.jobs[id]
	if !ok || j.CompanyID != companyID {
		return nil, nil
	}
	copia := j
	return &copia, nil
}

func (r *fakeJobRepo) ListByCompany(companyID string, f repository.JobFilter) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range r.jobs {
		if j.CompanyID != companyID {
			continue
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		copia := j
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeJobRepo) ListScheduledBetween(string, time.Time, time.Time) ([]*entity.Job, error) {
	return nil, nil
}

func (r *fakeJobRepo) Update(j *entity.Job) error {
	r.jobs[j.ID] = *j
	return nil
}

func (r *fakeJobRepo) Delete(id int64, companyID string) error {
	delete(r.jobs, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]entity.Customer
}

func (r *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
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

type fakeHistoryRepo struct {
	entries []entity.ServiceHistory
}

func (r *fakeHistoryRepo) Create(h *entity.ServiceHistory) error {
	h.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, *h)
	return nil
}

func (r *fakeHistoryRepo) ListByCustomer(int64, string) ([]*entity.ServiceHistory, error) {
	var out []*entity.ServiceHistory
	for i := range r.entries {
		copia := r.entries[i]
		out = append(out, &copia)
	}
	return out, nil
}

// fakeJobTxRunner pasa los mismos fakes al callback; cuenta ejecuciones.
type fakeJobTxRunner struct {
	jobRepo     *fakeJobRepo
	historyRepo *fakeHistoryRepo
	runs        int
}

func (r *fakeJobTxRunner) RunJobCompletion(_ context.Context, fn func(
	jobRepo repository.JobRepository,
	historyRepo repository.ServiceHistoryRepository,
) error) error {
	r.runs++
	return fn(r.jobRepo, r.historyRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testCompany = "company-1"

func buildJobUC() (*JobUseCase, *fakeJobRepo, *fakeHistoryRepo, *fakeJobTxRunner) {
	jobRepo := newFakeJobRepo()
	historyRepo := &fakeHistoryRepo{}
	customers := &fakeCustomerRepo{customers: map[int64]entity.Customer{
		7: {ID: 7, CompanyID: testCompany, Name: "Hotel Plaza"},
	}}
	tx := &fakeJobTxRunner{jobRepo: jobRepo, historyRepo: historyRepo}
	return NewJobUseCase(jobRepo, customers, tx), jobRepo, historyRepo, tx
}

func crearTrabajo(t *testing.T, uc *JobUseCase, role string) *dto.JobResponse {
	t.Helper()
	out, err := uc.Create(testCompany, "user-1", role, dto.CreateJobRequest{
		CustomerID: 7,
		Title:      "Mantenimiento preventivo",
		Type:       entity.JobTypeMaintenance,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestJobCreate_Defaults(t *testing.T) {
	uc, _, _, _ := buildJobUC()
	out := crearTrabajo(t, uc, entity.RoleAdmin)

	assert.Equal(t, entity.JobStatusScheduled, out.Status)
	assert.Equal(t, entity.PriorityMedium, out.Priority, "prioridad por defecto")
	assert.Nil(t, out.TechnicianID, "un admin no queda autoasignado")
	assert.Nil(t, out.CompletedAt)
}

func TestJobCreate_SoloOwnerQuedaAutoasignado(t *testing.T) {
	uc, _, _, _ := buildJobUC()
	out := crearTrabajo(t, uc, entity.RoleSoloOwner)

	require.NotNil(t, out.TechnicianID)
	assert.Equal(t, "user-1", *out.TechnicianID, "el solo_owner es el único técnico")
}

func TestJobCreate_ClienteDeOtroTenant(t *testing.T) {
	uc, _, _, _ := buildJobUC()
	_, err := uc.Create("otra-empresa", "user-1", entity.RoleAdmin, dto.CreateJobRequest{
		CustomerID: 7, Title: "x", Type: entity.JobTypeRepair,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobUpdate_CompletarAsignaCompletedAtYRegistraHistorial(t *testing.T) {
	uc, jobRepo, historyRepo, tx := buildJobUC()
	created := crearTrabajo(t, uc, entity.RoleSoloOwner)

	completed := entity.JobStatusCompleted
	out, err := uc.Update(context.Background(), testCompany, created.ID, dto.UpdateJobRequest{Status: &completed})
	require.NoError(t, err)

	require.NotNil(t, out.CompletedAt, "completar asigna completed_at")
	assert.Equal(t, 1, tx.runs, "el cierre corre dentro de la transacción")
	require.Len(t, historyRepo.entries, 1, "el cierre inserta la fila de historial")

	h := historyRepo.entries[0]
	assert.Equal(t, created.ID, h.JobID)
	assert.Equal(t, int64(7), h.CustomerID)
	assert.Equal(t, entity.JobTypeMaintenance, h.ServiceType)
	assert.Equal(t, "Mantenimiento preventivo", h.Description)
	require.NotNil(t, h.TechnicianID)
	assert.Equal(t, "user-1", *h.TechnicianID)

	stored, _ := jobRepo.GetByID(created.ID, testCompany)
	assert.NotNil(t, stored.CompletedAt)
}

func TestJobUpdate_SalirDeCompletedLimpiaCompletedAt(t *testing.T) {
	uc, jobRepo, _, _ := buildJobUC()
	created := crearTrabajo(t, uc, entity.RoleAdmin)

	completed := entity.JobStatusCompleted
	_, err := uc.Update(context.Background(), testCompany, created.ID, dto.UpdateJobRequest{Status: &completed})
	require.NoError(t, err)

	inProgress := entity.JobStatusInProgress
	out, err := uc.Update(context.Background(), testCompany, created.ID, dto.UpdateJobRequest{Status: &inProgress})
	require.NoError(t, err)
	assert.Nil(t, out.CompletedAt, "salir de completed limpia completed_at")

	stored, _ := jobRepo.GetByID(created.ID, testCompany)
	assert.Nil(t, stored.CompletedAt)
}

func TestJobUpdate_ReCompletarNoDuplicaHistorial(t *testing.T) {
	uc, _, historyRepo, _ := buildJobUC()
	created := crearTrabajo(t, uc, entity.RoleAdmin)

	completed := entity.JobStatusCompleted
	_, err := uc.Update(context.Background(), testCompany, created.ID, dto.UpdateJobRequest{Status: &completed})
	require.NoError(t, err)

	// Update sin cambio de estado: sigue completed, no hay nueva transición
	notas := "se cambió el filtro"
	_, err = uc.Update(context.Background(), testCompany, created.ID, dto.UpdateJobRequest{Notes: &notas})
	require.NoError(t, err)

	assert.Len(t, historyRepo.entries, 1, "solo la transición a completed inserta historial")
}

func TestJobUpdate_EstadoDesconocido(t *testing.T) {
	uc, _, _, _ := buildJobUC()
	created := crearTrabajo(t, uc, entity.RoleAdmin)

	malo := "archived"
	_, err := uc.Update(context.Background(), testCompany, created.ID, dto.UpdateJobRequest{Status: &malo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobList_FiltroEstadoInvalido(t *testing.T) {
	uc, _, _, _ := buildJobUC()
	_, err := uc.List(testCompany, repository.JobFilter{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
