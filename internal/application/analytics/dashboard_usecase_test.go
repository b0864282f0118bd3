package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

type fakeDashboardRepo struct {
	stats    repository.JobDayStats
	overdue  int
	gotFrom  time.Time
	gotTo    time.Time
	gotToday time.Time
}

func (r *fakeDashboardRepo) GetJobDayStats(_ context.Context, _ string, from, to time.Time) (repository.JobDayStats, error) {
	r.gotFrom, r.gotTo = from, to
	return r.stats, nil
}

func (r *fakeDashboardRepo) CountOverdueInvoices(_ context.Context, _ string, today time.Time) (int, error) {
	r.gotToday = today
	return r.overdue, nil
}

type fakeJobRepo struct {
	jobs    []*entity.Job
	gotFrom time.Time
	gotTo   time.Time
}

func (r *fakeJobRepo) Create(*entity.Job) error { return nil }
func (r *fakeJobRepo) GetByID(int64, string) (*entity.Job, error) {
	return nil, nil
}
func (r *fakeJobRepo) ListByCompany(string, repository.JobFilter) ([]*entity.Job, error) {
	return nil, nil
}
func (r *fakeJobRepo) ListScheduledBetween(_ string, from, to time.Time) ([]*entity.Job, error) {
	r.gotFrom, r.gotTo = from, to
	return r.jobs, nil
}
func (r *fakeJobRepo) Update(*entity.Job) error   { return nil }
func (r *fakeJobRepo) Delete(int64, string) error { return nil }

func TestGetStats_VentanaDelDia(t *testing.T) {
	dashRepo := &fakeDashboardRepo{
		stats: repository.JobDayStats{
			Total:     5,
			Completed: 2,
			Revenue:   decimal.RequireFromString("350.50"),
		},
		overdue: 3,
	}
	uc := NewDashboardUseCase(dashRepo, &fakeJobRepo{})
	ahora := time.Date(2026, 1, 15, 14, 45, 30, 0, time.Local)
	uc.now = func() time.Time { return ahora }

	out, err := uc.GetStats(context.Background(), "company-1")
	require.NoError(t, err)

	assert.Equal(t, 5, out.TodaysJobs)
	assert.Equal(t, 2, out.CompletedJobs)
	assert.True(t, out.Revenue.Equal(decimal.RequireFromString("350.50")))
	assert.Equal(t, 3, out.OverdueInvoices)

	// Ventana semiabierta [medianoche, +24h)
	medianoche := time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, medianoche, dashRepo.gotFrom)
	assert.Equal(t, medianoche.AddDate(0, 0, 1), dashRepo.gotTo)
	assert.Equal(t, ahora, dashRepo.gotToday, "el corte de vencimiento usa el instante actual")
}

func TestTodaysJobs_MismaVentana(t *testing.T) {
	jobRepo := &fakeJobRepo{jobs: []*entity.Job{
		{ID: 1, CompanyID: "company-1", CustomerID: 7, Title: "Revisión caldera", Status: entity.JobStatusScheduled},
	}}
	uc := NewDashboardUseCase(&fakeDashboardRepo{}, jobRepo)
	ahora := time.Date(2026, 1, 15, 8, 0, 0, 0, time.Local)
	uc.now = func() time.Time { return ahora }

	out, err := uc.TodaysJobs("company-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Revisión caldera", out[0].Title)

	medianoche := time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, medianoche, jobRepo.gotFrom)
	assert.Equal(t, medianoche.AddDate(0, 0, 1), jobRepo.gotTo)
}
