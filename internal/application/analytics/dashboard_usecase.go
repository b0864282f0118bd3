package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/fieldpro-api/internal/application/dto"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

// DashboardUseCase agrega métricas operativas del día para la empresa.
// Los valores se calculan siempre contra el estado actual; no hay caché.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
	jobRepo  repository.JobRepository
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, jobRepo repository.JobRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, jobRepo: jobRepo, now: time.Now}
}

// dayWindow devuelve [medianoche local, +24h) del instante dado.
func dayWindow(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 0, 1)
}

// GetStats calcula las métricas del dashboard para el día en curso.
// Las dos consultas de agregación corren en paralelo.
func (uc *DashboardUseCase) GetStats(ctx context.Context, companyID string) (*dto.DashboardStatsDTO, error) {
	now := uc.now()
	from, to := dayWindow(now)

	var (
		wg       sync.WaitGroup
		stats    repository.JobDayStats
		overdue  int
		jobsErr  error
		countErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, jobsErr = uc.dashRepo.GetJobDayStats(ctx, companyID, from, to)
	}()
	go func() {
		defer wg.Done()
		overdue, countErr = uc.dashRepo.CountOverdueInvoices(ctx, companyID, now)
	}()
	wg.Wait()

	if jobsErr != nil {
		return nil, jobsErr
	}
	if countErr != nil {
		return nil, countErr
	}
	return &dto.DashboardStatsDTO{
		TodaysJobs:      stats.Total,
		CompletedJobs:   stats.Completed,
		Revenue:         stats.Revenue,
		OverdueInvoices: overdue,
	}, nil
}

// TodaysJobs devuelve la agenda del día: trabajos con scheduled_date en
// la ventana del día en curso, ordenados ascendente.
func (uc *DashboardUseCase) TodaysJobs(companyID string) ([]*dto.JobResponse, error) {
	from, to := dayWindow(uc.now())
	list, err := uc.jobRepo.ListScheduledBetween(companyID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JobResponse, 0, len(list))
	for _, j := range list {
		out = append(out, toJobResponse(j))
	}
	return out, nil
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:                j.ID,
		CompanyID:         j.CompanyID,
		CustomerID:        j.CustomerID,
		TechnicianID:      j.TechnicianID,
		Title:             j.Title,
		Description:       j.Description,
		Type:              j.Type,
		Priority:          j.Priority,
		Status:            j.Status,
		ScheduledDate:     j.ScheduledDate,
		ScheduledTime:     j.ScheduledTime,
		EstimatedDuration: j.EstimatedDuration,
		EstimatedCost:     j.EstimatedCost,
		ActualCost:        j.ActualCost,
		LaborTime:         j.LaborTime,
		Notes:             j.Notes,
		EquipmentIDs:      j.EquipmentIDs,
		PartsUsed:         j.PartsUsed,
		CompletedAt:       j.CompletedAt,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}
