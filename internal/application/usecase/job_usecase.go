package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/fieldpro-api/internal/application/dto"
	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

// JobTxRunner ejecuta el cierre de un trabajo dentro de una transacción:
// el UPDATE del job y el INSERT del historial de servicio van juntos.
type JobTxRunner interface {
	RunJobCompletion(ctx context.Context, fn func(
		jobRepo repository.JobRepository,
		historyRepo repository.ServiceHistoryRepository,
	) error) error
}

// JobUseCase casos de uso para órdenes de trabajo.
type JobUseCase struct {
	repo         repository.JobRepository
	customerRepo repository.CustomerRepository
	txRunner     JobTxRunner
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(repo repository.JobRepository, customerRepo repository.CustomerRepository, txRunner JobTxRunner) *JobUseCase {
	return &JobUseCase{repo: repo, customerRepo: customerRepo, txRunner: txRunner}
}

// Create crea una orden de trabajo. Un solo_owner sin technician_id
// explícito queda autoasignado como técnico del trabajo.
func (uc *JobUseCase) Create(companyID, userID, userRole string, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if strings.TrimSpace(in.Title) == "" || in.CustomerID == 0 || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	owner, err := uc.customerRepo.GetByID(in.CustomerID, companyID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	technicianID := in.TechnicianID
	if technicianID == nil && userRole == entity.RoleSoloOwner {
		technicianID = &userID
	}
	now := time.Now()
	job := &entity.Job{
		CompanyID:         companyID,
		CustomerID:        in.CustomerID,
		TechnicianID:      technicianID,
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		Type:              in.Type,
		Priority:          priority,
		Status:            entity.JobStatusScheduled,
		ScheduledDate:     in.ScheduledDate,
		ScheduledTime:     in.ScheduledTime,
		EstimatedDuration: in.EstimatedDuration,
		EstimatedCost:     in.EstimatedCost,
		Notes:             in.Notes,
		EquipmentIDs:      in.EquipmentIDs,
		PartsUsed:         in.PartsUsed,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// GetByID obtiene un trabajo acotado al tenant del caller.
func (uc *JobUseCase) GetByID(companyID string, id int64) (*dto.JobResponse, error) {
	job, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	return toJobResponse(job), nil
}

// List lista trabajos con filtros opcionales, scheduled_date descendente.
func (uc *JobUseCase) List(companyID string, f repository.JobFilter) ([]*dto.JobResponse, error) {
	if f.Status != "" && !entity.ValidJobStatus(f.Status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCompany(companyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JobResponse, 0, len(list))
	for _, j := range list {
		out = append(out, toJobResponse(j))
	}
	return out, nil
}

// Update aplica una actualización parcial y mantiene el invariante
// completed_at ⇔ status=completed. La transición a completed inserta
// además la fila de historial de servicio en la misma transacción.
func (uc *JobUseCase) Update(ctx context.Context, companyID string, id int64, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}

	wasCompleted := job.Status == entity.JobStatusCompleted
	if err := applyJobUpdate(job, in); err != nil {
		return nil, err
	}
	now := time.Now()
	job.UpdatedAt = now

	completing := !wasCompleted && job.Status == entity.JobStatusCompleted
	switch {
	case completing:
		job.CompletedAt = &now
	case wasCompleted && job.Status != entity.JobStatusCompleted:
		job.CompletedAt = nil
	}

	if !completing {
		if err := uc.repo.Update(job); err != nil {
			return nil, err
		}
		return toJobResponse(job), nil
	}

	// Cierre: UPDATE del job + INSERT del historial, atómico.
	err = uc.txRunner.RunJobCompletion(ctx, func(
		jobRepo repository.JobRepository,
		historyRepo repository.ServiceHistoryRepository,
	) error {
		if err := jobRepo.Update(job); err != nil {
			return err
		}
		return historyRepo.Create(&entity.ServiceHistory{
			CustomerID:   job.CustomerID,
			JobID:        job.ID,
			ServiceDate:  now,
			ServiceType:  job.Type,
			Description:  job.Title,
			TechnicianID: job.TechnicianID,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// Delete elimina un trabajo (hard delete).
func (uc *JobUseCase) Delete(companyID string, id int64) error {
	return uc.repo.Delete(id, companyID)
}

func applyJobUpdate(job *entity.Job, in dto.UpdateJobRequest) error {
	if in.Status != nil {
		if !entity.ValidJobStatus(*in.Status) {
			return domain.ErrInvalidInput
		}
		job.Status = *in.Status
	}
	if in.TechnicianID != nil {
		job.TechnicianID = in.TechnicianID
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return domain.ErrInvalidInput
		}
		job.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Type != nil {
		job.Type = *in.Type
	}
	if in.Priority != nil {
		job.Priority = *in.Priority
	}
	if in.ScheduledDate != nil {
		job.ScheduledDate = in.ScheduledDate
	}
	if in.ScheduledTime != nil {
		job.ScheduledTime = *in.ScheduledTime
	}
	if in.EstimatedDuration != nil {
		job.EstimatedDuration = in.EstimatedDuration
	}
	if in.EstimatedCost != nil {
		job.EstimatedCost = in.EstimatedCost
	}
	if in.ActualCost != nil {
		job.ActualCost = in.ActualCost
	}
	if in.LaborTime != nil {
		job.LaborTime = in.LaborTime
	}
	if in.Notes != nil {
		job.Notes = *in.Notes
	}
	if in.EquipmentIDs != nil {
		job.EquipmentIDs = *in.EquipmentIDs
	}
	if in.PartsUsed != nil {
		job.PartsUsed = *in.PartsUsed
	}
	return nil
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
