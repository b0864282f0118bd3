package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

const jobColumns = `id, company_id, customer_id, technician_id, title, description, type, priority, status,
		scheduled_date, scheduled_time, estimated_duration, estimated_cost, actual_cost, labor_time,
		notes, equipment_ids, parts_used, completed_at, created_at, updated_at`

// JobRepo implementación de JobRepository (usable con pool o tx).
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

// Create persiste una orden de trabajo y asigna su ID.
func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (company_id, customer_id, technician_id, title, description, type, priority, status,
			scheduled_date, scheduled_time, estimated_duration, estimated_cost, actual_cost, labor_time,
			notes, equipment_ids, parts_used, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		job.CompanyID, job.CustomerID, job.TechnicianID, job.Title, job.Description, job.Type,
		job.Priority, job.Status, job.ScheduledDate, job.ScheduledTime, job.EstimatedDuration,
		job.EstimatedCost, job.ActualCost, job.LaborTime, job.Notes, job.EquipmentIDs, job.PartsUsed,
		job.CompletedAt, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajo por ID dentro del tenant.
func (r *JobRepo) GetByID(id int64, companyID string) (*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND company_id = $2`
	row := r.q.QueryRow(context.Background(), query, id, companyID)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// ListByCompany lista trabajos del tenant, scheduled_date descendente,
// aplicando los filtros no vacíos (match exacto; Date filtra el día
// calendario como ventana semiabierta).
func (r *JobRepo) ListByCompany(companyID string, f repository.JobFilter) ([]*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE company_id = $1`
	args := []any{companyID}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.TechnicianID != "" {
		args = append(args, f.TechnicianID)
		query += fmt.Sprintf(" AND technician_id = $%d", len(args))
	}
	if f.Date != nil {
		y, m, d := f.Date.Date()
		from := time.Date(y, m, d, 0, 0, 0, 0, f.Date.Location())
		args = append(args, from, from.AddDate(0, 0, 1))
		query += fmt.Sprintf(" AND scheduled_date >= $%d AND scheduled_date < $%d", len(args)-1, len(args))
	}
	query += " ORDER BY scheduled_date DESC NULLS LAST, id DESC"
	return r.list(query, args)
}

// ListScheduledBetween lista la agenda: trabajos con scheduled_date en
// [from, to), ascendente.
func (r *JobRepo) ListScheduledBetween(companyID string, from, to time.Time) ([]*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
		WHERE company_id = $1 AND scheduled_date >= $2 AND scheduled_date < $3
		ORDER BY scheduled_date ASC, scheduled_time ASC`
	return r.list(query, []any{companyID, from, to})
}

func (r *JobRepo) list(query string, args []any) ([]*entity.Job, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, job)
	}
	return list, rows.Err()
}

// Update actualiza un trabajo dentro del tenant.
func (r *JobRepo) Update(job *entity.Job) error {
	query := `
		UPDATE jobs SET customer_id = $3, technician_id = $4, title = $5, description = $6, type = $7,
			priority = $8, status = $9, scheduled_date = $10, scheduled_time = $11, estimated_duration = $12,
			estimated_cost = $13, actual_cost = $14, labor_time = $15, notes = $16, equipment_ids = $17,
			parts_used = $18, completed_at = $19, updated_at = $20
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.CompanyID, job.CustomerID, job.TechnicianID, job.Title, job.Description, job.Type,
		job.Priority, job.Status, job.ScheduledDate, job.ScheduledTime, job.EstimatedDuration,
		job.EstimatedCost, job.ActualCost, job.LaborTime, job.Notes, job.EquipmentIDs, job.PartsUsed,
		job.CompletedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// Delete elimina un trabajo dentro del tenant.
func (r *JobRepo) Delete(id int64, companyID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM jobs WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func scanJob(row pgx.Row) (*entity.Job, error) {
	var j entity.Job
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.CustomerID, &j.TechnicianID, &j.Title, &j.Description, &j.Type,
		&j.Priority, &j.Status, &j.ScheduledDate, &j.ScheduledTime, &j.EstimatedDuration,
		&j.EstimatedCost, &j.ActualCost, &j.LaborTime, &j.Notes, &j.EquipmentIDs, &j.PartsUsed,
		&j.CompletedAt, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
