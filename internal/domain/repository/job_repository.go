package repository

import (
	"time"

	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
)

// JobFilter filtros opcionales para listar trabajos (match exacto).
type JobFilter struct {
	Status       string     // vacío = todos
	TechnicianID string     // vacío = todos
	Date         *time.Time // día calendario de scheduled_date; nil = todos
}

// JobRepository puerto de persistencia para órdenes de trabajo.
type JobRepository interface {
	Create(job *entity.Job) error // asigna job.ID
	GetByID(id int64, companyID string) (*entity.Job, error)
	// ListByCompany devuelve los trabajos de la empresa ordenados por
	// scheduled_date descendente, aplicando los filtros no vacíos.
	ListByCompany(companyID string, f JobFilter) ([]*entity.Job, error)
	// ListScheduledBetween devuelve los trabajos con scheduled_date en
	// [from, to), ordenados ascendente (agenda del día).
	ListScheduledBetween(companyID string, from, to time.Time) ([]*entity.Job, error)
	Update(job *entity.Job) error
	Delete(id int64, companyID string) error
}
