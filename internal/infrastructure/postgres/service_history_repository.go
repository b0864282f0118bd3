package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

var _ repository.ServiceHistoryRepository = (*ServiceHistoryRepo)(nil)

// ServiceHistoryRepo implementación de ServiceHistoryRepository (usable
// con pool o tx: la fila de historial se inserta en la misma transacción
// que cierra el trabajo). Append-only: sin UPDATE ni DELETE.
type ServiceHistoryRepo struct {
	q Querier
}

// NewServiceHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceHistoryRepository(q Querier) *ServiceHistoryRepo {
	return &ServiceHistoryRepo{q: q}
}

// Create persiste una entrada de historial y asigna su ID.
func (r *ServiceHistoryRepo) Create(h *entity.ServiceHistory) error {
	query := `
		INSERT INTO service_history (customer_id, job_id, equipment_id, service_date, service_type, description, technician_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		h.CustomerID, h.JobID, h.EquipmentID, h.ServiceDate, h.ServiceType,
		h.Description, h.TechnicianID, h.CreatedAt,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("insert service history: %w", err)
	}
	return nil
}

// ListByCustomer lista el historial de un cliente del tenant, más
// reciente primero. El scoping se resuelve vía el cliente dueño.
func (r *ServiceHistoryRepo) ListByCustomer(customerID int64, companyID string) ([]*entity.ServiceHistory, error) {
	query := `
		SELECT h.id, h.customer_id, h.job_id, h.equipment_id, h.service_date, h.service_type, h.description, h.technician_id, h.created_at
		FROM service_history h
		JOIN customers c ON c.id = h.customer_id
		WHERE h.customer_id = $1 AND c.company_id = $2
		ORDER BY h.service_date DESC, h.id DESC`
	rows, err := r.q.Query(context.Background(), query, customerID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list service history: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceHistory
	for rows.Next() {
		var h entity.ServiceHistory
		if err := rows.Scan(&h.ID, &h.CustomerID, &h.JobID, &h.EquipmentID, &h.ServiceDate,
			&h.ServiceType, &h.Description, &h.TechnicianID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
