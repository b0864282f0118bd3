package repository

import "github.com/tu-usuario/fieldpro-api/internal/domain/entity"

// ServiceHistoryRepository puerto de persistencia para el historial de
// servicio (append-only: solo insertar y listar).
type ServiceHistoryRepository interface {
	Create(h *entity.ServiceHistory) error // asigna h.ID
	ListByCustomer(customerID int64, companyID string) ([]*entity.ServiceHistory, error)
}
