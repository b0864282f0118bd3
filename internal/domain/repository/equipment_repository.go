package repository

import "github.com/tu-usuario/fieldpro-api/internal/domain/entity"

// EquipmentRepository puerto de persistencia para equipos instalados.
// Equipment no lleva company_id propio: el scoping se resuelve vía el
// cliente dueño (JOIN customers).
type EquipmentRepository interface {
	Create(eq *entity.Equipment) error // asigna eq.ID
	GetByID(id int64, companyID string) (*entity.Equipment, error)
	ListByCustomer(customerID int64, companyID string) ([]*entity.Equipment, error)
	Update(eq *entity.Equipment, companyID string) error
	Delete(id int64, companyID string) error
}
