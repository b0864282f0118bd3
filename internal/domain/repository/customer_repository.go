package repository

import "github.com/tu-usuario/fieldpro-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
// Todas las operaciones por ID están acotadas al tenant: un ID de otra
// empresa se comporta exactamente como un registro inexistente.
type CustomerRepository interface {
	Create(customer *entity.Customer) error // asigna customer.ID
	GetByID(id int64, companyID string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64, companyID string) error
}
