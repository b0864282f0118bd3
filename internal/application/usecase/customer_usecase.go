package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/fieldpro-api/internal/application/dto"
	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes de la empresa.
type CustomerUseCase struct {
	repo        repository.CustomerRepository
	historyRepo repository.ServiceHistoryRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, historyRepo repository.ServiceHistoryRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, historyRepo: historyRepo}
}

// Create crea un cliente. Solo el nombre es obligatorio.
func (uc *CustomerUseCase) Create(companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		CompanyID:              companyID,
		Name:                   strings.TrimSpace(in.Name),
		Email:                  in.Email,
		Phone:                  in.Phone,
		Address:                in.Address,
		Notes:                  in.Notes,
		PreferredContactMethod: in.PreferredContactMethod,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente acotado al tenant del caller.
func (uc *CustomerUseCase) GetByID(companyID string, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes de la empresa.
func (uc *CustomerUseCase) List(companyID string, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update aplica una actualización parcial.
func (uc *CustomerUseCase) Update(companyID string, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	if in.PreferredContactMethod != nil {
		customer.PreferredContactMethod = *in.PreferredContactMethod
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente (hard delete).
func (uc *CustomerUseCase) Delete(companyID string, id int64) error {
	return uc.repo.Delete(id, companyID)
}

// History devuelve el historial de servicio del cliente, más reciente primero.
func (uc *CustomerUseCase) History(companyID string, customerID int64) ([]*dto.ServiceHistoryResponse, error) {
	list, err := uc.historyRepo.ListByCustomer(customerID, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceHistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, &dto.ServiceHistoryResponse{
			ID:           h.ID,
			CustomerID:   h.CustomerID,
			JobID:        h.JobID,
			EquipmentID:  h.EquipmentID,
			ServiceDate:  h.ServiceDate,
			ServiceType:  h.ServiceType,
			Description:  h.Description,
			TechnicianID: h.TechnicianID,
			CreatedAt:    h.CreatedAt,
		})
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:                     c.ID,
		CompanyID:              c.CompanyID,
		Name:                   c.Name,
		Email:                  c.Email,
		Phone:                  c.Phone,
		Address:                c.Address,
		Notes:                  c.Notes,
		PreferredContactMethod: c.PreferredContactMethod,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}
