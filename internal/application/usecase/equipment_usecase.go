package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/fieldpro-api/internal/application/dto"
	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

// EquipmentUseCase casos de uso para equipos instalados.
type EquipmentUseCase struct {
	repo         repository.EquipmentRepository
	customerRepo repository.CustomerRepository
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository, customerRepo repository.CustomerRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, customerRepo: customerRepo}
}

// Create registra un equipo. El cliente dueño debe pertenecer al tenant
// del caller; un cliente ajeno se reporta como inexistente.
func (uc *EquipmentUseCase) Create(companyID string, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if strings.TrimSpace(in.Type) == "" || in.CustomerID == 0 {
		return nil, domain.ErrInvalidInput
	}
	owner, err := uc.customerRepo.GetByID(in.CustomerID, companyID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	eq := &entity.Equipment{
		CustomerID:      in.CustomerID,
		Make:            in.Make,
		Model:           in.Model,
		SerialNumber:    in.SerialNumber,
		Type:            in.Type,
		InstallDate:     in.InstallDate,
		WarrantyExpires: in.WarrantyExpires,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(eq); err != nil {
		return nil, err
	}
	return toEquipmentResponse(eq), nil
}

// GetByID obtiene un equipo acotado al tenant (vía su cliente dueño).
func (uc *EquipmentUseCase) GetByID(companyID string, id int64) (*dto.EquipmentResponse, error) {
	eq, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	return toEquipmentResponse(eq), nil
}

// ListByCustomer lista los equipos de un cliente del tenant.
func (uc *EquipmentUseCase) ListByCustomer(companyID string, customerID int64) ([]*dto.EquipmentResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EquipmentResponse, 0, len(list))
	for _, eq := range list {
		out = append(out, toEquipmentResponse(eq))
	}
	return out, nil
}

// Update aplica una actualización parcial.
func (uc *EquipmentUseCase) Update(companyID string, id int64, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	eq, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	if in.Make != nil {
		eq.Make = *in.Make
	}
	if in.Model != nil {
		eq.Model = *in.Model
	}
	if in.SerialNumber != nil {
		eq.SerialNumber = *in.SerialNumber
	}
	if in.Type != nil {
		if strings.TrimSpace(*in.Type) == "" {
			return nil, domain.ErrInvalidInput
		}
		eq.Type = *in.Type
	}
	if in.InstallDate != nil {
		eq.InstallDate = in.InstallDate
	}
	if in.WarrantyExpires != nil {
		eq.WarrantyExpires = in.WarrantyExpires
	}
	if in.Notes != nil {
		eq.Notes = *in.Notes
	}
	if err := uc.repo.Update(eq, companyID); err != nil {
		return nil, err
	}
	return toEquipmentResponse(eq), nil
}

// Delete elimina un equipo.
func (uc *EquipmentUseCase) Delete(companyID string, id int64) error {
	return uc.repo.Delete(id, companyID)
}

func toEquipmentResponse(eq *entity.Equipment) *dto.EquipmentResponse {
	return &dto.EquipmentResponse{
		ID:              eq.ID,
		CustomerID:      eq.CustomerID,
		Make:            eq.Make,
		Model:           eq.Model,
		SerialNumber:    eq.SerialNumber,
		Type:            eq.Type,
		InstallDate:     eq.InstallDate,
		WarrantyExpires: eq.WarrantyExpires,
		Notes:           eq.Notes,
		CreatedAt:       eq.CreatedAt,
	}
}
