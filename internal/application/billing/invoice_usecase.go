package billing

import (
	"time"

	"github.com/tu-usuario/fieldpro-api/internal/application/dto"
	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso para facturas.
type InvoiceUseCase struct {
	repo         repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	jobRepo      repository.JobRepository
	now          func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	repo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	jobRepo repository.JobRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, customerRepo: customerRepo, jobRepo: jobRepo, now: time.Now}
}

// Create crea una factura manual en estado pending con número generado.
func (uc *InvoiceUseCase) Create(companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == 0 || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	owner, err := uc.customerRepo.GetByID(in.CustomerID, companyID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	inv := &entity.Invoice{
		CompanyID:    companyID,
		CustomerID:   in.CustomerID,
		JobID:        in.JobID,
		Amount:       in.Amount,
		LaborCost:    in.LaborCost,
		MaterialCost: in.MaterialCost,
		TaxAmount:    in.TaxAmount,
		Status:       entity.InvoiceStatusPending,
		DueDate:      in.DueDate,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := createWithFreshNumber(uc.repo, inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv), nil
}

// GetByID obtiene una factura acotada al tenant del caller.
func (uc *InvoiceUseCase) GetByID(companyID string, id int64) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(inv), nil
}

// List lista facturas con filtros opcionales (status exacto, solo vencidas).
func (uc *InvoiceUseCase) List(companyID, status string, onlyOverdue bool) ([]*dto.InvoiceResponse, error) {
	if status != "" && !entity.ValidInvoiceStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCompany(companyID, repository.InvoiceFilter{
		Status:      status,
		OnlyOverdue: onlyOverdue,
		Today:       uc.now(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, uc.toResponse(inv))
	}
	return out, nil
}

// Update aplica una actualización parcial y mantiene el invariante
// paid_date ⇔ status=paid.
func (uc *InvoiceUseCase) Update(companyID string, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	wasPaid := inv.Status == entity.InvoiceStatusPaid
	if in.Status != nil {
		if !entity.ValidInvoiceStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		inv.Status = *in.Status
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		inv.Amount = *in.Amount
	}
	if in.LaborCost != nil {
		inv.LaborCost = in.LaborCost
	}
	if in.MaterialCost != nil {
		inv.MaterialCost = in.MaterialCost
	}
	if in.TaxAmount != nil {
		inv.TaxAmount = in.TaxAmount
	}
	if in.DueDate != nil {
		inv.DueDate = in.DueDate
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}

	now := uc.now()
	switch {
	case !wasPaid && inv.Status == entity.InvoiceStatusPaid:
		inv.PaidDate = &now
	case wasPaid && inv.Status != entity.InvoiceStatusPaid:
		inv.PaidDate = nil
	}
	inv.UpdatedAt = now

	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv), nil
}

// Delete elimina una factura (hard delete).
func (uc *InvoiceUseCase) Delete(companyID string, id int64) error {
	return uc.repo.Delete(id, companyID)
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		CustomerID:    inv.CustomerID,
		JobID:         inv.JobID,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		LaborCost:     inv.LaborCost,
		MaterialCost:  inv.MaterialCost,
		TaxAmount:     inv.TaxAmount,
		Status:        inv.Status,
		Overdue:       inv.IsOverdue(uc.now()),
		DueDate:       inv.DueDate,
		PaidDate:      inv.PaidDate,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
