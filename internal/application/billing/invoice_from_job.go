package billing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fieldpro-api/internal/application/dto"
	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
)

// Días de plazo de pago por defecto al facturar un trabajo.
const defaultPaymentTermDays = 30

// FromJob genera la factura de un trabajo completado.
// El monto sale del costo real del trabajo, con el estimado como
// respaldo; sin ninguno de los dos la factura se emite en cero.
func (uc *InvoiceUseCase) FromJob(companyID string, jobID int64) (*dto.InvoiceResponse, error) {
	job, err := uc.jobRepo.GetByID(jobID, companyID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if job.Status != entity.JobStatusCompleted {
		return nil, domain.ErrJobNotCompleted
	}

	amount := decimal.Zero
	switch {
	case job.ActualCost != nil:
		amount = *job.ActualCost
	case job.EstimatedCost != nil:
		amount = *job.EstimatedCost
	}
	labor := decimal.Zero
	if job.ActualCost != nil {
		labor = *job.ActualCost
	}
	material := decimal.Zero

	now := uc.now()
	due := now.AddDate(0, 0, defaultPaymentTermDays)
	inv := &entity.Invoice{
		CompanyID:    companyID,
		CustomerID:   job.CustomerID,
		JobID:        &job.ID,
		Amount:       amount,
		LaborCost:    &labor,
		MaterialCost: &material,
		Status:       entity.InvoiceStatusPending,
		DueDate:      &due,
		Notes:        "Invoice for " + job.Title,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := createWithFreshNumber(uc.repo, inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv), nil
}
