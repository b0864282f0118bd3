package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fieldpro-api/internal/domain"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
)

func trabajoCompletado(id int64, estimated, actual *decimal.Decimal) entity.Job {
	return entity.Job{
		ID:            id,
		CompanyID:     testCompany,
		CustomerID:    7,
		Title:         "Cambio de compresor",
		Type:          entity.JobTypeRepair,
		Status:        entity.JobStatusCompleted,
		EstimatedCost: estimated,
		ActualCost:    actual,
	}
}

func TestFromJob_UsaCostoReal(t *testing.T) {
	est, act := dec("150"), dec("200")
	jobs := map[int64]entity.Job{1: trabajoCompletado(1, &est, &act)}
	uc := buildInvoiceUC(newFakeInvoiceRepo(), jobs)

	out, err := uc.FromJob(testCompany, 1)
	require.NoError(t, err)

	assert.True(t, out.Amount.Equal(dec("200")), "amount = costo real cuando existe")
	require.NotNil(t, out.LaborCost)
	assert.True(t, out.LaborCost.Equal(dec("200")))
	require.NotNil(t, out.MaterialCost)
	assert.True(t, out.MaterialCost.IsZero())
	assert.Equal(t, entity.InvoiceStatusPending, out.Status)
	assert.Equal(t, "Invoice for Cambio de compresor", out.Notes)
	require.NotNil(t, out.JobID)
	assert.Equal(t, int64(1), *out.JobID)
}

func TestFromJob_FallbackAlEstimado(t *testing.T) {
	est := dec("150")
	jobs := map[int64]entity.Job{1: trabajoCompletado(1, &est, nil)}
	uc := buildInvoiceUC(newFakeInvoiceRepo(), jobs)

	out, err := uc.FromJob(testCompany, 1)
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(dec("150")), "sin costo real se usa el estimado")
	require.NotNil(t, out.LaborCost)
	assert.True(t, out.LaborCost.IsZero(), "labor_cost solo sale del costo real")
}

func TestFromJob_SinCostosFacturaEnCero(t *testing.T) {
	jobs := map[int64]entity.Job{1: trabajoCompletado(1, nil, nil)}
	uc := buildInvoiceUC(newFakeInvoiceRepo(), jobs)

	out, err := uc.FromJob(testCompany, 1)
	require.NoError(t, err)
	assert.True(t, out.Amount.IsZero())
}

func TestFromJob_PlazoDePago30Dias(t *testing.T) {
	jobs := map[int64]entity.Job{1: trabajoCompletado(1, nil, nil)}
	uc := buildInvoiceUC(newFakeInvoiceRepo(), jobs)

	out, err := uc.FromJob(testCompany, 1)
	require.NoError(t, err)
	require.NotNil(t, out.DueDate)
	assert.Equal(t, hoy.AddDate(0, 0, 30), *out.DueDate)
}

func TestFromJob_TrabajoNoCompletado(t *testing.T) {
	job := trabajoCompletado(1, nil, nil)
	job.Status = entity.JobStatusInProgress
	uc := buildInvoiceUC(newFakeInvoiceRepo(), map[int64]entity.Job{1: job})

	_, err := uc.FromJob(testCompany, 1)
	assert.ErrorIs(t, err, domain.ErrJobNotCompleted)
}

func TestFromJob_TrabajoDeOtroTenant(t *testing.T) {
	jobs := map[int64]entity.Job{1: trabajoCompletado(1, nil, nil)}
	uc := buildInvoiceUC(newFakeInvoiceRepo(), jobs)

	_, err := uc.FromJob("otra-empresa", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
