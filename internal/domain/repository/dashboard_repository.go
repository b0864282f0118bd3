package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// JobDayStats agregados de trabajos para una ventana de día.
type JobDayStats struct {
	Total     int             // trabajos con scheduled_date en la ventana
	Completed int             // subconjunto con status = completed
	Revenue   decimal.Decimal // SUM(actual_cost) del subconjunto completado (NULL = 0)
}

// DashboardRepository consultas read-only de agregación para el dashboard.
// Función pura del estado almacenado y la fecha: sin caché ni memoización.
type DashboardRepository interface {
	// GetJobDayStats agrega sobre los trabajos con scheduled_date en [from, to).
	GetJobDayStats(ctx context.Context, companyID string, from, to time.Time) (JobDayStats, error)
	// CountOverdueInvoices cuenta facturas pendientes vencidas a la fecha indicada.
	CountOverdueInvoices(ctx context.Context, companyID string, today time.Time) (int, error)
}
