package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/fieldpro-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only de agregación para el dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de agregación.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetJobDayStats agrega los trabajos con scheduled_date en [from, to):
// total, completados y revenue (SUM de actual_cost de los completados,
// NULL cuenta como cero).
func (r *DashboardRepo) GetJobDayStats(ctx context.Context, companyID string, from, to time.Time) (repository.JobDayStats, error) {
	const query = `
	SELECT
	    COUNT(*)                                                                  AS total,
	    COUNT(*) FILTER (WHERE status = 'completed')                              AS completed,
	    COALESCE(SUM(actual_cost) FILTER (WHERE status = 'completed'), 0)         AS revenue
	FROM jobs
	WHERE company_id = $1
	  AND scheduled_date >= $2
	  AND scheduled_date <  $3`

	var stats repository.JobDayStats
	err := r.pool.QueryRow(ctx, query, companyID, from, to).
		Scan(&stats.Total, &stats.Completed, &stats.Revenue)
	if err != nil {
		return repository.JobDayStats{}, fmt.Errorf("dashboard.GetJobDayStats: %w", err)
	}
	return stats, nil
}

// CountOverdueInvoices cuenta las facturas pendientes vencidas a la
// fecha indicada, con el mismo predicado que los listados.
func (r *DashboardRepo) CountOverdueInvoices(ctx context.Context, companyID string, today time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM invoices WHERE company_id = $1 AND ` + overdueCondition + `$2`
	var count int
	err := r.pool.QueryRow(ctx, query, companyID, overdueCutoff(today)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountOverdueInvoices: %w", err)
	}
	return count, nil
}
