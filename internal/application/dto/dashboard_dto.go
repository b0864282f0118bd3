package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Cuatro números del día en curso, recalculados en cada llamada.
type DashboardStatsDTO struct {
	// Trabajos con scheduled_date dentro del día local [00:00, 24:00)
	TodaysJobs int `json:"todays_jobs"`
	// Subconjunto de los anteriores con status = completed
	CompletedJobs int `json:"completed_jobs"`
	// SUM(actual_cost) de los completados de hoy (NULL cuenta como 0)
	Revenue decimal.Decimal `json:"revenue"`
	// Facturas pendientes con due_date <= hoy
	OverdueInvoices int `json:"overdue_invoices"`
}
