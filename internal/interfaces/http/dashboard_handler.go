package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/fieldpro-api/internal/application/analytics"
	"github.com/tu-usuario/fieldpro-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve las métricas operativas del día en curso.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (todays_jobs, completed_jobs, revenue,
// overdue_invoices). No requiere parámetros; la ventana del día se
// calcula en el servidor.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	stats, err := h.uc.GetStats(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(stats)
}

// TodaysJobs devuelve la agenda del día ordenada ascendente.
// GET /api/dashboard/todays-jobs
func (h *DashboardHandler) TodaysJobs(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	jobs, err := h.uc.TodaysJobs(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(jobs)
}
