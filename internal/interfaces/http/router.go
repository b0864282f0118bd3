package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/fieldpro-api/internal/application/analytics"
	"github.com/tu-usuario/fieldpro-api/internal/application/auth"
	"github.com/tu-usuario/fieldpro-api/internal/application/billing"
	"github.com/tu-usuario/fieldpro-api/internal/application/usecase"
	"github.com/tu-usuario/fieldpro-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	OnboardingUC *auth.OnboardingUseCase
	CustomerUC   *usecase.CustomerUseCase
	EquipmentUC  *usecase.EquipmentUseCase
	JobUC        *usecase.JobUseCase
	InvoiceUC    *billing.InvoiceUseCase
	ExportUC     *billing.ExportUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Roles con permisos de gestión (deletes y mutación de facturas).
	manage := RequireRole(entity.RoleSoloOwner, entity.RoleAdmin, entity.RoleDispatcher)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.OnboardingUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/user", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	// Onboarding: requiere token, pero todavía sin company_id.
	authGroup.Post("/complete-onboarding", AuthMiddleware(deps.JWTSecret), authHandler.CompleteOnboarding)

	// Rutas protegidas (requieren Bearer Token con tenant)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.EquipmentUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", manage, customerHandler.Delete)
	customers.Get("/:id/equipment", customerHandler.Equipment)
	customers.Get("/:id/history", customerHandler.History)

	// Equipment
	equipment := protected.Group("/equipment")
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipment.Post("/", equipmentHandler.Create)
	equipment.Get("/:id", equipmentHandler.GetByID)
	equipment.Put("/:id", equipmentHandler.Update)
	equipment.Delete("/:id", manage, equipmentHandler.Delete)

	// Jobs
	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC, deps.InvoiceUC)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", jobHandler.Update)
	jobs.Delete("/:id", manage, jobHandler.Delete)
	jobs.Post("/:id/invoice", manage, jobHandler.CreateInvoice)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ExportUC)
	invoices.Post("/", manage, invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", manage, invoiceHandler.Update)
	invoices.Delete("/:id", manage, invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/xml", invoiceHandler.DownloadXML)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/todays-jobs", dashboardHandler.TodaysJobs)
}
