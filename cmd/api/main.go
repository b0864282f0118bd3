package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/tu-usuario/fieldpro-api/internal/application/analytics"
	"github.com/tu-usuario/fieldpro-api/internal/application/auth"
	"github.com/tu-usuario/fieldpro-api/internal/application/billing"
	"github.com/tu-usuario/fieldpro-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/fieldpro-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/fieldpro-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/fieldpro-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/tu-usuario/fieldpro-api/internal/interfaces/http"
	"github.com/tu-usuario/fieldpro-api/pkg/config"
	"github.com/tu-usuario/fieldpro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	historyRepo := postgres.NewServiceHistoryRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	onboardingUC := auth.NewOnboardingUseCase(userRepo, txRunner, authUC)
	customerUC := usecase.NewCustomerUseCase(customerRepo, historyRepo)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, customerRepo)
	jobUC := usecase.NewJobUseCase(jobRepo, customerRepo, txRunner)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, customerRepo, jobRepo)
	exportUC := billing.NewExportUseCase(
		invoiceRepo, customerRepo, companyRepo,
		infrapdf.NewMarotoPDFGenerator(), xmlexport.NewEtreeXMLBuilder(),
	)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, jobRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FieldPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		OnboardingUC: onboardingUC,
		CustomerUC:   customerUC,
		EquipmentUC:  equipmentUC,
		JobUC:        jobUC,
		InvoiceUC:    invoiceUC,
		ExportUC:     exportUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
