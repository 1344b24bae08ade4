package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Altas-api/internal/application/alta"
	"github.com/jhoicas/Altas-api/internal/application/auth"
	"github.com/jhoicas/Altas-api/internal/application/catalog"
	"github.com/jhoicas/Altas-api/internal/application/customer"
	"github.com/jhoicas/Altas-api/internal/application/sale"
	"github.com/jhoicas/Altas-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Altas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Altas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Altas-api/internal/infrastructure/rediscache"
	"github.com/jhoicas/Altas-api/internal/infrastructure/sap"
	httpRouter "github.com/jhoicas/Altas-api/internal/interfaces/http"
	"github.com/jhoicas/Altas-api/pkg/config"
	"github.com/jhoicas/Altas-api/pkg/logger"
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

	redisClient, err := rediscache.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	promoRepo := postgres.NewPromotionRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	validate := validator.New()

	catalogCache := rediscache.NewCatalogCache(redisClient, log)
	resolver := catalog.NewResolver(
		companyRepo, planRepo, promoRepo,
		catalogCache, cfg.Wizard.CompanyTTL, cfg.Wizard.CatalogTTL, log,
	)

	sessionStore := memory.NewSessionStore(cfg.Wizard.SessionTTL)
	defer sessionStore.Close()

	sapClient := sap.NewClient(cfg.SAP, log)

	wizardUC := alta.NewUseCase(
		sessionStore, resolver, customerRepo, sapClient,
		cfg.Wizard.InternalCarrierID, validate, log,
	)

	saleListingCache := rediscache.NewSaleListingCache(redisClient, log)
	orchestrator := alta.NewOrchestrator(
		sessionStore, resolver, sapClient, txRunner, saleListingCache, log,
	)

	pdfGenerator := infrapdf.NewSaleSummaryGenerator()
	saleUC := sale.NewUseCase(
		saleRepo, customerRepo, planRepo, promoRepo, companyRepo,
		saleListingCache, pdfGenerator, cfg.Redis.SaleListTTL, log,
	)

	customerUC := customer.NewUseCase(customerRepo, validate)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, validate)

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
		Title:    "Altas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		CustomerUC:        customerUC,
		CatalogResolver:   resolver,
		WizardUC:          wizardUC,
		Orchestrator:      orchestrator,
		SaleUC:            saleUC,
		JWTSecret:         cfg.JWT.Secret,
		InternalCarrierID: cfg.Wizard.InternalCarrierID,
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
