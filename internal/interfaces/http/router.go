package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Altas-api/internal/application/alta"
	"github.com/jhoicas/Altas-api/internal/application/auth"
	"github.com/jhoicas/Altas-api/internal/application/catalog"
	"github.com/jhoicas/Altas-api/internal/application/customer"
	"github.com/jhoicas/Altas-api/internal/application/sale"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.UseCase
	CustomerUC        *customer.UseCase
	CatalogResolver   *catalog.Resolver
	WizardUC          *alta.UseCase
	Orchestrator      *alta.Orchestrator
	SaleUC            *sale.UseCase
	JWTSecret         string
	InternalCarrierID int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/search", customerHandler.Search)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)

	// Catálogo comercial (protegido)
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogResolver, deps.InternalCarrierID)
	catalogGroup.Get("/companies", catalogHandler.Companies)
	catalogGroup.Get("/plans", catalogHandler.Plans)
	catalogGroup.Get("/promotions", catalogHandler.Promotions)

	// Asistente de alta (protegido, solo roles de venta)
	wizard := protected.Group("/wizard", RequireRole("admin", "vendedor"))
	wizardHandler := NewWizardHandler(deps.WizardUC, deps.Orchestrator)
	wizard.Post("/", wizardHandler.Open)
	wizard.Get("/:id", wizardHandler.Get)
	wizard.Delete("/:id", wizardHandler.Cancel)
	wizard.Post("/:id/customer", wizardHandler.BindCustomer)
	wizard.Patch("/:id/offer", wizardHandler.UpdateOffer)
	wizard.Post("/:id/advance", wizardHandler.Advance)
	wizard.Post("/:id/back", wizardHandler.Back)
	wizard.Post("/:id/catalog/refresh", wizardHandler.RefreshCatalog)
	wizard.Patch("/:id/logistics", wizardHandler.UpdateLogistics)
	wizard.Post("/:id/verify-sap", wizardHandler.VerifySAP)
	wizard.Post("/:id/submit", wizardHandler.Submit)

	// Ventas registradas (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/pdf", saleHandler.SummaryPDF)
}
