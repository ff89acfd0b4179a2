package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pyme/internal/application/auth"
	appbilling "github.com/tu-usuario/gestion-pyme/internal/application/billing"
	appcompliance "github.com/tu-usuario/gestion-pyme/internal/application/compliance"
	appreceivables "github.com/tu-usuario/gestion-pyme/internal/application/receivables"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	CustomerUC    *appbilling.CustomerUseCase
	CreateInvoice *appbilling.CreateInvoiceUseCase
	DocumentUC    *appbilling.DocumentUseCase
	ComplianceUC  *appcompliance.UseCase
	ReceivablesUC *appreceivables.UseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público para el alta inicial del tenant)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers: alta, consulta, perfil tributario y cumplimiento
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ComplianceUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id/tax-profile",
		RequireRole(entity.RoleAdmin, entity.RoleContador),
		customerHandler.UpsertTaxProfile)
	customers.Get("/:id/compliance", customerHandler.Compliance)

	// Invoices: creación, consulta y exportación
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.DocumentUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status",
		RequireRole(entity.RoleAdmin, entity.RoleContador),
		invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Get("/:id/xml", invoiceHandler.XML)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReceivablesUC)
	reports.Get("/receivables-aging", reportHandler.ReceivablesAging)
}
