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

	"github.com/tu-usuario/gestion-pyme/internal/application/auth"
	appbilling "github.com/tu-usuario/gestion-pyme/internal/application/billing"
	appcompliance "github.com/tu-usuario/gestion-pyme/internal/application/compliance"
	appreceivables "github.com/tu-usuario/gestion-pyme/internal/application/receivables"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	"github.com/tu-usuario/gestion-pyme/internal/domain/taxid"
	infraexport "github.com/tu-usuario/gestion-pyme/internal/infrastructure/export"
	infrapdf "github.com/tu-usuario/gestion-pyme/internal/infrastructure/pdf"
	"github.com/tu-usuario/gestion-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-pyme/internal/interfaces/http"
	"github.com/tu-usuario/gestion-pyme/pkg/config"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
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
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	profileRepo := postgres.NewTaxProfileRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Config del validador de identificadores tributarios para la jurisdicción.
	taxIDConf := taxid.DefaultConfig()
	taxIDConf.Length = cfg.Tax.IdentifierLength
	if cfg.Tax.CheckDigit {
		taxIDConf.CheckDigit = taxid.Mod11CheckDigit
	}
	log.Info().
		Str("jurisdiction", cfg.Tax.Jurisdiction).
		Int("id_length", cfg.Tax.IdentifierLength).
		Bool("check_digit", cfg.Tax.CheckDigit).
		Msg("validador de identificadores configurado")

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	customerUC := appbilling.NewCustomerUseCase(customerRepo, taxIDConf)
	createInvoiceUC := appbilling.NewCreateInvoiceUseCase(txRunner, customerRepo, invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xmlBuilder := infraexport.NewXMLBuilderService()
	documentUC := appbilling.NewDocumentUseCase(invoiceRepo, companyRepo, customerRepo, pdfGenerator, xmlBuilder)

	complianceUC := appcompliance.NewUseCase(customerRepo, profileRepo, taxIDConf)
	receivablesUC := appreceivables.NewUseCase(invoiceRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Gestión PyME API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		CustomerUC:    customerUC,
		CreateInvoice: createInvoiceUC,
		DocumentUC:    documentUC,
		ComplianceUC:  complianceUC,
		ReceivablesUC: receivablesUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
