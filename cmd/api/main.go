package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/bill-automation-api/internal/application/auth"
	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/application/usecase"
	infraexport "github.com/jhoicas/bill-automation-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/bill-automation-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bill-automation-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bill-automation-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/bill-automation-api/internal/interfaces/http"
	"github.com/jhoicas/bill-automation-api/internal/telemetry"
	"github.com/jhoicas/bill-automation-api/pkg/config"
	"github.com/jhoicas/bill-automation-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.Migration.AutoRun {
		if err := postgres.RunMigrations(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	signatures, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de firmas")
	}
	defer signatures.Close()

	metrics := telemetry.NewRegistry(cfg.Metrics.Namespace)

	companyRepo := postgres.NewCompanyRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	counterRepo := postgres.NewBillCounterRepository(pool)
	billRepo := postgres.NewBillRecordRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.DefaultCompanyID)

	// Facturación: numeración + auditoría + PDF en una sola transacción
	generateUC := billing.NewGenerateBillUseCase(
		txRunner, companyRepo, customerRepo,
		infrapdf.NewMarotoPDFGenerator(), signatures,
		metrics.Billing, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.CORSOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition, X-Bill-Number, X-Bill-Record-ID",
	}))
	if cfg.Metrics.Enabled {
		app.Use(httpRouter.Metrics(metrics.HTTP))
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	}
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bill Automation API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUseCase(userRepo),
		CompanyUC:   usecase.NewCompanyUseCase(companyRepo, authUC),
		SignatureUC: usecase.NewSignatureUseCase(companyRepo, signatures, storage.PNGNormalizer{}),
		CustomerUC:  billing.NewCustomerUseCase(customerRepo),
		GenerateUC:  generateUC,
		SequenceUC:  billing.NewSequenceUseCase(counterRepo),
		HistoryUC:   billing.NewHistoryUseCase(billRepo, companyRepo, infraexport.NewExcelExporter()),

		JWTSecret:        cfg.JWT.Secret,
		DefaultCompanyID: cfg.App.DefaultCompanyID,
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
