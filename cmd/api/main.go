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

	"github.com/passoapasso/cantina-api/internal/application/auth"
	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
	"github.com/passoapasso/cantina-api/internal/application/report"
	"github.com/passoapasso/cantina-api/internal/application/sale"
	infrapdf "github.com/passoapasso/cantina-api/internal/infrastructure/pdf"
	"github.com/passoapasso/cantina-api/internal/infrastructure/postgres"
	"github.com/passoapasso/cantina-api/internal/infrastructure/storage"
	httpRouter "github.com/passoapasso/cantina-api/internal/interfaces/http"
	"github.com/passoapasso/cantina-api/pkg/config"
	"github.com/passoapasso/cantina-api/pkg/logger"
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

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	supplyRepo := postgres.NewSupplyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := appledger.NewCustomerUseCase(txRunner, customerRepo)
	productUC := appledger.NewProductUseCase(txRunner, productRepo)
	staffUC := appledger.NewStaffUseCase(txRunner, staffRepo)
	supplyUC := appledger.NewSupplyUseCase(txRunner, supplyRepo)
	saleUC := sale.NewSaleUseCase(txRunner)

	// PDF: exportación del resumen mensual del dashboard
	pdfGenerator := infrapdf.NewMarotoSummaryGenerator()
	summaryUC := report.NewSummaryUseCase(customerRepo, productRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Fotos en bucket S3-compatible, opcional: solo con credenciales presentes.
	var photos appledger.PhotoStorage
	if cfg.Storage.AccessKey != "" && cfg.Storage.SecretKey != "" {
		s3Photos, err := storage.NewS3PhotoStorage(cfg.Storage, log)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento de fotos")
		}
		photos = s3Photos
	} else {
		log.Warn().Msg("almacenamiento de fotos deshabilitado: faltan credenciales STORAGE_*")
	}

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
		Title:    "Cantina API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:      customerUC,
		ProductUC:       productUC,
		StaffUC:         staffUC,
		SupplyUC:        supplyUC,
		SaleUC:          saleUC,
		SummaryUC:       summaryUC,
		AuthUC:          authUC,
		Photos:          photos,
		JWTSecret:       cfg.JWT.Secret,
		DashboardSecret: cfg.Dashboard.Secret,
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
