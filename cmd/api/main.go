package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/equitycoffee/equity-coffee-api/internal/application/auth"
	"github.com/equitycoffee/equity-coffee-api/internal/application/usecase"
	infrapdf "github.com/equitycoffee/equity-coffee-api/internal/infrastructure/pdf"
	"github.com/equitycoffee/equity-coffee-api/internal/infrastructure/postgres"
	httpRouter "github.com/equitycoffee/equity-coffee-api/internal/interfaces/http"
	"github.com/equitycoffee/equity-coffee-api/pkg/config"
	"github.com/equitycoffee/equity-coffee-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB, postgres.NewQueryLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)

	resetStore := auth.NewMemoryResetStore()
	authUC := auth.NewAuthUseCase(userRepo, resetStore, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	}, !cfg.App.IsProduction())

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	lotUC := usecase.NewLotUseCase(lotRepo)
	offerUC := usecase.NewOfferUseCase(offerRepo, lotRepo)
	contractUC := usecase.NewContractUseCase(contractRepo, lotRepo, pdfGenerator)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, contractRepo)
	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo, contractRepo)
	marketplaceUC := usecase.NewMarketplaceUseCase(lotRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(compress.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		LotUC:         lotUC,
		OfferUC:       offerUC,
		ContractUC:    contractUC,
		InventoryUC:   inventoryUC,
		ShipmentUC:    shipmentUC,
		MarketplaceUC: marketplaceUC,
		ContactUC:     contactUC,
		JWTSecret:     cfg.JWT.Secret,
		ServiceName:   cfg.App.Name,
		StaticDir:     cfg.App.StaticDir,
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
