package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/equitycoffee/equity-coffee-api/internal/application/auth"
	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	LotUC         *usecase.LotUseCase
	OfferUC       *usecase.OfferUseCase
	ContractUC    *usecase.ContractUseCase
	InventoryUC   *usecase.InventoryUseCase
	ShipmentUC    *usecase.ShipmentUseCase
	MarketplaceUC *usecase.MarketplaceUseCase
	ContactUC     *usecase.ContactUseCase
	JWTSecret     string
	ServiceName   string
	StaticDir     string
}

// Router registra las rutas de la API y el frontend estático.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": deps.ServiceName,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Auth (registro/login/reset públicos; /me protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Marketplace (público)
	marketplace := api.Group("/marketplace")
	marketplaceHandler := NewMarketplaceHandler(deps.MarketplaceUC)
	marketplace.Get("/lots", marketplaceHandler.ListLots)

	// Contact (creación pública, listado solo admin)
	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contact", contactHandler.Create)
	api.Get("/contact/messages",
		AuthMiddleware(deps.JWTSecret), RequireRole("admin"),
		contactHandler.ListMessages)

	// Farmer (protegido; mutaciones de lote para farmer o admin)
	farmer := api.Group("/farmer", AuthMiddleware(deps.JWTSecret))
	farmerHandler := NewFarmerHandler(deps.LotUC)
	farmer.Get("/", farmerHandler.Ping)
	farmer.Get("/lots", farmerHandler.ListLots)
	farmer.Get("/lots/:id", farmerHandler.GetLot)
	lotWriters := RequireRole("farmer", "admin")
	farmer.Post("/lots", lotWriters, farmerHandler.CreateLot)
	farmer.Put("/lots/:id", lotWriters, farmerHandler.UpdateLot)
	farmer.Delete("/lots/:id", lotWriters, farmerHandler.DeleteLot)
	farmer.Post("/lots/:id/publish", lotWriters, farmerHandler.PublishLot)
	farmer.Post("/lots/:id/unpublish", lotWriters, farmerHandler.UnpublishLot)

	// Trader (lecturas públicas, mutaciones con token)
	trader := api.Group("/trader")
	traderHandler := NewTraderHandler(deps.OfferUC)
	trader.Get("/", traderHandler.Ping)
	trader.Get("/offers", traderHandler.ListOffers)
	trader.Post("/offers", AuthMiddleware(deps.JWTSecret), traderHandler.CreateOffer)

	// Roaster (protegido)
	roaster := api.Group("/roaster", AuthMiddleware(deps.JWTSecret))
	roasterHandler := NewRoasterHandler(deps.ContractUC, deps.InventoryUC)
	roaster.Get("/", roasterHandler.Ping)
	roaster.Get("/contracts", roasterHandler.ListContracts)
	roaster.Post("/contracts", roasterHandler.CreateContract)
	roaster.Put("/contracts/:id", roasterHandler.UpdateContract)
	roaster.Get("/contracts/:id/pdf", roasterHandler.ContractPDF)
	roaster.Get("/inventory", roasterHandler.ListInventory)
	roaster.Post("/inventory", roasterHandler.CreateInventory)
	roaster.Put("/inventory/:id", roasterHandler.UpdateInventory)
	roaster.Delete("/inventory/:id", roasterHandler.DeleteInventory)

	// Logistics (lecturas públicas, mutaciones con token)
	logistics := api.Group("/logistics")
	logisticsHandler := NewLogisticsHandler(deps.ShipmentUC)
	logistics.Get("/", logisticsHandler.Ping)
	logistics.Get("/shipments", logisticsHandler.ListShipments)
	logistics.Post("/shipments", AuthMiddleware(deps.JWTSecret), logisticsHandler.CreateShipment)

	// Educator (protegido, prototipo)
	educator := api.Group("/educator", AuthMiddleware(deps.JWTSecret))
	educatorHandler := NewEducatorHandler()
	educator.Get("/", educatorHandler.Ping)
	educator.Get("/sample-metrics", educatorHandler.SampleMetrics)

	// Frontend estático + fallback SPA: rutas /api desconocidas son 404 JSON,
	// el resto sirve la página de entrada.
	app.Static("/", deps.StaticDir)
	app.Use(func(c *fiber.Ctx) error {
		if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
		}
		return c.SendFile(deps.StaticDir + "/index.html")
	})
}
