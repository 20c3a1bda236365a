package main

import (
	"log"
	"strings"
	"time"

	"depo-backend/internal/auth"
	"depo-backend/internal/config"
	"depo-backend/internal/database"
	"depo-backend/internal/inventory"
	"depo-backend/internal/notify"
	"depo-backend/internal/purchase"
	"depo-backend/internal/response"
	"depo-backend/internal/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := database.SeedIfEmpty(db); err != nil {
		log.Printf("[WARN] Başlangıç verisi yüklenemedi: %v", err)
	}

	notifier := notify.NewClient(cfg.HubURL, cfg.APIKey)
	purchaseService := purchase.NewService(db, notifier)

	app := fiber.New(fiber.Config{
		ErrorHandler: response.NewErrorHandler(cfg.AppEnv == "development"),
	})

	app.Use(logger.New())

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-api-key",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Liveness (auth yok)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		})
	})

	api := app.Group("/api")

	// Webhook: x-api-key yerine gövdedeki vendor adıyla doğrulanır
	api.Post("/webhook/receive-stock", webhook.ReceiveStockHandler(db, cfg))

	// Diğer tüm /api rotaları paylaşılan anahtarla korunur
	protected := api.Group("")
	protected.Use(auth.APIKeyMiddleware(cfg))

	protected.Get("/products", inventory.ListProductsHandler(db))
	protected.Get("/stocks", inventory.ListStocksHandler(db))

	protected.Get("/purchase/request", purchase.ListHandler(purchaseService))
	protected.Get("/purchase/request/:id", purchase.GetHandler(purchaseService))
	protected.Post("/purchase/request", purchase.CreateHandler(purchaseService))
	protected.Put("/purchase/request/:id", purchase.UpdateHandler(purchaseService))
	protected.Delete("/purchase/request/:id", purchase.DeleteHandler(purchaseService))

	// 404
	app.Use(func(c *fiber.Ctx) error {
		return response.NotFound("Route")
	})

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
