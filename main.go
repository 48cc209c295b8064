package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "") // Postgres DSN; empty means embedded SQLite
	viper.SetDefault("SQLITE_PATH", "storefront.db")
	viper.SetDefault("API_SECRET_KEY", "dev-secret-key")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.SetDefault("SEED_PRODUCTS", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.WishlistItem{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set; catalog events disabled")
	}

	// Publishing is best effort; nil keeps the service quiet.
	var events services.EventPublisher
	if mqClient != nil {
		events = mqClient
	}

	app := NewApp(db, events, viper.GetString("API_SECRET_KEY"))

	// --- Seed demo catalog ---
	if viper.GetBool("SEED_PRODUCTS") {
		seedProducts(repositories.NewGORMProductRepository(db))
	}

	// --- Catalog event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Received catalog event %s: %s", msg.RoutingKey, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeCatalogEvents(handler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// NewApp wires repositories, services, handlers, and routes into a Fiber app.
// events may be nil to disable catalog event publishing.
func NewApp(db *gorm.DB, events services.EventPublisher, apiSecret string) *fiber.App {
	// Repositories
	productRepo := repositories.NewGORMProductRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)

	// Services
	catalogService := services.NewCatalogService(productRepo, events)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo)

	// Handlers
	productHandler := handlers.NewProductHandler(catalogService)
	dashboardHandler := handlers.NewDashboardHandler(catalogService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	app := fiber.New()
	app.Use(logger.New())

	requireAuth := middleware.APIKeyRequired(apiSecret)

	apiV1 := app.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1, requireAuth)
	dashboardHandler.RegisterRoutes(apiV1)
	wishlistHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// openDatabase opens Postgres when DATABASE_DSN is configured and falls back
// to a local SQLite file otherwise. TranslateError is required so slug
// collisions surface as gorm.ErrDuplicatedKey.
func openDatabase() (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	return gorm.Open(sqlite.Open(viper.GetString("SQLITE_PATH")), cfg)
}

// seedProducts populates the catalog with the demo storefront inventory.
// Slugs that already exist are left untouched.
func seedProducts(repo repositories.ProductRepository) {
	products := []models.Product{
		{Name: "Wireless Headphones", Slug: "wireless-headphones", Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life.", Price: 199.99, Category: "Electronics", Inventory: 45},
		{Name: "USB-C Cable", Slug: "usb-c-cable", Description: "Durable USB-C charging cable compatible with most devices.", Price: 12.99, Category: "Accessories", Inventory: 150},
		{Name: "Portable SSD 1TB", Slug: "portable-ssd-1tb", Description: "Fast portable solid-state drive with 1TB storage capacity.", Price: 129.99, Category: "Storage", Inventory: 30},
		{Name: "Mechanical Keyboard", Slug: "mechanical-keyboard", Description: "RGB mechanical keyboard with cherry mx switches for gaming and typing.", Price: 149.99, Category: "Peripherals", Inventory: 25},
		{Name: "Wireless Mouse", Slug: "wireless-mouse", Description: "Ergonomic wireless mouse with precision tracking.", Price: 34.99, Category: "Peripherals", Inventory: 5},
		{Name: "4K Webcam", Slug: "4k-webcam", Description: "4K resolution webcam perfect for streaming and video calls.", Price: 89.99, Category: "Electronics", Inventory: 15},
		{Name: "Monitor Arm Stand", Slug: "monitor-arm-stand", Description: "Adjustable monitor arm stand for improved workspace ergonomics.", Price: 59.99, Category: "Accessories", Inventory: 40},
		{Name: "Laptop Stand", Slug: "laptop-stand", Description: "Aluminum laptop stand for better ventilation and viewing angle.", Price: 44.99, Category: "Accessories", Inventory: 2},
		{Name: "Power Bank 20000mAh", Slug: "power-bank-20000mah", Description: "High-capacity power bank with fast charging support.", Price: 39.99, Category: "Electronics", Inventory: 60},
		{Name: "HDMI 2.1 Cable", Slug: "hdmi-21-cable", Description: "High-speed HDMI 2.1 cable for 4K@120Hz and 8K@60Hz video.", Price: 19.99, Category: "Cables", Inventory: 100},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			if errors.Is(err, repositories.ErrSlugTaken) {
				continue
			}
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
		}
	}
}
