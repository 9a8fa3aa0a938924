package main

import (
	"errors"
	"log"

	"project/backend/auth"
	"project/backend/config"
	"project/backend/gateway"
	"project/backend/middleware"
	"project/backend/routes"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Pick the persistence adapter: postgres when configured, otherwise the
	// in-memory store (demo mode)
	var store gateway.Store
	db, err := utils.InitDB(cfg)
	switch {
	case err == nil:
		store = gateway.NewGormStore(db)
	case errors.Is(err, gateway.ErrNotConfigured):
		logger.Println("no database configured, running in demo mode")
		store = gateway.NewMemStore()
	default:
		log.Fatalf("Error initializing database: %v", err)
	}

	authSvc := auth.NewService(store, &auth.LogSender{Logger: logger})

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, authSvc, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
