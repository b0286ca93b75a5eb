package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/quickbill/orderview-api/internal/application/service"
	"github.com/quickbill/orderview-api/internal/config"
	"github.com/quickbill/orderview-api/internal/infrastructure/database"
	"github.com/quickbill/orderview-api/internal/infrastructure/repository"
	"github.com/quickbill/orderview-api/internal/presentation/http/handler"
	"github.com/quickbill/orderview-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize repositories
	billRepo := repository.NewBillRepository(db)
	billItemRepo := repository.NewBillItemRepository(db)
	profileRepo := repository.NewShopProfileRepository(db)

	// Initialize services
	orderViewService := service.NewOrderViewService(billRepo, billItemRepo, profileRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		OrderView: handler.NewOrderViewHandler(orderViewService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
