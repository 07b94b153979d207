package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/pharmacy-api/internal/application/service"
	"github.com/sangkips/pharmacy-api/internal/config"
	"github.com/sangkips/pharmacy-api/internal/infrastructure/database"
	"github.com/sangkips/pharmacy-api/internal/infrastructure/repository"
	"github.com/sangkips/pharmacy-api/internal/presentation/http/handler"
	"github.com/sangkips/pharmacy-api/internal/presentation/http/routes"
	"github.com/sangkips/pharmacy-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the initial admin account
	if err := database.SeedDefaultAdmin(db, cfg.Admin.Email, cfg.Admin.Phone, cfg.Admin.Password); err != nil {
		log.Printf("Warning: Failed to seed default admin: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtManager)
	inventoryService := service.NewInventoryService(medicineRepo)
	customerService := service.NewCustomerService(customerRepo)
	saleService := service.NewSaleService(saleRepo, medicineRepo, customerRepo)
	reportService := service.NewReportService(saleRepo, medicineRepo, customerRepo, reportRepo)
	retentionService := service.NewRetentionService(saleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Medicine: handler.NewMedicineHandler(inventoryService),
		Sale:     handler.NewSaleHandler(saleService),
		Customer: handler.NewCustomerHandler(customerService),
		Report:   handler.NewReportHandler(reportService, retentionService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

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
