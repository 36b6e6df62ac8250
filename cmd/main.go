package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xdSharp/Dashly-sub000/internal/config"
	"github.com/xdSharp/Dashly-sub000/internal/handlers"
	"github.com/xdSharp/Dashly-sub000/internal/ingest"
	"github.com/xdSharp/Dashly-sub000/internal/middleware"
	"github.com/xdSharp/Dashly-sub000/internal/repository"
	"github.com/xdSharp/Dashly-sub000/internal/services"
)

// @title Dashly API
// @version 1.0.0
// @description Sales analytics backend for small businesses: CSV/XLSX sales ingestion, dashboards, PDF reports and exports.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.bearer BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis client
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (continuing without Redis)", err)
		redisOpts = &redis.Options{
			Addr: "localhost:6379",
		}
	}
	redisClient := redis.NewClient(redisOpts)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis: %v (caching will be disabled)", err)
		redisClient = nil
	} else {
		log.Println("✓ Redis connected successfully")
	}
	cancel()

	// Structured logger for the ingestion pipeline
	appLogger := logrus.New()
	appLogger.SetFormatter(&logrus.JSONFormatter{})
	appLogger.SetLevel(logrus.InfoLevel)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	categoryRepo := repository.NewCategoryRepository(db, redisClient)
	productRepo := repository.NewProductRepository(db, redisClient)
	saleRepo := repository.NewSaleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, businessRepo, cfg.JWTSecret)
	analyticsService := services.NewAnalyticsService(saleRepo, redisClient)
	reportService := services.NewReportService(saleRepo, businessRepo)
	exportService := services.NewExportService(saleRepo)
	ingestService := ingest.NewService(repository.NewSalesStore(categoryRepo, productRepo, saleRepo), appLogger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	businessHandler := handlers.NewBusinessHandler(businessRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, cfg.DefaultPageSize, cfg.MaxPageSize)
	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, cfg.DefaultPageSize, cfg.MaxPageSize)
	saleHandler := handlers.NewSaleHandler(saleRepo, productRepo, analyticsService, cfg.DefaultPageSize, cfg.MaxPageSize)
	customerHandler := handlers.NewCustomerHandler(customerRepo, cfg.DefaultPageSize, cfg.MaxPageSize)
	importHandler := handlers.NewImportHandler(ingestService, analyticsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Health check endpoints (no auth required)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Public auth endpoints
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/auth/me", authHandler.Me)

		api.GET("/business", businessHandler.GetBusiness)
		api.PUT("/business", businessHandler.UpdateBusiness)

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		sales := api.Group("/sales")
		{
			sales.GET("", saleHandler.GetSales)
			sales.POST("", saleHandler.CreateSale)
			sales.GET("/export", exportHandler.ExportSales)
			sales.GET("/import/template", importHandler.GetImportTemplate)
			sales.POST("/import", importHandler.ImportSales)
			sales.GET("/:id", saleHandler.GetSale)
			sales.DELETE("/:id", saleHandler.DeleteSale)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.GetCustomers)
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/dashboard", analyticsHandler.GetDashboard)
			analytics.GET("/summary", analyticsHandler.GetSummary)
			analytics.GET("/categories", analyticsHandler.GetRevenueByCategory)
			analytics.GET("/monthly", analyticsHandler.GetMonthlyRevenue)
			analytics.GET("/top-products", analyticsHandler.GetTopProducts)
			analytics.GET("/payment-methods", analyticsHandler.GetPaymentMethods)
		}

		api.GET("/reports/sales", reportHandler.GetSalesReport)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Dashly API starting on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down Dashly API...")

	if redisClient != nil {
		redisClient.Close()
	}

	log.Println("Dashly API stopped")
}
