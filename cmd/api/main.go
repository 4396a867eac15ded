package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/Yashuu213/MoneyViewer/internal/config"
	"github.com/Yashuu213/MoneyViewer/internal/database"
	"github.com/Yashuu213/MoneyViewer/internal/handlers"
	"github.com/Yashuu213/MoneyViewer/internal/logger"
	"github.com/Yashuu213/MoneyViewer/internal/middleware"
	"github.com/Yashuu213/MoneyViewer/internal/services"
	"github.com/Yashuu213/MoneyViewer/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validation tags
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	debtService := services.NewDebtService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	debtHandler := handlers.NewDebtHandler(debtService)
	summaryHandler := handlers.NewSummaryHandler(transactionService, debtService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", middleware.OptionalAuthMiddleware(), authHandler.Session)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.List)
	transactions.POST("", transactionHandler.Create)
	transactions.DELETE("/:id", transactionHandler.Delete)

	// Debt routes
	debts := protected.Group("/debts")
	debts.GET("", debtHandler.List)
	debts.POST("", debtHandler.Create)
	debts.DELETE("/:id", debtHandler.Delete)

	// Derived views
	protected.GET("/summary", summaryHandler.Totals)
	protected.GET("/summary/categories", summaryHandler.Categories)
	protected.GET("/summary/monthly", summaryHandler.Monthly)
	protected.GET("/lending", summaryHandler.Lending)

	log.Infof("Starting MoneyViewer API server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
