package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/blinds-quote-api/config"
	"github.com/kendall-kelly/blinds-quote-api/controllers"
	"github.com/kendall-kelly/blinds-quote-api/middleware"
	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	logger.Info("Starting Blinds Quote API server...", "env", cfg.GoEnv)

	// Connect to database
	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database models
	if err := models.AutoMigrate(config.GetDB()); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}
	logger.Info("Database migration completed successfully")

	if cfg.PDFArchiveEnabled {
		if _, err := services.InitDocumentArchive(context.Background(), cfg); err != nil {
			logger.Error("Failed to initialize document archive", "error", err)
			os.Exit(1)
		}
		logger.Info("Quote documents will be archived", "bucket", cfg.AWSS3Bucket)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(cfg, logger)

	// Start server
	addr := ":" + cfg.Port
	logger.Info("Server is running", "addr", "http://localhost"+addr)
	if err := router.Run(addr); err != nil {
		logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// setupRouter registers every route under /api
func setupRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS(cfg.CORSAllowedOrigins))

	api := router.Group("/api")
	{
		api.GET("/", banner)
		api.GET("/health", healthCheck)
		api.GET("/database/status", databaseStatus)

		api.GET("/config", controllers.GetBusinessConfig)
		api.PUT("/config", controllers.UpdateBusinessConfig)
		api.GET("/config/logo", controllers.GetLogo)
		api.POST("/config/logo", controllers.UploadLogo)

		api.GET("/products", controllers.ListProducts)
		api.POST("/products", controllers.CreateProduct)
		api.POST("/products/seed", controllers.SeedProducts)
		api.GET("/products/:id", controllers.GetProduct)
		api.PUT("/products/:id", controllers.UpdateProduct)
		api.DELETE("/products/:id", controllers.DeleteProduct)

		api.GET("/quotes", controllers.ListQuotes)
		api.POST("/quotes", controllers.CreateQuote)
		api.GET("/quotes/:id", controllers.GetQuote)
		api.DELETE("/quotes/:id", controllers.DeleteQuote)
		api.GET("/quotes/:id/pdf", controllers.GetQuotePDF)
		api.GET("/quotes/:id/pdf/both", controllers.GetQuotePDFBoth)
	}

	return router
}

// banner handles GET /api/
func banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API de Cotización de Persianas Enrollables",
	})
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blinds Quote API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	tables, err := db.WithContext(c.Request.Context()).Migrator().GetTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
