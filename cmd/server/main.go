package main

import (
	"os"
	"path/filepath"
	"time"

	"emunah-backend/internal/handler"
	"emunah-backend/internal/middleware"
	"emunah-backend/internal/model"
	"emunah-backend/internal/numbering"
	"emunah-backend/pkg/config"
	"emunah-backend/pkg/database"
	"emunah-backend/pkg/logger"
	"emunah-backend/pkg/metrics"
	"emunah-backend/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load("emunah-backend")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting order management backend...", zap.String("environment", cfg.Server.Env))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	httpMetrics := metrics.NewHTTPMetrics(cfg.ServiceName)
	log.Info("Prometheus metrics initialized")

	// Initialize database and run migrations
	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(
		&model.Client{},
		&model.Supplier{},
		&model.Product{},
		&model.Print{},
		&model.Quote{},
		&model.Order{},
		&model.Transaction{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_host", cfg.DB.Host),
		zap.String("db_name", cfg.DB.DBName))

	// Ensure the upload directory exists
	if err := os.MkdirAll(filepath.Join(cfg.Upload.Dir, "prints"), 0o755); err != nil {
		log.Fatal("Failed to create upload directory", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(cfg.Upload.MaxBodyLimit))
	e.Use(middleware.RequestIDMiddleware)
	e.Use(httpMetrics.Middleware())

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			log := logger.FromEcho(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Float64("duration_s", time.Since(start).Seconds()),
				zap.String("ip", c.RealIP()),
			)

			return err
		}
	})

	// Handlers
	numbers := numbering.NewGenerator()
	clientHandler := handler.NewClientHandler(db)
	supplierHandler := handler.NewSupplierHandler(db)
	productHandler := handler.NewProductHandler(db)
	printHandler := handler.NewPrintHandler(db)
	quoteHandler := handler.NewQuoteHandler(db, numbers)
	orderHandler := handler.NewOrderHandler(db, numbers)
	transactionHandler := handler.NewTransactionHandler(db, numbers)
	dashboardHandler := handler.NewDashboardHandler(db)
	uploadHandler := handler.NewUploadHandler(cfg.Upload.Dir)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	// API routes
	api := e.Group("/api")
	api.GET("/health", handler.Health)

	api.GET("/clients", clientHandler.List)
	api.POST("/clients", clientHandler.Create)

	api.GET("/suppliers", supplierHandler.List)
	api.POST("/suppliers", supplierHandler.Create)

	api.GET("/products", productHandler.List)
	api.POST("/products", productHandler.Create)

	api.GET("/prints", printHandler.List)
	api.POST("/prints", printHandler.Create)
	api.POST("/prints/upload", uploadHandler.Upload)

	api.GET("/quotes", quoteHandler.List)
	api.POST("/quotes", quoteHandler.Create)

	api.GET("/orders", orderHandler.List)
	api.POST("/orders", orderHandler.Create)

	api.GET("/transactions", transactionHandler.List)
	api.POST("/transactions", transactionHandler.Create)

	api.GET("/dashboard/stats", dashboardHandler.Stats)

	// Uploaded print images
	e.Static("/uploads", cfg.Upload.Dir)

	// Bundled front end; unknown paths fall back to the entry document
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  cfg.Static.Root,
		Index: "index.html",
		HTML5: true,
	}))

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
