package main

import (
	"catalog-service/internal/handler"
	mid "catalog-service/internal/middleware"
	"catalog-service/internal/search"
	"catalog-service/internal/store"
	"catalog-service/pkg/botfile"
	"catalog-service/pkg/cdn"
	"catalog-service/pkg/config"
	"catalog-service/pkg/database"
	"catalog-service/pkg/jwtutil"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting catalog-service", appConfig.LogConfig()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")
	db := database.GetDB()

	// Wire up the catalog search subsystem
	photos := search.NewPhotoResolver(cdn.NewComposer(appConfig.CDN.BaseURL))
	scopes := search.NewScopeResolver(store.NewMembershipStore(db), store.NewTenantStore(db))
	products := store.NewProductStore(db, photos)
	categories := store.NewCategoryStore(db)
	bot := botfile.NewClient(appConfig.Bot.APIBase, appConfig.Bot.Token, log)

	searchHandler := handler.NewSearchHandler(scopes, products)
	categoryHandler := handler.NewCategoryHandler(categories)
	imageHandler := handler.NewImageHandler(store.NewImageStore(db), bot)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Catalog API routes - auth is optional, the scope resolver fails closed
	// for anonymous callers
	catalogAPI := e.Group("/api/catalog", mid.OptionalAuthMiddleware)
	catalogAPI.GET("/search", searchHandler.Search)
	catalogAPI.GET("/categories", categoryHandler.ListCategoryCounts)

	// Bot image proxy, same-origin path handed out by the photo resolver
	e.GET("/products/:id/image", imageHandler.ProductImage)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
