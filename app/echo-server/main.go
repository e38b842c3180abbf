package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pricepilot/app/echo-server/router"
	"pricepilot/business/offers"
	"pricepilot/business/pricing"
	"pricepilot/internal/fetcher"
	"pricepilot/internal/middleware"
	psqlRepo "pricepilot/internal/repository/postgres"
	redisRepo "pricepilot/internal/repository/redis"
	"pricepilot/internal/rest"
	"pricepilot/pkg/config"
	"pricepilot/pkg/database"
	redisdb "pricepilot/pkg/database/redis"
	"pricepilot/pkg/logger"
	"pricepilot/pkg/metrics"
	"pricepilot/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting PricePilot", "version", cfg.App.Version)

	utils.Init(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init repo
	offerRepo := psqlRepo.NewOfferRepository(db)
	decisionRepo := psqlRepo.NewDecisionRepository(db)
	pricingCfgRepo := psqlRepo.NewPricingConfigRepository(db)

	// Decision cache is optional: run without it when Redis is down.
	var cache pricing.DecisionCache
	if redisClient, err := redisdb.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, running without decision cache", "error", err)
	} else {
		cache = redisRepo.NewDecisionCache(redisClient)
		defer redisdb.CloseRedisClient(redisClient)
	}

	defaultCfg := pricing.DefaultConfig()
	if cfg.Pricing.LegitThreshold > 0 {
		defaultCfg.LegitThreshold = cfg.Pricing.LegitThreshold
	}
	if cfg.Pricing.TopNForEnvelope > 0 {
		defaultCfg.TopNForEnvelope = cfg.Pricing.TopNForEnvelope
	}

	// Init service
	pricingService := pricing.NewPricingService(
		offerRepo,
		decisionRepo,
		cache,
		pricing.HeuristicDeliveryChecker{},
		pricingCfgRepo,
		fetcher.Registry(cfg.Pricing.SampleOffersCSV),
		defaultCfg,
	)
	offersService := offers.NewOffersService(offerRepo)

	// Init handler
	pricingHandler := rest.NewPricingHandler(pricingService)
	offersHandler := rest.NewOffersHandler(offersService)
	adminHandler := rest.NewPricingAdminHandler(pricingCfgRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupPricingRoutes(api, pricingHandler)
	router.SetupOffersRoutes(api, offersHandler)
	router.SetPricingAdminRoutes(api, adminHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
