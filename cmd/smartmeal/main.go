package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smartmeal/internal/api"
	"smartmeal/internal/api/handlers"
	"smartmeal/internal/repository"
	"smartmeal/internal/scoring"
	"smartmeal/internal/service"
	"smartmeal/pkg/config"
	"smartmeal/pkg/logger"

	"go.uber.org/zap"
)

// @title SmartMeal API
// @version 1.0
// @description Session-scoped dish rating, dynamic pricing and dish-of-the-day ranking service

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting SmartMeal service")

	// Initialize repositories
	sessions := repository.NewSessionRepository(cfg.Session.TTL, appLogger)
	catalog := repository.NewCatalogRepository(appLogger)

	// Initialize scoring engine
	engine := scoring.NewEngine(&cfg.Scoring)
	appLogger.Info("Scoring engine ready",
		zap.Float64("prior_mean", cfg.Scoring.PriorMean),
		zap.Float64("rating_weight", cfg.Scoring.RatingWeight),
		zap.Float64("price_weight", cfg.Scoring.PriceWeight),
		zap.Float64("calories_weight", cfg.Scoring.CaloriesWeight),
	)

	// Initialize services
	ratingService := service.NewRatingService(catalog, appLogger)
	rankingService := service.NewRankingService(engine, appLogger)
	favoriteService := service.NewFavoriteService(catalog, appLogger)

	similarSource := service.NewGuardedSource(service.NewCatalogSource(catalog), appLogger)
	suggestService := service.NewSuggestService(similarSource, cfg.Suggest.Candidates, appLogger)

	// Initialize handlers
	ratingHandler := handlers.NewRatingHandler(ratingService, appLogger)
	rankingHandler := handlers.NewRankingHandler(rankingService, cfg.Pricing.Currency, appLogger)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, appLogger)
	suggestHandler := handlers.NewSuggestHandler(suggestService, cfg.Pricing.Currency, appLogger)
	sessionHandler := handlers.NewSessionHandler(appLogger)

	// Setup router
	app := api.SetupRouter(
		&cfg.Server,
		sessions,
		ratingHandler,
		rankingHandler,
		favoriteHandler,
		suggestHandler,
		sessionHandler,
		appLogger,
	)

	// Evict idle sessions in the background
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go sessions.StartJanitor(janitorCtx, cfg.Session.CleanupInterval)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	stopJanitor()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
