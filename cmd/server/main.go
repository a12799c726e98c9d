package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/api"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/brapi"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/classifier"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/config"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/logging"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/resolver"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/scheduler"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/service"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/statement"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/version"
	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	logger.Info().
		Str("version", version.Version).
		Int("limit", cfg.Screener.Limit).
		Str("fetch_delay", cfg.Screener.FetchDelay.String()).
		Str("schedule", cfg.Screener.Schedule).
		Msg("Starting BDR fundamentals screener")

	// Create providers
	listings := brapi.NewClient(cfg.Providers.ListURL, cfg.Providers.HTTPTimeout, cfg.Providers.UserAgent)
	finance := yahoo.NewFinanceClient(yahoo.Options{
		TimeseriesURL: cfg.Providers.YahooQueryURL,
		SummaryURL:    cfg.Providers.YahooSummary,
		Timeout:       cfg.Providers.HTTPTimeout,
		UserAgent:     cfg.Providers.UserAgent,
	})
	provider := service.NewRateLimitedProvider(finance, cfg.Screener.FetchDelay)

	// Create services
	res := resolver.NewDefault()
	pipeline := service.NewPipeline(
		res,
		statement.NewNormalizer(statement.DefaultAliases, cfg.Screener.Periods),
		classifier.NewDefault(),
		logger,
	)
	screener := service.NewScreenerService(listings, provider, res, pipeline, cfg.Screener.Limit, logger)
	systemService := service.NewSystemService(screener, cfg.Screener.Schedule != "")

	sched := scheduler.New(screener, logger)
	if err := sched.Start(cfg.Screener.Schedule, cfg.Screener.RunOnStart); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	// Create router
	router := api.NewRouter(systemService, screener, cfg, logger)

	// Create HTTP server. A waiting refresh analyzes every receipt before it
	// responds, so the write timeout covers a full run.
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sched.Stop(ctx); err != nil {
		logger.Warn().Err(err).Msg("Scheduler did not stop cleanly")
	}
	screener.Close()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	logger.Info().Msg("Server exited")
}
