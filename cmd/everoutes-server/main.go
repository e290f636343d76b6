package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/everoutes/eve-routes-go/internal/adapters/cache"
	"github.com/everoutes/eve-routes-go/internal/adapters/esi"
	"github.com/everoutes/eve-routes-go/internal/adapters/rest"
	appcatalog "github.com/everoutes/eve-routes-go/internal/application/catalog"
	"github.com/everoutes/eve-routes-go/internal/application/common"
	"github.com/everoutes/eve-routes-go/internal/application/trading/queries"
	"github.com/everoutes/eve-routes-go/internal/application/trading/services"
	"github.com/everoutes/eve-routes-go/internal/domain/catalog"
	"github.com/everoutes/eve-routes-go/internal/domain/trading"
	"github.com/everoutes/eve-routes-go/internal/infrastructure/config"
	"github.com/everoutes/eve-routes-go/internal/infrastructure/logging"
)

func main() {
	fmt.Println("EVE Routes API Server v1.0.0")
	fmt.Println("============================")

	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig("") // Empty string = search default paths

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Result cache is optional: the server degrades to uncached operation
	// when Redis is unreachable.
	var resultCache *cache.ResultCache
	if cfg.Cache.Enabled {
		fmt.Printf("Connecting to Redis at %s...\n", cfg.Cache.RedisURL)
		resultCache, err = cache.Connect(context.Background(), cfg.Cache.RedisURL, cfg.Cache.TTL, logger)
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", zap.Error(err))
			resultCache = nil
		} else {
			defer func() { _ = resultCache.Close() }()
			fmt.Println("Redis connected")
		}
	} else {
		fmt.Println("Result cache disabled by configuration")
	}

	client := esi.NewClient(esi.Options{
		BaseURL:            cfg.ESI.BaseURL,
		UserAgent:          cfg.ESI.UserAgent,
		Timeout:            cfg.ESI.Timeout,
		MinRequestInterval: cfg.ESI.MinRequestInterval,
		MaxPages:           cfg.ESI.MaxPages,
	}, logger)
	fmt.Println("ESI client initialized")

	resolver := appcatalog.NewResolver(client, catalog.NewNameCache(), logger)
	finder := services.NewOpportunityFinder(client, resolver, trading.NewAnalyzer(), logger)

	med := common.NewMediator(logger)
	findHandler := queries.NewFindTradeOpportunitiesHandler(
		finder,
		cfg.Trading.DefaultMaxCargo,
		cfg.Trading.DefaultMinProfit,
		cfg.Trading.ResultLimit,
	)
	if err := common.RegisterHandler[*queries.FindTradeOpportunitiesQuery](med, findHandler); err != nil {
		return fmt.Errorf("failed to register FindTradeOpportunities handler: %w", err)
	}
	fmt.Println("Query handlers registered")

	server := rest.NewServer(cfg.Server, cfg.Trading, med, resultCache, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	fmt.Println("Server stopped")
	return nil
}
