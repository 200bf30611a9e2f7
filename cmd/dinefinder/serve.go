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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dinefinder/internal/db"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/metrics"
	chiTransport "github.com/kailas-cloud/dinefinder/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/dinefinder/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/dinefinder/internal/usecase/health"
	"github.com/kailas-cloud/dinefinder/internal/usecase/resolver"
	searchuc "github.com/kailas-cloud/dinefinder/internal/usecase/search"
	"github.com/kailas-cloud/dinefinder/internal/version"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	env, cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dinefinder API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	// Register metrics explicitly (no init())
	metrics.Register()

	// The store is only needed when the catalog lives in Valkey/Redis.
	var pinger healthuc.DBPinger
	var store db.Store
	if cfg.Catalog.UsesStore() {
		store, err = openStore(ctx, &cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()
		pinger = store
	}

	entries, err := loadCatalog(ctx, &cfg, store)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	cat, err := domcat.NewCatalog(entries)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	metrics.CatalogEntries.Set(float64(cat.Len()))
	logger.Info("Catalog loaded", zap.Int("entries", cat.Len()), zap.Strings("cuisines", cat.Cuisines()))
	if cat.Len() == 0 {
		logger.Warn("Catalog is empty, every search will return no restaurants")
	}

	res, err := resolver.New(resolverConfig(cfg.Location))
	if err != nil {
		return fmt.Errorf("build resolver: %w", err)
	}

	// Use case services
	searchSvc := searchuc.New(res, cat)
	catalogSvc := cataloguc.New(cat)
	healthSvc := healthuc.New(cat, pinger)

	server := chiTransport.NewServer(searchSvc, catalogSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, chiTransport.RouterOptions{
		Logger:  logger,
		APIKeys: cfg.Auth.APIKeys,
		Limiter: chiTransport.NewLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst),
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}
