package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dinefinder/internal/config"
	"github.com/kailas-cloud/dinefinder/internal/db"
	dbRedis "github.com/kailas-cloud/dinefinder/internal/db/redis"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/geo"
	logpkg "github.com/kailas-cloud/dinefinder/internal/logger"
	catalogrepo "github.com/kailas-cloud/dinefinder/internal/repository/catalog"
	"github.com/kailas-cloud/dinefinder/internal/usecase/resolver"
)

// bootstrap loads configuration based on ENV and builds the logger.
func bootstrap() (string, config.Config, *zap.Logger, error) {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return "", config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return "", config.Config{}, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return env, cfg, logger, nil
}

// openStore connects to Valkey/Redis and waits until it answers PING.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.Store, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("create database store: %w", err)
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("driver", cfg.Catalog.Source),
		zap.Strings("addrs", cfg.Database.Addrs),
	)
	return store, nil
}

// loadCatalog reads every entry from the configured source.
func loadCatalog(ctx context.Context, cfg *config.Config, store db.Store) ([]domcat.Entry, error) {
	if cfg.Catalog.UsesStore() {
		return catalogrepo.NewStoreSource(store, cfg.Catalog.KeyPrefix).Load(ctx)
	}
	return catalogrepo.NewFileSource(cfg.Catalog.Path).Load(ctx)
}

// resolverConfig overlays the configured location table on the built-in one.
func resolverConfig(lc config.LocationConfig) resolver.Config {
	rc := resolver.DefaultConfig()
	if lc.Default != nil {
		rc.Default = toPlace(*lc.Default)
	}
	if len(lc.Places) > 0 {
		rc.Places = make([]resolver.Place, len(lc.Places))
		for i, p := range lc.Places {
			rc.Places[i] = toPlace(p)
		}
	}
	return rc
}

func toPlace(p config.PlaceConfig) resolver.Place {
	label := p.Label
	if label == "" {
		label = p.Name
	}
	return resolver.Place{
		Name:       p.Name,
		Label:      label,
		Coordinate: geo.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude},
	}
}
