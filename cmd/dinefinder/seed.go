package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dinefinder/internal/config"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	catalogrepo "github.com/kailas-cloud/dinefinder/internal/repository/catalog"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Write a YAML/JSON catalog file into Valkey/Redis",
		Long: `Validates every restaurant in the file and writes it as a hash under
catalog.key_prefix. Existing restaurants with the same id are overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runSeed(ctx, args[0])
		},
	}
}

func runSeed(ctx context.Context, path string) error {
	_, cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.Catalog.UsesStore() {
		return fmt.Errorf("seed needs catalog.source %q or %q, got %q",
			config.SourceValkey, config.SourceRedis, cfg.Catalog.Source)
	}

	entries, err := catalogrepo.NewFileSource(path).Load(ctx)
	if err != nil {
		return err
	}
	// Same duplicate-ID check the server applies at startup.
	if _, err := domcat.NewCatalog(entries); err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	store, err := openStore(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := catalogrepo.NewStoreSource(store, cfg.Catalog.KeyPrefix).Save(ctx, entries); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	logger.Info("Catalog seeded",
		zap.String("file", path),
		zap.Int("entries", len(entries)),
		zap.String("key_prefix", cfg.Catalog.KeyPrefix),
	)
	return nil
}
