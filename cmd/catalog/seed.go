package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"certtrack/internal/catalog"
	"certtrack/internal/config"
	dbpostgres "certtrack/internal/database/postgres"
	"certtrack/internal/database/seeder"
	"certtrack/internal/infrastructure/cache"
	"certtrack/internal/usecase"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert a catalog document into the database",
	Long:  "Validates a YAML catalog document, upserts its skills, jobs with requirements and credentials with skill links in one transaction, then drops the cached catalog snapshot.",
	RunE:  runSeed,
}

var seedFile string

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to the catalog YAML document (required)")
	if err := seedCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	doc, err := catalog.LoadFile(seedFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	r := seeder.Runner{
		Seeders: seeder.Defaults(doc),
		Logger:  logger,
	}
	if err := r.Run(ctx, db); err != nil {
		return err
	}

	rc := cache.NewRedis(cfg.Redis, logger)
	defer func() { _ = rc.Close() }()
	if err := invalidateSnapshot(ctx, rc, logger); err != nil {
		logger.Printf("[Seeder] cached catalog not invalidated, servers pick up changes after %s: %v", cfg.Redis.TTL, err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded skills=%d jobs=%d credentials=%d\n",
		len(doc.Skills), len(doc.Jobs), len(doc.Credentials))
	return err
}

// invalidateSnapshot makes running servers read the freshly seeded tables on
// their next request.
func invalidateSnapshot(ctx context.Context, c usecase.CatalogCache, logger *log.Logger) error {
	return usecase.NewCatalogLoader(nil, c, 1, logger).Invalidate(ctx)
}
