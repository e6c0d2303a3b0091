package app

import (
	"context"
	"errors"
	"log"
	"time"

	"certtrack/internal/config"
	"certtrack/internal/database"
	"certtrack/internal/database/migration"
	dbpostgres "certtrack/internal/database/postgres"
	"certtrack/internal/domain/matching"
	"certtrack/internal/infrastructure/cache"
	"certtrack/internal/repository"
	"certtrack/internal/usecase"
	"certtrack/internal/ws"
	"certtrack/migrations"
)

// Container owns the long-lived dependencies shared by the server and the
// CLI.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Store  *repository.ReferenceStore
	Loader *usecase.CatalogLoader

	Matching *usecase.Matching
	Catalog  *usecase.Catalog
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	thresholds := matching.Thresholds{Now: cfg.Matching.NowThreshold, Next: cfg.Matching.NextThreshold}
	if err := thresholds.Validate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		Store:  repository.NewReferenceStore(db),
	}
	c.Loader = usecase.NewCatalogLoader(c.Store, c.Cache, cfg.Matching.LoadConcurrency, logger)
	c.Matching = usecase.NewMatchingUsecase(c.Loader, matching.NewEngine(thresholds), cfg.Matching.RecommendationLimit)
	c.Catalog = usecase.NewCatalogUsecase(c.Loader, c.Hub, logger)

	return c, nil
}

func (c *Container) Migrate(ctx context.Context) error {
	r := migration.Runner{FS: migrations.FS, Logger: c.Logger}
	return r.Run(ctx, c.DB.SQLDB())
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
