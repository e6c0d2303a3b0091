package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/matching"
	"certtrack/internal/domain/skill"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const catalogLockTTL = 30 * time.Second

// CatalogSource yields the current reference catalog.
type CatalogSource interface {
	Load(ctx context.Context) (matching.Catalog, error)
}

// CatalogLoader assembles a catalog snapshot from ReferenceData and keeps
// it in the cache between requests.
type CatalogLoader struct {
	data        ReferenceData
	cache       CatalogCache
	concurrency int
	logger      *log.Logger
}

func NewCatalogLoader(data ReferenceData, cache CatalogCache, concurrency int, logger *log.Logger) *CatalogLoader {
	if concurrency < 1 {
		concurrency = 1
	}
	return &CatalogLoader{data: data, cache: cache, concurrency: concurrency, logger: logger}
}

func (l *CatalogLoader) Load(ctx context.Context) (matching.Catalog, error) {
	if l.cache != nil {
		var cached matching.Catalog
		hit, err := l.cache.GetJSON(ctx, CatalogSnapshotKey, &cached)
		if err == nil && hit {
			l.logf("[Catalog] Cache HIT: %s", CatalogSnapshotKey)
			return cached, nil
		}
		l.logf("[Catalog] Cache MISS: %s", CatalogSnapshotKey)
	}

	cat, err := l.fetch(ctx)
	if err != nil {
		l.logf("[Catalog] load failed: %v", err)
		return matching.Catalog{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	l.store(ctx, cat)
	return cat, nil
}

// Invalidate drops every cached snapshot so the next Load reads through.
func (l *CatalogLoader) Invalidate(ctx context.Context) error {
	if l.cache == nil {
		return nil
	}
	if err := l.cache.DeleteByPattern(ctx, CatalogSnapshotPattern); err != nil {
		l.logf("[Catalog] invalidate failed: %v", err)
		return err
	}
	return nil
}

// Reload rebuilds the snapshot from the source, replacing whatever the
// cache held.
func (l *CatalogLoader) Reload(ctx context.Context) (matching.Catalog, error) {
	_ = l.Invalidate(ctx)

	cat, err := l.fetch(ctx)
	if err != nil {
		l.logf("[Catalog] reload failed: %v", err)
		return matching.Catalog{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	l.store(ctx, cat)
	return cat, nil
}

func (l *CatalogLoader) fetch(ctx context.Context) (matching.Catalog, error) {
	var (
		skills []skill.Skill
		jobs   []job.Job
		creds  []credential.Credential
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		skills, err = l.data.GetSkills(gctx)
		if err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		jobs, err = l.data.GetJobs(gctx)
		if err != nil {
			return fmt.Errorf("jobs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		creds, err = l.data.GetCredentials(gctx)
		if err != nil {
			return fmt.Errorf("credentials: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return matching.Catalog{}, err
	}

	cat := matching.Catalog{
		Skills:      skills,
		Jobs:        make([]matching.CatalogJob, len(jobs)),
		Credentials: make([]matching.CatalogCredential, len(creds)),
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			reqs, err := l.data.GetJobSkillRequirements(gctx, j.ID)
			if err != nil {
				return fmt.Errorf("requirements of job %s: %w", j.ID, err)
			}
			cat.Jobs[i] = matching.CatalogJob{Job: j, Requirements: reqs}
			return nil
		})
	}
	for i, c := range creds {
		g.Go(func() error {
			links, err := l.data.GetCredentialSkillLinks(gctx, c.ID)
			if err != nil {
				return fmt.Errorf("links of credential %s: %w", c.ID, err)
			}
			cat.Credentials[i] = matching.CatalogCredential{Credential: c, Links: links}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return matching.Catalog{}, err
	}
	return cat, nil
}

// store writes the snapshot when this instance wins the lock. Cache
// failures are logged and otherwise ignored.
func (l *CatalogLoader) store(ctx context.Context, cat matching.Catalog) {
	if l.cache == nil {
		return
	}

	ok, err := l.cache.SetIfNotExists(ctx, CatalogLockKey, uuid.NewString(), catalogLockTTL)
	if err != nil || !ok {
		return
	}
	l.logf("[Catalog] Lock acquired: %s", CatalogLockKey)
	defer func() {
		_ = l.cache.Delete(ctx, CatalogLockKey)
	}()

	if err := l.cache.SetJSON(ctx, CatalogSnapshotKey, cat, 0); err != nil {
		l.logf("[Catalog] Cache write failed: %v", err)
	}
}

func (l *CatalogLoader) logf(format string, args ...any) {
	if l.logger != nil {
		l.logger.Printf(format, args...)
	}
}
