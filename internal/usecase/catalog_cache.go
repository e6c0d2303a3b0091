package usecase

import (
	"context"
	"time"
)

const (
	CatalogSnapshotKey = "catalog:snapshot:v1"
	CatalogLockKey     = "catalog:lock:v1"

	// CatalogSnapshotPattern matches the current snapshot and any left over
	// from earlier schema versions.
	CatalogSnapshotPattern = "catalog:snapshot:*"
)

type CatalogCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
