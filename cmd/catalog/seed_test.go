package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"certtrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patternCache struct {
	patterns []string
	err      error
}

func (c *patternCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (c *patternCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }

func (c *patternCache) Delete(context.Context, string) error { return nil }

func (c *patternCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return c.err
}

func (c *patternCache) SetIfNotExists(context.Context, string, string, time.Duration) (bool, error) {
	return false, nil
}

func TestInvalidateSnapshot_DropsCachedCatalog(t *testing.T) {
	c := &patternCache{}

	require.NoError(t, invalidateSnapshot(context.Background(), c, nil))
	assert.Equal(t, []string{usecase.CatalogSnapshotPattern}, c.patterns)
}

func TestInvalidateSnapshot_ReportsCacheError(t *testing.T) {
	c := &patternCache{err: errors.New("connection refused")}

	err := invalidateSnapshot(context.Background(), c, nil)
	assert.ErrorContains(t, err, "connection refused")
}
