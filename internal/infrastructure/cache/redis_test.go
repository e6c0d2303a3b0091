package cache

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"certtrack/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_NilClientBypasses(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, 0))
	require.NoError(t, r.Delete(ctx, "k"))
	require.NoError(t, r.DeleteByPattern(ctx, "k:*"))
	require.NoError(t, r.Close())

	ok, err := r.SetIfNotExists(ctx, "lock", "1", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
}

func TestNewRedis_UnreachableServerBypasses(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	r := NewRedis(config.RedisConfig{Host: "127.0.0.1", Port: "1", TTL: time.Minute}, logger)
	require.NotNil(t, r)
	assert.True(t, r.bypassed())
	assert.Contains(t, buf.String(), "[Cache] Redis unavailable")

	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_WarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	r := NewRedisWithClient(client, time.Minute, logger)
	t.Cleanup(func() { _ = r.Close() })

	ctx := context.Background()
	_, err1 := r.GetJSON(ctx, "a", &struct{}{})
	err2 := r.SetJSON(ctx, "a", 1, 0)
	err3 := r.DeleteByPattern(ctx, "catalog:snapshot:*")
	require.Error(t, err1)
	require.Error(t, err2)
	require.Error(t, err3)

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("[Cache] Redis unavailable")))
}

func TestRedis_Expiry(t *testing.T) {
	r := &Redis{ttl: time.Minute}
	assert.Equal(t, time.Second, r.expiry(time.Second))
	assert.Equal(t, time.Minute, r.expiry(0))

	r = &Redis{}
	assert.Equal(t, defaultTTL, r.expiry(-1))
}
