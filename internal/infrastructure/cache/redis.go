package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"certtrack/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL     = 600 * time.Second
	defaultLockTTL = 30 * time.Second
	pingTimeout    = 2 * time.Second
	scanBatch      = 100
)

var ErrUnavailable = errors.New("redis unavailable")

// Redis is a JSON cache that degrades to a no-op when the server cannot be
// reached, so callers always fall through to the source of truth.
type Redis struct {
	client *redis.Client
	logger *log.Logger
	ttl    time.Duration

	warned atomic.Bool
}

// NewRedis connects and pings once. An unreachable server yields a bypassing
// cache rather than an error.
func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		r := &Redis{logger: logger, ttl: cfg.TTL}
		r.unavailable(err)
		return r
	}
	return NewRedisWithClient(client, cfg.TTL, logger)
}

func NewRedisWithClient(client *redis.Client, ttl time.Duration, logger *log.Logger) *Redis {
	return &Redis{client: client, logger: logger, ttl: ttl}
}

func (r *Redis) bypassed() bool {
	return r == nil || r.client == nil
}

// unavailable logs the first connectivity failure only and passes err back.
func (r *Redis) unavailable(err error) error {
	if r != nil && r.logger != nil && r.warned.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
	return err
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.bypassed() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.bypassed() {
		return nil
	}
	return r.client.Close()
}

// GetJSON decodes the value under key into out and reports whether it was
// present.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.bypassed() {
		return false, nil
	}
	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, r.unavailable(err)
	case len(raw) == 0:
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key. A non-positive ttl uses the configured
// default.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.bypassed() {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, raw, r.expiry(ttl)).Err(); err != nil {
		return r.unavailable(err)
	}
	return nil
}

func (r *Redis) expiry(ttl time.Duration) time.Duration {
	switch {
	case ttl > 0:
		return ttl
	case r.ttl > 0:
		return r.ttl
	default:
		return defaultTTL
	}
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.bypassed() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return r.unavailable(err)
	}
	return nil
}

// DeleteByPattern unlinks every key matching the glob pattern, scanning in
// batches so large keyspaces are never loaded at once.
func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.bypassed() {
		return nil
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	var cursor uint64
	removed := 0
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return r.unavailable(err)
		}
		if len(keys) > 0 {
			if err := r.client.Unlink(ctx, keys...).Err(); err != nil {
				return r.unavailable(err)
			}
			removed += len(keys)
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	if removed > 0 && r.logger != nil {
		r.logger.Printf("[Cache] invalidated pattern=%s keys=%d", pattern, removed)
	}
	return nil
}

// SetIfNotExists is a SETNX lock. A non-positive ttl uses a 30s lease.
func (r *Redis) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if r.bypassed() {
		return false, nil
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	ok, err := r.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, r.unavailable(err)
	}
	return ok, nil
}
