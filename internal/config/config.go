package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Matching  MatchingConfig
	Auth      AuthConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type MatchingConfig struct {
	NowThreshold        float64
	NextThreshold       float64
	RecommendationLimit int
	LoadConcurrency     int
}

// AuthConfig holds the shared secret of the external auth provider. An
// empty secret disables token checks.
type AuthConfig struct {
	JWTSecret string
}

type AdminConfig struct {
	KeyHash string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optFloat := func(key string, def float64) float64 {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 0),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
		TTL:      time.Duration(optInt("REDIS_TTL", 600)) * time.Second,
	}

	cfg.Matching = MatchingConfig{
		NowThreshold:        optFloat("MATCH_NOW_THRESHOLD", 0.85),
		NextThreshold:       optFloat("MATCH_NEXT_THRESHOLD", 0.60),
		RecommendationLimit: optInt("MATCH_RECOMMENDATION_LIMIT", 4),
		LoadConcurrency:     optInt("MATCH_LOAD_CONCURRENCY", 8),
	}

	cfg.Auth = AuthConfig{JWTSecret: opt("AUTH_JWT_SECRET")}
	cfg.Admin = AdminConfig{KeyHash: opt("ADMIN_KEY_HASH")}

	cfg.RateLimit = RateLimitConfig{
		Max:    optInt("RATE_LIMIT_MAX", 60),
		Window: optDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if cfg.Matching.RecommendationLimit < 0 {
		invalid = append(invalid, "MATCH_RECOMMENDATION_LIMIT")
	}
	if cfg.Matching.LoadConcurrency < 1 {
		invalid = append(invalid, "MATCH_LOAD_CONCURRENCY")
	}
	if cfg.Matching.NextThreshold < 0 || cfg.Matching.NowThreshold > 1 || cfg.Matching.NextThreshold > cfg.Matching.NowThreshold {
		invalid = append(invalid, "MATCH_NOW_THRESHOLD", "MATCH_NEXT_THRESHOLD")
	}
	if cfg.RateLimit.Max < 0 || cfg.RateLimit.Window <= 0 {
		invalid = append(invalid, "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW")
	}
	if cfg.Redis.TTL <= 0 {
		invalid = append(invalid, "REDIS_TTL")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
