package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"certtrack/internal/config"
	"certtrack/internal/delivery/http/handler"
	"certtrack/internal/delivery/http/middleware"
	"certtrack/internal/delivery/http/routes"
	"certtrack/internal/pkg/jwt"
	"certtrack/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// New builds the HTTP application around an initialized container.
func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, c.Logger)

	var auth *middleware.AuthMiddleware
	if strings.TrimSpace(cfg.Auth.JWTSecret) != "" {
		auth = middleware.NewAuthMiddleware(jwt.NewHMACService(cfg.Auth.JWTSecret, time.Hour))
	}

	routes.NewRegistry(
		routes.Handlers{
			Health:  handler.NewHealthHandler(c.DB, c.Cache),
			Match:   handler.NewMatchHandler(c.Matching),
			Catalog: handler.NewCatalogHandler(c.Catalog),
			WS:      ws.NewHandler(c.Hub, c.Logger),
		},
		routes.Guards{
			Limiter: middleware.RateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window),
			Auth:    auth,
			Admin:   middleware.NewAdminKeyMiddleware(cfg.Admin.KeyHash),
		},
	).Register(f)

	return &App{Fiber: f}
}

// Bootstrap wires the container, applies pending migrations and starts the
// WebSocket hub. The returned cleanup stops the hub and releases
// connections.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init container: %w", err)
	}

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := c.Migrate(migCtx); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
