package routes

import (
	"certtrack/internal/delivery/http/handler"
	"certtrack/internal/delivery/http/middleware"
	"certtrack/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health  *handler.HealthHandler
	Match   *handler.MatchHandler
	Catalog *handler.CatalogHandler
	WS      *ws.Handler
}

// Guards are applied to /api in order: Limiter to every API route, Auth
// when set, Admin to the admin group only.
type Guards struct {
	Limiter fiber.Handler
	Auth    *middleware.AuthMiddleware
	Admin   *middleware.AdminKeyMiddleware
}

type Registry struct {
	handlers Handlers
	guards   Guards
}

func NewRegistry(h Handlers, g Guards) *Registry {
	return &Registry{handlers: h, guards: g}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(app)
	}
	if r.handlers.WS != nil {
		r.handlers.WS.RegisterRoutes(app)
	}
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	if r.guards.Limiter != nil {
		api.Use(r.guards.Limiter)
	}

	v1 := api.Group("/v1")
	if r.guards.Auth != nil {
		v1.Use(r.guards.Auth.Middleware())
	}
	RegisterV1(v1, r.handlers, r.guards)
}
