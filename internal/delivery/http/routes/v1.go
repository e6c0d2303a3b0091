package routes

import (
	"certtrack/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, h Handlers, g Guards) {
	if r == nil {
		return
	}

	if h.Catalog != nil {
		h.Catalog.RegisterRoutes(r)
	}
	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}

	if h.Catalog != nil {
		admin := g.Admin
		if admin == nil {
			admin = middleware.NewAdminKeyMiddleware("")
		}
		h.Catalog.RegisterAdminRoutes(r.Group("/admin", admin.Middleware()))
	}
}
