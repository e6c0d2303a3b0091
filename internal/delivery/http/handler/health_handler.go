package handler

import (
	"context"
	"time"

	"certtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness. The database is critical; the cache is
// reported but never fails the check.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Cache    string `json:"cache,omitempty"`
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	res := healthResponse{Status: "ok"}
	status := fiber.StatusOK

	if h.db != nil {
		res.Database = "ok"
		if err := h.db.Ping(ctx); err != nil {
			res.Database = "unavailable"
			res.Status = "degraded"
			status = fiber.StatusServiceUnavailable
		}
	}
	if h.cache != nil {
		res.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			res.Cache = "unavailable"
		}
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, response.MessageServiceUnavailable, res)
	}
	return response.Success(c, status, response.MessageOK, res)
}
