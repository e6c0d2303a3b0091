package middleware

import (
	"time"

	"certtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
)

// RateLimiter limits each client IP to maxRequests requests per sliding window.
// maxRequests <= 0 disables limiting.
func RateLimiter(maxRequests int, window time.Duration) fiber.Handler {
	if maxRequests <= 0 {
		return func(c fiber.Ctx) error { return c.Next() }
	}
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return response.Error(c, fiber.StatusTooManyRequests, response.MessageTooManyRequests, nil)
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
