package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"
)

const HeaderAdminKey = "X-Admin-Key"

// AdminKeyMiddleware guards maintenance routes with a shared key whose
// bcrypt hash is configured. Without a hash every request is refused.
type AdminKeyMiddleware struct {
	hash []byte
}

func NewAdminKeyMiddleware(keyHash string) *AdminKeyMiddleware {
	return &AdminKeyMiddleware{hash: []byte(strings.TrimSpace(keyHash))}
}

func (m *AdminKeyMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if len(m.hash) == 0 {
			return NewAppError(fiber.StatusForbidden, "Admin access disabled", nil, nil)
		}

		key := strings.TrimSpace(c.Get(HeaderAdminKey))
		if key == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if err := bcrypt.CompareHashAndPassword(m.hash, []byte(key)); err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		}
		return c.Next()
	}
}
