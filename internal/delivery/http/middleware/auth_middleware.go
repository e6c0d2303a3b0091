package middleware

import (
	"errors"
	"strings"

	"certtrack/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxSubjectKey = "subject"
	CtxEmailKey   = "email"
)

// AuthMiddleware accepts access tokens issued by the external auth
// provider. Identity is only recorded for logging; matching never
// depends on it.
type AuthMiddleware struct {
	tokens jwt.Service
}

func NewAuthMiddleware(tokens jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.tokens.ValidateToken(raw)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		case err != nil:
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxSubjectKey, claims.Subject)
		c.Locals(CtxEmailKey, claims.Email)
		return c.Next()
	}
}

// Subject returns the authenticated caller, or "" on unauthenticated
// routes.
func Subject(c fiber.Ctx) string {
	sub, _ := c.Locals(CtxSubjectKey).(string)
	return sub
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
