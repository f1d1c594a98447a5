package auth

import (
	"strings"

	"eatz-backend/internal/config"
	"eatz-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxUserKey      = "user"
	CtxUserRoleKey  = "user_role"
	CtxSessionIDKey = "session_id"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing Authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization must be 'Bearer <token>'")
		}

		claims, err := ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(CtxUserKey, claims.User())
		c.Locals(CtxUserRoleKey, claims.Role)
		c.Locals(CtxSessionIDKey, claims.ID)

		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "role not available")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "not allowed for your role")
	}
}

// CurrentUser returns the identity JWTMiddleware stored on the request.
func CurrentUser(c *fiber.Ctx) (models.User, error) {
	user, ok := c.Locals(CtxUserKey).(models.User)
	if !ok {
		return models.User{}, fiber.NewError(fiber.StatusUnauthorized, "no session user")
	}
	return user, nil
}
