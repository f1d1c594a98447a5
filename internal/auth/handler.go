package auth

import (
	"errors"

	"eatz-backend/internal/config"
	"eatz-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
	Region   string          `json:"region"`
}

type LoginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type SessionResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// POST /api/auth/register
func RegisterHandler(cfg *config.Config, dir *Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		user, err := dir.Register(RegisterInput{
			Name:     body.Name,
			Email:    body.Email,
			Password: body.Password,
			Role:     body.Role,
			Region:   body.Region,
		})
		if errors.Is(err, ErrEmailTaken) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		token, err := GenerateToken(cfg.JWTSecret, cfg.TokenTTL, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
		}

		return c.Status(fiber.StatusCreated).JSON(SessionResponse{Token: token, User: user})
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, dir *Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
		}

		user, err := dir.Authenticate(body.Email, body.Password, body.Role)
		if errors.Is(err, ErrInvalidRole) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, cfg.TokenTTL, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
		}

		return c.JSON(SessionResponse{Token: token, User: user})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"user":       user,
			"session_id": c.Locals(CtxSessionIDKey),
		})
	}
}

// POST /api/auth/switch-role
func SwitchRoleHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return err
		}

		switched, err := SwitchDemoRole(user)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}

		token, err := GenerateToken(cfg.JWTSecret, cfg.TokenTTL, switched)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
		}

		return c.JSON(SessionResponse{Token: token, User: switched})
	}
}
