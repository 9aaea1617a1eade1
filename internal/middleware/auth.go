package middleware

import (
	"github.com/SOrtizRamirez/empleabilidad-api/internal/config"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected rejects requests without a valid bearer token. Requests
// carrying the machine API key skip the JWT check entirely.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		Filter: func(c *fiber.Ctx) bool {
			return cfg.APIKey != "" && c.Get("X-API-Key") == cfg.APIKey
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
