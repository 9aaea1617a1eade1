package middleware

import (
	"github.com/SOrtizRamirez/empleabilidad-api/internal/authz"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/config"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// RolesRequired gates a route to the given roles, read from the token
// claims. The machine API key bypasses the role check the same way it
// bypasses the JWT middleware.
func RolesRequired(cfg *config.Config, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.APIKey != "" && c.Get("X-API-Key") == cfg.APIKey {
			return c.Next()
		}

		actor, err := authz.ActorFromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !authz.RoleAllowed(actor.Role, roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Insufficient role",
			})
		}

		return c.Next()
	}
}
