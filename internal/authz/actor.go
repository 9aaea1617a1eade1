package authz

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Actor is the authenticated identity behind a request, as carried by
// the access-token claims.
type Actor struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ActorFromContext extracts the actor from the JWT parsed by the auth
// middleware.
func ActorFromContext(c *fiber.Ctx) (Actor, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Actor{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Actor{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Actor{}, errors.New("missing sub claim")
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return Actor{}, errors.New("malformed sub claim")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return Actor{ID: uint(id), Email: email, Role: role}, nil
}
