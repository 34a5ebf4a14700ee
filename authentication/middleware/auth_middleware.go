package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Maruaruhe/swgameweb/authentication/token"
	"github.com/Maruaruhe/swgameweb/domain"
)

// LocalsUserKey is where the middleware stores the verified claims for
// downstream handlers.
const LocalsUserKey = "user"

// JwtAuthMiddleware gates protected routes behind a Bearer token. The token's
// claims are trusted as-is; there is no per-request user lookup.
func JwtAuthMiddleware(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Access denied. No token provided."})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Authorization header format must be Bearer {token}"})
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Message: "Invalid token."})
		}

		// Store the verified identity for handlers to access
		c.Locals(LocalsUserKey, claims)

		return c.Next()
	}
}
