package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopapi/internal/models"
	"shopapi/internal/services"
)

// Context-local keys populated by AuthRequired for downstream handlers.
const (
	LocalEmail         = "email"
	LocalFullName      = "full_name"
	LocalUserProfileID = "user_profile_id"
	LocalRole          = "role"
)

// AuthRequired is a Fiber middleware that checks for a valid bearer token and
// stores its claims in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c, "Authorization header format must be 'Bearer <token>'")
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(LocalEmail, stringClaim(claims, "email"))
		c.Locals(LocalFullName, stringClaim(claims, "full_name"))
		c.Locals(LocalUserProfileID, stringClaim(claims, "user_profile_id"))
		c.Locals(LocalRole, stringClaim(claims, "role"))

		return c.Next()
	}
}

func stringClaim(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.NewErrorResponse(
		fiber.StatusUnauthorized, models.PhraseUnauthorized, []string{message}))
}
