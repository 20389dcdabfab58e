package middleware

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/models"
)

// RequireRole allows the request only when the authenticated principal's role
// claim equals roleName; otherwise it forbids without reaching the handler.
// There is no multi-role OR-matching.
func RequireRole(roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		if role != roleName {
			return c.Status(fiber.StatusForbidden).JSON(models.NewErrorResponse(
				fiber.StatusForbidden, models.PhraseForbidden,
				[]string{"You do not have permission to access this resource"}))
		}
		return c.Next()
	}
}
