package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopapi/internal/models"
)

// ValidateUUID checks that every named route parameter parses as a UUID. Any
// malformed parameter short-circuits with 400 and one message per failure;
// the handler is never invoked.
func ValidateUUID(params ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs []string
		for _, param := range params {
			if _, err := uuid.Parse(c.Params(param)); err != nil {
				errs = append(errs, fmt.Sprintf("The identity for %s is not correct Guid format", param))
			}
		}

		if len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse(
				fiber.StatusBadRequest, models.PhraseBadRequest, errs))
		}
		return c.Next()
	}
}
