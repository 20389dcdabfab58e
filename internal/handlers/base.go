// Package handlers is the HTTP entry layer: it parses requests, dispatches
// commands and queries to the services, and maps OperationResult errors to
// the error envelope.
package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"shopapi/internal/cache"
	"shopapi/internal/middleware"
	"shopapi/internal/models"
)

// APIBase prefixes every route and every cache invalidation pattern.
const APIBase = "/api/v1"

// handleErrorResponse maps accumulated errors to one response. When a result
// mixes kinds, BadRequest wins over NotFound wins over InternalServerError.
func handleErrorResponse(c *fiber.Ctx, errs []models.Error) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}

	status := fiber.StatusInternalServerError
	phrase := models.PhraseInternalServerError
	switch {
	case hasCode(errs, models.ErrBadRequest):
		status = fiber.StatusBadRequest
		phrase = models.PhraseBadRequest
	case hasCode(errs, models.ErrNotFound):
		status = fiber.StatusNotFound
		phrase = models.PhraseNotFound
	}

	return c.Status(status).JSON(models.NewErrorResponse(status, phrase, msgs))
}

func hasCode(errs []models.Error, code models.ErrorCode) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}

func badRequestBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse(
		fiber.StatusBadRequest, models.PhraseBadRequest, []string{"Invalid request body"}))
}

// fullName returns the authenticated principal's full-name claim.
func fullName(c *fiber.Ctx) string {
	name, _ := c.Locals(middleware.LocalFullName).(string)
	return name
}

// userProfileID returns the authenticated principal's profile-id claim.
func userProfileID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.LocalUserProfileID).(string)
	return id
}

// invalidateCache clears every cached variant of a listing endpoint after a
// successful mutation. Failures are logged; the mutation already committed.
func invalidateCache(ctx context.Context, cacheService cache.ResponseCacheService, controller, action string) {
	pattern := cache.Pattern(APIBase, controller, action)
	if err := cacheService.Remove(ctx, pattern); err != nil {
		log.Printf("cache invalidation failed for %s: %v", pattern, err)
	}
}
