package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"shopapi/internal/cache"
)

// CacheConfig controls the response-cache filter.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// CacheResponse is the read-through response cache for GET endpoints. With
// caching disabled it passes straight through. On a hit it returns the stored
// JSON verbatim without invoking the handler; on a miss it runs the handler
// and stores any 200 response body with the configured TTL. Cache errors are
// logged and never fail the request.
func CacheResponse(cfg CacheConfig, cacheService cache.ResponseCacheService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled {
			return c.Next()
		}

		query := make(map[string]string)
		c.Context().QueryArgs().VisitAll(func(k, v []byte) {
			query[string(k)] = string(v)
		})
		key := cache.KeyFromRequest(c.Path(), query)

		cached, err := cacheService.Get(c.UserContext(), key)
		if err != nil {
			log.Printf("cache read failed for %s: %v", key, err)
		}
		if cached != "" {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(fiber.StatusOK).SendString(cached)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			body := string(c.Response().Body())
			if err := cacheService.Set(c.UserContext(), key, body, cfg.TTL); err != nil {
				log.Printf("cache write failed for %s: %v", key, err)
			}
		}
		return nil
	}
}
