package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// GlobalAPIRateLimiter rate-limits all /api routes per client IP.
// Health checks and metrics are excluded so probes never get throttled.
func GlobalAPIRateLimiter(maxPerMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        maxPerMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, slow down",
			})
		},
		Next: func(c *fiber.Ctx) bool {
			path := c.Path()
			return path == "/api/health" || path == "/metrics"
		},
	})
}
