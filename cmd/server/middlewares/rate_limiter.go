package middlewares

import (
	"strings"
	"time"

	"quirknotes/cmd/server/handlers/httperr"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// BuildRateLimiter returns a per-IP limiter allowing max requests per expiration window.
// max <= 0 disables it. Paths starting with any of skipPrefixes are never limited.
func BuildRateLimiter(max int, expiration time.Duration, skipPrefixes ...string) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	cfg := limiter.Config{
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			return httperr.Fail(httperr.ErrTooManyRequests)
		},
	}

	if len(skipPrefixes) > 0 {
		cfg.Next = func(c *fiber.Ctx) bool {
			path := c.Path()
			for _, p := range skipPrefixes {
				if strings.HasPrefix(path, p) {
					return true
				}
			}
			return false
		}
	}

	return limiter.New(cfg)
}
