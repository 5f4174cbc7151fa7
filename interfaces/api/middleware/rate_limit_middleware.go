package middleware

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"task-tracker-api/pkg/config"
	"task-tracker-api/pkg/logger"
	"task-tracker-api/pkg/utils"
)

// GlobalRateLimiter caps every client IP at cfg.Max requests per cfg.Window.
// storage may be nil for in-process counters.
func GlobalRateLimiter(cfg config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	return newLimiter("global:", cfg.Enabled, cfg.Max, cfg.Window, false, storage,
		"Too many requests from this IP, please try again later")
}

// AuthRateLimiter is the strict limiter for register and login. Only failed
// attempts count against the window.
func AuthRateLimiter(cfg config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	return newLimiter("auth:", cfg.Enabled, cfg.AuthMax, cfg.AuthWindow, true, storage,
		"Too many authentication attempts, please try again later")
}

// keyPrefix keeps the two limiters apart when they share a storage.
func newLimiter(keyPrefix string, enabled bool, limit int, window time.Duration, skipSuccessful bool, storage fiber.Storage, message string) fiber.Handler {
	retryAfter := int(math.Ceil(window.Minutes()))

	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return !enabled
		},
		Max:        limit,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return keyPrefix + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.WarnContext(c.UserContext(), "Rate limit reached", "ip", c.IP(), "path", c.Path())
			return utils.TooManyRequestsResponse(c, message, retryAfter)
		},
		SkipSuccessfulRequests: skipSuccessful,
		Storage:                storage,
	})
}
