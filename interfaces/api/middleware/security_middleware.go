package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const contentSecurityPolicy = "default-src 'self'; style-src 'self' 'unsafe-inline'"

func SecurityHeaders() fiber.Handler {
	return helmet.New(helmet.Config{
		ContentSecurityPolicy: contentSecurityPolicy,
	})
}

// Recover turns panics into 500 responses through the error handler.
func Recover(enableStackTrace bool) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: enableStackTrace,
	})
}
