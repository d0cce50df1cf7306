package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Config holds the settings for the API key middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check entirely.
	ApiKey string
	// Header is the request header carrying the key. Defaults to X-Api-Key.
	Header string
}

// New returns a middleware that rejects requests lacking the configured
// API key. Comparison is constant-time.
func New(cfg Config) fiber.Handler {
	header := cfg.Header
	if header == "" {
		header = "X-Api-Key"
	}
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		got := c.Get(header)
		if subtle.ConstantTimeCompare([]byte(got), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
