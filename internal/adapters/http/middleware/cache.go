package middleware

import "github.com/gofiber/fiber/v2"

// NoStore forbids caching of API responses. Loan views are shaped per
// role, so a shared or intermediary cache must never replay one
// caller's body to another.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set("Cache-Control", "no-store")
		return err
	}
}
