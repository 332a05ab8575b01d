package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DBMiddleware menaruh koneksi gorm di context request, dipakai
// helper yang butuh query tanpa akses controller (resolver slug dsb).
func DBMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("DB", db)
		return c.Next()
	}
}
