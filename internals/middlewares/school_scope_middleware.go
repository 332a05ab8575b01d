// file: internals/middlewares/school_scope_middleware.go
package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helperAuth "schoolku_backend/internals/helpers/auth"
)

// SchoolScope membaca claims dari bearer token (kalau ada) dan menaruh
// school aktif + user id di locals. Tidak menolak request tanpa token:
// readiness dicek per-operasi oleh controller (guard TenantNotReady).
func SchoolScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := helperAuth.ParseSchoolClaims(c)
		if err != nil {
			log.Printf("[SCHOOL_SCOPE] token invalid: %v", err)
			return c.Next()
		}
		if claims != nil {
			if claims.UserID != "" {
				c.Locals(helperAuth.LocUserID, claims.UserID)
			}
			if claims.ActiveSchoolID != "" {
				c.Locals(helperAuth.LocActiveSchoolID, claims.ActiveSchoolID)
			}
		}
		return c.Next()
	}
}
