// file: internals/helpers/auth/school_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrSchoolContextMissing = fiber.NewError(
	fiber.StatusUnauthorized,
	"School context tidak ditemukan. Sertakan :school_id di path atau header X-Active-School-ID.",
)

/*
	==========================================
	  Resolve context: path → header → query → token locals

==========================================
*/
func GetActiveSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	// 1) path
	if id := strings.TrimSpace(c.Params("school_id")); id != "" {
		if uid, err := uuid.Parse(id); err == nil {
			return uid, nil
		}
	}

	// 2) header
	if h := strings.TrimSpace(c.Get("X-Active-School-ID")); h != "" {
		if uid, err := uuid.Parse(h); err == nil {
			return uid, nil
		}
	}

	// 3) query
	if q := strings.TrimSpace(c.Query("school_id")); q != "" {
		if uid, err := uuid.Parse(q); err == nil {
			return uid, nil
		}
	}

	// 4) locals (diisi middleware dari token)
	if v, ok := c.Locals(LocActiveSchoolID).(string); ok {
		if uid, err := uuid.Parse(strings.TrimSpace(v)); err == nil && uid != uuid.Nil {
			return uid, nil
		}
	}

	// 5) fallback token langsung (tanpa middleware)
	if id, err := GetActiveSchoolIDFromToken(c); err == nil && id != uuid.Nil {
		return id, nil
	}

	return uuid.Nil, ErrSchoolContextMissing
}

// IsSchoolReady: guard ringan sebelum operasi tenant-scoped.
func IsSchoolReady(c *fiber.Ctx) bool {
	id, err := GetActiveSchoolID(c)
	return err == nil && id != uuid.Nil
}
