// file: internals/helpers/auth/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
)

/* ============================================
   Locals keys (diisi middleware SchoolScope)
   ============================================ */

const (
	LocUserID         = "user_id"
	LocActiveSchoolID = "active_school_id" // string UUID
)

type SchoolClaims struct {
	UserID         string `json:"user_id"`
	ActiveSchoolID string `json:"active_school_id"`
	jwt.RegisteredClaims
}

// ParseSchoolClaims membaca bearer token (header Authorization) dan
// mengembalikan claims. Token kosong → (nil, nil): biarkan caller yang
// memutuskan apakah itu fatal.
func ParseSchoolClaims(c *fiber.Ctx) (*SchoolClaims, error) {
	raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if raw == "" {
		return nil, nil
	}
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer"))
	if raw == "" {
		return nil, nil
	}

	claims := &SchoolClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// GetActiveSchoolIDFromToken: ambil school aktif dari claims token.
func GetActiveSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := ParseSchoolClaims(c)
	if err != nil || claims == nil {
		return uuid.Nil, err
	}
	if s := strings.TrimSpace(claims.ActiveSchoolID); s != "" {
		if id, er := uuid.Parse(s); er == nil {
			return id, nil
		}
	}
	return uuid.Nil, nil
}
