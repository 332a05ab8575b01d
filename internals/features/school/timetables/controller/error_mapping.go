// file: internals/features/school/timetables/controller/error_mapping.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/timetables/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// activeSchoolID: resolve tenant dari request. Kalau gagal, response
// ber-envelope JSON langsung ditulis di sini dan ok=false; handler
// berhenti dengan return nil supaya error handler default fiber tidak
// menimpa body dengan plain text.
func activeSchoolID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := helperAuth.GetActiveSchoolID(c)
	if err == nil {
		return id, true
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		_ = helper.JsonError(c, fe.Code, fe.Message)
	} else {
		_ = helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	return uuid.Nil, false
}

// mapServiceError: satu pintu pemetaan error domain → status HTTP.
// Pesan backing store diteruskan apa adanya ke client.
func mapServiceError(c *fiber.Ctx, err error) error {
	var pf *service.PartialFailureError
	switch {
	case errors.Is(err, service.ErrTenantNotReady):
		return helper.JsonError(c, fiber.StatusUnauthorized, "School context belum siap. Silakan login ulang.")
	case errors.Is(err, service.ErrNoTeacherAssigned):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Mapel ini belum punya guru. Tetapkan guru dulu sebelum menjadwalkan.")
	case errors.Is(err, service.ErrNothingToCopy):
		return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada entri di hari sumber untuk disalin.")
	case errors.Is(err, service.ErrInvalidDay), errors.Is(err, service.ErrSlotNotFound):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &pf):
		// sebagian langkah sukses; client wajib refetch, jangan andalkan state lama
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	case strings.HasPrefix(err.Error(), "backing store"):
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
