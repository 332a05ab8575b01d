// file: internals/features/school/timetables/controller/period_setting_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/school/timetables/dto"
	"schoolku_backend/internals/features/school/timetables/service"
	"schoolku_backend/internals/features/school/timetables/store"
	helper "schoolku_backend/internals/helpers"
)

type PeriodSettingController struct {
	Service  *service.PeriodSettingsService
	Validate *validator.Validate
}

func NewPeriodSettingController(st store.Store, v *validator.Validate) *PeriodSettingController {
	return &PeriodSettingController{
		Service:  service.NewPeriodSettingsService(st),
		Validate: v,
	}
}

/* ===================== GET ===================== */
// GET /api/a/:school_id/timetables/period-settings?academic_year=2025-26
func (ctrl *PeriodSettingController) GetPeriodSettings(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}

	year := strings.TrimSpace(c.Query("academic_year"))
	if year == "" {
		year = helper.CurrentAcademicYear()
	}

	rows, err := ctrl.Service.LoadSettings(c.Context(), schoolID, year)
	if err != nil {
		log.Printf("[PeriodSettingController.GetPeriodSettings] error: %v", err)
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "Period settings berhasil diambil", dto.NewPeriodSettingResponses(rows))
}

/* ===================== PUT ===================== */
// PUT /api/a/:school_id/timetables/period-settings
// Full replace untuk (tenant, tahun ajaran).
func (ctrl *PeriodSettingController) SavePeriodSettings(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}

	var req dto.SavePeriodSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	year := strings.TrimSpace(req.AcademicYear)
	if year == "" {
		year = helper.CurrentAcademicYear()
	}

	saved, err := ctrl.Service.SaveSettings(c.Context(), schoolID, year, req.ToModels(schoolID, year))
	if err != nil {
		log.Printf("[PeriodSettingController.SavePeriodSettings] error: %v", err)
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Period settings berhasil disimpan", dto.NewPeriodSettingResponses(saved))
}
