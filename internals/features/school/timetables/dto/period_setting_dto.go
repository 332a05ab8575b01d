// file: internals/features/school/timetables/dto/period_setting_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	m "schoolku_backend/internals/features/school/timetables/model"
	"schoolku_backend/internals/helpers/timefmt"
)

/* =========================
   Requests
   ========================= */

type PeriodSettingInput struct {
	Number    int    `json:"number"     validate:"required,min=1"`
	StartTime string `json:"start_time" validate:"required,len=5"`
	EndTime   string `json:"end_time"   validate:"required,len=5"`
	Name      string `json:"name"       validate:"omitempty,max=80"`
}

// SavePeriodSettingsRequest: full replace untuk satu scope
// (tenant, tahun ajaran). Kosongkan academic_year → tahun berjalan.
type SavePeriodSettingsRequest struct {
	AcademicYear string               `json:"academic_year" validate:"omitempty,len=7"`
	Slots        []PeriodSettingInput `json:"slots"         validate:"required,min=1,dive"`
}

func (r *SavePeriodSettingsRequest) ToModels(schoolID uuid.UUID, year string) []m.PeriodSettingModel {
	out := make([]m.PeriodSettingModel, 0, len(r.Slots))
	for i, in := range r.Slots {
		out = append(out, m.PeriodSettingModel{
			PeriodSettingSchoolID:        schoolID,
			PeriodSettingNumber:          i + 1, // renumber 1..n, abaikan angka kiriman client
			PeriodSettingStartTime:       strings.TrimSpace(in.StartTime),
			PeriodSettingEndTime:         strings.TrimSpace(in.EndTime),
			PeriodSettingDurationMinutes: timefmt.DurationMinutes(in.StartTime, in.EndTime),
			PeriodSettingName:            strings.TrimSpace(in.Name),
			PeriodSettingAcademicYear:    year,
			PeriodSettingPeriodType:      constants.PeriodTypeClass,
			PeriodSettingIsActive:        true,
		})
	}
	return out
}

/* =========================
   Responses
   ========================= */

type PeriodSettingResponse struct {
	ID              uuid.UUID `json:"id"`
	Number          int       `json:"number"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Name            string    `json:"name"`
	TimeLabel       string    `json:"time_label"` // "8:00 AM - 8:45 AM"
	AcademicYear    string    `json:"academic_year"`
}

func NewPeriodSettingResponse(r m.PeriodSettingModel) PeriodSettingResponse {
	return PeriodSettingResponse{
		ID:              r.PeriodSettingID,
		Number:          r.PeriodSettingNumber,
		StartTime:       r.PeriodSettingStartTime,
		EndTime:         r.PeriodSettingEndTime,
		DurationMinutes: r.PeriodSettingDurationMinutes,
		Name:            r.PeriodSettingName,
		TimeLabel:       timefmt.Format12h(r.PeriodSettingStartTime) + " - " + timefmt.Format12h(r.PeriodSettingEndTime),
		AcademicYear:    r.PeriodSettingAcademicYear,
	}
}

func NewPeriodSettingResponses(rows []m.PeriodSettingModel) []PeriodSettingResponse {
	out := make([]PeriodSettingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewPeriodSettingResponse(r))
	}
	return out
}
