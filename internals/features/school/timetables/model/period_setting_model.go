// file: internals/features/school/timetables/model/period_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PeriodSettingModel: satu baris per slot jam pelajaran, di-scope
// (tenant, tahun ajaran). Duration selalu diturunkan dari start/end,
// tidak pernah diinput langsung.
type PeriodSettingModel struct {
	PeriodSettingID uuid.UUID `gorm:"column:period_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"period_setting_id"`

	// tenant scope
	PeriodSettingSchoolID uuid.UUID `gorm:"column:period_setting_school_id;type:uuid;not null" json:"period_setting_school_id"`

	PeriodSettingNumber          int    `gorm:"column:period_setting_number;not null" json:"period_setting_number"`
	PeriodSettingStartTime       string `gorm:"column:period_setting_start_time;type:varchar(5);not null" json:"period_setting_start_time"`
	PeriodSettingEndTime         string `gorm:"column:period_setting_end_time;type:varchar(5);not null" json:"period_setting_end_time"`
	PeriodSettingDurationMinutes int    `gorm:"column:period_setting_duration_minutes;not null" json:"period_setting_duration_minutes"`
	PeriodSettingName            string `gorm:"column:period_setting_name;type:varchar(80)" json:"period_setting_name"`

	PeriodSettingAcademicYear string `gorm:"column:period_setting_academic_year;type:varchar(10);not null" json:"period_setting_academic_year"`
	PeriodSettingPeriodType   string `gorm:"column:period_setting_period_type;type:varchar(20);not null;default:'class'" json:"period_setting_period_type"`
	PeriodSettingIsActive     bool   `gorm:"column:period_setting_is_active;not null;default:true" json:"period_setting_is_active"`

	PeriodSettingCreatedAt time.Time `gorm:"column:period_setting_created_at;type:timestamptz;not null;autoCreateTime" json:"period_setting_created_at"`
}

func (PeriodSettingModel) TableName() string { return "period_settings" }
