// file: internals/features/school/timetables/model/timetable_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TimetableEntryModel: satu baris per slot terisi.
// Kunci logis: (school_id, class_id, day_of_week, period_number) — maksimal
// satu entry per slot. Start/end time hanya field display (denormalized),
// di-refresh tiap kali slot ditulis ulang.
type TimetableEntryModel struct {
	TimetableEntryID uuid.UUID `gorm:"column:timetable_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_entry_id"`

	// tenant scope
	TimetableEntrySchoolID uuid.UUID `gorm:"column:timetable_entry_school_id;type:uuid;not null" json:"timetable_entry_school_id"`

	TimetableEntryClassID   uuid.UUID `gorm:"column:timetable_entry_class_id;type:uuid;not null" json:"timetable_entry_class_id"`
	TimetableEntrySubjectID uuid.UUID `gorm:"column:timetable_entry_subject_id;type:uuid;not null" json:"timetable_entry_subject_id"`
	TimetableEntryTeacherID uuid.UUID `gorm:"column:timetable_entry_teacher_id;type:uuid;not null" json:"timetable_entry_teacher_id"`

	// "Monday".."Saturday" — nama hari Inggris, bukan index angka
	TimetableEntryDayOfWeek    string `gorm:"column:timetable_entry_day_of_week;type:varchar(10);not null" json:"timetable_entry_day_of_week"`
	TimetableEntryPeriodNumber int    `gorm:"column:timetable_entry_period_number;not null" json:"timetable_entry_period_number"`

	TimetableEntryStartTime string `gorm:"column:timetable_entry_start_time;type:varchar(5);not null" json:"timetable_entry_start_time"`
	TimetableEntryEndTime   string `gorm:"column:timetable_entry_end_time;type:varchar(5);not null" json:"timetable_entry_end_time"`

	TimetableEntryAcademicYear string `gorm:"column:timetable_entry_academic_year;type:varchar(10);not null" json:"timetable_entry_academic_year"`

	TimetableEntryCreatedAt time.Time  `gorm:"column:timetable_entry_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_entry_created_at"`
	TimetableEntryUpdatedAt *time.Time `gorm:"column:timetable_entry_updated_at;type:timestamptz" json:"timetable_entry_updated_at,omitempty"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }
