// file: internals/features/school/timetables/dto/timetable_dto.go
package dto

import (
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetables/model"
	"schoolku_backend/internals/helpers/timefmt"
)

/* =========================
   Requests
   ========================= */

// AssignSubjectRequest: isi/ganti satu slot. subject_id null atau absen
// berarti kosongkan slot itu (delegasi ke remove).
type AssignSubjectRequest struct {
	ClassID      uuid.UUID  `json:"class_id"      validate:"required"`
	DayOfWeek    string     `json:"day_of_week"   validate:"required"`
	PeriodNumber int        `json:"period_number" validate:"required,min=1"`
	SubjectID    *uuid.UUID `json:"subject_id"`
}

type PasteDayRequest struct {
	ClassID   uuid.UUID   `json:"class_id"   validate:"required"`
	TargetDay string      `json:"target_day" validate:"required"`
	Snapshot  DaySnapshot `json:"snapshot"   validate:"required"`
}

type CopyDayRequest struct {
	ClassID   uuid.UUID `json:"class_id"   validate:"required"`
	SourceDay string    `json:"source_day" validate:"required"`
}

/* =========================
   Snapshot (transient)
   ========================= */

type SnapshotSlot struct {
	SubjectID uuid.UUID `json:"subject_id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Label     string    `json:"label"`
	Type      string    `json:"type"` // selalu "subject"
}

type DaySnapshot struct {
	SourceDay string         `json:"source_day"`
	Slots     []SnapshotSlot `json:"slots"`
}

/* =========================
   Responses
   ========================= */

type EntryResponse struct {
	ID           uuid.UUID `json:"id"`
	ClassID      uuid.UUID `json:"class_id"`
	SubjectID    uuid.UUID `json:"subject_id"`
	TeacherID    uuid.UUID `json:"teacher_id"`
	DayOfWeek    string    `json:"day_of_week"`
	PeriodNumber int       `json:"period_number"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	TimeLabel    string    `json:"time_label"`
	AcademicYear string    `json:"academic_year"`
}

func NewEntryResponse(r m.TimetableEntryModel) EntryResponse {
	return EntryResponse{
		ID:           r.TimetableEntryID,
		ClassID:      r.TimetableEntryClassID,
		SubjectID:    r.TimetableEntrySubjectID,
		TeacherID:    r.TimetableEntryTeacherID,
		DayOfWeek:    r.TimetableEntryDayOfWeek,
		PeriodNumber: r.TimetableEntryPeriodNumber,
		StartTime:    r.TimetableEntryStartTime,
		EndTime:      r.TimetableEntryEndTime,
		TimeLabel:    timefmt.Format12h(r.TimetableEntryStartTime) + " - " + timefmt.Format12h(r.TimetableEntryEndTime),
		AcademicYear: r.TimetableEntryAcademicYear,
	}
}

func NewEntryResponses(rows []m.TimetableEntryModel) []EntryResponse {
	out := make([]EntryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewEntryResponse(r))
	}
	return out
}

// SlotView: satu baris grid harian — slot dari period settings plus
// entry yang menempatinya (nil kalau kosong).
type SlotView struct {
	Slot  PeriodSettingResponse `json:"slot"`
	Entry *EntryResponse        `json:"entry,omitempty"`
}

/* =========================
   Paste report (per-slot)
   ========================= */

const (
	PasteCreated          = "created"
	PasteSkippedNoTeacher = "skipped_no_teacher"
	PasteFailed           = "failed"
)

type PasteSlotResult struct {
	StartTime string     `json:"start_time"`
	Status    string     `json:"status"`
	Message   string     `json:"message,omitempty"`
	EntryID   *uuid.UUID `json:"entry_id,omitempty"`
}

type PasteReport struct {
	TargetDay string            `json:"target_day"`
	Cleared   int               `json:"cleared"`
	Results   []PasteSlotResult `json:"results"`
}

func (r PasteReport) CreatedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == PasteCreated {
			n++
		}
	}
	return n
}

/* =========================
   Read refs
   ========================= */

type SubjectWithTeacherResponse struct {
	ID           uuid.UUID  `json:"id"`
	ClassID      uuid.UUID  `json:"class_id"`
	Name         string     `json:"name"`
	AcademicYear string     `json:"academic_year"`
	TeacherID    *uuid.UUID `json:"teacher_id,omitempty"`
	TeacherName  *string    `json:"teacher_name,omitempty"`
}

type ClassResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Section string    `json:"section"`
}

func NewClassResponse(r m.ClassModel) ClassResponse {
	return ClassResponse{ID: r.ClassID, Name: r.ClassName, Section: r.ClassSection}
}

type TeacherResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewTeacherResponse(r m.TeacherModel) TeacherResponse {
	return TeacherResponse{ID: r.TeacherID, Name: r.TeacherName}
}
