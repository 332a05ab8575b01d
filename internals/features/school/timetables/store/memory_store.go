// file: internals/features/school/timetables/store/memory_store.go
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "schoolku_backend/internals/features/school/timetables/model"
)

/* =========================
   In-memory Store (tests)
   =========================
   Implementasi Store untuk unit test service tanpa Postgres.
   CreateErrHook/DeleteErrHook dipakai menyuntik kegagalan
   (skenario PartialFailure). */

type MemoryStore struct {
	mu sync.Mutex

	PeriodSettings  []m.PeriodSettingModel
	Entries         []m.TimetableEntryModel
	TeacherSubjects []m.TeacherSubjectModel
	Subjects        []m.SubjectModel
	Teachers        []m.TeacherModel
	Classes         []m.ClassModel

	CreateErrHook func(table string, row any) error
	DeleteErrHook func(table string, filters Filters) error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func norm(v any) string {
	return fmt.Sprintf("%v", v)
}

func matches(fields map[string]any, filters Filters) bool {
	for k, want := range filters {
		got, ok := fields[k]
		if !ok || norm(got) != norm(want) {
			return false
		}
	}
	return true
}

func periodSettingFields(r m.PeriodSettingModel) map[string]any {
	return map[string]any{
		"period_setting_id":            r.PeriodSettingID,
		"period_setting_school_id":     r.PeriodSettingSchoolID,
		"period_setting_number":        r.PeriodSettingNumber,
		"period_setting_start_time":    r.PeriodSettingStartTime,
		"period_setting_end_time":      r.PeriodSettingEndTime,
		"period_setting_name":          r.PeriodSettingName,
		"period_setting_academic_year": r.PeriodSettingAcademicYear,
		"period_setting_period_type":   r.PeriodSettingPeriodType,
		"period_setting_is_active":     r.PeriodSettingIsActive,
	}
}

func entryFields(r m.TimetableEntryModel) map[string]any {
	return map[string]any{
		"timetable_entry_id":            r.TimetableEntryID,
		"timetable_entry_school_id":     r.TimetableEntrySchoolID,
		"timetable_entry_class_id":      r.TimetableEntryClassID,
		"timetable_entry_subject_id":    r.TimetableEntrySubjectID,
		"timetable_entry_teacher_id":    r.TimetableEntryTeacherID,
		"timetable_entry_day_of_week":   r.TimetableEntryDayOfWeek,
		"timetable_entry_period_number": r.TimetableEntryPeriodNumber,
		"timetable_entry_start_time":    r.TimetableEntryStartTime,
		"timetable_entry_end_time":      r.TimetableEntryEndTime,
		"timetable_entry_academic_year": r.TimetableEntryAcademicYear,
	}
}

func teacherSubjectFields(r m.TeacherSubjectModel) map[string]any {
	return map[string]any{
		"teacher_subject_id":         r.TeacherSubjectID,
		"teacher_subject_school_id":  r.TeacherSubjectSchoolID,
		"teacher_subject_teacher_id": r.TeacherSubjectTeacherID,
		"teacher_subject_subject_id": r.TeacherSubjectSubjectID,
	}
}

func subjectFields(r m.SubjectModel) map[string]any {
	return map[string]any{
		"subject_id":            r.SubjectID,
		"subject_school_id":     r.SubjectSchoolID,
		"subject_class_id":      r.SubjectClassID,
		"subject_name":          r.SubjectName,
		"subject_academic_year": r.SubjectAcademicYear,
	}
}

func teacherFields(r m.TeacherModel) map[string]any {
	return map[string]any{
		"teacher_id":        r.TeacherID,
		"teacher_school_id": r.TeacherSchoolID,
		"teacher_name":      r.TeacherName,
	}
}

func classFields(r m.ClassModel) map[string]any {
	return map[string]any{
		"class_id":        r.ClassID,
		"class_school_id": r.ClassSchoolID,
		"class_name":      r.ClassName,
		"class_section":   r.ClassSection,
	}
}

func orderLess(a, b map[string]any, col string) bool {
	av, bv := a[col], b[col]
	if ai, ok := av.(int); ok {
		if bi, ok2 := bv.(int); ok2 {
			return ai < bi
		}
	}
	return norm(av) < norm(bv)
}

func (s *MemoryStore) Read(ctx context.Context, table string, filters Filters, orderBy string, dest any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch d := dest.(type) {
	case *[]m.PeriodSettingModel:
		out := []m.PeriodSettingModel{}
		for _, r := range s.PeriodSettings {
			if matches(periodSettingFields(r), filters) {
				out = append(out, r)
			}
		}
		if orderBy != "" {
			sort.SliceStable(out, func(i, j int) bool {
				return orderLess(periodSettingFields(out[i]), periodSettingFields(out[j]), orderBy)
			})
		}
		*d = out
	case *[]m.TimetableEntryModel:
		out := []m.TimetableEntryModel{}
		for _, r := range s.Entries {
			if matches(entryFields(r), filters) {
				out = append(out, r)
			}
		}
		if orderBy != "" {
			sort.SliceStable(out, func(i, j int) bool {
				return orderLess(entryFields(out[i]), entryFields(out[j]), orderBy)
			})
		}
		*d = out
	case *[]m.TeacherSubjectModel:
		out := []m.TeacherSubjectModel{}
		for _, r := range s.TeacherSubjects {
			if matches(teacherSubjectFields(r), filters) {
				out = append(out, r)
			}
		}
		*d = out
	case *[]m.SubjectModel:
		out := []m.SubjectModel{}
		for _, r := range s.Subjects {
			if matches(subjectFields(r), filters) {
				out = append(out, r)
			}
		}
		*d = out
	case *[]m.TeacherModel:
		out := []m.TeacherModel{}
		for _, r := range s.Teachers {
			if matches(teacherFields(r), filters) {
				out = append(out, r)
			}
		}
		*d = out
	case *[]m.ClassModel:
		out := []m.ClassModel{}
		for _, r := range s.Classes {
			if matches(classFields(r), filters) {
				out = append(out, r)
			}
		}
		*d = out
	default:
		return fmt.Errorf("memory store: unsupported dest %T for table %q", dest, table)
	}
	return nil
}

func (s *MemoryStore) Create(ctx context.Context, table string, row any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErrHook != nil {
		if err := s.CreateErrHook(table, row); err != nil {
			return err
		}
	}

	switch r := row.(type) {
	case *m.PeriodSettingModel:
		if r.PeriodSettingID == uuid.Nil {
			r.PeriodSettingID = uuid.New()
		}
		s.PeriodSettings = append(s.PeriodSettings, *r)
	case *m.TimetableEntryModel:
		if r.TimetableEntryID == uuid.Nil {
			r.TimetableEntryID = uuid.New()
		}
		s.Entries = append(s.Entries, *r)
	case *m.TeacherSubjectModel:
		if r.TeacherSubjectID == uuid.Nil {
			r.TeacherSubjectID = uuid.New()
		}
		s.TeacherSubjects = append(s.TeacherSubjects, *r)
	case *m.SubjectModel:
		s.Subjects = append(s.Subjects, *r)
	case *m.TeacherModel:
		s.Teachers = append(s.Teachers, *r)
	case *m.ClassModel:
		s.Classes = append(s.Classes, *r)
	default:
		return fmt.Errorf("memory store: unsupported row %T for table %q", row, table)
	}
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, table string, id uuid.UUID, patch map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch table {
	case TablePeriodSettings:
		for i := range s.PeriodSettings {
			if s.PeriodSettings[i].PeriodSettingID == id {
				applyPeriodSettingPatch(&s.PeriodSettings[i], patch)
				return nil
			}
		}
	case TableTimetableEntries:
		for i := range s.Entries {
			if s.Entries[i].TimetableEntryID == id {
				applyEntryPatch(&s.Entries[i], patch)
				return nil
			}
		}
	default:
		return fmt.Errorf("memory store: update not supported for table %q", table)
	}
	return gorm.ErrRecordNotFound
}

func applyPeriodSettingPatch(r *m.PeriodSettingModel, patch map[string]any) {
	for k, v := range patch {
		switch k {
		case "period_setting_number":
			if n, ok := v.(int); ok {
				r.PeriodSettingNumber = n
			}
		case "period_setting_start_time":
			if sv, ok := v.(string); ok {
				r.PeriodSettingStartTime = sv
			}
		case "period_setting_end_time":
			if sv, ok := v.(string); ok {
				r.PeriodSettingEndTime = sv
			}
		case "period_setting_duration_minutes":
			if n, ok := v.(int); ok {
				r.PeriodSettingDurationMinutes = n
			}
		case "period_setting_name":
			if sv, ok := v.(string); ok {
				r.PeriodSettingName = sv
			}
		}
	}
}

func applyEntryPatch(r *m.TimetableEntryModel, patch map[string]any) {
	for k, v := range patch {
		switch k {
		case "timetable_entry_subject_id":
			if id, ok := v.(uuid.UUID); ok {
				r.TimetableEntrySubjectID = id
			}
		case "timetable_entry_teacher_id":
			if id, ok := v.(uuid.UUID); ok {
				r.TimetableEntryTeacherID = id
			}
		case "timetable_entry_period_number":
			if n, ok := v.(int); ok {
				r.TimetableEntryPeriodNumber = n
			}
		case "timetable_entry_start_time":
			if sv, ok := v.(string); ok {
				r.TimetableEntryStartTime = sv
			}
		case "timetable_entry_end_time":
			if sv, ok := v.(string); ok {
				r.TimetableEntryEndTime = sv
			}
		case "timetable_entry_academic_year":
			if sv, ok := v.(string); ok {
				r.TimetableEntryAcademicYear = sv
			}
		}
	}
}

func (s *MemoryStore) Delete(ctx context.Context, table string, filters Filters) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErrHook != nil {
		if err := s.DeleteErrHook(table, filters); err != nil {
			return 0, err
		}
	}

	var n int64
	switch table {
	case TablePeriodSettings:
		kept := s.PeriodSettings[:0]
		for _, r := range s.PeriodSettings {
			if matches(periodSettingFields(r), filters) {
				n++
				continue
			}
			kept = append(kept, r)
		}
		s.PeriodSettings = kept
	case TableTimetableEntries:
		kept := s.Entries[:0]
		for _, r := range s.Entries {
			if matches(entryFields(r), filters) {
				n++
				continue
			}
			kept = append(kept, r)
		}
		s.Entries = kept
	case TableTeacherSubjects:
		kept := s.TeacherSubjects[:0]
		for _, r := range s.TeacherSubjects {
			if matches(teacherSubjectFields(r), filters) {
				n++
				continue
			}
			kept = append(kept, r)
		}
		s.TeacherSubjects = kept
	default:
		return 0, fmt.Errorf("memory store: delete not supported for table %q", table)
	}
	return n, nil
}

// Transaction: snapshot-copy lalu restore kalau fn gagal.
func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	snapSettings := append([]m.PeriodSettingModel(nil), s.PeriodSettings...)
	snapEntries := append([]m.TimetableEntryModel(nil), s.Entries...)
	snapTS := append([]m.TeacherSubjectModel(nil), s.TeacherSubjects...)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.PeriodSettings = snapSettings
		s.Entries = snapEntries
		s.TeacherSubjects = snapTS
		s.mu.Unlock()
		return err
	}
	return nil
}
