// file: internals/features/school/timetables/service/timetable_service.go
package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	m "schoolku_backend/internals/features/school/timetables/model"
	"schoolku_backend/internals/features/school/timetables/store"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Timetable Entry Manager
   =========================
   State machine per slot: Empty → Occupied → Empty / Occupied(lain).
   Invariant: maksimal satu entry per (tenant, class, day, period).
   Manager ini satu-satunya penulis cache in-memory; caller hanya
   menerima salinan. */

type TimetableService struct {
	Store    store.Store
	Resolver *TeacherResolver

	// Year: provider tahun ajaran untuk baris baru (bisa dioverride di test).
	Year func() string

	mu    sync.Mutex
	state map[uuid.UUID]map[string][]m.TimetableEntryModel // classID → day → entries (sorted by start)
}

func NewTimetableService(st store.Store) *TimetableService {
	return &TimetableService{
		Store:    st,
		Resolver: NewTeacherResolver(st),
		Year:     helper.CurrentAcademicYear,
		state:    make(map[uuid.UUID]map[string][]m.TimetableEntryModel),
	}
}

// SlotAssignment: satu baris grid harian (slot + entry penghuninya).
type SlotAssignment struct {
	Slot  m.PeriodSettingModel
	Entry *m.TimetableEntryModel
}

/* =========================
   Lookup
   ========================= */

// findEntry: cari entry slot. Primary key logis (day, period_number);
// match by start_time hanya fallback untuk baris lama yang nomornya
// belum konsisten.
func (s *TimetableService) findEntry(ctx context.Context, schoolID, classID uuid.UUID, day string, periodNumber int, startTime string) (*m.TimetableEntryModel, error) {
	var rows []m.TimetableEntryModel
	err := s.Store.Read(ctx, store.TableTimetableEntries, store.Filters{
		"timetable_entry_school_id":     schoolID,
		"timetable_entry_class_id":      classID,
		"timetable_entry_day_of_week":   day,
		"timetable_entry_period_number": periodNumber,
	}, "", &rows)
	if err != nil {
		return nil, storeErr("read timetable entry", err)
	}
	if len(rows) > 0 {
		r := rows[0]
		return &r, nil
	}

	if startTime == "" {
		return nil, nil
	}
	err = s.Store.Read(ctx, store.TableTimetableEntries, store.Filters{
		"timetable_entry_school_id":   schoolID,
		"timetable_entry_class_id":    classID,
		"timetable_entry_day_of_week": day,
		"timetable_entry_start_time":  startTime,
	}, "", &rows)
	if err != nil {
		return nil, storeErr("read timetable entry", err)
	}
	if len(rows) > 0 {
		r := rows[0]
		return &r, nil
	}
	return nil, nil
}

/* =========================
   Mutations
   ========================= */

// AssignSubject: isi/ganti slot (class, day, slot). subjectID uuid.Nil
// berarti kosongkan slot. Times entry selalu diambil dari slot period
// settings, bukan dari client.
func (s *TimetableService) AssignSubject(ctx context.Context, schoolID, classID uuid.UUID, day string, slot m.PeriodSettingModel, subjectID uuid.UUID) (*m.TimetableEntryModel, error) {
	if err := requireTenant(schoolID); err != nil {
		return nil, err
	}
	if !constants.IsSchoolDay(day) {
		return nil, ErrInvalidDay
	}

	// subject kosong → clear slot (kalau ada isinya)
	if subjectID == uuid.Nil {
		existing, err := s.findEntry(ctx, schoolID, classID, day, slot.PeriodSettingNumber, slot.PeriodSettingStartTime)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if err := s.RemoveEntry(ctx, schoolID, classID, day, existing.TimetableEntryID); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	// I2: resolve guru dulu; tanpa guru tidak ada perubahan state.
	teacherID, err := s.Resolver.ResolveTeacher(ctx, schoolID, subjectID)
	if err != nil {
		return nil, err
	}
	if teacherID == uuid.Nil {
		return nil, ErrNoTeacherAssigned
	}

	existing, err := s.findEntry(ctx, schoolID, classID, day, slot.PeriodSettingNumber, slot.PeriodSettingStartTime)
	if err != nil {
		return nil, err
	}

	var entry m.TimetableEntryModel
	if existing != nil {
		patch := map[string]any{
			"timetable_entry_subject_id":    subjectID,
			"timetable_entry_teacher_id":    teacherID,
			"timetable_entry_period_number": slot.PeriodSettingNumber,
			"timetable_entry_start_time":    slot.PeriodSettingStartTime,
			"timetable_entry_end_time":      slot.PeriodSettingEndTime,
		}
		if err := s.Store.Update(ctx, store.TableTimetableEntries, existing.TimetableEntryID, patch); err != nil {
			return nil, storeErr("update timetable entry", err)
		}
		entry = *existing
		entry.TimetableEntrySubjectID = subjectID
		entry.TimetableEntryTeacherID = teacherID
		entry.TimetableEntryPeriodNumber = slot.PeriodSettingNumber
		entry.TimetableEntryStartTime = slot.PeriodSettingStartTime
		entry.TimetableEntryEndTime = slot.PeriodSettingEndTime
	} else {
		entry = m.TimetableEntryModel{
			TimetableEntrySchoolID:     schoolID,
			TimetableEntryClassID:      classID,
			TimetableEntrySubjectID:    subjectID,
			TimetableEntryTeacherID:    teacherID,
			TimetableEntryDayOfWeek:    day,
			TimetableEntryPeriodNumber: slot.PeriodSettingNumber,
			TimetableEntryStartTime:    slot.PeriodSettingStartTime,
			TimetableEntryEndTime:      slot.PeriodSettingEndTime,
			TimetableEntryAcademicYear: s.Year(),
		}
		if err := s.Store.Create(ctx, store.TableTimetableEntries, &entry); err != nil {
			return nil, storeErr("create timetable entry", err)
		}
	}

	s.syncSlot(classID, day, entry)
	return &entry, nil
}

// RemoveEntry: hapus satu entry by id. Idempotent — baris yang sudah
// tidak ada bukan error.
func (s *TimetableService) RemoveEntry(ctx context.Context, schoolID, classID uuid.UUID, day string, entryID uuid.UUID) error {
	if err := requireTenant(schoolID); err != nil {
		return err
	}

	_, err := s.Store.Delete(ctx, store.TableTimetableEntries, store.Filters{
		"timetable_entry_id":        entryID,
		"timetable_entry_school_id": schoolID,
	})
	if err != nil {
		return storeErr("delete timetable entry", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	days, ok := s.state[classID]
	if !ok {
		return nil
	}
	kept := days[day][:0]
	for _, e := range days[day] {
		if e.TimetableEntryID != entryID {
			kept = append(kept, e)
		}
	}
	days[day] = kept
	return nil
}

// ClearDay: hapus semua entry satu hari, satu-satu (bukan batch).
// Delete yang sudah sukses tidak di-rollback; kegagalan sebagian
// dilaporkan sebagai PartialFailure dan state direkonsiliasi dari store.
func (s *TimetableService) ClearDay(ctx context.Context, schoolID, classID uuid.UUID, day string) (int, error) {
	if err := requireTenant(schoolID); err != nil {
		return 0, err
	}
	if !constants.IsSchoolDay(day) {
		return 0, ErrInvalidDay
	}

	entries, err := s.readDay(ctx, schoolID, classID, day)
	if err != nil {
		return 0, err
	}

	deleted := 0
	var errs []error
	for _, e := range entries {
		if _, er := s.Store.Delete(ctx, store.TableTimetableEntries, store.Filters{
			"timetable_entry_id":        e.TimetableEntryID,
			"timetable_entry_school_id": schoolID,
		}); er != nil {
			errs = append(errs, er)
			continue
		}
		deleted++
	}

	// rekonsiliasi: apapun hasilnya, state ikut ground truth
	if _, er := s.RefreshDay(ctx, schoolID, classID, day); er != nil && len(errs) == 0 {
		errs = append(errs, er)
	}

	if len(errs) > 0 {
		if deleted == 0 {
			return 0, storeErr("clear day", errs[0])
		}
		return deleted, &PartialFailureError{Op: "clear day", Succeeded: deleted, Failed: len(errs), Errs: errs}
	}
	return deleted, nil
}

/* =========================
   Reads
   ========================= */

func (s *TimetableService) readDay(ctx context.Context, schoolID, classID uuid.UUID, day string) ([]m.TimetableEntryModel, error) {
	var rows []m.TimetableEntryModel
	err := s.Store.Read(ctx, store.TableTimetableEntries, store.Filters{
		"timetable_entry_school_id":   schoolID,
		"timetable_entry_class_id":    classID,
		"timetable_entry_day_of_week": day,
	}, "timetable_entry_start_time", &rows)
	if err != nil {
		return nil, storeErr("read day entries", err)
	}
	return rows, nil
}

// RefreshDay: re-fetch satu hari dari store dan timpa cache lokal
// (dipakai setelah operasi multi-langkah / partial failure).
func (s *TimetableService) RefreshDay(ctx context.Context, schoolID, classID uuid.UUID, day string) ([]m.TimetableEntryModel, error) {
	rows, err := s.readDay(ctx, schoolID, classID, day)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.state[classID] == nil {
		s.state[classID] = make(map[string][]m.TimetableEntryModel)
	}
	s.state[classID][day] = append([]m.TimetableEntryModel(nil), rows...)
	s.mu.Unlock()
	return rows, nil
}

// ListSlotsForDay: grid harian — tiap slot period settings dipasangkan
// dengan entry penghuninya (match by start time), nil kalau kosong.
func (s *TimetableService) ListSlotsForDay(ctx context.Context, schoolID, classID uuid.UUID, day string, settings []m.PeriodSettingModel) ([]SlotAssignment, error) {
	if err := requireTenant(schoolID); err != nil {
		return nil, err
	}
	if !constants.IsSchoolDay(day) {
		return nil, ErrInvalidDay
	}

	entries, err := s.RefreshDay(ctx, schoolID, classID, day)
	if err != nil {
		return nil, err
	}

	byStart := make(map[string]m.TimetableEntryModel, len(entries))
	for _, e := range entries {
		byStart[e.TimetableEntryStartTime] = e
	}

	out := make([]SlotAssignment, 0, len(settings))
	for _, slot := range settings {
		pair := SlotAssignment{Slot: slot}
		if e, ok := byStart[slot.PeriodSettingStartTime]; ok {
			ec := e
			pair.Entry = &ec
		}
		out = append(out, pair)
	}
	return out, nil
}

// WeekForClass: seluruh minggu, dikelompokkan per hari, sorted by start.
func (s *TimetableService) WeekForClass(ctx context.Context, schoolID, classID uuid.UUID) (map[string][]m.TimetableEntryModel, error) {
	if err := requireTenant(schoolID); err != nil {
		return nil, err
	}

	var rows []m.TimetableEntryModel
	err := s.Store.Read(ctx, store.TableTimetableEntries, store.Filters{
		"timetable_entry_school_id": schoolID,
		"timetable_entry_class_id":  classID,
	}, "timetable_entry_start_time", &rows)
	if err != nil {
		return nil, storeErr("read class entries", err)
	}

	grouped := make(map[string][]m.TimetableEntryModel, len(constants.SchoolDays))
	for _, d := range constants.SchoolDays {
		grouped[d] = []m.TimetableEntryModel{}
	}
	for _, e := range rows {
		grouped[e.TimetableEntryDayOfWeek] = append(grouped[e.TimetableEntryDayOfWeek], e)
	}

	s.mu.Lock()
	s.state[classID] = make(map[string][]m.TimetableEntryModel, len(grouped))
	for d, es := range grouped {
		s.state[classID][d] = append([]m.TimetableEntryModel(nil), es...)
	}
	s.mu.Unlock()

	return grouped, nil
}

// StateDay: salinan cache lokal satu hari (read-only untuk caller).
func (s *TimetableService) StateDay(classID uuid.UUID, day string) []m.TimetableEntryModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if days, ok := s.state[classID]; ok {
		return append([]m.TimetableEntryModel(nil), days[day]...)
	}
	return nil
}

/* =========================
   Local state
   ========================= */

// syncSlot: timpa entry lokal untuk slot itu (buang yang nomor periode
// atau start time-nya sama), lalu sort ulang by start time.
func (s *TimetableService) syncSlot(classID uuid.UUID, day string, entry m.TimetableEntryModel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state[classID] == nil {
		s.state[classID] = make(map[string][]m.TimetableEntryModel)
	}
	current := s.state[classID][day]
	next := make([]m.TimetableEntryModel, 0, len(current)+1)
	for _, e := range current {
		if e.TimetableEntryPeriodNumber == entry.TimetableEntryPeriodNumber ||
			e.TimetableEntryStartTime == entry.TimetableEntryStartTime {
			continue
		}
		next = append(next, e)
	}
	next = append(next, entry)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].TimetableEntryStartTime < next[j].TimetableEntryStartTime
	})
	s.state[classID][day] = next
}
