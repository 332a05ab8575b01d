// file: internals/features/school/timetables/service/day_copy_service.go
package service

import (
	"context"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/timetables/dto"
	m "schoolku_backend/internals/features/school/timetables/model"
	"schoolku_backend/internals/features/school/timetables/store"
	"schoolku_backend/internals/helpers/timefmt"
)

/* =========================
   Day Copy / Paste
   =========================
   Snapshot transient (tidak dipersist); paste = clear target lalu
   create per-slot berurutan. Guru TIDAK dibawa dari snapshot —
   di-resolve ulang saat paste supaya perubahan penugasan kebawa. */

type DayCopyService struct {
	Store     store.Store
	Resolver  *TeacherResolver
	Settings  *PeriodSettingsService
	Timetable *TimetableService
}

func NewDayCopyService(st store.Store, tt *TimetableService) *DayCopyService {
	return &DayCopyService{
		Store:     st,
		Resolver:  tt.Resolver,
		Settings:  NewPeriodSettingsService(st),
		Timetable: tt,
	}
}

// CopyDay: potret satu hari jadi snapshot lepas (deep copy, tidak ada
// pointer ke entry asli). Hari kosong = ErrNothingToCopy.
func (s *DayCopyService) CopyDay(ctx context.Context, schoolID, classID uuid.UUID, sourceDay string) (dto.DaySnapshot, error) {
	if err := requireTenant(schoolID); err != nil {
		return dto.DaySnapshot{}, err
	}
	if !constants.IsSchoolDay(sourceDay) {
		return dto.DaySnapshot{}, ErrInvalidDay
	}

	entries, err := s.Timetable.RefreshDay(ctx, schoolID, classID, sourceDay)
	if err != nil {
		return dto.DaySnapshot{}, err
	}
	if len(entries) == 0 {
		return dto.DaySnapshot{}, ErrNothingToCopy
	}

	names, err := s.subjectNames(ctx, schoolID, classID)
	if err != nil {
		return dto.DaySnapshot{}, err
	}

	snap := dto.DaySnapshot{
		SourceDay: sourceDay,
		Slots:     make([]dto.SnapshotSlot, 0, len(entries)),
	}
	for _, e := range entries {
		snap.Slots = append(snap.Slots, dto.SnapshotSlot{
			SubjectID: e.TimetableEntrySubjectID,
			StartTime: e.TimetableEntryStartTime,
			EndTime:   e.TimetableEntryEndTime,
			Label:     names[e.TimetableEntrySubjectID],
			Type:      "subject",
		})
	}
	return snap, nil
}

// PasteDay: tulis snapshot ke hari target. Langkah: clear target,
// lalu satu create per slot (berurutan, bukan batch). Slot yang
// mapelnya sudah tidak punya guru di-skip dan dicatat, bukan gagal
// total. Hasil akhir selalu di-refetch dari store.
func (s *DayCopyService) PasteDay(ctx context.Context, schoolID, classID uuid.UUID, targetDay string, snap dto.DaySnapshot) (dto.PasteReport, error) {
	if err := requireTenant(schoolID); err != nil {
		return dto.PasteReport{}, err
	}
	if !constants.IsSchoolDay(targetDay) {
		return dto.PasteReport{}, ErrInvalidDay
	}
	if len(snap.Slots) == 0 {
		return dto.PasteReport{}, ErrNothingToCopy
	}

	cleared, err := s.Timetable.ClearDay(ctx, schoolID, classID, targetDay)
	if err != nil {
		return dto.PasteReport{}, err
	}

	year := s.Timetable.Year()
	settings, err := s.Settings.LoadSettings(ctx, schoolID, year)
	if err != nil {
		return dto.PasteReport{}, err
	}

	report := dto.PasteReport{
		TargetDay: targetDay,
		Cleared:   cleared,
		Results:   make([]dto.PasteSlotResult, 0, len(snap.Slots)),
	}

	for _, slot := range snap.Slots {
		res := dto.PasteSlotResult{StartTime: slot.StartTime}

		teacherID, er := s.Resolver.ResolveTeacher(ctx, schoolID, slot.SubjectID)
		if er != nil {
			res.Status = dto.PasteFailed
			res.Message = er.Error()
			report.Results = append(report.Results, res)
			continue
		}
		if teacherID == uuid.Nil {
			res.Status = dto.PasteSkippedNoTeacher
			res.Message = "subject has no teacher assigned"
			report.Results = append(report.Results, res)
			continue
		}

		entry := m.TimetableEntryModel{
			TimetableEntrySchoolID:     schoolID,
			TimetableEntryClassID:      classID,
			TimetableEntrySubjectID:    slot.SubjectID,
			TimetableEntryTeacherID:    teacherID,
			TimetableEntryDayOfWeek:    targetDay,
			TimetableEntryPeriodNumber: s.periodNumberFor(settings, slot.StartTime),
			TimetableEntryStartTime:    slot.StartTime,
			TimetableEntryEndTime:      slot.EndTime,
			TimetableEntryAcademicYear: year,
		}
		if er := s.Store.Create(ctx, store.TableTimetableEntries, &entry); er != nil {
			res.Status = dto.PasteFailed
			res.Message = er.Error()
			report.Results = append(report.Results, res)
			continue
		}

		id := entry.TimetableEntryID
		res.Status = dto.PasteCreated
		res.EntryID = &id
		report.Results = append(report.Results, res)
	}

	// ground truth menang atas hasil loop di atas
	if _, er := s.Timetable.RefreshDay(ctx, schoolID, classID, targetDay); er != nil {
		return report, er
	}
	return report, nil
}

// periodNumberFor: nomor periode dari start time via period settings;
// rumus jam lama hanya fallback untuk data yang slotnya sudah digeser.
func (s *DayCopyService) periodNumberFor(settings []m.PeriodSettingModel, start string) int {
	if slot, ok := FindSlotByStart(settings, start); ok {
		return slot.PeriodSettingNumber
	}
	n := (timefmt.Hour(start)-8)*2 + 1
	if n < 1 {
		n = 1
	}
	return n
}

func (s *DayCopyService) subjectNames(ctx context.Context, schoolID, classID uuid.UUID) (map[uuid.UUID]string, error) {
	var rows []m.SubjectModel
	err := s.Store.Read(ctx, store.TableSubjects, store.Filters{
		"subject_school_id": schoolID,
		"subject_class_id":  classID,
	}, "", &rows)
	if err != nil {
		return nil, storeErr("read subjects", err)
	}
	out := make(map[uuid.UUID]string, len(rows))
	for _, r := range rows {
		out[r.SubjectID] = r.SubjectName
	}
	return out, nil
}
