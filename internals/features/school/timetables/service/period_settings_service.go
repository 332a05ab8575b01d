// file: internals/features/school/timetables/service/period_settings_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	m "schoolku_backend/internals/features/school/timetables/model"
	"schoolku_backend/internals/features/school/timetables/store"
	"schoolku_backend/internals/helpers/timefmt"
)

/* =========================
   Period Settings Manager
   =========================
   Pemilik daftar slot jam pelajaran per (tenant, tahun ajaran).
   Add/Remove/Update slot murni di memori; persist hanya lewat
   SaveSettings (full replace untuk scope itu). */

type PeriodSettingsService struct {
	Store store.Store
}

func NewPeriodSettingsService(st store.Store) *PeriodSettingsService {
	return &PeriodSettingsService{Store: st}
}

// DefaultSettings: grid bawaan 10 slot x 45 menit, mulai 08:00,
// dua jeda istirahat (setelah slot 3 dan slot 6), selesai 17:15.
func DefaultSettings(schoolID uuid.UUID, year string) []m.PeriodSettingModel {
	starts := []string{
		"08:00", "08:45", "09:30", // 1-3
		"11:00", "11:45", "12:30", // 4-6 (istirahat pagi 10:15-11:00)
		"14:15", "15:00", "15:45", "16:30", // 7-10 (istirahat siang 13:15-14:15)
	}
	out := make([]m.PeriodSettingModel, 0, constants.DefaultSlotCount)
	for i, start := range starts {
		end := timefmt.AddMinutes(start, constants.DefaultSlotMinutes)
		out = append(out, m.PeriodSettingModel{
			PeriodSettingSchoolID:        schoolID,
			PeriodSettingNumber:          i + 1,
			PeriodSettingStartTime:       start,
			PeriodSettingEndTime:         end,
			PeriodSettingDurationMinutes: constants.DefaultSlotMinutes,
			PeriodSettingName:            fmt.Sprintf("Period %d", i+1),
			PeriodSettingAcademicYear:    year,
			PeriodSettingPeriodType:      constants.PeriodTypeClass,
			PeriodSettingIsActive:        true,
		})
	}
	return out
}

// LoadSettings: baca slot aktif untuk scope; kalau belum ada sama
// sekali, generate default dan langsung persist.
func (s *PeriodSettingsService) LoadSettings(ctx context.Context, schoolID uuid.UUID, year string) ([]m.PeriodSettingModel, error) {
	if err := requireTenant(schoolID); err != nil {
		return nil, err
	}

	var rows []m.PeriodSettingModel
	err := s.Store.Read(ctx, store.TablePeriodSettings, store.Filters{
		"period_setting_school_id":     schoolID,
		"period_setting_academic_year": year,
		"period_setting_period_type":   constants.PeriodTypeClass,
		"period_setting_is_active":     true,
	}, "period_setting_start_time", &rows)
	if err != nil {
		return nil, storeErr("read period settings", err)
	}
	if len(rows) > 0 {
		return rows, nil
	}

	defaults := DefaultSettings(schoolID, year)
	saved, err := s.SaveSettings(ctx, schoolID, year, defaults)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// AddSlot: slot baru nomor len+1, durasi default, nyambung dari
// end time slot terakhir.
func (s *PeriodSettingsService) AddSlot(slots []m.PeriodSettingModel) []m.PeriodSettingModel {
	start := constants.DefaultFirstSlotStart
	if n := len(slots); n > 0 {
		start = slots[n-1].PeriodSettingEndTime
	}
	end := timefmt.AddMinutes(start, constants.DefaultSlotMinutes)

	next := m.PeriodSettingModel{
		PeriodSettingNumber:          len(slots) + 1,
		PeriodSettingStartTime:       start,
		PeriodSettingEndTime:         end,
		PeriodSettingDurationMinutes: constants.DefaultSlotMinutes,
		PeriodSettingName:            fmt.Sprintf("Period %d", len(slots)+1),
	}
	return append(append([]m.PeriodSettingModel{}, slots...), next)
}

// RemoveSlot: buang slot index, sisanya dinomori ulang 1..n.
func (s *PeriodSettingsService) RemoveSlot(slots []m.PeriodSettingModel, index int) []m.PeriodSettingModel {
	if index < 0 || index >= len(slots) {
		return slots
	}
	out := make([]m.PeriodSettingModel, 0, len(slots)-1)
	out = append(out, slots[:index]...)
	out = append(out, slots[index+1:]...)
	return Renumber(out)
}

// Renumber: paksa nomor slot kontigu 1..n (invariant renumbering).
func Renumber(slots []m.PeriodSettingModel) []m.PeriodSettingModel {
	for i := range slots {
		slots[i].PeriodSettingNumber = i + 1
	}
	return slots
}

// UpdateSlot: set start_time / end_time / name; perubahan waktu selalu
// menghitung ulang durasi. Durasi nol/negatif tidak ditolak di layer
// ini — divalidasi visual di UI.
func (s *PeriodSettingsService) UpdateSlot(slots []m.PeriodSettingModel, index int, field, value string) ([]m.PeriodSettingModel, error) {
	if index < 0 || index >= len(slots) {
		return slots, fmt.Errorf("slot index %d out of range", index)
	}
	out := append([]m.PeriodSettingModel{}, slots...)
	slot := &out[index]

	switch field {
	case "start_time":
		if !timefmt.Valid(value) {
			return slots, fmt.Errorf("invalid start_time %q (expected HH:MM)", value)
		}
		slot.PeriodSettingStartTime = value
	case "end_time":
		if !timefmt.Valid(value) {
			return slots, fmt.Errorf("invalid end_time %q (expected HH:MM)", value)
		}
		slot.PeriodSettingEndTime = value
	case "name":
		slot.PeriodSettingName = strings.TrimSpace(value)
		return out, nil
	default:
		return slots, fmt.Errorf("unknown slot field %q", field)
	}

	slot.PeriodSettingDurationMinutes = timefmt.DurationMinutes(slot.PeriodSettingStartTime, slot.PeriodSettingEndTime)
	return out, nil
}

// SaveSettings: delete-all-for-scope lalu bulk insert, dibungkus
// transaksi store. Kalau store tidak atomik, kegagalan di tengah
// dilaporkan sebagai PartialFailure oleh caller lewat re-fetch.
func (s *PeriodSettingsService) SaveSettings(ctx context.Context, schoolID uuid.UUID, year string, slots []m.PeriodSettingModel) ([]m.PeriodSettingModel, error) {
	if err := requireTenant(schoolID); err != nil {
		return nil, err
	}

	saved := make([]m.PeriodSettingModel, 0, len(slots))
	err := s.Store.Transaction(ctx, func(tx store.Store) error {
		if _, er := tx.Delete(ctx, store.TablePeriodSettings, store.Filters{
			"period_setting_school_id":     schoolID,
			"period_setting_academic_year": year,
			"period_setting_period_type":   constants.PeriodTypeClass,
		}); er != nil {
			return storeErr("delete period settings", er)
		}

		for i, slot := range slots {
			row := m.PeriodSettingModel{
				PeriodSettingSchoolID:        schoolID,
				PeriodSettingNumber:          i + 1,
				PeriodSettingStartTime:       slot.PeriodSettingStartTime,
				PeriodSettingEndTime:         slot.PeriodSettingEndTime,
				PeriodSettingDurationMinutes: timefmt.DurationMinutes(slot.PeriodSettingStartTime, slot.PeriodSettingEndTime),
				PeriodSettingName:            slot.PeriodSettingName,
				PeriodSettingAcademicYear:    year,
				PeriodSettingPeriodType:      constants.PeriodTypeClass,
				PeriodSettingIsActive:        true,
			}
			if er := tx.Create(ctx, store.TablePeriodSettings, &row); er != nil {
				return storeErr("insert period setting", er)
			}
			saved = append(saved, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// FindSlotByNumber: cari slot berdasarkan nomor periode.
func FindSlotByNumber(slots []m.PeriodSettingModel, number int) (m.PeriodSettingModel, bool) {
	for _, s := range slots {
		if s.PeriodSettingNumber == number {
			return s, true
		}
	}
	return m.PeriodSettingModel{}, false
}

// FindSlotByStart: cari slot berdasarkan start time (lookup pengganti
// rumus aritmetika jam lama).
func FindSlotByStart(slots []m.PeriodSettingModel, start string) (m.PeriodSettingModel, bool) {
	for _, s := range slots {
		if s.PeriodSettingStartTime == start {
			return s, true
		}
	}
	return m.PeriodSettingModel{}, false
}
