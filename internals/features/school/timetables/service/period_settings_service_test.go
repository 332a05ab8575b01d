// file: internals/features/school/timetables/service/period_settings_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/school/timetables/store"
)

func TestDefaultSettingsGrid(t *testing.T) {
	defaults := DefaultSettings(uuid.New(), testYear)
	require.Len(t, defaults, 10)

	// slot pertama 08:00-08:45, 45 menit
	assert.Equal(t, 1, defaults[0].PeriodSettingNumber)
	assert.Equal(t, "08:00", defaults[0].PeriodSettingStartTime)
	assert.Equal(t, "08:45", defaults[0].PeriodSettingEndTime)
	assert.Equal(t, 45, defaults[0].PeriodSettingDurationMinutes)

	// slot terakhir selesai 17:15
	assert.Equal(t, 10, defaults[9].PeriodSettingNumber)
	assert.Equal(t, "17:15", defaults[9].PeriodSettingEndTime)

	// dua jeda istirahat: setelah slot 3 dan setelah slot 6
	assert.Equal(t, "10:15", defaults[2].PeriodSettingEndTime)
	assert.Equal(t, "11:00", defaults[3].PeriodSettingStartTime)
	assert.Equal(t, "13:15", defaults[5].PeriodSettingEndTime)
	assert.Equal(t, "14:15", defaults[6].PeriodSettingStartTime)

	for i, s := range defaults {
		assert.Equal(t, i+1, s.PeriodSettingNumber)
		assert.Equal(t, 45, s.PeriodSettingDurationMinutes)
	}
}

func TestLoadSettingsSeedsDefaultsOnce(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewPeriodSettingsService(st)
	schoolID := uuid.New()

	first, err := svc.LoadSettings(context.Background(), schoolID, testYear)
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Len(t, st.PeriodSettings, 10)

	// load kedua membaca baris yang sama, bukan generate ulang
	second, err := svc.LoadSettings(context.Background(), schoolID, testYear)
	require.NoError(t, err)
	require.Len(t, second, 10)
	assert.Equal(t, first[0].PeriodSettingID, second[0].PeriodSettingID)
	assert.Len(t, st.PeriodSettings, 10)
}

func TestLoadSettingsTenantGuard(t *testing.T) {
	svc := NewPeriodSettingsService(store.NewMemoryStore())
	_, err := svc.LoadSettings(context.Background(), uuid.Nil, testYear)
	assert.ErrorIs(t, err, ErrTenantNotReady)
}

func TestLoadSettingsScopedPerTenantAndYear(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewPeriodSettingsService(st)
	schoolA := uuid.New()
	schoolB := uuid.New()

	_, err := svc.LoadSettings(context.Background(), schoolA, testYear)
	require.NoError(t, err)
	_, err = svc.LoadSettings(context.Background(), schoolB, testYear)
	require.NoError(t, err)
	_, err = svc.LoadSettings(context.Background(), schoolA, "2026-27")
	require.NoError(t, err)

	// tiga scope, masing-masing grid sendiri
	assert.Len(t, st.PeriodSettings, 30)
}

func TestAddSlotContinuesFromLastEnd(t *testing.T) {
	f := newFixture()

	slots := f.periods.AddSlot(f.settings)
	require.Len(t, slots, 11)
	assert.Equal(t, 11, slots[10].PeriodSettingNumber)
	assert.Equal(t, "17:15", slots[10].PeriodSettingStartTime)
	assert.Equal(t, "18:00", slots[10].PeriodSettingEndTime)

	// daftar kosong mulai dari jam default
	fromEmpty := f.periods.AddSlot(nil)
	require.Len(t, fromEmpty, 1)
	assert.Equal(t, "08:00", fromEmpty[0].PeriodSettingStartTime)
}

func TestRemoveSlotRenumbers(t *testing.T) {
	f := newFixture()

	slots := f.periods.RemoveSlot(f.settings, 2) // buang slot nomor 3
	require.Len(t, slots, 9)
	for i, s := range slots {
		assert.Equal(t, i+1, s.PeriodSettingNumber)
	}
	// slot 09:30 hilang, penerusnya naik jadi nomor 3
	assert.Equal(t, "11:00", slots[2].PeriodSettingStartTime)

	// index di luar range = no-op
	same := f.periods.RemoveSlot(slots, 99)
	assert.Len(t, same, 9)
}

func TestUpdateSlotRecomputesDuration(t *testing.T) {
	f := newFixture()

	slots, err := f.periods.UpdateSlot(f.settings, 0, "end_time", "09:00")
	require.NoError(t, err)
	assert.Equal(t, 60, slots[0].PeriodSettingDurationMinutes)

	// durasi negatif diterima di layer ini
	slots, err = f.periods.UpdateSlot(slots, 0, "start_time", "09:30")
	require.NoError(t, err)
	assert.Equal(t, -30, slots[0].PeriodSettingDurationMinutes)

	_, err = f.periods.UpdateSlot(slots, 0, "start_time", "9am")
	assert.Error(t, err)

	_, err = f.periods.UpdateSlot(slots, 0, "color", "red")
	assert.Error(t, err)

	slots, err = f.periods.UpdateSlot(slots, 1, "name", "  Upacara  ")
	require.NoError(t, err)
	assert.Equal(t, "Upacara", slots[1].PeriodSettingName)
}

func TestSaveSettingsReplacesScope(t *testing.T) {
	f := newFixture()

	// simpan grid baru 2 slot; scope lama diganti habis
	slots := f.settings[:2]
	slots[0].PeriodSettingName = "Jam Pertama"
	saved, err := f.periods.SaveSettings(f.ctx, f.schoolID, testYear, slots)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Len(t, f.st.PeriodSettings, 2)
	assert.Equal(t, "Jam Pertama", saved[0].PeriodSettingName)

	// nomor dipaksa 1..n walau input acak
	slots[0].PeriodSettingNumber = 7
	slots[1].PeriodSettingNumber = 3
	saved, err = f.periods.SaveSettings(f.ctx, f.schoolID, testYear, slots)
	require.NoError(t, err)
	assert.Equal(t, 1, saved[0].PeriodSettingNumber)
	assert.Equal(t, 2, saved[1].PeriodSettingNumber)
}

func TestSaveSettingsRollsBackOnCreateError(t *testing.T) {
	f := newFixture()
	boom := assert.AnError

	calls := 0
	f.st.CreateErrHook = func(table string, row any) error {
		if table != store.TablePeriodSettings {
			return nil
		}
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	}

	_, err := f.periods.SaveSettings(f.ctx, f.schoolID, testYear, f.settings[:3])
	require.Error(t, err)
	// transaksi memory store restore snapshot: grid lama utuh
	assert.Len(t, f.st.PeriodSettings, 10)
}
