// file: internals/features/school/timetables/service/day_copy_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/school/timetables/dto"
	"schoolku_backend/internals/features/school/timetables/store"
)

func TestCopyDaySnapshot(t *testing.T) {
	f := newFixture()

	for _, n := range []int{1, 3} {
		_, err := f.assign("Monday", n, f.mathID)
		require.NoError(t, err)
	}

	snap, err := f.daycopy.CopyDay(f.ctx, f.schoolID, f.classID, "Monday")
	require.NoError(t, err)
	assert.Equal(t, "Monday", snap.SourceDay)
	require.Len(t, snap.Slots, 2)

	assert.Equal(t, f.mathID, snap.Slots[0].SubjectID)
	assert.Equal(t, "08:00", snap.Slots[0].StartTime)
	assert.Equal(t, "08:45", snap.Slots[0].EndTime)
	assert.Equal(t, "Matematika", snap.Slots[0].Label)
	assert.Equal(t, "subject", snap.Slots[0].Type)
	assert.Equal(t, "09:30", snap.Slots[1].StartTime)
}

func TestCopyDayEmptySource(t *testing.T) {
	f := newFixture()
	_, err := f.daycopy.CopyDay(f.ctx, f.schoolID, f.classID, "Monday")
	assert.ErrorIs(t, err, ErrNothingToCopy)
}

func TestCopyDayDetachedFromLiveEntries(t *testing.T) {
	f := newFixture()

	_, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)

	snap, err := f.daycopy.CopyDay(f.ctx, f.schoolID, f.classID, "Monday")
	require.NoError(t, err)

	// hari sumber diubah setelah copy; snapshot tidak ikut berubah
	_, err = f.timetable.ClearDay(f.ctx, f.schoolID, f.classID, "Monday")
	require.NoError(t, err)
	require.Len(t, snap.Slots, 1)
	assert.Equal(t, f.mathID, snap.Slots[0].SubjectID)
}

func TestPasteDayReplacesTarget(t *testing.T) {
	f := newFixture()

	for _, n := range []int{1, 2} {
		_, err := f.assign("Monday", n, f.mathID)
		require.NoError(t, err)
	}
	// target sudah ada isi lain yang harus tergusur
	_, err := f.assign("Thursday", 5, f.mathID)
	require.NoError(t, err)

	snap, err := f.daycopy.CopyDay(f.ctx, f.schoolID, f.classID, "Monday")
	require.NoError(t, err)

	report, err := f.daycopy.PasteDay(f.ctx, f.schoolID, f.classID, "Thursday", snap)
	require.NoError(t, err)

	assert.Equal(t, "Thursday", report.TargetDay)
	assert.Equal(t, 1, report.Cleared)
	assert.Equal(t, 2, report.CreatedCount())
	require.Len(t, report.Results, 2)
	for _, res := range report.Results {
		assert.Equal(t, dto.PasteCreated, res.Status)
		assert.NotNil(t, res.EntryID)
	}

	thursday := f.timetable.StateDay(f.classID, "Thursday")
	require.Len(t, thursday, 2)
	assert.Equal(t, 1, thursday[0].TimetableEntryPeriodNumber)
	assert.Equal(t, 2, thursday[1].TimetableEntryPeriodNumber)
	assert.Equal(t, "08:00", thursday[0].TimetableEntryStartTime)

	// hari sumber tetap utuh
	monday := f.timetable.StateDay(f.classID, "Monday")
	assert.Len(t, monday, 2)
}

func TestPasteDaySkipsSubjectsWithoutTeacher(t *testing.T) {
	f := newFixture()

	for _, n := range []int{1, 2} {
		_, err := f.assign("Monday", n, f.mathID)
		require.NoError(t, err)
	}
	snap, err := f.daycopy.CopyDay(f.ctx, f.schoolID, f.classID, "Monday")
	require.NoError(t, err)

	// setelah copy, guru matematika dicabut → slot di-skip saat paste
	f.st.TeacherSubjects = nil

	report, err := f.daycopy.PasteDay(f.ctx, f.schoolID, f.classID, "Friday", snap)
	require.NoError(t, err)

	assert.Equal(t, 0, report.CreatedCount())
	require.Len(t, report.Results, 2)
	for _, res := range report.Results {
		assert.Equal(t, dto.PasteSkippedNoTeacher, res.Status)
	}
	assert.Empty(t, f.timetable.StateDay(f.classID, "Friday"))
}

func TestPasteDayResolvesTeacherFresh(t *testing.T) {
	f := newFixture()

	_, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)
	snap, err := f.daycopy.CopyDay(f.ctx, f.schoolID, f.classID, "Monday")
	require.NoError(t, err)

	// guru diganti di antara copy dan paste; hasil paste pakai guru baru
	newTeacher := uuid.New()
	f.st.TeacherSubjects[0].TeacherSubjectTeacherID = newTeacher

	report, err := f.daycopy.PasteDay(f.ctx, f.schoolID, f.classID, "Tuesday", snap)
	require.NoError(t, err)
	require.Equal(t, 1, report.CreatedCount())

	tuesday := f.timetable.StateDay(f.classID, "Tuesday")
	require.Len(t, tuesday, 1)
	assert.Equal(t, newTeacher, tuesday[0].TimetableEntryTeacherID)
}

func TestPasteDayRecordsCreateFailures(t *testing.T) {
	f := newFixture()

	for _, n := range []int{1, 2} {
		_, err := f.assign("Monday", n, f.mathID)
		require.NoError(t, err)
	}
	snap, err := f.daycopy.CopyDay(f.ctx, f.schoolID, f.classID, "Monday")
	require.NoError(t, err)

	calls := 0
	f.st.CreateErrHook = func(table string, row any) error {
		if table != store.TableTimetableEntries {
			return nil
		}
		calls++
		if calls == 1 {
			return assert.AnError
		}
		return nil
	}

	report, err := f.daycopy.PasteDay(f.ctx, f.schoolID, f.classID, "Saturday", snap)
	require.NoError(t, err)

	// slot pertama gagal tercatat, slot kedua tetap dibuat
	require.Len(t, report.Results, 2)
	assert.Equal(t, dto.PasteFailed, report.Results[0].Status)
	assert.NotEmpty(t, report.Results[0].Message)
	assert.Equal(t, dto.PasteCreated, report.Results[1].Status)
	assert.Len(t, f.timetable.StateDay(f.classID, "Saturday"), 1)
}

func TestPasteDayEmptySnapshot(t *testing.T) {
	f := newFixture()
	_, err := f.daycopy.PasteDay(f.ctx, f.schoolID, f.classID, "Monday", dto.DaySnapshot{})
	assert.ErrorIs(t, err, ErrNothingToCopy)
}

func TestPasteDayPeriodNumberFallback(t *testing.T) {
	f := newFixture()

	// snapshot dengan jam yang tidak ada di period settings (data lama)
	snap := dto.DaySnapshot{
		SourceDay: "Monday",
		Slots: []dto.SnapshotSlot{{
			SubjectID: f.mathID,
			StartTime: "10:30",
			EndTime:   "11:15",
			Type:      "subject",
		}},
	}

	report, err := f.daycopy.PasteDay(f.ctx, f.schoolID, f.classID, "Tuesday", snap)
	require.NoError(t, err)
	require.Equal(t, 1, report.CreatedCount())

	tuesday := f.timetable.StateDay(f.classID, "Tuesday")
	require.Len(t, tuesday, 1)
	// rumus lama: (10-8)*2+1 = 5
	assert.Equal(t, 5, tuesday[0].TimetableEntryPeriodNumber)
}
