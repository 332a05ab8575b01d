// file: internals/features/school/timetables/service/timetable_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "schoolku_backend/internals/features/school/timetables/model"
	"schoolku_backend/internals/features/school/timetables/store"
)

func TestAssignSubjectCreatesEntry(t *testing.T) {
	f := newFixture()

	entry, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, f.schoolID, entry.TimetableEntrySchoolID)
	assert.Equal(t, f.classID, entry.TimetableEntryClassID)
	assert.Equal(t, f.mathID, entry.TimetableEntrySubjectID)
	assert.Equal(t, f.teacherID, entry.TimetableEntryTeacherID)
	assert.Equal(t, "Monday", entry.TimetableEntryDayOfWeek)
	assert.Equal(t, 1, entry.TimetableEntryPeriodNumber)
	// waktu entry dari period settings, bukan dari client
	assert.Equal(t, "08:00", entry.TimetableEntryStartTime)
	assert.Equal(t, "08:45", entry.TimetableEntryEndTime)
	assert.Equal(t, testYear, entry.TimetableEntryAcademicYear)

	require.Len(t, f.st.Entries, 1)
	assert.NotEqual(t, uuid.Nil, entry.TimetableEntryID)

	state := f.timetable.StateDay(f.classID, "Monday")
	require.Len(t, state, 1)
	assert.Equal(t, entry.TimetableEntryID, state[0].TimetableEntryID)
}

func TestAssignSubjectWithoutTeacherRejected(t *testing.T) {
	f := newFixture()

	entry, err := f.assign("Monday", 1, f.artID)
	assert.ErrorIs(t, err, ErrNoTeacherAssigned)
	assert.Nil(t, entry)
	// tidak ada perubahan state sama sekali
	assert.Empty(t, f.st.Entries)
	assert.Empty(t, f.timetable.StateDay(f.classID, "Monday"))
}

func TestAssignSubjectReplacesOccupiedSlot(t *testing.T) {
	f := newFixture()

	secondSubject := uuid.New()
	f.st.Subjects = append(f.st.Subjects, m.SubjectModel{
		SubjectID: secondSubject, SubjectSchoolID: f.schoolID,
		SubjectClassID: f.classID, SubjectName: "IPA", SubjectAcademicYear: testYear,
	})
	f.st.TeacherSubjects = append(f.st.TeacherSubjects, m.TeacherSubjectModel{
		TeacherSubjectID: uuid.New(), TeacherSubjectSchoolID: f.schoolID,
		TeacherSubjectTeacherID: f.teacherID, TeacherSubjectSubjectID: secondSubject,
	})

	first, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)
	second, err := f.assign("Monday", 1, secondSubject)
	require.NoError(t, err)

	// replace in place: tetap satu baris, id tidak berubah
	require.Len(t, f.st.Entries, 1)
	assert.Equal(t, first.TimetableEntryID, second.TimetableEntryID)
	assert.Equal(t, secondSubject, f.st.Entries[0].TimetableEntrySubjectID)

	state := f.timetable.StateDay(f.classID, "Monday")
	require.Len(t, state, 1)
	assert.Equal(t, secondSubject, state[0].TimetableEntrySubjectID)
}

func TestAssignSubjectMaxOnePerSlot(t *testing.T) {
	f := newFixture()

	for i := 0; i < 3; i++ {
		_, err := f.assign("Monday", 2, f.mathID)
		require.NoError(t, err)
	}
	assert.Len(t, f.st.Entries, 1)
}

func TestAssignSubjectPicksUpTeacherReassignment(t *testing.T) {
	f := newFixture()

	_, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)

	// guru mapel diganti di antara dua operasi
	newTeacher := uuid.New()
	f.st.TeacherSubjects[0].TeacherSubjectTeacherID = newTeacher

	entry, err := f.assign("Tuesday", 1, f.mathID)
	require.NoError(t, err)
	assert.Equal(t, newTeacher, entry.TimetableEntryTeacherID)
}

func TestAssignNilSubjectClearsSlot(t *testing.T) {
	f := newFixture()

	_, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)

	entry, err := f.assign("Monday", 1, uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Empty(t, f.st.Entries)
	assert.Empty(t, f.timetable.StateDay(f.classID, "Monday"))

	// slot yang memang kosong: no-op, bukan error
	entry, err = f.assign("Monday", 1, uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestAssignSubjectInvalidDay(t *testing.T) {
	f := newFixture()
	_, err := f.assign("Sunday", 1, f.mathID)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestAssignSubjectTenantGuard(t *testing.T) {
	f := newFixture()
	slot, _ := FindSlotByNumber(f.settings, 1)
	_, err := f.timetable.AssignSubject(f.ctx, uuid.Nil, f.classID, "Monday", slot, f.mathID)
	assert.ErrorIs(t, err, ErrTenantNotReady)
	assert.Empty(t, f.st.Entries)
}

func TestAssignSubjectMatchesLegacyRowByStartTime(t *testing.T) {
	f := newFixture()

	// baris lama dengan nomor periode tidak konsisten tapi jam sama
	legacy := m.TimetableEntryModel{
		TimetableEntryID:           uuid.New(),
		TimetableEntrySchoolID:     f.schoolID,
		TimetableEntryClassID:      f.classID,
		TimetableEntrySubjectID:    f.mathID,
		TimetableEntryTeacherID:    f.teacherID,
		TimetableEntryDayOfWeek:    "Monday",
		TimetableEntryPeriodNumber: 99,
		TimetableEntryStartTime:    "08:00",
		TimetableEntryEndTime:      "08:45",
		TimetableEntryAcademicYear: testYear,
	}
	f.st.Entries = append(f.st.Entries, legacy)

	entry, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)

	// baris lama diambil alih dan nomornya dinormalkan, bukan bikin duplikat
	require.Len(t, f.st.Entries, 1)
	assert.Equal(t, legacy.TimetableEntryID, entry.TimetableEntryID)
	assert.Equal(t, 1, f.st.Entries[0].TimetableEntryPeriodNumber)
}

func TestRemoveEntryIdempotent(t *testing.T) {
	f := newFixture()

	entry, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)

	require.NoError(t, f.timetable.RemoveEntry(f.ctx, f.schoolID, f.classID, "Monday", entry.TimetableEntryID))
	assert.Empty(t, f.st.Entries)

	// hapus lagi: tetap sukses
	assert.NoError(t, f.timetable.RemoveEntry(f.ctx, f.schoolID, f.classID, "Monday", entry.TimetableEntryID))
}

func TestRemoveEntryScopedToTenant(t *testing.T) {
	f := newFixture()

	entry, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)

	// tenant lain tidak bisa menghapus baris sekolah ini
	require.NoError(t, f.timetable.RemoveEntry(f.ctx, uuid.New(), f.classID, "Monday", entry.TimetableEntryID))
	assert.Len(t, f.st.Entries, 1)
}

func TestClearDay(t *testing.T) {
	f := newFixture()

	for _, n := range []int{1, 2, 3} {
		_, err := f.assign("Monday", n, f.mathID)
		require.NoError(t, err)
	}
	_, err := f.assign("Tuesday", 1, f.mathID)
	require.NoError(t, err)

	deleted, err := f.timetable.ClearDay(f.ctx, f.schoolID, f.classID, "Monday")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	// hari lain tidak tersentuh
	require.Len(t, f.st.Entries, 1)
	assert.Equal(t, "Tuesday", f.st.Entries[0].TimetableEntryDayOfWeek)
	assert.Empty(t, f.timetable.StateDay(f.classID, "Monday"))

	// hari yang sudah kosong: 0 tanpa error (idempotent)
	deleted, err = f.timetable.ClearDay(f.ctx, f.schoolID, f.classID, "Monday")
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestClearDayPartialFailure(t *testing.T) {
	f := newFixture()

	e1, err := f.assign("Monday", 1, f.mathID)
	require.NoError(t, err)
	_, err = f.assign("Monday", 2, f.mathID)
	require.NoError(t, err)

	// delete untuk entry pertama gagal terus, sisanya jalan
	f.st.DeleteErrHook = func(table string, filters store.Filters) error {
		if filters["timetable_entry_id"] == e1.TimetableEntryID {
			return assert.AnError
		}
		return nil
	}

	deleted, err := f.timetable.ClearDay(f.ctx, f.schoolID, f.classID, "Monday")
	assert.Equal(t, 1, deleted)

	var pf *PartialFailureError
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, 1, pf.Succeeded)
	assert.Equal(t, 1, pf.Failed)

	// yang gagal dihapus masih ada di store DAN di state (rekonsiliasi)
	require.Len(t, f.st.Entries, 1)
	state := f.timetable.StateDay(f.classID, "Monday")
	require.Len(t, state, 1)
	assert.Equal(t, e1.TimetableEntryID, state[0].TimetableEntryID)
}

func TestListSlotsForDay(t *testing.T) {
	f := newFixture()

	_, err := f.assign("Monday", 2, f.mathID)
	require.NoError(t, err)

	pairs, err := f.timetable.ListSlotsForDay(f.ctx, f.schoolID, f.classID, "Monday", f.settings)
	require.NoError(t, err)
	require.Len(t, pairs, 10)

	assert.Nil(t, pairs[0].Entry)
	require.NotNil(t, pairs[1].Entry)
	assert.Equal(t, f.mathID, pairs[1].Entry.TimetableEntrySubjectID)
	assert.Equal(t, 2, pairs[1].Slot.PeriodSettingNumber)
	for i := 2; i < 10; i++ {
		assert.Nil(t, pairs[i].Entry)
	}
}

func TestWeekForClassGroupsAndSorts(t *testing.T) {
	f := newFixture()

	// sengaja diisi tidak urut
	for _, n := range []int{3, 1, 2} {
		_, err := f.assign("Monday", n, f.mathID)
		require.NoError(t, err)
	}
	_, err := f.assign("Wednesday", 1, f.mathID)
	require.NoError(t, err)

	grouped, err := f.timetable.WeekForClass(f.ctx, f.schoolID, f.classID)
	require.NoError(t, err)
	require.Len(t, grouped, 6)

	monday := grouped["Monday"]
	require.Len(t, monday, 3)
	assert.Equal(t, "08:00", monday[0].TimetableEntryStartTime)
	assert.Equal(t, "08:45", monday[1].TimetableEntryStartTime)
	assert.Equal(t, "09:30", monday[2].TimetableEntryStartTime)

	assert.Len(t, grouped["Wednesday"], 1)
	assert.Empty(t, grouped["Friday"])
}
