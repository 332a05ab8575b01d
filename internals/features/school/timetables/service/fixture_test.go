// file: internals/features/school/timetables/service/fixture_test.go
package service

import (
	"context"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetables/model"
	"schoolku_backend/internals/features/school/timetables/store"
)

const testYear = "2025-26"

// fixture: satu sekolah, satu kelas, dua mapel (satu punya guru,
// satu belum), period settings default sudah tersimpan.
type fixture struct {
	ctx context.Context
	st  *store.MemoryStore

	schoolID  uuid.UUID
	classID   uuid.UUID
	teacherID uuid.UUID

	mathID   uuid.UUID // punya guru
	artID    uuid.UUID // belum punya guru
	settings []m.PeriodSettingModel

	periods   *PeriodSettingsService
	timetable *TimetableService
	daycopy   *DayCopyService
}

func newFixture() *fixture {
	f := &fixture{
		ctx:       context.Background(),
		st:        store.NewMemoryStore(),
		schoolID:  uuid.New(),
		classID:   uuid.New(),
		teacherID: uuid.New(),
		mathID:    uuid.New(),
		artID:     uuid.New(),
	}

	f.st.Classes = []m.ClassModel{{
		ClassID:       f.classID,
		ClassSchoolID: f.schoolID,
		ClassName:     "7A",
		ClassSection:  "A",
	}}
	f.st.Teachers = []m.TeacherModel{{
		TeacherID:       f.teacherID,
		TeacherSchoolID: f.schoolID,
		TeacherName:     "Bu Sari",
	}}
	f.st.Subjects = []m.SubjectModel{
		{SubjectID: f.mathID, SubjectSchoolID: f.schoolID, SubjectClassID: f.classID, SubjectName: "Matematika", SubjectAcademicYear: testYear},
		{SubjectID: f.artID, SubjectSchoolID: f.schoolID, SubjectClassID: f.classID, SubjectName: "Seni Budaya", SubjectAcademicYear: testYear},
	}
	f.st.TeacherSubjects = []m.TeacherSubjectModel{{
		TeacherSubjectID:        uuid.New(),
		TeacherSubjectSchoolID:  f.schoolID,
		TeacherSubjectTeacherID: f.teacherID,
		TeacherSubjectSubjectID: f.mathID,
	}}

	f.periods = NewPeriodSettingsService(f.st)
	f.timetable = NewTimetableService(f.st)
	f.timetable.Year = func() string { return testYear }
	f.daycopy = NewDayCopyService(f.st, f.timetable)

	settings, err := f.periods.LoadSettings(f.ctx, f.schoolID, testYear)
	if err != nil {
		panic(err)
	}
	f.settings = settings
	return f
}

// assign: shortcut isi slot nomor n di hari itu dengan mapel.
func (f *fixture) assign(day string, number int, subjectID uuid.UUID) (*m.TimetableEntryModel, error) {
	slot, ok := FindSlotByNumber(f.settings, number)
	if !ok {
		return nil, ErrSlotNotFound
	}
	return f.timetable.AssignSubject(f.ctx, f.schoolID, f.classID, day, slot, subjectID)
}
