// file: internals/features/school/timetables/service/teacher_resolver.go
package service

import (
	"context"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetables/model"
	"schoolku_backend/internals/features/school/timetables/store"
)

// TeacherResolver: lookup guru lewat relasi teacher_subjects.
// Sengaja tanpa cache — assignment guru bisa berubah di antara dua
// panggilan, jadi setiap mutasi jadwal resolve ulang.
type TeacherResolver struct {
	Store store.Store
}

func NewTeacherResolver(st store.Store) *TeacherResolver {
	return &TeacherResolver{Store: st}
}

// ResolveTeacher: guru untuk satu mapel; uuid.Nil (tanpa error) kalau
// mapel belum punya guru.
func (r *TeacherResolver) ResolveTeacher(ctx context.Context, schoolID, subjectID uuid.UUID) (uuid.UUID, error) {
	if err := requireTenant(schoolID); err != nil {
		return uuid.Nil, err
	}

	var rows []m.TeacherSubjectModel
	err := r.Store.Read(ctx, store.TableTeacherSubjects, store.Filters{
		"teacher_subject_school_id":  schoolID,
		"teacher_subject_subject_id": subjectID,
	}, "", &rows)
	if err != nil {
		return uuid.Nil, storeErr("read teacher_subjects", err)
	}
	if len(rows) == 0 {
		return uuid.Nil, nil
	}
	return rows[0].TeacherSubjectTeacherID, nil
}
