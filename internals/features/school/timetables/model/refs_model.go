// file: internals/features/school/timetables/model/refs_model.go
package model

import (
	"github.com/google/uuid"
)

/* =========================
   Read-only references
   =========================
   Kelas, mapel, guru, dan relasi guru↔mapel dikelola fitur lain;
   subsistem jadwal hanya membaca. */

type ClassModel struct {
	ClassID       uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey" json:"class_id"`
	ClassSchoolID uuid.UUID `gorm:"column:class_school_id;type:uuid;not null" json:"class_school_id"`
	ClassName     string    `gorm:"column:class_name;type:varchar(80);not null" json:"class_name"`
	ClassSection  string    `gorm:"column:class_section;type:varchar(20)" json:"class_section"`
}

func (ClassModel) TableName() string { return "classes" }

type SubjectModel struct {
	SubjectID           uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey" json:"subject_id"`
	SubjectSchoolID     uuid.UUID `gorm:"column:subject_school_id;type:uuid;not null" json:"subject_school_id"`
	SubjectClassID      uuid.UUID `gorm:"column:subject_class_id;type:uuid;not null" json:"subject_class_id"`
	SubjectName         string    `gorm:"column:subject_name;type:varchar(120);not null" json:"subject_name"`
	SubjectAcademicYear string    `gorm:"column:subject_academic_year;type:varchar(10);not null" json:"subject_academic_year"`
}

func (SubjectModel) TableName() string { return "subjects" }

type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey" json:"teacher_id"`
	TeacherSchoolID uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null" json:"teacher_school_id"`
	TeacherName     string    `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
}

func (TeacherModel) TableName() string { return "teachers" }

// Relasi guru↔mapel: maksimal satu guru per mapel pada satu waktu.
type TeacherSubjectModel struct {
	TeacherSubjectID        uuid.UUID `gorm:"column:teacher_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_subject_id"`
	TeacherSubjectSchoolID  uuid.UUID `gorm:"column:teacher_subject_school_id;type:uuid;not null" json:"teacher_subject_school_id"`
	TeacherSubjectTeacherID uuid.UUID `gorm:"column:teacher_subject_teacher_id;type:uuid;not null" json:"teacher_subject_teacher_id"`
	TeacherSubjectSubjectID uuid.UUID `gorm:"column:teacher_subject_subject_id;type:uuid;not null" json:"teacher_subject_subject_id"`
}

func (TeacherSubjectModel) TableName() string { return "teacher_subjects" }
