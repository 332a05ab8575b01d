// file: internals/features/school/timetables/store/gorm_store.go
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "schoolku_backend/internals/features/school/timetables/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// blank: instance kosong per tabel supaya gorm tahu TableName + kolom.
func blank(table string) (any, error) {
	switch table {
	case TablePeriodSettings:
		return &m.PeriodSettingModel{}, nil
	case TableTimetableEntries:
		return &m.TimetableEntryModel{}, nil
	case TableTeacherSubjects:
		return &m.TeacherSubjectModel{}, nil
	case TableSubjects:
		return &m.SubjectModel{}, nil
	case TableTeachers:
		return &m.TeacherModel{}, nil
	case TableClasses:
		return &m.ClassModel{}, nil
	default:
		return nil, fmt.Errorf("store: unknown table %q", table)
	}
}

func pkColumn(table string) string {
	switch table {
	case TablePeriodSettings:
		return "period_setting_id"
	case TableTimetableEntries:
		return "timetable_entry_id"
	case TableTeacherSubjects:
		return "teacher_subject_id"
	case TableSubjects:
		return "subject_id"
	case TableTeachers:
		return "teacher_id"
	case TableClasses:
		return "class_id"
	default:
		return "id"
	}
}

func (s *GormStore) Read(ctx context.Context, table string, filters Filters, orderBy string, dest any) error {
	mdl, err := blank(table)
	if err != nil {
		return err
	}
	q := s.DB.WithContext(ctx).Model(mdl)
	if len(filters) > 0 {
		q = q.Where(map[string]any(filters))
	}
	if orderBy != "" {
		q = q.Order(orderBy)
	}
	return q.Find(dest).Error
}

func (s *GormStore) Create(ctx context.Context, table string, row any) error {
	if _, err := blank(table); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Create(row).Error
}

func (s *GormStore) Update(ctx context.Context, table string, id uuid.UUID, patch map[string]any) error {
	mdl, err := blank(table)
	if err != nil {
		return err
	}
	res := s.DB.WithContext(ctx).Model(mdl).
		Where(pkColumn(table)+" = ?", id).
		Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, table string, filters Filters) (int64, error) {
	mdl, err := blank(table)
	if err != nil {
		return 0, err
	}
	res := s.DB.WithContext(ctx).Where(map[string]any(filters)).Delete(mdl)
	return res.RowsAffected, res.Error
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}
