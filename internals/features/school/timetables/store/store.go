// file: internals/features/school/timetables/store/store.go
package store

import (
	"context"

	"github.com/google/uuid"
)

/* =========================
   Generic CRUD contract
   =========================
   Backing store dilihat subsistem jadwal sebagai CRUD per-baris dengan
   equality filter — bentuk yang sama dengan helper Supabase di client.
   Semua filter/payload WAJIB sudah membawa school_id (tenant stamp);
   store tidak menebak tenant sendiri. */

type Filters map[string]any

const (
	TablePeriodSettings   = "period_settings"
	TableTimetableEntries = "timetable_entries"
	TableTeacherSubjects  = "teacher_subjects"
	TableSubjects         = "subjects"
	TableTeachers         = "teachers"
	TableClasses          = "classes"
)

type Store interface {
	// Read mengisi dest (pointer ke slice model) dengan baris yang match
	// semua filter. orderBy opsional (nama kolom, ascending).
	Read(ctx context.Context, table string, filters Filters, orderBy string, dest any) error

	// Create menyisipkan satu baris (pointer ke model); id digenerate
	// bila kosong.
	Create(ctx context.Context, table string, row any) error

	// Update menerapkan patch kolom→nilai pada baris dengan primary key id.
	Update(ctx context.Context, table string, id uuid.UUID, patch map[string]any) error

	// Delete menghapus semua baris yang match filter, return jumlah baris.
	Delete(ctx context.Context, table string, filters Filters) (int64, error)

	// Transaction menjalankan fn atomik bila store mendukung; implementasi
	// tanpa transaksi boleh menjalankan fn apa adanya (caller wajib siap
	// menerima PartialFailure).
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
