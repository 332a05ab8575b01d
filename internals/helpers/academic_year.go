// file: internals/helpers/academic_year.go
package helper

import (
	"fmt"
	"time"
)

// AcademicYearOf menghasilkan label tahun ajaran "YYYY-YY",
// contoh: 2024 → "2024-25". Konvensi yang sama dipakai
// untuk period_settings maupun timetable_entries.
func AcademicYearOf(t time.Time) string {
	y := t.Year()
	return fmt.Sprintf("%d-%02d", y, (y+1)%100)
}

func CurrentAcademicYear() string {
	return AcademicYearOf(time.Now())
}
