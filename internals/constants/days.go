// file: internals/constants/days.go
package constants

// Hari sekolah (Minggu tidak dipakai di jadwal pelajaran).
// Disimpan sebagai nama Inggris di DB, bukan index angka.
var SchoolDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

func IsSchoolDay(day string) bool {
	for _, d := range SchoolDays {
		if d == day {
			return true
		}
	}
	return false
}

// Default grid jam pelajaran
const (
	DefaultSlotCount      = 10
	DefaultSlotMinutes    = 45
	DefaultFirstSlotStart = "08:00"
	PeriodTypeClass       = "class"
)
