// file: internals/helpers/timefmt/timefmt.go
package timefmt

import (
	"fmt"
	"time"
)

// Paket ini cuma urusan jam dinding "HH:MM" (string, 24 jam),
// bukan time.Time penuh — kolom start_time/end_time disimpan
// sebagai string di tabel jadwal.

const layout = "15:04"

// Valid: bentuk ketat "HH:MM", dua digit. time.Parse sendiri masih
// menerima jam satu digit ("8:00"), jadi bentuknya dicek dulu —
// sorting dan pencocokan slot mengandalkan perbandingan string.
func Valid(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse(layout, s)
	return err == nil
}

// Minutes: "HH:MM" → menit sejak 00:00. Input invalid → 0.
func Minutes(s string) int {
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// DurationMinutes: selisih end - start dalam menit.
// Boleh negatif/nol; layer pemanggil yang memutuskan mau menolak atau tidak.
func DurationMinutes(start, end string) int {
	if !Valid(start) || !Valid(end) {
		return 0
	}
	return Minutes(end) - Minutes(start)
}

// AddMinutes: geser "HH:MM" sebanyak mins menit (dibatasi dalam satu hari).
func AddMinutes(s string, mins int) string {
	t, err := time.Parse(layout, s)
	if err != nil {
		return s
	}
	return t.Add(time.Duration(mins) * time.Minute).Format(layout)
}

// Format12h: "14:05" → "2:05 PM" untuk label tampilan.
func Format12h(s string) string {
	t, err := time.Parse(layout, s)
	if err != nil {
		return s
	}
	h := t.Hour()
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), ampm)
}

// Hour: jam dari "HH:MM" (untuk fallback penomoran slot lama).
func Hour(s string) int {
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0
	}
	return t.Hour()
}
