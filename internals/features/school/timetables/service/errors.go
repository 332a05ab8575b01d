// file: internals/features/school/timetables/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

/* =========================
   Domain errors
   =========================
   Semua dikembalikan sebagai value (bukan panic); controller yang
   memetakan ke status HTTP + pesan user. */

var (
	// Tenant belum ter-resolve; operasi di-short-circuit sebelum menyentuh store.
	ErrTenantNotReady = errors.New("tenant context not ready")

	// Mapel belum punya guru; tidak ada perubahan state.
	ErrNoTeacherAssigned = errors.New("subject has no teacher assigned")

	// Hari sumber kosong, tidak ada yang bisa disalin.
	ErrNothingToCopy = errors.New("nothing to copy: source day has no entries")

	// Hari di luar Monday..Saturday.
	ErrInvalidDay = errors.New("invalid school day")

	// Slot (period number) tidak ada di period settings aktif.
	ErrSlotNotFound = errors.New("period slot not found in settings")
)

// storeErr: bungkus error backing store supaya pesan asli tetap kebawa
// ke user (spec: surfaced verbatim).
func storeErr(op string, err error) error {
	return fmt.Errorf("backing store (%s): %w", op, err)
}

// PartialFailureError: operasi multi-langkah yang sebagian sukses.
// Wajib dibedakan dari kegagalan total — caller harus re-fetch ground
// truth, jangan percaya state lokal.
type PartialFailureError struct {
	Op        string
	Succeeded int
	Failed    int
	Errs      []error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s: partial failure (%d succeeded, %d failed)", e.Op, e.Succeeded, e.Failed)
}

func (e *PartialFailureError) Unwrap() error {
	if len(e.Errs) > 0 {
		return e.Errs[0]
	}
	return nil
}

// requireTenant: guard readiness — dipanggil di awal setiap operasi.
func requireTenant(schoolID uuid.UUID) error {
	if schoolID == uuid.Nil {
		return ErrTenantNotReady
	}
	return nil
}
