package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const bookingIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingID generates an external booking reference of the form
// RTYYMMDD-XXXX. The random suffix keeps collisions unlikely but the
// bookings table's unique constraint is what actually guarantees
// uniqueness; callers retry on a duplicate-key insert.
func NewBookingID() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a time-derived suffix rather than panicking in the request path.
		n := time.Now().UnixNano()
		for i := range suffix {
			suffix[i] = bookingIDAlphabet[int(n>>(uint(i)*8))%len(bookingIDAlphabet)]
		}
	} else {
		for i, b := range suffix {
			suffix[i] = bookingIDAlphabet[int(b)%len(bookingIDAlphabet)]
		}
	}
	return fmt.Sprintf("RT%s-%s", time.Now().Format("060102"), string(suffix))
}
