package ports

import (
	"context"
	"time"
)

// NumberGenerator produces the next human-readable delivery-note number.
// Numbers follow the PREFIX-YEAR-NNN format (zero-padded to three digits)
// and the counter restarts each calendar year. The domain core only stores
// whatever number it is given.
type NumberGenerator interface {
	// NextNumber reserves and returns the next number for the year of the
	// given date, e.g. "DN-2026-042".
	NextNumber(ctx context.Context, date time.Time) (string, error)
}
