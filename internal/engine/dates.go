package engine

import (
	"fmt"
	"time"
)

// dayLayout is the wire format for calendar dates.  All date
// arithmetic in the engine happens on UTC days with the time of day
// stripped.
const dayLayout = "2006-01-02"

// parseDay parses a YYYY-MM-DD string into a UTC midnight time.
func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, s)
	}
	return t.UTC(), nil
}

// day normalizes t to its UTC calendar day.
func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// nights returns the number of nights in the half-open range
// [start, end), never less than one.  Billing charges at least one
// night even for a degenerate range.
func nights(start, end time.Time) int64 {
	n := int64(end.Sub(start).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one night.  Touching boundaries (one
// range ending exactly where the other starts) do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
