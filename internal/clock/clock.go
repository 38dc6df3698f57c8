// Package clock turns wall-clock readings and user-typed times of day
// into millisecond counts for the formatting engine.
package clock

import "time"

// SinceMidnight reports how many whole milliseconds of t's day have
// elapsed, in t's location. On days with a DST transition the count
// reflects real elapsed time, so it can run past 24 hours worth.
func SinceMidnight(t time.Time) uint64 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return uint64(t.Sub(midnight) / time.Millisecond)
}
