// Package units defines the unit systems rn can render and the
// registry the CLI resolves format names against.
package units

import "github.com/ethwu/rn/internal/timefmt"

// The seximal systems count snaps: 36·36·36·6 snaps per civil day.
const (
	snapsPerDay = 36 * 36 * 36 * 6
	msPerDay    = 86400000
)

// Names of the built-in unit systems.
const (
	NameExtended = "extended"
	NameSpan     = "span"
	NameSnap     = "snap"
	NameCivil    = "civil"
)

var seximalBase = timefmt.Ratio{Num: snapsPerDay, Den: msPerDay}

// Extended is the full Misalian–Kunimunean clock,
// lapse:lull:moment.snap. The lapse place is unbounded, so durations
// past a full day keep counting up instead of wrapping.
func Extended() *timefmt.Formatter {
	return timefmt.Must(timefmt.New(seximalBase,
		timefmt.Place(timefmt.Unit{Radix: 6, Label: "lapse", Value: 36 * 36 * 6, Width: 2}),
		timefmt.Literal(":"),
		timefmt.Place(timefmt.Unit{Radix: 6, Label: "lull", Value: 36 * 6, Modulus: 36, Width: 2}),
		timefmt.Literal(":"),
		timefmt.Place(timefmt.Unit{Radix: 6, Label: "moment", Value: 6, Modulus: 36, Width: 2}),
		timefmt.Literal("."),
		timefmt.Place(timefmt.Unit{Radix: 6, Label: "snap", Value: 1, Modulus: 6}),
	))
}

// Span renders the day in spans, 1296 snaps each.
func Span() *timefmt.Formatter {
	return timefmt.Must(timefmt.New(seximalBase,
		timefmt.Place(timefmt.Unit{Radix: 6, Label: "span", Value: 1296, Modulus: 1296, Width: 3}),
	))
}

// Snap is the undelimited snap count, at least seven senary digits.
func Snap() *timefmt.Formatter {
	return timefmt.Must(timefmt.New(seximalBase,
		timefmt.Place(timefmt.Unit{Radix: 6, Label: "snap", Value: 1, Width: 7}),
	))
}

// Civil is the conventional decimal clock, hh:mm:ss.msec.
func Civil() *timefmt.Formatter {
	return timefmt.Must(timefmt.New(timefmt.Ratio{Num: 1, Den: 1},
		timefmt.Place(timefmt.Unit{Radix: 10, Label: "hour", Value: 3600000, Width: 2}),
		timefmt.Literal(":"),
		timefmt.Place(timefmt.Unit{Radix: 10, Label: "minute", Value: 60000, Modulus: 60, Width: 2}),
		timefmt.Literal(":"),
		timefmt.Place(timefmt.Unit{Radix: 10, Label: "second", Value: 1000, Modulus: 60, Width: 2}),
		timefmt.Literal("."),
		timefmt.Place(timefmt.Unit{Radix: 10, Label: "millisecond", Value: 1, Modulus: 1000}),
	))
}
