// Package timefmt renders millisecond counts as clock strings under
// arbitrary mixed-radix unit systems.
//
// A Formatter is configured once with a base ratio (engine units per
// millisecond) and a layout of literal and unit-place segments. Every
// render performs a single exact conversion of the input: each place
// digit is extracted from the full-precision product base × ms, so no
// rounding error compounds across places no matter how awkward the
// ratio is. The flagship use is the Misalian–Kunimunean seximal clock
// (279936 snaps per 86400000 ms day), but a decimal hh:mm:ss.msec
// clock is just another configuration.
package timefmt

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Formatter renders milliseconds as a clock string. It is immutable
// after construction and safe for concurrent use.
type Formatter struct {
	base     Ratio
	segments []Segment
}

// New builds a Formatter from a base ratio and a layout of segments.
// Configuration is validated here, eagerly: the denominator and every
// place value must be nonzero, radixes must lie in [MinRadix,
// MaxRadix], widths must be non-negative, and Den×Value must fit in 64
// bits for every place. A Formatter New accepted never fails to
// render.
//
// New does not require the places to decompose a day losslessly, nor
// to appear in decreasing place-value order; layouts that want a
// conventional clock reading are responsible for that themselves.
func New(base Ratio, segments ...Segment) (*Formatter, error) {
	if base.Den == 0 {
		return nil, NewConfigError("base", "denominator must be nonzero")
	}
	for _, s := range segments {
		if s.kind != placeSegment {
			continue
		}
		u := s.unit
		name := placeName(u)
		if u.Value == 0 {
			return nil, NewConfigError(name, "place value must be nonzero")
		}
		if u.Radix < MinRadix || u.Radix > MaxRadix {
			return nil, NewConfigError(name, fmt.Sprintf("radix %d outside [%d, %d]", u.Radix, MinRadix, MaxRadix))
		}
		if u.Width < 0 {
			return nil, NewConfigError(name, "width must be non-negative")
		}
		if hi, _ := bits.Mul64(base.Den, u.Value); hi != 0 {
			return nil, NewConfigError(name, "place value times base denominator overflows uint64")
		}
	}
	return &Formatter{base: base, segments: slices.Clone(segments)}, nil
}

func placeName(u Unit) string {
	if u.Label != "" {
		return u.Label
	}
	return "unit place"
}

// Must returns f, panicking if err is non-nil. It allows static
// layouts to be initialized as timefmt.Must(timefmt.New(...)).
func Must(f *Formatter, err error) *Formatter {
	if err != nil {
		panic(err)
	}
	return f
}

// Render converts ms once, exactly, and concatenates every segment's
// rendering of that shared total. Identical inputs produce identical
// output. An input so large that some place count exceeds 64 bits
// panics rather than wrapping around.
func (f *Formatter) Render(ms uint64) string {
	t := f.base.mul(ms)
	var b strings.Builder
	b.Grow(3 * len(f.segments))
	for _, s := range f.segments {
		b.WriteString(s.render(t))
	}
	return b.String()
}

// AppendRender appends the rendering of ms to dst and returns the
// extended slice.
func (f *Formatter) AppendRender(dst []byte, ms uint64) []byte {
	t := f.base.mul(ms)
	for _, s := range f.segments {
		dst = append(dst, s.render(t)...)
	}
	return dst
}

// Layout describes the clock's shape by joining literal text with
// place labels, e.g. "lapse:lull:moment.snap".
func (f *Formatter) Layout() string {
	var b strings.Builder
	for _, s := range f.segments {
		b.WriteString(s.label())
	}
	return b.String()
}

// Base returns the configured units-per-millisecond ratio.
func (f *Formatter) Base() Ratio {
	return f.base
}
