package timefmt

import (
	"fmt"
	"math/bits"
)

// Ratio is an exact ratio of engine base units per millisecond. It is
// carried as written, never reduced. Den must be nonzero; New checks.
type Ratio struct {
	Num uint64
	Den uint64
}

// total is the exact product base × ms: a 128-bit numerator (hi, lo)
// over den. Every place extracts its digit from the same total, so the
// only truncation in the pipeline is the final per-place floor.
type total struct {
	hi, lo uint64
	den    uint64
}

func (r Ratio) mul(ms uint64) total {
	hi, lo := bits.Mul64(r.Num, ms)
	return total{hi: hi, lo: lo, den: r.Den}
}

// div returns floor(t / v) for a place value v. New guarantees den×v
// fits in 64 bits. The quotient itself can still exceed 64 bits for
// astronomical inputs; that fails loudly instead of wrapping around.
func (t total) div(v uint64) uint64 {
	d := t.den * v
	if t.hi >= d {
		panic(fmt.Sprintf("timefmt: place count for place value %d overflows uint64", v))
	}
	q, _ := bits.Div64(t.hi, t.lo, d)
	return q
}
