package timefmt

import (
	"strconv"
	"strings"
)

// Radix bounds accepted by Digits and Unit, covering the digit
// alphabet 0-9a-z.
const (
	MinRadix = 2
	MaxRadix = 36
)

// Digits renders v in the given radix, left-padded with zeros to at
// least width characters. Width is a minimum, never a cap: a value too
// large for it keeps all of its digits. Zero renders as "0" before
// padding. The radix must lie within [MinRadix, MaxRadix]; New
// enforces that for every configured place.
func Digits(v uint64, radix, width int) string {
	s := strconv.FormatUint(v, radix)
	if pad := width - len(s); pad > 0 {
		return strings.Repeat("0", pad) + s
	}
	return s
}

// digitLen reports how many digits v occupies in the given radix.
func digitLen(v uint64, radix int) int {
	n := 1
	for v >= uint64(radix) {
		v /= uint64(radix)
		n++
	}
	return n
}
