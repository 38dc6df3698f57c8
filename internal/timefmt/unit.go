package timefmt

// Unit is one place of a mixed-radix clock. Its digit is
// floor(total/Value) mod Modulus, rendered in Radix.
type Unit struct {
	// Radix used to render the digit, within [MinRadix, MaxRadix].
	Radix int
	// Label names the place in layout descriptions. It never appears
	// in rendered output.
	Label string
	// Value is the place value in engine base units. Must be nonzero.
	Value uint64
	// Modulus bounds the digit. 0 leaves the place unbounded, so a
	// most-significant place grows extra digits instead of wrapping.
	Modulus uint64
	// Width is the minimum rendered width in digits. On a bounded
	// place, width 0 renders the digit as a radix fraction of the
	// modulus: padded to the modulus width, trailing zeros trimmed,
	// at least one digit kept. 7679092 ms on a civil clock is
	// "02:07:59.092" while 49029000 ms is "13:37:09.0".
	Width int
}

func (u Unit) digit(t total) uint64 {
	q := t.div(u.Value)
	if u.Modulus == 0 {
		return q
	}
	return q % u.Modulus
}

func (u Unit) render(t total) string {
	d := u.digit(t)
	if u.Width == 0 && u.Modulus > 0 {
		return trimZeros(Digits(d, u.Radix, digitLen(u.Modulus-1, u.Radix)))
	}
	return Digits(d, u.Radix, u.Width)
}

// trimZeros drops trailing zeros, keeping at least one digit.
func trimZeros(s string) string {
	end := len(s)
	for end > 1 && s[end-1] == '0' {
		end--
	}
	return s[:end]
}
