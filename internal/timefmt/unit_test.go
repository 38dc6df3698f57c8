package timefmt

import "testing"

// Width 0 on a bounded place renders the digit as a radix fraction of
// the modulus: padded to the modulus width, trailing zeros trimmed.
func TestUnitFractionPlace(t *testing.T) {
	f := Must(New(Ratio{Num: 1, Den: 1},
		Place(Unit{Radix: 10, Label: "millisecond", Value: 1, Modulus: 1000}),
	))

	tests := []struct {
		name     string
		ms       uint64
		expected string
	}{
		{
			name:     "zero keeps one digit",
			ms:       0,
			expected: "0",
		},
		{
			name:     "leading zeros kept",
			ms:       92,
			expected: "092",
		},
		{
			name:     "interior zero kept",
			ms:       409,
			expected: "409",
		},
		{
			name:     "trailing zero trimmed",
			ms:       920,
			expected: "92",
		},
		{
			name:     "two trailing zeros trimmed",
			ms:       900,
			expected: "9",
		},
		{
			name:     "hundredth keeps its leading zero",
			ms:       90,
			expected: "09",
		},
		{
			name:     "wraps at the modulus",
			ms:       1000,
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.Render(tt.ms)
			if result != tt.expected {
				t.Errorf("Render(%d) = %s, want %s", tt.ms, result, tt.expected)
			}
		})
	}
}

// Modulus 0 leaves the most-significant place unbounded: it grows
// digits instead of wrapping.
func TestUnitUnboundedPlace(t *testing.T) {
	f := Must(New(Ratio{Num: 1, Den: 1},
		Place(Unit{Radix: 10, Label: "hour", Value: 3600000, Width: 2}),
	))

	tests := []struct {
		name     string
		ms       uint64
		expected string
	}{
		{
			name:     "zero",
			ms:       0,
			expected: "00",
		},
		{
			name:     "within a day",
			ms:       82800000,
			expected: "23",
		},
		{
			name:     "does not wrap at 24",
			ms:       86400000,
			expected: "24",
		},
		{
			name:     "grows a third digit",
			ms:       360000000,
			expected: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.Render(tt.ms)
			if result != tt.expected {
				t.Errorf("Render(%d) = %s, want %s", tt.ms, result, tt.expected)
			}
		})
	}
}

func TestUnitModulusOne(t *testing.T) {
	f := Must(New(Ratio{Num: 1, Den: 1},
		Place(Unit{Radix: 10, Label: "noop", Value: 1, Modulus: 1}),
	))
	for _, ms := range []uint64{0, 5, 999} {
		if result := f.Render(ms); result != "0" {
			t.Errorf("Render(%d) = %s, want 0", ms, result)
		}
	}
}

func TestTrimZeros(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "no trailing zeros",
			in:       "123",
			expected: "123",
		},
		{
			name:     "one trailing zero",
			in:       "120",
			expected: "12",
		},
		{
			name:     "all zeros keep one",
			in:       "000",
			expected: "0",
		},
		{
			name:     "single zero",
			in:       "0",
			expected: "0",
		},
		{
			name:     "leading zeros untouched",
			in:       "0120",
			expected: "012",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := trimZeros(tt.in)
			if result != tt.expected {
				t.Errorf("trimZeros(%s) = %s, want %s", tt.in, result, tt.expected)
			}
		})
	}
}
