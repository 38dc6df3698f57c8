package timefmt

import (
	"math"
	"strconv"
	"testing"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name     string
		v        uint64
		radix    int
		width    int
		expected string
	}{
		{
			name:     "zero without width",
			v:        0,
			radix:    10,
			width:    0,
			expected: "0",
		},
		{
			name:     "zero padded",
			v:        0,
			radix:    6,
			width:    4,
			expected: "0000",
		},
		{
			name:     "pad to width",
			v:        92,
			radix:    10,
			width:    3,
			expected: "092",
		},
		{
			name:     "width is a floor not a cap",
			v:        54,
			radix:    6,
			width:    2,
			expected: "130",
		},
		{
			name:     "hex letters",
			v:        255,
			radix:    16,
			width:    2,
			expected: "ff",
		},
		{
			name:     "radix 36 single digit",
			v:        35,
			radix:    36,
			width:    0,
			expected: "z",
		},
		{
			name:     "binary padded",
			v:        5,
			radix:    2,
			width:    4,
			expected: "0101",
		},
		{
			name:     "senary snap count",
			v:        153970,
			radix:    6,
			width:    0,
			expected: "3144454",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Digits(tt.v, tt.radix, tt.width)
			if result != tt.expected {
				t.Errorf("Digits(%d, %d, %d) = %s, want %s", tt.v, tt.radix, tt.width, result, tt.expected)
			}
		})
	}
}

// Rendered digits must read back as the value they came from, for
// every radix and regardless of zero padding.
func TestDigitsRoundTrip(t *testing.T) {
	for radix := MinRadix; radix <= MaxRadix; radix++ {
		values := []uint64{
			0,
			1,
			uint64(radix) - 1,
			uint64(radix),
			uint64(radix)*uint64(radix) - 1,
			1 << 40,
			math.MaxUint64,
		}
		for width := 0; width <= 4; width++ {
			for _, v := range values {
				s := Digits(v, radix, width)
				if len(s) < width {
					t.Fatalf("Digits(%d, %d, %d) = %q, shorter than width", v, radix, width, s)
				}
				back, err := strconv.ParseUint(s, radix, 64)
				if err != nil {
					t.Fatalf("ParseUint(%q, %d) error: %v", s, radix, err)
				}
				if back != v {
					t.Fatalf("Digits(%d, %d, %d) = %q, parses back to %d", v, radix, width, s, back)
				}
			}
		}
	}
}

func TestDigitLen(t *testing.T) {
	tests := []struct {
		name     string
		v        uint64
		radix    int
		expected int
	}{
		{
			name:     "zero",
			v:        0,
			radix:    10,
			expected: 1,
		},
		{
			name:     "largest single senary digit",
			v:        5,
			radix:    6,
			expected: 1,
		},
		{
			name:     "six needs two senary digits",
			v:        6,
			radix:    6,
			expected: 2,
		},
		{
			name:     "three decimal digits",
			v:        999,
			radix:    10,
			expected: 3,
		},
		{
			name:     "four decimal digits",
			v:        1000,
			radix:    10,
			expected: 4,
		},
		{
			name:     "span modulus top digit",
			v:        1295,
			radix:    6,
			expected: 4,
		},
		{
			name:     "binary",
			v:        8,
			radix:    2,
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := digitLen(tt.v, tt.radix)
			if result != tt.expected {
				t.Errorf("digitLen(%d, %d) = %d, want %d", tt.v, tt.radix, result, tt.expected)
			}
		})
	}
}
