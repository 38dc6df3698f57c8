package cmd

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestPickFormat(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		span     bool
		basic    bool
		expected string
	}{
		{
			name:     "configured default",
			expected: "extended",
		},
		{
			name:     "explicit format",
			explicit: "civil",
			expected: "civil",
		},
		{
			name:     "span flag",
			span:     true,
			expected: "span",
		},
		{
			name:     "basic flag",
			basic:    true,
			expected: "snap",
		},
		{
			name:     "span wins over explicit",
			explicit: "civil",
			span:     true,
			expected: "span",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pickFormat(tt.explicit, tt.span, tt.basic)
			if result != tt.expected {
				t.Errorf("pickFormat(%q, %v, %v) = %s, want %s",
					tt.explicit, tt.span, tt.basic, result, tt.expected)
			}
		})
	}

	t.Run("respects configured format", func(t *testing.T) {
		old := viper.Get("format")
		defer viper.Set("format", old)
		viper.Set("format", "span")
		if result := pickFormat("", false, false); result != "span" {
			t.Errorf("pickFormat with configured span = %s, want span", result)
		}
	})
}

func TestSinceMidnight(t *testing.T) {
	offset := time.FixedZone("X", 2*3600)
	at := time.Date(2001, 7, 8, 13, 37, 9, 0, offset)

	t.Run("local keeps the zone's wall clock", func(t *testing.T) {
		if result := sinceMidnight(at, true); result != 49029000 {
			t.Errorf("sinceMidnight(local) = %d, want 49029000", result)
		}
	})

	t.Run("default reckons from UTC midnight", func(t *testing.T) {
		// 13:37:09+02:00 is 11:37:09 UTC.
		if result := sinceMidnight(at, false); result != 41829000 {
			t.Errorf("sinceMidnight(utc) = %d, want 41829000", result)
		}
	})
}
