package clock

import (
	"strings"
	"time"
)

// layouts accepted by TimeOfDay, tried in order. Clock-only layouts
// come first, most specific first; full timestamps at the end
// contribute only their clock reading.
var layouts = []string{
	"15:04:05",
	"15:04",
	"03:04:05 PM",
	"03:04:05 pm",
	"3:04:05 PM",
	"3:04:05 pm",
	"3:04 PM",
	"3:04 pm",
	"15h 04m 05s",
	"15h04m05s",
	"15h 04m",
	"15h04m",
	"15h",
	"0304 PM",
	"0304 pm",
	"0304PM",
	"0304pm",
	"3 PM",
	"3 pm",
	"3PM",
	"3pm",
	"1504",
	time.RFC3339,
	time.ANSIC,
}

// TimeOfDay parses a user-typed time of day and reports it as
// milliseconds since midnight.
func TimeOfDay(s string) (uint64, error) {
	in := strings.TrimSpace(s)
	for _, layout := range layouts {
		t, err := time.Parse(layout, in)
		if err != nil {
			continue
		}
		hh, mm, ss := t.Clock()
		ms := uint64(hh)*3600000 + uint64(mm)*60000 + uint64(ss)*1000 + uint64(t.Nanosecond())/1000000
		return ms, nil
	}
	return 0, NewParseError(s)
}
