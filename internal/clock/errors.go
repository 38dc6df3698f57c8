package clock

import "fmt"

// ParseError represents an unrecognized time-of-day input.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized time of day %q\n\n"+
		"Accepted forms include:\n"+
		"  13:37:09     24-hour clock\n"+
		"  00:34        hours and minutes\n"+
		"  1:02:03 PM   12-hour clock\n"+
		"  4pm          bare hour\n"+
		"  6h 45m       hour and minute counts\n"+
		"  1504         compact 24-hour clock\n"+
		"  RFC 3339 or ANSIC timestamps (the date part is ignored)", e.Input)
}

// NewParseError creates a new time-of-day parse error
func NewParseError(input string) *ParseError {
	return &ParseError{Input: input}
}
