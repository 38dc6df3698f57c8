package timefmt

type segmentKind uint8

const (
	literalSegment segmentKind = iota
	placeSegment
)

// Segment is one piece of a clock layout: either verbatim text or a
// unit place. Build segments with Literal and Place only.
type Segment struct {
	kind segmentKind
	text string
	unit Unit
}

// Literal returns a segment that renders as text verbatim, for
// separators like ":" and ".".
func Literal(text string) Segment {
	return Segment{kind: literalSegment, text: text}
}

// Place returns a segment that renders the given unit place.
func Place(u Unit) Segment {
	return Segment{kind: placeSegment, unit: u}
}

func (s Segment) render(t total) string {
	if s.kind == literalSegment {
		return s.text
	}
	return s.unit.render(t)
}

// label is the segment's contribution to a layout description.
func (s Segment) label() string {
	if s.kind == literalSegment {
		return s.text
	}
	return s.unit.Label
}
