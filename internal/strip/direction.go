package strip

// Direction is the scroll direction of the in-progress carousel gesture.
type Direction int

const (
	// None means the scroll coordinate has not moved yet this gesture.
	None Direction = iota
	// Left means the scroll coordinate is decreasing: the carousel is
	// returning toward a lower page index.
	Left
	// Right means the scroll coordinate is increasing: the carousel is
	// advancing toward a higher page index.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// SourceAnchor returns the anchor a tab interpolates from for the given
// latched direction.
func SourceAnchor(d Direction, p TabPosition) int {
	if d == Left {
		return p.Left
	}
	return p.Rest
}

// TargetAnchor returns the anchor a tab interpolates toward for the given
// latched direction. The right anchor never takes part in interpolation; it
// only constrains alignment and overlap resolution.
func TargetAnchor(d Direction, p TabPosition) int {
	if d == Right {
		return p.Left
	}
	return p.Rest
}

// Mirror maps the carousel's fractional offset to the effective interpolation
// parameter: inverted for leftward gestures, unchanged otherwise.
func Mirror(d Direction, offset float64) float64 {
	if d == Left {
		return 1 - offset
	}
	return offset
}
