package strip

// HighlightFor derives the 0-100 highlight intensity for tab i from the
// distance between its current center and the strip center. Intensity decays
// linearly and hits zero at one-fifth of the strip width.
func (s *Strip) HighlightFor(i int) int {
	if s.highlightOffset <= 0 {
		return 0
	}
	p := s.positions[i]
	tabCenter := p.Current + p.Width/2
	diff := s.center - tabCenter
	if diff < 0 {
		diff = -diff
	}
	if diff > s.highlightOffset {
		return 0
	}
	return 100 - 100*diff/s.highlightOffset
}

// refreshHighlights pushes recomputed intensities into every tab. Purely a
// function of current geometry; runs on every layout pass and every
// interpolation tick.
func (s *Strip) refreshHighlights() {
	for i, tab := range s.tabs {
		tab.SetHighlight(s.HighlightFor(i))
	}
}
