package strip

// calculatePositions assigns the three anchors of every tab from its index
// distance to the selected page:
//
//	-5 -4 -3 /-2 |-1 0 +1| +2\ +3 +4 +5
//
//	[1] -5 to -3 are parked off-left
//	[2] -2 is parked off-left, may slide in when swiping toward lower pages
//	[3] -1 is inside the strip, flush left
//	[4]  0 is inside the strip, centered
//	[5] +1 is inside the strip, flush right
//	[6] +2 is parked off-right, may slide in when swiping toward higher pages
//	[7] +3 to +5 are parked off-right
//
// When snap is true every tab's current position is reset to its rest
// position, so the strip lands on the new layout without interpolation.
func (s *Strip) calculatePositions(snap bool) {
	if s.count == 0 {
		return
	}

	s.dir = None

	cur := s.selected
	for i := range s.positions {
		switch {
		case i < cur-2:
			s.alignLeftOutside(i, false)
		case i == cur-2:
			s.alignLeftOutside(i, true)
		case i == cur-1:
			s.alignLeft(i)
		case i == cur:
			s.alignCenter(i)
		case i == cur+1:
			s.alignRight(i)
		case i == cur+2:
			s.alignRightOutside(i, true)
		default:
			s.alignRightOutside(i, false)
		}
	}

	s.resolveOverlap()

	if snap {
		for i := range s.positions {
			s.positions[i].Current = s.positions[i].Rest
		}
		s.refreshHighlights()
	}
}

// leftOutside is the parked position beyond the left strip edge.
func (s *Strip) leftOutside(i int) int {
	return -s.positions[i].Width - s.outside
}

// left aligns the tab's content flush with the left strip edge, letting its
// own left padding hang off-screen.
func (s *Strip) left(i int) int {
	return 0 - s.padLeft[i]
}

// centerOf centers the tab horizontally in the strip.
func (s *Strip) centerOf(i int) int {
	return s.width/2 - s.positions[i].Width/2
}

// right aligns the tab's content flush with the right strip edge.
func (s *Strip) right(i int) int {
	return s.width - s.positions[i].Width + s.padRight[i]
}

// rightOutside is the parked position beyond the right strip edge.
func (s *Strip) rightOutside(i int) int {
	return s.width + s.outside
}

func (s *Strip) alignLeftOutside(i int, canComeIn bool) {
	p := &s.positions[i]
	p.Rest = s.leftOutside(i)
	p.Left = p.Rest
	if canComeIn {
		p.Right = s.left(i)
	} else {
		p.Right = p.Rest
	}
}

func (s *Strip) alignLeft(i int) {
	p := &s.positions[i]
	p.Left = s.leftOutside(i)
	p.Rest = s.left(i)
	p.Right = s.centerOf(i)
}

func (s *Strip) alignCenter(i int) {
	p := &s.positions[i]
	p.Left = s.left(i)
	p.Rest = s.centerOf(i)
	p.Right = s.right(i)
}

func (s *Strip) alignRight(i int) {
	p := &s.positions[i]
	p.Left = s.centerOf(i)
	p.Rest = s.right(i)
	p.Right = s.rightOutside(i)
}

func (s *Strip) alignRightOutside(i int, canComeIn bool) {
	p := &s.positions[i]
	p.Rest = s.rightOutside(i)
	p.Right = p.Rest
	if canComeIn {
		p.Left = s.right(i)
	} else {
		p.Left = p.Rest
	}
}
