package strip

// The drag bridge translates raw pointer events on the strip into carousel
// commands. A press opens a fake-drag session, moves feed scroll deltas, and
// a release without movement becomes a tap that jumps to the pressed tab's
// page. The strip owns no animation here; the carousel's own scroll-to-page
// animation drives the interpolation afterwards.

// PressStart begins a fake-drag session at pointer column x.
func (s *Strip) PressStart(x int) {
	if s.pager == nil {
		return
	}
	s.pressX = x
	s.dragged = false
	s.pager.BeginFakeDrag()
}

// PressMove feeds pointer movement into the carousel while a fake-drag
// session is active. Moves outside a session are silently ignored.
func (s *Strip) PressMove(x int) {
	if s.pager == nil || !s.pager.IsFakeDragging() {
		return
	}
	if x == s.pressX {
		return
	}
	s.dragged = true
	// Dragging the strip left scrolls the carousel toward higher pages.
	s.pager.FakeDragBy(s.pressX - x)
	s.pressX = x
}

// PressEnd closes the fake-drag session. A release that never moved counts
// as a tap: the carousel is asked to jump to the tab under the pointer.
func (s *Strip) PressEnd(x int) {
	if s.pager == nil {
		return
	}
	if s.pager.IsFakeDragging() {
		s.pager.EndFakeDrag()
	}
	if !s.dragged {
		if i := s.TabAt(x); i >= 0 {
			s.pager.SetCurrentPage(i)
		}
	}
}
