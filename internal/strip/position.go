// Package strip implements the positioning and interpolation engine behind
// the swipey tab strip: it derives anchor positions for every tab from its
// distance to the selected page, resolves overlaps between neighbors, and
// interpolates on-screen positions as the carousel scrolls. All coordinates
// are terminal columns.
package strip

import "fmt"

// TabPosition holds the anchor and current positions for one tab.
//
// Rest is where the tab sits when no gesture is in progress. Left is where it
// sits at the left-shifted extreme (the next page flush against the center),
// Right at the right-shifted extreme. Current is the position actually used
// for layout, refreshed on every interpolation tick.
type TabPosition struct {
	Rest  int
	Left  int
	Right int

	Current int

	Width  int
	Height int
}

func (p TabPosition) String() string {
	return fmt.Sprintf("rest: %d, left: %d, right: %d, current: %d",
		p.Rest, p.Left, p.Right, p.Current)
}

// Rect is the layout rectangle for one tab, exposed to the host layout pass.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the column x falls inside the rectangle.
func (r Rect) Contains(x int) bool {
	return x >= r.X && x < r.X+r.Width
}
