package components

import (
	"strings"

	"swipedeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TabCell is one tab placed on the strip row: an absolute column, a width and
// the visual state computed by the strip engine.
type TabCell struct {
	Label     string
	X         int
	Width     int
	Selected  bool
	Highlight int // 0..100
}

// Segment is a horizontal run of the strip row: either a slice of a tab's
// label box or a gap of background. Cell indexes into the input cells, -1 for
// a gap.
type Segment struct {
	Start int
	Text  string
	Cell  int
}

// PlaceTabs lays the cells out on a row of the given width. Cells are painted
// left to right in X order; where two boxes overlap the later one starts where
// the earlier one ends, and anything outside [0, width) is clipped.
func PlaceTabs(cells []TabCell, width int) []Segment {
	order := make([]int, len(cells))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && cells[order[j]].X < cells[order[j-1]].X; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	var segs []Segment
	cursor := 0
	for _, idx := range order {
		c := cells[idx]
		box := tabBox(c.Label, c.Width)

		start := c.X
		if start < cursor {
			start = cursor
		}
		end := c.X + c.Width
		if end > width {
			end = width
		}
		if end <= start || start >= width {
			continue
		}

		if start > cursor {
			segs = append(segs, Segment{Start: cursor, Text: strings.Repeat(" ", start-cursor), Cell: -1})
		}
		segs = append(segs, Segment{Start: start, Text: clipBox(box, start-c.X, end-start), Cell: idx})
		cursor = end
	}
	if cursor < width {
		segs = append(segs, Segment{Start: cursor, Text: strings.Repeat(" ", width-cursor), Cell: -1})
	}
	return segs
}

// tabBox centers the label in a box of the given width, truncating if the box
// is too small. Widths are display cells, so wide runes count double.
func tabBox(label string, width int) string {
	label = runewidth.Truncate(label, width, "")
	lw := runewidth.StringWidth(label)
	off := (width - lw) / 2
	return strings.Repeat(" ", off) + label + strings.Repeat(" ", width-off-lw)
}

// clipBox cuts skip cells off the left of a box and keeps the next want
// cells. A wide rune split by a cut is replaced with padding so the clipped
// text still covers exactly want cells.
func clipBox(box string, skip, want int) string {
	if skip > 0 {
		box = runewidth.TruncateLeft(box, skip, "")
	}
	box = runewidth.Truncate(box, want, "")
	if pad := want - runewidth.StringWidth(box); pad > 0 {
		box += strings.Repeat(" ", pad)
	}
	return box
}

// RenderTabStrip renders the strip row with theme styling: the selected tab
// sits on a raised surface and every label's color follows its highlight
// percentage.
func RenderTabStrip(cells []TabCell, width int) string {
	t := theme.Active

	gapStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for _, seg := range PlaceTabs(cells, width) {
		if seg.Cell < 0 {
			b.WriteString(gapStyle.Render(seg.Text))
			continue
		}
		c := cells[seg.Cell]
		style := lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(theme.HighlightColor(t, c.Highlight))
		if c.Selected {
			style = style.Background(t.SurfaceHover).Bold(true)
		}
		b.WriteString(style.Render(seg.Text))
	}
	return b.String()
}
