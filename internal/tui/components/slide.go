package components

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ComposeSlide renders the sliding page area mid-animation: the pages at
// index and index+1 sit side by side on a virtual film strip and the window
// shows the columns starting at the fractional offset into the left page.
// Pages are plain pre-wrapped text; styling is applied by the caller. Widths
// are display cells, so wide runes count double.
func ComposeSlide(left, right string, offset float64, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	shift := int(offset * float64(width))
	if shift <= 0 {
		return frame(left, width, height)
	}
	if shift >= width {
		return frame(right, width, height)
	}

	leftLines := padLines(left, width, height)
	rightLines := padLines(right, width, height)

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		l := runewidth.TruncateLeft(leftLines[y], shift, "")
		l = runewidth.Truncate(l, width-shift, "")
		if pad := (width - shift) - runewidth.StringWidth(l); pad > 0 {
			// a wide rune split by the cut leaves a one-cell hole
			l = strings.Repeat(" ", pad) + l
		}
		r := runewidth.Truncate(rightLines[y], shift, "")
		if pad := shift - runewidth.StringWidth(r); pad > 0 {
			r += strings.Repeat(" ", pad)
		}
		rows[y] = l + r
	}
	return strings.Join(rows, "\n")
}

// frame pads a single page to exactly width x height.
func frame(page string, width, height int) string {
	return strings.Join(padLines(page, width, height), "\n")
}

// padLines splits a page into exactly height lines of exactly width cells.
func padLines(page string, width, height int) []string {
	src := strings.Split(page, "\n")
	lines := make([]string, height)
	for y := range lines {
		var l string
		if y < len(src) {
			l = runewidth.Truncate(src[y], width, "")
		}
		lines[y] = runewidth.FillRight(l, width)
	}
	return lines
}
