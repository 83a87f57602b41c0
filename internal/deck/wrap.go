package deck

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Wrap soft-wraps body text to the given column width, preserving blank lines
// and leaving lines that already fit untouched. Width is display cells, so
// wide runes count double. Words longer than the width are broken hard.
func Wrap(text string, width int) string {
	if width < 1 {
		return text
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	var (
		lines []string
		cur   string
		curW  int
	)
	for _, word := range strings.Fields(line) {
		w := word
		for runewidth.StringWidth(w) > width {
			if curW > 0 {
				lines = append(lines, cur)
				cur, curW = "", 0
			}
			head := runewidth.Truncate(w, width, "")
			if head == "" {
				// a single rune wider than the whole line
				_, n := utf8.DecodeRuneInString(w)
				head = w[:n]
			}
			lines = append(lines, head)
			w = w[len(head):]
		}
		ww := runewidth.StringWidth(w)
		switch {
		case curW == 0:
			cur, curW = w, ww
		case curW+1+ww <= width:
			cur += " " + w
			curW += 1 + ww
		default:
			lines = append(lines, cur)
			cur, curW = w, ww
		}
	}
	if curW > 0 {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
