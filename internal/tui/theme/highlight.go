package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// HighlightColor blends a tab label color for a highlight percentage in
// [0,100]: 0 is the muted label color, 100 the bright accent. Themes whose
// colors are ANSI palette indexes can't be blended; they switch hard at 50.
func HighlightColor(t Theme, pct int) lipgloss.Color {
	if pct <= 0 {
		return t.TextMuted
	}
	if pct >= 100 {
		return t.AccentBright
	}

	from, err1 := colorful.Hex(string(t.TextMuted))
	to, err2 := colorful.Hex(string(t.AccentBright))
	if err1 != nil || err2 != nil {
		if pct < 50 {
			return t.TextMuted
		}
		return t.AccentBright
	}

	blended := from.BlendLab(to, float64(pct)/100).Clamped()
	return lipgloss.Color(blended.Hex())
}
