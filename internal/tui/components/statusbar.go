package components

import (
	"fmt"

	"swipedeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, the
// deck name and page position on the right.
func RenderStatusBar(width int, deckName string, page, pageCount int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [h/l]page  [g/G]ends  [q]uit"
	right := fmt.Sprintf("%s  %d/%d ", deckName, page+1, pageCount)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
