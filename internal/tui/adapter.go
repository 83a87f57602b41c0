package tui

import (
	"swipedeck/internal/strip"

	"github.com/charmbracelet/lipgloss"
)

// stripTab is the visual state of one tab: the strip engine pushes selection
// and highlight values into it and the view reads them back out.
type stripTab struct {
	label     string
	selected  bool
	highlight int
}

func (t *stripTab) Size() (int, int) {
	// one column of padding each side of the label; width in display cells,
	// so wide runes count double
	return lipgloss.Width(t.label) + 2, 1
}

func (t *stripTab) Padding() (int, int)  { return 1, 1 }
func (t *stripTab) SetSelected(b bool)   { t.selected = b }
func (t *stripTab) SetHighlight(pct int) { t.highlight = pct }

// deckAdapter exposes a fixed slice of tabs to the strip engine.
type deckAdapter struct {
	tabs []*stripTab
}

func (a deckAdapter) Count() int          { return len(a.tabs) }
func (a deckAdapter) Tab(i int) strip.Tab { return a.tabs[i] }

func newTabs(titles []string) []*stripTab {
	tabs := make([]*stripTab, len(titles))
	for i, title := range titles {
		tabs[i] = &stripTab{label: title}
	}
	return tabs
}
