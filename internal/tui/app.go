// Package tui provides the interactive Bubble Tea viewer for swipedeck.
package tui

import (
	"fmt"
	"strings"
	"time"

	"swipedeck/internal/carousel"
	"swipedeck/internal/config"
	"swipedeck/internal/deck"
	"swipedeck/internal/store"
	"swipedeck/internal/strip"
	"swipedeck/internal/tui/components"
	"swipedeck/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 24

	stripHeight  = 1
	statusHeight = 1
	contentPad   = 2 // left margin inside a page
)

// animTickMsg drives one frame of the page-change spring.
type animTickMsg struct{}

// App is the root Bubble Tea model.
type App struct {
	deck *deck.Deck
	cfg  config.Config
	st   *store.Store // nil when remembering is disabled

	strip *strip.Strip
	car   *carousel.Carousel
	tabs  []*stripTab

	vp      viewport.Model
	vpPage  int
	wrapped []string

	width  int
	height int
	ready  bool

	restorePage int
	ticking     bool
	mouseDown   bool

	// First-run setup (huh form). The form holds pointers into setupVals, so
	// the answers must live behind a pointer shared by every copy of the
	// model, not in the model value itself.
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

// NewApp creates the viewer model. The store may be nil; last-page persistence
// is skipped then.
func NewApp(d *deck.Deck, cfg config.Config, st *store.Store) App {
	theme.SetActive(cfg.Appearance.Theme)

	tabs := newTabs(d.Titles())
	s := strip.New(strip.Options{OutsideOffset: cfg.General.OutsideOffset})
	s.SetAdapter(deckAdapter{tabs: tabs})

	car := carousel.New(carousel.Config{
		Pages:     d.Count(),
		PageWidth: 1, // real width arrives with the first WindowSizeMsg
		FPS:       cfg.Animation.FPS,
		Frequency: cfg.Animation.Frequency,
		Damping:   cfg.Animation.Damping,
	})
	s.SetPager(car)

	car.OnPageScrolled(s.PageScrolled)
	car.OnPageSelected(func(i int) {
		s.PageSelected(i)
		if st != nil {
			_ = st.SaveLastPage(d.Key(), d.Name, i, d.Count())
		}
	})

	restore := 0
	if st != nil {
		if page, ok, err := st.LastPage(d.Key()); err == nil && ok {
			if page >= 0 && page < d.Count() {
				restore = page
			}
		}
	}

	a := App{
		deck:        d,
		cfg:         cfg,
		st:          st,
		strip:       s,
		car:         car,
		tabs:        tabs,
		restorePage: restore,
		needSetup:   !config.Exists(),
	}
	if a.needSetup {
		a.setupVals = &setupValues{}
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

// WithStartPage overrides the restored page with an explicit one (0-based,
// clamped to the deck).
func (a App) WithStartPage(page int) App {
	if page < 0 {
		page = 0
	}
	if page > a.deck.Count()-1 {
		page = a.deck.Count() - 1
	}
	a.restorePage = page
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}

		a.car.SetPageWidth(max(msg.Width, 1))
		a.strip.Resize(msg.Width)
		a.rewrap()

		a.vp = viewport.New(msg.Width, a.contentHeight())
		if !a.ready {
			a.ready = true
			a.car.JumpTo(a.restorePage)
		}
		a.vpPage = -1 // force content refresh
		a.syncViewport()
		return a, nil

	case animTickMsg:
		a.car.Step()
		a.syncViewport()
		if a.car.Animating() {
			return a, animTick(a.cfg.Animation.FPS)
		}
		a.ticking = false
		return a, nil

	case tea.MouseMsg:
		if !a.ready || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, a.quit()
		}

		// First-run setup intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if !a.ready {
			return a, nil
		}

		switch key {
		case "q", "esc":
			return a, a.quit()

		case "l", "right":
			return a.selectPage(a.car.CurrentPage() + 1)
		case "h", "left":
			return a.selectPage(a.car.CurrentPage() - 1)
		case "g", "home":
			return a.selectPage(0)
		case "G", "end":
			return a.selectPage(a.deck.Count() - 1)

		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			return a.selectPage(int(key[0] - '1'))

		case "j", "down", "k", "up", "ctrl+d", "ctrl+u", "pgdown", "pgup":
			var cmd tea.Cmd
			a.vp, cmd = a.vp.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// updateMouse routes pointer events: a press on the strip row opens a drag
// session and every move until release feeds the pager, wherever the pointer
// wanders. The wheel scrolls page content.
func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.vp.SetYOffset(a.vp.YOffset - 1)
			return a, nil
		case tea.MouseButtonWheelDown:
			a.vp.SetYOffset(a.vp.YOffset + 1)
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y < stripHeight {
				a.mouseDown = true
				a.strip.PressStart(msg.X)
			}
		}
		return a, nil

	case tea.MouseActionMotion:
		if a.mouseDown {
			a.strip.PressMove(msg.X)
			a.syncViewport()
		}
		return a, nil

	case tea.MouseActionRelease:
		if a.mouseDown {
			a.mouseDown = false
			a.strip.PressEnd(msg.X)
			a.syncViewport()
			cmd := a.startAnim()
			return a, cmd
		}
		return a, nil
	}
	return a, nil
}

// selectPage animates to a page, clamping out-of-range targets.
func (a App) selectPage(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= a.deck.Count() {
		return a, nil
	}
	a.car.SetCurrentPage(i)
	a.syncViewport()
	cmd := a.startAnim()
	return a, cmd
}

// startAnim schedules spring frames unless they are already running.
func (a *App) startAnim() tea.Cmd {
	if !a.car.Animating() || a.ticking {
		return nil
	}
	a.ticking = true
	return animTick(a.cfg.Animation.FPS)
}

func animTick(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return animTickMsg{}
	})
}

func (a App) quit() tea.Cmd {
	if a.st != nil {
		_ = a.st.SaveLastPage(a.deck.Key(), a.deck.Name, a.car.CurrentPage(), a.deck.Count())
	}
	return tea.Quit
}

func (a App) contentHeight() int {
	h := a.height - stripHeight - statusHeight
	if h < 1 {
		h = 1
	}
	return h
}

// rewrap re-flows every page body for the current width.
func (a *App) rewrap() {
	w := a.width - 2*contentPad
	if w < 10 {
		w = 10
	}
	margin := strings.Repeat(" ", contentPad)

	a.wrapped = make([]string, a.deck.Count())
	for i, p := range a.deck.Pages {
		lines := strings.Split(deck.Wrap(p.Body, w), "\n")
		for j, l := range lines {
			lines[j] = margin + l
		}
		a.wrapped[i] = strings.Join(lines, "\n")
	}
}

// syncViewport loads the current page into the viewport when the selection
// moved since the last call.
func (a *App) syncViewport() {
	cur := a.car.CurrentPage()
	if cur == a.vpPage || cur >= len(a.wrapped) {
		return
	}
	a.vpPage = cur
	a.vp.SetContent(a.wrapped[cur])
	a.vp.SetYOffset(0)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.cfg = applySetup(a.cfg, *a.setupVals)
		_ = config.Save(a.cfg)
		theme.SetActive(a.cfg.Appearance.Theme)
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  swipedeck needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	header := a.viewStrip()
	content := a.viewContent()
	status := components.RenderStatusBar(a.width, a.deck.Name, a.car.CurrentPage(), a.deck.Count())

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

// viewStrip renders the tab strip row from the engine's current geometry.
func (a App) viewStrip() string {
	cells := make([]components.TabCell, len(a.tabs))
	for i, tab := range a.tabs {
		p := a.strip.Position(i)
		cells[i] = components.TabCell{
			Label:     tab.label,
			X:         p.Current,
			Width:     p.Width,
			Selected:  tab.selected,
			Highlight: tab.highlight,
		}
	}
	return components.RenderTabStrip(cells, a.width)
}

// viewContent shows the settled page through the viewport, or composes the
// two pages in flight while the carousel is between page boundaries.
func (a App) viewContent() string {
	t := theme.Active
	h := a.contentHeight()

	index, offset := a.car.Progress()
	moving := a.car.Animating() || a.car.IsFakeDragging()
	if moving && offset > 0 && index+1 < len(a.wrapped) {
		slide := components.ComposeSlide(a.wrapped[index], a.wrapped[index+1], offset, a.width, h)
		return lipgloss.NewStyle().Foreground(t.TextPrimary).Render(slide)
	}

	return lipgloss.NewStyle().Foreground(t.TextPrimary).Render(a.vp.View())
}
