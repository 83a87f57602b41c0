package strip

// Pager is the paged-content carousel the strip stays synchronized with. It
// owns the page count, the current page and the absolute scroll coordinate;
// the strip only ever issues jump and fake-drag commands against it.
type Pager interface {
	PageCount() int
	CurrentPage() int
	ScrollX() int

	SetCurrentPage(index int)

	BeginFakeDrag() bool
	FakeDragBy(dx int)
	EndFakeDrag()
	IsFakeDragging() bool
}

// Tab is one renderable tab handle supplied by the adapter. The strip reads
// its measured extents and pushes the selection flag and highlight intensity
// back into it.
type Tab interface {
	Size() (width, height int)
	Padding() (left, right int)
	SetSelected(selected bool)
	SetHighlight(pct int)
}

// Adapter supplies one tab handle per carousel page.
type Adapter interface {
	Count() int
	Tab(index int) Tab
}

// Options configures a Strip.
type Options struct {
	// OutsideOffset is the distance beyond the strip edge at which off-screen
	// tabs park. Negative means "use the strip width", which guarantees a
	// parked tab stays invisible for the whole gesture.
	OutsideOffset int
}

// Strip is the tab strip controller. All mutation happens synchronously
// inside one of its entry points (Resize, DataChanged, PageScrolled,
// PageSelected, the pointer handlers), which the host event loop dispatches
// one at a time.
type Strip struct {
	pager   Pager
	adapter Adapter

	positions []TabPosition
	tabs      []Tab
	padLeft   []int
	padRight  []int

	count           int
	width           int
	height          int
	center          int
	highlightOffset int
	outside         int // effective outside offset
	configuredOut   int

	selected    int // page the current alignment was computed for
	selectedTab int // tab carrying the selected visual
	lastScrollX int
	dir         Direction // latched for the in-progress gesture

	pressX  int
	dragged bool
}

// New creates an empty strip. It stays inert until both a pager and an
// adapter are attached and DataChanged is called.
func New(opts Options) *Strip {
	return &Strip{configuredOut: opts.OutsideOffset}
}

// SetPager binds the carousel. The caller is responsible for routing the
// carousel's page-scroll and page-selected events into PageScrolled and
// PageSelected.
func (s *Strip) SetPager(p Pager) {
	s.pager = p
	if p != nil {
		s.lastScrollX = p.ScrollX()
	}
	if s.pager != nil && s.adapter != nil {
		s.initTabs()
	}
}

// SetAdapter binds the tab supplier.
func (s *Strip) SetAdapter(a Adapter) {
	s.adapter = a
	if s.pager != nil && s.adapter != nil {
		s.initTabs()
	}
}

// DataChanged tells the strip the tab set changed: the position arena is
// rebuilt, tabs are re-measured and the layout snaps to the new alignment.
// A no-op until both collaborators are attached.
func (s *Strip) DataChanged() {
	if s.pager == nil || s.adapter == nil {
		return
	}
	s.initTabs()
	s.measureTabs()
	s.calculatePositions(true)
}

// initTabs rebuilds the per-tab state from the adapter.
func (s *Strip) initTabs() {
	s.positions = s.positions[:0]
	s.tabs = s.tabs[:0]
	s.padLeft = s.padLeft[:0]
	s.padRight = s.padRight[:0]

	s.count = s.adapter.Count()
	for i := 0; i < s.count; i++ {
		tab := s.adapter.Tab(i)
		l, r := tab.Padding()
		s.tabs = append(s.tabs, tab)
		s.positions = append(s.positions, TabPosition{})
		s.padLeft = append(s.padLeft, l)
		s.padRight = append(s.padRight, r)
	}

	s.selected = s.pager.CurrentPage()
	s.selectedTab = s.selected
	if s.selectedTab >= 0 && s.selectedTab < s.count {
		s.tabs[s.selectedTab].SetSelected(true)
	}
}

// measureTabs records each tab's measured extents and derives the strip
// height from the tallest tab.
func (s *Strip) measureTabs() {
	maxH := 0
	for i, tab := range s.tabs {
		w, h := tab.Size()
		s.positions[i].Width = w
		s.positions[i].Height = h
		if h > maxH {
			maxH = h
		}
	}
	s.height = maxH
}

// Resize tells the strip its width changed. Alignment recomputes and the
// layout snaps, the same as a dataset change.
func (s *Strip) Resize(width int) {
	s.width = width
	s.center = width / 2
	s.highlightOffset = width / 5

	s.outside = s.configuredOut
	if s.outside < 0 {
		s.outside = width
	}

	if s.pager != nil {
		s.selected = s.pager.CurrentPage()
	}
	s.measureTabs()
	s.calculatePositions(true)
}

// PageScrolled is the carousel's scroll-progress callback. index is the
// leftmost visible page, offset its fractional progress in [0,1), scrollX the
// carousel's absolute scroll coordinate (used only to infer direction).
func (s *Strip) PageScrolled(index int, offset float64, scrollX int) {
	if s.count == 0 {
		return
	}

	// A new leftmost page means new anchors; current positions are left to
	// the interpolation below, no snap.
	if index != s.selected {
		s.selected = index
		s.calculatePositions(false)
	}

	var d Direction
	switch {
	case scrollX < s.lastScrollX:
		d = Left
	case scrollX > s.lastScrollX:
		d = Right
	default:
		d = None
	}
	s.lastScrollX = scrollX

	// The first non-none direction latches for the rest of the gesture.
	if s.dir == None {
		s.dir = d
	}

	x := Mirror(s.dir, offset)
	for i := range s.positions {
		p := &s.positions[i]
		y0 := float64(SourceAnchor(s.dir, *p))
		y1 := float64(TargetAnchor(s.dir, *p))
		p.Current = int(y0 + (y1-y0)*x)
	}

	s.refreshHighlights()

	// A tick landing exactly on a page boundary ends the gesture as far as
	// the latch is concerned: the next moving tick re-latches. This also
	// covers the final frame of a settle animation, which still carries a
	// scroll delta.
	if offset == 0 {
		s.dir = None
	}
}

// PageSelected is the carousel's page-selected callback; it only toggles the
// selection visual between the old and new tab.
func (s *Strip) PageSelected(index int) {
	if index < 0 || index >= s.count {
		return
	}
	if s.selectedTab >= 0 && s.selectedTab < s.count {
		s.tabs[s.selectedTab].SetSelected(false)
	}
	s.selectedTab = index
	s.tabs[index].SetSelected(true)
}

// Count returns the number of tabs.
func (s *Strip) Count() int { return s.count }

// Width returns the strip width.
func (s *Strip) Width() int { return s.width }

// Height returns the measured strip height (the tallest tab).
func (s *Strip) Height() int { return s.height }

// SelectedTab returns the tab index carrying the selected visual.
func (s *Strip) SelectedTab() int { return s.selectedTab }

// Latched returns the direction latched for the in-progress gesture.
func (s *Strip) Latched() Direction { return s.dir }

// Position returns a copy of tab i's position record.
func (s *Strip) Position(i int) TabPosition { return s.positions[i] }

// TabRect returns the layout rectangle for tab i.
func (s *Strip) TabRect(i int) Rect {
	p := s.positions[i]
	return Rect{X: p.Current, Y: 0, Width: p.Width, Height: p.Height}
}

// TabAt returns the index of the tab whose current rectangle contains the
// column x, or -1.
func (s *Strip) TabAt(x int) int {
	for i := range s.positions {
		if s.TabRect(i).Contains(x) {
			return i
		}
	}
	return -1
}
