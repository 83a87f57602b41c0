package carousel

import "testing"

type tick struct {
	index   int
	offset  float64
	scrollX int
}

func newTestCarousel(pages, pageWidth int) (*Carousel, *[]tick, *[]int) {
	c := New(Config{Pages: pages, PageWidth: pageWidth})
	ticks := &[]tick{}
	selections := &[]int{}
	c.OnPageScrolled(func(i int, off float64, x int) {
		*ticks = append(*ticks, tick{i, off, x})
	})
	c.OnPageSelected(func(i int) {
		*selections = append(*selections, i)
	})
	return c, ticks, selections
}

// settle runs the animation to completion, failing the test if the spring
// never converges.
func settle(t *testing.T, c *Carousel) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !c.Animating() {
			return
		}
		c.Step()
	}
	t.Fatal("animation did not settle within 1000 steps")
}

func TestProgress(t *testing.T) {
	c := New(Config{Pages: 4, PageWidth: 100})

	for _, tc := range []struct {
		x      float64
		index  int
		offset float64
	}{
		{0, 0, 0},
		{50, 0, 0.5},
		{100, 1, 0},
		{175, 1, 0.75},
		{300, 3, 0},
	} {
		c.x = tc.x
		index, offset := c.Progress()
		if index != tc.index || offset != tc.offset {
			t.Fatalf("Progress at x=%v = (%d, %v), want (%d, %v)",
				tc.x, index, offset, tc.index, tc.offset)
		}
	}
}

func TestSetCurrentPageAnimatesToTarget(t *testing.T) {
	c, ticks, selections := newTestCarousel(3, 100)

	c.SetCurrentPage(1)
	if len(*selections) != 1 || (*selections)[0] != 1 {
		t.Fatalf("selections = %v, want [1]", *selections)
	}
	if !c.Animating() {
		t.Fatal("SetCurrentPage did not start an animation")
	}

	settle(t, c)
	if c.ScrollX() != 100 {
		t.Fatalf("settled at %d, want 100", c.ScrollX())
	}

	last := (*ticks)[len(*ticks)-1]
	if last.index != 1 || last.offset != 0 || last.scrollX != 100 {
		t.Fatalf("final tick = %+v, want index 1 offset 0 scrollX 100", last)
	}

	// Scroll coordinate only grew on the way to a higher page.
	prev := -1
	for _, tk := range *ticks {
		if tk.scrollX < prev {
			t.Fatalf("scroll coordinate moved backwards: %v", *ticks)
		}
		prev = tk.scrollX
	}
}

func TestSetCurrentPageSamePageNoAnimation(t *testing.T) {
	c, _, selections := newTestCarousel(3, 100)

	c.SetCurrentPage(0)
	if c.Animating() {
		t.Fatal("re-selecting the resting page started an animation")
	}
	if len(*selections) != 0 {
		t.Fatalf("selections = %v, want none", *selections)
	}
}

func TestFakeDragFeedsTicks(t *testing.T) {
	c, ticks, _ := newTestCarousel(3, 100)

	if !c.BeginFakeDrag() {
		t.Fatal("BeginFakeDrag refused")
	}
	if c.BeginFakeDrag() {
		t.Fatal("second BeginFakeDrag accepted during active session")
	}

	c.FakeDragBy(30)
	c.FakeDragBy(-10)

	want := []tick{
		{0, 0.3, 30},
		{0, 0.2, 20},
	}
	if len(*ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", *ticks, want)
	}
	for i, tk := range *ticks {
		if tk != want[i] {
			t.Fatalf("tick %d = %+v, want %+v", i, tk, want[i])
		}
	}
}

func TestFakeDragClampsToContent(t *testing.T) {
	c, _, _ := newTestCarousel(3, 100)

	c.BeginFakeDrag()
	c.FakeDragBy(-50)
	if c.ScrollX() != 0 {
		t.Fatalf("scrollX = %d after dragging past the start, want 0", c.ScrollX())
	}
	c.FakeDragBy(10_000)
	if c.ScrollX() != 200 {
		t.Fatalf("scrollX = %d after dragging past the end, want 200", c.ScrollX())
	}
}

func TestEndFakeDragSnapsToNearestPage(t *testing.T) {
	c, ticks, selections := newTestCarousel(3, 100)

	c.BeginFakeDrag()
	c.FakeDragBy(160)
	c.EndFakeDrag()

	if c.IsFakeDragging() {
		t.Fatal("session still active after EndFakeDrag")
	}
	if len(*selections) != 1 || (*selections)[0] != 2 {
		t.Fatalf("selections = %v, want [2]", *selections)
	}

	settle(t, c)
	if c.ScrollX() != 200 || c.CurrentPage() != 2 {
		t.Fatalf("settled at %d page %d, want 200 page 2", c.ScrollX(), c.CurrentPage())
	}
	last := (*ticks)[len(*ticks)-1]
	if last.offset != 0 {
		t.Fatalf("final tick offset = %v, want 0", last.offset)
	}
}

func TestEndFakeDragOnPageBoundaryEmitsSettleTick(t *testing.T) {
	c, ticks, _ := newTestCarousel(3, 100)

	c.BeginFakeDrag()
	c.FakeDragBy(100)
	c.EndFakeDrag()

	if c.Animating() {
		t.Fatal("no animation expected when released exactly on a page")
	}
	last := (*ticks)[len(*ticks)-1]
	if last.index != 1 || last.offset != 0 || last.scrollX != 100 {
		t.Fatalf("settle tick = %+v, want index 1 offset 0 scrollX 100", last)
	}
}

func TestSetCurrentPageIgnoredDuringFakeDrag(t *testing.T) {
	c, _, selections := newTestCarousel(3, 100)

	c.BeginFakeDrag()
	c.SetCurrentPage(2)
	if len(*selections) != 0 || c.Animating() {
		t.Fatalf("SetCurrentPage acted during fake drag: selections=%v", *selections)
	}
	c.EndFakeDrag()
}

func TestJumpToIsInstant(t *testing.T) {
	c, ticks, selections := newTestCarousel(4, 100)

	c.JumpTo(3)
	if c.Animating() {
		t.Fatal("JumpTo started an animation")
	}
	if c.ScrollX() != 300 || c.CurrentPage() != 3 {
		t.Fatalf("jumped to %d page %d, want 300 page 3", c.ScrollX(), c.CurrentPage())
	}
	if len(*selections) != 1 || (*selections)[0] != 3 {
		t.Fatalf("selections = %v, want [3]", *selections)
	}
	last := (*ticks)[len(*ticks)-1]
	if last.index != 3 || last.offset != 0 {
		t.Fatalf("tick = %+v, want index 3 offset 0", last)
	}
}

func TestSetPageWidthKeepsProgress(t *testing.T) {
	c, _, _ := newTestCarousel(3, 100)
	c.x = 150 // page 1, halfway

	c.SetPageWidth(60)
	if c.ScrollX() != 90 {
		t.Fatalf("scrollX = %d after resize, want 90", c.ScrollX())
	}
	index, offset := c.Progress()
	if index != 1 || offset != 0.5 {
		t.Fatalf("progress after resize = (%d, %v), want (1, 0.5)", index, offset)
	}
}

func TestSetPageCountClamps(t *testing.T) {
	c, _, _ := newTestCarousel(5, 100)
	c.JumpTo(4)

	c.SetPageCount(2)
	if c.CurrentPage() != 1 {
		t.Fatalf("current = %d after shrink, want 1", c.CurrentPage())
	}
	if c.ScrollX() != 100 {
		t.Fatalf("scrollX = %d after shrink, want 100", c.ScrollX())
	}
}
