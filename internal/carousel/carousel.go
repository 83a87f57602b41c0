// Package carousel implements the paged content pager the tab strip follows:
// it owns the page count, the current page and the absolute scroll coordinate
// (in terminal columns), animates page changes with a spring, and accepts
// externally supplied deltas through a fake-drag session so the strip can
// drive scrolling.
package carousel

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Below this distance and velocity the spring is considered settled and the
// scroll coordinate snaps exactly onto the target page.
const settleEps = 0.5

// ScrolledFunc receives every scroll tick: the leftmost visible page, its
// fractional progress in [0,1) and the absolute scroll coordinate.
type ScrolledFunc func(index int, offset float64, scrollX int)

// SelectedFunc receives page selection changes.
type SelectedFunc func(index int)

// Config controls a carousel.
type Config struct {
	Pages     int
	PageWidth int

	// Spring shape; zero values fall back to a critically damped 7 rad/s
	// spring sampled at 60 FPS.
	FPS       int
	Frequency float64
	Damping   float64
}

// Carousel is a horizontally paged scroller. It is not safe for concurrent
// use; the host event loop must serialize calls, which it does naturally for
// a single TUI program.
type Carousel struct {
	count     int
	pageWidth int
	current   int

	x   float64 // absolute scroll coordinate
	vel float64

	target    int
	animating bool
	fakeDrag  bool

	spring harmonica.Spring

	onScrolled ScrolledFunc
	onSelected SelectedFunc
}

// New creates a carousel resting on page zero.
func New(cfg Config) *Carousel {
	if cfg.Pages < 1 {
		cfg.Pages = 1
	}
	if cfg.PageWidth < 1 {
		cfg.PageWidth = 1
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.Frequency <= 0 {
		cfg.Frequency = 7.0
	}
	if cfg.Damping <= 0 {
		cfg.Damping = 1.0
	}

	return &Carousel{
		count:     cfg.Pages,
		pageWidth: cfg.PageWidth,
		spring:    harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
	}
}

// OnPageScrolled registers the scroll-progress callback.
func (c *Carousel) OnPageScrolled(fn ScrolledFunc) { c.onScrolled = fn }

// OnPageSelected registers the page-selection callback.
func (c *Carousel) OnPageSelected(fn SelectedFunc) { c.onSelected = fn }

// PageCount returns the number of pages.
func (c *Carousel) PageCount() int { return c.count }

// CurrentPage returns the selected page index.
func (c *Carousel) CurrentPage() int { return c.current }

// PageWidth returns the width of one page in columns.
func (c *Carousel) PageWidth() int { return c.pageWidth }

// ScrollX returns the absolute scroll coordinate, rounded to a column.
func (c *Carousel) ScrollX() int { return int(math.Round(c.x)) }

// Animating reports whether a scroll-to-page animation is in flight.
func (c *Carousel) Animating() bool { return c.animating }

// Progress returns the leftmost visible page and its fractional offset.
func (c *Carousel) Progress() (index int, offset float64) {
	return c.progressAt(c.x)
}

func (c *Carousel) progressAt(x float64) (int, float64) {
	pw := float64(c.pageWidth)
	index := int(math.Floor(x / pw))
	if index < 0 {
		index = 0
	}
	if index > c.count-1 {
		index = c.count - 1
	}
	offset := x/pw - float64(index)
	if offset < 0 {
		offset = 0
	}
	if offset >= 1 {
		offset = 0
		// x clamps to the last page boundary, so this only happens through
		// float noise right on a boundary.
	}
	return index, offset
}

func (c *Carousel) emitScrolled() {
	if c.onScrolled == nil {
		return
	}
	index, offset := c.progressAt(c.x)
	c.onScrolled(index, offset, c.ScrollX())
}

func (c *Carousel) clampX(x float64) float64 {
	max := float64((c.count - 1) * c.pageWidth)
	if x < 0 {
		return 0
	}
	if x > max {
		return max
	}
	return x
}

// SetCurrentPage selects a page and spring-animates the scroll coordinate
// toward it. The selection callback fires immediately; the scroll animation
// is advanced by Step. Ignored while a fake drag is active.
func (c *Carousel) SetCurrentPage(index int) {
	if c.fakeDrag {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > c.count-1 {
		index = c.count - 1
	}

	if index != c.current {
		c.current = index
		if c.onSelected != nil {
			c.onSelected(index)
		}
	}
	c.target = index
	c.animating = c.x != float64(index*c.pageWidth)
}

// JumpTo moves to a page instantly, without animation. Used when restoring a
// previous session.
func (c *Carousel) JumpTo(index int) {
	if index < 0 {
		index = 0
	}
	if index > c.count-1 {
		index = c.count - 1
	}
	changed := index != c.current
	c.current = index
	c.target = index
	c.x = float64(index * c.pageWidth)
	c.vel = 0
	c.animating = false
	if changed && c.onSelected != nil {
		c.onSelected(index)
	}
	c.emitScrolled()
}

// Step advances the spring one frame and emits a scroll tick. The final tick
// of an animation lands exactly on the target page with offset zero.
func (c *Carousel) Step() {
	if !c.animating {
		return
	}
	goal := float64(c.target * c.pageWidth)
	c.x, c.vel = c.spring.Update(c.x, c.vel, goal)
	c.x = c.clampX(c.x)
	if math.Abs(c.x-goal) < settleEps && math.Abs(c.vel) < settleEps {
		c.x = goal
		c.vel = 0
		c.animating = false
	}
	c.emitScrolled()
}

// BeginFakeDrag opens a fake-drag session: the carousel stops animating and
// accepts externally supplied deltas. Refused while a session is already
// active.
func (c *Carousel) BeginFakeDrag() bool {
	if c.fakeDrag {
		return false
	}
	c.fakeDrag = true
	c.animating = false
	c.vel = 0
	return true
}

// FakeDragBy scrolls by dx columns (positive toward higher pages) inside a
// fake-drag session. Ignored outside one.
func (c *Carousel) FakeDragBy(dx int) {
	if !c.fakeDrag {
		return
	}
	c.x = c.clampX(c.x + float64(dx))
	c.emitScrolled()
}

// EndFakeDrag closes the session and snaps to the nearest page: the selection
// callback fires if the page changed, then the spring brings the scroll
// coordinate home.
func (c *Carousel) EndFakeDrag() {
	if !c.fakeDrag {
		return
	}
	c.fakeDrag = false

	target := int(math.Round(c.x / float64(c.pageWidth)))
	if target < 0 {
		target = 0
	}
	if target > c.count-1 {
		target = c.count - 1
	}
	if target != c.current {
		c.current = target
		if c.onSelected != nil {
			c.onSelected(target)
		}
	}
	c.target = target

	if c.x == float64(target*c.pageWidth) {
		// Already resting on the page: emit the settle tick directly.
		c.emitScrolled()
		return
	}
	c.animating = true
}

// IsFakeDragging reports whether a fake-drag session is active.
func (c *Carousel) IsFakeDragging() bool { return c.fakeDrag }

// SetPageWidth rescales the scroll coordinate so the carousel keeps showing
// the same page at the same fractional progress after a resize.
func (c *Carousel) SetPageWidth(w int) {
	if w < 1 || w == c.pageWidth {
		return
	}
	index, offset := c.progressAt(c.x)
	c.pageWidth = w
	c.x = (float64(index) + offset) * float64(w)
}

// SetPageCount adjusts the page count after a dataset change, clamping the
// current page and scroll coordinate into the new range.
func (c *Carousel) SetPageCount(n int) {
	if n < 1 {
		n = 1
	}
	c.count = n
	if c.current > n-1 {
		c.current = n - 1
	}
	if c.target > n-1 {
		c.target = n - 1
	}
	c.x = c.clampX(c.x)
}
