package strip

import "testing"

func TestFakeDragDeltas(t *testing.T) {
	s, pager, _ := newTestStrip(5, 500, 80, 2)
	pager.cmds = nil

	s.PressStart(100)
	if !pager.dragging {
		t.Fatal("press did not begin a fake drag")
	}

	s.PressMove(70)
	s.PressMove(90)
	s.PressEnd(90)

	want := []pagerCmd{
		{"begin", 0},
		{"dragBy", 30},
		{"dragBy", -20},
		{"end", 0},
	}
	if len(pager.cmds) != len(want) {
		t.Fatalf("commands = %v, want %v", pager.cmds, want)
	}
	for i, c := range pager.cmds {
		if c != want[i] {
			t.Fatalf("command %d = %v, want %v", i, c, want[i])
		}
	}
}

func TestDragDoesNotTap(t *testing.T) {
	s, pager, _ := newTestStrip(5, 500, 80, 2)

	// Press and release over the selected tab, but with movement in between:
	// no page jump may be issued.
	s.PressStart(250)
	s.PressMove(240)
	s.PressMove(250)
	s.PressEnd(250)

	for _, c := range pager.cmds {
		if c.name == "setPage" {
			t.Fatalf("drag issued a page jump: %v", pager.cmds)
		}
	}
}

func TestTapSelectsTab(t *testing.T) {
	s, pager, _ := newTestStrip(5, 500, 80, 2)

	// Left neighbor rests at 0..79.
	s.PressStart(40)
	s.PressEnd(40)

	found := false
	for _, c := range pager.cmds {
		if c.name == "setPage" {
			if c.arg != 1 {
				t.Fatalf("tap selected page %d, want 1", c.arg)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("tap issued no page jump: %v", pager.cmds)
	}
}

func TestTapOutsideTabsIsIgnored(t *testing.T) {
	s, pager, _ := newTestStrip(5, 500, 80, 2)

	s.PressStart(150) // gap between left neighbor and center
	s.PressEnd(150)

	for _, c := range pager.cmds {
		if c.name == "setPage" {
			t.Fatalf("tap in gap issued a page jump: %v", pager.cmds)
		}
	}
}

func TestMoveWithoutSessionIsIgnored(t *testing.T) {
	s, pager, _ := newTestStrip(5, 500, 80, 2)

	// The pager refuses the session (a real touch already drives it).
	pager.dragging = false
	s.PressMove(70)

	for _, c := range pager.cmds {
		if c.name == "dragBy" {
			t.Fatalf("move without a session fed the pager: %v", pager.cmds)
		}
	}
}
