package strip

import "testing"

func TestAnchorSelection(t *testing.T) {
	p := TabPosition{Rest: 100, Left: 40, Right: 160}

	for _, tc := range []struct {
		dir          Direction
		src, dst     int
	}{
		{None, 100, 100},
		{Left, 40, 100},
		{Right, 100, 40},
	} {
		if got := SourceAnchor(tc.dir, p); got != tc.src {
			t.Fatalf("SourceAnchor(%v) = %d, want %d", tc.dir, got, tc.src)
		}
		if got := TargetAnchor(tc.dir, p); got != tc.dst {
			t.Fatalf("TargetAnchor(%v) = %d, want %d", tc.dir, got, tc.dst)
		}
	}
}

func TestMirror(t *testing.T) {
	for _, tc := range []struct {
		dir      Direction
		in, want float64
	}{
		{Left, 0.25, 0.75},
		{Left, 0, 1},
		{Left, 1, 0},
		{Right, 0.25, 0.25},
		{None, 0.25, 0.25},
	} {
		if got := Mirror(tc.dir, tc.in); got != tc.want {
			t.Fatalf("Mirror(%v, %v) = %v, want %v", tc.dir, tc.in, got, tc.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if None.String() != "none" || Left.String() != "left" || Right.String() != "right" {
		t.Fatalf("unexpected direction strings: %v %v %v", None, Left, Right)
	}
}
