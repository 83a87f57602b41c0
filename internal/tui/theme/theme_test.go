package theme

import (
	"strings"
	"testing"
)

func TestByName(t *testing.T) {
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %q", got.Name)
	}
	if got := ByName("nonexistent"); got.Name != FlexokiDark.Name {
		t.Fatalf("unknown theme resolved to %q, want default", got.Name)
	}
}

func TestHighlightColorEndpoints(t *testing.T) {
	th := FlexokiDark
	if got := HighlightColor(th, 0); got != th.TextMuted {
		t.Fatalf("pct 0 = %q, want muted %q", got, th.TextMuted)
	}
	if got := HighlightColor(th, -10); got != th.TextMuted {
		t.Fatalf("pct -10 = %q, want muted %q", got, th.TextMuted)
	}
	if got := HighlightColor(th, 100); got != th.AccentBright {
		t.Fatalf("pct 100 = %q, want bright %q", got, th.AccentBright)
	}
}

func TestHighlightColorBlends(t *testing.T) {
	th := FlexokiDark
	mid := HighlightColor(th, 50)
	if mid == th.TextMuted || mid == th.AccentBright {
		t.Fatalf("pct 50 = %q, want a blend distinct from both endpoints", mid)
	}
	if !strings.HasPrefix(string(mid), "#") {
		t.Fatalf("blend %q is not a hex color", mid)
	}
}

func TestHighlightColorAnsiFallback(t *testing.T) {
	th := Terminal
	if got := HighlightColor(th, 30); got != th.TextMuted {
		t.Fatalf("pct 30 = %q, want muted %q", got, th.TextMuted)
	}
	if got := HighlightColor(th, 70); got != th.AccentBright {
		t.Fatalf("pct 70 = %q, want bright %q", got, th.AccentBright)
	}
}
