package cli

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	for _, tc := range []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1_536, "1.5 KB"},
		{2_400_000, "2.4 MB"},
		{3_000_000_000, "3.0 GB"},
	} {
		if got := FormatBytes(tc.n); got != tc.want {
			t.Fatalf("FormatBytes(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	for _, tc := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{1_234_567, "1,234,567"},
		{-45_000, "-45,000"},
	} {
		if got := FormatNumber(tc.n); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Now()
	for _, tc := range []struct {
		t    time.Time
		want string
	}{
		{time.Time{}, "never"},
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-50 * time.Hour), "2d ago"},
	} {
		if got := FormatAge(tc.t); got != tc.want {
			t.Fatalf("FormatAge(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}
