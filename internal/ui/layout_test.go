package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 1, true},
		{4, 2, true},
		{5, 1, false},
		{2, 3, false},
		{1, 1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestOverlayCenter(t *testing.T) {
	bg := "AAAAA\nBBBBB\nCCCCC\nDDDDD\nEEEEE"
	got := overlayCenter(bg, "MM\nMM", 5, 5)
	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[0] != "AAAAA" {
		t.Errorf("line 0 untouched: got %q", lines[0])
	}
	if lines[1] != "BMMBB" || lines[2] != "CMMCC" {
		t.Errorf("modal rows: got %q, %q", lines[1], lines[2])
	}
}

func TestPlaceClipped(t *testing.T) {
	tests := []struct {
		s    string
		x, w int
		want string
	}{
		{"abc", 0, 5, "abc  "},
		{"abc", 3, 5, "   ab"},
		{"abc", -2, 5, "c    "},
		{"abc", -3, 5, "     "},
		{"abc", 5, 5, "     "},
	}
	for _, tt := range tests {
		got := placeClipped(tt.s, tt.x, tt.w)
		if got != tt.want {
			t.Errorf("placeClipped(%q,%d,%d) = %q, want %q", tt.s, tt.x, tt.w, got, tt.want)
		}
		if ansi.StringWidth(got) != tt.w {
			t.Errorf("width: got %d, want %d", ansi.StringWidth(got), tt.w)
		}
	}
}

func TestEaseOut(t *testing.T) {
	if easeOut(0) != 0 || easeOut(1) != 1 {
		t.Error("easeOut endpoints")
	}
	if easeOut(0.5) <= 0.5 {
		t.Error("easeOut should lead a linear ramp")
	}
}
