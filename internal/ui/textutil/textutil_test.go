package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"kipp3fn", 10, "kipp3fn"},
		{"whoiscashmgmt", 8, "whoisca…"},
		{"トランジット", 5, "トラ…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if w := Width(Truncate(tt.in, tt.max)); w > tt.max && tt.max > 0 {
			t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.max, w)
		}
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("map", 6); got != "map   " {
		t.Errorf("PadRight: %q", got)
	}
	if got := PadLeft("20ms", 6); got != "  20ms" {
		t.Errorf("PadLeft: %q", got)
	}
	if got := PadRight("transition", 5); got != "tran…" {
		t.Errorf("PadRight truncates: %q", got)
	}
}
