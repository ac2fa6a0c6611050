// Package textutil measures and fits plain (unstyled) text to terminal
// columns. Names and handles from the people data may contain wide runes.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate fits s into maxWidth columns, ending with Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}
	out := make([]rune, 0, len(s))
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + Ellipsis
}

// PadRight pads s with spaces to exactly width columns, truncating if wider.
func PadRight(s string, width int) string {
	if Width(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s in width columns, truncating if wider.
func PadLeft(s string, width int) string {
	if Width(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillLeft(s, width)
}
