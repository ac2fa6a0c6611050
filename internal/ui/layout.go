package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Rect is a screen region for hit testing.
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if the point (x, y) is within the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Screen rows. The header, strip, toast and help rows are fixed; content
// takes the rest.
const (
	rowHeader  = 0
	rowStrip   = 1
	rowContent = 2
	footerRows = 2 // toast + help
)

// contentRect returns the scrollable content area for a w x h screen.
func contentRect(w, h int) Rect {
	ch := h - rowContent - footerRows
	if ch < 1 {
		ch = 1
	}
	return Rect{X: 0, Y: rowContent, W: w, H: ch}
}

// centerRect returns where a fgW x fgH block lands when centred in w x h.
func centerRect(fgW, fgH, w, h int) Rect {
	if fgW > w {
		fgW = w
	}
	if fgH > h {
		fgH = h
	}
	x := (w - fgW) / 2
	y := (h - fgH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, W: fgW, H: fgH}
}

// blockSize returns the display width and height of a rendered block.
func blockSize(s string) (int, int) {
	lines := strings.Split(s, "\n")
	w := 0
	for _, ln := range lines {
		if n := ansi.StringWidth(ln); n > w {
			w = n
		}
	}
	return w, len(lines)
}

// overlayCenter draws fg centred on top of bg, both w x h.
func overlayCenter(bg, fg string, w, h int) string {
	bgLines := splitLinesN(bg, h)
	fgW, fgH := blockSize(fg)
	if fgW <= 0 {
		return strings.Join(bgLines, "\n")
	}
	r := centerRect(fgW, fgH, w, h)
	overlayAt(bgLines, strings.Split(fg, "\n"), w, r.X, r.Y, r.W)
	return strings.Join(bgLines, "\n")
}

// overlayAt replaces a fgW wide window of bgLines starting at (x, y).
func overlayAt(bgLines []string, fgLines []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := padRight(bgLines[y+i], w)
		left := ansi.Cut(bgLine, 0, x)
		right := ansi.Cut(bgLine, x+fgW, w)

		fgLine := fgLines[i]
		if n := ansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = ansi.Cut(fgLine, 0, fgW)
		}

		bgLines[y+i] = left + fgLine + right
	}
}

// splitLinesN splits s into exactly n lines, padding or truncating.
func splitLinesN(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

func padRight(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// placeClipped draws s starting at column x (which may be negative) on a
// blank row of width w, dropping whatever falls outside.
func placeClipped(s string, x, w int) string {
	if w <= 0 {
		return ""
	}
	sw := ansi.StringWidth(s)
	if x >= w || x+sw <= 0 {
		return strings.Repeat(" ", w)
	}
	from, to := 0, sw
	if x < 0 {
		from = -x
		x = 0
	}
	if x+(to-from) > w {
		to = from + (w - x)
	}
	visible := ansi.Cut(s, from, to)
	return padRight(strings.Repeat(" ", x)+visible, w)
}

// easeOut approximates cubic-bezier(.2,.9,.2,1): fast start, long settle.
func easeOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u*u
}
