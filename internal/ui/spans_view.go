package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"transit/internal/trace"
	"transit/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpansView lists the recorder's recent choreography spans, newest first.
type SpansView struct {
	recorder *trace.Recorder
	viewport viewport.Model
	width    int
	height   int
	visible  bool
}

// NewSpansView creates a hidden view over r. r may be nil.
func NewSpansView(r *trace.Recorder) *SpansView {
	vp := viewport.New(60, 14)
	return &SpansView{recorder: r, viewport: vp, width: 60, height: 14}
}

// SetSize fits the list to a screen of width x height.
func (v *SpansView) SetSize(width, height int) {
	v.width = min(max(width-8, 20), 80)
	v.height = min(max(height-8, 3), 20)
	v.viewport.Width = v.width
	v.viewport.Height = v.height
	v.refresh()
}

// SetVisible shows or hides the list. Showing reloads it.
func (v *SpansView) SetVisible(visible bool) {
	v.visible = visible
	if visible {
		v.refresh()
		v.viewport.GotoTop()
	}
}

// IsVisible reports whether the list is shown.
func (v *SpansView) IsVisible() bool {
	return v.visible
}

// HandleKey scrolls the list. Any other key closes it.
func (v *SpansView) HandleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "j", "down":
		v.viewport.LineDown(1)
	case "k", "up":
		v.viewport.LineUp(1)
	case "pgdown":
		v.viewport.PageDown()
	case "pgup":
		v.viewport.PageUp()
	default:
		v.visible = false
	}
}

// View renders the boxed list, or "" when hidden.
func (v *SpansView) View() string {
	if !v.visible {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	return box.Render(Styles.Title.Render("Recent spans") + "\n\n" +
		v.viewport.View() + "\n\n" +
		Styles.Hint.Render("j/k scroll · any other key closes"))
}

func (v *SpansView) refresh() {
	spans := v.recorder.Recent()
	if len(spans) == 0 {
		v.viewport.SetContent(Styles.Muted.Render("No spans yet."))
		return
	}
	lines := make([]string, 0, len(spans))
	for _, s := range spans {
		lines = append(lines, spanLine(s, v.width))
	}
	v.viewport.SetContent(strings.Join(lines, "\n"))
}

// spanLine renders one span as "name  duration  k=v ...".
func spanLine(s *trace.Span, width int) string {
	keys := make([]string, 0, len(s.Attributes))
	for k := range s.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]string, len(keys))
	for i, k := range keys {
		attrs[i] = k + "=" + s.Attributes[k]
	}
	line := textutil.PadRight(s.Name, 10) + " " +
		textutil.PadLeft(formatDuration(s.Duration), 7) + "  " +
		strings.Join(attrs, " ")
	return textutil.Truncate(line, width)
}

// formatDuration formats a span duration with millisecond precision.
func formatDuration(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}
