package ui

import (
	"strings"

	"transit/internal/imageguard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Welcome logo size in cells.
const (
	logoW = 24
	logoH = 12
)

// WelcomeView is the hero panel: logo, title, quote and Enter Site.
type WelcomeView struct {
	Logo    *imageguard.Slot
	Copy    string // Markdown
	Buttons *ButtonRow

	width, height int
	copyCache     string
	copyWidth     int
	rowX, rowY    int
}

// Ensure WelcomeView implements Content.
var _ Content = (*WelcomeView)(nil)

// NewWelcomeView creates the hero panel. body is markdown; logoURL may be empty.
func NewWelcomeView(body, logoURL string) *WelcomeView {
	v := &WelcomeView{Copy: body}
	if logoURL != "" {
		v.Logo = imageguard.NewSlot("welcome/logo", logoURL, logoW, logoH)
	}
	v.Buttons = NewButtonRow(Button{Label: "Enter Site", Shortcut: "e", Action: func() tea.Cmd {
		return send(EnterSiteMsg{})
	}})
	return v
}

// Init implements View.
func (v *WelcomeView) Init() tea.Cmd { return nil }

// SetSize implements Sized.
func (v *WelcomeView) SetSize(width, height int) {
	v.width, v.height = width, height
}

// Slots implements Content.
func (v *WelcomeView) Slots() []*imageguard.Slot {
	if v.Logo == nil {
		return nil
	}
	return []*imageguard.Slot{v.Logo}
}

// Update implements View.
func (v *WelcomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		cmd, _ := v.Buttons.HandleKey(msg)
		return v, cmd
	}
	return v, nil
}

// Click implements Clickable.
func (v *WelcomeView) Click(x, y int) tea.Cmd {
	v.View()
	if y != v.rowY {
		return nil
	}
	return v.Buttons.Click(x - v.rowX)
}

// View implements View.
func (v *WelcomeView) View() string {
	w := v.width
	if w <= 0 {
		w = 80
	}
	var lines []string
	if v.Logo != nil {
		logo := v.Logo.View
		if logo == "" {
			logo = imageguard.PlaceholderView(logoW, logoH)
		}
		lines = append(lines, strings.Split(logo, "\n")...)
		lines = append(lines, "")
	}
	lines = append(lines, strings.Split(v.copyView(w), "\n")...)
	lines = append(lines, "")

	out := make([]string, 0, len(lines)+1)
	for _, ln := range lines {
		c, _ := centerLine(ln, w)
		out = append(out, c)
	}
	row, x := centerLine(v.Buttons.View(), w)
	v.rowX, v.rowY = x, len(out)
	out = append(out, row)
	return strings.Join(out, "\n")
}

func (v *WelcomeView) copyView(width int) string {
	if v.copyWidth != width || v.copyCache == "" {
		v.copyCache = renderMarkdown(v.Copy, min(width, 60))
		v.copyWidth = width
	}
	return v.copyCache
}

// centerLine pads s on the left to centre it in width and returns the
// column it starts at.
func centerLine(s string, width int) (string, int) {
	sw := ansi.StringWidth(s)
	if sw >= width {
		return s, 0
	}
	x := (width - sw) / 2
	return strings.Repeat(" ", x) + s, x
}

// emptyState renders a centred muted line.
func emptyState(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, Styles.Empty.Render(text))
}
