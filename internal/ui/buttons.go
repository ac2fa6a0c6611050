package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button is one clickable action.
type Button struct {
	Label    string
	Shortcut string // Single key that activates it directly
	Action   func() tea.Cmd
}

// ButtonRow renders buttons on one line and maps keys and clicks to them.
type ButtonRow struct {
	Buttons  []Button
	Selected int
	Focused  bool // Draw the selection highlight
	gap      int
}

// NewButtonRow creates a row with the first button selected.
func NewButtonRow(buttons ...Button) *ButtonRow {
	return &ButtonRow{Buttons: buttons, Focused: true, gap: 1}
}

// Next moves the selection right, wrapping.
func (r *ButtonRow) Next() {
	if len(r.Buttons) > 0 {
		r.Selected = (r.Selected + 1) % len(r.Buttons)
	}
}

// Prev moves the selection left, wrapping.
func (r *ButtonRow) Prev() {
	if len(r.Buttons) > 0 {
		r.Selected = (r.Selected - 1 + len(r.Buttons)) % len(r.Buttons)
	}
}

// Activate runs button i.
func (r *ButtonRow) Activate(i int) tea.Cmd {
	if i < 0 || i >= len(r.Buttons) || r.Buttons[i].Action == nil {
		return nil
	}
	r.Selected = i
	return r.Buttons[i].Action()
}

// HandleKey handles navigation, enter and shortcuts.
// Returns false if the key is not for this row.
func (r *ButtonRow) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch s := msg.String(); s {
	case "left", "shift+tab":
		r.Prev()
		return nil, true
	case "right", "tab":
		r.Next()
		return nil, true
	case "enter":
		return r.Activate(r.Selected), true
	default:
		for i, b := range r.Buttons {
			if b.Shortcut != "" && s == b.Shortcut {
				return r.Activate(i), true
			}
		}
	}
	return nil, false
}

// View renders the row.
func (r *ButtonRow) View() string {
	parts := make([]string, len(r.Buttons))
	for i, b := range r.Buttons {
		style := Styles.Button
		if r.Focused && i == r.Selected {
			style = Styles.ButtonFocused
		}
		parts[i] = style.Render(b.Label)
	}
	return strings.Join(parts, strings.Repeat(" ", r.gap))
}

// HitTest returns the button index at column x of the rendered row, or -1.
func (r *ButtonRow) HitTest(x int) int {
	pos := 0
	for i, b := range r.Buttons {
		w := lipgloss.Width(Styles.Button.Render(b.Label))
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + r.gap
	}
	return -1
}

// Click activates the button at column x.
func (r *ButtonRow) Click(x int) tea.Cmd {
	if i := r.HitTest(x); i >= 0 {
		return r.Activate(i)
	}
	return nil
}
