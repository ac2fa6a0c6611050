package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultToastDuration is used when Show gets a non-positive duration.
const DefaultToastDuration = 2200 * time.Millisecond

// Toast is the single shared status line. Each Show replaces the message
// and the hide timer, so the last call wins.
type Toast struct {
	sched   *Scheduler
	def     time.Duration
	text    string
	isErr   bool
	visible bool
}

// NewToast creates a hidden toast. def is the default duration.
func NewToast(sched *Scheduler, def time.Duration) *Toast {
	if def <= 0 {
		def = DefaultToastDuration
	}
	return &Toast{sched: sched, def: def}
}

// Show displays message for d and returns the hide timer.
func (t *Toast) Show(message string, d time.Duration) tea.Cmd {
	return t.show(message, d, false)
}

// Error displays message in the danger colour.
func (t *Toast) Error(message string, d time.Duration) tea.Cmd {
	return t.show(message, d, true)
}

func (t *Toast) show(message string, d time.Duration, isErr bool) tea.Cmd {
	if d <= 0 {
		d = t.def
	}
	t.text = message
	t.isErr = isErr
	t.visible = true
	return t.sched.After(SlotToast, d, nil)
}

// Handle hides the toast when its live timer fires.
func (t *Toast) Handle(msg FiredMsg) bool {
	if msg.Slot != SlotToast || !t.sched.Live(msg) {
		return false
	}
	t.visible = false
	return true
}

// Text returns the current message.
func (t *Toast) Text() string { return t.text }

// Visible reports whether the toast is shown.
func (t *Toast) Visible() bool { return t.visible }

// View renders the toast line, centred in width.
func (t *Toast) View(width int) string {
	if !t.visible || t.text == "" {
		return ""
	}
	style := Styles.Toast
	if t.isErr {
		style = Styles.ToastErr
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(t.text))
}
