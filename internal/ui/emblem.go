package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// emblemFrames is a star turning once about its vertical axis.
var emblemFrames = []string{"★", "✦", "✧", "│", "✧", "✦", "★"}

// Emblem is the header star. Flip restarts the turn from the first frame.
type Emblem struct {
	sched    *Scheduler
	duration time.Duration
	frame    int
	running  bool
}

// NewEmblem creates a resting emblem; a flip spans duration.
func NewEmblem(sched *Scheduler, duration time.Duration) *Emblem {
	return &Emblem{sched: sched, duration: duration}
}

func (e *Emblem) step() time.Duration {
	return e.duration / time.Duration(len(emblemFrames)-1)
}

// Flip starts the animation over.
func (e *Emblem) Flip() tea.Cmd {
	e.frame = 0
	e.running = true
	return e.sched.After(SlotEmblemFrame, e.step(), nil)
}

// Handle advances one frame on a live tick.
func (e *Emblem) Handle(msg FiredMsg) tea.Cmd {
	if msg.Slot != SlotEmblemFrame || !e.sched.Live(msg) || !e.running {
		return nil
	}
	e.frame++
	if e.frame >= len(emblemFrames)-1 {
		e.frame = 0
		e.running = false
		return nil
	}
	return e.sched.After(SlotEmblemFrame, e.step(), nil)
}

// Running reports whether a flip is in progress.
func (e *Emblem) Running() bool { return e.running }

// Frame returns the current frame index.
func (e *Emblem) Frame() int { return e.frame }

// View renders the current glyph.
func (e *Emblem) View() string {
	return Styles.Brand.UnsetPadding().Render(emblemFrames[e.frame])
}
