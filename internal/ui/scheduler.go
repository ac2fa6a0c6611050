package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Slot names a replaceable timer. Scheduling on a slot supersedes whatever
// was pending there.
type Slot string

// Well-known slots.
const (
	SlotSwap         Slot = "transition.swap"
	SlotReveal       Slot = "transition.reveal"
	SlotToast        Slot = "toast"
	SlotLoaderSafety Slot = "loader.safety"
	SlotLoaderFade   Slot = "loader.fade"
	SlotLoaderRemove Slot = "loader.remove"
	SlotLoaderFrame  Slot = "loader.frame"
	SlotEmblemFrame  Slot = "emblem.frame"
)

// FiredMsg is delivered when a slot's timer fires.
type FiredMsg struct {
	Slot    Slot
	Gen     uint64
	Payload any
}

// Scheduler hands out generation-stamped ticks. A fired message is live only
// while its generation is still the slot's latest, so replacing or cancelling
// a slot makes earlier ticks inert.
type Scheduler struct {
	gens    map[Slot]uint64
	pending map[Slot]FiredMsg
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		gens:    make(map[Slot]uint64),
		pending: make(map[Slot]FiredMsg),
	}
}

// After schedules payload on slot after d, replacing any pending tick.
func (s *Scheduler) After(slot Slot, d time.Duration, payload any) tea.Cmd {
	gen := s.gens[slot] + 1
	s.gens[slot] = gen
	msg := FiredMsg{Slot: slot, Gen: gen, Payload: payload}
	s.pending[slot] = msg
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Cancel makes the pending tick on slot inert.
func (s *Scheduler) Cancel(slot Slot) {
	if _, ok := s.pending[slot]; !ok {
		return
	}
	s.gens[slot]++
	delete(s.pending, slot)
}

// CancelPrefix cancels every pending slot whose name starts with prefix.
func (s *Scheduler) CancelPrefix(prefix string) int {
	n := 0
	for slot := range s.pending {
		if strings.HasPrefix(string(slot), prefix) {
			s.Cancel(slot)
			n++
		}
	}
	return n
}

// Live reports whether msg is the latest tick of its slot and consumes it.
func (s *Scheduler) Live(msg FiredMsg) bool {
	if s.gens[msg.Slot] != msg.Gen {
		return false
	}
	p, ok := s.pending[msg.Slot]
	if !ok || p.Gen != msg.Gen {
		return false
	}
	delete(s.pending, msg.Slot)
	return true
}

// Pending returns the message that will fire on slot, if any.
func (s *Scheduler) Pending(slot Slot) (FiredMsg, bool) {
	msg, ok := s.pending[slot]
	return msg, ok
}

// Active reports whether slot has a pending tick.
func (s *Scheduler) Active(slot Slot) bool {
	_, ok := s.pending[slot]
	return ok
}

// Len returns the number of pending slots.
func (s *Scheduler) Len() int {
	return len(s.pending)
}
