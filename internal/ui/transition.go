package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Phase is the controller state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTransitioning
)

func (p Phase) String() string {
	if p == PhaseTransitioning {
		return "transitioning"
	}
	return "idle"
}

// RequestOutcome says what a transition request did.
type RequestOutcome int

const (
	RequestIgnored   RequestOutcome = iota // Already there or already heading there
	RequestCancelled                       // Pending swap dropped; back to the current panel
	RequestScheduled                       // Swap scheduled, replacing any pending one
)

func (o RequestOutcome) String() string {
	switch o {
	case RequestCancelled:
		return "cancelled"
	case RequestScheduled:
		return "scheduled"
	default:
		return "ignored"
	}
}

// TransitionEvent reports progress from a fired timer.
type TransitionEvent int

const (
	TransitionNone TransitionEvent = iota
	TransitionSwapped
	TransitionRevealed
)

type stage int

const (
	stageIdle stage = iota
	stageSwapPending
	stageRevealPending
)

// TransitionController owns the current panel and performs every swap.
//
// A request schedules the swap after the swap delay; a newer request replaces
// it, so the last target wins. The swap hides every panel, marks the target
// revealing and moves the tab selection in the same step; the reveal delay
// later marks it active. At most one panel is ever not hidden.
type TransitionController struct {
	sched       *Scheduler
	swapDelay   time.Duration
	revealDelay time.Duration

	current PanelID
	from    PanelID
	target  PanelID
	stage   stage
	states  map[PanelID]PanelVisual
}

// NewTransitionController starts in Idle(start) with start active.
func NewTransitionController(sched *Scheduler, start PanelID, swapDelay, revealDelay time.Duration) *TransitionController {
	c := &TransitionController{
		sched:       sched,
		swapDelay:   swapDelay,
		revealDelay: revealDelay,
		states:      make(map[PanelID]PanelVisual, len(Panels)),
	}
	if _, err := ParsePanel(string(start)); err != nil {
		start = PanelWelcome
	}
	c.current = start
	c.show(start, PanelActive)
	return c
}

// Request asks for a transition to t.
func (c *TransitionController) Request(t PanelID) (RequestOutcome, tea.Cmd) {
	if _, err := ParsePanel(string(t)); err != nil {
		return RequestIgnored, nil
	}
	switch c.stage {
	case stageIdle:
		if t == c.current {
			return RequestIgnored, nil
		}
	case stageSwapPending:
		if t == c.target {
			return RequestIgnored, nil
		}
		if t == c.current {
			c.sched.Cancel(SlotSwap)
			c.target = ""
			c.stage = stageIdle
			return RequestCancelled, nil
		}
	case stageRevealPending:
		if t == c.current {
			return RequestIgnored, nil
		}
		c.settle()
	}

	c.from = c.current
	c.target = t
	c.stage = stageSwapPending
	return RequestScheduled, c.sched.After(SlotSwap, c.swapDelay, t)
}

// Handle applies a fired swap or reveal tick. Stale ticks are ignored.
func (c *TransitionController) Handle(msg FiredMsg) (TransitionEvent, tea.Cmd) {
	switch msg.Slot {
	case SlotSwap:
		if !c.sched.Live(msg) || c.stage != stageSwapPending {
			return TransitionNone, nil
		}
		t, _ := msg.Payload.(PanelID)
		if t != c.target {
			return TransitionNone, nil
		}
		c.show(t, PanelRevealing)
		c.current = t
		c.stage = stageRevealPending
		return TransitionSwapped, c.sched.After(SlotReveal, c.revealDelay, t)
	case SlotReveal:
		if !c.sched.Live(msg) || c.stage != stageRevealPending {
			return TransitionNone, nil
		}
		c.settle()
		return TransitionRevealed, nil
	}
	return TransitionNone, nil
}

// Jump shows t immediately, dropping any pending swap or reveal.
func (c *TransitionController) Jump(t PanelID) {
	if _, err := ParsePanel(string(t)); err != nil {
		return
	}
	c.sched.Cancel(SlotSwap)
	c.sched.Cancel(SlotReveal)
	c.current = t
	c.target = ""
	c.stage = stageIdle
	c.show(t, PanelActive)
}

// settle finishes a pending reveal.
func (c *TransitionController) settle() {
	c.sched.Cancel(SlotReveal)
	c.show(c.current, PanelActive)
	c.target = ""
	c.stage = stageIdle
}

// show is the only place panel visibility changes: everything is hidden
// before the target receives its state.
func (c *TransitionController) show(target PanelID, state PanelVisual) {
	for _, p := range Panels {
		c.states[p] = PanelHidden
	}
	c.states[target] = state
}

// Current returns the panel the tabs point at.
func (c *TransitionController) Current() PanelID { return c.current }

// From returns the panel the last transition started from.
func (c *TransitionController) From() PanelID { return c.from }

// Target returns the pending target, if a swap is pending.
func (c *TransitionController) Target() (PanelID, bool) {
	if c.stage != stageSwapPending {
		return "", false
	}
	return c.target, true
}

// Phase returns Idle or Transitioning.
func (c *TransitionController) Phase() Phase {
	if c.stage == stageIdle {
		return PhaseIdle
	}
	return PhaseTransitioning
}

// State returns the visual state of panel id.
func (c *TransitionController) State(id PanelID) PanelVisual {
	return c.states[id]
}

// Selected reports whether the tab for id is selected.
func (c *TransitionController) Selected(id PanelID) bool {
	return id == c.current
}

// Visible returns the panel that is not hidden.
func (c *TransitionController) Visible() (PanelID, PanelVisual) {
	for _, p := range Panels {
		if s := c.states[p]; s != PanelHidden {
			return p, s
		}
	}
	return "", PanelHidden
}
