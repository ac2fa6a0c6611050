package ui

import (
	"transit/internal/trace"

	tea "github.com/charmbracelet/bubbletea"
)

// Names of the timer slots a train overlay owns.
const (
	trainFrame  = "frame"
	trainRemove = "remove"
)

// activateTab handles a tab activation. The merch tab opens the merch
// notice and leaves the current panel alone.
func (a *AppModel) activateTab(id PanelID) tea.Cmd {
	a.Focus.SetFocus(id)
	if id == PanelMerch {
		return a.openMerch()
	}
	return a.requestPanel(id, "tab")
}

// requestPanel asks the controller for a transition to id. A scheduled
// transition starts the train; a cancelled one ends its span.
func (a *AppModel) requestPanel(id PanelID, source string) tea.Cmd {
	if a.Mode != ModeReady {
		return nil
	}
	from := a.Transitions.Current()
	outcome, cmd := a.Transitions.Request(id)
	a.log.Debug("transition requested", "from", from, "to", id, "source", source, "outcome", outcome)
	switch outcome {
	case RequestScheduled:
		a.recorder.Start(traceTransition, trace.SpanTransition, map[string]string{
			"from":   string(from),
			"to":     string(id),
			"source": source,
		})
		return tea.Batch(cmd, a.startTrain())
	case RequestCancelled:
		a.recorder.End(traceTransition, map[string]string{"outcome": "cancelled"})
	}
	return cmd
}

// startTrain opens a train strip, replacing any running one, and schedules
// its frames and its removal.
func (a *AppModel) startTrain() tea.Cmd {
	if a.cfg.UI.ReducedMotion {
		return nil
	}
	t := a.cfg.Timings
	strip := NewTrainStrip(t.TrainMotion.Duration, t.Frame.Duration)
	o := a.Overlays.Open(OverlayTrain, strip)
	strip.attach(a.Sched, o.Slot(trainFrame))
	strip.width = a.width
	return tea.Batch(
		strip.Init(),
		a.Sched.After(o.Slot(trainRemove), t.TrainLifetime.Duration, nil),
	)
}

// handleFired dispatches a timer to the component owning its slot.
func (a *AppModel) handleFired(msg FiredMsg) tea.Cmd {
	switch msg.Slot {
	case SlotSwap, SlotReveal:
		ev, cmd := a.Transitions.Handle(msg)
		switch ev {
		case TransitionSwapped:
			a.viewport.GotoTop()
			a.Focus.SetFocus(a.Transitions.Current())
			if !a.cfg.UI.ReducedMotion {
				cmd = tea.Batch(cmd, a.Emblem.Flip())
			}
		case TransitionRevealed:
			a.recorder.End(traceTransition, map[string]string{"outcome": "revealed"})
			a.log.Debug("transition revealed", "panel", a.Transitions.Current())
		}
		return cmd
	case SlotToast:
		a.Toast.Handle(msg)
		return nil
	case SlotLoaderSafety, SlotLoaderFade, SlotLoaderRemove, SlotLoaderFrame:
		removed, cmd := a.Loader.Handle(msg)
		if removed {
			a.reveal()
		}
		return cmd
	case SlotEmblemFrame:
		return a.Emblem.Handle(msg)
	}
	if id, name, ok := overlaySlotOwner(msg.Slot); ok {
		return a.handleOverlayTimer(id, name, msg)
	}
	return nil
}

// handleOverlayTimer applies a timer owned by overlay id.
func (a *AppModel) handleOverlayTimer(id, name string, msg FiredMsg) tea.Cmd {
	if !a.Sched.Live(msg) {
		return nil
	}
	switch name {
	case trainRemove:
		a.Overlays.Remove(id)
		return nil
	case trainFrame:
		cmd, _ := a.Overlays.Update(id, msg.Payload)
		return cmd
	}
	return nil
}
