package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes a key press. Order: quit, splash, help and span boxes,
// open modal, leader and global bindings, tab bar, panel content.
func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}

	if a.Mode == ModeLoading {
		switch s {
		case "q":
			return tea.Quit
		case "esc", "enter":
			a.Loader.Skip()
			a.reveal()
		}
		return nil
	}

	if a.showHelp {
		a.showHelp = false
		return nil
	}
	if a.Spans.IsVisible() {
		a.Spans.HandleKey(msg)
		return nil
	}

	// While a modal is open no key reaches the page.
	if o, ok := a.Overlays.Modal(); ok {
		if o.IsDismissKey(s) {
			a.Overlays.Remove(o.ID)
			return nil
		}
		cmd, _ := a.Overlays.Update(o.ID, msg)
		return cmd
	}

	// Space activates the focused tab; elsewhere it is the leader key.
	if a.Focus.OnTabs() && !a.KeyHandler.LeaderWaiting {
		switch s {
		case " ", "enter":
			return a.activateTab(a.Focus.Current)
		case "left":
			a.Focus.Prev()
			return nil
		case "right":
			a.Focus.Next()
			return nil
		}
	}

	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}

	switch s {
	case "pgup":
		a.viewport.PageUp()
		return nil
	case "pgdown":
		a.viewport.PageDown()
		return nil
	case "home":
		a.viewport.GotoTop()
		return nil
	case "end":
		a.viewport.GotoBottom()
		return nil
	}

	if a.Focus.OnTabs() {
		return nil
	}
	c := a.Chrome.Content(a.Transitions.Current())
	if c == nil {
		return nil
	}
	_, cmd := c.Update(msg)
	return cmd
}

// handleMouse maps presses to the modal, the header or the content. A
// press outside an open modal dismisses it.
func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Mode != ModeReady || !a.cfg.UI.Mouse {
		return nil
	}
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if _, ok := a.Overlays.Modal(); !ok {
			a.viewport.LineUp(1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if _, ok := a.Overlays.Modal(); !ok {
			a.viewport.LineDown(1)
		}
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	if a.showHelp || a.Spans.IsVisible() {
		a.showHelp = false
		a.Spans.SetVisible(false)
		return nil
	}

	w, h := a.screenSize()
	if o, ok := a.Overlays.Modal(); ok {
		fgW, fgH := blockSize(o.View.View())
		r := centerRect(fgW, fgH, w, h)
		if !r.Contains(msg.X, msg.Y) {
			a.Overlays.Remove(o.ID)
			return nil
		}
		if d, ok := o.View.(Dialog); ok {
			return d.Click(msg.X-r.X, msg.Y-r.Y)
		}
		return nil
	}

	if msg.Y == rowHeader {
		return a.Chrome.HitHeader(msg.X, msg.Y)
	}

	r := contentRect(w, h)
	if !r.Contains(msg.X, msg.Y) {
		return nil
	}
	id, _ := a.Transitions.Visible()
	c := a.Chrome.Content(id)
	if c == nil {
		return nil
	}
	_, offset := a.panelBodyOffset(id)
	y := msg.Y - r.Y + a.viewport.YOffset - offset
	if y < 0 {
		return nil
	}
	a.Focus.Zone = ZoneContent
	return c.Click(msg.X-r.X, y)
}

func (a *AppModel) screenSize() (int, int) {
	if a.width <= 0 || a.height <= 0 {
		return 80, 24
	}
	return a.width, a.height
}
