package ui

import (
	"transit/internal/imageguard"
	"transit/internal/links"

	tea "github.com/charmbracelet/bubbletea"
)

// copyCmd returns a command that writes text to the clipboard off the event
// loop and reports the outcome with CopyResultMsg.
func copyCmd(c Copier, text string) tea.Cmd {
	return func() tea.Msg {
		method, err := c.Copy(text)
		return CopyResultMsg{Text: text, Method: method, Err: err}
	}
}

// openLinkCmd returns a command that hands url to the browser and reports
// the outcome with LinkOpenedMsg.
func openLinkCmd(o links.Opener, url, label string) tea.Cmd {
	return func() tea.Msg {
		return LinkOpenedMsg{URL: url, Label: label, Err: o.Open(url)}
	}
}

// loadImages registers every content image slot and starts loading them.
func (a *AppModel) loadImages() tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range Panels {
		c := a.Chrome.Content(id)
		if c == nil {
			continue
		}
		for _, s := range c.Slots() {
			cmds = append(cmds, a.trackSlot(s))
		}
	}
	return tea.Batch(cmds...)
}

// trackSlot registers s for LoadedMsg routing and starts its first load.
func (a *AppModel) trackSlot(s *imageguard.Slot) tea.Cmd {
	if s == nil || s.Key == "" {
		return nil
	}
	a.slots[s.Key] = s
	return s.Load(a.images)
}

// handleImageLoaded routes a load result to its slot. A failed load moves
// the slot along the fallback chain.
func (a *AppModel) handleImageLoaded(msg imageguard.LoadedMsg) tea.Cmd {
	s, ok := a.slots[msg.Key]
	if !ok {
		return nil
	}
	if msg.Err != nil {
		a.log.Debug("image load failed", "slot", msg.Key, "src", msg.Src, "err", msg.Err)
	}
	return s.Apply(a.guard, a.images, msg)
}
