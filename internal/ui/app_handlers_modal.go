package ui

import (
	"fmt"

	"transit/internal/registry"
	"transit/internal/trace"

	tea "github.com/charmbracelet/bubbletea"
)

// Owned slot name of a profile modal's picture.
const modalImage = "image"

// openProfile opens the profile modal for p, replacing any open modal.
func (a *AppModel) openProfile(p registry.PersonRecord) tea.Cmd {
	if a.Mode != ModeReady {
		return nil
	}
	m := NewProfileModal(p, a.cfg.Links.Discord)
	o := a.Overlays.Open(OverlayProfile, m)
	m.ID = o.ID
	m.Image.Key = string(o.Slot(modalImage))
	a.recorder.Start(traceModal, trace.SpanModal, map[string]string{
		"kind":   OverlayProfile.String(),
		"handle": p.Handle,
	})
	return a.trackSlot(m.Image)
}

// openMerch opens the merch notice, replacing any open modal.
func (a *AppModel) openMerch() tea.Cmd {
	if a.Mode != ModeReady {
		return nil
	}
	m := NewMerchModal()
	o := a.Overlays.Open(OverlayMerch, m)
	m.ID = o.ID
	a.recorder.Start(traceModal, trace.SpanModal, map[string]string{
		"kind": OverlayMerch.String(),
	})
	return nil
}

// overlayRemoved releases what an overlay held outside the stack.
func (a *AppModel) overlayRemoved(o Overlay) {
	if !o.Kind.Modal() {
		return
	}
	delete(a.slots, string(o.Slot(modalImage)))
	a.recorder.End(traceModal, map[string]string{"outcome": "dismissed"})
	a.log.Debug("modal closed", "kind", o.Kind, "id", o.ID)
}

// handleCopyResult shows the copy outcome.
func (a *AppModel) handleCopyResult(msg CopyResultMsg) tea.Cmd {
	if msg.Err != nil {
		a.log.Warn("copy failed", "err", msg.Err)
		return a.Toast.Error("Copy failed", 0)
	}
	a.log.Debug("copied", "method", msg.Method)
	return a.Toast.Show(fmt.Sprintf("Copied %s", msg.Text), 0)
}

// handleLinkOpened reports a failed browser launch.
func (a *AppModel) handleLinkOpened(msg LinkOpenedMsg) tea.Cmd {
	if msg.Err == nil {
		a.log.Debug("link opened", "label", msg.Label, "url", msg.URL)
		return nil
	}
	a.log.Warn("opening link", "label", msg.Label, "url", msg.URL, "err", msg.Err)
	label := msg.Label
	if label == "" {
		label = "link"
	}
	return a.Toast.Error(fmt.Sprintf("Could not open %s", label), 0)
}
