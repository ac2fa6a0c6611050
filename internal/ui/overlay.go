package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// OverlayKind tells modal dialogs from decorative strips.
type OverlayKind int

const (
	OverlayProfile OverlayKind = iota
	OverlayMerch
	OverlayTrain
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayProfile:
		return "profile"
	case OverlayMerch:
		return "merch"
	case OverlayTrain:
		return "train"
	default:
		return "unknown"
	}
}

// Modal reports whether overlays of this kind capture input.
func (k OverlayKind) Modal() bool {
	return k == OverlayProfile || k == OverlayMerch
}

// Overlay is one top-most element owned by the OverlayManager.
type Overlay struct {
	ID      string
	Kind    OverlayKind
	View    View
	Dismiss string // Key that dismisses (e.g. "esc"); empty for strips
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// Slot returns a timer slot owned by this overlay. Owned slots are
// cancelled when the overlay is removed.
func (o *Overlay) Slot(name string) Slot {
	return Slot(overlaySlotPrefix(o.ID) + name)
}

func overlaySlotPrefix(id string) string {
	return "overlay/" + id + "/"
}

// overlaySlotOwner returns the overlay id and slot name of an owned slot.
func overlaySlotOwner(s Slot) (id, name string, ok bool) {
	rest, found := strings.CutPrefix(string(s), "overlay/")
	if !found {
		return "", "", false
	}
	id, name, ok = strings.Cut(rest, "/")
	return id, name, ok
}

// OverlayManager keeps overlays top-most first. At most one modal and one
// train strip exist at a time; opening another replaces the current one.
type OverlayManager struct {
	Stack    []Overlay
	sched    *Scheduler
	onRemove func(Overlay)
}

// NewOverlayManager creates an empty manager. Owned timer slots are
// cancelled through sched.
func NewOverlayManager(sched *Scheduler) *OverlayManager {
	return &OverlayManager{sched: sched}
}

// OnRemove registers a hook run after an overlay leaves the stack.
func (m *OverlayManager) OnRemove(fn func(Overlay)) {
	m.onRemove = fn
}

// Open pushes a new overlay of kind, first removing any overlay it replaces.
func (m *OverlayManager) Open(kind OverlayKind, view View) Overlay {
	for _, o := range append([]Overlay(nil), m.Stack...) {
		if o.Kind == kind || (kind.Modal() && o.Kind.Modal()) {
			m.Remove(o.ID)
		}
	}
	o := Overlay{ID: uuid.NewString(), Kind: kind, View: view}
	if kind.Modal() {
		o.Dismiss = "esc"
	}
	m.Stack = append(m.Stack, o)
	return o
}

// Remove takes overlay id off the stack and cancels its timers.
func (m *OverlayManager) Remove(id string) bool {
	for i, o := range m.Stack {
		if o.ID != id {
			continue
		}
		m.Stack = append(m.Stack[:i], m.Stack[i+1:]...)
		if m.sched != nil {
			m.sched.CancelPrefix(overlaySlotPrefix(id))
		}
		if m.onRemove != nil {
			m.onRemove(o)
		}
		return true
	}
	return false
}

// DismissModal removes the open modal, if any.
func (m *OverlayManager) DismissModal() bool {
	if o, ok := m.Modal(); ok {
		return m.Remove(o.ID)
	}
	return false
}

// Modal returns the open modal.
func (m *OverlayManager) Modal() (Overlay, bool) {
	for i := len(m.Stack) - 1; i >= 0; i-- {
		if m.Stack[i].Kind.Modal() {
			return m.Stack[i], true
		}
	}
	return Overlay{}, false
}

// Find returns the overlay of kind.
func (m *OverlayManager) Find(kind OverlayKind) (Overlay, bool) {
	for _, o := range m.Stack {
		if o.Kind == kind {
			return o, true
		}
	}
	return Overlay{}, false
}

// Get returns overlay id.
func (m *OverlayManager) Get(id string) (Overlay, bool) {
	for _, o := range m.Stack {
		if o.ID == id {
			return o, true
		}
	}
	return Overlay{}, false
}

// Peek returns the top overlay without removing it.
func (m *OverlayManager) Peek() (Overlay, bool) {
	if len(m.Stack) == 0 {
		return Overlay{}, false
	}
	return m.Stack[len(m.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (m *OverlayManager) Len() int {
	return len(m.Stack)
}

// Update passes msg to overlay id and stores the resulting View.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (m *OverlayManager) Update(id string, msg tea.Msg) (tea.Cmd, bool) {
	for i := range m.Stack {
		if m.Stack[i].ID != id {
			continue
		}
		newView, cmd := m.Stack[i].View.Update(msg)
		m.Stack[i].View = newView
		return cmd, true
	}
	return nil, false
}
