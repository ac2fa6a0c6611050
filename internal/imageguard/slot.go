package imageguard

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LoadedMsg reports the outcome of loading one slot source.
type LoadedMsg struct {
	Key  string
	Src  string
	View string
	Err  error
}

// Slot is a rendered image position in the UI.
type Slot struct {
	Key    string
	Elem   *Element
	Width  int
	Height int
	View   string
}

// NewSlot creates a slot for src at the given cell size.
func NewSlot(key, src string, width, height int) *Slot {
	return &Slot{Key: key, Elem: NewElement(src), Width: width, Height: height}
}

// Load returns a command that decodes the current source off the event loop.
func (s *Slot) Load(l Loader) tea.Cmd {
	key, src, w, h := s.Key, s.Elem.Src, s.Width, s.Height
	return func() tea.Msg {
		if IsPlaceholder(src) {
			return LoadedMsg{Key: key, Src: src, View: PlaceholderView(w, h)}
		}
		img, err := l.Load(src)
		if err != nil {
			return LoadedMsg{Key: key, Src: src, Err: err}
		}
		return LoadedMsg{Key: key, Src: src, View: Thumbnail(img, w, h)}
	}
}

// Apply consumes a LoadedMsg for this slot. On failure the guard picks the
// next source and a follow-up load is returned. Results for a source the
// slot no longer shows are dropped.
func (s *Slot) Apply(g *Guard, l Loader, msg LoadedMsg) tea.Cmd {
	if msg.Key != s.Key || msg.Src != s.Elem.Src {
		return nil
	}
	if msg.Err == nil {
		s.View = msg.View
		return nil
	}
	if g.HandleError(s.Elem) {
		return s.Load(l)
	}
	s.View = PlaceholderView(s.Width, s.Height)
	return nil
}

// Resolved reports whether the slot has something to show.
func (s *Slot) Resolved() bool { return s.View != "" }
