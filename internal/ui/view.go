package ui

import (
	"transit/internal/imageguard"

	tea "github.com/charmbracelet/bubbletea"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Panel content and modal dialogs are Views.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Sized is implemented by views that lay out against the available area.
type Sized interface {
	SetSize(width, height int)
}

// Clickable maps a mouse press to an action. x and y are relative to the
// top-left cell of the view's last render.
type Clickable interface {
	Click(x, y int) tea.Cmd
}

// Content is the body of a panel.
type Content interface {
	View
	Sized
	Clickable
	// Slots returns the image slots the content renders.
	Slots() []*imageguard.Slot
}
