package ui

import "github.com/charmbracelet/lipgloss"

// Dialog frame sizes; hit testing depends on them.
const (
	dialogBorder = 1
	dialogPadX   = 2
	dialogPadY   = 1
)

// ModalStyles contains shared style definitions for modals.
var ModalStyles = struct {
	Box      lipgloss.Style // Dialog frame; no margin so clicks map 1:1
	Title    lipgloss.Style
	Handle   lipgloss.Style // "@handle" line
	Label    lipgloss.Style // Body text
	Help     lipgloss.Style // Shortcut hint line
	Backdrop lipgloss.Style // Applied to the screen behind a modal
}{
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(dialogPadY, dialogPadX),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Handle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Backdrop: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Faint(true),
}
