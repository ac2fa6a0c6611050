package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel creates the help renderer with the app's key colours.
func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	m.Styles.FullKey = m.Styles.ShortKey
	m.Styles.FullDesc = m.Styles.ShortDesc
	m.Styles.FullSeparator = m.Styles.ShortSeparator
	return m
}

// RenderKeybindHelp produces the one-line help bar. While a leader sequence
// is pending (e.g. "SPC l") it is prefixed with the sequence and lists the
// next keys.
func RenderKeybindHelp(keyHandler *KeyHandler, width int) string {
	if keyHandler == nil {
		return ""
	}
	m := newHelpModel()
	m.Width = width
	km := NewKeyMap(keyHandler.Registry, keyHandler, keyHandler.Mode)
	line := m.ShortHelpView(km.ShortHelp())
	if keyHandler.LeaderWaiting {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Bold(true)
		line = label.Render(keyHandler.Sequence()) + " " + line
	}
	return line
}

// RenderFullHelp renders every binding in a bordered box.
func RenderFullHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil {
		return ""
	}
	m := newHelpModel()
	km := NewKeyMap(keyHandler.Registry, keyHandler, keyHandler.Mode)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	title := Styles.Title.Render("Keys")
	return box.Render(title + "\n\n" + m.FullHelpView(km.FullHelp()) + "\n\n" +
		Styles.Hint.Render("any key closes"))
}
