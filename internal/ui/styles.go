package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "15"      // White - titles, brand
	ColorHighlight = "220"     // Gold - selected tab, focused button
	ColorDanger    = "196"     // Red - failure toasts
	ColorMuted     = "241"     // Gray - hints, handles
	ColorText      = "252"     // Light gray - body text
	ColorDim       = "243"     // Darker gray - revealing panel, scrim
	ColorWarning   = "208"     // Orange
	ColorBackdrop  = "#0b0b0b" // Splash and placeholder background
	ColorCar       = "#f5f5f5" // Train cars
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	Title   lipgloss.Style // Bold accent color - panel headings
	Brand   lipgloss.Style // Header brand
	Tagline lipgloss.Style // Welcome quote

	// Tab bar
	Tab         lipgloss.Style
	TabSelected lipgloss.Style // Tab of the current panel
	TabFocused  lipgloss.Style // Keyboard focus ring

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Text styles
	Muted     lipgloss.Style // Dimmed text (muted color)
	Normal    lipgloss.Style // Normal text (text color)
	Hint      lipgloss.Style // Help/hint text (muted color)
	Revealing lipgloss.Style // Panel content before it turns active
	Empty     lipgloss.Style // Empty state text (muted, italic)
	Toast     lipgloss.Style
	ToastErr  lipgloss.Style
	Strip     lipgloss.Style // Row under the header hosting the train
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Tagline: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	TabSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true).
		Padding(0, 1),
	TabFocused: lipgloss.NewStyle().
		Reverse(true),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	CardSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color("236")).
		Padding(0, 1),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Revealing: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Faint(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Toast: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	ToastErr: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	Strip: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
}
