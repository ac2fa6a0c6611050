package ui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPanel is returned when a name does not match any panel.
var ErrUnknownPanel = errors.New("unknown panel")

// PanelID names one of the mutually exclusive content sections.
type PanelID string

const (
	PanelWelcome PanelID = "welcome"
	PanelOwners  PanelID = "owners"
	PanelPros    PanelID = "pros"
	PanelMap     PanelID = "map"
	PanelMerch   PanelID = "merch"
)

// Panels lists every panel in tab order.
var Panels = []PanelID{PanelWelcome, PanelOwners, PanelPros, PanelMap, PanelMerch}

// ParsePanel parses a panel name, case-insensitively.
func ParsePanel(s string) (PanelID, error) {
	id := PanelID(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range Panels {
		if p == id {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPanel, s)
}

// Title returns the tab label.
func (p PanelID) Title() string {
	switch p {
	case PanelWelcome:
		return "Welcome"
	case PanelOwners:
		return "Owners"
	case PanelPros:
		return "Pros"
	case PanelMap:
		return "Map"
	case PanelMerch:
		return "Merch"
	}
	return string(p)
}

// PanelVisual is the visual state of a panel.
type PanelVisual int

const (
	PanelHidden    PanelVisual = iota
	PanelRevealing             // Shown, entry animation pending
	PanelActive
)

func (v PanelVisual) String() string {
	switch v {
	case PanelHidden:
		return "hidden"
	case PanelRevealing:
		return "revealing"
	case PanelActive:
		return "active"
	default:
		return "unknown"
	}
}

// Panel hosts the content View of one section.
type Panel struct {
	ID      PanelID
	Heading string
	Content View
}
