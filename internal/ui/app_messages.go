package ui

import (
	"transit/internal/clipboard"
	"transit/internal/registry"

	tea "github.com/charmbracelet/bubbletea"
)

// ActivateTabMsg is sent when a tab is clicked or activated from the keyboard.
// The merch tab opens the merch notice instead of switching panels.
type ActivateTabMsg struct {
	Panel PanelID
}

// EnterSiteMsg is sent by the welcome panel's Enter Site button.
type EnterSiteMsg struct{}

// GoHomeMsg is sent by the brand (logo click or h).
type GoHomeMsg struct{}

// OpenProfileMsg opens the profile modal for an owner.
type OpenProfileMsg struct {
	Person registry.PersonRecord
}

// OpenMerchMsg opens the merch notice.
type OpenMerchMsg struct{}

// FriendMsg copies the person's handle and opens the Discord invite.
type FriendMsg struct {
	Person registry.PersonRecord
}

// CopyHandleMsg copies a handle to the clipboard.
type CopyHandleMsg struct {
	Handle string
}

// OpenLinkMsg hands URL to the system browser.
type OpenLinkMsg struct {
	URL   string
	Label string // For logs and the failure toast
}

// NotifyMerchMsg is the merch "Notify me" action.
type NotifyMerchMsg struct{}

// DismissModalMsg closes overlay ID (close button or Got it).
type DismissModalMsg struct {
	ID string
}

// CopyResultMsg reports the outcome of a clipboard write.
type CopyResultMsg struct {
	Text   string
	Method clipboard.Method
	Err    error
}

// LinkOpenedMsg reports the outcome of a browser launch.
type LinkOpenedMsg struct {
	URL   string
	Label string
	Err   error
}

// ToggleHelpMsg shows or hides the full key help.
type ToggleHelpMsg struct{}

// ToggleSpansMsg shows or hides the recent span list.
type ToggleSpansMsg struct{}

// send wraps msg in a command.
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
