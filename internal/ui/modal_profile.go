package ui

import (
	"transit/internal/imageguard"
	"transit/internal/registry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Profile thumbnail size in cells.
const (
	profileImageW = 16
	profileImageH = 8
	profileBioW   = 38
)

// ProfileModal shows one owner: picture, name, handle, bio and three actions.
// c copies the handle, o opens Discord, x or Esc closes.
type ProfileModal struct {
	ID      string // Overlay id, set once opened
	Person  registry.PersonRecord
	Image   *imageguard.Slot
	Buttons *ButtonRow
	rowY    int
}

// Ensure ProfileModal implements Dialog.
var _ Dialog = (*ProfileModal)(nil)

// NewProfileModal creates the modal. discordURL backs the Open Discord button.
func NewProfileModal(p registry.PersonRecord, discordURL string) *ProfileModal {
	m := &ProfileModal{
		Person: p,
		Image:  imageguard.NewSlot("", p.ImageURL, profileImageW, profileImageH),
	}
	m.Buttons = NewButtonRow(
		Button{Label: "Copy Username", Shortcut: "c", Action: func() tea.Cmd {
			return send(CopyHandleMsg{Handle: p.Handle})
		}},
		Button{Label: "Open Discord", Shortcut: "o", Action: func() tea.Cmd {
			return send(OpenLinkMsg{URL: discordURL, Label: "Discord"})
		}},
		Button{Label: "Close", Shortcut: "x", Action: func() tea.Cmd {
			return send(DismissModalMsg{ID: m.ID})
		}},
	)
	return m
}

// Init implements View.
func (m *ProfileModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ProfileModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, send(DismissModalMsg{ID: m.ID})
		}
		cmd, _ := m.Buttons.HandleKey(msg)
		return m, cmd
	}
	return m, nil
}

// Click implements Dialog.
func (m *ProfileModal) Click(x, y int) tea.Cmd {
	m.View() // refresh rowY
	return clickButtons(m.Buttons, m.rowY, x, y)
}

// View implements View.
func (m *ProfileModal) View() string {
	picture := m.Image.View
	if picture == "" {
		picture = lipgloss.Place(profileImageW, profileImageH, lipgloss.Center, lipgloss.Center,
			ModalStyles.Help.Render("loading"))
	}
	bio := m.Person.Bio
	if bio == "" {
		bio = Styles.Empty.Render("No bio yet.")
	}
	body := ModalStyles.Title.Render(m.Person.Name) + "\n" +
		ModalStyles.Handle.Render("@"+m.Person.Handle) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top,
			picture,
			"  ",
			ModalStyles.Label.Render(wordwrap.String(bio, profileBioW)),
		)
	out, rowY := dialogFrame(body, m.Buttons, "c copy · o discord · x/esc close")
	m.rowY = rowY
	return out
}
