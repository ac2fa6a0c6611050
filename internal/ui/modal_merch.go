package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const merchNotice = "Merch is not available yet. We'll add it soon."

// MerchModal tells the visitor merch is coming.
// n asks to be notified, g acknowledges, x or Esc closes.
type MerchModal struct {
	ID      string
	Buttons *ButtonRow
	rowY    int
}

// Ensure MerchModal implements Dialog.
var _ Dialog = (*MerchModal)(nil)

// NewMerchModal creates the merch notice.
func NewMerchModal() *MerchModal {
	m := &MerchModal{}
	m.Buttons = NewButtonRow(
		Button{Label: "Notify me", Shortcut: "n", Action: func() tea.Cmd {
			return tea.Batch(send(NotifyMerchMsg{}), send(DismissModalMsg{ID: m.ID}))
		}},
		Button{Label: "Got it", Shortcut: "g", Action: func() tea.Cmd {
			return send(DismissModalMsg{ID: m.ID})
		}},
		Button{Label: "Close", Shortcut: "x", Action: func() tea.Cmd {
			return send(DismissModalMsg{ID: m.ID})
		}},
	)
	return m
}

// Init implements View.
func (m *MerchModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *MerchModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			return m, send(DismissModalMsg{ID: m.ID})
		}
		cmd, _ := m.Buttons.HandleKey(msg)
		return m, cmd
	}
	return m, nil
}

// Click implements Dialog.
func (m *MerchModal) Click(x, y int) tea.Cmd {
	m.View() // refresh rowY
	return clickButtons(m.Buttons, m.rowY, x, y)
}

// View implements View.
func (m *MerchModal) View() string {
	body := ModalStyles.Title.Render("Merch") + "\n\n" + ModalStyles.Label.Render(merchNotice)
	out, rowY := dialogFrame(body, m.Buttons, "n notify · g got it · x/esc close")
	m.rowY = rowY
	return out
}
