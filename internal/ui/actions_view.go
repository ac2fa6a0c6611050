package ui

import (
	"strings"

	"transit/internal/config"
	"transit/internal/imageguard"

	tea "github.com/charmbracelet/bubbletea"
)

// ActionView is a block of copy followed by a row of buttons. The map and
// merch panels are ActionViews.
type ActionView struct {
	Body     string // Markdown unless Plain
	Plain    bool
	Buttons  *ButtonRow
	width    int
	height   int
	rendered string
	renderW  int
	rowY     int
}

// Ensure ActionView implements Content.
var _ Content = (*ActionView)(nil)

// NewMapView builds the server and map panel.
func NewMapView(body string, l config.LinksConfig) *ActionView {
	return &ActionView{
		Body: body,
		Buttons: NewButtonRow(
			Button{Label: "Discord Invite", Shortcut: "d", Action: func() tea.Cmd {
				return send(OpenLinkMsg{URL: l.Discord, Label: "Discord"})
			}},
			Button{Label: "Open Map", Shortcut: "m", Action: func() tea.Cmd {
				return send(OpenLinkMsg{URL: l.Map, Label: "Map"})
			}},
		),
	}
}

// NewMerchView builds the merch panel.
func NewMerchView() *ActionView {
	return &ActionView{
		Body:  merchNotice,
		Plain: true,
		Buttons: NewButtonRow(Button{Label: "Notify me", Shortcut: "n", Action: func() tea.Cmd {
			return send(NotifyMerchMsg{})
		}}),
	}
}

// Init implements View.
func (v *ActionView) Init() tea.Cmd { return nil }

// SetSize implements Sized.
func (v *ActionView) SetSize(width, height int) {
	v.width, v.height = width, height
}

// Slots implements Content.
func (v *ActionView) Slots() []*imageguard.Slot { return nil }

// Update implements View.
func (v *ActionView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		cmd, _ := v.Buttons.HandleKey(msg)
		return v, cmd
	}
	return v, nil
}

// Click implements Clickable.
func (v *ActionView) Click(x, y int) tea.Cmd {
	v.View()
	if y != v.rowY {
		return nil
	}
	return v.Buttons.Click(x)
}

// View implements View.
func (v *ActionView) View() string {
	w := v.width
	if w <= 0 {
		w = 80
	}
	if v.rendered == "" || v.renderW != w {
		if v.Plain {
			v.rendered = Styles.Muted.Render(v.Body)
		} else {
			v.rendered = renderMarkdown(v.Body, w)
		}
		v.renderW = w
	}
	v.rowY = strings.Count(v.rendered, "\n") + 2
	return v.rendered + "\n\n" + v.Buttons.View()
}
