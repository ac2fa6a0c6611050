package ui

import (
	"fmt"
	"strings"

	"transit/internal/imageguard"
	"transit/internal/registry"
	"transit/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Card geometry in cells. The button row sits below the thumbnail and the
// name and handle lines, after one blank line.
const (
	cardThumbW = 12
	cardThumbH = 6
	cardInnerW = 26
	cardGapX   = 2
	cardGapY   = 1
	cardPadX   = 1
	cardRowY   = 1 + cardThumbH + 3
)

// Card is one person in a grid.
type Card struct {
	Person  registry.PersonRecord
	Image   *imageguard.Slot
	Buttons *ButtonRow
	Default int    // Button run by enter; -1 for none
	Link    string // Whole-card target; clicking anywhere opens it
}

// CardGridView lays cards out in as many columns as fit.
type CardGridView struct {
	Panel    PanelID
	Cards    []*Card
	Selected int
	Empty    string

	width, height int
	rects         []Rect
}

// Ensure CardGridView implements Content.
var _ Content = (*CardGridView)(nil)

// NewOwnersGrid builds owner cards: Friend copies the handle and opens the
// Discord invite; Profile opens the profile modal.
func NewOwnersGrid(owners []registry.PersonRecord) *CardGridView {
	g := &CardGridView{Panel: PanelOwners, Empty: "No owners listed."}
	for i, p := range owners {
		g.Cards = append(g.Cards, &Card{
			Person: p,
			Image:  imageguard.NewSlot(cardSlotKey(PanelOwners, i), p.ImageURL, cardThumbW, cardThumbH),
			Buttons: NewButtonRow(
				Button{Label: "Friend", Shortcut: "f", Action: func() tea.Cmd {
					return send(FriendMsg{Person: p})
				}},
				Button{Label: "Profile", Shortcut: "p", Action: func() tea.Cmd {
					return send(OpenProfileMsg{Person: p})
				}},
			),
			Default: 1,
		})
	}
	g.Select(0)
	return g
}

// NewProsGrid builds pro cards; the whole card links to the pro's profile.
func NewProsGrid(pros []registry.PersonRecord) *CardGridView {
	g := &CardGridView{Panel: PanelPros, Empty: "No pros listed."}
	for i, p := range pros {
		open := func() tea.Cmd {
			return send(OpenLinkMsg{URL: p.ProfileURL, Label: p.Name})
		}
		c := &Card{
			Person:  p,
			Image:   imageguard.NewSlot(cardSlotKey(PanelPros, i), p.ImageURL, cardThumbW, cardThumbH),
			Buttons: NewButtonRow(),
			Default: -1,
			Link:    p.ProfileURL,
		}
		if p.ProfileURL != "" {
			c.Buttons = NewButtonRow(Button{Label: "Open Profile", Shortcut: "o", Action: open})
			c.Default = 0
		}
		g.Cards = append(g.Cards, c)
	}
	g.Select(0)
	return g
}

func cardSlotKey(panel PanelID, i int) string {
	return fmt.Sprintf("%s/%d", panel, i)
}

// Init implements View.
func (g *CardGridView) Init() tea.Cmd { return nil }

// SetSize implements Sized.
func (g *CardGridView) SetSize(width, height int) {
	g.width, g.height = width, height
}

// Slots implements Content.
func (g *CardGridView) Slots() []*imageguard.Slot {
	out := make([]*imageguard.Slot, 0, len(g.Cards))
	for _, c := range g.Cards {
		out = append(out, c.Image)
	}
	return out
}

// Select moves the selection to card i, clamped.
func (g *CardGridView) Select(i int) {
	if len(g.Cards) == 0 {
		g.Selected = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(g.Cards) {
		i = len(g.Cards) - 1
	}
	g.Selected = i
	for j, c := range g.Cards {
		c.Buttons.Focused = j == i
	}
}

// Current returns the selected card.
func (g *CardGridView) Current() (*Card, bool) {
	if g.Selected < 0 || g.Selected >= len(g.Cards) {
		return nil, false
	}
	return g.Cards[g.Selected], true
}

func (g *CardGridView) columns() int {
	w := g.width
	if w <= 0 {
		w = 80
	}
	cols := (w + cardGapX) / (cardOuterW() + cardGapX)
	if cols < 1 {
		cols = 1
	}
	return cols
}

func cardOuterW() int {
	return cardInnerW + 2*cardPadX + 2
}

// Update implements View. Arrows move the selection; enter runs the
// selected card's default action; shortcuts run the selected card's buttons.
func (g *CardGridView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Cards) == 0 {
		return g, nil
	}
	cols := g.columns()
	switch km.String() {
	case "left":
		g.Select(g.Selected - 1)
	case "right":
		g.Select(g.Selected + 1)
	case "up":
		g.Select(g.Selected - cols)
	case "down":
		g.Select(g.Selected + cols)
	case "enter":
		c, _ := g.Current()
		return g, c.Buttons.Activate(c.Default)
	default:
		c, _ := g.Current()
		for i, b := range c.Buttons.Buttons {
			if b.Shortcut != "" && km.String() == b.Shortcut {
				return g, c.Buttons.Activate(i)
			}
		}
	}
	return g, nil
}

// Click implements Clickable. A press on a card selects it and runs the
// button under the pointer; on a linked card any press opens the link.
func (g *CardGridView) Click(x, y int) tea.Cmd {
	g.View()
	for i, r := range g.rects {
		if !r.Contains(x, y) {
			continue
		}
		g.Select(i)
		c := g.Cards[i]
		if y-r.Y == cardRowY {
			if cmd := c.Buttons.Click(x - r.X - 1 - cardPadX); cmd != nil {
				return cmd
			}
		}
		if c.Link != "" {
			return c.Buttons.Activate(c.Default)
		}
		return nil
	}
	return nil
}

// View implements View.
func (g *CardGridView) View() string {
	w := g.width
	if w <= 0 {
		w = 80
	}
	g.rects = g.rects[:0]
	if len(g.Cards) == 0 {
		return emptyState(g.Empty, w)
	}

	cols := g.columns()
	var rows []string
	y := 0
	for start := 0; start < len(g.Cards); start += cols {
		end := min(start+cols, len(g.Cards))
		var parts []string
		x := 0
		rowH := 0
		for i := start; i < end; i++ {
			card := g.renderCard(i)
			cw, ch := blockSize(card)
			g.rects = append(g.rects, Rect{X: x, Y: y, W: cw, H: ch})
			if i > start {
				parts = append(parts, strings.Repeat(" ", cardGapX))
			}
			parts = append(parts, card)
			x += cw + cardGapX
			rowH = max(rowH, ch)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
		y += rowH + cardGapY
	}
	return strings.Join(rows, strings.Repeat("\n", cardGapY+1))
}

func (g *CardGridView) renderCard(i int) string {
	c := g.Cards[i]
	thumb := c.Image.View
	if thumb == "" {
		thumb = lipgloss.Place(cardThumbW, cardThumbH, lipgloss.Center, lipgloss.Center,
			Styles.Hint.Render("loading"))
	}
	thumbLines := strings.Split(thumb, "\n")
	lines := make([]string, 0, cardThumbH+4)
	for _, ln := range thumbLines {
		centred, _ := centerLine(ln, cardInnerW)
		lines = append(lines, centred)
	}
	handle := ""
	if c.Person.Handle != "" {
		handle = "@" + c.Person.Handle
	}
	lines = append(lines,
		Styles.Title.Render(textutil.Truncate(c.Person.Name, cardInnerW)),
		Styles.Muted.Render(textutil.Truncate(handle, cardInnerW)),
		"",
		c.Buttons.View(),
	)

	style := Styles.Card
	if i == g.Selected {
		style = Styles.CardSelected
	}
	return style.Width(cardInnerW + 2*cardPadX).Render(strings.Join(lines, "\n"))
}
