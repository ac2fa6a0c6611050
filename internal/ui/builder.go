package ui

import (
	"errors"
	"strings"

	"transit/internal/assets"
	"transit/internal/config"
	"transit/internal/registry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const brandTitle = "TRANSIT"

// errNoRegistry is reported when the chrome is built without people data.
var errNoRegistry = errors.New("builder: no registry; people panels are empty")

// HeaderAction is a link button in the header's right corner.
type HeaderAction struct {
	Label string
	URL   string
}

// Chrome is the page skeleton built once at startup: brand, tabs, header
// actions and the five panels.
type Chrome struct {
	Tabs    []PanelID
	Actions []HeaderAction
	Panels  map[PanelID]*Panel

	brandRect   Rect
	tabRects    map[PanelID]Rect
	actionRects []Rect
}

// BuildChrome builds the chrome from the registry and config. It always
// returns a usable chrome; the error lists the parts that had to be left
// empty.
func BuildChrome(reg *registry.Registry, cfg *config.Config, store *assets.Store) (*Chrome, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	var errs []error
	var owners, pros []registry.PersonRecord
	if reg != nil {
		owners, pros = reg.Owners(), reg.Pros()
	} else {
		errs = append(errs, errNoRegistry)
	}

	c := &Chrome{
		Tabs: Panels,
		Actions: []HeaderAction{
			{Label: "X", URL: cfg.Links.Twitter},
			{Label: "Discord", URL: cfg.Links.Discord},
		},
		Panels:   make(map[PanelID]*Panel, len(Panels)),
		tabRects: make(map[PanelID]Rect, len(Panels)),
	}
	c.Panels[PanelWelcome] = &Panel{
		ID:      PanelWelcome,
		Content: NewWelcomeView(panelCopy(store, PanelWelcome, welcomeCopy), cfg.Assets.LogoURL),
	}
	c.Panels[PanelOwners] = &Panel{ID: PanelOwners, Heading: "Owners & Staff", Content: NewOwnersGrid(owners)}
	c.Panels[PanelPros] = &Panel{ID: PanelPros, Heading: "Main Pro Players", Content: NewProsGrid(pros)}
	c.Panels[PanelMap] = &Panel{
		ID:      PanelMap,
		Heading: "Server & Map",
		Content: NewMapView(panelCopy(store, PanelMap, mapCopy), cfg.Links),
	}
	c.Panels[PanelMerch] = &Panel{ID: PanelMerch, Heading: "Merch", Content: NewMerchView()}
	return c, errors.Join(errs...)
}

func panelCopy(store *assets.Store, id PanelID, def string) string {
	if store == nil {
		return def
	}
	if s := store.Copy(string(id)); s != "" {
		return s
	}
	return def
}

// Content returns the content of panel id, or nil.
func (c *Chrome) Content(id PanelID) Content {
	p, ok := c.Panels[id]
	if !ok || p.Content == nil {
		return nil
	}
	content, _ := p.Content.(Content)
	return content
}

// Heading returns the heading of panel id.
func (c *Chrome) Heading(id PanelID) string {
	if p, ok := c.Panels[id]; ok {
		return p.Heading
	}
	return ""
}

// SetSize lays every panel out against the content area.
func (c *Chrome) SetSize(width, height int) {
	for _, p := range c.Panels {
		if s, ok := p.Content.(Sized); ok {
			s.SetSize(width, height)
		}
	}
}

// Header renders the header row and records where its parts landed.
// current marks the selected tab; focused is the tab with keyboard focus,
// or "" when the tab bar is not focused.
func (c *Chrome) Header(width int, emblem string, current, focused PanelID) string {
	brand := emblem + Styles.Brand.Render(brandTitle)
	var b strings.Builder
	b.WriteString(brand)
	x := lipgloss.Width(brand)
	c.brandRect = Rect{X: 0, Y: rowHeader, W: x, H: 1}

	b.WriteString("  ")
	x += 2
	for i, id := range c.Tabs {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		style := Styles.Tab
		if id == current {
			style = Styles.TabSelected
		}
		if id == focused {
			style = style.Inherit(Styles.TabFocused)
		}
		label := style.Render(id.Title())
		w := lipgloss.Width(label)
		c.tabRects[id] = Rect{X: x, Y: rowHeader, W: w, H: 1}
		b.WriteString(label)
		x += w
	}

	c.actionRects = c.actionRects[:0]
	labels := make([]string, len(c.Actions))
	actionsW := 0
	for i, a := range c.Actions {
		labels[i] = Styles.Button.Render(a.Label)
		actionsW += lipgloss.Width(labels[i])
		if i > 0 {
			actionsW++
		}
	}
	if x+2+actionsW > width {
		return b.String()
	}
	ax := width - actionsW
	b.WriteString(strings.Repeat(" ", ax-x))
	for i, l := range labels {
		if i > 0 {
			b.WriteString(" ")
			ax++
		}
		w := lipgloss.Width(l)
		c.actionRects = append(c.actionRects, Rect{X: ax, Y: rowHeader, W: w, H: 1})
		b.WriteString(l)
		ax += w
	}
	return b.String()
}

// HitHeader maps a press on the header row to an action.
func (c *Chrome) HitHeader(x, y int) tea.Cmd {
	if c.brandRect.Contains(x, y) {
		return send(GoHomeMsg{})
	}
	for _, id := range c.Tabs {
		if r, ok := c.tabRects[id]; ok && r.Contains(x, y) {
			return send(ActivateTabMsg{Panel: id})
		}
	}
	for i, r := range c.actionRects {
		if r.Contains(x, y) {
			a := c.Actions[i]
			return send(OpenLinkMsg{URL: a.URL, Label: a.Label})
		}
	}
	return nil
}
