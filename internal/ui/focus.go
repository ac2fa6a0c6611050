package ui

// FocusZone says which part of the screen receives keys.
type FocusZone int

const (
	ZoneContent FocusZone = iota
	ZoneTabs
)

func (z FocusZone) String() string {
	if z == ZoneTabs {
		return "tabs"
	}
	return "content"
}

// FocusManager tracks keyboard focus on the tab bar. Moving focus never
// activates a tab; activation is a separate action.
type FocusManager struct {
	Current  PanelID   // Tab that has focus
	Order    []PanelID // Tab order for focus rotation
	Zone     FocusZone
	OnChange func(from, to PanelID)
}

// NewFocusManager focuses start in the content zone.
func NewFocusManager(start PanelID) *FocusManager {
	return &FocusManager{Current: start, Order: Panels, Zone: ZoneContent}
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// Next moves focus to the next tab, wrapping after the last.
// Returns the new current focus.
func (f *FocusManager) Next() PanelID {
	if len(f.Order) == 0 {
		return ""
	}
	return f.move((f.index() + 1) % len(f.Order))
}

// Prev moves focus to the previous tab, wrapping before the first.
func (f *FocusManager) Prev() PanelID {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	return f.move(i)
}

func (f *FocusManager) move(i int) PanelID {
	from := f.Current
	f.Current = f.Order[i]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus focuses id. Returns false if id is not a tab.
func (f *FocusManager) SetFocus(id PanelID) bool {
	for i, o := range f.Order {
		if o == id {
			f.move(i)
			return true
		}
	}
	return false
}

// ToggleZone switches between the tab bar and the content.
func (f *FocusManager) ToggleZone() FocusZone {
	if f.Zone == ZoneTabs {
		f.Zone = ZoneContent
	} else {
		f.Zone = ZoneTabs
	}
	return f.Zone
}

// OnTabs reports whether the tab bar has focus.
func (f *FocusManager) OnTabs() bool {
	return f.Zone == ZoneTabs
}
