package ui

// AppMode represents the top-level application mode: splash or site.
type AppMode int

const (
	ModeLoading AppMode = iota
	ModeReady
)

func (m AppMode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModeReady:
		return "Ready"
	default:
		return "Unknown"
	}
}
