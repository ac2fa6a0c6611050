package ui

import (
	"fmt"
	"strings"
	"time"

	"transit/internal/config"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	loaderTitle    = "TRANSIT"
	loaderSubtitle = "Preparing the rails..."
	tunnelMaxWidth = 60
)

// loaderTickMsg advances the splash animation.
type loaderTickMsg struct{}

// LoaderRemoval says which timer removed the splash.
type LoaderRemoval string

const (
	RemovedPrimary LoaderRemoval = "primary"
	RemovedSafety  LoaderRemoval = "safety"
	RemovedSkipped LoaderRemoval = "skipped"
)

// Loader is the splash shown before the app. The safety timer is scheduled
// before anything else, so the splash is always removed even when the
// primary fade never completes.
type Loader struct {
	sched    *Scheduler
	timings  config.TimingsConfig
	reduced  bool
	spinner  spinner.Model
	progress progress.Model

	elapsed time.Duration
	fadeAt  time.Duration // elapsed when the fade started
	fading  bool
	removed bool
	reason  LoaderRemoval
	width   int
	height  int
}

// NewLoader creates the splash.
func NewLoader(sched *Scheduler, t config.TimingsConfig, reducedMotion bool) *Loader {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight))
	p := progress.New(
		progress.WithGradient("#5a5a5a", "#ffffff"),
		progress.WithoutPercentage(),
	)
	return &Loader{
		sched:    sched,
		timings:  t,
		reduced:  reducedMotion,
		spinner:  s,
		progress: p,
	}
}

// Start schedules the safety removal, then the primary fade and the
// animation frames.
func (l *Loader) Start() tea.Cmd {
	cmds := []tea.Cmd{
		l.sched.After(SlotLoaderSafety, l.timings.LoaderSafety.Duration, nil),
		l.sched.After(SlotLoaderFade, l.timings.Loader.Duration, nil),
	}
	if !l.reduced {
		cmds = append(cmds,
			l.sched.After(SlotLoaderFrame, l.timings.Frame.Duration, loaderTickMsg{}),
			l.spinner.Tick,
		)
	}
	return tea.Batch(cmds...)
}

// Skip removes the splash immediately.
func (l *Loader) Skip() {
	l.remove(RemovedSkipped)
}

// Handle applies a loader timer. It reports whether this tick removed the
// splash.
func (l *Loader) Handle(msg FiredMsg) (bool, tea.Cmd) {
	if !l.sched.Live(msg) || l.removed {
		return false, nil
	}
	switch msg.Slot {
	case SlotLoaderSafety:
		l.remove(RemovedSafety)
		return true, nil
	case SlotLoaderFade:
		l.fading = true
		l.fadeAt = l.elapsed
		return false, l.sched.After(SlotLoaderRemove, l.timings.LoaderRemove.Duration, nil)
	case SlotLoaderRemove:
		l.remove(RemovedPrimary)
		return true, nil
	case SlotLoaderFrame:
		l.elapsed += l.timings.Frame.Duration
		return false, l.sched.After(SlotLoaderFrame, l.timings.Frame.Duration, loaderTickMsg{})
	}
	return false, nil
}

// UpdateSpinner forwards spinner ticks while the splash is shown.
func (l *Loader) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if l.removed {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

func (l *Loader) remove(reason LoaderRemoval) {
	l.removed = true
	l.reason = reason
	for _, s := range []Slot{SlotLoaderSafety, SlotLoaderFade, SlotLoaderRemove, SlotLoaderFrame} {
		l.sched.Cancel(s)
	}
}

// SetSize records the screen size.
func (l *Loader) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Removed reports whether the splash is gone.
func (l *Loader) Removed() bool { return l.removed }

// Reason returns what removed the splash.
func (l *Loader) Reason() LoaderRemoval { return l.reason }

// Fading reports whether the fade has started.
func (l *Loader) Fading() bool { return l.fading }

// Percent returns progress toward the primary timer.
func (l *Loader) Percent() float64 {
	if l.timings.Loader.Duration <= 0 {
		return 1
	}
	p := float64(l.elapsed) / float64(l.timings.Loader.Duration)
	if p > 1 {
		p = 1
	}
	return p
}

// fadeLevel is 0 before the fade and 1 once it has finished.
func (l *Loader) fadeLevel() float64 {
	if !l.fading {
		return 0
	}
	if l.reduced || l.timings.LoaderFade.Duration <= 0 {
		return 1
	}
	return float64(l.elapsed-l.fadeAt) / float64(l.timings.LoaderFade.Duration)
}

// View renders the splash centred on the screen.
func (l *Loader) View() string {
	if l.removed {
		return ""
	}
	level := l.fadeLevel()
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(fade("#ffffff", ColorBackdrop, level)))
	title := text.Bold(true).Render(spaced(loaderTitle))
	sub := text.Faint(true).Render(loaderSubtitle)

	tw := tunnelMaxWidth
	if l.width > 0 && l.width-4 < tw {
		tw = l.width - 4
	}
	if tw < 10 {
		tw = 10
	}
	l.progress.Width = tw
	bar := l.progress.ViewAs(l.Percent())
	status := l.spinner.View() + " " + Styles.Muted.Render(fmt.Sprintf("%3.0f%%", l.Percent()*100))

	block := lipgloss.JoinVertical(lipgloss.Center,
		title,
		sub,
		"",
		l.tunnel(tw),
		"",
		bar,
		status,
	)
	if l.width <= 0 || l.height <= 0 {
		return block
	}
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, block,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(ColorBackdrop)))
}

// tunnel draws the 8-car train inside a tunnel of inner width w.
func (l *Loader) tunnel(w int) string {
	cars := strings.TrimSpace(strings.Repeat(tunnelCar+" ", tunnelCars))
	trainW := lipgloss.Width(cars)
	p := 1.0
	if !l.reduced && l.timings.Tunnel.Duration > 0 {
		p = easeOut(float64(l.elapsed) / float64(l.timings.Tunnel.Duration))
	}
	// Enter fully hidden on the left, come to rest centred.
	rest := (w - trainW) / 2
	x := -trainW + int(p*float64(rest+trainW))
	track := Styles.Normal.Render(placeClipped(cars, x, w))
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), true, false).
		BorderForeground(lipgloss.Color(ColorDim)).
		Render(track)
}

// spaced letter-spaces a title.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
