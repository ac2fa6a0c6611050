package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	trainCar     = "▕ TRANSIT ▏"
	trainCars    = 4
	tunnelCar    = "[■■]"
	tunnelCars   = 8
	trainStartAt = -0.3 // Fraction of the width where the train enters
	trainEndAt   = 1.2  // Fraction of the width where the train leaves
)

// trainTickMsg advances a train strip by one frame.
type trainTickMsg struct{}

// TrainStrip is the decorative train crossing the strip under the header.
// It fades in while it travels and is removed by its owner after its lifetime.
type TrainStrip struct {
	sched     *Scheduler
	frameSlot Slot
	motion    time.Duration
	frame     time.Duration
	elapsed   time.Duration
	width     int
}

// Ensure TrainStrip implements View.
var _ View = (*TrainStrip)(nil)

// NewTrainStrip creates a strip travelling for motion, redrawn every frame.
func NewTrainStrip(motion, frame time.Duration) *TrainStrip {
	return &TrainStrip{motion: motion, frame: frame}
}

// attach binds the strip to the frame slot of its overlay.
func (s *TrainStrip) attach(sched *Scheduler, slot Slot) {
	s.sched = sched
	s.frameSlot = slot
}

// Init implements View.
func (s *TrainStrip) Init() tea.Cmd {
	if s.sched == nil {
		return nil
	}
	return s.sched.After(s.frameSlot, s.frame, trainTickMsg{})
}

// Update implements View.
func (s *TrainStrip) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
	case trainTickMsg:
		s.elapsed += s.frame
		if s.elapsed < s.motion && s.sched != nil {
			return s, s.sched.After(s.frameSlot, s.frame, trainTickMsg{})
		}
	}
	return s, nil
}

// Progress returns the eased travel fraction in [0, 1].
func (s *TrainStrip) Progress() float64 {
	if s.motion <= 0 {
		return 1
	}
	return easeOut(float64(s.elapsed) / float64(s.motion))
}

// View implements View. The strip is one row of the current width.
func (s *TrainStrip) View() string {
	return s.Render(s.width)
}

// Render draws the strip at width.
func (s *TrainStrip) Render(width int) string {
	if width <= 0 {
		return ""
	}
	p := s.Progress()
	cars := strings.TrimSpace(strings.Repeat(trainCar+" ", trainCars))
	span := trainEndAt - trainStartAt
	x := int((trainStartAt + p*span) * float64(width))
	line := placeClipped(cars, x, width)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fade(ColorBackdrop, ColorCar, p))).Render(line)
}

// fade blends from one hex colour to another; t is clamped to [0, 1].
func fade(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}
