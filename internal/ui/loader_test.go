package ui

import (
	"testing"
	"time"

	"transit/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_PrimarySequence(t *testing.T) {
	s := NewScheduler()
	l := NewLoader(s, config.DefaultTimings(), false)
	require.NotNil(t, l.Start())

	fade, ok := s.Pending(SlotLoaderFade)
	require.True(t, ok)
	removed, cmd := l.Handle(fade)
	assert.False(t, removed)
	assert.NotNil(t, cmd)
	assert.True(t, l.Fading())

	remove, ok := s.Pending(SlotLoaderRemove)
	require.True(t, ok)
	removed, _ = l.Handle(remove)
	assert.True(t, removed)
	assert.Equal(t, RemovedPrimary, l.Reason())
	assert.False(t, s.Active(SlotLoaderSafety), "safety timer is released on removal")
	assert.Empty(t, l.View())
}

// The primary timers never fire; the safety timer alone must remove the
// splash within its bound.
func TestLoader_SafetyRemovalWhenPrimaryNeverFires(t *testing.T) {
	s := NewScheduler()
	timings := config.DefaultTimings()
	l := NewLoader(s, timings, false)
	l.Start()

	safety, ok := s.Pending(SlotLoaderSafety)
	require.True(t, ok, "safety must be scheduled at start")
	assert.LessOrEqual(t, timings.LoaderSafety.Duration, 8*time.Second)

	removed, _ := l.Handle(safety)
	assert.True(t, removed)
	assert.True(t, l.Removed())
	assert.Equal(t, RemovedSafety, l.Reason())

	// A primary tick arriving afterwards is inert.
	fade := FiredMsg{Slot: SlotLoaderFade, Gen: 1}
	removed, cmd := l.Handle(fade)
	assert.False(t, removed)
	assert.Nil(t, cmd)
}

func TestLoader_FramesAdvanceProgress(t *testing.T) {
	s := NewScheduler()
	timings := config.DefaultTimings()
	l := NewLoader(s, timings, false)
	l.SetSize(80, 24)
	l.Start()

	for i := 0; i < 10; i++ {
		msg, ok := s.Pending(SlotLoaderFrame)
		require.True(t, ok)
		l.Handle(msg)
	}
	assert.InDelta(t, float64(10*timings.Frame.Duration)/float64(timings.Loader.Duration), l.Percent(), 1e-9)
	assert.Contains(t, l.View(), "Preparing the rails...")
}

func TestLoader_ReducedMotionSchedulesNoFrames(t *testing.T) {
	s := NewScheduler()
	l := NewLoader(s, config.DefaultTimings(), true)
	l.Start()
	assert.False(t, s.Active(SlotLoaderFrame))
	assert.True(t, s.Active(SlotLoaderSafety))
	assert.True(t, s.Active(SlotLoaderFade))
}

func TestLoader_Skip(t *testing.T) {
	s := NewScheduler()
	l := NewLoader(s, config.DefaultTimings(), false)
	l.Start()
	l.Skip()
	assert.True(t, l.Removed())
	assert.Equal(t, RemovedSkipped, l.Reason())
	assert.False(t, s.Active(SlotLoaderSafety))
	assert.False(t, s.Active(SlotLoaderFade))
}
