package ui

import (
	"testing"
	"time"

	"transit/internal/trace"

	"github.com/stretchr/testify/assert"
)

func TestSpansView_ListsRecentSpans(t *testing.T) {
	r := trace.NewRecorder(8, nil)
	r.Start("transition", trace.SpanTransition, map[string]string{"from": "welcome", "to": "owners"})
	r.End("transition", map[string]string{"outcome": "revealed"})

	v := NewSpansView(r)
	v.SetSize(120, 40)
	assert.Empty(t, v.View(), "hidden until shown")

	v.SetVisible(true)
	out := v.View()
	assert.Contains(t, out, "Recent spans")
	assert.Contains(t, out, "transition")
	assert.Contains(t, out, "outcome=revealed")
	assert.Contains(t, out, "to=owners")
}

func TestSpansView_EmptyAndNilRecorder(t *testing.T) {
	v := NewSpansView(nil)
	v.SetVisible(true)
	assert.Contains(t, v.View(), "No spans yet.")
}

func TestSpansView_ScrollKeysKeepItOpen(t *testing.T) {
	v := NewSpansView(nil)
	v.SetVisible(true)

	v.HandleKey(keyMsg("j"))
	assert.True(t, v.IsVisible())
	v.HandleKey(keyMsg("x"))
	assert.False(t, v.IsVisible())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "360ms", formatDuration(360*time.Millisecond))
	assert.Equal(t, "8.00s", formatDuration(8*time.Second))
}
