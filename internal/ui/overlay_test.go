package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayManager_OneModalAtATime(t *testing.T) {
	m := NewOverlayManager(NewScheduler())
	first := m.Open(OverlayProfile, NewMerchModal())
	second := m.Open(OverlayMerch, NewMerchModal())

	assert.Equal(t, 1, m.Len())
	_, ok := m.Get(first.ID)
	assert.False(t, ok, "a new modal replaces the open one")
	top, ok := m.Modal()
	require.True(t, ok)
	assert.Equal(t, second.ID, top.ID)
	assert.Equal(t, "esc", top.Dismiss)
}

func TestOverlayManager_TrainAndModalCoexist(t *testing.T) {
	m := NewOverlayManager(NewScheduler())
	m.Open(OverlayTrain, NewTrainStrip(time.Second, time.Millisecond))
	m.Open(OverlayMerch, NewMerchModal())
	m.Open(OverlayTrain, NewTrainStrip(time.Second, time.Millisecond))

	assert.Equal(t, 2, m.Len())
	top, _ := m.Peek()
	assert.Equal(t, OverlayTrain, top.Kind)
	modal, ok := m.Modal()
	require.True(t, ok)
	assert.Equal(t, OverlayMerch, modal.Kind)
	assert.False(t, m.Stack[1].IsDismissKey("esc"), "strips have no dismiss key")
}

func TestOverlayManager_RemoveCancelsOwnedSlots(t *testing.T) {
	s := NewScheduler()
	m := NewOverlayManager(s)
	var removed []Overlay
	m.OnRemove(func(o Overlay) { removed = append(removed, o) })

	o := m.Open(OverlayTrain, NewTrainStrip(time.Second, time.Millisecond))
	s.After(o.Slot("frame"), time.Hour, nil)
	s.After(o.Slot("remove"), time.Hour, nil)
	s.After(SlotToast, time.Hour, nil)

	require.True(t, m.Remove(o.ID))
	assert.False(t, s.Active(o.Slot("frame")))
	assert.False(t, s.Active(o.Slot("remove")))
	assert.True(t, s.Active(SlotToast), "unowned slots survive")
	require.Len(t, removed, 1)
	assert.Equal(t, o.ID, removed[0].ID)

	assert.False(t, m.Remove(o.ID), "second removal is a no-op")
	assert.Len(t, removed, 1)
}

func TestOverlaySlotOwner(t *testing.T) {
	o := Overlay{ID: "abc"}
	id, name, ok := overlaySlotOwner(o.Slot("frame"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
	assert.Equal(t, "frame", name)

	_, _, ok = overlaySlotOwner(SlotSwap)
	assert.False(t, ok)
}
