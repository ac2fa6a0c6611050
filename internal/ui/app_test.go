package ui

import (
	"errors"
	"image"
	"strings"
	"sync"
	"testing"
	"time"

	"transit/internal/assets"
	"transit/internal/clipboard"
	"transit/internal/config"
	"transit/internal/registry"
	"transit/internal/trace"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCopier struct {
	mu  sync.Mutex
	got []string
	err error
}

func (f *fakeCopier) Copy(text string) (clipboard.Method, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, text)
	if f.err != nil {
		return "", f.err
	}
	return clipboard.MethodSystem, nil
}

func (f *fakeCopier) copied() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.got...)
}

type fakeOpener struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (f *fakeOpener) Open(url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	return f.err
}

func (f *fakeOpener) opened() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.urls...)
}

// offlineImages fails every load, so slots walk the fallback chain.
type offlineImages struct{}

func (offlineImages) Load(string) (image.Image, error) {
	return nil, errors.New("offline")
}

type testApp struct {
	*appModelAdapter
	copier   *fakeCopier
	opener   *fakeOpener
	recorder *trace.Recorder
}

// slowTimings keeps every timer far beyond the wait in collect, so tests
// fire them explicitly through Sched.Pending.
func slowTimings() config.TimingsConfig {
	long := config.D(time.Minute)
	return config.TimingsConfig{
		Loader:        long,
		LoaderFade:    long,
		LoaderRemove:  long,
		LoaderSafety:  config.D(2 * time.Minute),
		Tunnel:        long,
		SwapDelay:     long,
		RevealDelay:   long,
		TrainMotion:   long,
		TrainLifetime: long,
		EmblemFlip:    long,
		Toast:         long,
		Frame:         long,
	}
}

func newTestApp(t *testing.T, mutate func(*config.Config)) *testApp {
	t.Helper()
	cfg := config.Default()
	cfg.Timings = slowTimings()
	cfg.Assets.Dir = t.TempDir()
	cfg.UI.SkipLoader = true
	cfg.UI.Mouse = true
	if mutate != nil {
		mutate(cfg)
	}
	ta := &testApp{
		copier:   &fakeCopier{},
		opener:   &fakeOpener{},
		recorder: trace.NewRecorder(32, nil),
	}
	m := NewAppModel(Options{
		Config:   cfg,
		Registry: registry.Default(),
		Assets:   assets.NewStore(cfg.Assets.Dir),
		Copier:   ta.copier,
		Opener:   ta.opener,
		Images:   offlineImages{},
		Recorder: ta.recorder,
	})
	ta.appModelAdapter = m.AsTeaModel().(*appModelAdapter)
	ta.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	ta.pump(ta.Init())
	return ta
}

// collect runs cmd and returns the messages it produces within a short
// wait. Timer commands do not fire in time and are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(20 * time.Millisecond):
		return nil
	}
}

// pump feeds the messages of cmd back into the app until it settles.
func (ta *testApp) pump(cmd tea.Cmd) {
	queue := collect(cmd)
	for i := 0; i < len(queue) && i < 200; i++ {
		if _, ok := queue[i].(tea.QuitMsg); ok {
			continue
		}
		_, next := ta.Update(queue[i])
		queue = append(queue, collect(next)...)
	}
}

func (ta *testApp) send(msg tea.Msg) {
	_, cmd := ta.Update(msg)
	ta.pump(cmd)
}

func (ta *testApp) press(keys ...string) {
	for _, k := range keys {
		ta.send(keyMsg(k))
	}
}

func (ta *testApp) click(x, y int) {
	ta.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// fireSlot delivers the pending tick on slot.
func (ta *testApp) fireSlot(t *testing.T, slot Slot) {
	t.Helper()
	msg, ok := ta.Sched.Pending(slot)
	require.True(t, ok, "no tick pending on %s", slot)
	ta.send(msg)
}

func (ta *testApp) modalCount() int {
	n := 0
	for _, o := range ta.Overlays.Stack {
		if o.Kind.Modal() {
			n++
		}
	}
	return n
}

func assertTarget(t *testing.T, ta *testApp, want PanelID) {
	t.Helper()
	got, ok := ta.Transitions.Target()
	require.True(t, ok, "no transition pending")
	assert.Equal(t, want, got)
}

func (ta *testApp) kipp(t *testing.T) registry.PersonRecord {
	t.Helper()
	p, ok := registry.Default().Owner(0)
	require.True(t, ok)
	require.Equal(t, "kipp3fn", p.Handle)
	return p
}

func TestApp_StartsOnWelcome(t *testing.T) {
	ta := newTestApp(t, nil)

	assert.Equal(t, ModeReady, ta.Mode)
	assert.Equal(t, PanelWelcome, ta.Transitions.Current())
	assert.Equal(t, PanelActive, ta.Transitions.State(PanelWelcome))
	assert.Equal(t, 0, ta.Overlays.Len())
	assert.Contains(t, ta.View(), brandTitle)
}

func TestApp_TabSwitchRunsDeferredTransition(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.send(ActivateTabMsg{Panel: PanelOwners})
	assert.Equal(t, PanelWelcome, ta.Transitions.Current(), "swap waits for its delay")
	assert.Equal(t, PanelActive, ta.Transitions.State(PanelWelcome))
	_, ok := ta.Overlays.Find(OverlayTrain)
	assert.True(t, ok, "train overlay runs during the transition")

	ta.fireSlot(t, SlotSwap)
	assert.Equal(t, PanelOwners, ta.Transitions.Current())
	assert.Equal(t, PanelRevealing, ta.Transitions.State(PanelOwners))
	assert.Equal(t, PanelHidden, ta.Transitions.State(PanelWelcome))
	assert.True(t, ta.Transitions.Selected(PanelOwners))
	assert.Equal(t, PanelOwners, ta.Focus.Current)
	assert.True(t, ta.Emblem.Running())

	ta.fireSlot(t, SlotReveal)
	assert.Equal(t, PanelActive, ta.Transitions.State(PanelOwners))

	spans := ta.recorder.Recent()
	require.NotEmpty(t, spans)
	assert.Equal(t, trace.SpanTransition, spans[0].Name)
	assert.Equal(t, "revealed", spans[0].Attributes["outcome"])
	assert.Equal(t, "owners", spans[0].Attributes["to"])
}

func TestApp_RapidTabsLastRequestWins(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.press("2")
	ta.press("3")
	ta.press("4")
	assert.Equal(t, PanelWelcome, ta.Transitions.Current())

	ta.fireSlot(t, SlotSwap)
	assert.Equal(t, PanelMap, ta.Transitions.Current())
	assert.Equal(t, PanelHidden, ta.Transitions.State(PanelOwners))
	assert.Equal(t, PanelHidden, ta.Transitions.State(PanelPros))

	ta.fireSlot(t, SlotReveal)
	assert.Equal(t, PanelActive, ta.Transitions.State(PanelMap))
}

func TestApp_ReselectingCurrentTabDoesNothing(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.send(ActivateTabMsg{Panel: PanelWelcome})
	assert.Equal(t, PhaseIdle, ta.Transitions.Phase())
	assert.False(t, ta.Sched.Active(SlotSwap))
	assert.Equal(t, 0, ta.Overlays.Len(), "no train for a no-op request")
}

func TestApp_MerchTabOpensNoticeWithoutTransition(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.send(ActivateTabMsg{Panel: PanelOwners})
	ta.fireSlot(t, SlotSwap)
	ta.fireSlot(t, SlotReveal)

	ta.send(ActivateTabMsg{Panel: PanelMerch})

	o, ok := ta.Overlays.Modal()
	require.True(t, ok)
	assert.Equal(t, OverlayMerch, o.Kind)
	assert.Equal(t, PanelOwners, ta.Transitions.Current())
	assert.Equal(t, PanelActive, ta.Transitions.State(PanelOwners))
	assert.Equal(t, PanelHidden, ta.Transitions.State(PanelMerch))
	assert.False(t, ta.Sched.Active(SlotSwap))
}

func TestApp_CopyUsernameFromProfile(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.send(OpenProfileMsg{Person: ta.kipp(t)})

	ta.press("c")

	assert.Equal(t, []string{"kipp3fn"}, ta.copier.copied())
	assert.True(t, ta.Toast.Visible())
	assert.Contains(t, ta.Toast.Text(), "kipp3fn")
	_, ok := ta.Overlays.Modal()
	assert.True(t, ok, "copying keeps the profile open")
}

func TestApp_CopyFailureShowsError(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.copier.err = errors.New("no clipboard")
	ta.send(OpenProfileMsg{Person: ta.kipp(t)})

	ta.press("c")

	assert.Equal(t, "Copy failed", ta.Toast.Text())
}

func TestApp_FriendCopiesAndOpensDiscord(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.send(FriendMsg{Person: ta.kipp(t)})

	assert.Equal(t, []string{"kipp3fn"}, ta.copier.copied())
	assert.Equal(t, []string{ta.cfg.Links.Discord}, ta.opener.opened())
}

func TestApp_LinkFailureShowsError(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.opener.err = errors.New("no browser")

	ta.send(OpenLinkMsg{URL: ta.cfg.Links.Map, Label: "Map"})

	assert.Equal(t, "Could not open Map", ta.Toast.Text())
}

func TestApp_AtMostOneModal(t *testing.T) {
	ta := newTestApp(t, nil)
	kipp := ta.kipp(t)
	second, ok := registry.Default().Owner(1)
	require.True(t, ok)

	ta.send(OpenProfileMsg{Person: kipp})
	ta.send(OpenProfileMsg{Person: second})
	assert.Equal(t, 1, ta.modalCount())
	o, _ := ta.Overlays.Modal()
	assert.Equal(t, second.Handle, o.View.(*ProfileModal).Person.Handle)

	ta.send(OpenMerchMsg{})
	assert.Equal(t, 1, ta.modalCount())
	o, _ = ta.Overlays.Modal()
	assert.Equal(t, OverlayMerch, o.Kind)
}

func TestApp_EscDismissReleasesModalResources(t *testing.T) {
	ta := newTestApp(t, nil)
	baseSlots := len(ta.slots)

	ta.send(OpenProfileMsg{Person: ta.kipp(t)})
	o, ok := ta.Overlays.Modal()
	require.True(t, ok)
	key := string(o.Slot(modalImage))
	assert.Contains(t, ta.slots, key)

	ta.press("esc")

	_, ok = ta.Overlays.Modal()
	assert.False(t, ok)
	assert.NotContains(t, ta.slots, key)
	assert.Len(t, ta.slots, baseSlots)
	assert.Equal(t, 0, ta.Sched.CancelPrefix(overlaySlotPrefix(o.ID)))
	assert.False(t, ta.recorder.Open(traceModal))
}

func TestApp_BackdropClickDismisses(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.send(OpenMerchMsg{})

	ta.click(0, 0)

	assert.Equal(t, 0, ta.modalCount())
	assert.Equal(t, PanelWelcome, ta.Transitions.Current(), "the click does not reach the page")
}

func TestApp_ModalButtonClick(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.send(OpenMerchMsg{})
	o, ok := ta.Overlays.Modal()
	require.True(t, ok)
	m := o.View.(*MerchModal)

	fgW, fgH := blockSize(m.View())
	r := centerRect(fgW, fgH, 120, 40)
	notify := lipgloss.Width(Styles.Button.Render("Notify me"))
	ta.click(r.X+dialogBorder+dialogPadX+notify+2, r.Y+m.rowY) // Got it

	assert.Equal(t, 0, ta.modalCount())
	assert.False(t, ta.Toast.Visible())
}

func TestApp_NotifyMerchToastsAndCloses(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.send(OpenMerchMsg{})

	ta.press("n")

	assert.Equal(t, 0, ta.modalCount())
	assert.Equal(t, "We will notify when merch is available", ta.Toast.Text())
}

func TestApp_ModalSwallowsPageKeys(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.send(OpenMerchMsg{})

	ta.press("2")

	assert.Equal(t, PhaseIdle, ta.Transitions.Phase())
	assert.Equal(t, 1, ta.modalCount())
}

func TestApp_TabZoneKeys(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.press("tab")
	require.True(t, ta.Focus.OnTabs())
	ta.press("left")
	assert.Equal(t, PanelMerch, ta.Focus.Current, "focus wraps to the last tab")
	ta.press("right", "right")
	assert.Equal(t, PanelOwners, ta.Focus.Current)
	assert.Equal(t, PhaseIdle, ta.Transitions.Phase(), "moving focus does not switch panels")

	ta.press(" ")
	assert.False(t, ta.KeyHandler.LeaderWaiting, "space activates the tab instead of the leader")
	assertTarget(t, ta, PanelOwners)
}

func TestApp_LeaderOpensMerch(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.press(" ", "m")

	o, ok := ta.Overlays.Modal()
	require.True(t, ok)
	assert.Equal(t, OverlayMerch, o.Kind)
}

func TestApp_HeaderTabClick(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.View()

	r, ok := ta.Chrome.tabRects[PanelPros]
	require.True(t, ok)
	ta.click(r.X, r.Y)
	assertTarget(t, ta, PanelPros)

	ta.fireSlot(t, SlotSwap)
	ta.fireSlot(t, SlotReveal)
	ta.View()
	ta.click(ta.Chrome.brandRect.X, ta.Chrome.brandRect.Y)
	assertTarget(t, ta, PanelWelcome)
}

func TestApp_OwnerCardProfileClick(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.Transitions.Jump(PanelOwners)
	ta.View()

	g := ta.Chrome.Content(PanelOwners).(*CardGridView)
	require.NotEmpty(t, g.rects)
	card := g.rects[0]
	friend := lipgloss.Width(Styles.Button.Render("Friend"))
	x := card.X + 1 + cardPadX + friend + 1
	y := rowContent + 2 + card.Y + cardRowY
	ta.click(x, y)

	o, ok := ta.Overlays.Modal()
	require.True(t, ok)
	assert.Equal(t, "kipp3fn", o.View.(*ProfileModal).Person.Handle)
}

func TestApp_ProCardClickOpensProfileLink(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.Transitions.Jump(PanelPros)
	ta.View()

	g := ta.Chrome.Content(PanelPros).(*CardGridView)
	require.NotEmpty(t, g.rects)
	card := g.rects[0]
	ta.click(card.X+2, rowContent+2+card.Y+1)

	pro, ok := registry.Default().Pro(0)
	require.True(t, ok)
	assert.Equal(t, []string{pro.ProfileURL}, ta.opener.opened())
}

func TestApp_ImagesFallBackToPlaceholder(t *testing.T) {
	ta := newTestApp(t, nil)

	require.NotEmpty(t, ta.slots)
	for key, s := range ta.slots {
		assert.True(t, s.Resolved(), "slot %s has nothing to show", key)
		assert.LessOrEqual(t, s.Elem.Assignments(), 2, key)
	}
}

func TestApp_TrainRemovedAfterLifetime(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.send(ActivateTabMsg{Panel: PanelOwners})
	o, ok := ta.Overlays.Find(OverlayTrain)
	require.True(t, ok)

	ta.fireSlot(t, o.Slot(trainRemove))

	_, ok = ta.Overlays.Find(OverlayTrain)
	assert.False(t, ok)
	assert.False(t, ta.Sched.Active(o.Slot(trainFrame)))
}

func TestApp_ReducedMotionSwapsImmediately(t *testing.T) {
	ta := newTestApp(t, func(c *config.Config) { c.UI.ReducedMotion = true })

	ta.send(ActivateTabMsg{Panel: PanelOwners})

	assert.Equal(t, PanelOwners, ta.Transitions.Current())
	assert.Equal(t, PanelActive, ta.Transitions.State(PanelOwners))
	assert.Equal(t, 0, ta.Overlays.Len(), "no train with reduced motion")
	assert.False(t, ta.Emblem.Running())
}

func TestApp_LoaderPrimaryRemoval(t *testing.T) {
	ta := newTestApp(t, func(c *config.Config) { c.UI.SkipLoader = false })
	require.Equal(t, ModeLoading, ta.Mode)
	assert.True(t, ta.Sched.Active(SlotLoaderSafety))

	ta.fireSlot(t, SlotLoaderFade)
	assert.Equal(t, ModeLoading, ta.Mode)
	ta.fireSlot(t, SlotLoaderRemove)

	assert.Equal(t, ModeReady, ta.Mode)
	assert.Equal(t, RemovedPrimary, ta.Loader.Reason())
	assert.False(t, ta.Sched.Active(SlotLoaderSafety))
}

func TestApp_LoaderSafetyRemovalWhenPrimaryNeverFires(t *testing.T) {
	ta := newTestApp(t, func(c *config.Config) { c.UI.SkipLoader = false })

	ta.fireSlot(t, SlotLoaderSafety)

	assert.Equal(t, ModeReady, ta.Mode)
	assert.Equal(t, RemovedSafety, ta.Loader.Reason())
	assert.Contains(t, ta.View(), brandTitle)

	spans := ta.recorder.Recent()
	require.NotEmpty(t, spans)
	assert.Equal(t, trace.SpanLoader, spans[0].Name)
	assert.Equal(t, "safety", spans[0].Attributes["removed_by"])
}

func TestApp_InputIgnoredWhileLoading(t *testing.T) {
	ta := newTestApp(t, func(c *config.Config) { c.UI.SkipLoader = false })

	ta.send(ActivateTabMsg{Panel: PanelOwners})
	ta.press("2")

	assert.Equal(t, PhaseIdle, ta.Transitions.Phase())
	assert.False(t, ta.Sched.Active(SlotSwap))
}

func TestApp_EnterSkipsLoader(t *testing.T) {
	ta := newTestApp(t, func(c *config.Config) { c.UI.SkipLoader = false })

	ta.press("enter")

	assert.Equal(t, ModeReady, ta.Mode)
	assert.Equal(t, RemovedSkipped, ta.Loader.Reason())
	assert.False(t, ta.Sched.Active(SlotLoaderSafety))
}

func TestApp_HelpBoxClosesOnAnyKey(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.press("?")
	require.True(t, ta.showHelp)
	assert.True(t, strings.Contains(ta.View(), "Keys"))

	ta.press("2")
	assert.False(t, ta.showHelp)
	assert.Equal(t, PhaseIdle, ta.Transitions.Phase(), "the closing key is swallowed")
}

func TestApp_LeaderTogglesSpanList(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.send(ActivateTabMsg{Panel: PanelOwners})
	ta.fireSlot(t, SlotSwap)
	ta.fireSlot(t, SlotReveal)

	ta.press(" ", "t")
	require.True(t, ta.Spans.IsVisible())
	assert.Contains(t, ta.View(), "outcome=revealed")

	ta.press("q")
	assert.False(t, ta.Spans.IsVisible(), "q closes the list instead of quitting")
}
