package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"transit/internal/assets"
	"transit/internal/clipboard"
	"transit/internal/config"
	"transit/internal/imageguard"
	"transit/internal/links"
	"transit/internal/registry"
	"transit/internal/trace"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Trace keys of the spans the app keeps open.
const (
	traceLoader     = "loader"
	traceTransition = "transition"
	traceModal      = "modal"
)

// Copier writes text to the clipboard.
type Copier interface {
	Copy(text string) (clipboard.Method, error)
}

// Options wires the app to its collaborators. Nil fields get defaults.
type Options struct {
	Config     *config.Config
	Registry   *registry.Registry
	Assets     *assets.Store
	Copier     Copier
	Opener     links.Opener
	Images     imageguard.Loader
	Recorder   *trace.Recorder
	Logger     *slog.Logger
	StartPanel PanelID
}

// AppModel is the root model: loading splash, then the site.
type AppModel struct {
	Mode        AppMode
	Sched       *Scheduler
	Transitions *TransitionController
	Overlays    *OverlayManager
	Toast       *Toast
	Loader      *Loader
	Emblem      *Emblem
	Chrome      *Chrome
	Focus       *FocusManager
	KeyHandler  *KeyHandler
	Spans       *SpansView

	cfg      *config.Config
	copier   Copier
	opener   links.Opener
	images   imageguard.Loader
	guard    *imageguard.Guard
	slots    map[string]*imageguard.Slot
	recorder *trace.Recorder
	log      *slog.Logger

	viewport viewport.Model
	showHelp bool
	width    int
	height   int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	store := opts.Assets
	if store == nil {
		store = assets.NewStore(cfg.Assets.Dir)
	}
	a := &AppModel{
		Mode:     ModeLoading,
		Sched:    NewScheduler(),
		cfg:      cfg,
		copier:   opts.Copier,
		opener:   opts.Opener,
		images:   opts.Images,
		guard:    imageguard.New(store),
		slots:    make(map[string]*imageguard.Slot),
		recorder: opts.Recorder,
		log:      log,
		viewport: viewport.New(80, 20),
	}
	if a.copier == nil {
		a.copier = clipboard.New()
	}
	if a.opener == nil {
		a.opener = links.NewBrowser()
	}
	if a.images == nil {
		a.images = imageguard.FileLoader{}
	}

	t := cfg.Timings
	swap, reveal := t.SwapDelay.Duration, t.RevealDelay.Duration
	if cfg.UI.ReducedMotion {
		swap, reveal = 0, 0
	}
	start := opts.StartPanel
	if start == "" {
		start = PanelWelcome
	}
	a.Transitions = NewTransitionController(a.Sched, start, swap, reveal)
	a.Overlays = NewOverlayManager(a.Sched)
	a.Overlays.OnRemove(a.overlayRemoved)
	a.Toast = NewToast(a.Sched, t.Toast.Duration)
	a.Loader = NewLoader(a.Sched, t, cfg.UI.ReducedMotion)
	a.Emblem = NewEmblem(a.Sched, t.EmblemFlip.Duration)
	a.Focus = NewFocusManager(a.Transitions.Current())
	a.KeyHandler = NewKeyHandler(newKeybinds(cfg.Links))
	a.KeyHandler.Mode = ModeLoading
	a.Spans = NewSpansView(opts.Recorder)
	a.Chrome = a.buildChrome(opts.Registry, store)
	return a
}

// buildChrome builds the page. A failure is logged and leaves an empty
// chrome; it never stops the loader timers.
func (a *AppModel) buildChrome(reg *registry.Registry, store *assets.Store) (c *Chrome) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("building chrome", "panic", fmt.Sprint(r))
			c, _ = BuildChrome(nil, a.cfg, nil)
		}
	}()
	c, err := BuildChrome(reg, a.cfg, store)
	if err != nil {
		a.log.Warn("building chrome", "err", err)
	}
	return c
}

func newKeybinds(l config.LinksConfig) *KeybindRegistry {
	reg := NewKeybindRegistry()
	ready := []AppMode{ModeReady}
	reg.BindWithDesc("ctrl+c", tea.Quit, "")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForMode("h", send(GoHomeMsg{}), "home", ready)
	reg.BindWithDescForMode("?", send(ToggleHelpMsg{}), "help", ready)
	reg.BindWithDescForMode("tab", func() tea.Msg { return toggleZoneMsg{} }, "tabs/content", ready)
	for i, id := range Panels {
		reg.BindWithDescForMode(fmt.Sprint(i+1), send(ActivateTabMsg{Panel: id}), "", ready)
	}
	reg.BindWithDescForMode("SPC l d", send(OpenLinkMsg{URL: l.Discord, Label: "Discord"}), "Discord", ready)
	reg.BindWithDescForMode("SPC l x", send(OpenLinkMsg{URL: l.Twitter, Label: "X"}), "X", ready)
	reg.BindWithDescForMode("SPC l m", send(OpenLinkMsg{URL: l.Map, Label: "Map"}), "Map", ready)
	reg.BindWithDescForMode("SPC m", send(OpenMerchMsg{}), "Merch", ready)
	reg.BindWithDescForMode("SPC t", send(ToggleSpansMsg{}), "Spans", ready)
	return reg
}

// toggleZoneMsg moves keyboard focus between the tab bar and the content.
type toggleZoneMsg struct{}

// Init implements tea.Model. The loader's safety timer is scheduled before
// anything else.
func (a *appModelAdapter) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.cfg.UI.SkipLoader {
		a.Loader.Skip()
		a.reveal()
	} else {
		cmds = append(cmds, a.Loader.Start())
		a.recorder.Start(traceLoader, trace.SpanLoader, nil)
	}
	cmds = append(cmds, a.loadImages())
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)
	case FiredMsg:
		return a, a.handleFired(msg)
	case spinner.TickMsg:
		return a, a.Loader.UpdateSpinner(msg)
	case imageguard.LoadedMsg:
		return a, a.handleImageLoaded(msg)
	case ActivateTabMsg:
		return a, a.activateTab(msg.Panel)
	case EnterSiteMsg:
		return a, a.requestPanel(PanelOwners, "enter")
	case GoHomeMsg:
		return a, a.requestPanel(PanelWelcome, "home")
	case OpenProfileMsg:
		return a, a.openProfile(msg.Person)
	case OpenMerchMsg:
		return a, a.openMerch()
	case DismissModalMsg:
		a.Overlays.Remove(msg.ID)
		return a, nil
	case FriendMsg:
		return a, tea.Batch(
			copyCmd(a.copier, msg.Person.Handle),
			openLinkCmd(a.opener, a.cfg.Links.Discord, "Discord"),
		)
	case CopyHandleMsg:
		return a, copyCmd(a.copier, msg.Handle)
	case OpenLinkMsg:
		return a, openLinkCmd(a.opener, msg.URL, msg.Label)
	case NotifyMerchMsg:
		return a, a.Toast.Show("We will notify when merch is available", 0)
	case CopyResultMsg:
		return a, a.handleCopyResult(msg)
	case LinkOpenedMsg:
		return a, a.handleLinkOpened(msg)
	case ToggleHelpMsg:
		a.showHelp = !a.showHelp
		return a, nil
	case ToggleSpansMsg:
		a.Spans.SetVisible(!a.Spans.IsVisible())
		return a, nil
	case toggleZoneMsg:
		a.Focus.ToggleZone()
		if a.Focus.OnTabs() {
			a.Focus.SetFocus(a.Transitions.Current())
		}
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}
	return a, nil
}

func (a *appModelAdapter) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	a.Loader.SetSize(msg.Width, msg.Height)
	r := contentRect(msg.Width, msg.Height)
	a.viewport.Width = r.W
	a.viewport.Height = r.H
	a.Chrome.SetSize(r.W, r.H)
	a.Spans.SetSize(msg.Width, msg.Height)
	if o, ok := a.Overlays.Find(OverlayTrain); ok {
		a.Overlays.Update(o.ID, msg)
	}
	return a, nil
}

// reveal ends the splash and hands input to the site.
func (a *AppModel) reveal() {
	a.Mode = ModeReady
	a.KeyHandler.Mode = ModeReady
	reason := string(a.Loader.Reason())
	a.recorder.End(traceLoader, map[string]string{"removed_by": reason})
	a.log.Info("loader removed", "by", reason)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if !a.Loader.Removed() {
		return a.Loader.View()
	}
	w, h := a.width, a.height
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}

	focused := PanelID("")
	if a.Focus.OnTabs() {
		focused = a.Focus.Current
	}
	emblem := ""
	if !a.cfg.UI.ReducedMotion {
		emblem = a.Emblem.View() + " "
	}
	lines := []string{
		a.Chrome.Header(w, emblem, a.Transitions.Current(), focused),
		a.stripView(w),
	}
	lines = append(lines, a.contentView(w, h))
	lines = append(lines, a.Toast.View(w), a.helpBar(w))
	screen := strings.Join(lines, "\n")

	if a.showHelp {
		return overlayCenter(screen, RenderFullHelp(a.KeyHandler), w, h)
	}
	if a.Spans.IsVisible() {
		return overlayCenter(screen, a.Spans.View(), w, h)
	}
	if o, ok := a.Overlays.Modal(); ok {
		backdrop := ModalStyles.Backdrop.Render(ansi.Strip(screen))
		return overlayCenter(backdrop, o.View.View(), w, h)
	}
	return screen
}

func (a *AppModel) stripView(width int) string {
	if o, ok := a.Overlays.Find(OverlayTrain); ok {
		if s, ok := o.View.(*TrainStrip); ok {
			return s.Render(width)
		}
	}
	return Styles.Strip.Render(strings.Repeat("─", width))
}

// contentView renders the visible panel inside the viewport.
func (a *AppModel) contentView(w, h int) string {
	r := contentRect(w, h)
	id, state := a.Transitions.Visible()
	body := a.panelBody(id)
	if state == PanelRevealing {
		body = Styles.Revealing.Render(ansi.Strip(body))
	}
	a.viewport.Width = r.W
	a.viewport.Height = r.H
	a.viewport.SetContent(body)
	return a.viewport.View()
}

// panelBody returns the heading and content of panel id, and the number of
// lines above the content.
func (a *AppModel) panelBody(id PanelID) string {
	body, _ := a.panelBodyOffset(id)
	return body
}

func (a *AppModel) panelBodyOffset(id PanelID) (string, int) {
	c := a.Chrome.Content(id)
	if c == nil {
		return Styles.Empty.Render("Nothing here."), 0
	}
	if heading := a.Chrome.Heading(id); heading != "" {
		return Styles.Title.Render(heading) + "\n\n" + c.View(), 2
	}
	return c.View(), 0
}

func (a *AppModel) helpBar(width int) string {
	return ansi.Truncate(RenderKeybindHelp(a.KeyHandler, width), width, "…")
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
