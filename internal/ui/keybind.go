package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC l d" for
// SPC, then l, then d. Single keys: "q", "h", "1", "tab".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help bar.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key sequence with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupForMode is Lookup restricted to bindings active in mode.
func (r *KeybindRegistry) LookupForMode(seq string, mode AppMode) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel maps leader keys that open a submenu to a display label.
var submenuLabel = map[string]string{
	"l": "Links",
}

// LeaderHints returns hints for SPC-prefixed bindings, filtered by mode.
// When currentSeq is empty it returns first-level hints ("l", "q");
// for "SPC l" it returns the next level ("d", "x", "m").
// Keys that open a submenu show the submenu label.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesToMode(seq, mode) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		k := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			k = parts[0]
		}
		if r.HasPrefix(prefix + k) {
			if label, ok := submenuLabel[k]; ok {
				out[k] = label
			} else {
				out[k] = k + "…"
			}
			continue
		}
		out[k] = r.describe(seq)
	}
	return out
}

// SingleHints returns described single-key bindings active in mode.
func (r *KeybindRegistry) SingleHints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || strings.Contains(seq, " ") || !r.appliesToMode(seq, mode) {
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[seq] = d
		}
	}
	return out
}

func (r *KeybindRegistry) describe(seq string) string {
	if d, ok := r.descriptions[seq]; ok && d != "" {
		return d
	}
	return seq
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	Mode          AppMode
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		Mode:      ModeReady,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// A consumed key must not be passed on to panels.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.Reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.LookupForMode(seq, h.Mode); c != nil {
			h.Reset()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.Reset()
		return true, nil
	}

	if c := h.Registry.LookupForMode(keyToSeqPart(s), h.Mode); c != nil {
		return true, c
	}
	return false, nil
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Sequence returns the pending leader sequence, e.g. "SPC l".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over the registry. While a leader sequence
// is pending it lists the next keys; otherwise the single-key bindings.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode}
}

// ShortHelp returns bindings for the one-line help bar.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	if km.keyHandler != nil && km.keyHandler.LeaderWaiting {
		b := hintBindings(km.registry.LeaderHints(km.keyHandler.Sequence(), km.mode))
		return append(b, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
	}
	b := hintBindings(km.registry.SingleHints(km.mode))
	if len(km.registry.LeaderHints("", km.mode)) > 0 {
		b = append(b, key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "more")))
	}
	return b
}

// FullHelp returns the single-key bindings and the leader bindings as two columns.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	single := hintBindings(km.registry.SingleHints(km.mode))
	var leader []key.Binding
	for seq, cmd := range km.registry.bindings {
		if cmd == nil || !strings.HasPrefix(seq, "SPC ") || !km.registry.appliesToMode(seq, km.mode) {
			continue
		}
		leader = append(leader, key.NewBinding(key.WithKeys(seq), key.WithHelp(seq, km.registry.describe(seq))))
	}
	sort.Slice(leader, func(i, j int) bool { return leader[i].Help().Key < leader[j].Help().Key })
	return [][]key.Binding{single, leader}
}

// hintBindings converts hints to bindings sorted by key for stable display.
func hintBindings(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return out
}
