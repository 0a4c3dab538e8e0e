package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rogue-shot/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after its last
// press or auto-repeat. Terminals send no key-up events.
const DefaultHoldTicks = 8

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Jump      key.Binding
	FastFall  key.Binding
	Fire      key.Binding
	Pause     key.Binding
	Reset     key.Binding
	Debug     key.Binding
	SpawnItem key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.FastFall, k.Fire},
		{k.Pause, k.Reset, k.Debug, k.SpawnItem},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("w", "up", " "),
			key.WithHelp("w/space", "jump"),
		),
		FastFall: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "fast fall"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("click/f", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new level"),
		),
		Debug: key.NewBinding(
			key.WithKeys("`", "f3"),
			key.WithHelp("`", "debug"),
		),
		SpawnItem: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "spawn item (debug)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight, false
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.FastFall):
		return core.ActionFastFall, false
	case key.Matches(msg, k.Fire):
		return core.ActionFire, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.Debug):
		return core.ActionDebug, false
	case key.Matches(msg, k.SpawnItem):
		return core.ActionSpawnItem, false
	}
	return core.ActionNone, false
}

// Held turns discrete key presses into per-tick input. Movement keys stay
// active for a number of ticks after each press; every other action fires
// on the next frame only.
type Held struct {
	hold    int
	left    map[core.Action]int
	pending map[core.Action]bool
}

// NewHeld creates a tracker that keeps movement keys down for holdTicks.
func NewHeld(holdTicks int) *Held {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Held{
		hold:    holdTicks,
		left:    make(map[core.Action]int),
		pending: make(map[core.Action]bool),
	}
}

func held(a core.Action) bool {
	return a == core.ActionMoveLeft || a == core.ActionMoveRight || a == core.ActionFastFall
}

// Press records an action.
func (h *Held) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !held(a) {
		h.pending[a] = true
		return
	}
	// Opposite directions cancel so a quick reversal does not stall.
	switch a {
	case core.ActionMoveLeft:
		delete(h.left, core.ActionMoveRight)
	case core.ActionMoveRight:
		delete(h.left, core.ActionMoveLeft)
	}
	h.left[a] = h.hold
}

// Frame builds the input for one tick and ages the held keys.
func (h *Held) Frame(aim core.Vec2) core.InputFrame {
	f := core.NewInputFrame()
	f.Aim = aim
	for a, n := range h.left {
		f.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
	for a := range h.pending {
		f.Set(a)
		delete(h.pending, a)
	}
	return f
}

// Release drops every held and pending action.
func (h *Held) Release() {
	clear(h.left)
	clear(h.pending)
}
