package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfighter/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Pause, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "climb"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "dive"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "back"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "forward"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
// Returns ActionNone for unbound keys and the screenshot key.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionMoveUp
	case key.Matches(msg, k.Down):
		return core.ActionMoveDown
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionTogglePause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// holdTicks is how long a movement key counts as held after its last
// press. Terminals report repeats but no releases, so the first repeat
// delay has to be bridged.
const holdTicks = 14

// Steering synthesizes stop intents for movement keys that are no
// longer repeating.
type Steering struct {
	vertical   int // Ticks since the last vertical press, -1 when idle
	horizontal int
}

// NewSteering creates an idle steering tracker.
func NewSteering() Steering {
	return Steering{vertical: -1, horizontal: -1}
}

// Press records a movement action.
func (s *Steering) Press(a core.Action) {
	switch a {
	case core.ActionMoveUp, core.ActionMoveDown:
		s.vertical = 0
	case core.ActionMoveLeft, core.ActionMoveRight:
		s.horizontal = 0
	}
}

// Tick advances one tick and appends stop intents for axes whose keys
// went quiet.
func (s *Steering) Tick(frame *core.InputFrame) {
	if s.vertical >= 0 {
		s.vertical++
		if s.vertical > holdTicks {
			frame.Set(core.ActionStopVertical)
			s.vertical = -1
		}
	}
	if s.horizontal >= 0 {
		s.horizontal++
		if s.horizontal > holdTicks {
			frame.Set(core.ActionStopHorizontal)
			s.horizontal = -1
		}
	}
}

// Reset forgets all held keys.
func (s *Steering) Reset() {
	*s = NewSteering()
}
