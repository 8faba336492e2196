package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/input"
)

// KeyMap defines the key bindings shown in the status line and used to
// translate Bubble Tea key messages into input events.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns arrow keys and WASD for movement and Ctrl+C to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Translate converts a key message into an input event. Bound keys map to
// their canonical event; anything else is parsed from its key name so the
// tracker can decide to ignore it.
func (k KeyMap) Translate(msg tea.KeyMsg) input.KeyEvent {
	switch {
	case key.Matches(msg, k.Quit):
		return input.KeyEvent{Key: input.KeyCtrlC, Mod: input.ModCtrl}
	case key.Matches(msg, k.Up):
		return input.KeyEvent{Key: input.KeyUp}
	case key.Matches(msg, k.Down):
		return input.KeyEvent{Key: input.KeyDown}
	case key.Matches(msg, k.Left):
		return input.KeyEvent{Key: input.KeyLeft}
	case key.Matches(msg, k.Right):
		return input.KeyEvent{Key: input.KeyRight}
	}
	return input.ParseKey(msg.String())
}
