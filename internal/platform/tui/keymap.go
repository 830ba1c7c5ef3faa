package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Input is a game input derived from a key press.
type Input int

const (
	InputNone Input = iota
	InputFlap
	InputBack
	InputQuit
)

// KeyMap defines the key bindings for a cave run.
// Terminals report presses only, so Flap is released by timeout.
type KeyMap struct {
	Flap key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flap}, {k.Back, k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "enter", "up", "w"),
			key.WithHelp("space", "flap / start"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu / quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Classify maps a key message to a game input.
func (k KeyMap) Classify(msg tea.KeyMsg) Input {
	switch {
	case key.Matches(msg, k.Quit):
		return InputQuit
	case key.Matches(msg, k.Back):
		return InputBack
	case key.Matches(msg, k.Flap):
		return InputFlap
	}
	return InputNone
}
