package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keyboard shortcuts
type KeyMap struct {
	AddTask     key.Binding
	DeleteTask  key.Binding
	Down        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	NextStation key.Binding
	PrevStation key.Binding
	Quit        key.Binding
	Reset       key.Binding
	Skip        key.Binding
	StartPause  key.Binding
	ToggleDone  key.Binding
	ToggleMusic key.Binding
	Up          key.Binding
}

// NewKeyMap creates the default key map
func NewKeyMap() KeyMap {
	return KeyMap{
		AddTask: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		DeleteTask: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete task"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next task"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		NextStation: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next station"),
		),
		PrevStation: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "previous station"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset session"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip session"),
		),
		StartPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		ToggleDone: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle task done"),
		),
		ToggleMusic: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "play/pause music"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous task"),
		),
	}
}
