package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the focus view bindings.
type keyMap struct {
	Toggle        key.Binding
	Random        key.Binding
	RandomProject key.Binding
	Next          key.Binding
	Prev          key.Binding
	View          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/stop"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random task"),
		),
		RandomProject: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "random project"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "down", "j"),
			key.WithHelp("n", "next task"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "up", "k"),
			key.WithHelp("p", "prev task"),
		),
		View: key.NewBinding(
			key.WithKeys("v", "tab"),
			key.WithHelp("v", "switch view"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Random, k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Random, k.RandomProject},
		{k.Next, k.Prev, k.View},
		{k.Help, k.Quit},
	}
}
