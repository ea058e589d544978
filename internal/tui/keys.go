package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add      key.Binding
	Subtract key.Binding
	Flip     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys("+", "=", "k", "up"),
			key.WithHelp("+", "add glass"),
		),
		Subtract: key.NewBinding(
			key.WithKeys("-", "_", "j", "down"),
			key.WithHelp("-", "remove glass"),
		),
		Flip: key.NewBinding(
			key.WithKeys(" ", "enter", "tab"),
			key.WithHelp("space", "flip view"),
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

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Subtract, k.Flip, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Subtract},
		{k.Flip},
		{k.Help, k.Quit},
	}
}
