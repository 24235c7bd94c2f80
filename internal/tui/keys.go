package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevPage, k.NextPage, k.Quit}}
}

var keys = keyMap{
	NextPage: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h", "shift+tab"),
		key.WithHelp("←", "previous page"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
