package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Open   key.Binding
	Move   key.Binding
	Select key.Binding
	Back   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev menu")),
		Next:   key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next menu")),
		Open:   key.NewBinding(key.WithKeys("enter", "down", " "), key.WithHelp("enter", "open")),
		Move:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select")),
		Back:   key.NewBinding(key.WithKeys("left", "backspace"), key.WithHelp("←", "back")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Open, k.Quit},
		{k.Move, k.Select, k.Back, k.Close},
	}
}

// menuHelp is the footer shown while a menu is open.
type menuHelp struct{ keyMap }

func (k menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Select, k.Back, k.Close}
}
