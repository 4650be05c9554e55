package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI. The bindings
// mirror a click wheel: up/down scroll, enter is the center button, esc
// is Menu.
type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	back  key.Binding
	play  key.Binding
	next  key.Binding
	prev  key.Binding
	fav   key.Binding
	edit  key.Binding
	quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		play:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		fav:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		edit:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "edit query")),
		quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.enter, k.back, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.play, k.fav},
		{k.next, k.prev, k.quit},
	}
}
