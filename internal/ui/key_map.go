package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	grab     key.Binding
	remove   key.Binding
	play     key.Binding
	pause    key.Binding
	autoplay key.Binding
	catalog  key.Binding
	back     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		grab:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "grab/drop")),
		remove:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		play:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "play next")),
		pause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		autoplay: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "autoplay")),
		catalog:  key.NewBinding(key.WithKeys("tab", "c"), key.WithHelp("tab", "catalog")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.grab, k.remove, k.pause, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.grab, k.remove},
		{k.play, k.pause, k.autoplay},
		{k.catalog, k.back, k.quit},
	}
}
