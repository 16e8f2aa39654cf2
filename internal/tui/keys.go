package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newItem   key.Binding
	refresh   key.Binding
	ping      key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	ping:      key.NewBinding(key.WithKeys("p")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y", "Y")),
	no:        key.NewBinding(key.WithKeys("n", "N", "esc")),
}
