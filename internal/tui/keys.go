package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	left         key.Binding
	right        key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
	quit         key.Binding
	logout       key.Binding
	changeNumber key.Binding
	resend       key.Binding
	version      key.Binding
	copy         key.Binding
	edit         key.Binding
	cancel       key.Binding
	refresh      key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up")),
	down:         key.NewBinding(key.WithKeys("down")),
	left:         key.NewBinding(key.WithKeys("left")),
	right:        key.NewBinding(key.WithKeys("right")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	quit:         key.NewBinding(key.WithKeys("ctrl+c")),
	logout:       key.NewBinding(key.WithKeys("ctrl+l")),
	changeNumber: key.NewBinding(key.WithKeys("ctrl+b")),
	resend:       key.NewBinding(key.WithKeys("ctrl+r")),
	version:      key.NewBinding(key.WithKeys("ctrl+v")),
	copy:         key.NewBinding(key.WithKeys("ctrl+y")),
	edit:         key.NewBinding(key.WithKeys("ctrl+e")),
	cancel:       key.NewBinding(key.WithKeys("ctrl+x")),
	refresh:      key.NewBinding(key.WithKeys("ctrl+r")),
}
