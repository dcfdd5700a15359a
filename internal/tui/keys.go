// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding

	save       key.Binding
	delete     key.Binding
	copy       key.Binding
	reveal     key.Binding
	newSession key.Binding
	upload     key.Binding
	add        key.Binding
	refresh    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),

	save:       key.NewBinding(key.WithKeys("s")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	reveal:     key.NewBinding(key.WithKeys("v")),
	newSession: key.NewBinding(key.WithKeys("n")),
	upload:     key.NewBinding(key.WithKeys("u")),
	add:        key.NewBinding(key.WithKeys("a")),
	refresh:    key.NewBinding(key.WithKeys("r")),
}
