package typewriter

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the typewriter key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	// Composition: Compose opens a preview, Commit converts it, Cancel drops it.
	Compose, Commit, Cancel key.Binding

	Tear, Inspire, ToggleKeyboard key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "page start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "page end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "strike left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "strike right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "return")),

		Compose: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "compose")),
		Commit:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("space/enter", "commit")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Tear:           key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "tear off")),
		Inspire:        key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "inspire")),
		ToggleKeyboard: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "keyboard")),
	}
}
