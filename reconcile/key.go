package reconcile

import "strings"

// KeyKind is the behaviour of a virtual key.
type KeyKind uint8

const (
	KeyChar KeyKind = iota
	KeySpace
	KeyEnter
	KeyBackspace
	// KeyAction keys trigger features (e.g. inspiration) and never edit.
	KeyAction
)

// Key is one on-screen key cap.
type Key struct {
	Label string
	Code  string // platform key code, e.g. "KeyQ", "Backspace"
	Kind  KeyKind
}

// glyph returns the text a key types, or "" for keys that type nothing.
func (k Key) glyph() string {
	switch k.Kind {
	case KeyEnter:
		return "\n"
	case KeySpace:
		return " "
	case KeyChar:
		return strings.ToLower(k.Label)
	default:
		return ""
	}
}
