package typewriter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/retrotype/internal/grapheme"
	"github.com/iw2rmb/retrotype/reconcile"
)

func charKeys(letters string) []reconcile.Key {
	keys := make([]reconcile.Key, 0, len(letters))
	for _, r := range letters {
		keys = append(keys, reconcile.Key{Label: string(r), Code: "Key" + string(r), Kind: reconcile.KeyChar})
	}
	return keys
}

// KeyboardRows is the on-screen keyboard, top row first.
var KeyboardRows = [][]reconcile.Key{
	charKeys("QWERTYUIOP"),
	charKeys("ASDFGHJKL"),
	append(charKeys("ZXCVBNM"), reconcile.Key{Label: "⌫", Code: "Backspace", Kind: reconcile.KeyBackspace}),
	{
		{Label: "space", Code: "Space", Kind: reconcile.KeySpace},
		{Label: "enter", Code: "Enter", Kind: reconcile.KeyEnter},
		{Label: "✦ inspire", Code: "Inspire", Kind: reconcile.KeyAction},
	},
}

const spaceCapWidth = 17

// capRect is a key cap's position relative to the keyboard's top-left.
type capRect struct {
	key  reconcile.Key
	x, y int
	w    int
}

func capWidth(k reconcile.Key) int {
	w := grapheme.CellWidth(k.Label) + 2
	if k.Kind == reconcile.KeySpace && w < spaceCapWidth {
		w = spaceCapWidth
	}
	return w
}

// keyboardCaps centres each row in width columns.
func keyboardCaps(width int) []capRect {
	var caps []capRect
	for y, row := range KeyboardRows {
		rowW := len(row) - 1
		for _, k := range row {
			rowW += capWidth(k)
		}
		x := maxInt((width-rowW)/2, 0)
		for _, k := range row {
			w := capWidth(k)
			caps = append(caps, capRect{key: k, x: x, y: y, w: w})
			x += w + 1
		}
	}
	return caps
}

func capByCode(code string) (reconcile.Key, bool) {
	for _, row := range KeyboardRows {
		for _, k := range row {
			if k.Code == code {
				return k, true
			}
		}
	}
	return reconcile.Key{}, false
}

func capAt(caps []capRect, x, y int) (reconcile.Key, bool) {
	for _, c := range caps {
		if y == c.y && x >= c.x && x < c.x+c.w {
			return c.key, true
		}
	}
	return reconcile.Key{}, false
}

func (m Model) renderKeyboard(width int) []string {
	st := m.cfg.Style
	wall := st.Wall.Render(" ")
	caps := keyboardCaps(width)
	rows := make([]string, len(KeyboardRows))
	col := make([]int, len(KeyboardRows))
	for _, c := range caps {
		if c.x+c.w > width {
			continue
		}
		rows[c.y] += strings.Repeat(wall, c.x-col[c.y])
		style := st.Key
		switch {
		case c.key.Code == m.highlight:
			style = st.KeyActive
		case c.key.Kind == reconcile.KeyAction:
			style = st.KeyAction
		}
		rows[c.y] += style.Width(c.w).Align(lipgloss.Center).Render(c.key.Label)
		col[c.y] = c.x + c.w
	}
	for y := range rows {
		rows[y] += strings.Repeat(wall, maxInt(width-col[y], 0))
	}
	return rows
}
