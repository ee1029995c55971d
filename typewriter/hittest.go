package typewriter

import (
	"github.com/iw2rmb/retrotype/reconcile"
	"github.com/iw2rmb/retrotype/sticker"
)

// ScreenToIndex maps a screen position over the paper to an active index.
func (m Model) ScreenToIndex(x, y int) (int, bool) {
	l := m.layout()
	if y < l.paperTop || y >= l.paperTop+l.paperRows {
		return 0, false
	}
	pg := m.page()
	line := m.viewport.YOffset + (y - l.paperTop) - (l.paperRows - 1)
	if line < 0 || line >= len(pg.lines) {
		return 0, false
	}
	left := m.paperX(l, pg)
	if x < left || x >= left+m.cfg.PageWidth+2*m.cfg.Margin {
		return 0, false
	}
	return pg.lines[line].indexAt(x - left - m.cfg.Margin), true
}

// KeyAt returns the on-screen key under (x, y).
func (m Model) KeyAt(x, y int) (reconcile.Key, bool) {
	l := m.layout()
	if l.keyboardTop < 0 {
		return reconcile.Key{}, false
	}
	return capAt(keyboardCaps(l.width), x, y-l.keyboardTop)
}

// StickerAt returns the topmost sticker under (x, y).
func (m Model) StickerAt(x, y int) (sticker.Sticker, bool) {
	return m.wall.HitTest(float64(x), float64(y), func(s sticker.Sticker) (float64, float64) {
		w, h := m.stickerBox(s)
		return float64(w), float64(h)
	})
}
