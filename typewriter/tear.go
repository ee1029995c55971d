package typewriter

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/retrotype/sticker"
)

// tear takes the whole page, tombstones included, and pins it to the wall
// as a sticker. An empty page does not tear.
func (m Model) tear() (Model, tea.Cmd) {
	if len(m.rec.Snapshot().Records) == 0 {
		return m, nil
	}
	m.abandonGhost()
	m.compose = composeState{}

	recs := m.rec.TakeSnapshotAndClear()
	m.forceSync()

	w, _ := stickerSize(recs, m.cfg.Width)
	s := sticker.New(recs, sticker.Bounds{
		Width:        float64(m.width),
		Height:       float64(m.height),
		StickerWidth: float64(w),
	}, m.cfg.Rand, m.cfg.Now())
	id := m.wall.Add(s)
	m.clampStickers()
	m.log.Info("page torn off", "sticker", id, "records", len(recs))
	cmd := m.startPulse()
	return m, cmd
}

// clampStickers keeps every sticker fully on screen.
func (m *Model) clampStickers() {
	for _, s := range m.wall.Stickers() {
		w, h := stickerSize(s.Records, m.cfg.Width)
		x := clampInt(int(s.X), 0, maxInt(m.width-w, 0))
		y := clampInt(int(s.Y), 0, maxInt(m.height-h, 0))
		if float64(x) != s.X || float64(y) != s.Y {
			m.wall.Move(s.ID, float64(x), float64(y))
		}
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
