package typewriter

import (
	tea "github.com/charmbracelet/bubbletea"
)

type dragState struct {
	sticker string
	offX    int
	offY    int

	paper  bool
	startY int
	lift   int
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		return m.mousePress(msg)

	case tea.MouseActionMotion:
		switch {
		case m.drag.sticker != "":
			w, h := 0, 0
			if s, ok := m.wall.Get(m.drag.sticker); ok {
				w, h = m.stickerBox(s)
			}
			x := clampInt(msg.X-m.drag.offX, 0, maxInt(m.width-w, 0))
			y := clampInt(msg.Y-m.drag.offY, 0, maxInt(m.height-h, 0))
			m.wall.Move(m.drag.sticker, float64(x), float64(y))
		case m.drag.paper:
			m.drag.lift = maxInt(m.drag.startY-msg.Y, 0)
		}

	case tea.MouseActionRelease:
		d := m.drag
		m.drag = dragState{}
		if d.paper && d.lift >= m.cfg.TearThreshold {
			return m.tear()
		}
	}
	return m, cmd
}

func (m Model) mousePress(msg tea.MouseMsg) (Model, tea.Cmd) {
	if s, ok := m.StickerAt(msg.X, msg.Y); ok {
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonLeft:
			m.wall.Raise(s.ID)
			m.drag = dragState{sticker: s.ID, offX: msg.X - int(s.X), offY: msg.Y - int(s.Y)}
		case tea.MouseButtonRight:
			m.wall.Remove(s.ID)
			m.log.Info("sticker removed", "sticker", s.ID)
		case tea.MouseButtonMiddle:
			m.copySticker(s.Text())
		}
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if k, ok := m.KeyAt(msg.X, msg.Y); ok {
		return m.pressCap(k)
	}
	if idx, ok := m.ScreenToIndex(msg.X, msg.Y); ok {
		m.drag = dragState{paper: true, startY: msg.Y}
		if m.compose.open {
			return m, nil
		}
		cmd := m.dispatch(m.surf.SetCaret(idx), "")
		return m, cmd
	}
	return m, nil
}

func (m Model) copySticker(text string) {
	if m.cfg.Clipboard == nil || text == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(text); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
	}
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
