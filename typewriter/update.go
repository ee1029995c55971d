package typewriter

import (
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/retrotype/internal/grapheme"
	"github.com/iw2rmb/retrotype/reconcile"
	"github.com/iw2rmb/retrotype/surface"
)

type pulseEndMsg struct{ seq int }

type highlightEndMsg struct{ seq int }

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	km := m.cfg.KeyMap

	if m.compose.open {
		return m.updateComposeKey(msg)
	}

	// Pasted text is typed literally and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		s := strings.ReplaceAll(string(msg.Runes), "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
		cmd := m.insertText(s, "")
		return m, cmd
	}

	var evs []surface.Event
	switch {
	case key.Matches(msg, km.Tear):
		return m.tear()
	case key.Matches(msg, km.Inspire):
		return m.startInspire(m.cfg.Topic)
	case key.Matches(msg, km.ToggleKeyboard):
		m.cfg.ShowKeyboard = !m.cfg.ShowKeyboard
		return m.SetSize(m.width, m.height), nil
	case key.Matches(msg, km.Compose):
		if m.ghost.busy() {
			return m, nil
		}
		m.compose = composeState{open: true}
		evs = m.surf.BeginComposition()

	case key.Matches(msg, km.Left):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveRune, Dir: surface.DirLeft})
	case key.Matches(msg, km.Right):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveRune, Dir: surface.DirRight})
	case key.Matches(msg, km.Up):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirUp})
	case key.Matches(msg, km.Down):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveRune, Dir: surface.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveRune, Dir: surface.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveWord, Dir: surface.DirLeft})
	case key.Matches(msg, km.WordRight):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveWord, Dir: surface.DirRight})

	case key.Matches(msg, km.Home):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirHome})
	case key.Matches(msg, km.End):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveLine, Dir: surface.DirEnd})
	case key.Matches(msg, km.DocStart):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveDoc, Dir: surface.DirHome})
	case key.Matches(msg, km.DocEnd):
		evs = m.surf.Move(surface.Move{Unit: surface.MoveDoc, Dir: surface.DirEnd})

	case key.Matches(msg, km.Backspace):
		evs = m.surf.Backspace()
	case key.Matches(msg, km.Delete):
		evs = m.surf.Delete()
	case key.Matches(msg, km.Enter):
		return m, m.insertText("\n", keyCode(msg))

	default:
		switch {
		case msg.Type == tea.KeySpace:
			return m, m.insertText(" ", keyCode(msg))
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			return m, m.insertText(printable(msg.Runes), keyCode(msg))
		}
	}
	cmd := m.dispatch(evs, keyCode(msg))
	return m, cmd
}

func (m Model) updateComposeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	var evs []surface.Event
	switch {
	case key.Matches(msg, km.Cancel):
		m.compose = composeState{}
		evs = m.surf.EndComposition("")
	case key.Matches(msg, km.Commit):
		commit := m.cfg.Composer.Convert(m.compose.preview)
		m.compose = composeState{}
		evs = m.surf.EndComposition(commit)
	case key.Matches(msg, km.Backspace):
		if m.compose.preview == "" {
			return m, nil
		}
		m.compose.preview = grapheme.TrimLast(m.compose.preview)
		evs = m.surf.UpdateComposition(m.compose.preview)
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.compose.preview += printable(msg.Runes)
		evs = m.surf.UpdateComposition(m.compose.preview)
	default:
		return m, nil
	}
	cmd := m.dispatch(evs, keyCode(msg))
	return m, cmd
}

// dispatch feeds surface events to the reconciler, then forces the surface
// back to the ledger's text unless a composition is still open.
func (m *Model) dispatch(evs []surface.Event, code string) tea.Cmd {
	pulse := false
	for _, ev := range evs {
		switch ev := ev.(type) {
		case surface.Change:
			res := m.rec.Change(ev.Value, ev.Caret)
			pulse = pulse || res.Pulse
			if res.Outcome == reconcile.OutcomeIgnored && !ev.Composing {
				m.log.Debug("change ignored", "state", m.rec.State().String(), "guarded", m.rec.Guarded())
			}
		case surface.CompositionStart:
			m.rec.CompositionStart()
		case surface.CompositionUpdate:
			m.rec.CompositionUpdate(ev.Text)
		case surface.CompositionEnd:
			tr, res := m.rec.CompositionEnd(ev.Text)
			pulse = pulse || res.Pulse
			m.log.Debug("composition end", "from", tr.From.String(), "to", tr.To.String(), "commit", ev.Text)
		}
	}
	m.forceSync()

	var cmds []tea.Cmd
	if pulse {
		cmds = append(cmds, m.startPulse())
	}
	if code != "" && len(evs) > 0 {
		cmds = append(cmds, m.startHighlight(code))
	}
	return tea.Batch(cmds...)
}

// insertText types text at the caret. A selection is struck out first so the
// reconciler sees a plain deletion followed by a plain insertion.
func (m *Model) insertText(text, code string) tea.Cmd {
	if text == "" {
		return nil
	}
	var del tea.Cmd
	if _, _, ok := m.surf.Selection(); ok {
		del = m.dispatch(m.surf.Backspace(), "")
	}
	return tea.Batch(del, m.dispatch(m.surf.Insert(text), code))
}

// forceSync makes the surface mirror the ledger. The surface may hold a
// transient value the reconciler rejected (guarded input) or normalised.
func (m *Model) forceSync() {
	if m.rec.State() == reconcile.StateComposing {
		return
	}
	m.surf.SetValue(m.rec.ActiveString(), m.rec.Cursor())
	if !m.surf.Composing() {
		m.compose = composeState{}
	}
}

func (m *Model) startPulse() tea.Cmd {
	m.pulse = true
	m.pulseSeq++
	seq := m.pulseSeq
	return tea.Tick(m.cfg.Pulse, func(time.Time) tea.Msg { return pulseEndMsg{seq: seq} })
}

func (m *Model) startHighlight(code string) tea.Cmd {
	if _, ok := capByCode(code); !ok {
		return nil
	}
	m.highlight = code
	m.highlightSeq++
	seq := m.highlightSeq
	return tea.Tick(m.cfg.Highlight, func(time.Time) tea.Msg { return highlightEndMsg{seq: seq} })
}

// pressCap applies an on-screen key.
func (m Model) pressCap(k reconcile.Key) (Model, tea.Cmd) {
	if k.Kind == reconcile.KeyAction {
		var cmd tea.Cmd
		m, cmd = m.startInspire(m.cfg.Topic)
		hl := m.startHighlight(k.Code)
		return m, tea.Batch(cmd, hl)
	}
	start, end, ok := m.surf.Selection()
	if !ok {
		start = m.surf.Caret()
		end = start
	}
	res := m.rec.PressKey(k, start, end)
	m.forceSync()

	var cmds []tea.Cmd
	if res.Outcome != reconcile.OutcomeIgnored {
		cmds = append(cmds, m.startHighlight(k.Code))
	}
	if res.Pulse {
		cmds = append(cmds, m.startPulse())
	}
	return m, tea.Batch(cmds...)
}

// keyCode maps a terminal key to the on-screen key code it corresponds to.
func keyCode(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return "Space"
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyBackspace:
		return "Backspace"
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return ""
		}
		r := unicode.ToUpper(msg.Runes[0])
		if r >= 'A' && r <= 'Z' {
			return "Key" + string(r)
		}
	}
	return ""
}

// printable drops control runes other than newline.
func printable(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if r == '\n' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
