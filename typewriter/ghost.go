package typewriter

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/retrotype/inspire"
)

// InspireMsg asks the Model to fetch and ghost-type an inspiration. An
// empty Topic uses the configured one.
type InspireMsg struct {
	Topic string
}

type inspirationMsg struct {
	seq  int
	text string
}

type ghostTickMsg struct{ seq int }

// ghostState tracks one inspiration run. seq is bumped whenever a run
// starts or is abandoned, so late messages from an older run are dropped.
type ghostState struct {
	seq      int
	fetching bool
	pending  []string
}

func (g ghostState) busy() bool { return g.fetching || len(g.pending) > 0 }

func (m Model) startInspire(topic string) (Model, tea.Cmd) {
	if m.ghost.busy() || m.compose.open {
		return m, nil
	}
	if topic == "" {
		topic = m.cfg.Topic
	}
	m.ghost.seq++
	m.ghost.fetching = true
	m.rec.SetGuarded(true)
	m.log.Info("inspiration requested", "topic", topic)

	seq := m.ghost.seq
	insp := m.cfg.Inspirer
	return m, func() tea.Msg {
		if insp == nil {
			return inspirationMsg{seq: seq, text: inspire.FallbackUnconfigured}
		}
		return inspirationMsg{seq: seq, text: insp.Inspire(context.Background(), topic)}
	}
}

// receiveInspiration discards the page and queues the text for typing.
func (m Model) receiveInspiration(msg inspirationMsg) (Model, tea.Cmd) {
	if msg.seq != m.ghost.seq || !m.ghost.fetching {
		return m, nil
	}
	m.ghost.fetching = false
	m.rec.Reset()
	m.forceSync()

	for _, r := range msg.text {
		if r == '\r' {
			continue
		}
		m.ghost.pending = append(m.ghost.pending, string(r))
	}
	if len(m.ghost.pending) == 0 {
		m.rec.SetGuarded(false)
		return m, nil
	}
	return m, m.nextGhostTick()
}

func (m Model) ghostTick(msg ghostTickMsg) (Model, tea.Cmd) {
	if msg.seq != m.ghost.seq || len(m.ghost.pending) == 0 {
		return m, nil
	}
	g := m.ghost.pending[0]
	m.ghost.pending = m.ghost.pending[1:]
	m.rec.AutoType(g)
	m.forceSync()
	pulse := m.startPulse()

	if len(m.ghost.pending) == 0 {
		m.rec.SetGuarded(false)
		m.log.Info("inspiration typed", "runes", m.rec.ActiveLen())
		return m, pulse
	}
	return m, tea.Batch(pulse, m.nextGhostTick())
}

func (m Model) nextGhostTick() tea.Cmd {
	seq := m.ghost.seq
	return tea.Tick(m.cfg.TypeInterval, func(time.Time) tea.Msg { return ghostTickMsg{seq: seq} })
}

// abandonGhost stops any running inspiration and lifts the guard.
func (m *Model) abandonGhost() {
	if !m.ghost.busy() {
		return
	}
	m.ghost = ghostState{seq: m.ghost.seq + 1}
	m.rec.SetGuarded(false)
	m.log.Info("inspiration abandoned")
}
