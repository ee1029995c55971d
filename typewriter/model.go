package typewriter

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/retrotype/ledger"
	"github.com/iw2rmb/retrotype/reconcile"
	"github.com/iw2rmb/retrotype/sticker"
	"github.com/iw2rmb/retrotype/surface"
)

// Model is the typewriter component.
type Model struct {
	cfg Config
	log *slog.Logger

	rec  *reconcile.Reconciler
	surf *surface.Surface
	wall *sticker.Wall

	focused bool
	width   int
	height  int

	viewport viewport.Model

	compose composeState
	ghost   ghostState
	drag    dragState

	pulse        bool
	pulseSeq     int
	highlight    string
	highlightSeq int
	available    bool

	lastVersion     uint64
	lastCursor      int
	lastComposition string
	lastFollow      followKey
}

type composeState struct {
	open    bool
	preview string
}

type followKey struct {
	version uint64
	cursor  int
	comp    string
	rows    int
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	log := cfg.Logger.With("component", "typewriter")
	m := Model{
		cfg: cfg,
		log: log,
		rec: reconcile.New(reconcile.Options{
			Ledger: ledger.Options{Strict: cfg.Strict, IDs: ledger.NewSequence("")},
			Logger: cfg.Logger,
		}),
		surf:     surface.New(),
		wall:     &sticker.Wall{},
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.rec.Version()
	return m
}

func (m Model) Init() tea.Cmd { return m.checkAvailability() }

// Reconciler exposes the page state. Mutating it directly bypasses the
// surface; call Update with a message afterwards to resync.
func (m Model) Reconciler() *reconcile.Reconciler { return m.rec }

func (m Model) Wall() *sticker.Wall { return m.wall }

func (m Model) Snapshot() reconcile.Snapshot { return m.rec.Snapshot() }

// Busy reports whether an inspiration is being fetched or typed.
func (m Model) Busy() bool { return m.ghost.busy() }

// Composing reports whether a composition preview is open.
func (m Model) Composing() bool { return m.compose.open }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	l := m.layout()
	m.viewport.Width = width
	m.viewport.Height = l.paperRows
	m.clampStickers()
	m.lastFollow = followKey{}
	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case pulseEndMsg:
		if msg.seq == m.pulseSeq {
			m.pulse = false
		}
	case highlightEndMsg:
		if msg.seq == m.highlightSeq {
			m.highlight = ""
		}
	case InspireMsg:
		m, cmd = m.startInspire(msg.Topic)
	case inspirationMsg:
		m, cmd = m.receiveInspiration(msg)
	case ghostTickMsg:
		m, cmd = m.ghostTick(msg)
	case availabilityMsg:
		m.available = bool(msg)
	case SettingsMsg:
		m, cmd = m.applySettings(msg)
	}
	m.emitChange()
	m.rebuildContent()
	return m, cmd
}

func (m Model) applySettings(s SettingsMsg) (Model, tea.Cmd) {
	m.cfg.Topic = s.Topic
	if s.TypeInterval > 0 {
		m.cfg.TypeInterval = s.TypeInterval
	}
	if s.Pulse > 0 {
		m.cfg.Pulse = s.Pulse
	}
	if s.Highlight > 0 {
		m.cfg.Highlight = s.Highlight
	}
	if s.TearThreshold > 0 {
		m.cfg.TearThreshold = s.TearThreshold
	}
	m.cfg.Width = s.Width
	m.cfg.ShowKeyboard = s.ShowKeyboard
	m.log.Info("settings applied", "width", s.Width.String(), "keyboard", s.ShowKeyboard)

	var cmd tea.Cmd
	if s.Inspirer != nil {
		m.cfg.Inspirer = s.Inspirer
		cmd = m.checkAvailability()
	}
	return m.SetSize(m.width, m.height), cmd
}

type availabilityMsg bool

func (m Model) checkAvailability() tea.Cmd {
	ac, ok := m.cfg.Inspirer.(AvailabilityChecker)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return availabilityMsg(ac.Available(ctx))
	}
}

// rebuildContent refreshes the paper viewport and keeps the current line at
// the platen whenever the page, cursor or size changed.
func (m *Model) rebuildContent() {
	l := m.layout()
	pg := m.page()
	m.viewport.SetContent(m.renderPaper(l, pg))

	key := followKey{
		version: m.rec.Version(),
		cursor:  m.rec.Cursor(),
		comp:    m.rec.Composition(),
		rows:    l.paperRows,
	}
	if key != m.lastFollow {
		m.lastFollow = key
		m.viewport.SetYOffset(pg.pos.Line)
	}
}
