package typewriter

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/retrotype/carriage"
	"github.com/iw2rmb/retrotype/inspire"
	"github.com/iw2rmb/retrotype/reconcile"
)

var testNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func newTestModel(cfg Config) Model {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(1, 2))
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return testNow }
	}
	return New(cfg).SetSize(80, 24)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		switch r {
		case ' ':
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		case '\n':
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		default:
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	return m
}

func press(m Model, t tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: t})
	return m
}

func click(m Model, x, y int, b tea.MouseButton) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Button: b, Action: tea.MouseActionPress})
	return m
}

type stubInspirer struct {
	text  string
	topic string
}

func (s *stubInspirer) Inspire(_ context.Context, topic string) string {
	s.topic = topic
	return s.text
}

type memClipboard struct{ text string }

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

func TestTyping_BuildsLedger(t *testing.T) {
	m := newTestModel(Config{})
	m = typeText(m, "hi there\nok")

	if got := m.Reconciler().ActiveString(); got != "hi there\nok" {
		t.Fatalf("active=%q", got)
	}
	if got := m.Reconciler().Cursor(); got != 11 {
		t.Fatalf("cursor=%d, want 11", got)
	}
}

func TestBackspace_LeavesTombstone(t *testing.T) {
	m := newTestModel(Config{})
	m = typeText(m, "abc")
	m = press(m, tea.KeyBackspace)

	snap := m.Snapshot()
	if len(snap.Records) != 3 {
		t.Fatalf("records=%d, want 3", len(snap.Records))
	}
	if !snap.Records[2].Deleted || snap.Records[2].Glyph != "c" {
		t.Fatalf("last record=%+v, want deleted c", snap.Records[2])
	}
	if got := m.Reconciler().ActiveString(); got != "ab" {
		t.Fatalf("active=%q, want %q", got, "ab")
	}

	m = press(m, tea.KeyLeft)
	m = press(m, tea.KeyDelete)
	if got := m.Reconciler().ActiveString(); got != "a" {
		t.Fatalf("after delete active=%q, want %q", got, "a")
	}
}

func selectLeft(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m = press(m, tea.KeyShiftLeft)
	}
	return m
}

func tombstones(m Model) int {
	n := 0
	for _, r := range m.Snapshot().Records {
		if r.Deleted {
			n++
		}
	}
	return n
}

func TestSelection_BackspaceStrikesBlock(t *testing.T) {
	m := newTestModel(Config{})
	m = typeText(m, "hello")
	m = selectLeft(m, 2)
	m = press(m, tea.KeyBackspace)

	if got := m.Reconciler().ActiveString(); got != "hel" {
		t.Fatalf("active=%q, want %q", got, "hel")
	}
	recs := m.Snapshot().Records
	if len(recs) != 5 || !recs[3].Deleted || !recs[4].Deleted || recs[3].Glyph != "l" || recs[4].Glyph != "o" {
		t.Fatalf("records=%+v, want l and o struck", recs)
	}
}

func TestSelection_TypingReplacesBlock(t *testing.T) {
	m := newTestModel(Config{})
	m = typeText(m, "hello")
	m = selectLeft(m, 2)
	m = typeText(m, "x")

	if got := m.Reconciler().ActiveString(); got != "helx" {
		t.Fatalf("active=%q, want %q", got, "helx")
	}
	if got := tombstones(m); got != 2 {
		t.Fatalf("tombstones=%d, want 2", got)
	}
	if got := m.Reconciler().Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
}

func TestSelection_BackspaceCapStrikesBlock(t *testing.T) {
	m := newTestModel(Config{ShowKeyboard: true})
	m = typeText(m, "hello")
	m = selectLeft(m, 2)

	l := m.layout()
	for _, c := range keyboardCaps(l.width) {
		if c.key.Code == "Backspace" {
			m = click(m, c.x, l.keyboardTop+c.y, tea.MouseButtonLeft)
		}
	}
	if got := m.Reconciler().ActiveString(); got != "hel" {
		t.Fatalf("active=%q, want %q", got, "hel")
	}
	if got := tombstones(m); got != 2 {
		t.Fatalf("tombstones=%d, want 2", got)
	}
}

func TestSelection_ComposeReplacesBlock(t *testing.T) {
	m := newTestModel(Config{})
	m = typeText(m, "hello")
	m = selectLeft(m, 2)
	m = press(m, tea.KeyCtrlK)
	m = typeText(m, "ni")
	m = press(m, tea.KeySpace)

	if got := m.Reconciler().ActiveString(); got != "hel你" {
		t.Fatalf("active=%q, want %q", got, "hel你")
	}
	if got := tombstones(m); got != 2 {
		t.Fatalf("tombstones=%d, want 2", got)
	}
	if st := m.Reconciler().State(); st != reconcile.StateIdle {
		t.Fatalf("state=%s, want idle", st)
	}
}

func TestPaste_NormalisesNewlines(t *testing.T) {
	m := newTestModel(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true})

	if got := m.Reconciler().ActiveString(); got != "a\nb\nc" {
		t.Fatalf("active=%q", got)
	}
}

func TestBlur_IgnoresKeys(t *testing.T) {
	m := newTestModel(Config{}).Blur()
	m = typeText(m, "x")
	if got := m.Reconciler().ActiveString(); got != "" {
		t.Fatalf("blurred model typed %q", got)
	}
	m = typeText(m.Focus(), "x")
	if got := m.Reconciler().ActiveString(); got != "x" {
		t.Fatalf("focused model typed %q", got)
	}
}

func TestCompose_CommitsOnce(t *testing.T) {
	m := newTestModel(Config{})
	m = typeText(m, "a")
	m = press(m, tea.KeyCtrlK)
	if !m.Composing() {
		t.Fatalf("expected compose mode")
	}
	m = typeText(m, "ni")

	if got := m.Reconciler().Composition(); got != "ni" {
		t.Fatalf("composition=%q, want %q", got, "ni")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "COMPOSE ni → 你") {
		t.Fatalf("status missing candidate:\n%s", view)
	}

	m = press(m, tea.KeySpace)
	if m.Composing() {
		t.Fatalf("compose mode still open")
	}
	if got := m.Reconciler().ActiveString(); got != "a你" {
		t.Fatalf("active=%q, want %q", got, "a你")
	}
	if got := len(m.Snapshot().Records); got != 2 {
		t.Fatalf("records=%d, want 2", got)
	}
	if st := m.Reconciler().State(); st != reconcile.StateIdle {
		t.Fatalf("state=%s, want idle", st)
	}
}

func TestCompose_BackspaceAndCancel(t *testing.T) {
	m := newTestModel(Config{})
	m = press(m, tea.KeyCtrlK)
	m = typeText(m, "ni")
	m = press(m, tea.KeyBackspace)
	if got := m.Reconciler().Composition(); got != "n" {
		t.Fatalf("composition=%q, want %q", got, "n")
	}

	m = press(m, tea.KeyEsc)
	if m.Composing() {
		t.Fatalf("compose mode still open")
	}
	if got := len(m.Snapshot().Records); got != 0 {
		t.Fatalf("cancel left %d records", got)
	}
}

func TestCompose_UnknownPreviewCommitsLiterally(t *testing.T) {
	m := newTestModel(Config{})
	m = press(m, tea.KeyCtrlK)
	m = typeText(m, "xq")
	m = press(m, tea.KeyEnter)

	if got := m.Reconciler().ActiveString(); got != "xq" {
		t.Fatalf("active=%q, want %q", got, "xq")
	}
}

func TestInspire_GhostTypesUnderGuard(t *testing.T) {
	insp := &stubInspirer{text: "ok"}
	m := newTestModel(Config{Inspirer: insp, Topic: "sea"})
	m = typeText(m, "x")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if cmd == nil || !m.Busy() {
		t.Fatalf("expected an inspiration fetch")
	}
	m = typeText(m, "y")
	if got := m.Reconciler().ActiveString(); got != "x" {
		t.Fatalf("guarded page changed to %q", got)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "INSPIRING…") {
		t.Fatalf("status missing fetch mode:\n%s", view)
	}

	m, _ = m.Update(cmd())
	if insp.topic != "sea" {
		t.Fatalf("topic=%q, want sea", insp.topic)
	}
	if got := m.Reconciler().ActiveString(); got != "" {
		t.Fatalf("page not cleared: %q", got)
	}

	for i := 0; m.Busy() && i < 10; i++ {
		if !m.Reconciler().Guarded() {
			t.Fatalf("guard lifted mid-run")
		}
		m, _ = m.Update(ghostTickMsg{seq: m.ghost.seq})
	}
	if m.Busy() {
		t.Fatalf("ghost run did not finish")
	}
	if got := m.Reconciler().ActiveString(); got != "ok" {
		t.Fatalf("active=%q, want ok", got)
	}
	if m.Reconciler().Guarded() {
		t.Fatalf("guard still on")
	}

	m = typeText(m, "!")
	if got := m.Reconciler().ActiveString(); got != "ok!" {
		t.Fatalf("typing after ghost run gave %q", got)
	}
}

func TestInspire_WithoutInspirerUsesFallback(t *testing.T) {
	m := newTestModel(Config{})
	m, cmd := m.Update(InspireMsg{})
	msg, ok := cmd().(inspirationMsg)
	if !ok {
		t.Fatalf("unexpected message %T", cmd())
	}
	if msg.text != inspire.FallbackUnconfigured {
		t.Fatalf("text=%q", msg.text)
	}
	m, _ = m.Update(msg)
	if !m.Busy() {
		t.Fatalf("fallback text should be ghost-typed")
	}
}

func TestInspire_BlockedWhileBusyOrComposing(t *testing.T) {
	m := newTestModel(Config{Inspirer: &stubInspirer{text: "ok"}})
	m = press(m, tea.KeyCtrlK)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG}); cmd != nil {
		t.Fatalf("inspire started while composing")
	}
	m = press(m, tea.KeyEsc)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if cmd == nil {
		t.Fatalf("inspire did not start")
	}
	seq := m.ghost.seq
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if m.ghost.seq != seq {
		t.Fatalf("second inspire restarted the run")
	}
	m = press(m, tea.KeyCtrlK)
	if m.Composing() {
		t.Fatalf("compose opened while busy")
	}
}

func TestTear_AbandonsGhostAndDropsStaleTicks(t *testing.T) {
	m := newTestModel(Config{Inspirer: &stubInspirer{text: "hello"}})
	m, cmd := m.Update(InspireMsg{})
	m, _ = m.Update(cmd())
	seq := m.ghost.seq
	m, _ = m.Update(ghostTickMsg{seq: seq})

	m = press(m, tea.KeyCtrlT)
	if m.Busy() || m.Reconciler().Guarded() {
		t.Fatalf("tear left the ghost run alive")
	}
	if m.Wall().Len() != 1 {
		t.Fatalf("stickers=%d, want 1", m.Wall().Len())
	}
	if got := m.Wall().Stickers()[0].Text(); got != "h" {
		t.Fatalf("sticker text=%q, want h", got)
	}

	m, _ = m.Update(ghostTickMsg{seq: seq})
	if got := len(m.Snapshot().Records); got != 0 {
		t.Fatalf("stale tick typed into the new page")
	}
}

func TestTear_KeepsTombstones(t *testing.T) {
	m := newTestModel(Config{})
	m = press(m, tea.KeyCtrlT)
	if m.Wall().Len() != 0 {
		t.Fatalf("empty page tore off")
	}

	m = typeText(m, "hit")
	m = press(m, tea.KeyBackspace)
	m = press(m, tea.KeyCtrlT)

	if m.Wall().Len() != 1 {
		t.Fatalf("stickers=%d, want 1", m.Wall().Len())
	}
	s := m.Wall().Stickers()[0]
	if len(s.Records) != 3 || !s.Records[2].Deleted {
		t.Fatalf("sticker records=%+v", s.Records)
	}
	if !s.CreatedAt.Equal(testNow) {
		t.Fatalf("created=%v", s.CreatedAt)
	}
	if len(m.Snapshot().Records) != 0 || m.Reconciler().Cursor() != 0 {
		t.Fatalf("page not cleared after tear")
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "hit") || !strings.Contains(view, "2024-05-01") {
		t.Fatalf("sticker not drawn:\n%s", view)
	}
}

func TestMouse_StickerButtons(t *testing.T) {
	clip := &memClipboard{}
	m := newTestModel(Config{Clipboard: clip})
	m = typeText(m, "note")
	m = press(m, tea.KeyCtrlT)
	s := m.Wall().Stickers()[0]
	x, y := int(s.X), int(s.Y)

	m = click(m, x, y, tea.MouseButtonMiddle)
	if clip.text != "note" {
		t.Fatalf("clipboard=%q, want note", clip.text)
	}

	m = click(m, x, y, tea.MouseButtonLeft)
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	moved, _ := m.Wall().Get(s.ID)
	if moved.X != 0 || moved.Y != 0 {
		t.Fatalf("sticker at (%v,%v), want (0,0)", moved.X, moved.Y)
	}

	m = click(m, 0, 0, tea.MouseButtonRight)
	if m.Wall().Len() != 0 {
		t.Fatalf("right click did not remove the sticker")
	}
}

func TestMouse_ClickMovesCaret(t *testing.T) {
	m := newTestModel(Config{})
	m = typeText(m, "hello")

	// The caret column sits under the guide at x=40; the sheet's text
	// starts five columns to its left.
	idx, ok := m.ScreenToIndex(36, 22)
	if !ok || idx != 1 {
		t.Fatalf("ScreenToIndex=(%d,%v), want (1,true)", idx, ok)
	}
	if _, ok := m.ScreenToIndex(36, 10); ok {
		t.Fatalf("wall above the sheet mapped to an index")
	}

	m = click(m, 36, 22, tea.MouseButtonLeft)
	m, _ = m.Update(tea.MouseMsg{X: 36, Y: 22, Action: tea.MouseActionRelease})
	if got := m.Reconciler().Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
	if m.Wall().Len() != 0 {
		t.Fatalf("click tore the page")
	}

	m = typeText(m, "X")
	if got := m.Reconciler().ActiveString(); got != "hXello" {
		t.Fatalf("active=%q", got)
	}
}

func TestMouse_DragPaperUpTears(t *testing.T) {
	m := newTestModel(Config{TearThreshold: 3})
	m = typeText(m, "hello")
	m = click(m, 36, 22, tea.MouseButtonLeft)
	m, _ = m.Update(tea.MouseMsg{X: 36, Y: 19, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	if view := ansi.Strip(m.View()); !strings.Contains(view, "RELEASE TO TEAR") {
		t.Fatalf("status missing tear hint:\n%s", view)
	}
	m, _ = m.Update(tea.MouseMsg{X: 36, Y: 19, Action: tea.MouseActionRelease})

	if m.Wall().Len() != 1 {
		t.Fatalf("stickers=%d, want 1", m.Wall().Len())
	}
	if got := m.Wall().Stickers()[0].Text(); got != "hello" {
		t.Fatalf("sticker text=%q", got)
	}
}

func TestKeyboard_CapPress(t *testing.T) {
	m := newTestModel(Config{ShowKeyboard: true, Inspirer: &stubInspirer{text: "ok"}})
	l := m.layout()
	caps := keyboardCaps(l.width)
	find := func(code string) capRect {
		for _, c := range caps {
			if c.key.Code == code {
				return c
			}
		}
		t.Fatalf("no cap %s", code)
		return capRect{}
	}

	q := find("KeyQ")
	k, ok := m.KeyAt(q.x+1, l.keyboardTop+q.y)
	if !ok || k.Code != "KeyQ" {
		t.Fatalf("KeyAt=(%+v,%v)", k, ok)
	}
	m = click(m, q.x+1, l.keyboardTop+q.y, tea.MouseButtonLeft)
	if got := m.Reconciler().ActiveString(); got != "q" {
		t.Fatalf("active=%q, want q", got)
	}
	if m.highlight != "KeyQ" {
		t.Fatalf("highlight=%q", m.highlight)
	}
	m, _ = m.Update(highlightEndMsg{seq: m.highlightSeq})
	if m.highlight != "" {
		t.Fatalf("highlight not cleared")
	}

	bs := find("Backspace")
	m = click(m, bs.x, l.keyboardTop+bs.y, tea.MouseButtonLeft)
	if got := m.Reconciler().ActiveString(); got != "" {
		t.Fatalf("backspace cap left %q", got)
	}

	in := find("Inspire")
	m = click(m, in.x, l.keyboardTop+in.y, tea.MouseButtonLeft)
	if !m.Busy() {
		t.Fatalf("inspire cap did not start a run")
	}
	m = click(m, q.x, l.keyboardTop+q.y, tea.MouseButtonLeft)
	if got := m.Reconciler().ActiveString(); got != "" {
		t.Fatalf("cap typed while guarded: %q", got)
	}
}

func TestOnChange_ReportsCarriage(t *testing.T) {
	var events []ChangeEvent
	m := newTestModel(Config{OnChange: func(e ChangeEvent) { events = append(events, e) }})
	m = typeText(m, "ab\nc")

	if len(events) != 4 {
		t.Fatalf("events=%d, want 4", len(events))
	}
	last := events[len(events)-1]
	if last.Line != 1 || last.Column != 1 || last.Cursor != 4 {
		t.Fatalf("last event=%+v", last)
	}
	if last.Offset != -5 {
		t.Fatalf("offset=%v, want -5", last.Offset)
	}

	m = press(m, tea.KeyLeft)
	m, _ = m.Update(pulseEndMsg{})
	if len(events) != 5 {
		t.Fatalf("events=%d, want 5", len(events))
	}
}

func TestView_DrawsPageAndStatus(t *testing.T) {
	m := newTestModel(Config{ShowKeyboard: true})
	m = typeText(m, "hi")

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Fatalf("rows=%d, want 24", len(lines))
	}
	if !strings.Contains(lines[0], "TYPE  Ln 1, Col 3") {
		t.Fatalf("status=%q", lines[0])
	}
	l := m.layout()
	if !strings.Contains(lines[l.platenY-1], "hi") {
		t.Fatalf("current line not at the platen:\n%s", view)
	}
	if !strings.Contains(lines[l.platenY], "▲") {
		t.Fatalf("platen=%q", lines[l.platenY])
	}
	if !strings.Contains(view, "enter") {
		t.Fatalf("keyboard missing:\n%s", view)
	}
}

func TestToggleKeyboard(t *testing.T) {
	m := newTestModel(Config{})
	if m.layout().keyboardTop >= 0 {
		t.Fatalf("keyboard shown by default")
	}
	m = press(m, tea.KeyF2)
	if m.layout().keyboardTop < 0 {
		t.Fatalf("keyboard not shown after toggle")
	}
}

func TestSettingsMsg_Applies(t *testing.T) {
	m := newTestModel(Config{Topic: "old"})
	insp := &stubInspirer{text: "new"}
	m, _ = m.Update(SettingsMsg{
		Topic:         "sea",
		Width:         carriage.WidthEastAsian,
		TearThreshold: 2,
		ShowKeyboard:  true,
		Inspirer:      insp,
	})

	if m.cfg.Topic != "sea" || m.cfg.Width != carriage.WidthEastAsian || m.cfg.TearThreshold != 2 {
		t.Fatalf("cfg=%+v", m.cfg)
	}
	if m.cfg.TypeInterval != defaultTypeInterval {
		t.Fatalf("zero interval overwrote the default: %v", m.cfg.TypeInterval)
	}
	if m.layout().keyboardTop < 0 {
		t.Fatalf("keyboard not shown")
	}

	m, cmd := m.Update(InspireMsg{})
	m.Update(cmd())
	if insp.topic != "sea" {
		t.Fatalf("inspirer not replaced or topic stale: %q", insp.topic)
	}
}
