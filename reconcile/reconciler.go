package reconcile

import (
	"log/slog"

	"github.com/iw2rmb/retrotype/ledger"
)

type Options struct {
	Ledger ledger.Options
	Logger *slog.Logger
}

// Reconciler owns the page ledger and its cursor.
type Reconciler struct {
	led    *ledger.Ledger
	cursor int

	state       State
	composition string
	guarded     bool

	log *slog.Logger
}

func New(opt Options) *Reconciler {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Reconciler{
		led: ledger.New(opt.Ledger),
		log: log.With("component", "reconcile"),
	}
}

// Cursor is the caret as an active index, 0 <= Cursor() <= ActiveLen().
func (r *Reconciler) Cursor() int { return r.cursor }

// Composition is the uncommitted preview text; empty outside compositions.
func (r *Reconciler) Composition() string { return r.composition }

func (r *Reconciler) State() State { return r.state }

func (r *Reconciler) ActiveString() string { return r.led.ActiveString() }

func (r *Reconciler) ActiveLen() int { return r.led.ActiveLen() }

func (r *Reconciler) Version() uint64 { return r.led.Version() }

// Guarded reports whether ordinary input is currently rejected.
func (r *Reconciler) Guarded() bool { return r.guarded }

// SetGuarded toggles guarded mode. While guarded, surface changes,
// composition starts and virtual keys are ignored; AutoType still works.
func (r *Reconciler) SetGuarded(on bool) { r.guarded = on }

// Change reconciles a plain change notification from the surface.
//
// Diff policy, with old = the current active string:
//   - shorter: len(old)-len(value) glyphs starting at caret were deleted;
//   - longer: the extra glyphs end at caret and are inserted there;
//   - same length: caret movement only.
//
// A length-preserving replacement (select one glyph, type another) is
// therefore reported as a move. The caller restores the surface from
// ActiveString afterwards, so the surface never diverges from the ledger.
func (r *Reconciler) Change(value string, caret int) Result {
	if r.guarded {
		r.log.Debug("change ignored while guarded")
		return Result{Outcome: OutcomeIgnored}
	}
	switch r.state {
	case StateComposing:
		return Result{Outcome: OutcomeIgnored}
	case StateSettling:
		r.state = StateIdle
		r.log.Debug("redundant change after composition discarded", "value_len", len(value))
		return Result{Outcome: OutcomeDiscarded}
	}

	next := []rune(value)
	oldLen := r.led.ActiveLen()
	caret = clampInt(caret, 0, len(next))

	switch {
	case len(next) < oldLen:
		diff := oldLen - len(next)
		struck := r.activeText(caret, caret+diff)
		r.led.SoftDelete(caret, caret+diff)
		r.cursor = caret
		return Result{Outcome: OutcomeDelete, At: caret, Text: struck, Pulse: true}

	case len(next) > oldLen:
		diff := len(next) - oldLen
		start := caret - diff
		if start < 0 {
			start = 0
		}
		return r.insertAt(start, string(next[start:start+diff]))

	default:
		r.cursor = caret
		return Result{Outcome: OutcomeMove, At: caret}
	}
}

// CompositionStart opens a composition.
func (r *Reconciler) CompositionStart() Transition {
	from := r.state
	if r.guarded || from == StateComposing {
		return Transition{From: from, To: from}
	}
	r.state = StateComposing
	r.composition = ""
	return Transition{From: from, To: StateComposing}
}

// CompositionUpdate records the preview; the ledger is untouched.
func (r *Reconciler) CompositionUpdate(text string) {
	if r.state != StateComposing {
		return
	}
	r.composition = text
}

// CompositionEnd commits text at the cursor through the regular insert path.
// A non-empty commit moves the machine to StateSettling and the returned
// Transition has DiscardNext set.
func (r *Reconciler) CompositionEnd(text string) (Transition, Result) {
	from := r.state
	if from != StateComposing {
		return Transition{From: from, To: from}, Result{Outcome: OutcomeIgnored}
	}
	r.composition = ""
	if text == "" {
		r.state = StateIdle
		return Transition{From: from, To: StateIdle}, Result{Outcome: OutcomeNone}
	}
	res := r.insertAt(r.cursor, text)
	r.state = StateSettling
	return Transition{From: from, To: StateSettling, DiscardNext: true}, res
}

// PressKey applies an on-screen key press against the surface selection
// [selStart, selEnd), bypassing change notifications.
//
// Backspace strikes the selection, or the glyph before a collapsed caret.
// Typing keys insert at selStart; the selection is not replaced.
func (r *Reconciler) PressKey(k Key, selStart, selEnd int) Result {
	if r.guarded || r.state == StateComposing {
		return Result{Outcome: OutcomeIgnored}
	}
	n := r.led.ActiveLen()
	selStart = clampInt(selStart, 0, n)
	selEnd = clampInt(selEnd, 0, n)
	if selEnd < selStart {
		selStart, selEnd = selEnd, selStart
	}

	switch k.Kind {
	case KeyAction:
		return Result{Outcome: OutcomeNone, Key: k.Code}
	case KeyBackspace:
		res := Result{Outcome: OutcomeNone, At: selStart, Pulse: true, Key: k.Code}
		start, end := selStart, selEnd
		if start == end {
			if start == 0 {
				return res
			}
			start--
		}
		res.Outcome = OutcomeDelete
		res.At = start
		res.Text = r.activeText(start, end)
		r.led.SoftDelete(start, end)
		r.cursor = start
		return res
	default:
		g := k.glyph()
		if g == "" {
			return Result{Outcome: OutcomeNone, Key: k.Code}
		}
		res := r.insertAt(selStart, g)
		res.Key = k.Code
		return res
	}
}

// AutoType appends glyph at the end of the page and moves the cursor after
// it. It is the ghost-typing path and ignores guarded mode.
func (r *Reconciler) AutoType(glyph string) Result {
	if glyph == "" {
		return Result{Outcome: OutcomeNone}
	}
	return r.insertAt(r.led.ActiveLen(), glyph)
}

// TakeSnapshotAndClear returns the whole ledger, tombstones included, and
// starts a fresh empty page.
func (r *Reconciler) TakeSnapshotAndClear() []ledger.Record {
	recs := r.led.Clear()
	r.cursor = 0
	r.composition = ""
	r.state = StateIdle
	return recs
}

// Reset discards the page.
func (r *Reconciler) Reset() { _ = r.TakeSnapshotAndClear() }

func (r *Reconciler) insertAt(at int, text string) Result {
	glyphs := splitGlyphs(text)
	if len(glyphs) == 0 {
		return Result{Outcome: OutcomeNone}
	}
	at = clampInt(at, 0, r.led.ActiveLen())
	r.led.Insert(at, glyphs)
	r.cursor = at + len(glyphs)
	return Result{Outcome: OutcomeInsert, At: at, Text: text, Pulse: true}
}

func (r *Reconciler) activeText(start, end int) string {
	runes := []rune(r.led.ActiveString())
	start = clampInt(start, 0, len(runes))
	end = clampInt(end, start, len(runes))
	return string(runes[start:end])
}

// splitGlyphs yields one glyph per rune, matching the surface's rune caret.
func splitGlyphs(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
