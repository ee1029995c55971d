package reconcile

// Outcome classifies what a reconciler call did.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeInsert
	OutcomeDelete
	OutcomeMove
	// OutcomeDiscarded: a redundant post-composition notification was swallowed.
	OutcomeDiscarded
	// OutcomeIgnored: input arrived while guarded or composing.
	OutcomeIgnored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeInsert:
		return "insert"
	case OutcomeDelete:
		return "delete"
	case OutcomeMove:
		return "move"
	case OutcomeDiscarded:
		return "discarded"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Result describes the effect of one input event.
//
// Pulse and Key are presentation cues only: a short "typing" animation and
// the logical key code that fired (empty when unknown).
type Result struct {
	Outcome Outcome
	At      int    // active index where the edit starts
	Text    string // inserted text, or the glyphs that were struck out
	Pulse   bool
	Key     string
}

// Mutated reports whether the ledger changed.
func (r Result) Mutated() bool {
	return r.Outcome == OutcomeInsert || r.Outcome == OutcomeDelete
}
