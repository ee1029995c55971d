package reconcile

// State is the composition lifecycle state.
type State uint8

const (
	StateIdle State = iota
	StateComposing
	// StateSettling discards the next change notification.
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComposing:
		return "composing"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Transition describes one composition state change. DiscardNext tells the
// caller that the next raw change notification will be swallowed.
type Transition struct {
	From        State
	To          State
	DiscardNext bool
}

// Changed reports whether the transition moved the machine.
func (t Transition) Changed() bool { return t.From != t.To }
