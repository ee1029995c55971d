package reconcile

import "github.com/iw2rmb/retrotype/ledger"

// Snapshot is a read-only copy of reconciler state for presentation.
type Snapshot struct {
	Version     uint64
	Records     []ledger.Record
	Cursor      int
	Composition string
	State       State
	Guarded     bool
}

func (r *Reconciler) Snapshot() Snapshot {
	return Snapshot{
		Version:     r.led.Version(),
		Records:     r.led.Records(),
		Cursor:      r.cursor,
		Composition: r.composition,
		State:       r.state,
		Guarded:     r.guarded,
	}
}
