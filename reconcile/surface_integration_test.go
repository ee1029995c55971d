package reconcile

import (
	"math/rand/v2"
	"testing"

	"github.com/iw2rmb/retrotype/ledger"
	"github.com/iw2rmb/retrotype/surface"
)

func dispatch(r *Reconciler, evs []surface.Event) {
	for _, ev := range evs {
		switch ev := ev.(type) {
		case surface.Change:
			r.Change(ev.Value, ev.Caret)
		case surface.CompositionStart:
			r.CompositionStart()
		case surface.CompositionUpdate:
			r.CompositionUpdate(ev.Text)
		case surface.CompositionEnd:
			r.CompositionEnd(ev.Text)
		}
	}
}

func TestSurfaceDrivenEditsKeepLedgerInStep(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	words := []string{"a", "b", "q", " ", "\n", "ü", "你", "xyz", "hi there"}
	moves := []surface.Move{
		{Unit: surface.MoveRune, Dir: surface.DirLeft},
		{Unit: surface.MoveRune, Dir: surface.DirRight},
		{Unit: surface.MoveWord, Dir: surface.DirLeft},
		{Unit: surface.MoveLine, Dir: surface.DirUp},
		{Unit: surface.MoveLine, Dir: surface.DirDown},
		{Unit: surface.MoveLine, Dir: surface.DirEnd},
		{Unit: surface.MoveDoc, Dir: surface.DirHome},
	}

	r := New(Options{Ledger: ledger.Options{Strict: true}})
	s := surface.New()

	for step := 0; step < 2000; step++ {
		switch op := rng.IntN(8); op {
		case 0, 1:
			dispatch(r, s.Insert(words[rng.IntN(len(words))]))
		case 2:
			dispatch(r, s.Backspace())
		case 3:
			dispatch(r, s.Delete())
		case 4:
			dispatch(r, s.Move(moves[rng.IntN(len(moves))]))
		case 5:
			// Select a little and strike it out.
			dispatch(r, s.Move(surface.Move{Unit: surface.MoveRune, Dir: surface.DirLeft, Extend: true}))
			dispatch(r, s.Move(surface.Move{Unit: surface.MoveRune, Dir: surface.DirLeft, Extend: true}))
			dispatch(r, s.Backspace())
		case 6:
			dispatch(r, s.BeginComposition())
			dispatch(r, s.UpdateComposition("n"))
			dispatch(r, s.UpdateComposition("ni"))
			if rng.IntN(4) == 0 {
				dispatch(r, s.EndComposition(""))
			} else {
				dispatch(r, s.EndComposition("你"))
			}
		case 7:
			// Compose over a selection.
			dispatch(r, s.Move(surface.Move{Unit: surface.MoveRune, Dir: surface.DirLeft, Extend: true}))
			dispatch(r, s.BeginComposition())
			dispatch(r, s.UpdateComposition("ni"))
			dispatch(r, s.EndComposition("你"))
		}

		if got, want := r.ActiveString(), s.Value(); got != want {
			t.Fatalf("step %d: ledger=%q surface=%q", step, got, want)
		}
		if got, want := r.Cursor(), s.Caret(); got != want {
			t.Fatalf("step %d: cursor=%d caret=%d", step, got, want)
		}
		if r.State() != StateIdle {
			t.Fatalf("step %d: state=%v, want idle", step, r.State())
		}

		// Force-sync, as the presentation layer does after every event.
		s.SetValue(r.ActiveString(), r.Cursor())
	}
}
