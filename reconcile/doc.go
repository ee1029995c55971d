// Package reconcile keeps a tombstoned ledger in step with a text-input
// surface that only reports its resulting value and caret.
//
// The Reconciler infers edits by diffing the previous active string against
// each change notification, tracks a single active-index cursor, and runs a
// small composition state machine so uncommitted IME previews never reach
// the ledger:
//
//	Idle --CompositionStart--> Composing --CompositionEnd(text)--> Settling --Change--> Idle
//	                                     --CompositionEnd("")----> Idle
//
// Settling swallows exactly one change notification: platforms repeat the
// committed text in a plain change right after composition end.
//
// All methods must be called from one goroutine (the UI event loop).
package reconcile
