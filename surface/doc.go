// Package surface implements the hidden text-capture field that sits in
// front of the typewriter.
//
// A Surface behaves like a platform text area: it holds a flat value and a
// caret, applies edits locally, and reports what happened only as events
// carrying the resulting value and caret (plus composition lifecycle
// events). It never reports structured edit operations; inferring them is
// the reconciler's job.
//
// Offsets are 0-based rune offsets into Value.
package surface
