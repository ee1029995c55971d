package ledger

// Record is one glyph on the page.
//
// ID is unique within a session and stable for the record's lifetime. Glyph
// never changes after creation. Deleted only ever moves from false to true.
type Record struct {
	ID      string
	Glyph   string
	Deleted bool
}

// Active reports whether r is part of the visible text.
func (r Record) Active() bool { return !r.Deleted }
