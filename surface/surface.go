package surface

type selectionState struct {
	active bool
	anchor int
}

type compositionState struct {
	active     bool
	start, end int
}

// Surface is a single-caret text field.
type Surface struct {
	text    []rune
	caret   int
	sel     selectionState
	comp    compositionState
	version uint64

	preferredCol int
}

func New() *Surface { return &Surface{preferredCol: -1} }

func (s *Surface) Value() string { return string(s.text) }

func (s *Surface) Len() int { return len(s.text) }

func (s *Surface) Version() uint64 { return s.version }

// Caret returns the selection start when a selection exists, otherwise the
// caret offset.
func (s *Surface) Caret() int {
	if start, _, ok := s.Selection(); ok {
		return start
	}
	return s.caret
}

// Selection returns the normalized selection [start, end).
func (s *Surface) Selection() (start, end int, ok bool) {
	if !s.sel.active || s.sel.anchor == s.caret {
		return s.caret, s.caret, false
	}
	if s.sel.anchor < s.caret {
		return s.sel.anchor, s.caret, true
	}
	return s.caret, s.sel.anchor, true
}

func (s *Surface) Composing() bool { return s.comp.active }

// SetValue force-syncs the field. It fires no events.
func (s *Surface) SetValue(value string, caret int) {
	next := []rune(value)
	caret = clampInt(caret, 0, len(next))
	// A selection survives a sync that agrees with its start.
	if string(next) == string(s.text) && caret == s.Caret() && !s.comp.active {
		return
	}
	s.text = next
	s.caret = caret
	s.sel = selectionState{}
	s.comp = compositionState{}
	s.preferredCol = -1
	s.version++
}

// SetCaret moves the caret and collapses any selection.
func (s *Surface) SetCaret(off int) []Event {
	if s.comp.active {
		return nil
	}
	off = clampInt(off, 0, len(s.text))
	if off == s.caret && !s.hasSelection() {
		return nil
	}
	s.caret = off
	s.sel = selectionState{}
	s.preferredCol = -1
	s.version++
	return s.changed()
}

// Insert types text at the caret, replacing any selection.
func (s *Surface) Insert(text string) []Event {
	if s.comp.active {
		return nil
	}
	start, end, ok := s.Selection()
	if text == "" && !ok {
		return nil
	}
	s.replace(start, end, []rune(text))
	return s.changed()
}

// Backspace deletes the selection or the rune before the caret.
func (s *Surface) Backspace() []Event {
	if s.comp.active {
		return nil
	}
	if start, end, ok := s.Selection(); ok {
		s.replace(start, end, nil)
		return s.changed()
	}
	if s.caret == 0 {
		return nil
	}
	s.replace(s.caret-1, s.caret, nil)
	return s.changed()
}

// Delete deletes the selection or the rune after the caret.
func (s *Surface) Delete() []Event {
	if s.comp.active {
		return nil
	}
	if start, end, ok := s.Selection(); ok {
		s.replace(start, end, nil)
		return s.changed()
	}
	if s.caret == len(s.text) {
		return nil
	}
	s.replace(s.caret, s.caret+1, nil)
	return s.changed()
}

func (s *Surface) replace(start, end int, ins []rune) {
	next := make([]rune, 0, len(s.text)-(end-start)+len(ins))
	next = append(next, s.text[:start]...)
	next = append(next, ins...)
	next = append(next, s.text[end:]...)
	s.text = next
	s.caret = start + len(ins)
	s.sel = selectionState{}
	s.preferredCol = -1
	s.version++
}

func (s *Surface) hasSelection() bool {
	_, _, ok := s.Selection()
	return ok
}

func (s *Surface) changed() []Event {
	return []Event{Change{Value: string(s.text), Caret: s.Caret(), Composing: s.comp.active}}
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
