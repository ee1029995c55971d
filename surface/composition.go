package surface

// BeginComposition opens a composition at the caret. An active selection is
// removed first and reported as a Change, the way platform fields replace it
// with the composition.
func (s *Surface) BeginComposition() []Event {
	if s.comp.active {
		return nil
	}
	var evs []Event
	if start, end, ok := s.Selection(); ok {
		s.replace(start, end, nil)
		evs = s.changed()
	}
	s.comp = compositionState{active: true, start: s.caret, end: s.caret}
	return append(evs, CompositionStart{})
}

// UpdateComposition replaces the marked range with preview.
func (s *Surface) UpdateComposition(preview string) []Event {
	if !s.comp.active {
		return nil
	}
	s.mark([]rune(preview))
	return []Event{
		CompositionUpdate{Text: preview},
		Change{Value: string(s.text), Caret: s.caret, Composing: true},
	}
}

// EndComposition replaces the marked range with commit and closes the
// composition. Like platform fields it fires CompositionEnd followed by a
// redundant Change carrying the committed value.
func (s *Surface) EndComposition(commit string) []Event {
	if !s.comp.active {
		return nil
	}
	s.mark([]rune(commit))
	s.comp = compositionState{}
	return []Event{
		CompositionEnd{Text: commit},
		Change{Value: string(s.text), Caret: s.caret},
	}
}

// Marked returns the marked composition range.
func (s *Surface) Marked() (start, end int, ok bool) {
	if !s.comp.active {
		return 0, 0, false
	}
	return s.comp.start, s.comp.end, true
}

func (s *Surface) mark(ins []rune) {
	start, end := s.comp.start, s.comp.end
	next := make([]rune, 0, len(s.text)-(end-start)+len(ins))
	next = append(next, s.text[:start]...)
	next = append(next, ins...)
	next = append(next, s.text[end:]...)
	s.text = next
	s.comp.end = start + len(ins)
	s.caret = s.comp.end
	s.version++
}
