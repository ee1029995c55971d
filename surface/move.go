package surface

import "unicode"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, grows the selection; if false collapses it
}

// Move moves the caret. A caret-only change still fires a Change event,
// the same way a platform field fires a select notification.
func (s *Surface) Move(m Move) []Event {
	if s.comp.active {
		return nil
	}
	prevCaret := s.caret
	prevSel := s.sel

	var next int
	if start, end, ok := s.Selection(); ok && !m.Extend && m.Unit == MoveRune && (m.Dir == DirLeft || m.Dir == DirRight) {
		// Collapse to the selection edge instead of stepping past it.
		next = start
		if m.Dir == DirRight {
			next = end
		}
	} else {
		next = clampInt(s.moveCaret(s.caret, m), 0, len(s.text))
	}

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCaret
		if prevSel.active && prevSel.anchor != prevCaret {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor}
		}
	}

	if next == prevCaret && nextSel == prevSel {
		return nil
	}
	if m.Dir != DirUp && m.Dir != DirDown {
		s.preferredCol = -1
	}
	s.caret = next
	s.sel = nextSel
	s.version++
	return s.changed()
}

func (s *Surface) moveCaret(off int, m Move) int {
	switch m.Unit {
	case MoveRune:
		return s.moveRune(off, m.Dir)
	case MoveWord:
		return s.moveWord(off, m.Dir)
	case MoveLine:
		return s.moveLine(off, m.Dir)
	case MoveDoc:
		return s.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (s *Surface) moveRune(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return off - 1
	case DirRight:
		return off + 1
	default:
		return s.moveLine(off, dir)
	}
}

func (s *Surface) moveWord(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return prevWordBoundary(s.text, off)
	case DirRight:
		return nextWordBoundary(s.text, off)
	default:
		return s.moveLine(off, dir)
	}
}

func (s *Surface) moveLine(off int, dir MoveDir) int {
	start, end := s.lineBounds(off)
	col := off - start

	switch dir {
	case DirHome:
		return start
	case DirEnd:
		return end
	case DirUp:
		if start == 0 {
			return off
		}
		pStart, pEnd := s.lineBounds(start - 1)
		return pStart + minInt(s.wantCol(col), pEnd-pStart)
	case DirDown:
		if end == len(s.text) {
			return off
		}
		nStart, nEnd := s.lineBounds(end + 1)
		return nStart + minInt(s.wantCol(col), nEnd-nStart)
	default:
		return off
	}
}

func (s *Surface) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(s.text)
	default:
		return off
	}
}

// wantCol remembers the column a vertical run started from.
func (s *Surface) wantCol(col int) int {
	if s.preferredCol < 0 {
		s.preferredCol = col
	}
	return s.preferredCol
}

// lineBounds returns the [start, end) of the logical line containing off;
// end is the offset of its newline or len(text).
func (s *Surface) lineBounds(off int) (start, end int) {
	off = clampInt(off, 0, len(s.text))
	start = off
	for start > 0 && s.text[start-1] != '\n' {
		start--
	}
	end = off
	for end < len(s.text) && s.text[end] != '\n' {
		end++
	}
	return start, end
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline counts as whitespace, so words never span lines
func prevWordBoundary(text []rune, off int) int {
	i := clampInt(off, 0, len(text))
	for i > 0 && unicode.IsSpace(text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(text[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(text []rune, off int) int {
	i := clampInt(off, 0, len(text))
	for i < len(text) && unicode.IsSpace(text[i]) {
		i++
	}
	for i < len(text) && !unicode.IsSpace(text[i]) {
		i++
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
