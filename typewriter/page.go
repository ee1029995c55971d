package typewriter

import (
	"github.com/iw2rmb/retrotype/carriage"
	"github.com/iw2rmb/retrotype/ledger"
)

// pageCell is one drawn position on the sheet.
//
// A deleted glyph takes no advance: it is carried as struck by the next
// drawn cell, the way a typewriter overstrikes. In a run of deleted glyphs
// only the last one overstrikes; the others get blank cells of their own.
// index is the active index of the glyph, or of the boundary for blank and
// composition cells.
type pageCell struct {
	glyph  string
	struck string
	comp   bool
	cursor bool
	width  int
	index  int
}

type pageLine struct {
	cells []pageCell
	// start and end are the active indices of the line's first glyph and
	// of its terminating newline (or the end of the page).
	start int
	end   int
}

type page struct {
	lines []pageLine
	pos   carriage.Position
	// caretCol is the drawn column of the cursor cell on its line.
	caretCol int
}

const deletedNewline = "↵"

func layoutPage(recs []ledger.Record, cursor int, comp string, policy carriage.WidthPolicy) page {
	lines := []pageLine{{}}
	var (
		pending    string
		cursorNext bool
		ai         int
	)
	last := func() *pageLine { return &lines[len(lines)-1] }
	emit := func(c pageCell) {
		if pending != "" {
			c.struck = pending
			pending = ""
		}
		if cursorNext {
			c.cursor = true
			cursorNext = false
		}
		l := last()
		l.cells = append(l.cells, c)
	}
	boundary := func() {
		if ai != cursor {
			return
		}
		for _, r := range comp {
			g := string(r)
			emit(pageCell{glyph: g, comp: true, width: policy.Width(g), index: ai})
		}
		cursorNext = true
	}
	closeLine := func() {
		if !cursorNext && pending == "" {
			return
		}
		w := 1
		if pending != "" {
			w = policy.Width(pending)
		}
		emit(pageCell{width: w, index: ai})
	}

	for _, r := range recs {
		if r.Deleted {
			if pending != "" {
				emit(pageCell{width: policy.Width(pending), index: ai})
			}
			pending = r.Glyph
			if r.Glyph == "\n" {
				pending = deletedNewline
			}
			continue
		}
		boundary()
		if r.Glyph == "\n" {
			closeLine()
			last().end = ai
			ai++
			lines = append(lines, pageLine{start: ai})
			continue
		}
		emit(pageCell{glyph: r.Glyph, width: policy.Width(r.Glyph), index: ai})
		ai++
	}
	boundary()
	closeLine()
	last().end = ai

	active := make([]rune, 0, ai)
	for _, r := range recs {
		if r.Active() {
			active = append(active, []rune(r.Glyph)...)
		}
	}
	pos := policy.Project(string(active), cursor, comp)
	return page{lines: lines, pos: pos, caretCol: caretColumn(lines, pos.Column)}
}

// caretColumn sums the widths of the cells left of the cursor cell.
func caretColumn(lines []pageLine, fallback int) int {
	for _, l := range lines {
		x := 0
		for _, c := range l.cells {
			if c.cursor {
				return x
			}
			x += c.width
		}
	}
	return fallback
}

// indexAt returns the caret position for a click at column col of the
// line's text area.
func (l pageLine) indexAt(col int) int {
	if col < 0 {
		return l.start
	}
	x := 0
	for _, c := range l.cells {
		if col < x+c.width {
			return c.index
		}
		x += c.width
	}
	return l.end
}
