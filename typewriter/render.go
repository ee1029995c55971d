package typewriter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/retrotype/carriage"
	"github.com/iw2rmb/retrotype/internal/grapheme"
)

// layout is the vertical split of the screen: a status line, the paper
// window, the platen with the type guide, and the keyboard.
type layout struct {
	width, height int
	paperTop      int
	paperRows     int
	platenY       int
	keyboardTop   int // -1 when hidden
	guide         int
}

func (m Model) layout() layout {
	l := layout{width: m.width, height: m.height, paperTop: 1, keyboardTop: -1, guide: m.width / 2}
	kb := 0
	if m.cfg.ShowKeyboard {
		kb = len(KeyboardRows) + 1
	}
	l.paperRows = maxInt(m.height-2-kb, 1)
	l.platenY = l.paperTop + l.paperRows
	if kb > 0 {
		l.keyboardTop = l.platenY + 2
	}
	return l
}

func (m Model) page() page {
	snap := m.rec.Snapshot()
	return layoutPage(snap.Records, snap.Cursor, snap.Composition, m.cfg.Width)
}

// paperX is the screen column of the sheet's left edge. The carriage moves
// the sheet so the drawn caret cell sits under the guide.
func (m Model) paperX(l layout, pg page) int {
	return l.guide + carriage.TerminalCarriage(m.cfg.Margin).Cells(pg.caretCol)
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := m.layout()

	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderStatus(l.width))
	rows = append(rows, strings.Split(m.viewport.View(), "\n")...)
	rows = append(rows, m.renderPlaten(l))
	if l.keyboardTop >= 0 {
		rows = append(rows, m.wallRow(l.width))
		rows = append(rows, m.renderKeyboard(l.width)...)
	}
	for len(rows) < m.height {
		rows = append(rows, m.wallRow(l.width))
	}
	if len(rows) > m.height {
		rows = rows[:m.height]
	}
	view := strings.Join(rows, "\n")

	for _, s := range m.wall.Stickers() {
		view = overlay.Composite(m.renderSticker(s), view, overlay.Left, overlay.Top, int(s.X), int(s.Y))
	}
	return view
}

func (m Model) wallRow(width int) string {
	return strings.Repeat(m.cfg.Style.Wall.Render(" "), width)
}

func (m Model) renderStatus(width int) string {
	st := m.cfg.Style
	lamp := st.LampOff.Render("○")
	if m.available {
		lamp = st.LampOn.Render("●")
	}

	pos := m.page().pos
	mode := "TYPE"
	switch {
	case m.ghost.fetching:
		mode = "INSPIRING…"
	case m.ghost.busy():
		mode = "GHOST"
	case m.compose.open:
		mode = "COMPOSE " + m.compose.preview
		if c, ok := m.cfg.Composer.Candidate(m.compose.preview); ok {
			mode += " → " + c
		}
	case m.drag.paper && m.drag.lift >= m.cfg.TearThreshold:
		mode = "RELEASE TO TEAR"
	}
	text := fmt.Sprintf(" %s  Ln %d, Col %d  stickers %d", mode, pos.Line+1, pos.Column+1, m.wall.Len())
	return lamp + st.Status.Width(maxInt(width-1, 0)).MaxWidth(maxInt(width-1, 0)).Render(text)
}

func (m Model) renderPlaten(l layout) string {
	st := m.cfg.Style
	guide := st.Guide
	if m.pulse {
		guide = st.GuideActive
	}
	left := strings.Repeat("▔", clampInt(l.guide, 0, l.width))
	right := strings.Repeat("▔", maxInt(l.width-l.guide-1, 0))
	if l.guide >= l.width {
		return st.Platen.Render(left)
	}
	return st.Platen.Render(left) + guide.Render("▲") + st.Platen.Render(right)
}

// cell is a rendered fragment occupying w columns.
type cell struct {
	s string
	w int
}

// renderPaper renders every page line, preceded by paperRows-1 rows of
// wall so that YOffset == cursor line puts that line at the platen.
func (m Model) renderPaper(l layout, pg page) string {
	if l.width <= 0 {
		return ""
	}
	st := m.cfg.Style
	wall := cell{s: st.Wall.Render(" "), w: 1}
	blank := cell{s: st.Paper.Render(" "), w: 1}
	x0 := m.paperX(l, pg)
	sheetW := m.cfg.PageWidth + 2*m.cfg.Margin

	rows := make([]string, 0, l.paperRows-1+len(pg.lines))
	for i := 0; i < l.paperRows-1; i++ {
		if i == l.paperRows-2 {
			edge := make([]cell, sheetW)
			for j := range edge {
				edge[j] = cell{s: st.PaperEdge.Render("▄"), w: 1}
			}
			rows = append(rows, placeRow(edge, x0, l.width, wall, wall))
			continue
		}
		rows = append(rows, placeRow(nil, 0, l.width, wall, wall))
	}

	for _, line := range pg.lines {
		cells := make([]cell, 0, sheetW)
		for i := 0; i < m.cfg.Margin; i++ {
			cells = append(cells, blank)
		}
		used := 0
		for _, c := range line.cells {
			cells = append(cells, m.renderPageCell(c))
			used += c.width
		}
		for ; used < m.cfg.PageWidth; used++ {
			cells = append(cells, blank)
		}
		for i := 0; i < m.cfg.Margin; i++ {
			cells = append(cells, blank)
		}
		rows = append(rows, placeRow(cells, x0, l.width, wall, blank))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderPageCell(c pageCell) cell {
	st := m.cfg.Style
	text := displayGlyph(c.glyph)
	var style lipgloss.Style
	switch {
	case c.cursor:
		style = st.Cursor
		if text == "" {
			text = displayGlyph(c.struck)
		}
	case c.comp:
		style = st.Composition
	case c.glyph != "" && c.struck != "":
		style = st.Overstrike
	case c.glyph != "":
		style = st.Text
	default:
		style = st.Struck
		text = displayGlyph(c.struck)
	}
	if text == "" {
		text = " "
	}
	if d := c.width - grapheme.CellWidth(text); d > 0 {
		text += strings.Repeat(" ", d)
	}
	return cell{s: style.Render(text), w: c.width}
}

func displayGlyph(g string) string {
	for _, r := range g {
		if unicode.IsControl(r) {
			return " "
		}
	}
	return g
}

// placeRow lays cells out from screen column x0 and clips them to
// [0, width). Columns outside the cells are filled with outside; a wide
// cell cut by a screen edge is replaced by edge cells.
func placeRow(cells []cell, x0, width int, outside, edge cell) string {
	var b strings.Builder
	col := 0
	pad := func(n int, c cell) {
		for i := 0; i < n && col < width; i++ {
			b.WriteString(c.s)
			col++
		}
	}
	pad(x0, outside)
	x := x0
	for _, c := range cells {
		start, end := x, x+c.w
		x = end
		if end <= 0 {
			continue
		}
		if start >= width {
			break
		}
		if start < 0 || end > width {
			pad(minInt(end, width)-maxInt(start, 0), edge)
			continue
		}
		b.WriteString(c.s)
		col += c.w
	}
	pad(width-col, outside)
	return b.String()
}
