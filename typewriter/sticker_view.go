package typewriter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/retrotype/carriage"
	"github.com/iw2rmb/retrotype/internal/grapheme"
	"github.com/iw2rmb/retrotype/ledger"
	"github.com/iw2rmb/retrotype/sticker"
)

const (
	stickerMinText = 10
	stickerMaxText = 28
	stickerDate    = "2006-01-02"
)

type stickerGlyph struct {
	text    string
	deleted bool
	width   int
}

// stickerRows wraps a sticker's records into rows at most maxW cells wide.
// Deleted glyphs keep their advance and are struck through.
func stickerRows(recs []ledger.Record, policy carriage.WidthPolicy, maxW int) [][]stickerGlyph {
	s := sticker.Sticker{Records: recs}
	var rows [][]stickerGlyph
	for _, line := range s.Lines() {
		row := []stickerGlyph{}
		w := 0
		for _, r := range line {
			g := stickerGlyph{text: r.Glyph, deleted: r.Deleted}
			if r.Glyph == "\n" {
				g.text = deletedNewline
			}
			g.width = policy.Width(g.text)
			if w+g.width > maxW && len(row) > 0 {
				rows = append(rows, row)
				row, w = nil, 0
			}
			row = append(row, g)
			w += g.width
		}
		rows = append(rows, row)
	}
	return rows
}

func rowWidth(row []stickerGlyph) int {
	w := 0
	for _, g := range row {
		w += g.width
	}
	return w
}

func stickerTextWidth(rows [][]stickerGlyph) int {
	w := stickerMinText
	for _, r := range rows {
		w = maxInt(w, rowWidth(r))
	}
	return minInt(w, stickerMaxText)
}

// stickerSize is the on-screen box of a sticker: one padding column each
// side, torn edges above and below, and a date line.
func stickerSize(recs []ledger.Record, policy carriage.WidthPolicy) (w, h int) {
	rows := stickerRows(recs, policy, stickerMaxText)
	return stickerTextWidth(rows) + 2, len(rows) + 3
}

func (m Model) stickerBox(s sticker.Sticker) (w, h int) {
	return stickerSize(s.Records, m.cfg.Width)
}

func (m Model) renderSticker(s sticker.Sticker) string {
	st := m.cfg.Style
	rows := stickerRows(s.Records, m.cfg.Width, stickerMaxText)
	textW := stickerTextWidth(rows)
	boxW := textW + 2
	pad := st.Sticker.Render(" ")

	out := make([]string, 0, len(rows)+3)
	out = append(out, st.StickerEdge.Render(teethRow(s.Outline.TeethOf(sticker.SideTop), boxW, topTeeth, 0)))
	for _, row := range rows {
		var b strings.Builder
		b.WriteString(pad)
		for _, g := range row {
			text := g.text
			if d := g.width - grapheme.CellWidth(text); d > 0 {
				text += strings.Repeat(" ", d)
			}
			if g.deleted {
				b.WriteString(st.StickerStruck.Render(text))
			} else {
				b.WriteString(st.Sticker.Render(text))
			}
		}
		b.WriteString(strings.Repeat(pad, maxInt(textW-rowWidth(row), 0)+1))
		out = append(out, b.String())
	}
	date := s.CreatedAt.Format(stickerDate)
	out = append(out, st.StickerDate.Render(runewidth.FillLeft(date+" ", boxW)))
	out = append(out, st.StickerEdge.Render(teethRow(s.Outline.TeethOf(sticker.SideBottom), boxW, bottomTeeth, 2)))
	return strings.Join(out, "\n")
}

var (
	topTeeth    = []string{"▇", "▆", "▅", "▄"}
	bottomTeeth = []string{"▀", "▀", "▀", "▔", "▔"}
)

// teethRow draws a torn edge width cells wide, picking a block for each
// column from the tooth depth under it.
func teethRow(depths []float64, width int, blocks []string, base float64) string {
	if len(depths) == 0 {
		return strings.Repeat(blocks[0], width)
	}
	var b strings.Builder
	for x := 0; x < width; x++ {
		d := depths[x*len(depths)/width] - base
		b.WriteString(blocks[clampInt(int(d), 0, len(blocks)-1)])
	}
	return b.String()
}
