package typewriter

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/retrotype/carriage"
	"github.com/iw2rmb/retrotype/ledger"
	"github.com/iw2rmb/retrotype/sticker"
)

func testStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	return Style{
		Text:          r.NewStyle(),
		Struck:        r.NewStyle().Strikethrough(true),
		Overstrike:    r.NewStyle().Underline(true),
		Composition:   r.NewStyle().Italic(true),
		Cursor:        r.NewStyle().Reverse(true),
		Sticker:       r.NewStyle(),
		StickerStruck: r.NewStyle().Strikethrough(true),
	}
}

func TestRenderPageCell_Styles(t *testing.T) {
	st := testStyle()
	m := New(Config{Style: st})

	cases := []struct {
		name string
		cell pageCell
		want string
	}{
		{name: "live", cell: pageCell{glyph: "a", width: 1}, want: st.Text.Render("a")},
		{name: "overstrike", cell: pageCell{glyph: "c", struck: "b", width: 1}, want: st.Overstrike.Render("c")},
		{name: "struck only", cell: pageCell{struck: "b", width: 1}, want: st.Struck.Render("b")},
		{name: "cursor on struck newline", cell: pageCell{struck: deletedNewline, cursor: true, width: 1}, want: st.Cursor.Render(deletedNewline)},
		{name: "cursor blank", cell: pageCell{cursor: true, width: 1}, want: st.Cursor.Render(" ")},
		{name: "composition", cell: pageCell{glyph: "n", comp: true, width: 1}, want: st.Composition.Render("n")},
		{name: "wide", cell: pageCell{glyph: "你", width: 2}, want: st.Text.Render("你")},
		{name: "padded", cell: pageCell{glyph: "é", width: 2}, want: st.Text.Render("é ")},
		{name: "control", cell: pageCell{glyph: "\t", width: 1}, want: st.Text.Render(" ")},
	}
	for _, tc := range cases {
		got := m.renderPageCell(tc.cell)
		if got.s != tc.want || got.w != tc.cell.width {
			t.Fatalf("%s: got (%q,%d), want (%q,%d)", tc.name, got.s, got.w, tc.want, tc.cell.width)
		}
	}
}

func TestRenderSticker_StrikesDeletedGlyphs(t *testing.T) {
	st := testStyle()
	m := New(Config{Style: st})
	s := sticker.Sticker{
		Records: []ledger.Record{
			{ID: "1", Glyph: "o"},
			{ID: "2", Glyph: "x", Deleted: true},
			{ID: "3", Glyph: "k"},
		},
		CreatedAt: testNow,
	}

	lines := strings.Split(m.renderSticker(s), "\n")
	w, h := m.stickerBox(s)
	if len(lines) != h {
		t.Fatalf("rows=%d, want %d", len(lines), h)
	}
	want := st.Sticker.Render(" ") + st.Sticker.Render("o") + st.StickerStruck.Render("x") + st.Sticker.Render("k")
	if !strings.HasPrefix(lines[1], want) {
		t.Fatalf("text row=%q, want prefix %q", lines[1], want)
	}
	if got := lipgloss.Width(lines[2]); got != w {
		t.Fatalf("date row width=%d, want %d", got, w)
	}
	if !strings.Contains(lines[2], "2024-05-01") {
		t.Fatalf("date row=%q", lines[2])
	}
}

func TestStickerRows_Wraps(t *testing.T) {
	recs := make([]ledger.Record, 0, 40)
	for i := 0; i < 40; i++ {
		recs = append(recs, ledger.Record{ID: string(rune('A' + i)), Glyph: "x"})
	}
	rows := stickerRows(recs, carriage.WidthByteRange, stickerMaxText)
	if len(rows) != 2 || len(rows[0]) != stickerMaxText || len(rows[1]) != 40-stickerMaxText {
		t.Fatalf("rows=%d/%d", len(rows), len(rows[0]))
	}

	w, h := stickerSize(recs[:3], carriage.WidthByteRange)
	if w != stickerMinText+2 || h != 4 {
		t.Fatalf("size=(%d,%d), want (%d,4)", w, h, stickerMinText+2)
	}
}
