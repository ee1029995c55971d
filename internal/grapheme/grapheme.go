package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// TrimLast drops the final grapheme cluster of text.
func TrimLast(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	last := clusters[len(clusters)-1]
	return text[:len(text)-len(last)]
}

// CellWidth returns the terminal cell width of text.
//
// runewidth answers first; uniseg is consulted when runewidth reports zero
// for a cluster that still occupies cells (emoji sequences, some marks).
func CellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}
