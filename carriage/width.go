package carriage

import "github.com/mattn/go-runewidth"

// cells ignores the locale so widths do not depend on the environment.
var cells = &runewidth.Condition{}

// WidthPolicy decides how many columns a glyph advances the carriage.
type WidthPolicy uint8

const (
	// WidthByteRange treats any rune above U+00FF as double width. It
	// approximates East Asian wide glyphs in a monospace layout.
	WidthByteRange WidthPolicy = iota
	// WidthEastAsian uses terminal cell widths, clamped to 1..2.
	WidthEastAsian
)

func (p WidthPolicy) String() string {
	switch p {
	case WidthByteRange:
		return "byte-range"
	case WidthEastAsian:
		return "east-asian"
	default:
		return "unknown"
	}
}

// ParseWidthPolicy accepts the names returned by WidthPolicy.String.
func ParseWidthPolicy(s string) (WidthPolicy, bool) {
	switch s {
	case "", "byte-range":
		return WidthByteRange, true
	case "east-asian":
		return WidthEastAsian, true
	default:
		return WidthByteRange, false
	}
}

// VisualWidth returns the width of glyph under WidthByteRange.
func VisualWidth(glyph string) int { return WidthByteRange.Width(glyph) }

// Width returns 1 or 2 for a non-empty glyph and 0 for "".
func (p WidthPolicy) Width(glyph string) int {
	if glyph == "" {
		return 0
	}
	switch p {
	case WidthEastAsian:
		w := cells.StringWidth(glyph)
		if w < 1 {
			return 1
		}
		if w > 2 {
			return 2
		}
		return w
	default:
		for _, r := range glyph {
			if r > 0xFF {
				return 2
			}
		}
		return 1
	}
}

// StringWidth sums Width over the runes of s.
func (p WidthPolicy) StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += p.Width(string(r))
	}
	return w
}
