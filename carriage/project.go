package carriage

import "strings"

// Position is a zero-based line and visual column.
type Position struct {
	Line   int
	Column int
}

// Project places the caret under WidthByteRange.
func Project(active string, cursor int, composition string) Position {
	return WidthByteRange.Project(active, cursor, composition)
}

// Project takes active up to cursor (a rune offset), appends the
// composition preview so an open composition widens the line at once, and
// measures the last line of the result.
func (p WidthPolicy) Project(active string, cursor int, composition string) Position {
	runes := []rune(active)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	before := string(runes[:cursor]) + composition

	line := strings.Count(before, "\n")
	last := before
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		last = before[i+1:]
	}
	return Position{Line: line, Column: p.StringWidth(last)}
}
