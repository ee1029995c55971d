package carriage

import "math"

// Carriage converts a column into the horizontal shift applied to the page.
//
// Offset(col) = Base - col*Advance. With a positive Advance the page moves
// left as the column grows, so the caret moves right relative to the page
// while staying under the guide.
type Carriage struct {
	Base    float64
	Advance float64
}

// PaperCarriage is the pixel geometry of a 440px sheet with 50px padding
// and 13.22px glyph advance, centred under the guide.
var PaperCarriage = Carriage{Base: 440.0/2 - 50, Advance: 13.22}

// TerminalCarriage returns cell geometry: the shift of the page's left edge
// relative to the guide column, for a page with padding cells of margin.
func TerminalCarriage(padding int) Carriage {
	return Carriage{Base: -float64(padding), Advance: 1}
}

func (c Carriage) Offset(col int) float64 {
	return c.Base - float64(col)*c.Advance
}

// Cells rounds Offset to whole terminal cells.
func (c Carriage) Cells(col int) int {
	return int(math.Round(c.Offset(col)))
}
