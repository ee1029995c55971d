package sticker

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// Side selects which edges of the paper are torn.
type Side uint8

const (
	SideBottom Side = iota
	SideTop
	SideBoth
)

func (s Side) top() bool    { return s == SideTop || s == SideBoth }
func (s Side) bottom() bool { return s == SideBottom || s == SideBoth }

// Teeth is the number of tooth steps along a torn edge.
const Teeth = 20

// Point is a polygon vertex in percent of the sticker box.
type Point struct {
	X float64
	Y float64
}

// Outline describes a torn paper edge.
//
// Top holds Teeth+1 depths in [0,4) measured down from the top edge.
// Bottom holds Teeth depths in [2,7) measured up from the bottom edge,
// ordered right to left. Either is nil when that side is straight.
type Outline struct {
	Side   Side
	Top    []float64
	Bottom []float64
}

// JaggedEdge generates a random torn outline for side.
func JaggedEdge(rng *rand.Rand, side Side) Outline {
	o := Outline{Side: side}
	if side.top() {
		o.Top = make([]float64, Teeth+1)
		for i := range o.Top {
			o.Top[i] = rng.Float64() * 4
		}
	}
	if side.bottom() {
		o.Bottom = make([]float64, Teeth)
		for i := range o.Bottom {
			o.Bottom[i] = rng.Float64()*5 + 2
		}
	}
	return o
}

// Points returns the polygon clockwise from the top-left corner.
func (o Outline) Points() []Point {
	const step = 100.0 / Teeth
	pts := []Point{{0, 0}}
	if o.Top != nil {
		for i, d := range o.Top {
			pts = append(pts, Point{X: float64(i) * step, Y: d})
		}
	} else {
		pts = append(pts, Point{X: 100, Y: 0})
	}

	pts = append(pts, Point{X: 100, Y: 100})

	for i, d := range o.Bottom {
		pts = append(pts,
			Point{X: 100 - float64(i)*step - step/2, Y: 100 - d},
			Point{X: 100 - float64(i+1)*step, Y: 100},
		)
	}
	return append(pts, Point{X: 0, Y: 100})
}

// ClipPath renders the outline as a CSS polygon() value.
func (o Outline) ClipPath() string {
	pts := o.Points()
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = pct(p.X) + " " + pct(p.Y)
	}
	return "polygon(" + strings.Join(parts, ", ") + ")"
}

// TeethOf returns the tooth depths of one torn side, left to right. It
// returns nil for a straight side or for SideBoth.
func (o Outline) TeethOf(side Side) []float64 {
	var src []float64
	switch side {
	case SideTop:
		src = o.Top
	case SideBottom:
		if o.Bottom == nil {
			return nil
		}
		src = make([]float64, len(o.Bottom))
		for i, d := range o.Bottom {
			src[len(src)-1-i] = d
		}
		return src
	}
	if src == nil {
		return nil
	}
	return append([]float64(nil), src...)
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
