package sticker

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/iw2rmb/retrotype/ledger"
)

// DefaultWidth is the assumed sticker width when Bounds.StickerWidth is zero.
const DefaultWidth = 280

// Bounds is the area stickers are placed in.
type Bounds struct {
	Width        float64
	Height       float64
	StickerWidth float64
}

type Sticker struct {
	ID        string
	Records   []ledger.Record
	X         float64
	Y         float64
	Rotation  float64 // degrees
	CreatedAt time.Time
	Outline   Outline
}

// New places a sticker holding records at a random spot in the top 40% of
// b, tilted by [-3,3) degrees, torn on both edges. records is copied.
func New(records []ledger.Record, b Bounds, rng *rand.Rand, now time.Time) Sticker {
	w := b.StickerWidth
	if w == 0 {
		w = DefaultWidth
	}
	span := b.Width - w
	if span < 0 {
		span = 0
	}
	return Sticker{
		ID:        strconv.FormatInt(now.UnixMilli(), 36),
		Records:   append([]ledger.Record(nil), records...),
		X:         rng.Float64() * span,
		Y:         rng.Float64() * b.Height * 0.4,
		Rotation:  rng.Float64()*6 - 3,
		CreatedAt: now,
		Outline:   JaggedEdge(rng, SideBoth),
	}
}

// Text returns the active text of the sticker.
func (s Sticker) Text() string {
	var b strings.Builder
	for _, r := range s.Records {
		if r.Active() {
			b.WriteString(r.Glyph)
		}
	}
	return b.String()
}

// Lines splits the records at newline glyphs. Deleted newlines do not break
// a line.
func (s Sticker) Lines() [][]ledger.Record {
	lines := [][]ledger.Record{nil}
	for _, r := range s.Records {
		if r.Glyph == "\n" && r.Active() {
			lines = append(lines, nil)
			continue
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], r)
	}
	return lines
}
