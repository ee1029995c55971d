package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexRange reports an active index outside [0, ActiveLen()].
var ErrIndexRange = errors.New("ledger: active index out of range")

type Options struct {
	// Strict turns out-of-range indices into panics wrapping ErrIndexRange.
	// When false they are clamped to the nearest valid boundary.
	Strict bool

	// IDs issues record identifiers. Default: NewSequence("").
	IDs IDSource
}

// Ledger is the ordered, tombstoned record sequence of one page.
type Ledger struct {
	records []Record
	active  int
	version uint64

	opt   Options
	cache positionsCache
}

func New(opt Options) *Ledger {
	if opt.IDs == nil {
		opt.IDs = NewSequence("")
	}
	return &Ledger{opt: opt}
}

// Version increases on every effective mutation.
func (l *Ledger) Version() uint64 { return l.version }

// Len returns the number of records, tombstones included.
func (l *Ledger) Len() int { return len(l.records) }

// ActiveLen returns the number of non-deleted records.
func (l *Ledger) ActiveLen() int { return l.active }

// Records returns a copy of the full sequence.
func (l *Ledger) Records() []Record {
	return append([]Record(nil), l.records...)
}

// ActiveString concatenates the glyphs of non-deleted records in order.
func (l *Ledger) ActiveString() string {
	var sb strings.Builder
	for _, r := range l.records {
		if !r.Deleted {
			sb.WriteString(r.Glyph)
		}
	}
	return sb.String()
}

// RawIndex translates an active index against the current ledger state.
func (l *Ledger) RawIndex(active int) int {
	active = l.checkActive(active)
	positions := l.cache.get(l)
	if active == len(positions) {
		return len(l.records)
	}
	return positions[active]
}

// Insert splices glyphs as new live records at active index at.
func (l *Ledger) Insert(at int, glyphs []string) {
	if len(glyphs) == 0 {
		return
	}
	raw := l.RawIndex(at)

	fresh := make([]Record, len(glyphs))
	for i, g := range glyphs {
		fresh[i] = Record{ID: l.opt.IDs.NextID(), Glyph: g}
	}

	next := make([]Record, 0, len(l.records)+len(fresh))
	next = append(next, l.records[:raw]...)
	next = append(next, fresh...)
	next = append(next, l.records[raw:]...)
	l.records = next
	l.active += len(fresh)
	l.version++
}

// SoftDelete tombstones the live records at active indices [start, end).
//
// Every index in the batch is resolved against the ledger as it was before
// the call, so deleting k records never shifts the frame for the next one.
func (l *Ledger) SoftDelete(start, end int) {
	start = l.checkActive(start)
	end = l.checkActive(end)
	if end <= start {
		return
	}

	positions := l.cache.get(l)
	raws := append([]int(nil), positions[start:end]...)

	for _, raw := range raws {
		l.records[raw].Deleted = true
	}
	l.active -= len(raws)
	l.version++
}

// Clear empties the ledger and returns its previous records. The caller owns
// the returned slice.
func (l *Ledger) Clear() []Record {
	prev := l.records
	l.records = nil
	l.active = 0
	l.cache.invalidate()
	if len(prev) > 0 {
		l.version++
	}
	return prev
}

func (l *Ledger) checkActive(i int) int {
	if i >= 0 && i <= l.active {
		return i
	}
	if l.opt.Strict {
		panic(fmt.Errorf("%w: %d not in [0,%d]", ErrIndexRange, i, l.active))
	}
	if i < 0 {
		return 0
	}
	return l.active
}
