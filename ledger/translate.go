package ledger

// RawIndex maps an active index to a raw index in records.
//
// It returns the position of the active-th non-deleted record, or
// len(records) when active equals the number of non-deleted records (the
// append position). Negative input maps to the first active record; input
// past the end maps to len(records).
func RawIndex(records []Record, active int) int {
	if active < 0 {
		active = 0
	}
	n := 0
	for i, r := range records {
		if r.Deleted {
			continue
		}
		if n == active {
			return i
		}
		n++
	}
	return len(records)
}

// ActivePositions returns the raw index of every non-deleted record, in
// order. ActivePositions(records)[k] == RawIndex(records, k).
func ActivePositions(records []Record) []int {
	out := make([]int, 0, len(records))
	for i, r := range records {
		if !r.Deleted {
			out = append(out, i)
		}
	}
	return out
}

// positionsCache memoizes ActivePositions for one ledger version.
type positionsCache struct {
	valid     bool
	version   uint64
	positions []int
}

func (c *positionsCache) get(l *Ledger) []int {
	if c.valid && c.version == l.version {
		return c.positions
	}
	c.positions = ActivePositions(l.records)
	c.version = l.version
	c.valid = true
	return c.positions
}

func (c *positionsCache) invalidate() {
	c.valid = false
	c.positions = nil
}
