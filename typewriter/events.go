package typewriter

import (
	"github.com/iw2rmb/retrotype/carriage"
	"github.com/iw2rmb/retrotype/ledger"
)

type ChangeEvent struct {
	Version     uint64
	Records     []ledger.Record
	Cursor      int
	Composition string

	// Caret position on the page and the carriage shift, in cells, that
	// keeps it under the guide.
	Line   int
	Column int
	Offset float64
}

func (m *Model) emitChange() {
	ver, cur, comp := m.rec.Version(), m.rec.Cursor(), m.rec.Composition()
	if ver == m.lastVersion && cur == m.lastCursor && comp == m.lastComposition {
		return
	}
	m.lastVersion, m.lastCursor, m.lastComposition = ver, cur, comp
	if m.cfg.OnChange == nil {
		return
	}

	snap := m.rec.Snapshot()
	pos := m.cfg.Width.Project(m.rec.ActiveString(), snap.Cursor, snap.Composition)
	m.cfg.OnChange(ChangeEvent{
		Version:     snap.Version,
		Records:     snap.Records,
		Cursor:      snap.Cursor,
		Composition: snap.Composition,
		Line:        pos.Line,
		Column:      pos.Column,
		Offset:      carriage.TerminalCarriage(m.cfg.Margin).Offset(pos.Column),
	})
}
