package ledger

import (
	"strconv"

	"github.com/google/uuid"
)

// IDSource hands out record identifiers. Implementations must never return
// the same ID twice within a session.
type IDSource interface {
	NextID() string
}

// Sequence is an IDSource producing "<prefix>-<n>" with n counting up in
// base 36.
type Sequence struct {
	prefix string
	n      uint64
}

// NewSequence returns a Sequence with the given prefix. An empty prefix is
// replaced by the first group of a random UUID.
func NewSequence(prefix string) *Sequence {
	if prefix == "" {
		prefix = sessionTag()
	}
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NextID() string {
	s.n++
	return s.prefix + "-" + strconv.FormatUint(s.n, 36)
}

func sessionTag() string {
	return uuid.NewString()[:8]
}
