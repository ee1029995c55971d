package typewriter

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/iw2rmb/retrotype/carriage"
)

// Inspirer produces text for ghost typing. It must not fail; errors are
// expected to be folded into placeholder text.
type Inspirer interface {
	Inspire(ctx context.Context, topic string) string
}

// AvailabilityChecker is optionally implemented by an Inspirer to drive the
// status lamp.
type AvailabilityChecker interface {
	Available(ctx context.Context) bool
}

// Config configures the typewriter Model.
type Config struct {
	// Strict makes out-of-range ledger indices panic.
	Strict bool
	Logger *slog.Logger

	Inspirer Inspirer
	Topic    string

	// Animation timings. Zero means the default.
	TypeInterval time.Duration
	Pulse        time.Duration
	Highlight    time.Duration

	Width carriage.WidthPolicy

	// PageWidth is the number of text columns on the sheet and Margin the
	// blank paper on each side of them. Zero means the default.
	PageWidth int
	Margin    int

	// TearThreshold is how many rows the paper must be dragged up before it
	// tears off.
	TearThreshold int

	ShowKeyboard bool

	KeyMap    KeyMap
	Style     Style
	Composer  Composer
	Clipboard Clipboard

	// OnChange is called after every update that changes the page, the
	// cursor or the composition preview.
	OnChange func(ChangeEvent)

	Rand *rand.Rand
	Now  func() time.Time
}

const (
	defaultTypeInterval  = 80 * time.Millisecond
	defaultPulse         = 100 * time.Millisecond
	defaultHighlight     = 150 * time.Millisecond
	defaultPageWidth     = 40
	defaultMargin        = 4
	defaultTearThreshold = 6
)

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.TypeInterval <= 0 {
		c.TypeInterval = defaultTypeInterval
	}
	if c.Pulse <= 0 {
		c.Pulse = defaultPulse
	}
	if c.Highlight <= 0 {
		c.Highlight = defaultHighlight
	}
	if c.PageWidth <= 0 {
		c.PageWidth = defaultPageWidth
	}
	if c.Margin <= 0 {
		c.Margin = defaultMargin
	}
	if c.TearThreshold <= 0 {
		c.TearThreshold = defaultTearThreshold
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// SettingsMsg replaces the live-tunable settings of a running Model, e.g.
// after the config file changed on disk.
type SettingsMsg struct {
	Topic         string
	TypeInterval  time.Duration
	Pulse         time.Duration
	Highlight     time.Duration
	Width         carriage.WidthPolicy
	TearThreshold int
	ShowKeyboard  bool

	// Inspirer replaces the generator when non-nil.
	Inspirer Inspirer
}
