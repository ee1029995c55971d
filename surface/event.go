package surface

// Event is a notification fired by a Surface.
type Event interface{ isEvent() }

// Change reports the value and caret after an edit or caret movement.
// Composing is set for notifications fired while a composition is open.
type Change struct {
	Value     string
	Caret     int
	Composing bool
}

// CompositionStart opens a composition at the caret.
type CompositionStart struct{}

// CompositionUpdate carries the in-progress preview.
type CompositionUpdate struct {
	Text string
}

// CompositionEnd carries the committed text; empty when cancelled.
type CompositionEnd struct {
	Text string
}

func (Change) isEvent()            {}
func (CompositionStart) isEvent()  {}
func (CompositionUpdate) isEvent() {}
func (CompositionEnd) isEvent()    {}
