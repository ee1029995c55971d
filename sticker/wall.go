package sticker

import "strconv"

// SizeFunc reports the box a sticker occupies.
type SizeFunc func(Sticker) (width, height float64)

// Wall is an ordered stack of stickers, bottom first. It is not safe for
// concurrent use.
type Wall struct {
	stickers []Sticker
}

// Add puts s on top of the stack. A duplicate or empty ID is made unique.
// It returns the stored ID.
func (w *Wall) Add(s Sticker) string {
	if s.ID == "" {
		s.ID = "sticker"
	}
	base := s.ID
	for n := 2; w.index(s.ID) >= 0; n++ {
		s.ID = base + "-" + strconv.Itoa(n)
	}
	w.stickers = append(w.stickers, s)
	return s.ID
}

func (w *Wall) Remove(id string) bool {
	i := w.index(id)
	if i < 0 {
		return false
	}
	w.stickers = append(w.stickers[:i], w.stickers[i+1:]...)
	return true
}

func (w *Wall) Move(id string, x, y float64) bool {
	i := w.index(id)
	if i < 0 {
		return false
	}
	w.stickers[i].X, w.stickers[i].Y = x, y
	return true
}

// Rotate adds delta degrees to a sticker's tilt.
func (w *Wall) Rotate(id string, delta float64) bool {
	i := w.index(id)
	if i < 0 {
		return false
	}
	w.stickers[i].Rotation += delta
	return true
}

// Raise moves a sticker to the top of the stack.
func (w *Wall) Raise(id string) bool {
	i := w.index(id)
	if i < 0 {
		return false
	}
	s := w.stickers[i]
	w.stickers = append(w.stickers[:i], w.stickers[i+1:]...)
	w.stickers = append(w.stickers, s)
	return true
}

func (w *Wall) Get(id string) (Sticker, bool) {
	i := w.index(id)
	if i < 0 {
		return Sticker{}, false
	}
	return w.stickers[i], true
}

func (w *Wall) Len() int { return len(w.stickers) }

// Stickers returns a copy of the stack, bottom first.
func (w *Wall) Stickers() []Sticker {
	return append([]Sticker(nil), w.stickers...)
}

// HitTest returns the topmost sticker whose box contains (x, y).
func (w *Wall) HitTest(x, y float64, size SizeFunc) (Sticker, bool) {
	for i := len(w.stickers) - 1; i >= 0; i-- {
		s := w.stickers[i]
		sw, sh := size(s)
		if x >= s.X && x < s.X+sw && y >= s.Y && y < s.Y+sh {
			return s, true
		}
	}
	return Sticker{}, false
}

func (w *Wall) index(id string) int {
	for i := range w.stickers {
		if w.stickers[i].ID == id {
			return i
		}
	}
	return -1
}
