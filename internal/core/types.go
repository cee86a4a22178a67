package core

// Size describes the pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Source produces uniform random values in [0, 1).
type Source interface {
	Float64() float64
}

// FrameClock schedules a callback for the next frame. At most one request is
// pending per caller; the returned cancel func drops it if it has not fired.
type FrameClock interface {
	RequestFrame(fn func()) (cancel func())
}
