// Package clock provides frame clocks for driving the weather engine.
package clock

// Manual is a stepped frame clock: a requested frame fires only when Advance
// is called.
type Manual struct {
	pending func()
	seq     uint64
	frames  int
}

// NewManual returns an idle manual clock.
func NewManual() *Manual { return &Manual{} }

// RequestFrame stores fn as the pending frame, replacing any earlier request.
func (m *Manual) RequestFrame(fn func()) func() {
	m.seq++
	id := m.seq
	m.pending = fn
	return func() {
		if m.seq == id {
			m.pending = nil
		}
	}
}

// Advance fires the pending frame and reports whether one was pending.
func (m *Manual) Advance() bool {
	fn := m.pending
	if fn == nil {
		return false
	}
	m.pending = nil
	m.frames++
	fn()
	return true
}

// AdvanceN fires up to n frames and returns how many fired.
func (m *Manual) AdvanceN(n int) int {
	fired := 0
	for fired < n && m.Advance() {
		fired++
	}
	return fired
}

// Pending reports whether a frame has been requested.
func (m *Manual) Pending() bool { return m.pending != nil }

// Frames returns the number of frames fired.
func (m *Manual) Frames() int { return m.frames }
