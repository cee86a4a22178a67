package core

import "time"

// FixedStep paces frames at a steady rate when the driver ticks faster than
// the target, such as a display-synced update loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(fps int) *FixedStep {
	if fps <= 0 {
		fps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetRate(fps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the frame rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Second / time.Duration(fps)
}

// ShouldStep reports whether a frame is due. Time owed beyond a single step is
// dropped so a stalled driver does not trigger a burst of catch-up frames.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
