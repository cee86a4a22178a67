package clock

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Loop is a ticker-driven cooperative scheduler. Frames and posted host
// events all run on the goroutine that calls Run, so nothing they touch needs
// locking.
type Loop struct {
	interval time.Duration
	posts    chan func()
	done     chan struct{}

	pending func()
	seq     uint64
	frames  uint64
	after   func()

	log *zap.Logger
}

// NewLoop creates a loop firing at most fps frames per second.
func NewLoop(fps int, logger *zap.Logger) *Loop {
	if fps <= 0 {
		fps = 60
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		posts:    make(chan func(), 64),
		done:     make(chan struct{}),
		log:      logger,
	}
}

// RequestFrame schedules fn for the next tick. Call it from the loop
// goroutine or before Run.
func (l *Loop) RequestFrame(fn func()) func() {
	l.seq++
	id := l.seq
	l.pending = fn
	return func() {
		if l.seq == id {
			l.pending = nil
		}
	}
}

// SetAfterFrame registers fn to run after every fired frame, typically to
// present the finished frame.
func (l *Loop) SetAfterFrame(fn func()) { l.after = fn }

// Post queues fn to run on the loop goroutine between frames. It is safe for
// concurrent use. Posts after Run has returned are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case l.posts <- fn:
	case <-l.done:
	}
}

// Frames returns the number of frames fired.
func (l *Loop) Frames() uint64 { return l.frames }

// Run drives frames and posted events until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.log.Debug("frame loop running", zap.Duration("interval", l.interval))
	for {
		select {
		case <-ctx.Done():
			l.log.Debug("frame loop exiting", zap.Uint64("frames", l.frames))
			return ctx.Err()
		case fn := <-l.posts:
			fn()
		case <-ticker.C:
			l.fire()
		}
	}
}

func (l *Loop) fire() {
	fn := l.pending
	if fn == nil {
		return
	}
	l.pending = nil
	l.frames++
	fn()
	if l.after != nil {
		l.after()
	}
}
