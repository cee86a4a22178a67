// Package weather runs the weather particle simulation: it seeds a particle
// population for the current weather kind, then advances and draws it once
// per frame for as long as the frame clock keeps firing.
package weather

import (
	"ambient-weather/internal/core"
	"ambient-weather/internal/surface"

	"go.uber.org/zap"
)

// Engine owns the weather kind, the particle population and the frame loop.
// It is not safe for concurrent use; all calls must happen on the goroutine
// that fires frames.
type Engine struct {
	surface *surface.Manager
	clock   core.FrameClock
	src     core.Source
	log     *zap.Logger

	kind      Kind
	seeded    bool
	running   bool
	cancel    func()
	particles []Particle
	frames    uint64
}

// New constructs an engine drawing onto s, scheduled by clock and seeded from
// src. Nothing is seeded or scheduled until Start.
func New(s *surface.Manager, clock core.FrameClock, src core.Source, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		surface: s,
		clock:   clock,
		src:     src,
		log:     logger,
		kind:    KindAmbient,
	}
}

// Start sizes the surface, seeds the population on first use and requests
// the first frame. Calling Start on a running engine does nothing.
func (e *Engine) Start() {
	if e.running {
		return
	}
	if !e.seeded {
		e.surface.Resize()
		e.reseed(e.kind)
	}
	e.running = true
	e.schedule()
}

// Stop drops the pending frame request. The population is kept and Start
// resumes from it.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.log.Debug("frame loop stopped", zap.Uint64("frames", e.frames))
}

// NotifyResize resynchronizes the surface with its host. Particles are not
// repositioned; the wrap rules pull them back on following frames.
func (e *Engine) NotifyResize() {
	e.surface.Resize()
}

// SetWeatherCategory switches to the kind named by category and replaces the
// whole population, even when the kind is unchanged. Before Start the kind is
// only recorded.
func (e *Engine) SetWeatherCategory(category string) {
	k := ParseKind(category)
	if !e.seeded {
		e.kind = k
		e.log.Debug("weather recorded before start", zap.String("category", category), zap.Stringer("kind", k))
		return
	}
	e.reseed(k)
	e.log.Debug("weather changed", zap.String("category", category), zap.Stringer("kind", k))
}

// Kind returns the current particle kind.
func (e *Engine) Kind() Kind { return e.kind }

// Len returns the population size.
func (e *Engine) Len() int { return len(e.particles) }

// Frames returns the number of frames stepped so far.
func (e *Engine) Frames() uint64 { return e.frames }

// Particles returns a copy of the current population.
func (e *Engine) Particles() []Particle {
	return append([]Particle(nil), e.particles...)
}

func (e *Engine) reseed(k Kind) {
	p := ProfileFor(k)
	size := e.surface.Size()
	w, h := float64(size.W), float64(size.H)

	particles := make([]Particle, p.Count)
	for i := range particles {
		particles[i] = newParticle(p, e.src, w, h)
	}
	e.kind = k
	e.particles = particles
	e.seeded = true
}

func (e *Engine) schedule() {
	e.cancel = e.clock.RequestFrame(e.frame)
}

func (e *Engine) frame() {
	e.cancel = nil
	e.step()
	if e.running {
		e.schedule()
	}
}

// step clears the surface, then advances and draws each particle in turn.
// Bounds are read from the surface every frame.
func (e *Engine) step() {
	e.surface.Clear()
	size := e.surface.Size()
	w, h := float64(size.W), float64(size.H)
	style := ProfileFor(e.kind).Style

	for i := range e.particles {
		p := &e.particles[i]
		advance(p, e.src, w, h)
		e.draw(p, style)
	}
	e.frames++
}

func (e *Engine) draw(p *Particle, style Style) {
	c := tint(p.Opacity)
	if style == StyleStreak {
		e.surface.StrokeLine(p.Pos.X, p.Pos.Y, p.Pos.X, p.Pos.Y+StreakLength, p.Size, c)
		return
	}
	e.surface.FillCircle(p.Pos.X, p.Pos.Y, p.Size, c)
}
