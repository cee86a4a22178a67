package weather

import (
	"image/color"
	"testing"

	"ambient-weather/internal/clock"
	"ambient-weather/internal/core"
	"ambient-weather/internal/surface"
)

type fillCall struct {
	cx, cy, r float64
	c         color.Color
}

type lineCall struct {
	x0, y0, x1, y1, width float64
	c                     color.Color
}

// recordingCanvas captures the draw calls of the most recent frame.
type recordingCanvas struct {
	w, h   int
	clears int
	fills  []fillCall
	lines  []lineCall
}

func (c *recordingCanvas) SetSize(w, h int) { c.w, c.h = w, h }

func (c *recordingCanvas) Clear() {
	c.clears++
	c.fills = c.fills[:0]
	c.lines = c.lines[:0]
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, col color.Color) {
	c.fills = append(c.fills, fillCall{cx, cy, r, col})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, col color.Color) {
	c.lines = append(c.lines, lineCall{x0, y0, x1, y1, width, col})
}

// constSource always returns v.
type constSource float64

func (s constSource) Float64() float64 { return float64(s) }

type rig struct {
	engine *Engine
	clock  *clock.Manual
	canvas *recordingCanvas
	w, h   int
}

func newRig(t *testing.T, w, h int, src core.Source) *rig {
	t.Helper()
	r := &rig{clock: clock.NewManual(), canvas: &recordingCanvas{}, w: w, h: h}
	host := surface.HostFunc(func() (int, int) { return r.w, r.h })
	r.engine = New(surface.NewManager(host, r.canvas, nil), r.clock, src, nil)
	return r
}

func assertInBounds(t *testing.T, e *Engine, w, h float64, frame int) {
	t.Helper()
	for i, p := range e.particles {
		if p.Pos.X < 0 || p.Pos.X > w {
			t.Fatalf("frame %d particle %d x=%v outside [0,%v]", frame, i, p.Pos.X, w)
		}
		if p.Pos.Y < TopBand || p.Pos.Y > h {
			t.Fatalf("frame %d particle %d y=%v outside [%d,%v]", frame, i, p.Pos.Y, TopBand, h)
		}
	}
}

func TestStartSeedsAmbientAndSchedules(t *testing.T) {
	r := newRig(t, 320, 200, core.NewRNG(1))
	if r.engine.Len() != 0 {
		t.Fatal("engine must not seed before Start")
	}
	r.engine.Start()
	if r.engine.Kind() != KindAmbient || r.engine.Len() != 20 {
		t.Fatalf("after Start kind=%v len=%d, want ambient and 20", r.engine.Kind(), r.engine.Len())
	}
	if !r.clock.Pending() {
		t.Fatal("Start must request a frame")
	}
	if r.canvas.w != 320 || r.canvas.h != 200 {
		t.Fatalf("Start must size the surface, canvas is %dx%d", r.canvas.w, r.canvas.h)
	}
}

func TestCategoryBeforeStartIsRecorded(t *testing.T) {
	r := newRig(t, 320, 200, core.NewRNG(1))
	r.engine.SetWeatherCategory("Rain")
	if r.engine.Len() != 0 {
		t.Fatal("category before Start must not seed")
	}
	r.engine.Start()
	if r.engine.Kind() != KindRain || r.engine.Len() != 100 {
		t.Fatalf("kind=%v len=%d, want rain and 100", r.engine.Kind(), r.engine.Len())
	}
	for i, p := range r.engine.particles {
		if p.Pos.X >= 320 || p.Pos.Y >= 200 {
			t.Fatalf("particle %d seeded at %+v outside the started surface", i, p.Pos)
		}
	}
}

func TestPopulationPerCategory(t *testing.T) {
	cases := []struct {
		category string
		kind     Kind
		count    int
	}{
		{"snow", KindSnow, 50},
		{"SNOW", KindSnow, 50},
		{"rain", KindRain, 100},
		{"Rain", KindRain, 100},
		{"clear", KindAmbient, 20},
		{"Clouds", KindAmbient, 20},
		{"hurricane", KindAmbient, 20},
		{"", KindAmbient, 20},
	}

	r := newRig(t, 800, 600, core.NewRNG(3))
	r.engine.Start()
	for _, tc := range cases {
		r.engine.SetWeatherCategory(tc.category)
		if r.engine.Kind() != tc.kind {
			t.Fatalf("%q: kind=%v, want %v", tc.category, r.engine.Kind(), tc.kind)
		}
		if r.engine.Len() != tc.count {
			t.Fatalf("%q: len=%d, want %d", tc.category, r.engine.Len(), tc.count)
		}
		r.clock.AdvanceN(3)
		if r.engine.Len() != tc.count {
			t.Fatalf("%q: len changed to %d while stepping", tc.category, r.engine.Len())
		}
	}
}

func TestSameCategoryReseeds(t *testing.T) {
	r := newRig(t, 800, 600, core.NewRNG(11))
	r.engine.Start()

	r.engine.SetWeatherCategory("snow")
	first := r.engine.Particles()
	r.engine.SetWeatherCategory("snow")
	second := r.engine.Particles()

	if len(first) != len(second) {
		t.Fatalf("populations differ in length: %d vs %d", len(first), len(second))
	}
	same := 0
	for i := range first {
		if first[i].Pos == second[i].Pos {
			same++
		}
	}
	if same == len(first) {
		t.Fatal("repeating a category must regenerate positions")
	}
}

func TestMixedCaseMatchesLowercase(t *testing.T) {
	a := newRig(t, 640, 480, core.NewRNG(5))
	b := newRig(t, 640, 480, core.NewRNG(5))
	a.engine.Start()
	b.engine.Start()
	a.engine.SetWeatherCategory("SNOW")
	b.engine.SetWeatherCategory("snow")

	pa, pb := a.engine.Particles(), b.engine.Particles()
	if a.engine.Kind() != b.engine.Kind() || len(pa) != len(pb) {
		t.Fatalf("SNOW -> %v/%d, snow -> %v/%d", a.engine.Kind(), len(pa), b.engine.Kind(), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs with equal seeds: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestStepKeepsParticlesInBounds(t *testing.T) {
	for _, category := range []string{"snow", "rain", "clear"} {
		r := newRig(t, 300, 150, core.NewRNG(21))
		r.engine.Start()
		r.engine.SetWeatherCategory(category)
		for frame := 0; frame < 2000; frame++ {
			if !r.clock.Advance() {
				t.Fatalf("%s: frame loop stopped at frame %d", category, frame)
			}
			assertInBounds(t, r.engine, 300, 150, frame)
		}
		if r.engine.Frames() != 2000 {
			t.Fatalf("%s: engine counted %d frames", category, r.engine.Frames())
		}
	}
}

func TestRainScenario(t *testing.T) {
	r := newRig(t, 800, 600, core.NewRNG(99))
	r.engine.Start()
	r.engine.SetWeatherCategory("rain")
	before := r.engine.Particles()

	r.clock.Advance()
	after := r.engine.Particles()
	if len(after) != 100 {
		t.Fatalf("rain population = %d, want 100", len(after))
	}
	for i := range after {
		vy := before[i].Vel.Y
		if vy < 7 || vy > 12 {
			t.Fatalf("particle %d vy=%v outside [7,12]", i, vy)
		}
		if after[i].Pos.Y != TopBand && after[i].Pos.Y != before[i].Pos.Y+vy {
			t.Fatalf("particle %d moved from y=%v to y=%v with vy=%v", i, before[i].Pos.Y, after[i].Pos.Y, vy)
		}
		if after[i].Pos.Y < TopBand || after[i].Pos.Y > 600 {
			t.Fatalf("particle %d y=%v outside [-10,600]", i, after[i].Pos.Y)
		}
	}
}

func TestHorizontalWrap(t *testing.T) {
	src := constSource(0.5)
	p := Particle{Pos: Vec2{X: 800, Y: 100}, Vel: Vec2{X: 0.0001}}
	advance(&p, src, 800, 600)
	if p.Pos.X != 0 {
		t.Fatalf("x past the right edge wrapped to %v, want 0", p.Pos.X)
	}

	p = Particle{Pos: Vec2{X: 0, Y: 100}, Vel: Vec2{X: -0.0001}}
	advance(&p, src, 800, 600)
	if p.Pos.X != 800 {
		t.Fatalf("x past the left edge wrapped to %v, want 800", p.Pos.X)
	}

	p = Particle{Pos: Vec2{X: 799, Y: 100}, Vel: Vec2{X: 1}}
	advance(&p, src, 800, 600)
	if p.Pos.X != 800 {
		t.Fatalf("x exactly at the edge must stay, got %v", p.Pos.X)
	}
}

func TestVerticalRecycle(t *testing.T) {
	p := Particle{Pos: Vec2{X: 10, Y: 601}}
	advance(&p, constSource(0.25), 800, 600)
	if p.Pos.Y != TopBand {
		t.Fatalf("y below the surface recycled to %v, want %d", p.Pos.Y, TopBand)
	}
	if p.Pos.X != 200 {
		t.Fatalf("recycled x=%v, want freshly rolled 200", p.Pos.X)
	}
}

func TestUpwardDriftReentersAtBottom(t *testing.T) {
	p := Particle{Pos: Vec2{X: 10, Y: TopBand}, Vel: Vec2{Y: -0.1}}
	advance(&p, constSource(0.5), 800, 600)
	if p.Pos.Y != 600 || p.Pos.X != 400 {
		t.Fatalf("upward drifter moved to %+v, want (400, 600)", p.Pos)
	}
}

func TestCreationDistributions(t *testing.T) {
	src := constSource(0.5)
	cases := []struct {
		kind         Kind
		size, vx, vy float64
	}{
		{KindSnow, 3.5, 0, 1.5},
		{KindRain, 1, 0, 9.5},
		{KindAmbient, 2, 0, 0},
	}
	for _, tc := range cases {
		p := newParticle(ProfileFor(tc.kind), src, 800, 600)
		if p.Pos != (Vec2{400, 300}) {
			t.Fatalf("%v: position %+v, want (400,300)", tc.kind, p.Pos)
		}
		if p.Size != tc.size || p.Vel.X != tc.vx || p.Vel.Y != tc.vy {
			t.Fatalf("%v: size=%v vel=%+v, want size=%v vel=(%v,%v)", tc.kind, p.Size, p.Vel, tc.size, tc.vx, tc.vy)
		}
		if p.Opacity != 0.75 {
			t.Fatalf("%v: opacity=%v, want 0.75", tc.kind, p.Opacity)
		}
	}

	low := newParticle(ProfileFor(KindRain), constSource(0), 800, 600)
	if low.Vel.X != -0.5 || low.Vel.Y != 7 || low.Opacity != 0.5 {
		t.Fatalf("rain lower bounds: vel=%+v opacity=%v", low.Vel, low.Opacity)
	}
}

func TestSizeAndOpacityNeverChange(t *testing.T) {
	r := newRig(t, 200, 200, core.NewRNG(8))
	r.engine.Start()
	r.engine.SetWeatherCategory("snow")
	before := r.engine.Particles()
	r.clock.AdvanceN(500)
	after := r.engine.Particles()
	for i := range before {
		if before[i].Size != after[i].Size || before[i].Opacity != after[i].Opacity {
			t.Fatalf("particle %d size/opacity changed: %+v -> %+v", i, before[i], after[i])
		}
		if before[i].Opacity < 0.5 || before[i].Opacity > 1 {
			t.Fatalf("particle %d opacity %v outside [0.5,1]", i, before[i].Opacity)
		}
	}
}

func TestDrawStyles(t *testing.T) {
	r := newRig(t, 800, 600, core.NewRNG(4))
	r.engine.Start()

	r.engine.SetWeatherCategory("rain")
	r.clock.Advance()
	if len(r.canvas.fills) != 0 || len(r.canvas.lines) != 100 {
		t.Fatalf("rain drew %d discs and %d lines, want 0 and 100", len(r.canvas.fills), len(r.canvas.lines))
	}
	for i, l := range r.canvas.lines {
		p := r.engine.particles[i]
		if l.x0 != p.Pos.X || l.x1 != p.Pos.X || l.y0 != p.Pos.Y || l.y1 != p.Pos.Y+StreakLength {
			t.Fatalf("line %d = %+v does not match particle %+v", i, l, p.Pos)
		}
		if got := l.c.(color.NRGBA); got.R != 255 || got.G != 255 || got.B != 255 || got.A != tint(p.Opacity).A {
			t.Fatalf("line %d color %+v is not white at opacity %v", i, got, p.Opacity)
		}
	}

	r.engine.SetWeatherCategory("snow")
	r.clock.Advance()
	if len(r.canvas.fills) != 50 || len(r.canvas.lines) != 0 {
		t.Fatalf("snow drew %d discs and %d lines, want 50 and 0", len(r.canvas.fills), len(r.canvas.lines))
	}
	for i, f := range r.canvas.fills {
		p := r.engine.particles[i]
		if f.cx != p.Pos.X || f.cy != p.Pos.Y || f.r != p.Size {
			t.Fatalf("disc %d = %+v does not match particle %+v", i, f, p)
		}
	}
}

func TestDegenerateSurfaceStillSteps(t *testing.T) {
	r := newRig(t, 0, 0, core.NewRNG(2))
	r.engine.Start()
	r.engine.SetWeatherCategory("snow")
	r.clock.AdvanceN(10)
	if r.canvas.clears != 0 || len(r.canvas.fills) != 0 {
		t.Fatalf("zero-size surface forwarded clears=%d fills=%d", r.canvas.clears, len(r.canvas.fills))
	}
	if r.engine.Frames() != 10 {
		t.Fatalf("update math must keep running, frames=%d", r.engine.Frames())
	}

	r.w, r.h = 400, 300
	r.engine.NotifyResize()
	for frame := 0; frame < 5; frame++ {
		r.clock.Advance()
		assertInBounds(t, r.engine, 400, 300, frame)
	}
	if len(r.canvas.fills) != 50 {
		t.Fatalf("restored surface drew %d discs, want 50", len(r.canvas.fills))
	}
}

func TestShrinkingSurfacePullsParticlesBack(t *testing.T) {
	r := newRig(t, 1000, 800, core.NewRNG(6))
	r.engine.Start()
	r.engine.SetWeatherCategory("snow")
	r.w, r.h = 100, 80
	r.engine.NotifyResize()
	r.clock.Advance()
	assertInBounds(t, r.engine, 100, 80, 0)
}

func TestStopAndResume(t *testing.T) {
	r := newRig(t, 100, 100, core.NewRNG(1))
	r.engine.Start()
	r.clock.AdvanceN(3)
	r.engine.Stop()
	if r.clock.Pending() {
		t.Fatal("Stop must drop the pending frame")
	}
	if r.clock.Advance() {
		t.Fatal("no frame may fire after Stop")
	}
	before := r.engine.Particles()

	r.engine.Start()
	after := r.engine.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("resuming must keep the population")
		}
	}
	if !r.clock.Pending() {
		t.Fatal("Start after Stop must request a frame")
	}
	r.engine.Start()
	if r.engine.Frames() != 3 {
		t.Fatalf("frames=%d, want 3", r.engine.Frames())
	}
}

func TestStepReusesPopulation(t *testing.T) {
	r := newRig(t, 800, 600, core.NewRNG(12))
	r.engine.Start()
	r.engine.SetWeatherCategory("rain")
	backing := &r.engine.particles[0]
	r.clock.AdvanceN(1000)
	if &r.engine.particles[0] != backing || cap(r.engine.particles) != 100 {
		t.Fatal("stepping must update the population in place")
	}
}
