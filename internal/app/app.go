//go:build ebiten

package app

import (
	"ambient-weather/internal/core"
	"ambient-weather/internal/render"
	"ambient-weather/internal/surface"
	"ambient-weather/internal/ui"
	"ambient-weather/internal/weather"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Game adapts the weather engine to the ebiten.Game interface. It is the
// engine's frame clock and the surface host: Layout reports the window size
// and Update fires the pending frame.
type Game struct {
	engine  *weather.Engine
	canvas  *render.EbitenCanvas
	overlay *ui.Overlay
	pacer   *core.FixedStep

	categories <-chan string
	pending    func()
	seq        uint64

	outsideW, outsideH int
	started            bool
	log                *zap.Logger
}

// New constructs a Game. categories may be nil.
func New(cfg *Config, categories <-chan string, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		canvas:     render.NewEbitenCanvas(),
		overlay:    ui.NewOverlay(),
		categories: categories,
		log:        logger,
	}
	if cfg.FPS > 0 {
		g.pacer = core.NewFixedStep(cfg.FPS)
	}
	mgr := surface.NewManager(g, g.canvas, logger)
	g.engine = weather.New(mgr, g, cfg.Source(), logger)
	g.engine.SetWeatherCategory(cfg.Weather)
	return g
}

// Bounds reports the window's logical size.
func (g *Game) Bounds() (int, int) { return g.outsideW, g.outsideH }

// RequestFrame stores fn to run on a following Update.
func (g *Game) RequestFrame(fn func()) func() {
	g.seq++
	id := g.seq
	g.pending = fn
	return func() {
		if g.seq == id {
			g.pending = nil
		}
	}
}

// Update handles input and category updates, then fires the pending frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.engine.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.engine.SetWeatherCategory("snow")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.SetWeatherCategory("rain")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.SetWeatherCategory("clear")
	}
	g.drainCategories()
	g.overlay.Update()

	if g.pending == nil {
		return nil
	}
	if g.pacer != nil && !g.pacer.ShouldStep() {
		return nil
	}
	fn := g.pending
	g.pending = nil
	fn()
	return nil
}

func (g *Game) drainCategories() {
	for g.categories != nil {
		select {
		case c, ok := <-g.categories:
			if !ok {
				g.categories = nil
				return
			}
			g.engine.SetWeatherCategory(c)
		default:
			return
		}
	}
}

// Draw blits the finished frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen)
	g.overlay.Draw(screen, g.engine)
}

// Layout tracks the window size one to one. The engine starts on the first
// non-empty layout and is resized on every change after that.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		switch {
		case !g.started && outsideWidth > 0 && outsideHeight > 0:
			g.engine.Start()
			g.started = true
			g.log.Info("weather engine started", zap.Stringer("kind", g.engine.Kind()))
		case g.started:
			g.engine.NotifyResize()
		}
	}
	return outsideWidth, outsideHeight
}
