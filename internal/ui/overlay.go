//go:build ebiten

package ui

import (
	"fmt"

	"ambient-weather/internal/weather"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay prints engine diagnostics in the top-left corner. F1 toggles it.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
}

// Draw renders the diagnostics when visible.
func (o *Overlay) Draw(screen *ebiten.Image, e *weather.Engine) {
	if !o.visible || e == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	msg := fmt.Sprintf("weather: %s  particles: %d  frames: %d\nsurface: %dx%d  tps: %0.1f  fps: %0.1f\n[s]now [r]ain [c]lear [q]uit",
		e.Kind(), e.Len(), e.Frames(), w, h, ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, msg)
}
