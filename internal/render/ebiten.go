//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas draws into an offscreen ebiten image that the game blits to
// the screen every Draw.
type EbitenCanvas struct {
	w, h int
	img  *ebiten.Image
}

// NewEbitenCanvas returns an unsized canvas.
func NewEbitenCanvas() *EbitenCanvas { return &EbitenCanvas{} }

// SetSize replaces the offscreen image. A zero dimension leaves no image.
func (c *EbitenCanvas) SetSize(w, h int) {
	if w == c.w && h == c.h {
		return
	}
	if c.img != nil {
		c.img.Dispose()
		c.img = nil
	}
	c.w, c.h = w, h
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

// Image returns the offscreen image, or nil while unsized.
func (c *EbitenCanvas) Image() *ebiten.Image { return c.img }

// Clear wipes the offscreen image.
func (c *EbitenCanvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

// FillCircle draws an anti-aliased disc.
func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), clr, true)
}

// StrokeLine draws an anti-aliased segment.
func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// Draw blits the offscreen image onto dst at the origin.
func (c *EbitenCanvas) Draw(dst *ebiten.Image) {
	if c.img == nil {
		return
	}
	dst.DrawImage(c.img, nil)
}
