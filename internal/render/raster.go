// Package render implements drawing canvases for the weather surface.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Raster is a software canvas backed by an RGBA image.
type Raster struct {
	img *image.RGBA
	ras *vector.Rasterizer
	src *image.Uniform
}

// NewRaster returns an unsized raster canvas.
func NewRaster() *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, 0, 0)),
		ras: vector.NewRasterizer(0, 0),
		src: image.NewUniform(color.Transparent),
	}
}

// SetSize reallocates the pixel buffer.
func (r *Raster) SetSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.ras.Reset(w, h)
}

// Image exposes the pixel buffer.
func (r *Raster) Image() *image.RGBA { return r.img }

// Clear sets every pixel to transparent black.
func (r *Raster) Clear() {
	clear(r.img.Pix)
}

// FillCircle draws an anti-aliased disc.
func (r *Raster) FillCircle(cx, cy, rad float64, c color.Color) {
	if r.empty() || rad <= 0 {
		return
	}
	x, y, k := float32(cx), float32(cy), float32(rad)
	d := float32(rad * kappa)

	r.begin()
	r.ras.MoveTo(x+k, y)
	r.ras.CubeTo(x+k, y+d, x+d, y+k, x, y+k)
	r.ras.CubeTo(x-d, y+k, x-k, y+d, x-k, y)
	r.ras.CubeTo(x-k, y-d, x-d, y-k, x, y-k)
	r.ras.CubeTo(x+d, y-k, x+k, y-d, x+k, y)
	r.ras.ClosePath()
	r.paint(c)
}

// StrokeLine draws a segment as a quad of the given width.
func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if r.empty() || width <= 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	r.begin()
	r.ras.MoveTo(float32(x0+nx), float32(y0+ny))
	r.ras.LineTo(float32(x1+nx), float32(y1+ny))
	r.ras.LineTo(float32(x1-nx), float32(y1-ny))
	r.ras.LineTo(float32(x0-nx), float32(y0-ny))
	r.ras.ClosePath()
	r.paint(c)
}

func (r *Raster) empty() bool {
	b := r.img.Bounds()
	return b.Dx() == 0 || b.Dy() == 0
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	r.ras.DrawOp = draw.Over
}

func (r *Raster) paint(c color.Color) {
	r.src.C = c
	r.ras.Draw(r.img, r.img.Bounds(), r.src, image.Point{})
}
