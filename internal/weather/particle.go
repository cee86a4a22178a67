package weather

import (
	"image/color"
	"math"

	"ambient-weather/internal/core"
)

// TopBand is the y coordinate recycled particles restart from.
const TopBand = -10

// Vec2 is a 2D float vector.
type Vec2 struct {
	X, Y float64
}

// Particle is one simulated mote, flake or drop. Size and Opacity are fixed
// at creation.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Size    float64
	Opacity float64
}

// newParticle creates a particle uniformly placed on a w x h surface.
func newParticle(p Profile, src core.Source, w, h float64) Particle {
	return Particle{
		Pos: Vec2{
			X: src.Float64() * w,
			Y: src.Float64() * h,
		},
		Size: p.Size.Sample(src),
		Vel: Vec2{
			X: p.VX.Sample(src),
			Y: p.VY.Sample(src),
		},
		Opacity: Opacity.Sample(src),
	}
}

// advance moves p by one frame and applies the recycle and wrap rules against
// the current surface bounds.
func advance(p *Particle, src core.Source, w, h float64) {
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y

	if p.Pos.Y > h {
		p.Pos.Y = TopBand
		p.Pos.X = src.Float64() * w
	} else if p.Pos.Y < TopBand {
		// Upward drifters re-enter from the bottom edge.
		p.Pos.Y = h
		p.Pos.X = src.Float64() * w
	}
	if p.Pos.X > w {
		p.Pos.X = 0
	}
	if p.Pos.X < 0 {
		p.Pos.X = w
	}
}

// tint is white at the given opacity.
func tint(opacity float64) color.NRGBA {
	a := math.Round(opacity * 255)
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a)}
}
