// Package surface keeps a drawing surface sized to its host container.
package surface

import (
	"image/color"

	"ambient-weather/internal/core"

	"go.uber.org/zap"
)

// Host reports the displayed size of the container the surface fills.
type Host interface {
	Bounds() (w, h int)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func() (int, int)

// Bounds calls f.
func (f HostFunc) Bounds() (int, int) { return f() }

// Canvas is a clearable 2D drawing context with a resizable pixel buffer.
type Canvas interface {
	SetSize(w, h int)
	Clear()
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// Manager owns a canvas and keeps its pixel buffer in sync with the host.
// While either dimension is zero every drawing call is a no-op.
type Manager struct {
	host   Host
	canvas Canvas
	size   core.Size
	log    *zap.Logger
}

// NewManager binds a canvas to a host. The canvas is not sized until the
// first Resize.
func NewManager(host Host, canvas Canvas, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{host: host, canvas: canvas, log: logger}
}

// Resize reads the host's current size and sets the pixel buffer to match
// exactly. Existing pixel content is not preserved.
func (m *Manager) Resize() {
	w, h := m.host.Bounds()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	m.size = core.Size{W: w, H: h}
	m.canvas.SetSize(w, h)
	if m.size.Empty() {
		m.log.Debug("surface is degenerate", zap.Int("width", w), zap.Int("height", h))
		return
	}
	m.log.Debug("surface resized", zap.Int("width", w), zap.Int("height", h))
}

// Size returns the current pixel dimensions.
func (m *Manager) Size() core.Size { return m.size }

// Clear wipes the whole surface.
func (m *Manager) Clear() {
	if m.size.Empty() {
		return
	}
	m.canvas.Clear()
}

// FillCircle draws a filled disc.
func (m *Manager) FillCircle(cx, cy, r float64, c color.Color) {
	if m.size.Empty() {
		return
	}
	m.canvas.FillCircle(cx, cy, r, c)
}

// StrokeLine draws a line segment.
func (m *Manager) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if m.size.Empty() {
		return
	}
	m.canvas.StrokeLine(x0, y0, x1, y1, width, c)
}
