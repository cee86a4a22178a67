package render

import (
	"image/color"
	"math"

	"ambient-weather/internal/core"

	"github.com/gdamore/tcell/v2"
)

const (
	discGlyph   = '•'
	streakGlyph = '│'
)

// Terminal is a canvas that maps surface pixels onto terminal cells. Each
// cell covers cellW x cellH pixels; coverage accumulates per cell and is
// written to the screen by Present.
type Terminal struct {
	screen       tcell.Screen
	cellW, cellH int
	alpha        *core.ByteGrid
	glyphs       []rune
}

// NewTerminal returns a canvas drawing onto screen.
func NewTerminal(screen tcell.Screen, cellW, cellH int) *Terminal {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Terminal{screen: screen, cellW: cellW, cellH: cellH, alpha: core.NewByteGrid(0, 0)}
}

// Bounds reports the screen size in surface pixels. It lets the canvas act as
// the surface host.
func (t *Terminal) Bounds() (int, int) {
	cols, rows := t.screen.Size()
	return cols * t.cellW, rows * t.cellH
}

// SetSize resizes the cell buffer to cover w x h pixels.
func (t *Terminal) SetSize(w, h int) {
	t.alpha.Resize(w/t.cellW, h/t.cellH)
	t.glyphs = make([]rune, len(t.alpha.Cells()))
	t.screen.Clear()
}

// Cols returns the number of cell columns covered.
func (t *Terminal) Cols() int { return t.alpha.W }

// Rows returns the number of cell rows covered.
func (t *Terminal) Rows() int { return t.alpha.H }

// Clear drops all coverage.
func (t *Terminal) Clear() {
	t.alpha.Clear()
	clear(t.glyphs)
}

// FillCircle covers the cell holding the centre and every cell whose centre
// lies within r.
func (t *Terminal) FillCircle(cx, cy, r float64, c color.Color) {
	a := alphaOf(c)
	ccx, ccy := t.col(cx), t.row(cy)
	t.coverCell(ccx, ccy, a, discGlyph)

	for y := t.row(cy - r); y <= t.row(cy+r); y++ {
		for x := t.col(cx - r); x <= t.col(cx+r); x++ {
			if x == ccx && y == ccy {
				continue
			}
			mx := (float64(x) + 0.5) * float64(t.cellW)
			my := (float64(y) + 0.5) * float64(t.cellH)
			if math.Hypot(mx-cx, my-cy) <= r {
				t.coverCell(x, y, a, discGlyph)
			}
		}
	}
}

// StrokeLine covers every cell the segment passes through.
func (t *Terminal) StrokeLine(x0, y0, x1, y1, _ float64, c color.Color) {
	a := alphaOf(c)
	step := float64(min(t.cellW, t.cellH)) / 2
	n := int(math.Ceil(math.Hypot(x1-x0, y1-y0)/step)) + 1

	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i < n; i++ {
		f := float64(i) / float64(max(n-1, 1))
		x, y := t.col(x0+(x1-x0)*f), t.row(y0+(y1-y0)*f)
		if x == lastX && y == lastY {
			continue
		}
		lastX, lastY = x, y
		t.coverCell(x, y, a, streakGlyph)
	}
}

// Present writes the cell buffer to the screen and shows it.
func (t *Terminal) Present() {
	cells := t.alpha.Cells()
	for y := 0; y < t.alpha.H; y++ {
		for x := 0; x < t.alpha.W; x++ {
			i := t.alpha.Index(x, y)
			if cells[i] == 0 {
				t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			t.screen.SetContent(x, y, t.glyphs[i], nil, shade(cells[i]))
		}
	}
	t.screen.Show()
}

func (t *Terminal) col(px float64) int { return int(math.Floor(px / float64(t.cellW))) }
func (t *Terminal) row(py float64) int { return int(math.Floor(py / float64(t.cellH))) }

func (t *Terminal) coverCell(x, y int, a uint8, glyph rune) {
	if !t.alpha.In(x, y) {
		return
	}
	i := t.alpha.Index(x, y)
	t.alpha.Cells()[i] = over(t.alpha.Cells()[i], a)
	t.glyphs[i] = glyph
}
