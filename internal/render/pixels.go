package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// alphaOf returns the 8-bit alpha of c.
func alphaOf(c color.Color) uint8 {
	_, _, _, a := c.RGBA()
	return uint8(a >> 8)
}

// over composites coverage src on top of dst, both 8-bit alpha values.
func over(dst, src uint8) uint8 {
	d, s := uint32(dst), uint32(src)
	return uint8(s + d*(255-s)/255)
}

// shade maps an alpha value to a grey foreground on the default background.
func shade(a uint8) tcell.Style {
	v := int32(a)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v, v))
}
