package app

import (
	"image/color"

	"tinygo.org/x/drivers"

	"helios/hgl"
)

var _ drivers.Displayer = (*fbDisplay)(nil)

// fbDisplay adapts the render framebuffer to drivers.Displayer so tinyfont
// can draw on it. Overlay pixels are written nearer than the NDC range, so
// text always sits in front of the 3D scene.
type fbDisplay struct {
	fb *hgl.Framebuffer
}

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if c.A == 0 {
		return
	}
	// Nearer than any NDC depth, so text always wins the compare.
	d.fb.SetPixel(int(x), int(y), -2, hgl.Color{R: c.R, G: c.G, B: c.B, A: 0xFF})
}

func (d *fbDisplay) Display() error { return nil }
