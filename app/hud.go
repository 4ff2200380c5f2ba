package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// drawHUD writes the control legend and live uniform values into the
// framebuffer after all 3D drawing. Text goes straight into the color
// buffer, in front of everything.
func (s *Sim) drawHUD() {
	d := &fbDisplay{fb: s.fb}
	fg := color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	dim := color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}

	tinyfont.WriteLine(d, hudFont, 4, 12,
		fmt.Sprintf("temp %.2f  intensity %.2f", s.temp, s.intensity), fg)
	tinyfont.WriteLine(d, hudFont, 4, 24,
		"T/G temp  Y/H intensity  R/F zoom  arrows+Q/E attitude  W/S thrust", dim)
}
