package conformance

import (
	"image"
	"image/color"

	"github.com/kjhallberg/go-dmg/internal/ppu"
)

// dmgShades maps a 2-bit palette index to the conventional four-shade DMG
// greyscale, lightest first.
var dmgShades = [4]color.Gray{
	{Y: 0xFF}, {Y: 0xAA}, {Y: 0x55}, {Y: 0x00},
}

// Recorder implements ppu.ScanlineHook, accumulating one full frame of
// palette-indexed pixels so a test can render it to an image.Image and
// diff it against a golden PNG.
type Recorder struct {
	lines [ppu.ScreenHeight][ppu.ScreenWidth]uint8
}

// ScanlineHook stores one rendered line.
func (r *Recorder) ScanlineHook(pixels [ppu.ScreenWidth]uint8, line uint8) {
	r.lines[line] = pixels
}

// Image renders the accumulated frame as a greyscale image using the
// conventional DMG four-shade palette.
func (r *Recorder) Image() image.Image {
	img := image.NewGray(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			img.SetGray(x, y, dmgShades[r.lines[y][x]&0x03])
		}
	}
	return img
}
