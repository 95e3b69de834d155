package ppu

import "github.com/kjhallberg/go-dmg/pkg/bits"

// RenderScanline composes one 160-pixel line for the given LY in three
// layers: background, then window (overlaying), then sprites (overlaying
// per priority). Background and window pixels are walked right to left;
// sprites are composed afterwards in decreasing OAM index order, so
// lower-index sprites painted later land on top.
func RenderScanline(p *PPU, ly uint8) [ScreenWidth]uint8 {
	var out [ScreenWidth]uint8
	var bgIndex [ScreenWidth]uint8

	bgEnabled := bits.Test(p.lcdc, 0)
	windowEnabled := bits.Test(p.lcdc, 5)
	spritesEnabled := bits.Test(p.lcdc, 1)

	bgMapBase := uint16(0x9800)
	if bits.Test(p.lcdc, 3) {
		bgMapBase = 0x9C00
	}
	winMapBase := uint16(0x9800)
	if bits.Test(p.lcdc, 6) {
		winMapBase = 0x9C00
	}

	windowDrawn := false
	windowX0 := int(p.wx) - 7

	for x := ScreenWidth - 1; x >= 0; x-- {
		xu := uint8(x)

		if windowEnabled && ly >= p.latchedWY && p.wx <= 166 && x >= windowX0 {
			winX := uint8(x - windowX0)
			idx := p.tileColourIndex(winMapBase, p.windowLine, winX)
			out[xu] = p.bgPalette[idx]
			bgIndex[xu] = idx
			windowDrawn = true
			continue
		}

		if bgEnabled {
			bgY := ly + p.scy
			bgX := xu + p.scx
			idx := p.tileColourIndex(bgMapBase, bgY, bgX)
			out[xu] = p.bgPalette[idx]
			bgIndex[xu] = idx
		}
	}

	if windowDrawn {
		p.windowLine++
	}

	if spritesEnabled {
		p.renderSprites(ly, &out, &bgIndex)
	}

	return out
}

// tileColourIndex looks up the raw (pre-palette) colour index for tile
// coordinate (y, x) within the tile map starting at mapBase, using the
// tile-data addressing mode selected by LCDC.bit4.
func (p *PPU) tileColourIndex(mapBase uint16, y, x uint8) uint8 {
	mapOffset := (mapBase - 0x8000) + uint16(y>>3)*32 + uint16(x>>3)
	tileIdx := p.vram.Read(mapOffset)

	var tileOffset uint16
	if bits.Test(p.lcdc, 4) {
		tileOffset = uint16(tileIdx) * 16
	} else {
		tileOffset = 0x1000 + uint16(int16(int8(tileIdx)))*16
	}

	rowOffset := tileOffset + 2*uint16(y&7)
	b0 := p.vram.Read(rowOffset)
	b1 := p.vram.Read(rowOffset + 1)

	bit := 7 - (x & 7)
	return bits.Val(b0, bit) | bits.Val(b1, bit)<<1
}

const (
	oamEntries   = 40
	oamEntrySize = 4
)

// renderSprites composes the object layer for one scanline, iterating OAM
// in decreasing index order so lower-index sprites overwrite higher-index
// ones.
func (p *PPU) renderSprites(ly uint8, out, bgIndex *[ScreenWidth]uint8) {
	height := uint8(8)
	if bits.Test(p.lcdc, 2) {
		height = 16
	}

	for i := oamEntries - 1; i >= 0; i-- {
		base := uint16(i * oamEntrySize)
		oy := p.oam.Read(base)
		ox := p.oam.Read(base + 1)
		tile := p.oam.Read(base + 2)
		flags := p.oam.Read(base + 3)

		if height == 16 {
			tile &^= 0x01
		}

		line := int(ly) + 16 - int(oy)
		if line < 0 || line >= int(height) {
			continue
		}
		if ox == 0 || ox >= 168 {
			continue
		}

		row := uint8(line)
		if bits.Test(flags, 6) { // spriteFlipY
			row = height - 1 - row
		}

		tileOffset := uint16(tile)*16 + 2*uint16(row)
		b0 := p.vram.Read(tileOffset)
		b1 := p.vram.Read(tileOffset + 1)

		palette := &p.objPalette[0]
		if bits.Test(flags, 4) { // spritePalette
			palette = &p.objPalette[1]
		}

		for sx := 0; sx < 8; sx++ {
			screenX := int(ox) - 8 + sx
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}

			bit := uint8(7 - sx)
			if bits.Test(flags, 5) { // spriteFlipX
				bit = uint8(sx)
			}
			colour := bits.Val(b0, bit) | bits.Val(b1, bit)<<1
			if colour == 0 {
				continue
			}

			if bits.Test(flags, 7) && bgIndex[screenX] != 0 { // spritePriority
				continue
			}

			out[screenX] = palette[colour]
		}
	}
}
