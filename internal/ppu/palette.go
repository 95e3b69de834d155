package ppu

import "github.com/kjhallberg/go-dmg/pkg/bits"

// Palette is a 4-entry monochrome colour lookup: the DMG's single shade
// table, indexed by a 2-bit raw pixel value.
type Palette [4]uint8

// unpack decodes a palette register byte into a 4-entry table: two bits
// per entry, low-to-high.
func unpack(v uint8) Palette {
	return Palette{
		bits.Val(v, 0) | bits.Val(v, 1)<<1,
		bits.Val(v, 2) | bits.Val(v, 3)<<1,
		bits.Val(v, 4) | bits.Val(v, 5)<<1,
		bits.Val(v, 6) | bits.Val(v, 7)<<1,
	}
}

// ReadBGP / ReadOBP0 / ReadOBP1 return the raw register byte last written.
func (p *PPU) ReadBGP() uint8  { return p.bgp }
func (p *PPU) ReadOBP0() uint8 { return p.obp0 }
func (p *PPU) ReadOBP1() uint8 { return p.obp1 }

// WriteBGP / WriteOBP0 / WriteOBP1 store the raw byte and refresh the
// unpacked palette used by the renderer.
func (p *PPU) WriteBGP(v uint8) {
	p.bgp = v
	p.bgPalette = unpack(v)
}

func (p *PPU) WriteOBP0(v uint8) {
	p.obp0 = v
	p.objPalette[0] = unpack(v)
}

func (p *PPU) WriteOBP1(v uint8) {
	p.obp1 = v
	p.objPalette[1] = unpack(v)
}
