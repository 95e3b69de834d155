package mmu

import "github.com/kjhallberg/go-dmg/internal/types"

// readIO and writeIO dispatch the 0xFF00-0xFFFF page: named registers are
// routed to the sub-module that owns them; everything else falls back to
// plain byte storage in m.io so guest pokes at reserved or unmodelled
// registers never fault.
func (m *MMU) readIO(addr uint16) uint8 {
	switch addr {
	case types.JOYP:
		return m.Joypad.Read()
	case types.DIV:
		return m.Timer.Read()
	case types.IF:
		return m.Interrupts.ReadIF()
	case types.LCDC:
		return m.PPU.ReadLCDC()
	case types.STAT:
		return m.PPU.ReadSTAT()
	case types.SCY:
		return m.PPU.ReadSCY()
	case types.SCX:
		return m.PPU.ReadSCX()
	case types.LY:
		return m.PPU.ReadLY()
	case types.LYC:
		return m.PPU.ReadLYC()
	case types.BGP:
		return m.PPU.ReadBGP()
	case types.OBP0:
		return m.PPU.ReadOBP0()
	case types.OBP1:
		return m.PPU.ReadOBP1()
	case types.WY:
		return m.PPU.ReadWY()
	case types.WX:
		return m.PPU.ReadWX()
	case types.IE:
		return m.Interrupts.ReadIE()
	default:
		return m.io[addr-types.IOStart]
	}
}

func (m *MMU) writeIO(addr uint16, value uint8) {
	switch addr {
	case types.JOYP:
		m.Joypad.Write(value)
	case types.DIV:
		m.Timer.Reset()
	case types.IF:
		m.Interrupts.WriteIF(value)
	case types.LCDC:
		m.PPU.WriteLCDC(value)
	case types.STAT:
		m.PPU.WriteSTAT(value)
	case types.SCY:
		m.PPU.WriteSCY(value)
	case types.SCX:
		m.PPU.WriteSCX(value)
	case types.LY:
		// read-only to the guest
	case types.LYC:
		m.PPU.WriteLYC(value)
	case types.DMA:
		m.io[addr-types.IOStart] = value
		m.log.Debugf("oam dma from %#04x", uint16(value)<<8)
		m.doDMA(value)
	case types.BGP:
		m.PPU.WriteBGP(value)
	case types.OBP0:
		m.PPU.WriteOBP0(value)
	case types.OBP1:
		m.PPU.WriteOBP1(value)
	case types.WY:
		m.PPU.WriteWY(value)
	case types.WX:
		m.PPU.WriteWX(value)
	case types.IE:
		m.Interrupts.WriteIE(value)
	default:
		m.io[addr-types.IOStart] = value
	}
}

// doDMA performs the synchronous 160-byte OAM transfer triggered by a
// write to the DMA register: source page (value*0x100) through
// value*0x100+0x9F copied into OAM. The transfer completes before the
// triggering write instruction reports its cycles, rather than overlapping
// CPU execution as on real hardware.
func (m *MMU) doDMA(value uint8) {
	src := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.Write(types.OAMStart+i, m.Read(src+i))
	}
}
