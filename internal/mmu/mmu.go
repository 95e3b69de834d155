// Package mmu implements the 64 KiB address decode: a single Read/Write
// contract routing every bus address to ROM/VRAM/WRAM/OAM/IO/HRAM or the
// cartridge's MBC, with no address ever treated as invalid (unmapped
// regions read 0xFF and swallow writes).
package mmu

import (
	"github.com/kjhallberg/go-dmg/internal/cartridge"
	"github.com/kjhallberg/go-dmg/internal/interrupts"
	"github.com/kjhallberg/go-dmg/internal/joypad"
	"github.com/kjhallberg/go-dmg/internal/ppu"
	"github.com/kjhallberg/go-dmg/internal/ram"
	"github.com/kjhallberg/go-dmg/internal/timer"
	"github.com/kjhallberg/go-dmg/internal/types"
	"github.com/kjhallberg/go-dmg/pkg/log"
)

// MMU is the Game Boy's memory management unit: the full 64 KiB address
// space, separated into the memory arrays owned directly by this struct
// (WRAM and the plain IO/HRAM page) plus the sub-modules it routes
// register-specific I/O to.
type MMU struct {
	cart cartridge.Cartridge

	wram *ram.RAM
	vram *ram.RAM
	oam  *ram.RAM
	io   [types.HRAMIOSize]uint8

	Interrupts *interrupts.Controller
	Timer      *timer.Controller
	Joypad     *joypad.State
	PPU        *ppu.PPU

	log log.Logger
}

// New constructs an MMU with zeroed WRAM and the given cartridge and
// sub-modules already wired together by the caller (internal/gameboy).
// vram and oam are the same *ram.RAM instances owned by p, the PPU: the
// CPU and the renderer must observe the same tile and sprite data, so the
// MMU does not keep a private copy.
func New(cart cartridge.Cartridge, vram, oam *ram.RAM, irq *interrupts.Controller, tm *timer.Controller, jp *joypad.State, p *ppu.PPU, logger log.Logger) *MMU {
	m := &MMU{
		cart:       cart,
		wram:       ram.New(types.WRAMSize),
		vram:       vram,
		oam:        oam,
		Interrupts: irq,
		Timer:      tm,
		Joypad:     jp,
		PPU:        p,
		log:        logger,
	}
	// IF's power-on value goes through Write so the top-bits mask applies;
	// the PPU and timer set their own power-on registers at construction.
	m.Write(types.IF, 0xE1)
	return m
}

// Read services a CPU or operand-fetch read. Every address resolves to
// some byte; unmapped regions return 0xFF.
func (m *MMU) Read(addr uint16) uint8 {
	switch {
	case addr <= types.ROMBank0End:
		return m.cart.ReadLow(addr)
	case addr <= types.ROMBankNEnd:
		return m.cart.ReadHigh(addr)
	case addr <= types.VRAMEnd:
		return m.vram.Read(addr - types.VRAMStart)
	case addr <= types.CartRAMEnd:
		return m.cart.ReadRAM(addr)
	case addr <= types.WRAMEnd:
		return m.wram.Read(addr - types.WRAMStart)
	case addr <= types.EchoEnd:
		return m.wram.Read(addr - types.EchoStart)
	case addr <= types.OAMEnd:
		return m.oam.Read(addr - types.OAMStart)
	case addr <= types.UnusableEnd:
		return 0xFF
	default:
		return m.readIO(addr)
	}
}

// Write services a CPU write.
func (m *MMU) Write(addr uint16, value uint8) {
	switch {
	case addr <= types.ROMBankNEnd:
		m.cart.WriteControl(addr, value)
	case addr <= types.VRAMEnd:
		m.vram.Write(addr-types.VRAMStart, value)
	case addr <= types.CartRAMEnd:
		m.cart.WriteRAM(addr, value)
	case addr <= types.WRAMEnd:
		m.wram.Write(addr-types.WRAMStart, value)
	case addr <= types.EchoEnd:
		m.wram.Write(addr-types.EchoStart, value)
	case addr <= types.OAMEnd:
		m.oam.Write(addr-types.OAMStart, value)
	case addr <= types.UnusableEnd:
		// swallowed
	default:
		m.writeIO(addr, value)
	}
}

// Read16 / Write16 read and write a little-endian 16-bit value, the wire
// order for 16-bit immediates and PUSH/POP.
func (m *MMU) Read16(addr uint16) uint16 {
	lo := uint16(m.Read(addr))
	hi := uint16(m.Read(addr + 1))
	return lo | hi<<8
}

func (m *MMU) Write16(addr uint16, v uint16) {
	m.Write(addr, uint8(v))
	m.Write(addr+1, uint8(v>>8))
}
