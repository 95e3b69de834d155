// Package ppu implements the scanline-based LCD sequencer and pixel
// renderer: a state machine over STAT modes 2 (OAM scan), 3 (pixel draw)
// and 0 (HBlank), plus mode 1 (VBlank), driven by a per-scanline cycle
// accumulator.
package ppu

import (
	"github.com/kjhallberg/go-dmg/internal/interrupts"
	"github.com/kjhallberg/go-dmg/internal/ram"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// ScanlineHook is the core's frame output boundary, invoked up to 144
// times per frame with one rendered line of palette-mapped pixel indices.
type ScanlineHook func(pixels [ScreenWidth]uint8, line uint8)

// PPU is the LCD sequencer and scanline renderer. It owns VRAM and OAM
// directly so the renderer can read tile and sprite data without
// round-tripping through the mmu package.
type PPU struct {
	vram *ram.RAM
	oam  *ram.RAM
	irq  *interrupts.Controller
	hook ScanlineHook

	lcdc uint8
	statBits uint8
	scy, scx uint8
	ly, lyc  uint8
	wy, wx   uint8

	bgp, obp0, obp1 uint8
	bgPalette       Palette
	objPalette      [2]Palette

	mode     Mode
	lcdCount uint16

	frameComplete  bool
	lcdJustEnabled bool

	latchedWY  uint8
	windowLine uint8
}

// New returns a PPU with the documented power-on register values
// (LCDC=0x91, BGP=0xFC, OBP0/1=0xFF) and the sequencer positioned at
// OAM scan, LY=0.
func New(vram, oam *ram.RAM, irq *interrupts.Controller, hook ScanlineHook) *PPU {
	p := &PPU{vram: vram, oam: oam, irq: irq, hook: hook, mode: ModeOAMScan}
	p.lcdc = 0x91
	p.WriteBGP(0xFC)
	p.WriteOBP0(0xFF)
	p.WriteOBP1(0xFF)
	return p
}

func (p *PPU) enabled() bool {
	return p.lcdc&0x80 != 0
}

// ReadLCDC / WriteLCDC.
func (p *PPU) ReadLCDC() uint8 { return p.lcdc }

func (p *PPU) WriteLCDC(v uint8) {
	was := p.enabled()
	p.lcdc = v
	now := p.enabled()
	switch {
	case !was && now:
		// 0->1: begin a fresh frame, discarding the current one.
		p.mode = ModeOAMScan
		p.ly = 0
		p.lcdCount = 0
		p.lcdJustEnabled = true
	case was && !now:
		// 1->0: force HBlank at LY=0.
		p.mode = ModeHBlank
		p.ly = 0
		p.lcdCount = 0
	}
}

func (p *PPU) ReadSCY() uint8  { return p.scy }
func (p *PPU) WriteSCY(v uint8) { p.scy = v }
func (p *PPU) ReadSCX() uint8  { return p.scx }
func (p *PPU) WriteSCX(v uint8) { p.scx = v }

// ReadLY returns the current scanline; writes to it are ignored by the mmu.
func (p *PPU) ReadLY() uint8 { return p.ly }

func (p *PPU) ReadLYC() uint8  { return p.lyc }
func (p *PPU) WriteLYC(v uint8) { p.lyc = v }
func (p *PPU) ReadWY() uint8   { return p.wy }
func (p *PPU) WriteWY(v uint8) { p.wy = v }
func (p *PPU) ReadWX() uint8   { return p.wx }
func (p *PPU) WriteWX(v uint8) { p.wx = v }

// TakeFrameComplete reports and clears the frame-complete edge latch.
func (p *PPU) TakeFrameComplete() bool {
	v := p.frameComplete
	p.frameComplete = false
	return v
}

// Tick advances the sequencer by the given number of machine cycles. It is
// a no-op while the LCD is disabled: LY and the line accumulator stay at
// zero and the mode stays HBlank until re-enabled.
func (p *PPU) Tick(cycles uint8) {
	if !p.enabled() {
		return
	}
	for i := uint8(0); i < cycles; i++ {
		p.tickOne()
	}
}

func (p *PPU) tickOne() {
	p.lcdCount++
	switch p.mode {
	case ModeOAMScan:
		if p.lcdCount >= oamScanCycles {
			p.mode = ModeDraw
		}
	case ModeDraw:
		if p.lcdCount >= drawCycles {
			p.mode = ModeHBlank
			if !p.lcdJustEnabled && p.hook != nil {
				p.hook(RenderScanline(p, p.ly), p.ly)
			}
			if p.statBit(statMode0InterruptEnable) {
				p.irq.Request(interrupts.LCDStat)
			}
		}
	case ModeHBlank, ModeVBlank:
		if p.lcdCount >= lineCycles {
			p.newLine()
		}
	}
}

func (p *PPU) newLine() {
	p.lcdCount -= lineCycles
	p.ly++

	if p.ly == vblankLine {
		p.mode = ModeVBlank
		p.irq.Request(interrupts.VBlank)
		p.frameComplete = true
		if p.statBit(statMode1InterruptEnable) {
			p.irq.Request(interrupts.LCDStat)
		}
		p.lcdJustEnabled = false
	} else if p.ly == lastLine {
		p.ly = 0
		p.mode = ModeOAMScan
		p.latchedWY = p.wy
		p.windowLine = 0
		if p.statBit(statMode2InterruptEnable) {
			p.irq.Request(interrupts.LCDStat)
		}
	} else if p.ly < vblankLine {
		p.mode = ModeOAMScan
		if p.statBit(statMode2InterruptEnable) {
			p.irq.Request(interrupts.LCDStat)
		}
	}

	if p.ly == p.lyc && p.statBit(statLYCInterruptEnable) {
		p.irq.Request(interrupts.LCDStat)
	}
}
