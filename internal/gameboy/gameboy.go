// Package gameboy wires the cpu, mmu, ppu, interrupts, timer, joypad and
// cartridge packages into a single runnable core covering the DMG/MBC1
// subsystems (no APU, serial or GBC double-speed support).
package gameboy

import (
	"github.com/kjhallberg/go-dmg/internal/cartridge"
	"github.com/kjhallberg/go-dmg/internal/coreerr"
	"github.com/kjhallberg/go-dmg/internal/cpu"
	"github.com/kjhallberg/go-dmg/internal/interrupts"
	"github.com/kjhallberg/go-dmg/internal/joypad"
	"github.com/kjhallberg/go-dmg/internal/mmu"
	"github.com/kjhallberg/go-dmg/internal/ppu"
	"github.com/kjhallberg/go-dmg/internal/ram"
	"github.com/kjhallberg/go-dmg/internal/timer"
	"github.com/kjhallberg/go-dmg/internal/types"
	"github.com/kjhallberg/go-dmg/pkg/log"
)

// GameBoy is a fully wired core: one Step call executes one CPU
// instruction and advances the timer and PPU by the cycles it consumed.
// It is single-owner state with no internal goroutines; the host drives
// the step loop from at most one thread at a time.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	PPU        *ppu.PPU
	Interrupts *interrupts.Controller
	Timer      *timer.Controller
	Joypad     *joypad.State
	Cartridge  cartridge.Cartridge

	log          log.Logger
	scanlineHook ppu.ScanlineHook
	errorHook    func(err error)
}

// New loads rom and returns a GameBoy positioned at the documented
// post-boot-ROM state, or an InvalidCartridge/InvalidChecksum error if the
// cartridge header fails validation.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	gb := &GameBoy{log: log.Null()}
	for _, opt := range opts {
		opt(gb)
	}

	header, err := cartridge.ParseHeader(rom)
	if err != nil {
		if gb.errorHook != nil {
			gb.errorHook(err)
		}
		return nil, err
	}

	hooks := cartridge.NewSliceHooks(rom, header)
	cart := cartridge.New(header, hooks)

	irq := interrupts.NewController()
	tm := timer.NewController()
	jp := joypad.New(irq)

	vram := ram.New(types.VRAMSize)
	oam := ram.New(types.OAMSize)
	p := ppu.New(vram, oam, irq, gb.scanlineHook)

	var errHook coreerr.Hook
	if gb.errorHook != nil {
		errHook = func(e *coreerr.Error) { gb.errorHook(e) }
	}

	bus := mmu.New(cart, vram, oam, irq, tm, jp, p, gb.log)
	core := cpu.New(bus, irq, errHook)
	core.SetLogger(gb.log)

	gb.CPU = core
	gb.MMU = bus
	gb.PPU = p
	gb.Interrupts = irq
	gb.Timer = tm
	gb.Joypad = jp
	gb.Cartridge = cart
	return gb, nil
}

// Step executes exactly one CPU instruction and advances the timer and
// PPU by the cycles it consumed.
func (gb *GameBoy) Step() uint8 {
	cycles := gb.CPU.Step()
	gb.Timer.Tick(cycles)
	gb.PPU.Tick(cycles)
	return cycles
}

// Stopped reports whether the core has hit a fatal fault; once true,
// further Step calls do nothing.
func (gb *GameBoy) Stopped() bool { return gb.CPU.Stopped() }

// FrameComplete reports whether a full frame (PPU entering VBlank) has
// completed since the last call, consuming the edge latch.
func (gb *GameBoy) FrameComplete() bool {
	return gb.PPU.TakeFrameComplete()
}

// StepFrame runs Step until one frame has completed, or until the core
// faults.
func (gb *GameBoy) StepFrame() {
	for !gb.FrameComplete() {
		if gb.Stopped() {
			return
		}
		gb.Step()
	}
}

// Press and Release forward a joypad button edge from the host.
func (gb *GameBoy) Press(btn joypad.Button)   { gb.Joypad.Press(btn) }
func (gb *GameBoy) Release(btn joypad.Button) { gb.Joypad.Release(btn) }
