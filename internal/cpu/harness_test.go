package cpu

import (
	"github.com/kjhallberg/go-dmg/internal/cartridge"
	"github.com/kjhallberg/go-dmg/internal/coreerr"
	"github.com/kjhallberg/go-dmg/internal/interrupts"
	"github.com/kjhallberg/go-dmg/internal/joypad"
	"github.com/kjhallberg/go-dmg/internal/mmu"
	"github.com/kjhallberg/go-dmg/internal/ppu"
	"github.com/kjhallberg/go-dmg/internal/ram"
	"github.com/kjhallberg/go-dmg/internal/timer"
	"github.com/kjhallberg/go-dmg/internal/types"
	"github.com/kjhallberg/go-dmg/pkg/log"
)

// newTestCPU wires a CPU to a fully populated bus backed by an unbanked
// 32 KiB ROM image with program written starting at 0x0100 (the post-boot
// entry point), built from this package's own constructors rather than
// mocks so instruction tests exercise the real bus path. An optional
// error hook can be supplied for fault-path tests.
func newTestCPU(program []byte, errHook ...coreerr.Hook) (*CPU, *mmu.MMU) {
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], program)

	header := &cartridge.Header{Kind: cartridge.KindNone, ROMBanks: 2}
	hooks := cartridge.NewSliceHooks(rom, header)
	cart := cartridge.New(header, hooks)

	irq := interrupts.NewController()
	tm := timer.NewController()
	jp := joypad.New(irq)
	vram := ram.New(types.VRAMSize)
	oam := ram.New(types.OAMSize)
	p := ppu.New(vram, oam, irq, nil)

	bus := mmu.New(cart, vram, oam, irq, tm, jp, p, log.Null())

	var hook coreerr.Hook
	if len(errHook) > 0 {
		hook = errHook[0]
	}
	c := New(bus, irq, hook)
	return c, bus
}
