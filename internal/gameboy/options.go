package gameboy

import (
	"github.com/kjhallberg/go-dmg/internal/ppu"
	"github.com/kjhallberg/go-dmg/pkg/log"
)

// Opt configures a GameBoy at construction time.
type Opt func(gb *GameBoy)

// WithLogger swaps the default null logger for a real one.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) { gb.log = l }
}

// WithScanlineHook attaches a host callback invoked once per rendered
// scanline. Without this option frames are still computed but never
// observed outside the core.
func WithScanlineHook(hook ppu.ScanlineHook) Opt {
	return func(gb *GameBoy) { gb.scanlineHook = hook }
}

// WithErrorHook attaches a host callback invoked on core-level faults
// (invalid opcode, invalid cartridge, invalid checksum).
func WithErrorHook(hook func(err error)) Opt {
	return func(gb *GameBoy) { gb.errorHook = hook }
}
