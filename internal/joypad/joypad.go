// Package joypad implements the Game Boy's 8-bit active-low input latch
// and the JOYP register's row-select semantics.
package joypad

import "github.com/kjhallberg/go-dmg/internal/interrupts"

// Button identifies a single physical button. Values double as bit
// positions in the latch: bit order from MSB is Down, Up, Left, Right,
// Start, Select, B, A.
type Button uint8

const (
	A Button = 1 << iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
)

const (
	selectButtons   uint8 = 1 << 5
	selectDirection uint8 = 1 << 4
)

// State holds the JOYP row-select bits and the host-supplied button latch.
// A 1 bit means released, 0 means pressed -- the hardware's active-low
// convention.
type State struct {
	selectRow uint8 // bits 4-5 of JOYP, as last written by the guest
	latch     uint8 // active-low: 1 = released, 0 = pressed

	irq *interrupts.Controller
}

// New returns a joypad with every button released.
func New(irq *interrupts.Controller) *State {
	return &State{selectRow: 0x30, latch: 0xFF, irq: irq}
}

// Read combines the selected row(s) of the latch into the low nibble of
// JOYP. When neither row is selected the low nibble reads 0xF.
func (s *State) Read() uint8 {
	result := s.selectRow | 0xC0
	lowNibble := uint8(0x0F)
	if s.selectRow&selectDirection == 0 {
		lowNibble &= (s.latch >> 4) & 0x0F
	}
	if s.selectRow&selectButtons == 0 {
		lowNibble &= s.latch & 0x0F
	}
	return result | lowNibble
}

// Write stores the row-select bits (4-5); all other bits are not writable.
func (s *State) Write(value uint8) {
	s.selectRow = value & 0x30
}

// SetLatch replaces the button latch with the given active-low byte; the
// host must treat this as a single byte store relative to the step loop.
// If newly-pressed buttons are visible under the currently selected
// row(s), a joypad interrupt is requested, matching real hardware's
// edge-triggered behaviour.
func (s *State) SetLatch(active uint8) {
	prev := s.latch
	s.latch = active

	newlyPressed := (^active) &^ (^prev)
	if newlyPressed == 0 {
		return
	}
	visible := uint8(0)
	if s.selectRow&selectDirection == 0 {
		visible |= (newlyPressed >> 4) & 0x0F
	}
	if s.selectRow&selectButtons == 0 {
		visible |= newlyPressed & 0x0F
	}
	if visible != 0 {
		s.irq.Request(interrupts.Joypad)
	}
}

// Press marks a single button as pressed (active-low: clears its bit).
func (s *State) Press(btn Button) {
	s.SetLatch(s.latch &^ uint8(btn))
}

// Release marks a single button as released (active-low: sets its bit).
func (s *State) Release(btn Button) {
	s.SetLatch(s.latch | uint8(btn))
}
