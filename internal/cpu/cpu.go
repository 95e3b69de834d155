// Package cpu implements the Sharp LR35902 instruction interpreter: a
// fixed 256-entry base opcode table plus a 256-entry CB-prefixed table,
// dispatched one instruction per Step call.
package cpu

import (
	"github.com/kjhallberg/go-dmg/internal/coreerr"
	"github.com/kjhallberg/go-dmg/internal/interrupts"
	"github.com/kjhallberg/go-dmg/internal/mmu"
	"github.com/kjhallberg/go-dmg/pkg/log"
)

// CPU executes one instruction per Step call and reports the machine
// cycles (T-states) it consumed, so the single caller that owns the step
// loop can feed that count back into the timer and PPU.
type CPU struct {
	Registers
	PC, SP uint16

	halted bool
	// stopped latches after a fatal fault (invalid opcode): once set,
	// Step becomes a no-op and the host is expected to cease the loop.
	stopped bool

	mmu *mmu.MMU
	irq *interrupts.Controller

	errHook coreerr.Hook
	log     log.Logger

	base [256]Instruction
	cb   [256]Instruction
}

// Instruction is one base or CB-prefixed opcode: its mnemonic (for
// diagnostics), encoded length in bytes, base cycle cost in T-states, and
// the function that performs its effect. Conditional branches add their
// penalty directly inside Execute by returning an adjusted cycle count.
type Instruction struct {
	Name   string
	Length uint8
	Cycles uint8
	// Execute runs the instruction and returns the actual cycle cost,
	// which differs from Cycles only for taken/not-taken conditional
	// branches.
	Execute func(c *CPU) uint8
}

// New constructs a CPU in the post-boot-ROM register and flag state:
// A=0x01 F=0xB0 BC=0x0013 DE=0x00D8 HL=0x014D SP=0xFFFE PC=0x0100.
func New(bus *mmu.MMU, irq *interrupts.Controller, errHook coreerr.Hook) *CPU {
	c := &CPU{mmu: bus, irq: irq, errHook: errHook, log: log.Null()}
	c.A, c.F = 0x01, 0xB0
	c.SetBC(0x0013)
	c.SetDE(0x00D8)
	c.SetHL(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.base = buildBaseTable()
	c.cb = buildCBTable()
	return c
}

// SetLogger swaps the default null logger for a real one, typically
// called once by internal/gameboy.New after construction.
func (c *CPU) SetLogger(l log.Logger) { c.log = l }

// Stopped reports whether the CPU has hit a fatal fault and ceased
// executing.
func (c *CPU) Stopped() bool { return c.stopped }

// Step runs interrupt service, then fetch-decode-execute, and returns the
// number of T-states the step consumed. The caller must feed that count
// to the timer and PPU before the next Step.
func (c *CPU) Step() uint8 {
	if c.stopped {
		return 0
	}

	if c.halted {
		if !c.irq.Pending() {
			return 4
		}
		c.halted = false
	}

	serviced := c.serviceInterrupt()
	if serviced > 0 {
		return serviced
	}

	opcode := c.fetch8()
	if opcode == 0xCB {
		sub := c.fetch8()
		return c.cb[sub].Execute(c)
	}

	instr := c.base[opcode]
	if instr.Execute == nil {
		fault := c.PC - 1
		c.stopped = true
		c.log.Debugf("invalid opcode %#02x at pc=%#04x", opcode, fault)
		if c.errHook != nil {
			c.errHook(coreerr.New(coreerr.InvalidOpcode, fault))
		}
		return 0
	}
	return instr.Execute(c)
}

// serviceInterrupt dispatches the single highest-priority pending,
// enabled interrupt if IME is set: clear IME, push PC, jump to the
// vector. It returns the cycle cost of the dispatch (20 T-states), or 0
// if nothing was serviced.
func (c *CPU) serviceInterrupt() uint8 {
	if !c.irq.IME || !c.irq.Pending() {
		return 0
	}
	vector, ok := c.irq.Next()
	if !ok {
		return 0
	}
	c.irq.IME = false
	c.pushStack(c.PC)
	c.PC = vector
	return 20
}

func (c *CPU) fetch8() uint8 {
	v := c.mmu.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	v := c.mmu.Read16(c.PC)
	c.PC += 2
	return v
}

func (c *CPU) pushStack(v uint16) {
	c.SP -= 2
	c.mmu.Write16(c.SP, v)
}

func (c *CPU) popStack() uint16 {
	v := c.mmu.Read16(c.SP)
	c.SP += 2
	return v
}

// EnableIME implements EI: IME is set immediately rather than after the
// following instruction (documented deviation, see DESIGN.md).
func (c *CPU) EnableIME() { c.irq.IME = true }

// DisableIME implements DI.
func (c *CPU) DisableIME() { c.irq.IME = false }

// Halt implements HALT: the CPU stops fetching until an enabled interrupt
// is pending. This core does not model the halt bug that occurs on real
// hardware when HALT executes with IME clear and an interrupt already
// pending.
func (c *CPU) Halt() { c.halted = true }

// Stop implements STOP. Real hardware additionally resets DIV and halts
// the LCD until a joypad edge; this core only models the CPU side,
// treating STOP as HALT.
func (c *CPU) Stop() { c.halted = true }
