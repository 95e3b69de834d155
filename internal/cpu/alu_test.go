package cpu

import "testing"

func TestInc8_HalfCarryAtNibbleBoundary(t *testing.T) {
	c, _ := newTestCPU(nil)
	result := c.inc8(0x0F)
	if result != 0x10 {
		t.Fatalf("inc8(0x0F) = %#02x, want 0x10", result)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("expected half-carry set crossing the low-nibble boundary")
	}
	if c.isFlagSet(FlagSubtract) {
		t.Error("INC must clear the subtract flag")
	}
}

func TestInc8_WrapToZeroSetsZeroFlag(t *testing.T) {
	c, _ := newTestCPU(nil)
	result := c.inc8(0xFF)
	if result != 0x00 {
		t.Fatalf("inc8(0xFF) = %#02x, want 0x00", result)
	}
	if !c.isFlagSet(FlagZero) {
		t.Error("expected zero flag set on wraparound")
	}
}

func TestDec8_HalfBorrowAtNibbleBoundary(t *testing.T) {
	c, _ := newTestCPU(nil)
	result := c.dec8(0x10)
	if result != 0x0F {
		t.Fatalf("dec8(0x10) = %#02x, want 0x0F", result)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("expected half-carry (borrow) set crossing the low-nibble boundary")
	}
	if !c.isFlagSet(FlagSubtract) {
		t.Error("DEC must set the subtract flag")
	}
}

func TestAddHL_UsesSelectedSourceNotSP(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.SetHL(0x0FFF)
	c.SP = 0x0000 // deliberately different from the source register pair
	c.SetBC(0x0001)
	c.addHL(c.BC())
	if c.HL() != 0x1000 {
		t.Fatalf("HL = %#04x, want 0x1000", c.HL())
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("expected half-carry computed from HL+BC crossing bit 11, not HL+SP")
	}
}

func TestAddHL_CarrySetOn16BitOverflow(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.SetHL(0xFFFF)
	c.addHL(1)
	if c.HL() != 0x0000 {
		t.Fatalf("HL = %#04x, want 0x0000", c.HL())
	}
	if !c.isFlagSet(FlagCarry) {
		t.Error("expected carry set on 16-bit overflow")
	}
}

func TestAnd8_AlwaysSetsHalfCarryClearsCarry(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.A = 0xFF
	c.and8(0x0F)
	if c.A != 0x0F {
		t.Fatalf("A = %#02x, want 0x0F", c.A)
	}
	if !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Errorf("F = %#02x, want H set and C clear", c.F)
	}
}
