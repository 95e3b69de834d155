package cpu

import "github.com/kjhallberg/go-dmg/pkg/bits"

// This file implements the flag semantics for every 8-bit and 16-bit ALU
// operation.

func (c *CPU) add8(n uint8) {
	a := c.A
	result := uint16(a) + uint16(n)
	c.putFlag(FlagHalfCarry, (a&0xF)+(n&0xF) > 0xF)
	c.putFlag(FlagCarry, result > 0xFF)
	c.clearFlag(FlagSubtract)
	c.A = uint8(result)
	c.zeroFlag(c.A)
}

func (c *CPU) adc8(n uint8) {
	carry := uint16(0)
	if c.isFlagSet(FlagCarry) {
		carry = 1
	}
	a := c.A
	result := uint16(a) + uint16(n) + carry
	c.putFlag(FlagHalfCarry, (a&0xF)+(n&0xF)+uint8(carry) > 0xF)
	c.putFlag(FlagCarry, result > 0xFF)
	c.clearFlag(FlagSubtract)
	c.A = uint8(result)
	c.zeroFlag(c.A)
}

func (c *CPU) sub8(n uint8) uint8 {
	a := c.A
	result := a - n
	c.putFlag(FlagHalfCarry, a&0xF < n&0xF)
	c.putFlag(FlagCarry, a < n)
	c.setFlag(FlagSubtract)
	c.zeroFlag(result)
	return result
}

func (c *CPU) sub8Apply(n uint8) { c.A = c.sub8(n) }

func (c *CPU) sbc8(n uint8) {
	carry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		carry = 1
	}
	a := c.A
	result := int16(a) - int16(n) - int16(carry)
	c.putFlag(FlagHalfCarry, int16(a&0xF)-int16(n&0xF)-int16(carry) < 0)
	c.putFlag(FlagCarry, result < 0)
	c.setFlag(FlagSubtract)
	c.A = uint8(result)
	c.zeroFlag(c.A)
}

func (c *CPU) and8(n uint8) {
	c.A &= n
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	c.zeroFlag(c.A)
}

func (c *CPU) or8(n uint8) {
	c.A |= n
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	c.zeroFlag(c.A)
}

func (c *CPU) xor8(n uint8) {
	c.A ^= n
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	c.zeroFlag(c.A)
}

func (c *CPU) cp8(n uint8) {
	c.sub8(n)
}

func (c *CPU) inc8(v uint8) uint8 {
	result := v + 1
	c.putFlag(FlagHalfCarry, v&0xF == 0xF)
	c.clearFlag(FlagSubtract)
	c.zeroFlag(result)
	return result
}

func (c *CPU) dec8(v uint8) uint8 {
	result := v - 1
	c.putFlag(FlagHalfCarry, v&0xF == 0)
	c.setFlag(FlagSubtract)
	c.zeroFlag(result)
	return result
}

// addHL implements ADD HL,rr. Per the resolved open question, half-carry
// and carry are computed from the selected source register pair, not
// always from SP.
func (c *CPU) addHL(n uint16) {
	hl := c.HL()
	result := uint32(hl) + uint32(n)
	c.putFlag(FlagHalfCarry, (hl&0x0FFF)+(n&0x0FFF) > 0x0FFF)
	c.putFlag(FlagCarry, result > 0xFFFF)
	c.clearFlag(FlagSubtract)
	c.SetHL(uint16(result))
}

// addSPSigned implements both ADD SP,e8 and LD HL,SP+e8: the signed
// immediate is added using the 8-bit unsigned half-carry/carry trick
// (flags come from SP's low byte plus the raw operand byte).
func (c *CPU) addSPSigned(e uint8) uint16 {
	sp := c.SP
	se := int16(int8(e))
	result := uint16(int32(sp) + int32(se))
	c.putFlag(FlagHalfCarry, (sp&0xF)+uint16(e&0xF) > 0xF)
	c.putFlag(FlagCarry, (sp&0xFF)+uint16(e) > 0xFF)
	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	return result
}

// daa adjusts A to BCD form after an addition or subtraction, following
// the reference correction table: N=0 adds 0x06/0x60 on half-carry or
// out-of-range nibbles, N=1 subtracts them on the recorded borrows. Carry
// is sticky.
func (c *CPU) daa() {
	a := uint16(c.A)
	if c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagHalfCarry) {
			a = (a - 0x06) & 0xFF
		}
		if c.isFlagSet(FlagCarry) {
			a -= 0x60
		}
	} else {
		if c.isFlagSet(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
		if c.isFlagSet(FlagCarry) || a > 0x9F {
			a += 0x60
		}
	}
	c.clearFlag(FlagHalfCarry)
	if a&0x100 != 0 {
		c.setFlag(FlagCarry)
	}
	c.A = uint8(a)
	c.zeroFlag(c.A)
}

func (c *CPU) cpl() {
	c.A = ^c.A
	c.setFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

func (c *CPU) scf() {
	c.setFlag(FlagCarry)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
}

func (c *CPU) ccf() {
	c.putFlag(FlagCarry, !c.isFlagSet(FlagCarry))
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
}

// rlca rotates A left accumulator-style: Z always cleared.
func (c *CPU) rlca() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.putFlag(FlagCarry, carry)
}

func (c *CPU) rrca() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.putFlag(FlagCarry, carry)
}

func (c *CPU) rla() {
	oldCarry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		oldCarry = 1
	}
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | oldCarry
	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.putFlag(FlagCarry, carry)
}

func (c *CPU) rra() {
	oldCarry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		oldCarry = 0x80
	}
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | oldCarry
	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.putFlag(FlagCarry, carry)
}

// The CB-prefixed rotate/shift family sets Z from the result, unlike the
// accumulator-only RLCA/RRCA/RLA/RRA quartet above.
func (c *CPU) rlc(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v<<1 | v>>7
	c.finishShift(result, carry)
	return result
}

func (c *CPU) rrc(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v>>1 | v<<7
	c.finishShift(result, carry)
	return result
}

func (c *CPU) rl(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		oldCarry = 1
	}
	carry := v&0x80 != 0
	result := v<<1 | oldCarry
	c.finishShift(result, carry)
	return result
}

func (c *CPU) rr(v uint8) uint8 {
	oldCarry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		oldCarry = 0x80
	}
	carry := v&0x01 != 0
	result := v>>1 | oldCarry
	c.finishShift(result, carry)
	return result
}

func (c *CPU) sla(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v << 1
	c.finishShift(result, carry)
	return result
}

func (c *CPU) sra(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v&0x80 | v>>1
	c.finishShift(result, carry)
	return result
}

func (c *CPU) srl(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v >> 1
	c.finishShift(result, carry)
	return result
}

func (c *CPU) swap(v uint8) uint8 {
	result := v<<4 | v>>4
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	c.zeroFlag(result)
	return result
}

func (c *CPU) finishShift(result uint8, carry bool) {
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.putFlag(FlagCarry, carry)
	c.zeroFlag(result)
}

func (c *CPU) bit(b uint8, v uint8) {
	c.putFlag(FlagZero, v&(1<<b) == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

func (c *CPU) res(b uint8, v uint8) uint8 { return bits.Reset(v, b) }
func (c *CPU) set(b uint8, v uint8) uint8 { return bits.Set(v, b) }
