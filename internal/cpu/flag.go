package cpu

// Flag bit positions within F. The low nibble is reserved zero.
const (
	FlagZero      uint8 = 0x80
	FlagSubtract  uint8 = 0x40
	FlagHalfCarry uint8 = 0x20
	FlagCarry     uint8 = 0x10
)

func (c *CPU) setFlag(flag uint8) {
	c.SetF(c.F | flag)
}

func (c *CPU) clearFlag(flag uint8) {
	c.SetF(c.F &^ flag)
}

func (c *CPU) putFlag(flag uint8, on bool) {
	if on {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

func (c *CPU) isFlagSet(flag uint8) bool {
	return c.F&flag != 0
}

// zeroFlag sets FlagZero from a result byte, the common case for every
// 8-bit ALU and INC/DEC/shift operation.
func (c *CPU) zeroFlag(v uint8) {
	c.putFlag(FlagZero, v == 0)
}
