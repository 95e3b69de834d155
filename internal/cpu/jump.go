package cpu

func (c *CPU) jumpAbsolute(addr uint16) { c.PC = addr }

func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

func (c *CPU) call(addr uint16) {
	c.pushStack(c.PC)
	c.PC = addr
}

func (c *CPU) ret() { c.PC = c.popStack() }

func (c *CPU) retInterrupt() {
	c.PC = c.popStack()
	c.irq.IME = true
}

func (c *CPU) rst(addr uint16) {
	c.pushStack(c.PC)
	c.PC = addr
}
