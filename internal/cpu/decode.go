package cpu

// regNames orders the 8 register-index operands used throughout the base
// and CB tables: B, C, D, E, H, L, (HL), A.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// readR8 reads the operand selected by a 3-bit register index, routing
// index 6 through memory at HL.
func (c *CPU) readR8(idx uint8) uint8 {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.mmu.Read(c.HL())
	default:
		return c.A
	}
}

// writeR8 writes the operand selected by a 3-bit register index.
func (c *CPU) writeR8(idx uint8, v uint8) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.mmu.Write(c.HL(), v)
	default:
		c.A = v
	}
}
