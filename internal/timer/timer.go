// Package timer implements the DIV register: an 8-bit counter that
// increments at 16384 Hz (once per 256 machine cycles). The full
// TIMA/TMA/TAC timer is not modelled -- DIV is the only register this
// package owns.
package timer

const ticksPerDiv = 256

// Controller owns the DIV register and the sub-tick accumulator backing
// it (cycles since the last DIV tick, mod 256).
type Controller struct {
	div      uint8
	divCount uint16
}

// NewController returns a Controller with DIV initialized to its power-on
// value 0xAB.
func NewController() *Controller {
	return &Controller{div: 0xAB}
}

// Tick accumulates elapsed machine cycles and increments DIV every 256 of
// them, wrapping DIV on overflow.
func (c *Controller) Tick(cycles uint8) {
	c.divCount += uint16(cycles)
	for c.divCount >= ticksPerDiv {
		c.divCount -= ticksPerDiv
		c.div++
	}
}

// Read returns the current value of DIV.
func (c *Controller) Read() uint8 {
	return c.div
}

// Reset zeroes both DIV and the sub-tick accumulator, as required on any
// write to the DIV register regardless of the value written.
func (c *Controller) Reset() {
	c.div = 0
	c.divCount = 0
}

// DivCount exposes the accumulator; it stays below 256 after every Tick.
func (c *Controller) DivCount() uint16 {
	return c.divCount
}
