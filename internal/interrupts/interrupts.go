// Package interrupts implements the interrupt controller: IME, the 5-bit
// IF register and the 8-bit IE register, plus the fixed-priority vector
// table consulted by the CPU's step loop.
package interrupts

// Flag is an interrupt source, numbered by IF/IE bit index. Bit 0 is
// highest priority.
type Flag uint8

const (
	VBlank Flag = iota
	LCDStat
	Timer
	Serial
	Joypad
)

// Vector is the address the CPU jumps to when servicing an interrupt.
type Vector = uint16

// vectors is keyed by IF/IE bit index.
var vectors = [5]Vector{
	VBlank:  0x0040,
	LCDStat: 0x0048,
	Timer:   0x0050,
	Serial:  0x0058,
	Joypad:  0x0060,
}

const (
	FlagRegister   uint16 = 0xFF0F
	EnableRegister uint16 = 0xFFFF
	pendingMask    uint8  = 0x1F
)

// Controller holds IME/IF/IE and decides which interrupt, if any, is next
// to be serviced.
type Controller struct {
	IME bool

	flag   uint8
	enable uint8
}

// NewController returns a Controller with IF initialized to its power-on
// value 0xE1 and IME cleared.
func NewController() *Controller {
	return &Controller{flag: 0xE1}
}

// Request latches the given interrupt source as pending.
func (c *Controller) Request(flag Flag) {
	c.flag |= 1 << flag
}

// Clear acknowledges the given interrupt source.
func (c *Controller) Clear(flag Flag) {
	c.flag &^= 1 << flag
}

// ReadIF returns the IF register. The top 3 bits always read as 1.
func (c *Controller) ReadIF() uint8 {
	return c.flag&pendingMask | 0xE0
}

// WriteIF stores the IF register, forcing the top 3 bits to 1.
func (c *Controller) WriteIF(v uint8) {
	c.flag = v&pendingMask | 0xE0
}

// ReadIE returns the IE register.
func (c *Controller) ReadIE() uint8 {
	return c.enable
}

// WriteIE stores the IE register. The upper 3 bits are accepted but
// ignored by Pending.
func (c *Controller) WriteIE(v uint8) {
	c.enable = v
}

// Pending reports whether any enabled interrupt is latched, i.e. whether
// (IF & IE & 0x1F) != 0.
func (c *Controller) Pending() bool {
	return c.flag&c.enable&pendingMask != 0
}

// Next returns the highest-priority pending-and-enabled interrupt's vector
// and clears its IF bit. ok is false if none is pending.
func (c *Controller) Next() (vector Vector, ok bool) {
	active := c.flag & c.enable & pendingMask
	if active == 0 {
		return 0, false
	}
	for bit := Flag(0); bit < 5; bit++ {
		if active&(1<<bit) != 0 {
			c.Clear(bit)
			return vectors[bit], true
		}
	}
	return 0, false
}
