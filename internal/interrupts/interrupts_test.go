package interrupts

import "testing"

func TestNewController_PowerOnIF(t *testing.T) {
	c := NewController()
	if got := c.ReadIF(); got != 0xE1 {
		t.Errorf("IF = %#02x, want 0xE1", got)
	}
	if c.IME {
		t.Error("IME should start cleared")
	}
}

func TestWriteIF_ForcesTopThreeBitsHigh(t *testing.T) {
	c := NewController()
	c.WriteIF(0x00)
	if got := c.ReadIF(); got != 0xE0 {
		t.Errorf("IF = %#02x, want 0xE0", got)
	}
}

func TestPending_RequiresBothIFAndIE(t *testing.T) {
	c := NewController()
	c.Request(Timer)
	if c.Pending() {
		t.Error("interrupt should not be pending until enabled in IE")
	}
	c.WriteIE(1 << Timer)
	if !c.Pending() {
		t.Error("interrupt should be pending once enabled")
	}
}

func TestNext_ServicesInPriorityOrder(t *testing.T) {
	c := NewController()
	c.WriteIE(0x1F)
	c.Request(Timer)
	c.Request(VBlank)
	c.Request(Joypad)

	vector, ok := c.Next()
	if !ok || vector != 0x0040 {
		t.Fatalf("first serviced vector = %#04x ok=%v, want VBlank at 0x0040", vector, ok)
	}
	vector, ok = c.Next()
	if !ok || vector != 0x0050 {
		t.Fatalf("second serviced vector = %#04x ok=%v, want Timer at 0x0050", vector, ok)
	}
	vector, ok = c.Next()
	if !ok || vector != 0x0060 {
		t.Fatalf("third serviced vector = %#04x ok=%v, want Joypad at 0x0060", vector, ok)
	}
	if c.Pending() {
		t.Error("no interrupts should remain pending")
	}
}

func TestNext_ClearsOnlyTheServicedBit(t *testing.T) {
	c := NewController()
	c.WriteIE(0x1F)
	c.Request(VBlank)
	c.Request(LCDStat)
	c.Next()
	if c.ReadIF()&(1<<LCDStat) == 0 {
		t.Error("LCDStat should remain pending after servicing VBlank")
	}
}
