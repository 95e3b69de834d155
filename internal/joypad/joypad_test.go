package joypad

import (
	"testing"

	"github.com/kjhallberg/go-dmg/internal/interrupts"
)

func TestRead_NoRowSelectedReadsAllOnes(t *testing.T) {
	s := New(interrupts.NewController())
	s.Write(0x30) // select neither row
	if got := s.Read() & 0x0F; got != 0x0F {
		t.Errorf("low nibble = %#02x, want 0x0F", got)
	}
}

func TestRead_DirectionRowReflectsLatch(t *testing.T) {
	irq := interrupts.NewController()
	s := New(irq)
	s.Write(0x20) // select direction row (bit4=0)
	s.Press(Right)
	if got := s.Read() & 0x01; got != 0 {
		t.Errorf("Right bit = %d, want 0 (pressed, active-low)", got)
	}
}

func TestRead_ButtonRowReflectsLatch(t *testing.T) {
	irq := interrupts.NewController()
	s := New(irq)
	s.Write(0x10) // select button row (bit5=0)
	s.Press(A)
	if got := s.Read() & 0x01; got != 0 {
		t.Errorf("A bit = %d, want 0 (pressed, active-low)", got)
	}
}

func TestPress_RequestsInterruptOnlyWhenVisibleUnderSelectedRow(t *testing.T) {
	irq := interrupts.NewController()
	irq.WriteIE(0x1F)
	irq.WriteIF(0x00) // drop the power-on VBlank request
	s := New(irq)
	s.Write(0x10) // select button row only; direction row not selected

	s.Press(Up) // direction button, not visible under the selected row
	if irq.Pending() {
		t.Error("pressing a button on an unselected row should not request an interrupt")
	}

	s.Press(A) // button row, visible
	if !irq.Pending() {
		t.Error("pressing a visible button should request a joypad interrupt")
	}
}

func TestRelease_DoesNotRetriggerInterrupt(t *testing.T) {
	irq := interrupts.NewController()
	irq.WriteIE(0x1F)
	irq.WriteIF(0x00) // drop the power-on VBlank request
	s := New(irq)
	s.Write(0x10)
	s.Press(A)
	irq.Next() // acknowledge

	s.Release(A)
	if irq.Pending() {
		t.Error("releasing a button should not request a new interrupt")
	}
}
