// Package ram provides a fixed-size byte array used for WRAM, VRAM, OAM and
// HRAM. It has no notion of the wider 64 KiB address space -- the mmu
// package owns translating a bus address into an offset within one of
// these arrays.
package ram

import "fmt"

// RAM is a fixed-size, zero-offset block of bytes.
type RAM struct {
	data []byte
}

// New returns a RAM block of the given size, zeroed.
func New(size int) *RAM {
	return &RAM{data: make([]byte, size)}
}

// Read returns the byte at the given offset.
func (r *RAM) Read(offset uint16) uint8 {
	if int(offset) >= len(r.data) {
		panic(fmt.Sprintf("ram: offset %#x out of bounds (size %#x)", offset, len(r.data)))
	}
	return r.data[offset]
}

// Write stores a byte at the given offset.
func (r *RAM) Write(offset uint16, value uint8) {
	if int(offset) >= len(r.data) {
		panic(fmt.Sprintf("ram: offset %#x out of bounds (size %#x)", offset, len(r.data)))
	}
	r.data[offset] = value
}

// Len returns the size of the block in bytes.
func (r *RAM) Len() int {
	return len(r.data)
}
