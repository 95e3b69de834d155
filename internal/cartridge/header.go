// Package cartridge implements the loader side of the bus: header
// parsing, logo/checksum validation, and the MBC dispatch (none, MBC1)
// that backs the mmu package's 0x0000-0x7FFF and 0xA000-0xBFFF windows.
// It is deliberately kept separate from cpu/mmu/ppu so the core proper
// only ever depends on the Cartridge interface.
package cartridge

import (
	"bytes"
	"fmt"

	"github.com/kjhallberg/go-dmg/internal/coreerr"
)

// Kind identifies the memory bank controller a cartridge uses.
type Kind uint8

const (
	KindNone Kind = iota
	KindMBC1
)

// logo is the 48-byte Nintendo logo every valid cartridge carries at
// 0x0104-0x0133.
var logo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B,
	0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC,
	0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// romBankCounts maps the ROM-size header byte (0x0148) to a bank count.
var romBankCounts = map[uint8]uint32{
	0x00: 2, 0x01: 4, 0x02: 8, 0x03: 16, 0x04: 32,
	0x05: 64, 0x06: 128, 0x52: 72, 0x53: 80, 0x54: 96,
}

// ramSizeBytes maps the RAM-size header byte (0x0149) to a byte count.
var ramSizeBytes = map[uint8]uint32{
	0x00: 0, 0x01: 2 * 1024, 0x02: 8 * 1024, 0x03: 32 * 1024,
	0x04: 128 * 1024, 0x05: 64 * 1024,
}

// Header is the subset of the cartridge header (0x0100-0x014F) that the
// core and loader care about.
type Header struct {
	Title         string
	Type          uint8 // raw byte at 0x0147
	Kind          Kind
	HasRAM        bool
	HasBattery    bool
	ROMBanks      uint32 // power of two; used as an index mask
	RAMSize       uint32 // bytes
	HeaderChecksum uint8
}

// ParseHeader reads the header fields out of a raw ROM image and validates
// the Nintendo logo and header checksum, returning InvalidChecksum if
// either fails, or InvalidCartridge if the cartridge-type byte names an
// MBC this core does not implement. On any error the core is never
// constructed.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) < 0x0150 {
		return nil, coreerr.New(coreerr.InvalidCartridge, 0)
	}

	if !bytes.Equal(rom[0x0104:0x0134], logo[:]) {
		return nil, coreerr.New(coreerr.InvalidChecksum, 0x0104)
	}

	sum := uint8(0)
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	want := rom[0x014D]
	if sum != want {
		return nil, coreerr.New(coreerr.InvalidChecksum, 0x014D)
	}

	h := &Header{
		Title:          string(bytes.TrimRight(rom[0x0134:0x0144], "\x00")),
		Type:           rom[0x0147],
		HeaderChecksum: want,
	}

	romCode := rom[0x0148]
	banks, ok := romBankCounts[romCode]
	if !ok {
		return nil, coreerr.New(coreerr.InvalidCartridge, 0x0148)
	}
	h.ROMBanks = banks

	ramCode := rom[0x0149]
	ramSize, ok := ramSizeBytes[ramCode]
	if !ok {
		return nil, coreerr.New(coreerr.InvalidCartridge, 0x0149)
	}
	h.RAMSize = ramSize

	switch h.Type {
	case 0x00:
		h.Kind = KindNone
	case 0x01:
		h.Kind = KindMBC1
	case 0x02:
		h.Kind = KindMBC1
		h.HasRAM = true
	case 0x03:
		h.Kind = KindMBC1
		h.HasRAM = true
		h.HasBattery = true
	default:
		return nil, coreerr.New(coreerr.InvalidCartridge, 0x0147)
	}

	return h, nil
}

func (h *Header) String() string {
	return fmt.Sprintf("%s (type=%#02x banks=%d ram=%d)", h.Title, h.Type, h.ROMBanks, h.RAMSize)
}
