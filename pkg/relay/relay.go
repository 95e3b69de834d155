package relay

import (
	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"

	"github.com/kjhallberg/go-dmg/internal/ppu"
)

const frameBytes = ppu.ScreenWidth * ppu.ScreenHeight

// Relay is the scanline-hook side of the pkg/relay adapter: it implements
// ppu.ScanlineHook, deduplicates unchanged lines by content hash, and
// hands a compressed, batched frame to a Hub once per completed frame.
type Relay struct {
	hub *Hub

	frame    [frameBytes]uint8
	lineHash [ppu.ScreenHeight]uint64
	dirty    bool

	compressionLevel int
}

// New returns a Relay broadcasting through hub. compressionLevel is passed
// through to cbrotli.WriterOptions.Quality (0-11); 2 is a sensible default
// for a real-time stream, favoring throughput over ratio.
func New(hub *Hub, compressionLevel int) *Relay {
	return &Relay{hub: hub, compressionLevel: compressionLevel}
}

// ScanlineHook matches ppu.ScanlineHook and is wired in via
// gameboy.WithScanlineHook. It hashes the line and only copies it into the
// accumulating frame buffer when its content changed since the last frame
// -- real Game Boy backgrounds hold static for many frames at a time, so
// a frame in which no line moved is not encoded or sent at all.
func (r *Relay) ScanlineHook(pixels [ppu.ScreenWidth]uint8, line uint8) {
	hash := xxhash.Sum64(pixels[:])
	if r.lineHash[line] == hash {
		return
	}
	r.lineHash[line] = hash
	copy(r.frame[int(line)*ppu.ScreenWidth:], pixels[:])
	r.dirty = true
}

// FrameComplete should be called once per gb.FrameComplete() edge. It
// compresses the accumulated frame with brotli and broadcasts it, skipping
// the send entirely if no scanline changed since the previous frame.
func (r *Relay) FrameComplete() error {
	if !r.dirty {
		return nil
	}
	r.dirty = false

	out, err := cbrotli.Encode(r.frame[:], cbrotli.WriterOptions{Quality: r.compressionLevel})
	if err != nil {
		return err
	}
	r.hub.Broadcast(out)
	return nil
}
