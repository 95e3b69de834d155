// Command dmgcore is a headless driver for the core: it loads a ROM image,
// runs the step loop, and optionally relays rendered frames to a websocket
// debug client. It plays the boot-loader/host role the core itself stays
// out of; there is no window front end.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/kjhallberg/go-dmg/internal/gameboy"
	"github.com/kjhallberg/go-dmg/pkg/log"
	"github.com/kjhallberg/go-dmg/pkg/relay"
)

func main() {
	romPath := flag.String("rom", "", "path to a .gb ROM image")
	frames := flag.Int("frames", 0, "stop after this many rendered frames (0 = run forever)")
	relayAddr := flag.String("relay", "", "if set, serve a websocket scanline relay on this address (e.g. :8090)")
	compression := flag.Int("relay-compression", 2, "brotli quality (0-11) for the scanline relay")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "dmgcore: -rom is required")
		os.Exit(2)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmgcore: %v\n", err)
		os.Exit(1)
	}

	logger := log.New()

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithErrorHook(func(err error) {
			logger.Errorf("fatal core error: %v", err)
			os.Exit(1)
		}),
	}

	var rel *relay.Relay
	if *relayAddr != "" {
		hub := relay.NewHub()
		rel = relay.New(hub, *compression)
		go hub.Run()
		go func() {
			if err := http.ListenAndServe(*relayAddr, hub.Handler()); err != nil {
				logger.Errorf("relay server stopped: %v", err)
			}
		}()
		opts = append(opts, gameboy.WithScanlineHook(rel.ScanlineHook))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmgcore: %v\n", err)
		os.Exit(1)
	}
	logger.Infof("loaded %s", gb.Cartridge.Header())

	rendered := 0
	for !gb.Stopped() {
		gb.Step()
		if gb.FrameComplete() {
			rendered++
			if rel != nil {
				if err := rel.FrameComplete(); err != nil {
					logger.Warnf("relay encode failed: %v", err)
				}
			}
			if *frames > 0 && rendered >= *frames {
				return
			}
		}
	}
}
