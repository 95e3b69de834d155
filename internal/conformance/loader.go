// Package conformance is a golden-image test harness for the core: it
// runs a ROM fixture for a fixed number of frames and compares the
// rendered output against a reference PNG. Fixture ROMs and golden images
// are not shipped in this repository; every test here skips when its
// fixture is absent on disk rather than failing.
package conformance

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadROM reads a ROM image from path, transparently decompressing a
// single-entry .7z archive (the distribution format most public
// conformance-test suites ship in).
func LoadROM(path string) ([]byte, error) {
	if filepath.Ext(path) != ".7z" {
		return os.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r, err := sevenzip.NewReader(f, fi.Size())
	if err != nil {
		return nil, err
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("conformance: %s: empty archive", path)
	}

	entry, err := r.File[0].Open()
	if err != nil {
		return nil, err
	}
	defer entry.Close()

	return io.ReadAll(entry)
}

// FixtureExists reports whether a fixture ROM is present on disk, used to
// t.Skip tests whose corpus was not checked out.
func FixtureExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
