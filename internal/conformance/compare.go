package conformance

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Compare returns the root-sum-square channel difference between got and
// want, scaling got to want's bounds first with golang.org/x/image/draw so
// a golden image captured at a different output scale still diffs cleanly.
// A return value of 0 means pixel-identical.
func Compare(got, want image.Image) (int64, error) {
	bounds := want.Bounds()
	if got.Bounds() != bounds {
		scaled := image.NewRGBA(bounds)
		draw.CatmullRom.Scale(scaled, bounds, got, got.Bounds(), draw.Over, nil)
		got = scaled
	}

	var accum int64
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			r1, g1, b1, a1 := got.At(x, y).RGBA()
			r2, g2, b2, a2 := want.At(x, y).RGBA()
			accum += sqDiff(r1, r2) + sqDiff(g1, g2) + sqDiff(b1, b2) + sqDiff(a1, a2)
		}
	}
	return int64(math.Sqrt(float64(accum))), nil
}

func sqDiff(a, b uint32) int64 {
	d := int64(a) - int64(b)
	return d * d
}

// ErrFixtureMissing is returned by test helpers when a golden image or ROM
// fixture is not present on disk.
type ErrFixtureMissing struct{ Path string }

func (e ErrFixtureMissing) Error() string {
	return fmt.Sprintf("conformance: fixture not found: %s", e.Path)
}
