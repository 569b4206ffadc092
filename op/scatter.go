package op

import (
	"math/rand/v2"

	"github.com/gogpu/andie/raster"
)

// NewRand returns the random source used to replay a scattering with the
// given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Scatter replaces every pixel with the whole ARGB value of a neighbour
// chosen uniformly from the in-bounds pixels within radius, itself
// included. src is not modified.
func Scatter(src *raster.Buffer, radius int, rng *rand.Rand) *raster.Buffer {
	radius = max(radius, 0)
	width := src.Width()
	height := src.Height()
	dst := raster.MustNew(width, height)

	srcData := src.Pix()
	dstData := dst.Pix()

	for y := range height {
		y0 := max(y-radius, 0)
		rows := min(y+radius, height-1) - y0 + 1
		for x := range width {
			x0 := max(x-radius, 0)
			cols := min(x+radius, width-1) - x0 + 1

			// The in-bounds window is a rectangle, so one draw picks a
			// neighbour uniformly.
			n := rng.IntN(rows * cols)
			px := x0 + n%cols
			py := y0 + n/cols

			si := (py*width + px) * raster.BytesPerPixel
			di := (y*width + x) * raster.BytesPerPixel
			copy(dstData[di:di+raster.BytesPerPixel], srcData[si:si+raster.BytesPerPixel])
		}
	}
	return dst
}
