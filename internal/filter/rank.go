package filter

import (
	"slices"

	"github.com/gogpu/andie/internal/parallel"
	"github.com/gogpu/andie/raster"
)

// Statistic selects which order statistic a rank filter keeps.
type Statistic int

const (
	// Minimum keeps the smallest sample of each channel.
	Minimum Statistic = iota
	// Median keeps the lower-middle sample (index len/2) of each channel.
	Median
	// Maximum keeps the largest sample of each channel.
	Maximum
)

// String returns the statistic name.
func (s Statistic) String() string {
	switch s {
	case Minimum:
		return "Minimum"
	case Median:
		return "Median"
	case Maximum:
		return "Maximum"
	default:
		return "Unknown"
	}
}

// index returns the position of the statistic in a sorted sample of n values.
func (s Statistic) index(n int) int {
	switch s {
	case Minimum:
		return 0
	case Maximum:
		return n - 1
	default:
		return n / 2
	}
}

// channelSamples holds one sample array per channel in R, G, B, A order.
// The arrays are reused between windows.
type channelSamples [raster.BytesPerPixel][]uint8

func newChannelSamples(capacity int) *channelSamples {
	var s channelSamples
	for c := range s {
		s[c] = make([]uint8, 0, capacity)
	}
	return &s
}

func (s *channelSamples) reset() {
	for c := range s {
		s[c] = s[c][:0]
	}
}

func (s *channelSamples) add(pix []byte, i int) {
	for c := range s {
		s[c] = append(s[c], pix[i+c])
	}
}

// pick sorts every channel independently and writes the selected value of
// each into dst.
func (s *channelSamples) pick(stat Statistic, dst []byte) {
	for c := range s {
		slices.Sort(s[c])
		dst[c] = s[c][stat.index(len(s[c]))]
	}
}

// Rank replaces every pixel with an order statistic of its neighbourhood.
//
// The window covers offsets in [-radius, radius] on both axes, but only
// in-bounds neighbours are sampled; edge and corner pixels see fewer
// samples than interior ones. Each channel is sorted and selected on its
// own, so the output colour need not match any single source pixel.
//
// src is not modified. A radius larger than the image degenerates to a
// window covering the whole image.
func Rank(src *raster.Buffer, radius int, stat Statistic) *raster.Buffer {
	radius = max(radius, 0)
	width := src.Width()
	height := src.Height()
	dst := raster.MustNew(width, height)

	srcData := src.Pix()
	dstData := dst.Pix()

	side := 2*radius + 1
	capacity := min(side*side, width*height)

	parallel.Default().Rows(height, func(yStart, yEnd int) {
		samples := newChannelSamples(capacity)
		for y := yStart; y < yEnd; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, height-1)
			for x := 0; x < width; x++ {
				x0 := max(x-radius, 0)
				x1 := min(x+radius, width-1)

				samples.reset()
				for py := y0; py <= y1; py++ {
					for px := x0; px <= x1; px++ {
						samples.add(srcData, (py*width+px)*raster.BytesPerPixel)
					}
				}

				i := (y*width + x) * raster.BytesPerPixel
				samples.pick(stat, dstData[i:i+raster.BytesPerPixel])
			}
		}
	})

	return dst
}

// Tile flattens the image into blocks of side 2*radius+1.
//
// Blocks are laid out from (0, 0). When the side does not divide the image
// evenly the right column, bottom row and bottom-right corner hold smaller
// blocks, each flattened on its own. Every pixel of a block takes the
// per-channel median (lower-middle for even counts) of that block, alpha
// included.
//
// src is not modified. A radius at least as large as the image yields a
// single block.
func Tile(src *raster.Buffer, radius int) *raster.Buffer {
	radius = max(radius, 0)
	width := src.Width()
	height := src.Height()
	dst := raster.MustNew(width, height)

	srcData := src.Pix()
	dstData := dst.Pix()

	side := 2*radius + 1
	samples := newChannelSamples(min(side*side, width*height))
	var median [raster.BytesPerPixel]byte

	for by := 0; by < height; by += side {
		y1 := min(by+side, height)
		for bx := 0; bx < width; bx += side {
			x1 := min(bx+side, width)

			samples.reset()
			for py := by; py < y1; py++ {
				for px := bx; px < x1; px++ {
					samples.add(srcData, (py*width+px)*raster.BytesPerPixel)
				}
			}
			samples.pick(Median, median[:])

			for py := by; py < y1; py++ {
				for px := bx; px < x1; px++ {
					i := (py*width + px) * raster.BytesPerPixel
					copy(dstData[i:i+raster.BytesPerPixel], median[:])
				}
			}
		}
	}

	return dst
}
