package filter

import (
	"github.com/gogpu/andie/internal/parallel"
	"github.com/gogpu/andie/raster"
)

// recenterOffset is added to half the raw response of a recentered
// convolution, so a zero response lands mid-range.
const recenterOffset = 127

// Convolve applies a square kernel to src and returns a new buffer of the
// same dimensions. src is not modified.
//
// Samples outside the image reuse the nearest edge pixel. Each of the four
// channels accumulates sample*weight in float32; zero weights are skipped.
//
// When recenter is false every channel is clamped to [0, 255]. When recenter
// is true the colour channels are mapped through v/2 + 127 before clamping,
// which brings signed responses (edge and emboss kernels) into the
// displayable range; alpha is clamped unshifted.
//
// Rows are computed in bands on the shared worker pool.
func Convolve(src *raster.Buffer, k Kernel, recenter bool) *raster.Buffer {
	width := src.Width()
	height := src.Height()
	dst := raster.MustNew(width, height)

	srcData := src.Pix()
	dstData := dst.Pix()

	parallel.Default().Rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			convolveRow(srcData, dstData, width, height, y, k, recenter)
		}
	})

	return dst
}

// convolveRow writes row y of dst.
func convolveRow(srcData, dstData []byte, width, height, y int, k Kernel, recenter bool) {
	side := k.Side()
	radius := k.Radius

	for x := 0; x < width; x++ {
		var r, g, b, a float32

		for ky := -radius; ky <= radius; ky++ {
			// Clamp to source bounds (edge extension)
			py := min(max(y+ky, 0), height-1)
			row := (ky + radius) * side

			for kx := -radius; kx <= radius; kx++ {
				weight := k.Weights[row+kx+radius]
				if weight == 0 {
					continue
				}
				px := min(max(x+kx, 0), width-1)

				srcIdx := (py*width + px) * raster.BytesPerPixel
				r += float32(srcData[srcIdx+0]) * weight
				g += float32(srcData[srcIdx+1]) * weight
				b += float32(srcData[srcIdx+2]) * weight
				a += float32(srcData[srcIdx+3]) * weight
			}
		}

		if recenter {
			r = r/2 + recenterOffset
			g = g/2 + recenterOffset
			b = b/2 + recenterOffset
		}

		dstIdx := (y*width + x) * raster.BytesPerPixel
		dstData[dstIdx+0] = raster.ClampByte(r)
		dstData[dstIdx+1] = raster.ClampByte(g)
		dstData[dstIdx+2] = raster.ClampByte(b)
		dstData[dstIdx+3] = raster.ClampByte(a)
	}
}

// CopyAlpha overwrites the alpha channel of dst with that of src. The
// buffers must have the same dimensions.
func CopyAlpha(dst, src *raster.Buffer) {
	d := dst.Pix()
	s := src.Pix()
	for i := 3; i < len(d) && i < len(s); i += raster.BytesPerPixel {
		d[i] = s[i]
	}
}

// Relief convolves src with an edge or emboss kernel in recentered mode
// and keeps the source alpha. A zero-sum kernel sums alpha to zero too,
// which would otherwise leave an opaque image fully transparent.
func Relief(src *raster.Buffer, k Kernel) *raster.Buffer {
	dst := Convolve(src, k, true)
	CopyAlpha(dst, src)
	return dst
}
