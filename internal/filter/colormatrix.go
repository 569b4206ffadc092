package filter

import (
	"math"

	"github.com/gogpu/andie/raster"
)

// ColourMatrix applies a 3x4 affine colour transformation to the RGB
// channels of an image. Alpha passes through unchanged.
// The transformation is:
//
//	[R']   [m00 m01 m02 m03]   [R]
//	[G'] = [m10 m11 m12 m13] * [G]
//	[B']   [m20 m21 m22 m23]   [B]
//	                           [1]
//
// The fourth column provides bias values. Channel values stay in the
// [0, 255] range during transformation and are clamped afterwards.
type ColourMatrix struct {
	// Matrix is row-major: [0-3] = R, [4-7] = G, [8-11] = B.
	Matrix [12]float64

	// Round selects round-half-up instead of truncation when converting
	// the result back to a byte.
	Round bool
}

// IdentityColourMatrix returns a matrix that leaves colours unchanged.
func IdentityColourMatrix() ColourMatrix {
	return ColourMatrix{
		Matrix: [12]float64{
			1, 0, 0, 0, // R
			0, 1, 0, 0, // G
			0, 0, 1, 0, // B
		},
	}
}

// GreyscaleMatrix returns the weighted-luminance grey conversion
// round(0.3R + 0.6G + 0.1B).
func GreyscaleMatrix() ColourMatrix {
	return ColourMatrix{
		Matrix: [12]float64{
			0.3, 0.6, 0.1, 0,
			0.3, 0.6, 0.1, 0,
			0.3, 0.6, 0.1, 0,
		},
		Round: true,
	}
}

// SepiaMatrix returns the sepia tone transform.
func SepiaMatrix() ColourMatrix {
	return ColourMatrix{
		Matrix: [12]float64{
			0.393, 0.769, 0.189, 0,
			0.349, 0.686, 0.168, 0,
			0.272, 0.534, 0.131, 0,
		},
	}
}

// InvertMatrix returns the transform v' = 255 - v.
func InvertMatrix() ColourMatrix {
	return ColourMatrix{
		Matrix: [12]float64{
			-1, 0, 0, 255,
			0, -1, 0, 255,
			0, 0, -1, 255,
		},
	}
}

// Apply transforms every pixel of src into a new buffer.
func (m ColourMatrix) Apply(src *raster.Buffer) *raster.Buffer {
	dst := src.Clone()
	data := dst.Pix()
	mat := &m.Matrix

	for i := 0; i < len(data); i += raster.BytesPerPixel {
		r := float64(data[i+0])
		g := float64(data[i+1])
		b := float64(data[i+2])

		data[i+0] = m.toByte(mat[0]*r + mat[1]*g + mat[2]*b + mat[3])
		data[i+1] = m.toByte(mat[4]*r + mat[5]*g + mat[6]*b + mat[7])
		data[i+2] = m.toByte(mat[8]*r + mat[9]*g + mat[10]*b + mat[11])
	}
	return dst
}

func (m ColourMatrix) toByte(v float64) uint8 {
	if m.Round {
		v = math.Floor(v + 0.5)
	}
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
