package imaging

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/andie/raster"
)

// Affine represents a 2D affine transformation matrix in image
// coordinates (y grows downwards).
//
// The transformation is represented as a 3x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
type Affine struct {
	a, b, c float64 // First row: x' = ax + by + c
	d, e, f float64 // Second row: y' = dx + ey + f
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{a: 1, e: 1}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Scale returns a scaling about the origin. Negative factors mirror.
func Scale(sx, sy float64) Affine {
	return Affine{a: sx, e: sy}
}

// Rotate returns a rotation about the origin by angle radians.
// With y pointing down, positive angles turn clockwise on screen.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		a: cos, b: -sin,
		d: sin, e: cos,
	}
}

// Multiply returns a * other, which applies other first and then a.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		a: a.a*other.a + a.b*other.d,
		b: a.a*other.b + a.b*other.e,
		c: a.a*other.c + a.b*other.f + a.c,
		d: a.d*other.a + a.e*other.d,
		e: a.d*other.b + a.e*other.e,
		f: a.d*other.c + a.e*other.f + a.f,
	}
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular.
func (a Affine) Invert() (Affine, bool) {
	det := a.a*a.e - a.b*a.d
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}

	invDet := 1.0 / det
	return Affine{
		a: a.e * invDet,
		b: -a.b * invDet,
		c: (a.b*a.f - a.c*a.e) * invDet,
		d: -a.d * invDet,
		e: a.a * invDet,
		f: (a.c*a.d - a.a*a.f) * invDet,
	}, true
}

// TransformPoint applies the transformation to (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.a*x + a.b*y + a.c, a.d*x + a.e*y + a.f
}

// Aff3 returns the matrix in the form expected by golang.org/x/image/draw.
func (a Affine) Aff3() f64.Aff3 {
	return f64.Aff3{a.a, a.b, a.c, a.d, a.e, a.f}
}

// CentredRotation maps a w x h image rotated by angle radians about its
// centre onto a dstW x dstH canvas with the same centre.
func CentredRotation(angle float64, w, h, dstW, dstH int) Affine {
	return Translate(float64(dstW)/2, float64(dstH)/2).
		Multiply(Rotate(angle)).
		Multiply(Translate(-float64(w)/2, -float64(h)/2))
}

// Mirror returns the reflection of a w x h image about its vertical axis
// (horizontal is true) or its horizontal axis.
func Mirror(w, h int, horizontal bool) Affine {
	if horizontal {
		return Translate(float64(w), 0).Multiply(Scale(-1, 1))
	}
	return Translate(0, float64(h)).Multiply(Scale(1, -1))
}

// NearestTransform maps src through m onto a new dstW x dstH buffer using
// nearest-neighbour sampling at pixel centres. Destination pixels whose
// source falls outside src stay transparent.
//
// For transforms that take the pixel grid onto itself (quarter turns,
// mirrors) every destination pixel copies exactly one source pixel.
func NearestTransform(src *raster.Buffer, dstW, dstH int, m Affine) (*raster.Buffer, bool) {
	inv, ok := m.Invert()
	if !ok {
		return nil, false
	}

	dst := raster.MustNew(dstW, dstH)
	srcData := src.Pix()
	dstData := dst.Pix()
	width := src.Width()
	height := src.Height()

	for y := range dstH {
		for x := range dstW {
			sx, sy := inv.TransformPoint(float64(x)+0.5, float64(y)+0.5)
			px := int(math.Floor(sx))
			py := int(math.Floor(sy))
			if px < 0 || py < 0 || px >= width || py >= height {
				continue
			}
			si := (py*width + px) * raster.BytesPerPixel
			di := (y*dstW + x) * raster.BytesPerPixel
			copy(dstData[di:di+raster.BytesPerPixel], srcData[si:si+raster.BytesPerPixel])
		}
	}
	return dst, true
}
