package op

import (
	"math"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/gogpu/andie/internal/imaging"
	"github.com/gogpu/andie/raster"
)

// resizeTarget returns the output size of a Resize on a w x h image.
// Percentages truncate, but never below one pixel.
func (o Op) resizeTarget(w, h int) (int, int, error) {
	if o.Percentage > 0 {
		scale := o.Percentage / 100
		return max(int(float64(w)*scale), 1), max(int(float64(h)*scale), 1), nil
	}
	if o.Percentage < 0 || o.Width <= 0 || o.Height <= 0 {
		return 0, 0, errors.Wrapf(ErrInvalidOp, "resize target %gpct %dx%d", o.Percentage, o.Width, o.Height)
	}
	return o.Width, o.Height, nil
}

// scale resamples src to w x h. Shrinking in either direction averages the
// source pixels whose centres fall inside each output pixel (a box filter
// widened by the reduction factor). Growing uses Catmull-Rom interpolation.
func scale(src *raster.Buffer, w, h int) (*raster.Buffer, error) {
	if w == src.Width() && h == src.Height() {
		return src.Clone(), nil
	}

	if w < src.Width() || h < src.Height() {
		out := resize.Resize(uint(w), uint(h), src.NRGBA(), resize.NearestNeighbor)
		return raster.FromImage(out)
	}

	dst := raster.MustNew(w, h)
	draw.CatmullRom.Scale(dst.NRGBA(), dst.Bounds(), src.NRGBA(), src.Bounds(), draw.Src, nil)
	return dst, nil
}

// rotatedSize returns the bounding box of a w x h image turned by rad.
func rotatedSize(w, h int, rad float64) (int, int) {
	sin := math.Abs(math.Sin(rad))
	cos := math.Abs(math.Cos(rad))
	const eps = 1e-9
	nw := int(math.Floor(float64(w)*cos + float64(h)*sin + eps))
	nh := int(math.Floor(float64(h)*cos + float64(w)*sin + eps))
	return max(nw, 1), max(nh, 1)
}

// rotate turns src clockwise by degrees about its centre onto a canvas
// large enough to hold the result. Quarter turns move pixels exactly;
// other angles sample bilinearly and leave uncovered corners transparent.
func rotate(src *raster.Buffer, degrees float64) (*raster.Buffer, error) {
	turns := math.Mod(degrees, 360)
	if turns < 0 {
		turns += 360
	}
	rad := turns * math.Pi / 180
	nw, nh := rotatedSize(src.Width(), src.Height(), rad)
	m := imaging.CentredRotation(rad, src.Width(), src.Height(), nw, nh)

	if math.Mod(turns, 90) == 0 {
		dst, ok := imaging.NearestTransform(src, nw, nh, m)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidOp, "rotate %g", degrees)
		}
		return dst, nil
	}

	dst := raster.MustNew(nw, nh)
	draw.BiLinear.Transform(dst.NRGBA(), m.Aff3(), src.NRGBA(), src.Bounds(), draw.Src, nil)
	return dst, nil
}

func flip(src *raster.Buffer, axis Axis) *raster.Buffer {
	m := imaging.Mirror(src.Width(), src.Height(), axis == Horizontal)
	dst, _ := imaging.NearestTransform(src, src.Width(), src.Height(), m)
	return dst
}

// crop copies the normalized rectangle out of src.
func crop(src *raster.Buffer, r Rect) (*raster.Buffer, error) {
	rect := r.Normalize()
	if rect.Empty() || !rect.In(src.Bounds()) {
		return nil, errors.Wrapf(ErrGeometry, "crop %v of %v", rect, src.Bounds())
	}

	dst := raster.MustNew(rect.Dx(), rect.Dy())
	draw.Draw(dst.NRGBA(), dst.Bounds(), src.NRGBA(), rect.Min, draw.Src)
	return dst, nil
}
