package op

import (
	"github.com/pkg/errors"

	"github.com/gogpu/andie/internal/filter"
	"github.com/gogpu/andie/raster"
)

// Transform applies the operation to src and returns the result.
//
// src is never modified, so a failed Transform leaves the caller's buffer
// intact. Geometric operations return a buffer of a different size; all
// others keep the dimensions of src.
//
// A RandomScattering with a zero Seed draws from a source seeded with
// zero; callers wanting a fresh pattern choose a seed first.
func (o Op) Transform(src *raster.Buffer) (*raster.Buffer, error) {
	if src == nil {
		return nil, errors.Wrapf(ErrInvalidOp, "%s: no input buffer", o.Kind)
	}

	switch o.Kind {
	// Colour adjustments
	case KindBrightnessContrast:
		return brightnessContrast(src, o.Brightness, o.Contrast), nil
	case KindInvertColour:
		return invertMatrix.Apply(src), nil
	case KindConvertToGrey:
		return greyMatrix.Apply(src), nil
	case KindCycleColour:
		return cycleColour(src, o.Perm)
	case KindSaturate:
		return saturate(src, o.Amount), nil
	case KindSepiaTone:
		return sepiaMatrix.Apply(src), nil
	case KindVignette:
		return vignette(src), nil

	// Convolution and rank filters
	case KindMeanFilter:
		return filter.Convolve(src, filter.MeanKernel(o.Radius), false), nil
	case KindMedianFilter:
		return filter.Rank(src, o.Radius, filter.Median), nil
	case KindGaussianBlur:
		return filter.Convolve(src, filter.CachedGaussianKernel(o.Radius), false), nil
	case KindSoftBlur:
		return filter.Convolve(src, filter.SoftBlurKernel(), false), nil
	case KindSharpenFilter:
		return filter.Convolve(src, filter.SharpenKernel(), false), nil
	case KindEmbossFilter:
		return filter.Relief(src, filter.EmbossKernel(o.Direction)), nil
	case KindSobelFilter:
		return filter.Relief(src, filter.SobelKernel(int(o.Axis))), nil
	case KindTileFilter:
		return filter.Tile(src, o.Radius), nil
	case KindMinimumFilter:
		return filter.Rank(src, o.Radius, filter.Minimum), nil
	case KindMaximumFilter:
		return filter.Rank(src, o.Radius, filter.Maximum), nil
	case KindRandomScattering:
		return Scatter(src, o.Radius, NewRand(o.Seed)), nil

	// Geometry
	case KindResize:
		w, h, err := o.resizeTarget(src.Width(), src.Height())
		if err != nil {
			return nil, err
		}
		return scale(src, w, h)
	case KindRotate:
		return rotate(src, o.Angle)
	case KindFlip:
		return flip(src, o.Axis), nil
	case KindCrop:
		return crop(src, o.Rect)

	// Overlays
	case KindDrawShape:
		return drawShape(src, o.Shape, o.Rect, o.Colour)
	case KindDrawText:
		return drawText(src, o)

	default:
		return nil, errors.Wrapf(ErrInvalidOp, "unknown kind %d", uint8(o.Kind))
	}
}

// ChangesGeometry reports whether the operation may change the image size.
func (o Op) ChangesGeometry() bool {
	switch o.Kind {
	case KindResize, KindRotate, KindCrop:
		return true
	default:
		return false
	}
}
