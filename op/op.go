// Package op defines the editing operations of the image editor.
//
// An [Op] is plain data: a [Kind] tag plus the parameters needed to
// reproduce its effect. It never refers to the image it acts on, so an
// ordered list of operations can be written to a log and replayed later,
// possibly against a different image. [Op.Transform] is the single
// dispatch point that turns an Op and an input buffer into a new buffer.
//
// Operations are built with the constructors in this package, which clamp
// parameters into their documented ranges:
//
//	blur := op.GaussianBlur(3)
//	out, err := blur.Transform(buf)
package op

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/andie/internal/filter"
	"github.com/gogpu/andie/internal/text"
	"github.com/gogpu/andie/raster"
)

// Op is one editing operation. Only the fields used by its Kind are
// meaningful; the rest stay zero and are omitted from logs.
type Op struct {
	Kind Kind `yaml:"kind"`

	// Radius is the neighbourhood radius of filters and scattering.
	Radius int `yaml:"radius,omitempty"`

	// Brightness and Contrast are percentages in [-100, 100].
	Brightness int `yaml:"brightness,omitempty"`
	Contrast   int `yaml:"contrast,omitempty"`

	// Amount is the saturation multiplier in [0, 2].
	Amount float32 `yaml:"amount,omitempty"`

	// Perm is the CycleColour channel mapping.
	Perm Permutation `yaml:"perm,omitempty"`

	// Direction selects one of the emboss kernels, 0 to 7.
	Direction int `yaml:"direction,omitempty"`

	// Axis is the Flip mirror axis or the Sobel gradient axis.
	Axis Axis `yaml:"axis,omitempty"`

	// Percentage scales both dimensions when positive. Otherwise Width
	// and Height give the target size.
	Percentage float64 `yaml:"percentage,omitempty"`
	Width      int     `yaml:"width,omitempty"`
	Height     int     `yaml:"height,omitempty"`

	// Angle is the clockwise rotation in degrees.
	Angle float64 `yaml:"angle,omitempty"`

	// Rect is the crop, shape or text region.
	Rect Rect `yaml:"rect,omitempty"`

	Shape    Shape         `yaml:"shape,omitempty"`
	Colour   raster.Colour `yaml:"colour,omitempty"`
	Text     string        `yaml:"text,omitempty"`
	FontSize float64       `yaml:"font_size,omitempty"`

	// Seed fixes the random source of RandomScattering. Zero means the
	// caller has not chosen one yet.
	Seed uint64 `yaml:"seed,omitempty"`
}

// DefaultRadius is used by radius filters when none is given.
const DefaultRadius = 1

// Parameter limits.
const (
	MaxAdjustment = 100
	MaxSaturation = 2
)

// BrightnessContrast adjusts brightness and contrast by percentages in
// [-100, 100].
func BrightnessContrast(brightness, contrast int) Op {
	return Op{Kind: KindBrightnessContrast, Brightness: brightness, Contrast: contrast}.normalize()
}

// InvertColour replaces every colour channel v with 255-v.
func InvertColour() Op { return Op{Kind: KindInvertColour} }

// ConvertToGrey replaces colours with their weighted luminance.
func ConvertToGrey() Op { return Op{Kind: KindConvertToGrey} }

// CycleColour moves the colour channels according to perm.
func CycleColour(perm Permutation) Op {
	return Op{Kind: KindCycleColour, Perm: perm}.normalize()
}

// Saturate scales HSB saturation by amount in [0, 2].
func Saturate(amount float32) Op {
	return Op{Kind: KindSaturate, Amount: amount}.normalize()
}

// SepiaTone applies the sepia colour matrix.
func SepiaTone() Op { return Op{Kind: KindSepiaTone} }

// Vignette darkens the image towards the corners.
func Vignette() Op { return Op{Kind: KindVignette} }

// MeanFilter blurs with a box kernel.
func MeanFilter(radius int) Op { return radiusOp(KindMeanFilter, radius) }

// MedianFilter takes the per-channel median of each neighbourhood.
func MedianFilter(radius int) Op { return radiusOp(KindMedianFilter, radius) }

// GaussianBlur blurs with a Gaussian kernel whose sigma is radius/3.
func GaussianBlur(radius int) Op { return radiusOp(KindGaussianBlur, radius) }

// SoftBlur applies the fixed 3x3 soft blur.
func SoftBlur() Op { return Op{Kind: KindSoftBlur} }

// SharpenFilter applies the fixed 3x3 sharpen kernel.
func SharpenFilter() Op { return Op{Kind: KindSharpenFilter} }

// EmbossFilter embosses along one of eight directions.
func EmbossFilter(direction int) Op {
	return Op{Kind: KindEmbossFilter, Direction: direction}.normalize()
}

// SobelFilter detects edges along axis.
func SobelFilter(axis Axis) Op {
	return Op{Kind: KindSobelFilter, Axis: axis}.normalize()
}

// TileFilter flattens the image into blocks of side 2*radius+1.
func TileFilter(radius int) Op { return radiusOp(KindTileFilter, radius) }

// MinimumFilter takes the per-channel minimum of each neighbourhood.
func MinimumFilter(radius int) Op { return radiusOp(KindMinimumFilter, radius) }

// MaximumFilter takes the per-channel maximum of each neighbourhood.
func MaximumFilter(radius int) Op { return radiusOp(KindMaximumFilter, radius) }

// RandomScattering replaces each pixel with a random neighbour. A zero
// seed is filled in when the operation is applied.
func RandomScattering(radius int, seed uint64) Op {
	o := radiusOp(KindRandomScattering, radius)
	o.Seed = seed
	return o
}

// ResizePercent scales both dimensions by percentage.
func ResizePercent(percentage float64) Op {
	return Op{Kind: KindResize, Percentage: percentage}
}

// ResizeTo scales the image to width x height.
func ResizeTo(width, height int) Op {
	return Op{Kind: KindResize, Width: width, Height: height}
}

// Rotate turns the image clockwise by degrees.
func Rotate(degrees float64) Op {
	return Op{Kind: KindRotate, Angle: degrees}
}

// Flip mirrors the image about axis.
func Flip(axis Axis) Op {
	return Op{Kind: KindFlip, Axis: axis}.normalize()
}

// Crop keeps the region spanned by two corners.
func Crop(r Rect) Op {
	return Op{Kind: KindCrop, Rect: r}
}

// DrawShape paints shape in colour c over the region r.
func DrawShape(shape Shape, r Rect, c raster.Colour) Op {
	return Op{Kind: KindDrawShape, Shape: shape, Rect: r, Colour: c}
}

// DrawText paints s in colour c with its baseline starting at the
// top-left corner of r. Non-positive sizes select the default size.
func DrawText(s string, r Rect, c raster.Colour, size float64) Op {
	return Op{Kind: KindDrawText, Text: s, Rect: r, Colour: c, FontSize: size}.normalize()
}

func radiusOp(k Kind, radius int) Op {
	return Op{Kind: k, Radius: radius}.normalize()
}

// normalize clamps parameters into range. It is applied by constructors
// and to every decoded log entry.
func (o Op) normalize() Op {
	switch o.Kind {
	case KindBrightnessContrast:
		o.Brightness = raster.ClampInt(o.Brightness, -MaxAdjustment, MaxAdjustment)
		o.Contrast = raster.ClampInt(o.Contrast, -MaxAdjustment, MaxAdjustment)
	case KindCycleColour:
		if o.Perm == (Permutation{}) {
			o.Perm = IdentityPermutation
		}
	case KindSaturate:
		o.Amount = min(max(o.Amount, 0), MaxSaturation)
	case KindEmbossFilter:
		o.Direction = raster.ClampInt(o.Direction, 0, filter.EmbossDirections-1)
	case KindSobelFilter, KindFlip:
		o.Axis = min(o.Axis, Vertical)
	case KindMeanFilter, KindMedianFilter, KindGaussianBlur, KindTileFilter,
		KindMinimumFilter, KindMaximumFilter, KindRandomScattering:
		o.Radius = max(o.Radius, 0)
	case KindDrawText:
		if o.FontSize <= 0 {
			o.FontSize = text.DefaultSize
		}
	}
	return o
}

// String returns a one-line description of the operation.
func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Kind.String())

	switch o.Kind {
	case KindBrightnessContrast:
		fmt.Fprintf(&b, "(brightness=%d, contrast=%d)", o.Brightness, o.Contrast)
	case KindCycleColour:
		fmt.Fprintf(&b, "(%s)", o.Perm)
	case KindSaturate:
		fmt.Fprintf(&b, "(amount=%g)", o.Amount)
	case KindMeanFilter, KindMedianFilter, KindGaussianBlur, KindTileFilter,
		KindMinimumFilter, KindMaximumFilter:
		fmt.Fprintf(&b, "(radius=%d)", o.Radius)
	case KindRandomScattering:
		fmt.Fprintf(&b, "(radius=%d, seed=%d)", o.Radius, o.Seed)
	case KindEmbossFilter:
		fmt.Fprintf(&b, "(direction=%d)", o.Direction)
	case KindSobelFilter, KindFlip:
		fmt.Fprintf(&b, "(%s)", o.Axis)
	case KindResize:
		if o.Percentage > 0 {
			fmt.Fprintf(&b, "(%g%%)", o.Percentage)
		} else {
			fmt.Fprintf(&b, "(%dx%d)", o.Width, o.Height)
		}
	case KindRotate:
		fmt.Fprintf(&b, "(%g°)", o.Angle)
	case KindCrop:
		fmt.Fprintf(&b, "(%v)", o.Rect.Normalize())
	case KindDrawShape:
		fmt.Fprintf(&b, "(%s %v %s)", o.Shape, o.Rect.Normalize(), o.Colour)
	case KindDrawText:
		fmt.Fprintf(&b, "(%q at %v %s %gpx)", o.Text, o.Rect.Normalize().Min, o.Colour, o.FontSize)
	}
	return b.String()
}

// textOrigin returns the baseline origin used by DrawText.
func (o Op) textOrigin() image.Point {
	return o.Rect.Normalize().Min
}
