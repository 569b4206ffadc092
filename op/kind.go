package op

import (
	"github.com/pkg/errors"
)

// Kind identifies an editing operation.
// Each kind corresponds to one transform with its own parameter set.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Colour adjustments
	KindBrightnessContrast // Linear brightness and contrast
	KindInvertColour       // 255 - v per colour channel
	KindConvertToGrey      // Weighted luminance
	KindCycleColour        // Permute R, G and B
	KindSaturate           // Scale HSB saturation
	KindSepiaTone          // Fixed sepia matrix
	KindVignette           // Radial darkening

	// Convolution and rank filters
	KindMeanFilter       // Box blur
	KindMedianFilter     // Per-channel median
	KindGaussianBlur     // Gaussian blur
	KindSoftBlur         // Fixed 3x3 blur
	KindSharpenFilter    // Fixed 3x3 sharpen
	KindEmbossFilter     // Directional emboss, recentered
	KindSobelFilter      // Edge detection, recentered
	KindTileFilter       // Block median
	KindMinimumFilter    // Per-channel minimum
	KindMaximumFilter    // Per-channel maximum
	KindRandomScattering // Random neighbour copy

	// Geometry
	KindResize // Scale by percentage or to a size
	KindRotate // Rotate clockwise about the centre
	KindFlip   // Mirror about an axis
	KindCrop   // Cut a rectangle

	// Overlays
	KindDrawShape // Rectangle, oval or line
	KindDrawText  // String at a point
)

// kindNames maps Kind values to their stable string representation.
// The names are written to operation logs and must not change.
var kindNames = [...]string{
	KindInvalid:            "Invalid",
	KindBrightnessContrast: "BrightnessContrast",
	KindInvertColour:       "InvertColour",
	KindConvertToGrey:      "ConvertToGrey",
	KindCycleColour:        "CycleColour",
	KindSaturate:           "Saturate",
	KindSepiaTone:          "SepiaTone",
	KindVignette:           "Vignette",
	KindMeanFilter:         "MeanFilter",
	KindMedianFilter:       "MedianFilter",
	KindGaussianBlur:       "GaussianBlur",
	KindSoftBlur:           "SoftBlur",
	KindSharpenFilter:      "SharpenFilter",
	KindEmbossFilter:       "EmbossFilter",
	KindSobelFilter:        "SobelFilter",
	KindTileFilter:         "TileFilter",
	KindMinimumFilter:      "MinimumFilter",
	KindMaximumFilter:      "MaximumFilter",
	KindRandomScattering:   "RandomScattering",
	KindResize:             "Resize",
	KindRotate:             "Rotate",
	KindFlip:               "Flip",
	KindCrop:               "Crop",
	KindDrawShape:          "DrawShape",
	KindDrawText:           "DrawText",
}

// kindCount is one past the last valid Kind.
const kindCount = Kind(len(kindNames))

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k names an operation.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k := KindInvalid + 1; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindInvalid, errors.Wrapf(ErrInvalidOp, "unknown kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Wrapf(ErrInvalidOp, "kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
