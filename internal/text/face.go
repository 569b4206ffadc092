// Package text lays out and rasterizes strings for the DrawText operation.
//
// Layout uses HarfBuzz shaping from go-text/typesetting so glyph advances
// include kerning. Glyph masks come from golang.org/x/image/font/opentype.
// Both use the bundled Go Regular font.
package text

import (
	"bytes"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrFont is returned when the bundled font cannot be loaded.
var ErrFont = errors.New("text: font unavailable")

// DefaultSize is the font size used when none is given, in pixels.
const DefaultSize = 24

// parsedFonts holds both parsed forms of Go Regular. Parsed fonts are
// read-only and shared.
type parsedFonts struct {
	outline *opentype.Font
	shaping *gotext.Font
}

var loadFonts = sync.OnceValues(func() (*parsedFonts, error) {
	outline, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(ErrFont, err.Error())
	}
	face, err := gotext.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(ErrFont, err.Error())
	}
	return &parsedFonts{outline: outline, shaping: face.Font}, nil
})

// Face is Go Regular at one pixel size.
// A Face is not safe for concurrent use.
type Face struct {
	size    float64
	outline font.Face
	shaping *gotext.Face
}

// NewFace returns a face of the given pixel size. Non-positive sizes
// select DefaultSize.
func NewFace(size float64) (*Face, error) {
	if size <= 0 {
		size = DefaultSize
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	outline, err := opentype.NewFace(fonts.outline, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(ErrFont, err.Error())
	}

	return &Face{
		size:    size,
		outline: outline,
		shaping: gotext.NewFace(fonts.shaping),
	}, nil
}

// Size returns the pixel size.
func (f *Face) Size() float64 {
	return f.size
}

// LineHeight returns the distance between consecutive baselines in pixels.
func (f *Face) LineHeight() int {
	return f.outline.Metrics().Height.Ceil()
}

// Close releases the rasterizer.
func (f *Face) Close() error {
	return f.outline.Close()
}
