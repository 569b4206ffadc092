package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Colour is a non-premultiplied colour packed as 0xAARRGGBB.
type Colour uint32

// Common colours.
const (
	Transparent Colour = 0x00000000
	Black       Colour = 0xFF000000
	White       Colour = 0xFFFFFFFF
	Red         Colour = 0xFFFF0000
	Green       Colour = 0xFF00FF00
	Blue        Colour = 0xFF0000FF
)

// ErrInvalidColour is returned when a colour string cannot be parsed.
var ErrInvalidColour = errors.New("raster: invalid colour")

// Pack builds a colour from its alpha, red, green and blue channels.
func Pack(a, r, g, b uint8) Colour {
	return Colour(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Unpack returns the alpha, red, green and blue channels.
func (c Colour) Unpack() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// A returns the alpha channel.
func (c Colour) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Colour) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Colour) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Colour) B() uint8 { return uint8(c) }

// NRGBA converts the colour to a standard library colour.
func (c Colour) NRGBA() color.NRGBA {
	a, r, g, b := c.Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts any standard library colour.
func FromColor(c color.Color) Colour {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.A, n.R, n.G, n.B)
}

// String returns the colour as #AARRGGBB.
func (c Colour) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts #RRGGBB (opaque) and #AARRGGBB.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColour parses #RRGGBB or #AARRGGBB. The leading '#' is optional.
func ParseColour(s string) (Colour, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6, 8:
	default:
		return 0, errors.Wrapf(ErrInvalidColour, "%q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidColour, "%q", s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return Colour(v), nil
}
