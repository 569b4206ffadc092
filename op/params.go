package op

import (
	"image"
	"strings"

	"github.com/pkg/errors"
)

// Axis selects a direction for Flip and SobelFilter.
type Axis uint8

const (
	// Horizontal mirrors columns (Flip) or measures the x gradient (Sobel).
	Horizontal Axis = iota
	// Vertical mirrors rows (Flip) or measures the y gradient (Sobel).
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "horizontal", "x":
		*a = Horizontal
	case "vertical", "y":
		*a = Vertical
	default:
		return errors.Wrapf(ErrInvalidOp, "unknown axis %q", text)
	}
	return nil
}

// Shape selects the figure drawn by DrawShape.
type Shape uint8

const (
	Rectangle Shape = iota // Filled rectangle
	Oval                   // Filled ellipse inscribed in the rectangle
	Line                   // One pixel line between the corners
)

var shapeNames = [...]string{
	Rectangle: "rectangle",
	Oval:      "oval",
	Line:      "line",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if int(s) >= len(shapeNames) {
		return nil, errors.Wrapf(ErrInvalidOp, "shape %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range shapeNames {
		if n == name {
			*s = Shape(i)
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidOp, "unknown shape %q", text)
}

// Channel indexes a colour channel.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

const channelLetters = "RGB"

// Permutation maps each source channel to a destination channel:
// Permutation[Red] is where the red value ends up.
type Permutation [3]Channel

// IdentityPermutation leaves channels in place.
var IdentityPermutation = Permutation{Red, Green, Blue}

// Valid reports whether p uses every channel exactly once.
func (p Permutation) Valid() bool {
	var seen [3]bool
	for _, c := range p {
		if c > Blue || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// String returns the destinations of R, G and B as letters, so "GBR"
// sends red to green, green to blue and blue to red.
func (p Permutation) String() string {
	var b [3]byte
	for i, c := range p {
		if c > Blue {
			b[i] = '?'
			continue
		}
		b[i] = channelLetters[c]
	}
	return string(b[:])
}

// ParsePermutation parses the three-letter form produced by String.
func ParsePermutation(s string) (Permutation, error) {
	var p Permutation
	if len(s) != 3 {
		return p, errors.Wrapf(ErrInvalidOp, "permutation %q", s)
	}
	for i := range 3 {
		idx := strings.IndexByte(channelLetters, s[i]&^0x20)
		if idx < 0 {
			return p, errors.Wrapf(ErrInvalidOp, "permutation %q", s)
		}
		p[i] = Channel(idx)
	}
	if !p.Valid() {
		return p, errors.Wrapf(ErrInvalidOp, "permutation %q repeats a channel", s)
	}
	return p, nil
}

// IsZero lets omitempty drop the identity permutation.
func (p Permutation) IsZero() bool {
	return p == IdentityPermutation || p == Permutation{}
}

// MarshalText implements encoding.TextMarshaler.
func (p Permutation) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.Wrapf(ErrInvalidOp, "permutation %v", [3]Channel(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Permutation) UnmarshalText(text []byte) error {
	parsed, err := ParsePermutation(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Rect is a region given by two arbitrary corner points, as dragged out
// by a pointer. Corner order is not significant.
type Rect struct {
	X0 int `yaml:"x0"`
	Y0 int `yaml:"y0"`
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
}

// Corners builds a Rect from two points.
func Corners(a, b image.Point) Rect {
	return Rect{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y}
}

// Normalize returns the rectangle with min at the smaller coordinates.
// Max is exclusive, so the width is |X1-X0|.
func (r Rect) Normalize() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

// Start returns the first corner.
func (r Rect) Start() image.Point {
	return image.Pt(r.X0, r.Y0)
}

// End returns the second corner.
func (r Rect) End() image.Point {
	return image.Pt(r.X1, r.Y1)
}
