// Package raster provides the pixel buffer that every editing operation
// reads from and writes to.
//
// A Buffer is an owned, fixed-size grid of non-premultiplied ARGB samples.
// Pixels are stored contiguously, four bytes per pixel in R, G, B, A order,
// which is the same layout as [image.NRGBA]. This lets drawing libraries work
// on a Buffer through [Buffer.NRGBA] without copying.
//
// Thread safety: a Buffer has a single owner at a time and is not safe for
// concurrent mutation.
package raster

import (
	"bytes"
	"image"

	"github.com/pkg/errors"
)

// BytesPerPixel is the number of bytes used by one pixel.
const BytesPerPixel = 4

// Common errors for buffer construction and access.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside the buffer.
	ErrOutOfBounds = errors.New("raster: coordinates out of bounds")
)

// Buffer is a fixed-size grid of ARGB pixels.
//
// The zero value is not usable; create buffers with [New] or [FromImage].
type Buffer struct {
	pix    []byte
	width  int
	height int
}

// New creates a transparent black buffer with the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	return &Buffer{
		pix:    make([]byte, width*height*BytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// MustNew is like New but panics on invalid dimensions.
// It is intended for fixtures and for callers that derived the
// dimensions from an existing buffer.
func MustNew(width, height int) *Buffer {
	b, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// NewFilled creates a buffer with every pixel set to c.
func NewFilled(width, height int, c Colour) (*Buffer, error) {
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}
	b.Fill(c)
	return b, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{
		pix:    pix,
		width:  b.width,
		height: b.height,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the buffer rectangle, anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Pix returns the raw pixel data. Row y starts at offset y*Stride().
func (b *Buffer) Pix() []byte {
	return b.pix
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.width * BytesPerPixel
}

// PixelOffset returns the byte offset of pixel (x, y), or -1 when the
// coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if !b.In(x, y) {
		return -1
	}
	return (y*b.width + x) * BytesPerPixel
}

// RGBA returns the channels of pixel (x, y).
// Out-of-bounds reads return transparent black.
func (b *Buffer) RGBA(x, y int) (r, g, bl, a uint8) {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return 0, 0, 0, 0
	}
	p := b.pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// SetRGBA sets the channels of pixel (x, y).
func (b *Buffer) SetRGBA(x, y int, r, g, bl, a uint8) error {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return ErrOutOfBounds
	}
	p := b.pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = r, g, bl, a
	return nil
}

// ARGB returns pixel (x, y) packed as 0xAARRGGBB.
func (b *Buffer) ARGB(x, y int) Colour {
	r, g, bl, a := b.RGBA(x, y)
	return Pack(a, r, g, bl)
}

// SetARGB sets pixel (x, y) from a packed colour.
func (b *Buffer) SetARGB(x, y int, c Colour) error {
	a, r, g, bl := c.Unpack()
	return b.SetRGBA(x, y, r, g, bl, a)
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Colour) {
	a, r, g, bl := c.Unpack()
	for i := 0; i < len(b.pix); i += BytesPerPixel {
		b.pix[i] = r
		b.pix[i+1] = g
		b.pix[i+2] = bl
		b.pix[i+3] = a
	}
}

// Equal reports whether both buffers have the same dimensions and pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.width == other.width && b.height == other.height && bytes.Equal(b.pix, other.pix)
}

// NRGBA returns an [image.NRGBA] that shares the buffer's pixels.
// Drawing into the returned image mutates the buffer.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.pix,
		Stride: b.Stride(),
		Rect:   b.Bounds(),
	}
}
