package filter

import (
	"testing"

	"github.com/gogpu/andie/raster"
	"github.com/stretchr/testify/require"
)

// Test helper functions shared across filter tests.

// createTestBuffer creates a buffer filled with the given colour.
func createTestBuffer(t *testing.T, w, h int, c raster.Colour) *raster.Buffer {
	t.Helper()
	b, err := raster.NewFilled(w, h, c)
	require.NoError(t, err)
	return b
}

// createGradient creates a buffer whose channels vary with position, so
// that every pixel is distinct.
func createGradient(t *testing.T, w, h int) *raster.Buffer {
	t.Helper()
	b := raster.MustNew(w, h)
	for y := range h {
		for x := range w {
			v := uint8((y*w + x) * 255 / max(w*h-1, 1))
			require.NoError(t, b.SetRGBA(x, y, v, 255-v, uint8(x*17), 255))
		}
	}
	return b
}

// setPixels writes a row-major list of colours into a w-wide buffer.
func setPixels(t *testing.T, w, h int, colours ...raster.Colour) *raster.Buffer {
	t.Helper()
	require.Len(t, colours, w*h)
	b := raster.MustNew(w, h)
	for i, c := range colours {
		require.NoError(t, b.SetARGB(i%w, i/w, c))
	}
	return b
}

// requireUniform asserts every pixel of b equals want.
func requireUniform(t *testing.T, b *raster.Buffer, want raster.Colour) {
	t.Helper()
	for y := range b.Height() {
		for x := range b.Width() {
			require.Equal(t, want, b.ARGB(x, y), "pixel (%d,%d)", x, y)
		}
	}
}
