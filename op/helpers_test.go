package op

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/andie/raster"
)

// Test helper functions shared across op tests.

func filled(t *testing.T, w, h int, c raster.Colour) *raster.Buffer {
	t.Helper()
	b, err := raster.NewFilled(w, h, c)
	require.NoError(t, err)
	return b
}

// gradient returns a w x h buffer in which every pixel is distinct.
func gradient(t *testing.T, w, h int) *raster.Buffer {
	t.Helper()
	b := raster.MustNew(w, h)
	for y := range h {
		for x := range w {
			require.NoError(t, b.SetRGBA(x, y, uint8(x*13), uint8(y*29), uint8((x+y)*7), 255))
		}
	}
	return b
}

func pixels(t *testing.T, w, h int, colours ...raster.Colour) *raster.Buffer {
	t.Helper()
	require.Len(t, colours, w*h)
	b := raster.MustNew(w, h)
	for i, c := range colours {
		require.NoError(t, b.SetARGB(i%w, i/w, c))
	}
	return b
}

func mustTransform(t *testing.T, o Op, src *raster.Buffer) *raster.Buffer {
	t.Helper()
	out, err := o.Transform(src)
	require.NoError(t, err, o.String())
	require.NotNil(t, out)
	return out
}

// sampleOps returns one representative operation of every kind.
func sampleOps() []Op {
	return []Op{
		BrightnessContrast(20, -30),
		InvertColour(),
		ConvertToGrey(),
		CycleColour(Permutation{Green, Blue, Red}),
		Saturate(1.5),
		SepiaTone(),
		Vignette(),
		MeanFilter(1),
		MedianFilter(2),
		GaussianBlur(2),
		SoftBlur(),
		SharpenFilter(),
		EmbossFilter(3),
		SobelFilter(Vertical),
		TileFilter(1),
		MinimumFilter(1),
		MaximumFilter(1),
		RandomScattering(2, 42),
		ResizePercent(50),
		Rotate(90),
		Flip(Horizontal),
		Crop(Rect{X0: 4, Y0: 1, X1: 1, Y1: 3}),
		DrawShape(Oval, Rect{X0: 1, Y0: 1, X1: 5, Y1: 4}, raster.Red),
		DrawText("Hi", Rect{X0: 0, Y0: 5}, raster.Blue, 8),
	}
}
