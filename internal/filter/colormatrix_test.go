package filter

import (
	"testing"

	"github.com/gogpu/andie/raster"
	"github.com/stretchr/testify/assert"
)

func TestColourMatrixIdentity(t *testing.T) {
	src := createGradient(t, 4, 4)
	assert.True(t, src.Equal(IdentityColourMatrix().Apply(src)))
}

func TestInvertMatrix(t *testing.T) {
	src := setPixels(t, 2, 1, raster.Pack(128, 0, 100, 255), raster.Pack(255, 1, 2, 3))
	got := InvertMatrix().Apply(src)
	assert.Equal(t, raster.Pack(128, 255, 155, 0), got.ARGB(0, 0))
	assert.Equal(t, raster.Pack(255, 254, 253, 252), got.ARGB(1, 0))

	twice := InvertMatrix().Apply(got)
	assert.True(t, src.Equal(twice))
}

func TestGreyscaleMatrix(t *testing.T) {
	src := setPixels(t, 2, 2,
		0xFF112233, 0xFF445566,
		0x80778899, 0xFFAABBCC,
	)
	got := GreyscaleMatrix().Apply(src)
	for y := range 2 {
		for x := range 2 {
			a, r, g, b := got.ARGB(x, y).Unpack()
			sa, _, _, _ := src.ARGB(x, y).Unpack()
			assert.Equal(t, r, g)
			assert.Equal(t, g, b)
			assert.Equal(t, sa, a)
		}
	}
	// 0.3*100 + 0.6*150 + 0.1*200 = 140
	one := setPixels(t, 1, 1, raster.Pack(255, 100, 150, 200))
	assert.Equal(t, raster.Pack(255, 140, 140, 140), GreyscaleMatrix().Apply(one).ARGB(0, 0))
}

func TestSepiaMatrix(t *testing.T) {
	src := setPixels(t, 2, 1, raster.White, raster.Pack(255, 100, 50, 20))
	got := SepiaMatrix().Apply(src)
	assert.Equal(t, raster.Pack(255, 255, 255, 238), got.ARGB(0, 0))
	// R: 39.3+38.45+3.78 = 81.53, G: 34.9+34.3+3.36 = 72.56, B: 27.2+26.7+2.62 = 56.52
	assert.Equal(t, raster.Pack(255, 81, 72, 56), got.ARGB(1, 0))
}
