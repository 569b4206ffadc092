package imaging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/andie/raster"
)

func testImage(t *testing.T) *raster.Buffer {
	t.Helper()
	b := raster.MustNew(5, 3)
	for y := range 3 {
		for x := range 5 {
			require.NoError(t, b.SetRGBA(x, y, uint8(x*50), uint8(y*100), 77, 255))
		}
	}
	return b
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.png", FormatPNG},
		{"a.PNG", FormatPNG},
		{"dir/b.jpg", FormatJPEG},
		{"b.jpeg", FormatJPEG},
		{"c.gif", FormatGIF},
		{"d.bmp", FormatBMP},
		{"e.tif", FormatTIFF},
		{"e.tiff", FormatTIFF},
		{"f.webp", FormatWebP},
		{"g.txt", FormatUnknown},
		{"noext", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestEncoderFor(t *testing.T) {
	_, err := EncoderFor("x.webp")
	assert.True(t, errors.Is(err, ErrEncode))

	_, err = EncoderFor("x.xyz")
	assert.True(t, errors.Is(err, ErrEncode))

	f, err := EncoderFor("x.tiff")
	require.NoError(t, err)
	assert.Equal(t, FormatTIFF, f)
}

func TestSaveLoadLossless(t *testing.T) {
	src := testImage(t)
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "img"+ext)
			require.NoError(t, Save(path, src, Options{}))

			got, err := Load(path)
			require.NoError(t, err)
			assert.True(t, src.Equal(got), "pixels differ after %s round trip", ext)
		})
	}
}

func TestSavePreservesAlphaPNG(t *testing.T) {
	src := raster.MustNew(2, 1)
	require.NoError(t, src.SetARGB(0, 0, 0x80FF0000))
	path := filepath.Join(t.TempDir(), "alpha.png")
	require.NoError(t, Save(path, src, Options{}))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, raster.Colour(0x80FF0000), got.ARGB(0, 0))
	assert.Equal(t, raster.Transparent, got.ARGB(1, 0))
}

func TestSaveLossyFormats(t *testing.T) {
	src := testImage(t)
	for _, ext := range []string{".jpg", ".gif"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "img"+ext)
			require.NoError(t, Save(path, src, Options{JPEGQuality: 100}))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, src.Width(), got.Width())
			assert.Equal(t, src.Height(), got.Height())
		})
	}
}

func TestSaveUnsupportedWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.webp")
	err := Save(path, testImage(t), Options{})
	assert.True(t, errors.Is(err, ErrEncode))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDecode))
}

func TestDecodeReportsFormat(t *testing.T) {
	var data bytes.Buffer
	require.NoError(t, Encode(&data, testImage(t), FormatBMP, Options{}))
	_, name, err := Decode(&data)
	require.NoError(t, err)
	assert.Equal(t, "bmp", name)
}

func TestJPEGQualityClamp(t *testing.T) {
	assert.Equal(t, DefaultJPEGQuality, Options{}.jpegQuality())
	assert.Equal(t, 1, Options{JPEGQuality: -4}.jpegQuality())
	assert.Equal(t, 100, Options{JPEGQuality: 400}.jpegQuality())
}
