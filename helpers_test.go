package andie

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/andie/internal/imaging"
	"github.com/gogpu/andie/raster"
)

func filled(t *testing.T, w, h int, c raster.Colour) *raster.Buffer {
	t.Helper()
	b, err := raster.NewFilled(w, h, c)
	require.NoError(t, err)
	return b
}

func gradient(t *testing.T, w, h int) *raster.Buffer {
	t.Helper()
	b := raster.MustNew(w, h)
	for y := range h {
		for x := range w {
			require.NoError(t, b.SetRGBA(x, y, uint8(x*255/max(w-1, 1)), uint8(y*255/max(h-1, 1)), 90, 255))
		}
	}
	return b
}

// writeImage saves buf as a PNG in a fresh directory and returns its path.
func writeImage(t *testing.T, buf *raster.Buffer) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, imaging.Save(path, buf, imaging.Options{}))
	return path
}

// notices collects notices for inspection.
type notices []Notice

func (n *notices) Notify(nt Notice) { *n = append(*n, nt) }
