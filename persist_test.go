package andie

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/andie/internal/imaging"
	"github.com/gogpu/andie/op"
)

func TestOpenWithoutSidecar(t *testing.T) {
	src := gradient(t, 6, 4)
	path := writeImage(t, src)

	ed := New()
	require.NoError(t, ed.Open(path))
	assert.True(t, ed.HasImage())
	assert.Equal(t, path, ed.Path())
	assert.Empty(t, ed.History())
	assert.True(t, src.Equal(ed.Current()))
}

func TestOpenMissingFile(t *testing.T) {
	ed := newEditor(t, gradient(t, 2, 2))
	err := ed.Open(filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
	assert.True(t, ed.HasImage(), "failed open must keep the previous image")
}

func TestOpenGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	assert.ErrorIs(t, New().Open(path), ErrDecode)
}

func TestSaveAndReopenReplaysHistory(t *testing.T) {
	src := gradient(t, 8, 6)
	path := writeImage(t, src)

	ed := New(WithSeed(3))
	require.NoError(t, ed.Open(path))
	require.NoError(t, ed.Apply(op.GaussianBlur(2)))
	require.NoError(t, ed.Apply(op.Flip(op.Vertical)))
	require.NoError(t, ed.Apply(op.RandomScattering(1, 0)))
	require.NoError(t, ed.Apply(op.Crop(op.Rect{X0: 2, Y0: 1, X1: 7, Y1: 5})))
	require.NoError(t, ed.Save())
	assert.FileExists(t, op.SidecarPath(path))

	reopened := New()
	require.NoError(t, reopened.Open(path))
	assert.Equal(t, ed.History(), reopened.History())
	assert.True(t, ed.Current().Equal(reopened.Current()))
	assert.True(t, src.Equal(reopened.Original()), "save must write the original pixels")
	assert.True(t, reopened.CanUndo())
	assert.False(t, reopened.CanRedo())
}

func TestOpenCorruptSidecarIgnored(t *testing.T) {
	src := gradient(t, 4, 4)
	path := writeImage(t, src)
	require.NoError(t, os.WriteFile(op.SidecarPath(path), []byte("version: [oops"), 0o644))

	var logs bytes.Buffer
	ed := New(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, ed.Open(path))

	assert.Empty(t, ed.History())
	assert.True(t, src.Equal(ed.Current()))
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestOpenUnreplayableSidecarIgnored(t *testing.T) {
	path := writeImage(t, gradient(t, 4, 4))
	bad := []op.Op{op.InvertColour(), op.Crop(op.Rect{X0: 0, Y0: 0, X1: 9, Y1: 9})}
	require.NoError(t, op.WriteLogFile(op.SidecarPath(path), bad))

	ed := New()
	require.NoError(t, ed.Open(path))
	assert.Empty(t, ed.History())
}

func TestOpenClearsRedo(t *testing.T) {
	path := writeImage(t, gradient(t, 4, 4))
	ed := New()
	require.NoError(t, ed.Open(path))
	require.NoError(t, ed.Apply(op.InvertColour()))
	require.NoError(t, ed.Undo())
	require.True(t, ed.CanRedo())

	require.NoError(t, ed.Open(path))
	assert.False(t, ed.CanRedo())
}

func TestSaveWithoutPath(t *testing.T) {
	ed := newEditor(t, gradient(t, 2, 2))
	assert.ErrorIs(t, ed.Save(), ErrNoPath)
	assert.ErrorIs(t, New().Save(), ErrMissingImage)
}

func TestSaveAsUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	ed := newEditor(t, gradient(t, 2, 2))

	target := filepath.Join(dir, "out.webp")
	assert.ErrorIs(t, ed.SaveAs(target), ErrEncode)
	assert.NoFileExists(t, target)
	assert.NoFileExists(t, op.SidecarPath(target))
	assert.Empty(t, ed.Path())
}

func TestSaveAsSetsPath(t *testing.T) {
	ed := newEditor(t, gradient(t, 3, 3))
	require.NoError(t, ed.Apply(op.SepiaTone()))

	target := filepath.Join(t.TempDir(), "copy.bmp")
	require.NoError(t, ed.SaveAs(target))
	assert.Equal(t, target, ed.Path())
	assert.FileExists(t, op.SidecarPath(target))

	ops, err := op.ReadLogFile(op.SidecarPath(target))
	require.NoError(t, err)
	assert.Equal(t, []op.Op{op.SepiaTone()}, ops)
}

func TestExportWritesEditedImageOnly(t *testing.T) {
	ed := newEditor(t, gradient(t, 4, 3))
	require.NoError(t, ed.Apply(op.InvertColour()))

	target := filepath.Join(t.TempDir(), "edited.png")
	require.NoError(t, ed.Export(target))
	assert.NoFileExists(t, op.SidecarPath(target))

	got, err := imaging.Load(target)
	require.NoError(t, err)
	assert.True(t, ed.Current().Equal(got))
}

func TestExportErrors(t *testing.T) {
	assert.ErrorIs(t, New().Export(filepath.Join(t.TempDir(), "x.png")), ErrMissingImage)

	ed := newEditor(t, gradient(t, 2, 2))
	target := filepath.Join(t.TempDir(), "x.webp")
	assert.ErrorIs(t, ed.Export(target), ErrEncode)
	assert.NoFileExists(t, target)
}
