package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/andie/internal/imaging"
	"github.com/gogpu/andie/op"
	"github.com/gogpu/andie/raster"
)

func setup(t *testing.T) (dir, image string) {
	t.Helper()
	dir = t.TempDir()
	image = filepath.Join(dir, "in.png")
	buf := raster.MustNew(6, 4)
	buf.Fill(0xFF336699)
	require.NoError(t, imaging.Save(image, buf, imaging.Options{}))
	return dir, image
}

func TestRunScriptHistoryExportSave(t *testing.T) {
	dir, image := setup(t)
	script := filepath.Join(dir, "edit.ops")
	require.NoError(t, op.WriteLogFile(script, []op.Op{op.InvertColour(), op.Rotate(90), op.ConvertToGrey()}))
	out := filepath.Join(dir, "out.bmp")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-script", script, "-undo", "1", "-history", "-export", out, "-save", image}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "InvertColour")
	assert.Contains(t, lines[1], "Rotate")

	exported, err := imaging.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 4, exported.Width())
	assert.Equal(t, raster.Colour(0xFFCC9966), exported.ARGB(0, 0))

	ops, err := op.ReadLogFile(op.SidecarPath(image))
	require.NoError(t, err)
	assert.Len(t, ops, 2)
}

func TestRunUndoEmptyPrintsNotice(t *testing.T) {
	_, image := setup(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-undo", "2", image}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, 2, strings.Count(stderr.String(), "Nothing to undo"))
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-undo", "-1", "x.png"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-nope", "x.png"}, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
}

func TestRunFailures(t *testing.T) {
	dir, image := setup(t)
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 1, run([]string{filepath.Join(dir, "missing.png")}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-export", filepath.Join(dir, "x.webp"), image}, &stdout, &stderr))

	cfg := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: loud\n"), 0o644))
	assert.Equal(t, 1, run([]string{"-config", cfg, image}, &stdout, &stderr))
}

func TestRunDebugPrintsStack(t *testing.T) {
	dir, image := setup(t)
	cfg := filepath.Join(dir, "debug.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: debug\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfg, "-export", filepath.Join(dir, "x.webp"), image}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "level=DEBUG")
	assert.Contains(t, stderr.String(), ".go:", "debug errors carry a stack trace")
}
