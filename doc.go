// Package andie is the core of a non-destructive raster image editor.
//
// # Overview
//
// An [Editor] holds one image and the ordered list of operations applied
// to it. The original pixels are never changed: the displayed image is
// always the original with the history replayed on top, so undo and redo
// are exact and the history can be saved next to the image and replayed
// when the file is opened again.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/andie"
//	    "github.com/gogpu/andie/op"
//	)
//
//	ed := andie.New()
//	if err := ed.Open("photo.png"); err != nil {
//	    return err
//	}
//	_ = ed.Apply(op.GaussianBlur(3))
//	_ = ed.Apply(op.Rotate(90))
//	_ = ed.Undo()
//	_ = ed.Save()               // photo.png and photo.png.ops
//	_ = ed.Export("blurred.jpg") // edited pixels only
//
// # Operations
//
// Operations live in package [github.com/gogpu/andie/op]. Each is a plain
// value naming a kind and its parameters, so it can be stored, compared
// and written to a log. They fall into four groups:
//   - Colour adjustments: brightness/contrast, invert, grey, channel
//     cycling, saturation, sepia, vignette
//   - Neighbourhood filters: mean, median, Gaussian, soft blur, sharpen,
//     emboss, Sobel, tile, minimum, maximum, random scattering
//   - Geometry: resize, rotate, flip, crop
//   - Drawing: rectangles, ovals, lines and text
//
// # Files
//
// Images are read as PNG, JPEG, GIF, BMP, TIFF or WebP and written in any
// of these except WebP. The history sidecar for "a.png" is "a.png.ops", a
// YAML document. Macros are recorded with [Editor.StartMacro] and saved
// as "Macro.ops" in the image's directory.
//
// # Errors
//
// Failed actions return errors that match one of the sentinels in this
// package with errors.Is, and leave the editor unchanged. Conditions that
// are not failures, such as undo with nothing to undo, are delivered to a
// [Notifier] instead.
//
// # Logging
//
// Editors are silent by default. See [SetLogger] and [WithLogger].
package andie
