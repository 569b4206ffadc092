package andie

import (
	"github.com/pkg/errors"

	"github.com/gogpu/andie/internal/imaging"
	"github.com/gogpu/andie/op"
	"github.com/gogpu/andie/raster"
)

// Errors reported by the editor. Errors raised deeper in the stack are
// re-exported here so callers need only this package for errors.Is.
var (
	// ErrDecode is returned when a file is not a readable image.
	ErrDecode = imaging.ErrDecode

	// ErrEncode is returned when the target extension has no encoder or
	// the encoder fails.
	ErrEncode = imaging.ErrEncode

	// ErrGeometry is returned when a crop rectangle lies outside the image.
	ErrGeometry = op.ErrGeometry

	// ErrInvalidOp is returned for unknown kinds and malformed parameters.
	ErrInvalidOp = op.ErrInvalidOp

	// ErrCorruptLog is returned when an operation log cannot be decoded.
	ErrCorruptLog = op.ErrCorruptLog

	// ErrInvalidDimensions is returned for non-positive image sizes.
	ErrInvalidDimensions = raster.ErrInvalidDimensions

	// ErrHistoryUnderflow marks an undo or redo with nothing to move.
	// It is delivered as a Notice, never returned.
	ErrHistoryUnderflow = errors.New("andie: nothing to undo or redo")

	// ErrMissingImage is returned when an action needs an image and none
	// is loaded.
	ErrMissingImage = errors.New("andie: no image loaded")

	// ErrNoPath is returned by Save and SaveMacro when the image was not
	// opened from or saved to a file.
	ErrNoPath = errors.New("andie: image has no file path")
)
