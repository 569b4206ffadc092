package op

import (
	"github.com/pkg/errors"
)

// Operation errors.
var (
	// ErrInvalidOp is returned for an unknown kind or malformed parameters.
	ErrInvalidOp = errors.New("op: invalid operation")

	// ErrGeometry is returned when a rectangle lies outside the image
	// or is empty.
	ErrGeometry = errors.New("op: rectangle outside image bounds")

	// ErrCorruptLog is returned when an operation log cannot be decoded.
	ErrCorruptLog = errors.New("op: corrupt operation log")
)
