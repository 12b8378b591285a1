package brickart

import (
	"fmt"

	"github.com/bodgit/brickart/grid"
	"github.com/bodgit/brickart/tile"
)

var (
	// ErrInvalidInput is returned for empty images and non-positive sizes
	ErrInvalidInput = grid.ErrInvalidInput
	// ErrInvalidGeometry is returned when the canvas cannot be cut into
	// whole pallets
	ErrInvalidGeometry = tile.ErrInvalidGeometry
)

// ImageReadError records a source image that could not be opened or decoded.
type ImageReadError struct {
	Path string
	Err  error
}

func (e *ImageReadError) Error() string {
	return fmt.Sprintf("brickart: cannot read image \"%s\": %v", e.Path, e.Err)
}

func (e *ImageReadError) Unwrap() error {
	return e.Err
}
