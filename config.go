package brickart

import (
	"fmt"

	"github.com/bodgit/brickart/palette"
)

// Config describes the size of the mosaic and the colors it is built from.
type Config struct {
	// CellSize is the number of studs along one side of a pallet
	CellSize int
	// Pallets is the number of pallets along one side of the canvas
	Pallets int
	// StudSize is the size in pixels of one stud on the canvas
	StudSize int
	// Border is the gap in pixels between a stud and the edge of its square
	Border int
	// Palette lists the available stud colors, the first is used for cells
	// with no source pixels
	Palette palette.Palette
}

// DefaultConfig returns a 48 by 48 stud mosaic made of 3 by 3 pallets.
func DefaultConfig() Config {
	return Config{
		CellSize: 16,
		Pallets:  3,
		StudSize: 20,
		Border:   2,
		Palette:  palette.Default,
	}
}

// GridSize returns the number of studs along one side of the canvas.
func (c Config) GridSize() int {
	return c.CellSize * c.Pallets
}

// TileSide returns the size in pixels of one side of a pallet.
func (c Config) TileSide() int {
	return c.StudSize * c.CellSize
}

// Validate checks the configuration can produce a mosaic.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0, c.Pallets <= 0, c.StudSize <= 0:
		return fmt.Errorf("%w: cell size %d, pallets %d, stud size %d", ErrInvalidInput, c.CellSize, c.Pallets, c.StudSize)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: empty palette", ErrInvalidInput)
	case c.Border < 0 || 2*c.Border >= c.StudSize:
		return fmt.Errorf("%w: border %d does not fit stud size %d", ErrInvalidGeometry, c.Border, c.StudSize)
	}
	return nil
}
