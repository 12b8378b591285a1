/*
Package tile renders a grid of stud colors as an image of round studs and cuts
that image into the square panels, or pallets, that a mosaic is built on.

Each grid cell becomes a square of studSize by studSize pixels holding a filled
circle inset by the border on every side. Pixels outside the circles keep the
black background, which shows as the gaps between studs.
*/
package tile

import (
	"errors"
	"image"
	"image/color"
)

// ErrInvalidGeometry is returned when the stud or tile dimensions do not fit
// the canvas.
var ErrInvalidGeometry = errors.New("tile: invalid geometry")

// Background is the color left between studs.
var Background = color.RGBA{0, 0, 0, 0xff}

// Tile is one square panel of the canvas.
type Tile struct {
	// X and Y are the column and row of the tile within the canvas
	X, Y  int
	Image *image.NRGBA
}
