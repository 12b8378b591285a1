package tile

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Split cuts m into square tiles of the given side. The tiles are returned
// column by column, so tile (x, y) is at index x*rows+y. Each tile is a copy
// and shares no pixels with m.
func Split(m image.Image, side int) ([]Tile, error) {
	b := m.Bounds()
	if side <= 0 || b.Dx()%side != 0 || b.Dy()%side != 0 {
		return nil, fmt.Errorf("%w: %dx%d canvas does not divide into %d pixel tiles", ErrInvalidGeometry, b.Dx(), b.Dy(), side)
	}

	cols, rows := b.Dx()/side, b.Dy()/side
	tiles := make([]Tile, 0, cols*rows)
	for tx := 0; tx < cols; tx++ {
		for ty := 0; ty < rows; ty++ {
			r := image.Rect(tx*side, ty*side, (tx+1)*side, (ty+1)*side).Add(b.Min)
			tiles = append(tiles, Tile{
				X:     tx,
				Y:     ty,
				Image: imaging.Crop(m, r),
			})
		}
	}

	return tiles, nil
}
