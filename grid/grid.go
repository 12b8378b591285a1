/*
Package grid reduces a source image of arbitrary dimensions to a square grid of
average colors, one per brick stud.

The source is divided into cells of size/N pixels, where size is the larger of
the image width and height. Each cell region is clamped at the image edges to at
most N pixels on each axis; a cell whose origin falls outside the image has no
source pixels and takes the fallback color instead.
*/
package grid

import (
	"errors"
	"image"
	"image/color"
)

// ErrInvalidInput is returned for empty images or a non-positive grid size.
var ErrInvalidInput = errors.New("grid: invalid input")

// Grid is a square N by N array of opaque colors.
type Grid struct {
	n   int
	pix []color.RGBA
}

// New returns a grid of side n with every cell set to the zero color.
func New(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{
		n:   n,
		pix: make([]color.RGBA, n*n),
	}
}

// Size returns the side of the grid.
func (g *Grid) Size() int {
	return g.n
}

func (g *Grid) offset(x, y int) int {
	return y*g.n + x
}

// At returns the color of cell (x, y).
func (g *Grid) At(x, y int) color.RGBA {
	return g.pix[g.offset(x, y)]
}

// Set sets the color of cell (x, y). It is only used while building a grid;
// cells are independent so distinct cells may be set concurrently.
func (g *Grid) Set(x, y int, c color.RGBA) {
	g.pix[g.offset(x, y)] = c
}

// Map returns a new grid with f applied to every cell.
func (g *Grid) Map(f func(color.RGBA) color.RGBA) *Grid {
	out := New(g.n)
	for i, c := range g.pix {
		out.pix[i] = f(c)
	}
	return out
}

// Image returns the grid as an N by N image, one pixel per cell.
func (g *Grid) Image() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, g.n, g.n))
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			m.SetRGBA(x, y, g.At(x, y))
		}
	}
	return m
}
