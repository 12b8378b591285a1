package grid

import (
	"fmt"
	"image"
	"image/color"
)

// CellPixels returns the number of source pixels along one side of a cell
// when an image with bounds b is reduced to an n by n grid. Any remainder is
// discarded.
func CellPixels(b image.Rectangle, n int) (int, error) {
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 0, fmt.Errorf("%w: image is %dx%d", ErrInvalidInput, b.Dx(), b.Dy())
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: grid size %d", ErrInvalidInput, n)
	}
	return max(b.Dx(), b.Dy()) / n, nil
}

// Region returns the source rectangle for cell (x, y). The extent is clamped
// to n pixels, not cellPixels, at the image edges. ok is false when the cell
// has no source pixels.
func Region(b image.Rectangle, n, cellPixels, x, y int) (r image.Rectangle, ok bool) {
	xStart, yStart := x*cellPixels, y*cellPixels
	w, h := b.Dx(), b.Dy()
	if xStart >= w || yStart >= h {
		return image.Rectangle{}, false
	}
	r = image.Rect(xStart, yStart, xStart+min(n, w-xStart), yStart+min(n, h-yStart)).Add(b.Min)
	return r, !r.Empty()
}

// Average returns the per-channel mean of every pixel of m inside r, with
// integer truncation. ok is false if r holds no pixels.
func Average(m image.Image, r image.Rectangle) (c color.RGBA, ok bool) {
	r = r.Intersect(m.Bounds())
	if r.Empty() {
		return color.RGBA{}, false
	}

	var sr, sg, sb uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pr, pg, pb, _ := m.At(x, y).RGBA()
			sr += uint64(pr >> 8)
			sg += uint64(pg >> 8)
			sb += uint64(pb >> 8)
		}
	}

	count := uint64(r.Dx() * r.Dy())
	return color.RGBA{uint8(sr / count), uint8(sg / count), uint8(sb / count), 0xff}, true
}

// Cell computes the average color of cell (x, y), or fallback if the cell has
// no source pixels. It depends only on its arguments so cells can be computed
// in any order.
func Cell(m image.Image, n, cellPixels, x, y int, fallback color.RGBA) color.RGBA {
	r, ok := Region(m.Bounds(), n, cellPixels, x, y)
	if !ok {
		return fallback
	}
	if c, ok := Average(m, r); ok {
		return c
	}
	return fallback
}

// Reduce returns an n by n grid of the average colors of m.
func Reduce(m image.Image, n int, fallback color.RGBA) (*Grid, error) {
	cellPixels, err := CellPixels(m.Bounds(), n)
	if err != nil {
		return nil, err
	}

	g := New(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.Set(x, y, Cell(m, n, cellPixels, x, y, fallback))
		}
	}
	return g, nil
}
