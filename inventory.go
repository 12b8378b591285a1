package brickart

import (
	"image/color"

	"github.com/bodgit/brickart/grid"
	"github.com/bodgit/brickart/palette"
)

// Part is the number of studs of one color needed for one pallet.
type Part struct {
	TileX, TileY int
	Color        color.RGBA
	Count        int
}

// Inventory counts the studs of each palette color on every pallet of g,
// where each pallet is cellSize studs square. Parts are ordered by pallet
// column, then row, then palette order; colors not used on a pallet are
// omitted.
func Inventory(g *grid.Grid, cellSize int, p palette.Palette) []Part {
	if cellSize <= 0 || len(p) == 0 {
		return nil
	}

	pallets := (g.Size() + cellSize - 1) / cellSize

	var parts []Part
	for tx := 0; tx < pallets; tx++ {
		for ty := 0; ty < pallets; ty++ {
			counts := make([]int, len(p))
			for y := ty * cellSize; y < min((ty+1)*cellSize, g.Size()); y++ {
				for x := tx * cellSize; x < min((tx+1)*cellSize, g.Size()); x++ {
					counts[p.Index(g.At(x, y))]++
				}
			}
			for i, count := range counts {
				if count == 0 {
					continue
				}
				parts = append(parts, Part{
					TileX: tx,
					TileY: ty,
					Color: p[i],
					Count: count,
				})
			}
		}
	}
	return parts
}

// Totals sums the parts across every pallet, keeping colors in the order they
// are first seen.
func Totals(parts []Part) []Part {
	var totals []Part
	index := make(map[color.RGBA]int)
	for _, part := range parts {
		i, ok := index[part.Color]
		if !ok {
			i = len(totals)
			index[part.Color] = i
			totals = append(totals, Part{TileX: -1, TileY: -1, Color: part.Color})
		}
		totals[i].Count += part.Count
	}
	return totals
}
