/*
Package palette maps colors onto the small fixed set of stud colors available in
a brick set.

The first color of a palette is the default color, used for grid cells with no
source pixels. Distance between colors is the sum of the absolute differences of
the red, green and blue channels; when several palette colors are equally close
the earliest one wins.
*/
package palette

import (
	"fmt"
	"image/color"

	"github.com/bodgit/brickart/grid"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered list of opaque colors.
type Palette []color.RGBA

// Default is the set of colors shipped with the basic brick set.
var Default = Palette{
	{255, 255, 255, 255},
	{248, 5, 5, 255},
	{246, 132, 61, 255},
	{214, 252, 43, 255},
	{73, 190, 46, 255},
	{0, 197, 238, 255},
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Diff returns the sum of the per-channel absolute differences of a and b.
func Diff(a, b color.RGBA) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

// Fallback returns the default color of the palette.
func (p Palette) Fallback() color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	return p[0]
}

// Index returns the index of the palette color closest to c, or -1 if the
// palette is empty.
func (p Palette) Index(c color.RGBA) int {
	best, bestDiff := -1, 0
	for i, pc := range p {
		// Strictly less so the earliest color wins a tie
		if d := Diff(pc, c); best < 0 || d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// Nearest returns the palette color closest to c.
func (p Palette) Nearest(c color.RGBA) color.RGBA {
	if i := p.Index(c); i >= 0 {
		return p[i]
	}
	return color.RGBA{}
}

// Quantize returns a new grid with every cell of g replaced by its nearest
// palette color.
func (p Palette) Quantize(g *grid.Grid) *grid.Grid {
	return g.Map(p.Nearest)
}

// ColorPalette returns p as a color.Palette.
func (p Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// FromColors converts arbitrary colors into a palette, dropping any alpha.
func FromColors(colors []color.Color) Palette {
	p := make(Palette, 0, len(colors))
	for _, c := range colors {
		cf, _ := colorful.MakeColor(c)
		p = append(p, toRGBA(cf))
	}
	return p
}

// Parse builds a palette from a list of "#rrggbb" strings.
func Parse(hex []string) (Palette, error) {
	p := make(Palette, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: bad color %q: %w", h, err)
		}
		p = append(p, toRGBA(c))
	}
	return p, nil
}

// Hex returns the "#rrggbb" representation of c.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// Hex returns every color of the palette in "#rrggbb" form.
func (p Palette) Hex() []string {
	s := make([]string, len(p))
	for i, c := range p {
		s[i] = Hex(c)
	}
	return s
}
