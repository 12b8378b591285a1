package palette

import (
	"errors"
	"image"
	"image/color"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"
)

var errNoColors = errors.New("palette: number of colors must be positive")

// Suggest picks up to n colors representative of m using median cut. The
// colors are ordered by how many pixels of m map to them, most frequent first,
// so the first color makes a sensible default.
func Suggest(m image.Image, n int) (Palette, error) {
	if n <= 0 {
		return nil, errNoColors
	}

	q := quantize.MedianCutQuantizer{}
	p := FromColors(q.Quantize(make(color.Palette, 0, n), m))

	counts := make([]int, len(p))
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			if i := p.Index(c); i >= 0 {
				counts[i]++
			}
		}
	}

	idx := make([]int, len(p))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return counts[idx[i]] > counts[idx[j]]
	})

	out := make(Palette, len(p))
	for i, j := range idx {
		out[i] = p[j]
	}
	return out, nil
}
