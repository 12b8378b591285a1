package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/brickart/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	tables := []struct {
		a, b color.RGBA
		diff int
	}{
		{color.RGBA{0, 0, 0, 255}, color.RGBA{0, 0, 0, 255}, 0},
		{color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 255}, 765},
		{color.RGBA{10, 20, 30, 255}, color.RGBA{20, 10, 35, 255}, 25},
		{color.RGBA{10, 20, 30, 0}, color.RGBA{10, 20, 30, 255}, 0},
	}

	for _, table := range tables {
		assert.Equal(t, table.diff, Diff(table.a, table.b))
		assert.Equal(t, table.diff, Diff(table.b, table.a))
	}
}

func TestNearestIdempotent(t *testing.T) {
	for _, c := range Default {
		assert.Equal(t, c, Default.Nearest(c))
	}
}

func TestNearestTieBreak(t *testing.T) {
	p := Palette{
		{100, 0, 0, 255},
		{0, 100, 0, 255},
		{0, 0, 100, 255},
	}

	// Equidistant from all three entries
	c := color.RGBA{0, 0, 0, 255}
	assert.Equal(t, 0, p.Index(c))
	assert.Equal(t, p[0], p.Nearest(c))

	// Equidistant from the last two only
	c = color.RGBA{0, 50, 50, 255}
	assert.Equal(t, 1, p.Index(c))

	reversed := Palette{p[2], p[1], p[0]}
	assert.Equal(t, p[2], reversed.Nearest(color.RGBA{0, 0, 0, 255}))
}

func TestNearest(t *testing.T) {
	tables := []struct {
		c    color.RGBA
		want color.RGBA
	}{
		{color.RGBA{250, 250, 250, 255}, Default[0]},
		{color.RGBA{200, 20, 20, 255}, Default[1]},
		{color.RGBA{240, 140, 70, 255}, Default[2]},
		{color.RGBA{70, 180, 50, 255}, Default[4]},
		{color.RGBA{10, 190, 230, 255}, Default[5]},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, Default.Nearest(table.c))
	}
}

func TestEmpty(t *testing.T) {
	var p Palette
	assert.Equal(t, -1, p.Index(color.RGBA{1, 2, 3, 255}))
	assert.Equal(t, color.RGBA{}, p.Nearest(color.RGBA{1, 2, 3, 255}))
	assert.Equal(t, color.RGBA{}, p.Fallback())
}

func TestQuantize(t *testing.T) {
	g := grid.New(2)
	g.Set(0, 0, color.RGBA{250, 0, 0, 255})
	g.Set(1, 0, color.RGBA{255, 255, 255, 255})
	g.Set(0, 1, color.RGBA{0, 200, 240, 255})
	g.Set(1, 1, color.RGBA{80, 180, 40, 255})

	q := Default.Quantize(g)
	assert.Equal(t, Default[1], q.At(0, 0))
	assert.Equal(t, Default[0], q.At(1, 0))
	assert.Equal(t, Default[5], q.At(0, 1))
	assert.Equal(t, Default[4], q.At(1, 1))

	// The source grid is left alone
	assert.Equal(t, color.RGBA{250, 0, 0, 255}, g.At(0, 0))
}

func TestParse(t *testing.T) {
	p, err := Parse([]string{"#ffffff", "#f80505", "#00c5ee"})
	require.NoError(t, err)
	assert.Equal(t, Palette{Default[0], Default[1], Default[5]}, p)
	assert.Equal(t, []string{"#ffffff", "#f80505", "#00c5ee"}, p.Hex())

	_, err = Parse([]string{"#ffffff", "nope"})
	assert.Error(t, err)
}

func TestDefaultHexRoundTrip(t *testing.T) {
	p, err := Parse(Default.Hex())
	require.NoError(t, err)
	assert.Equal(t, Default, p)
}

func TestSuggest(t *testing.T) {
	red := color.RGBA{248, 5, 5, 255}
	blue := color.RGBA{0, 0, 255, 255}

	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 6 {
				m.SetRGBA(x, y, blue)
			} else {
				m.SetRGBA(x, y, red)
			}
		}
	}

	p, err := Suggest(m, 2)
	require.NoError(t, err)
	require.Len(t, p, 2)
	// The dominant color comes first
	assert.Less(t, Diff(p[0], blue), Diff(p[0], red))
	assert.Less(t, Diff(p[1], red), Diff(p[0], red))

	_, err = Suggest(m, 0)
	assert.Error(t, err)
}
