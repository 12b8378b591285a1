package grid

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{248, 5, 5, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func fill(m *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetRGBA(x, y, c)
		}
	}
}

func uniform(w, h int, c color.RGBA) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(m, m.Bounds(), c)
	return m
}

func TestReduceSize(t *testing.T) {
	tables := []struct {
		w, h, n int
	}{
		{1, 1, 1},
		{4, 4, 2},
		{10, 3, 7},
		{3, 10, 48},
		{100, 60, 48},
	}

	for _, table := range tables {
		g, err := Reduce(uniform(table.w, table.h, blue), table.n, white)
		require.NoError(t, err)
		assert.Equal(t, table.n, g.Size())
		assert.Equal(t, table.n, g.Image().Bounds().Dx())
		assert.Equal(t, table.n, g.Image().Bounds().Dy())
	}
}

func TestReduceUniform(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		g, err := Reduce(uniform(16, 16, blue), n, white)
		require.NoError(t, err)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				assert.Equal(t, blue, g.At(x, y), "cell (%d, %d) with n=%d", x, y, n)
			}
		}
	}
}

func TestReduceHalves(t *testing.T) {
	m := uniform(4, 4, white)
	fill(m, image.Rect(0, 0, 2, 4), red)

	g, err := Reduce(m, 2, white)
	require.NoError(t, err)

	for y := 0; y < 2; y++ {
		assert.Equal(t, red, g.At(0, y))
		assert.Equal(t, white, g.At(1, y))
	}
}

func TestReduceOffsetBounds(t *testing.T) {
	m := image.NewRGBA(image.Rect(10, 20, 14, 24))
	fill(m, m.Bounds(), white)
	fill(m, image.Rect(10, 20, 12, 24), red)

	g, err := Reduce(m, 2, blue)
	require.NoError(t, err)
	assert.Equal(t, red, g.At(0, 1))
	assert.Equal(t, white, g.At(1, 0))
}

func TestReduceFallback(t *testing.T) {
	// A 4x2 image reduced to 2x2 has no source pixels in the bottom row.
	g, err := Reduce(uniform(4, 2, blue), 2, white)
	require.NoError(t, err)

	assert.Equal(t, blue, g.At(0, 0))
	assert.Equal(t, blue, g.At(1, 0))
	assert.Equal(t, white, g.At(0, 1))
	assert.Equal(t, white, g.At(1, 1))
}

func TestReduceTruncates(t *testing.T) {
	m := uniform(4, 4, color.RGBA{0, 0, 0, 255})
	m.SetRGBA(1, 0, color.RGBA{255, 3, 1, 255})
	m.SetRGBA(0, 1, color.RGBA{255, 3, 1, 255})

	g, err := Reduce(m, 2, white)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{127, 1, 0, 255}, g.At(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, g.At(1, 1))
}

func TestRegionClampsToGridSize(t *testing.T) {
	// 8 pixel cells but regions only extend n=2 pixels.
	b := image.Rect(0, 0, 16, 16)
	r, ok := Region(b, 2, 8, 1, 1)
	require.True(t, ok)
	assert.Equal(t, image.Rect(8, 8, 10, 10), r)

	// Near the edge the region is cut short by the image.
	b = image.Rect(0, 0, 9, 9)
	r, ok = Region(b, 2, 4, 2, 2)
	require.True(t, ok)
	assert.Equal(t, image.Rect(8, 8, 9, 9), r)

	_, ok = Region(b, 2, 4, 3, 0)
	assert.False(t, ok)
}

func TestReduceInvalidInput(t *testing.T) {
	tables := []struct {
		m image.Image
		n int
	}{
		{image.NewRGBA(image.Rect(0, 0, 0, 4)), 2},
		{image.NewRGBA(image.Rect(0, 0, 4, 0)), 2},
		{uniform(4, 4, blue), 0},
		{uniform(4, 4, blue), -1},
	}

	for _, table := range tables {
		_, err := Reduce(table.m, table.n, white)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestMap(t *testing.T) {
	g := New(2)
	g.Set(1, 0, red)

	out := g.Map(func(c color.RGBA) color.RGBA {
		if c == red {
			return blue
		}
		return white
	})

	assert.Equal(t, blue, out.At(1, 0))
	assert.Equal(t, white, out.At(0, 0))
	assert.Equal(t, red, g.At(1, 0))
}
