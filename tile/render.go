package tile

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/bodgit/brickart/grid"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

type renderer struct {
	gc       *draw2dimg.GraphicContext
	studSize int
	border   int
}

func (r *renderer) render(g *grid.Grid) {
	diameter := float64(r.studSize - 2*r.border)
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			cx := float64(x*r.studSize+r.border) + diameter/2
			cy := float64(y*r.studSize+r.border) + diameter/2

			r.gc.SetFillColor(g.At(x, y))
			draw2dkit.Circle(r.gc, cx, cy, diameter/2)
			r.gc.Fill()
		}
	}
}

// Render draws every cell of g as a circular stud and returns the canvas,
// which is g.Size()*studSize pixels square.
func Render(g *grid.Grid, studSize, border int) (*image.RGBA, error) {
	if studSize <= 0 || border < 0 || 2*border >= studSize {
		return nil, fmt.Errorf("%w: stud size %d with border %d", ErrInvalidGeometry, studSize, border)
	}

	side := g.Size() * studSize
	canvas := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	r := renderer{
		gc:       draw2dimg.NewGraphicContext(canvas),
		studSize: studSize,
		border:   border,
	}
	r.render(g)

	return canvas, nil
}
