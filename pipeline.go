package brickart

import (
	"context"
	"image"
	"runtime"
	"sync"

	"github.com/bodgit/brickart/grid"
)

func (b *BrickArt) emitRows(ctx context.Context, n int) (<-chan int, <-chan error, error) {
	out := make(chan int)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for y := 0; y < n; y++ {
			select {
			case out <- y:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()
	return out, errc, nil
}

func (b *BrickArt) rowWorker(ctx context.Context, m image.Image, cellPixels int, in <-chan int, original, adapted *grid.Grid) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		n := original.Size()
		fallback := b.config.Palette.Fallback()
		for y := range in {
			if err := ctx.Err(); err != nil {
				errc <- err
				return
			}
			// Each row belongs to exactly one worker
			for x := 0; x < n; x++ {
				c := grid.Cell(m, n, cellPixels, x, y, fallback)
				original.Set(x, y, c)
				adapted.Set(x, y, b.config.Palette.Nearest(c))
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// reduce computes the average and palette grids of m, spreading the rows
// across a worker per CPU.
func (b *BrickArt) reduce(ctx context.Context, m image.Image) (*grid.Grid, *grid.Grid, error) {
	n := b.config.GridSize()
	cellPixels, err := grid.CellPixels(m.Bounds(), n)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	original, adapted := grid.New(n), grid.New(n)

	var errcList []<-chan error

	rows, errc, err := b.emitRows(ctx, n)
	if err != nil {
		return nil, nil, err
	}
	errcList = append(errcList, errc)

	for i := 0; i < runtime.NumCPU(); i++ {
		errc, err := b.rowWorker(ctx, m, cellPixels, rows, original, adapted)
		if err != nil {
			return nil, nil, err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, nil, err
	}

	return original, adapted, nil
}
