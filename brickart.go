/*
Package brickart turns a picture into a mosaic of round brick studs.

The source image is reduced to a square grid of average colors, each of which is
mapped to the nearest color of a small palette. The resulting grid is drawn as
studs on a canvas which is then cut into equal pallets, one per build plate.
*/
package brickart

import (
	"context"
	"image"
	"log"

	"github.com/bodgit/brickart/grid"
	"github.com/bodgit/brickart/tile"
)

// BrickArt runs the mosaic pipeline for a given configuration.
type BrickArt struct {
	config Config
	db     *InventoryDB
	logger *log.Logger
}

// Mosaic holds every stage of a processed image.
type Mosaic struct {
	// Original holds the average color of each cell
	Original *grid.Grid
	// Adapted holds the palette color of each cell
	Adapted *grid.Grid
	Canvas  *image.RGBA
	Tiles   []tile.Tile
}

// New returns a BrickArt for config. db may be nil, in which case no
// inventory is recorded.
func New(config Config, db *InventoryDB, logger *log.Logger) (*BrickArt, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &BrickArt{
		config: config,
		db:     db,
		logger: logger,
	}, nil
}

// Process runs every stage of the pipeline on m in memory.
func (b *BrickArt) Process(ctx context.Context, m image.Image) (*Mosaic, error) {
	original, adapted, err := b.reduce(ctx, m)
	if err != nil {
		return nil, err
	}

	canvas, err := tile.Render(adapted, b.config.StudSize, b.config.Border)
	if err != nil {
		return nil, err
	}

	tiles, err := tile.Split(canvas, b.config.TileSide())
	if err != nil {
		return nil, err
	}

	return &Mosaic{
		Original: original,
		Adapted:  adapted,
		Canvas:   canvas,
		Tiles:    tiles,
	}, nil
}

// Build reads the image in file, writes the previews, canvas and tiles to w
// and records the stud inventory if a database was provided.
func (b *BrickArt) Build(ctx context.Context, file string, w Writer) error {
	sha, adapted, err := b.buildPreviews(ctx, file, w)
	if err != nil {
		return err
	}

	canvas, err := tile.Render(adapted, b.config.StudSize, b.config.Border)
	if err != nil {
		return err
	}
	if err := w.WriteImage(CanvasName, canvas); err != nil {
		return err
	}

	tiles, err := tile.Split(canvas, b.config.TileSide())
	if err != nil {
		return err
	}
	for _, t := range tiles {
		if err := w.WriteImage(TileName(t.X, t.Y), t.Image); err != nil {
			return err
		}
	}
	b.logger.Printf("Wrote %d pallets for \"%s\"\n", len(tiles), file)

	if b.db != nil {
		parts := Inventory(adapted, b.config.CellSize, b.config.Palette)
		if err := b.db.Record(sha, file, b.config.GridSize(), parts); err != nil {
			return err
		}
		b.logger.Printf("Recorded inventory for \"%s\" as %s\n", file, sha)
	}

	return nil
}

// buildPreviews decodes and reduces file. The source image is not kept
// beyond this call.
func (b *BrickArt) buildPreviews(ctx context.Context, file string, w Writer) (string, *grid.Grid, error) {
	m, sha, err := Open(file)
	if err != nil {
		return "", nil, err
	}
	b.logger.Printf("Read \"%s\" (%dx%d)\n", file, m.Bounds().Dx(), m.Bounds().Dy())

	original, adapted, err := b.reduce(ctx, m)
	if err != nil {
		return "", nil, err
	}

	if err := w.WriteImage(OriginalPreview, original.Image()); err != nil {
		return "", nil, err
	}
	if err := w.WriteImage(AdaptedPreview, adapted.Image()); err != nil {
		return "", nil, err
	}

	return sha, adapted, nil
}
