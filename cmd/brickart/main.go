package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/brickart"
	"github.com/bodgit/brickart/palette"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB    = "brickart.db"
	defaultImage = "pic.png"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func configFromContext(c *cli.Context) (brickart.Config, error) {
	p, err := palette.Parse(c.StringSlice("palette"))
	if err != nil {
		return brickart.Config{}, err
	}

	config := brickart.Config{
		CellSize: c.Int("cell-size"),
		Pallets:  c.Int("pallets"),
		StudSize: c.Int("stud-size"),
		Border:   c.Int("border"),
		Palette:  p,
	}

	return config, config.Validate()
}

func build(c *cli.Context) error {
	file := defaultImage
	if c.NArg() > 0 {
		file = c.Args().First()
	}

	config, err := configFromContext(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	var db *brickart.InventoryDB
	if path := c.String("db"); path != "" {
		if db, err = brickart.NewInventoryDB(path); err != nil {
			return cli.NewExitError(err, 1)
		}
		defer db.Close()
	}

	b, err := brickart.New(config, db, newLogger(c))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w, err := brickart.NewDirWriter(c.String("output"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := b.Build(context.Background(), file, w); err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintln(c.App.Writer, "Done")

	return nil
}

func inventory(c *cli.Context) error {
	db, err := brickart.NewInventoryDB(c.String("db"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	if c.NArg() < 1 {
		records, err := db.Records()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		for _, r := range records {
			fmt.Fprintf(c.App.Writer, "%s\t%dx%d\t%s\n", r.SHA1, r.GridSize, r.GridSize, r.Source)
		}
		return nil
	}

	parts, err := db.Parts(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if parts == nil {
		return cli.NewExitError(fmt.Sprintf("no inventory for %s", c.Args().First()), 1)
	}

	for _, p := range parts {
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%d\n", brickart.TileName(p.TileX, p.TileY), palette.Hex(p.Color), p.Count)
	}
	for _, p := range brickart.Totals(parts) {
		fmt.Fprintf(c.App.Writer, "total\t%s\t%d\n", palette.Hex(p.Color), p.Count)
	}

	return nil
}

func suggest(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	m, _, err := brickart.Open(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	p, err := palette.Suggest(m, c.Int("colors"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for _, h := range p.Hex() {
		fmt.Fprintln(c.App.Writer, h)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "brickart"
	app.Usage = "Brick stud mosaic generator"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	defaults := brickart.DefaultConfig()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BRICKART_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to inventory database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "build",
			Usage:       "Build a mosaic from an image",
			Description: "Writes the color previews, the stud canvas and one image per pallet.",
			ArgsUsage:   "[FILE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					EnvVars: []string{"BRICKART_OUTPUT"},
					Value:   cwd,
					Usage:   "directory to write images to",
				},
				&cli.IntFlag{
					Name:    "cell-size",
					EnvVars: []string{"BRICKART_CELL_SIZE"},
					Value:   defaults.CellSize,
					Usage:   "studs along one side of a pallet",
				},
				&cli.IntFlag{
					Name:    "pallets",
					EnvVars: []string{"BRICKART_PALLETS"},
					Value:   defaults.Pallets,
					Usage:   "pallets along one side of the mosaic",
				},
				&cli.IntFlag{
					Name:    "stud-size",
					EnvVars: []string{"BRICKART_STUD_SIZE"},
					Value:   defaults.StudSize,
					Usage:   "pixel size of one stud",
				},
				&cli.IntFlag{
					Name:    "border",
					EnvVars: []string{"BRICKART_BORDER"},
					Value:   defaults.Border,
					Usage:   "pixel gap around each stud",
				},
				&cli.StringSliceFlag{
					Name:    "palette",
					EnvVars: []string{"BRICKART_PALETTE"},
					Value:   cli.NewStringSlice(defaults.Palette.Hex()...),
					Usage:   "available stud colors as #rrggbb, the first is the default",
				},
			},
			Action: build,
		},
		{
			Name:        "inventory",
			Usage:       "List the studs needed for a mosaic",
			Description: "Without an argument lists every mosaic in the database.",
			ArgsUsage:   "[SHA1]",
			Action:      inventory,
		},
		{
			Name:        "suggest",
			Usage:       "Suggest a palette for an image",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "colors",
					Value: len(defaults.Palette),
					Usage: "number of colors to suggest",
				},
			},
			Action: suggest,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
