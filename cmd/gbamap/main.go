package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/bodgit/gbamap"
	"github.com/urfave/cli/v2"
)

const defaultDB = "gbamap.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func loadLayouts(c *cli.Context) ([]gbamap.Layout, error) {
	return gbamap.LoadLayouts(filepath.Join(c.String("root"), c.String("layouts")))
}

func main() {
	app := cli.NewApp()

	app.Name = "gbamap"
	app.Usage = "GBA tile-map rendering utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			EnvVars: []string{"GBAMAP_ROOT"},
			Value:   cwd,
			Usage:   "path to the asset tree",
		},
		&cli.StringFlag{
			Name:    "layouts",
			EnvVars: []string{"GBAMAP_LAYOUTS"},
			Value:   filepath.Join("data", "layouts", "layouts.json"),
			Usage:   "path to the layout table, relative to the root",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GBAMAP_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "render",
			Usage:       "Render a map layout to a PNG image",
			Description: "",
			ArgsUsage:   "LAYOUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "render.png",
					Usage:   "output image path",
				},
				&cli.BoolFlag{
					Name:  "indexed",
					Usage: "quantize to a 256 color paletted image",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "integer scale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				layouts, err := loadLayouts(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				layout, ok := gbamap.FindLayout(layouts, c.Args().First())
				if !ok {
					return cli.Exit(fmt.Sprintf("no layout matching %q", c.Args().First()), 1)
				}

				r := gbamap.New(c.String("root"), newLogger(c))

				var m image.Image
				if m, err = r.RenderLayout(layout); err != nil {
					return cli.Exit(err, 1)
				}

				if factor := c.Int("scale"); factor > 1 {
					m = gbamap.Scale(m, factor)
				}

				f, err := os.Create(c.String("output"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				if err := gbamap.EncodePNG(f, m, c.Bool("indexed")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Catalog every layout and checksum its assets",
			Description: "",
			Action: func(c *cli.Context) error {
				layouts, err := loadLayouts(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				db, err := gbamap.NewCatalogDB(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				r := gbamap.New(c.String("root"), newLogger(c))

				if err := r.Scan(db, layouts); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Show catalogued details for a layout",
			Description: "",
			ArgsUsage:   "LAYOUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := gbamap.NewCatalogDB(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				entry, err := db.FindLayout(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				if entry == nil {
					return cli.Exit(fmt.Sprintf("layout %q has not been scanned", c.Args().First()), 1)
				}

				fmt.Printf("%s (%s), %d x %d metatiles\n", entry.LayoutID, entry.Name, entry.Width, entry.Height)

				paths := make([]string, 0, len(entry.Assets))
				for path := range entry.Assets {
					paths = append(paths, path)
				}
				sort.Strings(paths)

				for _, path := range paths {
					fmt.Printf("  %s  %s\n", entry.Assets[path], path)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
