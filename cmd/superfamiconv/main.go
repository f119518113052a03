package main

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/urfave/cli/v2"

	superfamiconv "github.com/ARM9/SuperFamiconv"
	"github.com/ARM9/SuperFamiconv/bitmap"
	"github.com/ARM9/SuperFamiconv/color"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

// loadBitmap reads a source image. PNG goes through the normalizing
// decoder so indexed files keep their index data; any other registered
// format is decoded generically to plain RGBA.
func loadBitmap(file string) (*bitmap.Bitmap, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	if filepath.Ext(file) == ".png" {
		return bitmap.Decode(data)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return bitmap.FromImage(img), nil
}

func saveBitmap(b *bitmap.Bitmap, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	return b.Encode(f)
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func mode(c *cli.Context) (color.Mode, error) {
	return color.ModeFromString(c.String("mode"))
}

func main() {
	app := cli.NewApp()

	app.Name = "superfamiconv"
	app.Usage = "retro console graphics converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "mode",
			EnvVars: []string{"SUPERFAMICONV_MODE"},
			Value:   "snes",
			Usage:   "console color mode (snes, gb, gbc, gba, md, pce)",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "palette",
			Usage:       "Generate a palette from an image and render it as a swatch",
			Description: "",
			ArgsUsage:   "IN-IMAGE OUT-PNG",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "subpalettes",
					Value: 8,
					Usage: "maximum number of subpalettes",
				},
				&cli.IntFlag{
					Name:  "colors",
					Value: 16,
					Usage: "maximum colors per subpalette",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := mode(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				b, err := loadBitmap(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				conv := superfamiconv.New(newLogger(c))

				p, err := conv.Palette(b, superfamiconv.PaletteOptions{
					Mode:                m,
					Subpalettes:         c.Int("subpalettes"),
					ColorsPerSubpalette: c.Int("colors"),
				})
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				swatch, err := bitmap.NewFromPalette(p)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := saveBitmap(swatch, c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "tiles",
			Usage:       "Convert an image to palette-bound tiles and render the sheet",
			Description: "",
			ArgsUsage:   "IN-IMAGE OUT-PNG",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "tile-width",
					Value: 8,
					Usage: "tile width in pixels",
				},
				&cli.IntFlag{
					Name:  "tile-height",
					Value: 8,
					Usage: "tile height in pixels",
				},
				&cli.IntFlag{
					Name:  "colors",
					Value: 16,
					Usage: "maximum palette colors",
				},
				&cli.BoolFlag{
					Name:  "dedup",
					Usage: "discard duplicate tiles",
				},
				&cli.BoolFlag{
					Name:  "lossy",
					Usage: "quantize the image down to the palette size first",
				},
				&cli.StringFlag{
					Name:  "out-data",
					Usage: "also write raw indexed tile data to `FILE`",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := mode(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				b, err := loadBitmap(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				conv := superfamiconv.New(newLogger(c))

				ts, err := conv.Tiles(b, superfamiconv.TilesOptions{
					Mode:       m,
					TileWidth:  c.Int("tile-width"),
					TileHeight: c.Int("tile-height"),
					MaxColors:  c.Int("colors"),
					Dedup:      c.Bool("dedup"),
					Lossy:      c.Bool("lossy"),
				})
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				sheet := bitmap.NewFromTileset(ts)
				if err := saveBitmap(sheet, c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				if out := c.String("out-data"); out != "" {
					raw, err := ts.IndexedData()
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					if err := os.WriteFile(out, raw, 0644); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
