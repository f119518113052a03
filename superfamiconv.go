/*
Package superfamiconv converts raster images into console-native
indexed-color graphics: palettes, palette-bound bitmaps and tile data.
*/
package superfamiconv

import (
	"log"

	"github.com/ARM9/SuperFamiconv/bitmap"
	"github.com/ARM9/SuperFamiconv/color"
	"github.com/ARM9/SuperFamiconv/palette"
	"github.com/ARM9/SuperFamiconv/tile"
)

// Converter runs the end-to-end conversions the command line tool
// exposes.
type Converter struct {
	logger *log.Logger
}

// New returns a converter writing progress to logger.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}

// PaletteOptions configures palette generation.
type PaletteOptions struct {
	Mode                color.Mode
	Subpalettes         int
	ColorsPerSubpalette int
}

// TilesOptions configures tile generation.
type TilesOptions struct {
	Mode       color.Mode
	TileWidth  int
	TileHeight int
	MaxColors  int
	Dedup      bool

	// Lossy reduces the source to MaxColors by median cut before
	// palette binding. Binding itself stays exact match only.
	Lossy bool
}

// Palette collects the image's distinct colors, reduced under the
// mode, into subpalettes in pixel order.
func (c *Converter) Palette(b *bitmap.Bitmap, opts PaletteOptions) (*palette.Palette, error) {
	c.logger.Printf("using image %s\n", b)

	p := palette.New(opts.Mode, opts.Subpalettes, opts.ColorsPerSubpalette)
	if err := p.AddColors(b.RGBAData()); err != nil {
		return nil, err
	}
	c.logger.Printf("mapped colors to %d subpalette(s)\n", p.Size())

	return p, nil
}

// Tiles binds the image to a palette built from its own colors and
// slices it into a tileset carrying both RGBA and indexed data per
// tile.
func (c *Converter) Tiles(b *bitmap.Bitmap, opts TilesOptions) (*tile.Tileset, error) {
	c.logger.Printf("using image %s\n", b)

	if opts.Lossy {
		var err error
		if b, err = c.reduce(b, opts.MaxColors); err != nil {
			return nil, err
		}
	}

	sub := palette.NewSubpalette(opts.Mode, opts.MaxColors)
	for _, rc := range b.RGBAData() {
		if color.Reduce(rc, opts.Mode) == color.Transparent {
			continue
		}
		if err := sub.AddColor(rc); err != nil {
			return nil, err
		}
	}
	c.logger.Printf("using %d of %d palette colors\n", sub.Size(), opts.MaxColors)

	indexed, err := bitmap.NewIndexed(b, sub)
	if err != nil {
		return nil, err
	}

	ts := tile.NewFromBitmap(indexed, opts.TileWidth, opts.TileHeight, opts.Dedup)
	c.logger.Printf("created tileset with %d tile(s)\n", ts.Size())

	return ts, nil
}
