/*
Package bitmap implements the in-memory image model the converter is
built around.

A Bitmap owns a flat 8-bit RGBA pixel buffer, row-major with no padding,
and optionally a parallel buffer of palette indices plus the palette
they refer to. Arbitrary PNG encodings are normalized into this
canonical form once at decode time so everything downstream (palette
binding, tile slicing, sheet assembly) only ever deals with 8-bit RGBA.
*/
package bitmap

import (
	"errors"
	"fmt"

	"github.com/ARM9/SuperFamiconv/color"
)

var (
	// ErrEmptyPalette is returned by the palette-aware constructors
	// when given zero usable colors.
	ErrEmptyPalette = errors.New("bitmap: no colors in palette")

	// ErrColorNotInPalette is returned when binding a bitmap to a
	// subpalette that is missing one of the bitmap's reduced colors.
	// It signals a palette/asset mismatch, not a transient fault.
	ErrColorNotInPalette = errors.New("bitmap: color not in palette")

	// ErrNoIndexedData is returned when indexed tile data is
	// requested from a bitmap that carries none.
	ErrNoIndexedData = errors.New("bitmap: no indexed data in image")
)

// Paletter supplies the rows of normalized colors rendered by
// NewFromPalette. Implemented by palette.Palette.
type Paletter interface {
	NormalizedColors() [][]color.RGBA
	MaxColorsPerSubpalette() int
}

// Subpaletter supplies one ordered color list and the console mode its
// colors were reduced under. Implemented by palette.Subpalette.
type Subpaletter interface {
	NormalizedColors() []color.RGBA
	Mode() color.Mode
}

// Tileset supplies uniformly sized tiles for sheet assembly.
// Implemented by tile.Tileset.
type Tileset interface {
	TileWidth() int
	TileHeight() int
	Size() int
	TileRGBA(i int) []color.RGBA
}

// sheetWidth is the fixed pixel width of an assembled tile sheet.
const sheetWidth = 128

// Bitmap is an RGBA pixel buffer with fixed dimensions, optionally
// carrying per-pixel palette indices. Dimensions are immutable after
// construction and the pixel buffers are only written through the
// construction-time primitives, so a constructed Bitmap is freely
// shareable for reads.
type Bitmap struct {
	width   int
	height  int
	pix     []byte       // len == width*height*4, R,G,B,A per pixel
	indexed []uint8      // len == width*height when present, else nil
	palette []color.RGBA // insertion order == index value
}

// New returns a width by height bitmap with every pixel transparent.
func New(width, height int) *Bitmap {
	b := &Bitmap{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
	b.fill(color.Transparent)
	return b
}

// NewFromPalette renders a palette as a swatch: one row per subpalette,
// one column per color, rows shorter than the widest capacity padded
// with transparent cells.
func NewFromPalette(p Paletter) (*Bitmap, error) {
	rows := p.NormalizedColors()
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyPalette
	}

	b := New(p.MaxColorsPerSubpalette(), len(rows))
	for y, row := range rows {
		for x, c := range row {
			b.setPixelAt(c, x, y)
		}
	}
	return b, nil
}

// NewFromTileset lays a tileset out as a sheet of fixed 128 pixel
// width, tiles left to right, top to bottom, trailing cells
// transparent.
func NewFromTileset(ts Tileset) *Bitmap {
	tilesPerRow := divCeil(sheetWidth, ts.TileWidth())
	rows := divCeil(ts.Size(), tilesPerRow)

	b := New(sheetWidth, rows*ts.TileHeight())
	for i := 0; i < ts.Size(); i++ {
		b.blit(ts.TileRGBA(i), (i%tilesPerRow)*ts.TileWidth(), (i/tilesPerRow)*ts.TileHeight(), ts.TileWidth())
	}
	return b
}

// NewIndexed binds src to a subpalette: every pixel is reduced and
// normalized under the subpalette's mode and replaced by its first
// exact match in the subpalette, recording the match index. Pixels that
// reduce to the transparent sentinel always map to index 0, independent
// of what the subpalette holds at index 0. A pixel with no match aborts
// with ErrColorNotInPalette and no bitmap is returned.
func NewIndexed(src *Bitmap, sub Subpaletter) (*Bitmap, error) {
	pal := sub.NormalizedColors()
	if len(pal) == 0 {
		return nil, ErrEmptyPalette
	}

	mode := sub.Mode()
	size := src.width * src.height
	b := &Bitmap{
		width:   src.width,
		height:  src.height,
		pix:     make([]byte, size*4),
		indexed: make([]uint8, size),
		palette: pal,
	}

	for i := 0; i < size; i++ {
		c := color.Normalize(color.Reduce(src.RGBAAt(i), mode), mode)
		if c == color.Transparent {
			b.indexed[i] = 0
			b.setPixel(color.Transparent, i)
			continue
		}
		match := -1
		for j, pc := range pal {
			if pc == c {
				match = j
				break
			}
		}
		if match < 0 {
			return nil, fmt.Errorf("pixel %d has color %08x: %w", i, uint32(c), ErrColorNotInPalette)
		}
		b.indexed[i] = uint8(match)
		b.setPixel(pal[match], i)
	}
	return b, nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Indexed reports whether the bitmap carries per-pixel palette indices.
func (b *Bitmap) Indexed() bool { return len(b.indexed) > 0 }

// Palette returns the bitmap's palette in index order, nil for a plain
// RGBA bitmap.
func (b *Bitmap) Palette() []color.RGBA {
	if len(b.palette) == 0 {
		return nil
	}
	return append([]color.RGBA(nil), b.palette...)
}

// RGBAAt returns the packed color of the pixel at linear index i.
func (b *Bitmap) RGBAAt(i int) color.RGBA {
	o := i * 4
	return color.New(b.pix[o], b.pix[o+1], b.pix[o+2], b.pix[o+3])
}

// RGBAData returns every pixel as a packed color, row-major.
func (b *Bitmap) RGBAData() []color.RGBA {
	return color.ToRGBA(b.pix)
}

// IndexedData returns a copy of the per-pixel palette indices, or
// ErrNoIndexedData for a plain RGBA bitmap.
func (b *Bitmap) IndexedData() ([]uint8, error) {
	if !b.Indexed() {
		return nil, ErrNoIndexedData
	}
	return append([]uint8(nil), b.indexed...), nil
}

func (b *Bitmap) String() string {
	kind := "rgb color"
	if len(b.palette) > 0 {
		kind = "indexed color"
	}
	return fmt.Sprintf("%dx%d, %s", b.width, b.height, kind)
}

// setPixel writes the four channel bytes of c at linear pixel index i.
// Writes past the end of the buffer are silently dropped.
//
// nb! setPixel and blit never touch indexed data.
func (b *Bitmap) setPixel(c color.RGBA, i int) {
	o := i * 4
	if o < 0 || o+4 > len(b.pix) {
		return
	}
	b.pix[o] = c.R()
	b.pix[o+1] = c.G()
	b.pix[o+2] = c.B()
	b.pix[o+3] = c.A()
}

func (b *Bitmap) setPixelAt(c color.RGBA, x, y int) {
	b.setPixel(c, y*b.width+x)
}

// blit copies a rectangular RGBA buffer of the given width into the
// bitmap at offset (x, y). It is a pure RGBA compositing primitive:
// indexed data is left untouched.
func (b *Bitmap) blit(rgba []color.RGBA, x, y, width int) {
	for i, c := range rgba {
		b.setPixelAt(c, i%width+x, i/width+y)
	}
}

// fill sets every pixel to c. Used instead of relying on zero
// initialization so transparent padding is explicit.
func (b *Bitmap) fill(c color.RGBA) {
	for i := 0; i < b.width*b.height; i++ {
		b.setPixel(c, i)
	}
}

func divCeil(n, d int) int {
	return (n + d - 1) / d
}
