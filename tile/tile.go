/*
Package tile implements the fixed-size graphics unit consoles address
natively and the ordered tilesets that sheets and character data are
generated from.
*/
package tile

import (
	"errors"

	"github.com/ARM9/SuperFamiconv/bitmap"
	"github.com/ARM9/SuperFamiconv/color"
)

// ErrTileSize is returned when a bitmap of the wrong dimensions is
// added to a tileset.
var ErrTileSize = errors.New("tile: bitmap does not match tile size")

// Tile is one fixed-size rectangle of pixels, optionally carrying the
// palette indices it was cut from.
type Tile struct {
	width   int
	height  int
	rgba    []color.RGBA
	indexed []uint8
}

// New captures a crop as a tile. Index data is carried over when the
// crop has it.
func New(b *bitmap.Bitmap) Tile {
	t := Tile{
		width:  b.Width(),
		height: b.Height(),
		rgba:   b.RGBAData(),
	}
	if indexed, err := b.IndexedData(); err == nil {
		t.indexed = indexed
	}
	return t
}

// Width returns the tile width in pixels.
func (t Tile) Width() int { return t.width }

// Height returns the tile height in pixels.
func (t Tile) Height() int { return t.height }

// RGBAData returns the tile's packed pixels, row-major.
func (t Tile) RGBAData() []color.RGBA { return t.rgba }

// IndexedData returns the tile's palette indices, nil when the tile was
// cut from a plain RGBA bitmap.
func (t Tile) IndexedData() []uint8 { return t.indexed }

// key is the dedup identity: dimensions plus exact pixel content.
func (t Tile) key() string {
	b := make([]byte, 0, 4+len(t.rgba)*4)
	b = append(b, byte(t.width), byte(t.width>>8), byte(t.height), byte(t.height>>8))
	for _, c := range t.rgba {
		b = append(b, c.R(), c.G(), c.B(), c.A())
	}
	return string(b)
}

// Tileset is an ordered collection of uniformly sized tiles. With
// deduplication enabled, adding a tile identical to an earlier one
// returns the earlier tile's index instead of growing the set.
type Tileset struct {
	tileWidth  int
	tileHeight int
	tiles      []Tile
	dedup      map[string]int
}

// NewTileset returns an empty tileset of tileWidth by tileHeight tiles.
func NewTileset(tileWidth, tileHeight int, dedup bool) *Tileset {
	ts := &Tileset{
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
	}
	if dedup {
		ts.dedup = make(map[string]int)
	}
	return ts
}

// NewFromBitmap slices a bitmap into a row-major tileset.
func NewFromBitmap(b *bitmap.Bitmap, tileWidth, tileHeight int, dedup bool) *Tileset {
	ts := NewTileset(tileWidth, tileHeight, dedup)
	for _, crop := range b.Crops(tileWidth, tileHeight) {
		// Crops are always exactly tile sized.
		_, _ = ts.Add(New(crop))
	}
	return ts
}

// Add appends a tile and returns its index in the set. With
// deduplication enabled a previously seen tile returns its existing
// index. Tiles of the wrong size return ErrTileSize.
func (ts *Tileset) Add(t Tile) (int, error) {
	if t.width != ts.tileWidth || t.height != ts.tileHeight {
		return -1, ErrTileSize
	}
	if ts.dedup != nil {
		k := t.key()
		if i, ok := ts.dedup[k]; ok {
			return i, nil
		}
		ts.dedup[k] = len(ts.tiles)
	}
	ts.tiles = append(ts.tiles, t)
	return len(ts.tiles) - 1, nil
}

// TileWidth returns the uniform tile width.
func (ts *Tileset) TileWidth() int { return ts.tileWidth }

// TileHeight returns the uniform tile height.
func (ts *Tileset) TileHeight() int { return ts.tileHeight }

// Size returns the number of tiles in the set.
func (ts *Tileset) Size() int { return len(ts.tiles) }

// Tiles returns the tiles in insertion order.
func (ts *Tileset) Tiles() []Tile { return ts.tiles }

// Tile returns the i'th tile.
func (ts *Tileset) Tile(i int) Tile { return ts.tiles[i] }

// TileRGBA returns the i'th tile's packed pixels, satisfying the sheet
// assembly contract in package bitmap.
func (ts *Tileset) TileRGBA(i int) []color.RGBA { return ts.tiles[i].rgba }

// IndexedData concatenates every tile's palette indices in tile order,
// the raw layout character data generators consume.
func (ts *Tileset) IndexedData() ([]uint8, error) {
	v := make([]uint8, 0, len(ts.tiles)*ts.tileWidth*ts.tileHeight)
	for _, t := range ts.tiles {
		if t.indexed == nil {
			return nil, bitmap.ErrNoIndexedData
		}
		v = append(v, t.indexed...)
	}
	return v, nil
}
