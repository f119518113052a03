package bitmap

import "github.com/ARM9/SuperFamiconv/color"

// Crop returns a new width by height bitmap holding the source region
// at (x, y). The result is always exactly the requested size: regions
// overhanging the source edge are padded with transparent pixels, and
// an origin entirely outside the source yields an all-transparent
// bitmap. Crop never fails; tile grids routinely overhang the source
// and expect padded results rather than errors.
//
// The source palette is propagated unchanged and, when the source is
// indexed, the index buffer is cropped alongside the pixels with zero
// padding.
func (b *Bitmap) Crop(x, y, width, height int) *Bitmap {
	out := &Bitmap{
		width:   width,
		height:  height,
		pix:     make([]byte, width*height*4),
		palette: b.palette,
	}
	out.fill(color.Transparent)

	if x > b.width || y > b.height {
		if b.Indexed() {
			out.indexed = make([]uint8, width*height)
		}
		return out
	}

	blitWidth := min(width, b.width-x)
	blitHeight := min(height, b.height-y)

	for iy := 0; iy < blitHeight; iy++ {
		src := ((iy+y)*b.width + x) * 4
		dst := iy * width * 4
		copy(out.pix[dst:dst+blitWidth*4], b.pix[src:])
	}

	if b.Indexed() {
		out.indexed = make([]uint8, width*height)
		for iy := 0; iy < blitHeight; iy++ {
			src := (iy+y)*b.width + x
			dst := iy * width
			copy(out.indexed[dst:dst+blitWidth], b.indexed[src:])
		}
	}

	return out
}

// Crops slices the bitmap into a row-major grid of tileWidth by
// tileHeight crops, left to right then top to bottom. Tiles overhanging
// the right or bottom edge come back transparent-padded.
func (b *Bitmap) Crops(tileWidth, tileHeight int) []*Bitmap {
	var v []*Bitmap
	for y := 0; y < b.height; y += tileHeight {
		for x := 0; x < b.width; x += tileWidth {
			v = append(v, b.Crop(x, y, tileWidth, tileHeight))
		}
	}
	return v
}

// RGBACrops is Crops reduced to each tile's packed RGBA pixels.
func (b *Bitmap) RGBACrops(tileWidth, tileHeight int) [][]color.RGBA {
	var v [][]color.RGBA
	for y := 0; y < b.height; y += tileHeight {
		for x := 0; x < b.width; x += tileWidth {
			v = append(v, b.Crop(x, y, tileWidth, tileHeight).RGBAData())
		}
	}
	return v
}

// IndexedCrops is Crops reduced to each tile's palette indices. It
// fails up front with ErrNoIndexedData on a plain RGBA bitmap rather
// than emitting empty index buffers.
func (b *Bitmap) IndexedCrops(tileWidth, tileHeight int) ([][]uint8, error) {
	if !b.Indexed() {
		return nil, ErrNoIndexedData
	}
	var v [][]uint8
	for y := 0; y < b.height; y += tileHeight {
		for x := 0; x < b.width; x += tileWidth {
			indexed, err := b.Crop(x, y, tileWidth, tileHeight).IndexedData()
			if err != nil {
				return nil, err
			}
			v = append(v, indexed)
		}
	}
	return v, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
