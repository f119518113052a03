package superfamiconv

import (
	"image"
	stdcolor "image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/ARM9/SuperFamiconv/bitmap"
)

// reduce runs a median cut quantizer over the bitmap so that at most
// maxColors distinct colors remain. This happens strictly before
// palette binding; binding never does color-distance matching itself.
func (c *Converter) reduce(b *bitmap.Bitmap, maxColors int) (*bitmap.Bitmap, error) {
	src := b.Image()

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(stdcolor.Palette, 0, maxColors), src)

	dst := image.NewPaletted(src.Bounds(), p)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	c.logger.Printf("quantized image to %d color(s)\n", len(p))

	return bitmap.FromImage(dst), nil
}
