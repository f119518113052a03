package bitmap

import (
	"bytes"
	"image"
	stdcolor "image/color"
	"image/draw"
	"image/png"

	"github.com/ARM9/SuperFamiconv/color"
)

// DecodeError wraps the codec's diagnostic for a failed decode.
// Malformed input is fatal to the operation; no partial bitmap is ever
// produced.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "bitmap: decode: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode normalizes a PNG file of any standard color type and bit
// depth into a canonical 8-bit RGBA bitmap.
//
// The decoder yields the file's native representation, which tells us
// the stored color type and depth: a palette-indexed file keeps its
// index buffer and palette table alongside the expanded pixels, while
// RGB, grayscale, grayscale+alpha and 16-bit files go through a
// conversion pass down to 8-bit RGBA. Downstream palette binding and
// tile slicing only ever see the canonical form.
func Decode(data []byte) (*Bitmap, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return FromImage(img), nil
}

// FromImage converts any decoded image into a canonical bitmap. A
// paletted image keeps its index data and palette, same as Decode; any
// other representation converts to plain 8-bit RGBA.
func FromImage(img image.Image) *Bitmap {
	switch m := img.(type) {
	case *image.Paletted:
		return fromPaletted(m)
	case *image.NRGBA:
		return fromNRGBA(m)
	default:
		r := img.Bounds()
		n := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(n, n.Bounds(), img, r.Min, draw.Src)
		return fromNRGBA(n)
	}
}

// fromNRGBA copies the pixel rows out of an already canonical 8-bit
// RGBA image.
func fromNRGBA(m *image.NRGBA) *Bitmap {
	r := m.Bounds()
	b := New(r.Dx(), r.Dy())
	for y := 0; y < b.height; y++ {
		src := m.PixOffset(r.Min.X, r.Min.Y+y)
		copy(b.pix[y*b.width*4:(y+1)*b.width*4], m.Pix[src:])
	}
	return b
}

// fromPaletted captures the native index buffer and palette table,
// expanding the palette per index for the RGBA buffer.
func fromPaletted(m *image.Paletted) *Bitmap {
	r := m.Bounds()
	b := New(r.Dx(), r.Dy())

	b.palette = make([]color.RGBA, len(m.Palette))
	for i, c := range m.Palette {
		n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
		b.palette[i] = color.New(n.R, n.G, n.B, n.A)
	}

	b.indexed = make([]uint8, b.width*b.height)
	for y := 0; y < b.height; y++ {
		src := m.PixOffset(r.Min.X, r.Min.Y+y)
		copy(b.indexed[y*b.width:(y+1)*b.width], m.Pix[src:])
	}

	for i, idx := range b.indexed {
		b.setPixel(b.palette[idx], i)
	}
	return b
}
