package bitmap

import (
	"bytes"
	"image"
	"image/png"
	"io"
)

// EncodeError wraps the codec's diagnostic for a failed encode.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "bitmap: encode: " + e.Err.Error() }

func (e *EncodeError) Unwrap() error { return e.Err }

// Image returns the bitmap's pixels as a stdlib image. The pixel buffer
// is copied so the bitmap stays safe for concurrent reads.
func (b *Bitmap) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    append([]byte(nil), b.pix...),
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// Encode writes the bitmap to w as an 8-bit RGBA PNG, the only format
// the converter persists. Index data, if any, is not written; a decoded
// copy is reconstructed from the palette by binding it again.
func (b *Bitmap) Encode(w io.Writer) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// EncodeBytes is Encode into a fresh byte slice.
func (b *Bitmap) EncodeBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
