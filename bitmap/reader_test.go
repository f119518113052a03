package bitmap

import (
	"bytes"
	"image"
	stdcolor "image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM9/SuperFamiconv/color"
)

// encodePNG authors a PNG fixture from any stdlib image. The encoder
// preserves the image's native representation, so a Paletted input
// makes a palette-indexed file and a Gray16 input a 16-bit grayscale
// one.
func encodePNG(t *testing.T, m image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, m))
	return buf.Bytes()
}

func TestDecodePaletted(t *testing.T) {
	pal := stdcolor.Palette{
		stdcolor.NRGBA{0x00, 0x00, 0x00, 0xff},
		stdcolor.NRGBA{0xff, 0x00, 0x00, 0xff},
		stdcolor.NRGBA{0x00, 0xff, 0x00, 0xff},
	}
	m := image.NewPaletted(image.Rect(0, 0, 4, 2), pal)
	for i := range m.Pix {
		m.Pix[i] = uint8(i % 3)
	}

	b, err := Decode(encodePNG(t, m))
	require.NoError(t, err)

	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 2, b.Height())

	require.True(t, b.Indexed())
	indexed, err := b.IndexedData()
	require.NoError(t, err)
	require.Len(t, indexed, 8)

	p := b.Palette()
	require.Len(t, p, 3)
	for i, idx := range indexed {
		assert.Less(t, int(idx), len(p))
		assert.Equal(t, p[idx], b.RGBAAt(i))
	}
}

func TestDecodeGray16(t *testing.T) {
	m := image.NewGray16(image.Rect(0, 0, 2, 2))
	m.SetGray16(0, 0, stdcolor.Gray16{Y: 0xffff})
	m.SetGray16(1, 1, stdcolor.Gray16{Y: 0x8080})

	b, err := Decode(encodePNG(t, m))
	require.NoError(t, err)

	// Non-8-bit grayscale converts to plain RGBA: no index data,
	// gray replicated into R, G and B, alpha opaque.
	assert.False(t, b.Indexed())
	assert.Nil(t, b.Palette())
	assert.Equal(t, color.New(0xff, 0xff, 0xff, 0xff), b.RGBAAt(0))
	assert.Equal(t, color.New(0x80, 0x80, 0x80, 0xff), b.RGBAAt(3))
}

func TestDecodeNRGBA(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.SetNRGBA(0, 0, stdcolor.NRGBA{0x12, 0x34, 0x56, 0x78})
	m.SetNRGBA(1, 0, stdcolor.NRGBA{0xff, 0x00, 0x00, 0xff})

	b, err := Decode(encodePNG(t, m))
	require.NoError(t, err)

	assert.False(t, b.Indexed())
	assert.Equal(t, color.New(0x12, 0x34, 0x56, 0x78), b.RGBAAt(0))
	assert.Equal(t, color.New(0xff, 0x00, 0x00, 0xff), b.RGBAAt(1))
}

func TestDecodeMalformed(t *testing.T) {
	b, err := Decode([]byte("not a png"))
	assert.Nil(t, b)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.NotEmpty(t, derr.Error())
}

func TestFromImageOffsetBounds(t *testing.T) {
	m := image.NewNRGBA(image.Rect(3, 5, 5, 7))
	m.SetNRGBA(3, 5, stdcolor.NRGBA{0xff, 0x00, 0x00, 0xff})

	b := FromImage(m)
	assert.Equal(t, 2, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, color.New(0xff, 0x00, 0x00, 0xff), b.RGBAAt(0))
}
