package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacking(t *testing.T) {
	c := New(0x12, 0x34, 0x56, 0x78)
	assert.Equal(t, RGBA(0x78563412), c)
	assert.Equal(t, uint8(0x12), c.R())
	assert.Equal(t, uint8(0x34), c.G())
	assert.Equal(t, uint8(0x56), c.B())
	assert.Equal(t, uint8(0x78), c.A())
}

func TestTransparentIsZero(t *testing.T) {
	assert.Equal(t, RGBA(0), Transparent)
	assert.Equal(t, uint8(0), Transparent.A())
}

func TestToRGBA(t *testing.T) {
	pix := []byte{
		0x10, 0x20, 0x30, 0xff,
		0x00, 0x00, 0x00, 0x00,
	}
	v := ToRGBA(pix)
	assert.Equal(t, []RGBA{New(0x10, 0x20, 0x30, 0xff), Transparent}, v)

	// Trailing partial pixel is dropped
	assert.Len(t, ToRGBA(pix[:7]), 1)
}

func TestReduceTransparency(t *testing.T) {
	// Anything below half opaque reduces to the sentinel
	assert.Equal(t, Transparent, Reduce(New(0xff, 0xff, 0xff, 0x7f), ModeSNES))
	assert.NotEqual(t, Transparent, Reduce(New(0xff, 0xff, 0xff, 0x80), ModeSNES))
}

func TestReduceChannelDepth(t *testing.T) {
	c := New(0xff, 0x80, 0x07, 0xff)

	snes := Reduce(c, ModeSNES)
	assert.Equal(t, New(0x1f, 0x10, 0x00, 0xff), snes)

	md := Reduce(c, ModeMegaDrive)
	assert.Equal(t, New(0x07, 0x04, 0x00, 0xff), md)
}

func TestReduceGameboyLuma(t *testing.T) {
	c := Reduce(New(0xff, 0xff, 0xff, 0xff), ModeGameboy)
	assert.Equal(t, New(0x03, 0x03, 0x03, 0xff), c)

	c = Reduce(New(0x00, 0x00, 0x00, 0xff), ModeGameboy)
	assert.Equal(t, New(0x00, 0x00, 0x00, 0xff), c)
}

func TestNormalizeExpansion(t *testing.T) {
	// Maximum reduced values normalize to full intensity
	assert.Equal(t, New(0xff, 0xff, 0xff, 0xff), Normalize(New(0x1f, 0x1f, 0x1f, 0xff), ModeSNES))
	assert.Equal(t, New(0xff, 0xff, 0xff, 0xff), Normalize(New(0x07, 0x07, 0x07, 0xff), ModeMegaDrive))

	// Transparent is a fixed point
	assert.Equal(t, Transparent, Normalize(Transparent, ModeSNES))
}

func TestReduceNormalizeIdempotent(t *testing.T) {
	for _, m := range []Mode{ModeSNES, ModeGameboy, ModeGameboyColor, ModeGBA, ModeMegaDrive, ModePCEngine} {
		c := Normalize(Reduce(New(0xc4, 0x61, 0x1d, 0xff), m), m)
		again := Normalize(Reduce(c, m), m)
		assert.Equal(t, c, again, "mode %s", m)
	}
}

func TestModeFromString(t *testing.T) {
	m, err := ModeFromString("md")
	assert.NoError(t, err)
	assert.Equal(t, ModeMegaDrive, m)

	_, err = ModeFromString("vectrex")
	assert.Error(t, err)
}
