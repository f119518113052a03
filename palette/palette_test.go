package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM9/SuperFamiconv/color"
)

func TestSubpaletteAddColor(t *testing.T) {
	s := NewSubpalette(color.ModeSNES, 2)

	require.NoError(t, s.AddColor(color.New(0xff, 0x00, 0x00, 0xff)))
	assert.Equal(t, 1, s.Size())

	// Colors equal after reduction are duplicates
	require.NoError(t, s.AddColor(color.New(0xfe, 0x01, 0x02, 0xff)))
	assert.Equal(t, 1, s.Size())

	require.NoError(t, s.AddColor(color.New(0x00, 0xff, 0x00, 0xff)))
	assert.Equal(t, 2, s.Size())

	err := s.AddColor(color.New(0x00, 0x00, 0xff, 0xff))
	assert.ErrorIs(t, err, ErrPaletteFull)
}

func TestSubpaletteStoresNormalized(t *testing.T) {
	s := NewSubpalette(color.ModeSNES, 4)
	c := color.New(0xc4, 0x61, 0x1d, 0xff)
	require.NoError(t, s.AddColor(c))

	want := color.Normalize(color.Reduce(c, color.ModeSNES), color.ModeSNES)
	assert.Equal(t, []color.RGBA{want}, s.NormalizedColors())
	assert.True(t, s.Contains(want))
}

func TestPaletteAddColors(t *testing.T) {
	p := New(color.ModeSNES, 2, 2)

	colors := []color.RGBA{
		color.New(0xff, 0x00, 0x00, 0xff),
		color.Transparent, // skipped
		color.New(0x00, 0xff, 0x00, 0xff),
		color.New(0x00, 0x00, 0xff, 0xff), // opens second subpalette
		color.New(0xff, 0x00, 0x00, 0xff), // already present
	}
	require.NoError(t, p.AddColors(colors))

	assert.Equal(t, 2, p.Size())
	assert.Equal(t, 2, p.Subpalette(0).Size())
	assert.Equal(t, 1, p.Subpalette(1).Size())

	rows := p.NormalizedColors()
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 2)
	assert.Len(t, rows[1], 1)
}

func TestPaletteFull(t *testing.T) {
	p := New(color.ModeSNES, 1, 1)

	err := p.AddColors([]color.RGBA{
		color.New(0xff, 0x00, 0x00, 0xff),
		color.New(0x00, 0xff, 0x00, 0xff),
	})
	assert.ErrorIs(t, err, ErrPaletteFull)
}

func TestPaletteMaxColorsPerSubpalette(t *testing.T) {
	p := New(color.ModeGameboyColor, 8, 4)
	assert.Equal(t, 4, p.MaxColorsPerSubpalette())
	assert.Equal(t, color.ModeGameboyColor, p.Mode())
}
