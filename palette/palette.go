/*
Package palette implements the ordered color lists that indexed console
graphics are bound to.

A Subpalette is one bounded row of colors for a particular console mode;
a Palette is an ordered collection of subpalettes with a uniform
capacity. Colors are stored reduced and normalized so lookups are exact
byte comparisons, never nearest-color matches.
*/
package palette

import (
	"errors"

	"github.com/ARM9/SuperFamiconv/color"
)

var (
	// ErrPaletteFull is returned when a color does not fit in the
	// remaining palette capacity.
	ErrPaletteFull = errors.New("palette: no room for color")
)

// Subpalette is an ordered, bounded list of normalized colors valid for
// one console mode. Insertion order defines the index values.
type Subpalette struct {
	mode      color.Mode
	maxColors int
	colors    []color.RGBA
}

// NewSubpalette returns an empty subpalette holding at most maxColors
// colors for the given mode.
func NewSubpalette(mode color.Mode, maxColors int) *Subpalette {
	return &Subpalette{
		mode:      mode,
		maxColors: maxColors,
	}
}

// Mode returns the console mode the subpalette's colors are reduced for.
func (s *Subpalette) Mode() color.Mode { return s.mode }

// Size returns the number of colors added so far.
func (s *Subpalette) Size() int { return len(s.colors) }

// Contains reports whether the subpalette already holds c.
func (s *Subpalette) Contains(c color.RGBA) bool {
	return s.index(c) >= 0
}

func (s *Subpalette) index(c color.RGBA) int {
	for i, v := range s.colors {
		if v == c {
			return i
		}
	}
	return -1
}

// AddColor appends a color, reducing and normalizing it for the
// subpalette's mode first. Duplicates are ignored. Returns
// ErrPaletteFull once capacity is reached.
func (s *Subpalette) AddColor(c color.RGBA) error {
	c = color.Normalize(color.Reduce(c, s.mode), s.mode)
	if s.Contains(c) {
		return nil
	}
	if len(s.colors) >= s.maxColors {
		return ErrPaletteFull
	}
	s.colors = append(s.colors, c)
	return nil
}

// NormalizedColors returns a copy of the subpalette's colors in index
// order.
func (s *Subpalette) NormalizedColors() []color.RGBA {
	return append([]color.RGBA(nil), s.colors...)
}

// Palette is an ordered list of subpalettes sharing one mode and one
// per-subpalette capacity.
type Palette struct {
	mode                color.Mode
	maxSubpalettes      int
	colorsPerSubpalette int
	subpalettes         []*Subpalette
}

// New returns an empty palette of at most maxSubpalettes rows, each
// holding at most colorsPerSubpalette colors.
func New(mode color.Mode, maxSubpalettes, colorsPerSubpalette int) *Palette {
	return &Palette{
		mode:                mode,
		maxSubpalettes:      maxSubpalettes,
		colorsPerSubpalette: colorsPerSubpalette,
	}
}

// Mode returns the palette's console mode.
func (p *Palette) Mode() color.Mode { return p.mode }

// MaxColorsPerSubpalette returns the uniform subpalette capacity.
func (p *Palette) MaxColorsPerSubpalette() int { return p.colorsPerSubpalette }

// Size returns the number of subpalettes populated so far.
func (p *Palette) Size() int { return len(p.subpalettes) }

// Subpalette returns the i'th subpalette.
func (p *Palette) Subpalette(i int) *Subpalette { return p.subpalettes[i] }

// AddColors reduces and normalizes each color under the palette's mode
// and files the distinct results into subpalettes in encounter order,
// opening a new subpalette whenever the current one fills up.
// Transparent pixels are skipped; transparency is carried by index 0 at
// binding time, not by a palette entry. Returns ErrPaletteFull when the
// distinct colors exceed the total capacity.
func (p *Palette) AddColors(colors []color.RGBA) error {
	for _, c := range colors {
		c = color.Normalize(color.Reduce(c, p.mode), p.mode)
		if c == color.Transparent {
			continue
		}
		if p.contains(c) {
			continue
		}
		if err := p.add(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Palette) contains(c color.RGBA) bool {
	for _, s := range p.subpalettes {
		if s.Contains(c) {
			return true
		}
	}
	return false
}

func (p *Palette) add(c color.RGBA) error {
	if n := len(p.subpalettes); n == 0 || p.subpalettes[n-1].Size() >= p.colorsPerSubpalette {
		if n >= p.maxSubpalettes {
			return ErrPaletteFull
		}
		p.subpalettes = append(p.subpalettes, NewSubpalette(p.mode, p.colorsPerSubpalette))
	}
	return p.subpalettes[len(p.subpalettes)-1].AddColor(c)
}

// NormalizedColors returns each subpalette's colors, outer slice in
// subpalette order.
func (p *Palette) NormalizedColors() [][]color.RGBA {
	v := make([][]color.RGBA, len(p.subpalettes))
	for i, s := range p.subpalettes {
		v[i] = s.NormalizedColors()
	}
	return v
}
