package color

import "fmt"

// Mode selects a console's color reduction policy: how many bits each
// channel keeps on the target hardware.
type Mode int

const (
	ModeSNES Mode = iota
	ModeGameboy
	ModeGameboyColor
	ModeGBA
	ModeMegaDrive
	ModePCEngine
)

var modeNames = map[Mode]string{
	ModeSNES:         "snes",
	ModeGameboy:      "gb",
	ModeGameboyColor: "gbc",
	ModeGBA:          "gba",
	ModeMegaDrive:    "md",
	ModePCEngine:     "pce",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ModeFromString maps a mode name as used on the command line to its
// Mode value.
func ModeFromString(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("color: unknown mode %q", s)
}

// bits returns the channel depth for the mode. The Gameboy is handled
// separately as it stores 2-bit luminance rather than RGB.
func (m Mode) bits() uint {
	switch m {
	case ModeSNES, ModeGameboyColor, ModeGBA:
		return 5
	case ModeMegaDrive, ModePCEngine:
		return 3
	case ModeGameboy:
		return 2
	}
	return 8
}

// Reduce truncates a color to the channel depth of the given mode.
// Anything less than half opaque reduces to Transparent; everything
// else comes out fully opaque, since none of the supported consoles
// store per-pixel alpha.
func Reduce(c RGBA, m Mode) RGBA {
	if c.A() < 0x80 {
		return Transparent
	}
	bits := m.bits()
	if m == ModeGameboy {
		y := (299*uint32(c.R()) + 587*uint32(c.G()) + 114*uint32(c.B())) / 1000
		v := uint8(y) >> (8 - bits)
		return New(v, v, v, 0xff)
	}
	return New(c.R()>>(8-bits), c.G()>>(8-bits), c.B()>>(8-bits), 0xff)
}

// Normalize expands a reduced color back to full 8-bit channels by bit
// replication, so that the reduced and normalized forms of equal colors
// always compare equal. Transparent normalizes to itself.
func Normalize(c RGBA, m Mode) RGBA {
	if c == Transparent {
		return Transparent
	}
	bits := m.bits()
	return New(expand(c.R(), bits), expand(c.G(), bits), expand(c.B(), bits), 0xff)
}

func expand(v uint8, bits uint) uint8 {
	v <<= 8 - bits
	out := v
	for shift := bits; shift < 8; shift += bits {
		out |= v >> shift
	}
	return out
}
