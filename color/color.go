/*
Package color implements the packed color value used throughout the
converter and the per-console color reduction rules.

A color is packed into 32 bits as R | G<<8 | B<<16 | A<<24. The zero
value is the transparent sentinel: zero alpha, zero RGB. It stands for
"no color" and is what out-of-palette and background pixels reduce to.
*/
package color

// RGBA is a packed 32-bit color, one byte per channel, red in the low
// byte.
type RGBA uint32

// Transparent is the sentinel for "no color". It compares equal to the
// zero value so zero-initialized pixel buffers are fully transparent.
const Transparent RGBA = 0

// New packs four 8-bit channels into an RGBA value.
func New(r, g, b, a uint8) RGBA {
	return RGBA(r) | RGBA(g)<<8 | RGBA(b)<<16 | RGBA(a)<<24
}

// R returns the red channel.
func (c RGBA) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c RGBA) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGBA) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c RGBA) A() uint8 { return uint8(c >> 24) }

// ToRGBA reinterprets a flat R,G,B,A byte buffer as packed colors. Any
// trailing bytes short of a full pixel are ignored.
func ToRGBA(pix []byte) []RGBA {
	v := make([]RGBA, 0, len(pix)/4)
	for i := 0; i+3 < len(pix); i += 4 {
		v = append(v, New(pix[i], pix[i+1], pix[i+2], pix[i+3]))
	}
	return v
}
