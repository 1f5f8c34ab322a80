package colorspace

import (
	"github.com/lucasb-eyer/go-colorful"
)

// HSL uses degrees for H and [0,1] for S and L.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// ToHSL converts s to HSL, substituting the Fallback gray for malformed input.
func ToHSL(s string) HSL {
	c, err := Parse(s)
	if err != nil {
		c = Fallback.Color()
	}
	h, sat, l := c.Hsl()
	return HSL{H: h, S: sat, L: l}
}

func (c HSL) Hex() string {
	if !finite(c.H) || !finite(c.S) || !finite(c.L) {
		return Fallback.Hex()
	}
	return colorful.Hsl(NormalizeHue(c.H), Clamp(c.S, 0, 1), Clamp(c.L, 0, 1)).Clamped().Hex()
}

// LCH is CIE LCh(ab) with L in [0,100] and C on the same scale, D65 white.
type LCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// ToLCH converts s to CIE LCH, substituting the Fallback gray for malformed
// input.
func ToLCH(s string) LCH {
	c, err := Parse(s)
	if err != nil {
		c = Fallback.Color()
	}
	h, ch, l := c.Hcl()
	return LCH{L: l * 100, C: ch * 100, H: NormalizeHue(h)}
}

func (c LCH) Hex() string {
	if !finite(c.H) || !finite(c.C) || !finite(c.L) {
		return Fallback.Hex()
	}
	return colorful.Hcl(NormalizeHue(c.H), c.C/100, Clamp(c.L, 0, 100)/100).Clamped().Hex()
}

// RGB255 returns the 8-bit channels of s, or of the Fallback gray.
func RGB255(s string) (r, g, b uint8) {
	c, err := Parse(s)
	if err != nil {
		c = Fallback.Color()
	}
	return c.RGB255()
}
