// Package colorspace converts between hex, RGB, HSL, OKLCH and CIE LCH.
//
// Every conversion here is total: malformed input never panics and never
// returns a half-built value. Functions that can see bad input come in two
// flavors, a strict one returning an error (Parse, Resolve) and a total one
// that substitutes the neutral fallback (ToOklch, RelativeLuminance, ToHSL).
// Hex output is always lowercase #rrggbb.
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/AvengeMedia/danktheme/internal/log"
)

var ErrInvalidColor = errors.New("invalid color")

// FallbackLuminance is reported for colors that cannot be parsed.
const FallbackLuminance = 0.5

// Below this chroma the hue angle is noise and is pinned to zero.
const achromatic = 1e-4

const gamutEpsilon = 1e-6

// OKLCH is a color in the OKLCH space. L is in [0,1], C is >= 0 and H is in
// degrees [0,360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// Fallback is the neutral mid-gray substituted for unparseable colors.
var Fallback = OKLCH{L: 0.5, C: 0, H: 0}

// Diagnostic describes a malformed color that was replaced by the fallback.
type Diagnostic struct {
	Input string `json:"input"`
	Err   error  `json:"-"`
}

func (d Diagnostic) Error() string {
	return d.Err.Error()
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Parse accepts #rgb, #rrggbb and #rrggbbaa (alpha is dropped), with or
// without the leading '#', in any case.
func Parse(s string) (colorful.Color, error) {
	hex := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#")
	switch len(hex) {
	case 3, 6:
	case 8:
		hex = hex[:6]
	default:
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// Normalize returns the canonical lowercase #rrggbb form of s.
func Normalize(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// MustNormalize is Normalize with the fallback color substituted on error.
func MustNormalize(s string) string {
	hex, err := Normalize(s)
	if err != nil {
		return Fallback.Hex()
	}
	return hex
}

// Valid reports whether s parses as a color.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// FromColor converts a go-colorful color to OKLCH.
func FromColor(c colorful.Color) OKLCH {
	l, ch, h := c.OkLch()
	return OKLCH{L: l, C: ch, H: h}.sanitized()
}

// Resolve converts s to OKLCH. On failure it returns Fallback together with
// an error wrapping ErrInvalidColor; the returned value is always usable.
func Resolve(s string) (OKLCH, error) {
	c, err := Parse(s)
	if err != nil {
		return Fallback, Diagnostic{Input: s, Err: err}
	}
	return FromColor(c), nil
}

// ToOklch converts s to OKLCH, substituting Fallback for malformed input
// and logging a warning.
func ToOklch(s string) OKLCH {
	o, err := Resolve(s)
	if err != nil {
		warnFallback(err)
	}
	return o
}

// ToHex converts an OKLCH triple to #rrggbb.
func ToHex(o OKLCH) string {
	return o.Hex()
}

// Hex maps o into the sRGB gamut by reducing chroma at constant lightness
// and hue, then formats it.
func (o OKLCH) Hex() string {
	return o.Color().Hex()
}

// Color returns the in-gamut sRGB color for o.
func (o OKLCH) Color() colorful.Color {
	o = o.sanitized()
	c := colorful.OkLch(o.L, o.C, o.H)
	if inGamut(c) {
		return c.Clamped()
	}

	lo, hi := 0.0, o.C
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		if inGamut(colorful.OkLch(o.L, mid, o.H)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return colorful.OkLch(o.L, lo, o.H).Clamped()
}

// Shift returns o with lightness moved by delta, clamped to [0,1].
func (o OKLCH) Shift(delta float64) OKLCH {
	o.L = Clamp(o.L+delta, 0, 1)
	return o
}

// CSS formats o as a CSS oklch() function.
func (o OKLCH) CSS() string {
	o = o.sanitized()
	return fmt.Sprintf("oklch(%.3f %.3f %.1f)", o.L, o.C, o.H)
}

func (o OKLCH) sanitized() OKLCH {
	if !finite(o.L) || !finite(o.C) || !finite(o.H) {
		return Fallback
	}
	o.L = Clamp(o.L, 0, 1)
	if o.C < achromatic {
		o.C = math.Max(o.C, 0)
		o.H = 0
	}
	o.H = NormalizeHue(o.H)
	return o
}

// NormalizeHue wraps h into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDistance is the shortest angular distance between two hues, in [0,180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(NormalizeHue(a) - NormalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// RelativeLuminance is the WCAG relative luminance of s in [0,1], or
// FallbackLuminance with a logged warning if s does not parse.
func RelativeLuminance(s string) float64 {
	c, err := Parse(s)
	if err != nil {
		warnFallback(err)
		return FallbackLuminance
	}
	return Luminance(c)
}

// Luminance is the WCAG relative luminance of c.
func Luminance(c colorful.Color) float64 {
	c = c.Clamped()
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Check reports every malformed input, logging each one at warn level.
func Check(inputs ...string) []Diagnostic {
	diags := Diagnose(inputs...)
	for _, d := range diags {
		warnFallback(d)
	}
	return diags
}

// Diagnose is Check without the logging, for callers that report the
// diagnostics themselves.
func Diagnose(inputs ...string) []Diagnostic {
	var diags []Diagnostic
	for _, in := range inputs {
		if _, err := Parse(in); err != nil {
			diags = append(diags, Diagnostic{Input: in, Err: err})
		}
	}
	return diags
}

func warnFallback(err error) {
	log.Warnf("%v, using neutral fallback", err)
}

func inGamut(c colorful.Color) bool {
	return c.R >= -gamutEpsilon && c.R <= 1+gamutEpsilon &&
		c.G >= -gamutEpsilon && c.G <= 1+gamutEpsilon &&
		c.B >= -gamutEpsilon && c.B <= 1+gamutEpsilon
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
