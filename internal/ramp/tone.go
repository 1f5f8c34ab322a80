// Package ramp generates ordered color progressions: 11-stop numeric shade
// ramps from one base color, 11-point ramps interpolated across several
// anchors, and the 8-step neutral ladder used to bootstrap a theme from a
// single background.
package ramp

import (
	"math"
	"strconv"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/contrast"
)

// Stops are the numeric labels of a shade ramp, lightest first.
var Stops = [Size]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

const Size = 11

// OKLCH lightness per stop, matched by eye to conventional 50-950 scales.
var toneTargets = [Size]float64{0.985, 0.967, 0.922, 0.870, 0.708, 0.556, 0.439, 0.371, 0.269, 0.205, 0.145}

const (
	lightChromaScale  = 0.05
	lightChromaWeight = 0.8
	darkChromaScale   = 0.6
	darkChromaWeight  = 0.9
)

type Shade struct {
	Stop          int              `json:"stop"`
	Hex           string           `json:"hex"`
	Luminance     float64          `json:"luminance"`
	ContrastWhite float64          `json:"contrastWhite"`
	ContrastBlack float64          `json:"contrastBlack"`
	Level         contrast.Level   `json:"level"`
	OKLCH         colorspace.OKLCH `json:"oklch"`
}

// ShadeRamp is always exactly Size shades in Stops order. Shades are ordered
// by intended darkness; measured luminance is not guaranteed to be monotonic
// because every stop is interpolated from the base rather than from its
// neighbor, and gamut mapping can reorder near-equal stops.
type ShadeRamp struct {
	Base        string                  `json:"base"`
	AnchorStop  int                     `json:"anchorStop"`
	Shades      []Shade                 `json:"shades"`
	Diagnostics []colorspace.Diagnostic `json:"diagnostics,omitempty"`
}

// Tone builds a shade ramp around base. The base color is placed unmodified
// at the stop whose target lightness is nearest its own; lighter stops
// blend toward a near-white endpoint and darker stops toward a saturated
// dark endpoint, with hue held constant. Malformed input degrades to a
// neutral gray ramp and is reported in Diagnostics.
func Tone(base string) ShadeRamp {
	diags := colorspace.Check(base)
	o, _ := colorspace.Resolve(base)
	baseHex := colorspace.MustNormalize(base)
	anchor := nearestTarget(o.L)

	lightEnd := colorspace.OKLCH{L: toneTargets[0], C: o.C * lightChromaScale, H: o.H}
	darkEnd := colorspace.OKLCH{L: toneTargets[Size-1], C: o.C * darkChromaScale, H: o.H}

	r := ShadeRamp{
		Base:        baseHex,
		AnchorStop:  Stops[anchor],
		Shades:      make([]Shade, 0, Size),
		Diagnostics: diags,
	}

	for i, stop := range Stops {
		var c colorspace.OKLCH
		switch {
		case i == anchor:
			r.Shades = append(r.Shades, newShade(stop, baseHex, o))
			continue
		case i < anchor:
			t := progress(toneTargets[anchor], toneTargets[i], toneTargets[0])
			c = blend(o, lightEnd, t, lightChromaWeight*t)
		default:
			t := progress(toneTargets[anchor], toneTargets[i], toneTargets[Size-1])
			c = blend(o, darkEnd, t, darkChromaWeight*t)
		}
		hex := c.Hex()
		r.Shades = append(r.Shades, newShade(stop, hex, colorspace.ToOklch(hex)))
	}
	return r
}

// Shade returns the shade at the given stop label.
func (r ShadeRamp) Shade(stop int) (Shade, bool) {
	for _, s := range r.Shades {
		if s.Stop == stop {
			return s, true
		}
	}
	return Shade{}, false
}

// Hex returns the color at stop, or the base color for an unknown stop.
func (r ShadeRamp) Hex(stop int) string {
	if s, ok := r.Shade(stop); ok {
		return s.Hex
	}
	return r.Base
}

func (r ShadeRamp) Hexes() []string {
	out := make([]string, len(r.Shades))
	for i, s := range r.Shades {
		out[i] = s.Hex
	}
	return out
}

// Map keys the ramp by stop label ("50", "100", ...).
func (r ShadeRamp) Map() map[string]string {
	out := make(map[string]string, len(r.Shades))
	for _, s := range r.Shades {
		out[strconv.Itoa(s.Stop)] = s.Hex
	}
	return out
}

// NearestStop returns the stop label whose target lightness is closest to l.
func NearestStop(l float64) int {
	return Stops[nearestTarget(l)]
}

func nearestTarget(l float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, target := range toneTargets {
		if d := math.Abs(target - l); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// progress is how far at lies between from and to, in [0,1].
func progress(from, at, to float64) float64 {
	if to == from {
		return 1
	}
	return colorspace.Clamp((at-from)/(to-from), 0, 1)
}

func blend(from, to colorspace.OKLCH, tl, tc float64) colorspace.OKLCH {
	return colorspace.OKLCH{
		L: colorspace.Lerp(from.L, to.L, tl),
		C: colorspace.Lerp(from.C, to.C, tc),
		H: from.H,
	}
}

func newShade(stop int, hex string, o colorspace.OKLCH) Shade {
	onWhite := contrast.Ratio(hex, contrast.White)
	onBlack := contrast.Ratio(hex, contrast.Black)
	return Shade{
		Stop:          stop,
		Hex:           hex,
		Luminance:     colorspace.RelativeLuminance(hex),
		ContrastWhite: onWhite,
		ContrastBlack: onBlack,
		Level:         contrast.Classify(math.Max(onWhite, onBlack)),
		OKLCH:         o,
	}
}
