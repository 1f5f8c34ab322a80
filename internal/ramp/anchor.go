package ramp

import (
	"math"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
)

const (
	MinAnchors = 3
	MaxAnchors = 4
)

// Below this HSL saturation a color has no meaningful hue of its own.
const greyishSaturation = 1e-3

type Path int

const (
	// OpenPath runs from the first anchor to the last.
	OpenPath Path = iota
	// ClosedPath returns to the first anchor after the last.
	ClosedPath
)

// AnchorRamp is an 11-point ramp sampled across several anchor colors.
type AnchorRamp struct {
	Anchors     []string                `json:"anchors"`
	Colors      []string                `json:"colors"`
	Diagnostics []colorspace.Diagnostic `json:"diagnostics,omitempty"`
}

// At returns the color at index i, clamped into range.
func (r AnchorRamp) At(i int) string {
	return r.Colors[colorspace.Clamp(i, 0, len(r.Colors)-1)]
}

// Interpolate samples Size evenly spaced points along an open path through
// the anchors. See InterpolatePath.
func Interpolate(anchors ...string) AnchorRamp {
	return InterpolatePath(OpenPath, anchors...)
}

// InterpolatePath spreads the anchors evenly along the path in HSL space
// and samples Size evenly spaced points. Within each segment hue follows a
// sinusoidal ease along the shorter arc, saturation a quadratic curve and
// lightness a straight line, so the result wanders through several hues
// instead of shading a single one. Fewer than MinAnchors anchors are padded
// by repeating the last; anchors past MaxAnchors are ignored.
func InterpolatePath(path Path, anchors ...string) AnchorRamp {
	anchors = padAnchors(anchors)
	r := AnchorRamp{
		Anchors:     make([]string, len(anchors)),
		Colors:      make([]string, Size),
		Diagnostics: colorspace.Check(anchors...),
	}

	points := make([]colorspace.HSL, 0, len(anchors)+1)
	for i, a := range anchors {
		r.Anchors[i] = colorspace.MustNormalize(a)
		points = append(points, colorspace.ToHSL(a))
	}
	if path == ClosedPath {
		points = append(points, points[0])
	}

	segments := len(points) - 1
	for i := range r.Colors {
		pos := float64(i) / float64(Size-1) * float64(segments)
		k := int(math.Floor(pos))
		if k >= segments {
			k = segments - 1
		}
		r.Colors[i] = sampleSegment(points[k], points[k+1], pos-float64(k)).Hex()
	}
	return r
}

func padAnchors(anchors []string) []string {
	out := make([]string, 0, MaxAnchors)
	for _, a := range anchors {
		if len(out) == MaxAnchors {
			break
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		out = append(out, colorspace.Fallback.Hex())
	}
	for len(out) < MinAnchors {
		out = append(out, out[len(out)-1])
	}
	return out
}

func sampleSegment(a, b colorspace.HSL, t float64) colorspace.HSL {
	ha, hb := a.H, b.H
	if a.S < greyishSaturation && b.S >= greyishSaturation {
		ha = hb
	} else if b.S < greyishSaturation && a.S >= greyishSaturation {
		hb = ha
	}

	hueT := (1 - math.Cos(math.Pi*t)) / 2
	satT := t * t
	return colorspace.HSL{
		H: colorspace.NormalizeHue(ha + hueDelta(ha, hb)*hueT),
		S: colorspace.Lerp(a.S, b.S, satT),
		L: colorspace.Lerp(a.L, b.L, t),
	}
}

// hueDelta is the signed shortest rotation from a to b, in (-180,180].
func hueDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
