// Package chart picks the five chart colors of a token set from the
// canonical accents.
package chart

import (
	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/contrast"
	"github.com/AvengeMedia/danktheme/internal/log"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

const (
	Count = 5

	// Accents closer than this many degrees of hue count as one.
	HueThreshold = 8.0
	// MinContrast is the chart color vs background floor.
	MinContrast = 2.6

	nudgeStep     = 0.02
	maxNudges     = 12
	minDistinct   = 3
	variantDarker = 0.12
	variantLifted = 0.1
)

// Select returns Count chart colors for bg. Accents are deduplicated by
// hue, padded to three by repeating the last survivor, and followed by two
// lightness variants of the first two. Each color under MinContrast
// against bg is nudged away from bg's lightness in small steps; if the
// budget runs out the best attempt is kept.
func Select(accents []string, bg string, mode theme.Mode) []string {
	colorspace.Check(bg)
	bg = colorspace.MustNormalize(bg)
	distinct := Dedup(accents)
	for len(distinct) < minDistinct {
		distinct = append(distinct, distinct[len(distinct)-1])
	}

	d1, d2 := -variantDarker, variantLifted
	if !mode.IsLight() {
		d1, d2 = variantDarker, -variantLifted
	}
	candidates := []colorspace.OKLCH{
		distinct[0],
		distinct[1],
		distinct[2],
		distinct[0].Shift(d1),
		distinct[1].Shift(d2),
	}

	out := make([]string, 0, Count)
	for i, c := range candidates[:Count] {
		hex := ensure(c, bg)
		log.Debugf("chart-%d: %s (%.2f:1 on %s)", i+1, hex, contrast.Ratio(hex, bg), bg)
		out = append(out, hex)
	}
	return out
}

// Dedup converts accents to OKLCH and drops any whose hue is within
// HueThreshold degrees of one already kept. The result is never empty: an
// empty input yields the fallback gray.
func Dedup(accents []string) []colorspace.OKLCH {
	var kept []colorspace.OKLCH
	for _, a := range accents {
		o := colorspace.ToOklch(a)
		dup := false
		for _, k := range kept {
			if colorspace.HueDistance(o.H, k.H) < HueThreshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, o)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, colorspace.Fallback)
	}
	return kept
}

func ensure(c colorspace.OKLCH, bg string) string {
	hex := c.Hex()
	best, bestRatio := hex, contrast.Ratio(hex, bg)
	if bestRatio >= MinContrast {
		return hex
	}

	step := nudgeStep
	if contrast.IsLight(bg) {
		step = -nudgeStep
	}
	for i := 0; i < maxNudges; i++ {
		c = c.Shift(step)
		hex = c.Hex()
		ratio := contrast.Ratio(hex, bg)
		if ratio > bestRatio {
			best, bestRatio = hex, ratio
		}
		if ratio >= MinContrast {
			break
		}
	}
	return best
}
