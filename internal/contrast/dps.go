package contrast

import (
	"math"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
)

// Lightness nudging budgets. WCAG moves in coarser steps than DPS since the
// ratio changes faster per unit of OKLCH lightness.
const (
	wcagStep     = 0.02
	wcagMaxSteps = 30
	dpsStep      = 0.005
	dpsMaxSteps  = 120
)

// Lstar returns CIE L* in [0,100].
func Lstar(hex string) float64 {
	c, err := colorspace.Parse(hex)
	if err != nil {
		return 50
	}
	l, _, _ := c.Lab()
	return l * 100
}

// DeltaPhiStar estimates perceptual contrast (Lc) between fg and bg from
// their L* values. Dark backgrounds get a small polarity bonus.
func DeltaPhiStar(fg, bg string, negativePolarity bool) float64 {
	lf := Lstar(fg)
	lb := Lstar(bg)

	const phi = 1.618
	const inv = 0.618
	lc := math.Pow(math.Abs(math.Pow(lb, phi)-math.Pow(lf, phi)), inv)*1.414 - 40

	if negativePolarity {
		lc += 5
	}
	return lc
}

// Lc is DeltaPhiStar with polarity taken from the theme mode.
func Lc(fg, bg string, lightMode bool) float64 {
	return DeltaPhiStar(fg, bg, !lightMode)
}

// Ensure nudges fg's OKLCH lightness until its WCAG ratio against bg reaches
// minRatio. Light mode tries darker first, dark mode lighter first. If no
// candidate qualifies fg is returned unchanged.
func Ensure(fg, bg string, minRatio float64, lightMode bool) string {
	score := func(c string) float64 { return Ratio(c, bg) }
	return nudge(fg, minRatio, lightMode, wcagStep, wcagMaxSteps, score)
}

// EnsureLc is Ensure for the DeltaPhiStar metric.
func EnsureLc(fg, bg string, minLc float64, lightMode bool) string {
	score := func(c string) float64 { return Lc(c, bg, lightMode) }
	return nudge(fg, minLc, lightMode, dpsStep, dpsMaxSteps, score)
}

func nudge(fg string, target float64, lightMode bool, step float64, maxSteps int, score func(string) float64) string {
	if score(fg) >= target {
		return colorspace.MustNormalize(fg)
	}

	base, _ := colorspace.Resolve(fg)
	dir := 1.0
	if lightMode {
		dir = -1.0
	}

	for i := 1; i <= maxSteps; i++ {
		delta := float64(i) * step
		for _, d := range []float64{dir, -dir} {
			cand := base.Shift(d * delta).Hex()
			if score(cand) >= target {
				return cand
			}
		}
	}
	return colorspace.MustNormalize(fg)
}
