// Package contrast evaluates text/background legibility.
//
// Ratio implements the WCAG 2.x contrast ratio. DeltaPhiStar is the
// perceptual lightness-contrast estimate used when tuning syntax colors,
// where WCAG tends to wash out saturated hues.
package contrast

import (
	"math"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
)

type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelA    Level = "A"
	LevelFail Level = "Fail"
)

const (
	White = "#ffffff"
	Black = "#000000"
)

// WCAG thresholds.
const (
	MinAAA = 7.0
	MinAA  = 4.5
	MinA   = 3.0
)

type Result struct {
	Ratio float64 `json:"ratio"`
	Level Level   `json:"level"`
}

// Ratio returns the WCAG contrast ratio of a and b, in [1,21]. The result
// is symmetric in its arguments.
func Ratio(a, b string) float64 {
	return RatioFromLuminance(colorspace.RelativeLuminance(a), colorspace.RelativeLuminance(b))
}

func RatioFromLuminance(l1, l2 float64) float64 {
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return colorspace.Clamp((lighter+0.05)/(darker+0.05), 1, 21)
}

func Classify(ratio float64) Level {
	switch {
	case ratio >= MinAAA:
		return LevelAAA
	case ratio >= MinAA:
		return LevelAA
	case ratio >= MinA:
		return LevelA
	default:
		return LevelFail
	}
}

func Evaluate(a, b string) Result {
	r := Ratio(a, b)
	return Result{Ratio: r, Level: Classify(r)}
}

// BestTextColor returns White or Black, whichever contrasts more with bg.
// Ties go to White. It never returns anything else.
func BestTextColor(bg string) string {
	return textFor(colorspace.RelativeLuminance(bg))
}

func textFor(lum float64) string {
	onWhite := RatioFromLuminance(lum, 1)
	onBlack := RatioFromLuminance(lum, 0)
	if onWhite >= onBlack {
		return White
	}
	return Black
}

// IsLight reports whether text on bg should be dark.
func IsLight(bg string) bool {
	return BestTextColor(bg) == Black
}
