package ramp

import "github.com/AvengeMedia/danktheme/internal/contrast"

func contrastOf(a, b string) float64 {
	return contrast.Ratio(a, b)
}
