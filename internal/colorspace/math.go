package colorspace

import "golang.org/x/exp/constraints"

// Lerp interpolates linearly between a and b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
