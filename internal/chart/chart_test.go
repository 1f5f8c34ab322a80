package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/contrast"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

func TestSelectDistinctAccents(t *testing.T) {
	accents := []string{"#db2777", "#16a34a", "#ea580c"}
	got := Select(accents, "#fafeff", theme.Light)

	require.Len(t, got, Count)
	for _, c := range got {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, c)
	}
	assert.Equal(t, Select(accents, "#fafeff", theme.Light), got)

	for i, a := range accents {
		if contrast.Ratio(a, "#fafeff") >= MinContrast {
			assert.Equal(t, a, got[i])
		}
	}
}

func TestSelectIdenticalAccentsDedup(t *testing.T) {
	accents := []string{"#2563eb", "#2563eb", "#2563eb"}
	got := Select(accents, "#ffffff", theme.Light)
	require.Len(t, got, Count)

	var hues []float64
	for _, c := range got[:3] {
		h := colorspace.ToOklch(c).H
		unique := true
		for _, seen := range hues {
			if colorspace.HueDistance(h, seen) < HueThreshold {
				unique = false
			}
		}
		if unique {
			hues = append(hues, h)
		}
	}
	assert.Less(t, len(hues), 3)
	assert.Equal(t, got[0], got[1])
	assert.Equal(t, got[1], got[2])

	// variant 1 is the first accent darkened in light mode
	assert.Less(t, colorspace.ToOklch(got[3]).L, colorspace.ToOklch(got[0]).L)
}

func TestSelectNearHuesCollapse(t *testing.T) {
	distinct := Dedup([]string{"#ff0000", "#ff0a0a", "#0000ff"})
	assert.Len(t, distinct, 2)

	wrap := Dedup([]string{"#ff0080", "#ff0090"})
	assert.Len(t, wrap, 1, "hues either side of 0 degrees should collapse")

	assert.Equal(t, []colorspace.OKLCH{colorspace.Fallback}, Dedup(nil))
}

func TestSelectVariantsInverseInDark(t *testing.T) {
	accents := []string{"#7c3aed", "#0891b2", "#65a30d"}
	bg := "#0a0a0a"
	got := Select(accents, bg, theme.Dark)
	require.Len(t, got, Count)

	assert.Greater(t, colorspace.ToOklch(got[3]).L, colorspace.ToOklch(got[0]).L)
}

func TestSelectNudgesLowContrast(t *testing.T) {
	// pale yellow on white is far below 2.6:1
	got := Select([]string{"#fef9c3", "#e0f2fe", "#fce7f3"}, "#ffffff", theme.Light)
	for i, c := range got {
		assert.Less(t, colorspace.ToOklch(c).L, 0.99, "chart-%d should have been darkened", i+1)
	}
	assert.Greater(t, contrast.Ratio(got[0], "#ffffff"), contrast.Ratio("#fef9c3", "#ffffff"))
}

func TestSelectNudgeDirectionDark(t *testing.T) {
	got := Select([]string{"#1e1b4b", "#042f2e", "#450a0a"}, "#000000", theme.Dark)
	for i := 0; i < 3; i++ {
		assert.GreaterOrEqual(t, contrast.Ratio(got[i], "#000000"), contrast.Ratio([]string{"#1e1b4b", "#042f2e", "#450a0a"}[i], "#000000"))
	}
}

func TestEnsureReachesThreshold(t *testing.T) {
	c := colorspace.ToOklch("#93c5fd")
	hex := ensure(c, "#ffffff")
	assert.GreaterOrEqual(t, contrast.Ratio(hex, "#ffffff"), MinContrast)
}

func TestEnsureBudgetExhausted(t *testing.T) {
	// 12 steps of 0.02 cannot take near-white to 2.6:1 on white
	c := colorspace.OKLCH{L: 0.995, C: 0, H: 0}
	hex := ensure(c, "#ffffff")
	assert.Less(t, contrast.Ratio(hex, "#ffffff"), MinContrast)
	assert.InDelta(t, 0.995-12*0.02, colorspace.ToOklch(hex).L, 0.01)
}
