package ramp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

func TestNeutralLightPinsSeed(t *testing.T) {
	for _, seed := range []string{"#fafeff", "#FAFEFF", "#f5f0e6", "#3b82f6"} {
		t.Run(seed, func(t *testing.T) {
			r := Neutral(seed, theme.Light)
			assert.Equal(t, colorspace.MustNormalize(seed), r.Get(theme.SlotBackground))
		})
	}
}

func TestNeutralOrder(t *testing.T) {
	r := Neutral("#fafeff", theme.Light)
	require.Len(t, r.Steps, 8)
	for i, s := range r.Steps {
		assert.Equal(t, NeutralSlots[i], s.Slot)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, s.Hex)
	}
	assert.Equal(t, "", r.Get(theme.SlotPrimary))
}

func TestNeutralOrderedFollowsCallerOrder(t *testing.T) {
	order := []theme.Slot{
		theme.SlotBackground2,
		theme.SlotBackground,
		theme.SlotInterface,
		theme.SlotInterface2,
		theme.SlotInterface3,
		theme.SlotText3,
		theme.SlotText2,
		theme.SlotText,
	}

	r, err := NeutralOrdered("#fafeff", theme.Light, order)
	require.NoError(t, err)
	def := Neutral("#fafeff", theme.Light)

	for i, s := range r.Steps {
		assert.Equal(t, order[i], s.Slot)
		assert.Equal(t, def.Steps[i].Hex, s.Hex, "step %d", i)
	}
	assert.Equal(t, "#fafeff", r.Get(theme.SlotBackground2))
}

func TestNeutralOrderedRejectsBadOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []theme.Slot
	}{
		{"empty", nil},
		{"short", NeutralSlots[:7]},
		{"repeated", append(append([]theme.Slot{}, NeutralSlots[:7]...), theme.SlotBackground)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NeutralOrdered("#fafeff", theme.Light, tt.order)
			assert.ErrorIs(t, err, ErrNeutralOrder)
		})
	}
}

func TestNeutralDirection(t *testing.T) {
	light := Neutral("#f5f5f5", theme.Light)
	for i := 1; i < len(light.Steps); i++ {
		prev := colorspace.RelativeLuminance(light.Steps[i-1].Hex)
		cur := colorspace.RelativeLuminance(light.Steps[i].Hex)
		assert.LessOrEqual(t, cur, prev, "light step %s", light.Steps[i].Slot)
	}

	dark := Neutral("#111111", theme.Dark)
	for i := 1; i < len(dark.Steps); i++ {
		prev := colorspace.RelativeLuminance(dark.Steps[i-1].Hex)
		cur := colorspace.RelativeLuminance(dark.Steps[i].Hex)
		assert.GreaterOrEqual(t, cur, prev, "dark step %s", dark.Steps[i].Slot)
	}
}

func TestNeutralDarkStartsAtSeed(t *testing.T) {
	r := Neutral("#111827", theme.Dark)
	assert.Equal(t, colorspace.ToOklch("#111827").Hex(), r.Get(theme.SlotBackground))
	assert.Equal(t, "#111827", r.Get(theme.SlotBackground))
}

func TestNeutralTextIsReadable(t *testing.T) {
	light := Neutral("#fafeff", theme.Light)
	assert.GreaterOrEqual(t, contrastOf(light.Get(theme.SlotText), light.Get(theme.SlotBackground)), 4.5)

	dark := Neutral("#0f172a", theme.Dark)
	assert.GreaterOrEqual(t, contrastOf(dark.Get(theme.SlotText), dark.Get(theme.SlotBackground)), 4.5)
}

func TestNeutralInvalidSeed(t *testing.T) {
	r := Neutral("zzz", theme.Dark)
	require.Len(t, r.Diagnostics, 1)
	require.Len(t, r.Steps, 8)
	for _, s := range r.Steps {
		assert.LessOrEqual(t, channelSpread(s.Hex), 1)
	}
}

func TestBootstrap(t *testing.T) {
	for _, mode := range []theme.Mode{theme.Light, theme.Dark} {
		t.Run(mode.String(), func(t *testing.T) {
			b := Bootstrap("#fafeff", mode)
			require.NoError(t, b.Validate())
			assert.Equal(t, Bootstrap("#fafeff", mode), b)
		})
	}
	assert.Equal(t, "#fafeff", Bootstrap("#fafeff", theme.Light).Background)

	grey := Bootstrap("#808080", theme.Light)
	assert.Greater(t, colorspace.ToOklch(grey.Primary).C, 0.05)
}

func TestDarkSeed(t *testing.T) {
	d := colorspace.ToOklch(DarkSeed("#fafeff"))
	assert.InDelta(t, 0.18, d.L, 0.01)
	assert.LessOrEqual(t, d.C, 0.035)

	vivid := colorspace.ToOklch(DarkSeed("#2563eb"))
	assert.InDelta(t, colorspace.ToOklch("#2563eb").H, vivid.H, 15)
}

func TestBootstrapTheme(t *testing.T) {
	th := BootstrapTheme("seeded", "#fafeff", "")
	require.NoError(t, th.Validate())
	assert.Equal(t, "seeded", th.Name)
	assert.Equal(t, "#fafeff", th.Light.Background)
	assert.Less(t, colorspace.ToOklch(th.Dark.Background).L, 0.25)

	explicit := BootstrapTheme("x", "#fafeff", "#111827")
	assert.Equal(t, Bootstrap("#111827", theme.Dark), explicit.Dark)
}
