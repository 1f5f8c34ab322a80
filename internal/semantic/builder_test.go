package semantic

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/danktheme/internal/chart"
	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/contrast"
	"github.com/AvengeMedia/danktheme/internal/log"
	"github.com/AvengeMedia/danktheme/internal/ramp"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

func lightBlock() theme.Block {
	return theme.Block{
		Background:  "#fafeff",
		Background2: "#f1f5f9",
		Interface:   "#e2e8f0",
		Interface2:  "#cbd5e1",
		Interface3:  "#94a3b8",
		Text:        "#0f172a",
		Text2:       "#334155",
		Text3:       "#64748b",
		Primary:     "#1E3C78",
		Secondary:   "#2563eb",
		Accent:      "#db2777",
		Accent2:     "#16a34a",
		Accent3:     "#ea580c",
	}
}

func darkBlock() theme.Block {
	return theme.Block{
		Background:  "#0b1120",
		Background2: "#111827",
		Interface:   "#1f2937",
		Interface2:  "#374151",
		Interface3:  "#4b5563",
		Text:        "#f8fafc",
		Text2:       "#cbd5e1",
		Text3:       "#94a3b8",
		Primary:     "#60a5fa",
		Secondary:   "#3b82f6",
		Accent:      "#f472b6",
		Accent2:     "#4ade80",
		Accent3:     "#fb923c",
	}
}

func isForeground(r Rule) bool {
	_, ok := r.Strategy.(ForegroundStrategy)
	return ok
}

func TestDefaultTableIsValid(t *testing.T) {
	require.NoError(t, ValidateTable(DefaultTable))
	assert.Len(t, DefaultTable, 31)
}

func TestValidateTable(t *testing.T) {
	t.Run("forward reference", func(t *testing.T) {
		err := ValidateTable([]Rule{
			{RoleForeground, ForegroundStrategy{On: RoleBackground}},
			{RoleBackground, CanonicalStrategy{Slot: theme.SlotBackground}},
		})
		assert.Error(t, err)
	})

	t.Run("duplicate role", func(t *testing.T) {
		err := ValidateTable([]Rule{
			{RoleBackground, CanonicalStrategy{Slot: theme.SlotBackground}},
			{RoleBackground, FixedStrategy{Hex: "#ffffff"}},
		})
		assert.Error(t, err)
	})
}

func TestBuildLightScenario(t *testing.T) {
	set := Build(lightBlock(), theme.Light)

	assert.Equal(t, "#fafeff", set.Get(RoleBackground))
	assert.Equal(t, contrast.Black, set.Get(RoleForeground))
	assert.GreaterOrEqual(t, contrast.Ratio(set.Get(RoleForeground), set.Get(RoleBackground)), contrast.MinAA)
	assert.Empty(t, set.Diagnostics)
}

func TestBuildDarkScenario(t *testing.T) {
	set := Build(darkBlock(), theme.Dark)

	assert.Equal(t, "#0b1120", set.Get(RoleBackground))
	assert.Equal(t, contrast.White, set.Get(RoleForeground))
}

func TestBuildCoversEveryRole(t *testing.T) {
	for _, mode := range []theme.Mode{theme.Light, theme.Dark} {
		block := lightBlock()
		if mode == theme.Dark {
			block = darkBlock()
		}
		set := Build(block, mode)

		require.Len(t, set.Roles, len(DefaultTable))
		require.Len(t, set.Tokens, len(DefaultTable))
		for i, r := range DefaultTable {
			assert.Equal(t, r.Role, set.Roles[i])
			v := set.Get(r.Role)
			assert.True(t, colorspace.Valid(v), "%s %s = %q", mode, r.Role, v)
			assert.Equal(t, colorspace.MustNormalize(v), v, "%s %s not normalized", mode, r.Role)
		}
	}
}

func TestForegroundsAreBlackOrWhite(t *testing.T) {
	for _, mode := range []theme.Mode{theme.Light, theme.Dark} {
		set := Build(lightBlock(), mode)
		for _, r := range DefaultTable {
			if !isForeground(r) {
				continue
			}
			assert.Contains(t, []string{contrast.White, contrast.Black}, set.Get(r.Role), "%s %s", mode, r.Role)
		}
	}
}

func TestPairsMeetAA(t *testing.T) {
	set := Build(lightBlock(), theme.Light)

	want := 0
	for _, r := range DefaultTable {
		if isForeground(r) {
			want++
		}
	}
	require.Len(t, set.Pairs, want)
	for _, p := range set.Pairs {
		assert.GreaterOrEqual(t, p.Result.Ratio, contrast.MinAA, "%s on %s", p.Foreground, p.Background)
		assert.InDelta(t, contrast.Ratio(set.Get(p.Foreground), set.Get(p.Background)), p.Result.Ratio, 1e-9)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Build(lightBlock(), theme.Light)
	b := Build(lightBlock(), theme.Light)
	assert.Equal(t, a.Tokens, b.Tokens)
	assert.Equal(t, a.Roles, b.Roles)
}

func TestPrimaryTracksSecondaryRamp(t *testing.T) {
	block := lightBlock()
	tone := ramp.Tone(block.Secondary)

	assert.Equal(t, tone.Hex(600), Build(block, theme.Light).Get(RolePrimary))
	assert.Equal(t, tone.Hex(400), Build(block, theme.Dark).Get(RolePrimary))
}

func TestNeutralRoles(t *testing.T) {
	block := lightBlock()
	tone := ramp.Tone(block.Interface2)

	light := Build(block, theme.Light)
	assert.Equal(t, tone.Hex(200), light.Get(RoleBorder))
	assert.Equal(t, tone.Hex(100), light.Get(RoleMuted))

	dark := Build(block, theme.Dark)
	assert.Equal(t, tone.Hex(800), dark.Get(RoleBorder))
	assert.Equal(t, tone.Hex(900), dark.Get(RoleMuted))
}

func TestInterpolatedRoles(t *testing.T) {
	block := lightBlock()
	anchors := ramp.Interpolate(block.Primary, block.Secondary, block.Accent, block.Interface2)

	light := Build(block, theme.Light)
	assert.Equal(t, anchors.At(3), light.Get(RoleAccent))
	assert.Equal(t, anchors.At(5), light.Get(RoleSecondary))

	dark := Build(block, theme.Dark)
	assert.Equal(t, anchors.At(7), dark.Get(RoleAccent))
	assert.Equal(t, anchors.At(4), dark.Get(RoleSecondary))
}

func TestAliases(t *testing.T) {
	set := Build(lightBlock(), theme.Light)

	assert.Equal(t, set.Get(RoleBorder), set.Get(RoleInput))
	assert.Equal(t, set.Get(RoleBorder), set.Get(RoleSidebarBorder))
	assert.Equal(t, set.Get(RoleBackground), set.Get(RoleSidebar))
	assert.Equal(t, set.Get(RolePrimary), set.Get(RoleSidebarPrimary))
	assert.Equal(t, Destructive, set.Get(RoleDestructive))
}

func TestToneShifts(t *testing.T) {
	l := func(hex string) float64 { return colorspace.ToOklch(hex).L }

	light := Build(lightBlock(), theme.Light)
	assert.GreaterOrEqual(t, l(light.Get(RoleCard)), l(light.Get(RoleBackground))-1e-3)
	assert.InDelta(t, l(light.Get(RolePrimary))+0.1, l(light.Get(RoleRing)), 0.01)
	assert.Less(t, l(light.Get(RoleSidebarAccent)), l(light.Get(RoleSidebar)))

	dark := Build(darkBlock(), theme.Dark)
	assert.Less(t, l(dark.Get(RoleCard)), l(dark.Get(RoleBackground)))
	assert.InDelta(t, l(dark.Get(RolePrimary))-0.1, l(dark.Get(RoleRing)), 0.01)
	assert.Greater(t, l(dark.Get(RoleSidebarAccent)), l(dark.Get(RoleSidebar)))
}

func TestChartRoles(t *testing.T) {
	block := lightBlock()
	set := Build(block, theme.Light)
	want := chart.Select(block.Accents(), set.Get(RoleBackground), theme.Light)

	got := []string{
		set.Get(RoleChart1), set.Get(RoleChart2), set.Get(RoleChart3),
		set.Get(RoleChart4), set.Get(RoleChart5),
	}
	assert.Equal(t, want, got)
}

func TestBuildWithBrokenSlots(t *testing.T) {
	block := lightBlock()
	block.Accent = ""
	block.Secondary = "not-a-color"

	set := Build(block, theme.Light)
	assert.Len(t, set.Diagnostics, 2)
	for _, r := range set.Roles {
		assert.True(t, colorspace.Valid(set.Get(r)), "%s", r)
	}
}

func TestBuildWarnsOncePerBrokenSlot(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetLevel("warn")
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel("info")
	})

	block := lightBlock()
	block.Secondary = "not-a-color"

	set := Build(block, theme.Light)
	require.Len(t, set.Diagnostics, 1)
	assert.Equal(t, 1, strings.Count(buf.String(), `"not-a-color", using neutral fallback`))
}

func TestBuildTheme(t *testing.T) {
	tokens := BuildTheme(theme.Theme{Name: "slate", Light: lightBlock(), Dark: darkBlock()})

	assert.Equal(t, theme.Light, tokens.Light.Mode)
	assert.Equal(t, theme.Dark, tokens.Dark.Mode)
	assert.Equal(t, "#fafeff", tokens.Light.Get(RoleBackground))
	assert.Equal(t, "#0b1120", tokens.Dark.Get(RoleBackground))
}

func TestMapUsesRoleNames(t *testing.T) {
	m := Build(lightBlock(), theme.Light).Map()
	assert.Equal(t, "#fafeff", m["background"])
	assert.Contains(t, m, "sidebar-accent-foreground")
}
