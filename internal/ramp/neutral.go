package ramp

import (
	"errors"
	"fmt"
	"math"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

// NeutralSlots is the order of the neutral ladder, surface first.
var NeutralSlots = []theme.Slot{
	theme.SlotBackground,
	theme.SlotBackground2,
	theme.SlotInterface,
	theme.SlotInterface2,
	theme.SlotInterface3,
	theme.SlotText3,
	theme.SlotText2,
	theme.SlotText,
}

var ErrNeutralOrder = errors.New("neutral order must name 8 distinct slots")

// Fraction of the way from the seed to the opposite extreme for each step.
// The spacing is uneven on purpose: surfaces stay close to the seed,
// borders sit in the first third and text tiers jump most of the way
// across.
var neutralProgress = [8]float64{0, 0.04, 0.10, 0.17, 0.26, 0.55, 0.72, 0.88}

type NeutralStep struct {
	Slot theme.Slot `json:"slot"`
	Hex  string     `json:"hex"`
}

type NeutralRamp struct {
	Seed        string                  `json:"seed"`
	Mode        theme.Mode              `json:"mode"`
	Steps       []NeutralStep           `json:"steps"`
	Diagnostics []colorspace.Diagnostic `json:"diagnostics,omitempty"`
}

// Get returns the color for slot, or "" if slot is not a neutral slot.
func (r NeutralRamp) Get(slot theme.Slot) string {
	for _, s := range r.Steps {
		if s.Slot == slot {
			return s.Hex
		}
	}
	return ""
}

// Neutral derives the 8 neutral slots from seed, running toward black in
// light mode and toward white in dark mode. Each step interpolates OKLCH
// lightness linearly between the seed and that extreme, at the uneven
// fractions in neutralProgress rather than at even eighths. In light mode
// the seed is pinned as the background exactly; in dark mode it is the
// first interpolation point.
func Neutral(seed string, mode theme.Mode) NeutralRamp {
	r, _ := NeutralOrdered(seed, mode, NeutralSlots)
	return r
}

// NeutralOrdered is Neutral with the steps assigned to the caller's slot
// order, seed side first. order must name exactly 8 distinct slots.
func NeutralOrdered(seed string, mode theme.Mode, order []theme.Slot) (NeutralRamp, error) {
	if err := checkOrder(order); err != nil {
		return NeutralRamp{}, err
	}

	o, _ := colorspace.Resolve(seed)
	end := 0.0
	if !mode.IsLight() {
		end = 1.0
	}

	r := NeutralRamp{
		Seed:        colorspace.MustNormalize(seed),
		Mode:        mode,
		Steps:       make([]NeutralStep, len(order)),
		Diagnostics: colorspace.Check(seed),
	}

	for i, slot := range order {
		t := neutralProgress[i]
		var hex string
		if i == 0 && mode.IsLight() {
			hex = r.Seed
		} else {
			hex = colorspace.OKLCH{
				L: colorspace.Lerp(o.L, end, t),
				C: colorspace.Lerp(o.C, 0, t),
				H: o.H,
			}.Hex()
		}
		r.Steps[i] = NeutralStep{Slot: slot, Hex: hex}
	}
	return r, nil
}

func checkOrder(order []theme.Slot) error {
	if len(order) != len(neutralProgress) {
		return fmt.Errorf("%w: got %d", ErrNeutralOrder, len(order))
	}
	seen := make(map[theme.Slot]bool, len(order))
	for _, s := range order {
		if seen[s] {
			return fmt.Errorf("%w: %s repeated", ErrNeutralOrder, s)
		}
		seen[s] = true
	}
	return nil
}

// Hue offsets, in degrees from the seed, for the chromatic slots of a
// bootstrapped block.
var bootstrapHues = map[theme.Slot]float64{
	theme.SlotPrimary:   0,
	theme.SlotSecondary: 30,
	theme.SlotAccent:    120,
	theme.SlotAccent2:   200,
	theme.SlotAccent3:   280,
}

const (
	bootstrapChroma    = 0.15
	bootstrapLightL    = 0.52
	bootstrapDarkL     = 0.72
	minBootstrapChroma = 0.02
	darkSeedL          = 0.18
	darkSeedMaxChroma  = 0.03
)

// Bootstrap builds a complete canonical block from one seed color: the
// neutral slots come from Neutral and the chromatic slots are spread around
// the seed's hue at a fixed chroma. An achromatic seed uses a blue hue.
func Bootstrap(seed string, mode theme.Mode) theme.Block {
	n := Neutral(seed, mode)
	var b theme.Block
	for _, step := range n.Steps {
		b, _ = b.With(step.Slot, step.Hex)
	}

	o, _ := colorspace.Resolve(seed)
	hue := o.H
	if o.C < minBootstrapChroma {
		hue = 255
	}
	l := bootstrapLightL
	if !mode.IsLight() {
		l = bootstrapDarkL
	}
	for _, slot := range theme.Slots {
		offset, ok := bootstrapHues[slot]
		if !ok {
			continue
		}
		c := colorspace.OKLCH{L: l, C: bootstrapChroma, H: colorspace.NormalizeHue(hue + offset)}
		b, _ = b.With(slot, c.Hex())
	}
	return b
}

// DarkSeed derives a dark background seed with the hue of a light one.
func DarkSeed(seed string) string {
	o := colorspace.ToOklch(seed)
	return colorspace.OKLCH{L: darkSeedL, C: math.Min(o.C, darkSeedMaxChroma), H: o.H}.Hex()
}

// BootstrapTheme builds both modes of a theme from one seed. An empty
// darkSeed is derived with DarkSeed.
func BootstrapTheme(name, seed, darkSeed string) theme.Theme {
	if darkSeed == "" {
		darkSeed = DarkSeed(colorspace.MustNormalize(seed))
	}
	return theme.Theme{
		Name:  name,
		Light: Bootstrap(seed, theme.Light),
		Dark:  Bootstrap(darkSeed, theme.Dark),
	}
}
