package semantic

import (
	"fmt"

	"github.com/AvengeMedia/danktheme/internal/chart"
	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/contrast"
	"github.com/AvengeMedia/danktheme/internal/ramp"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

// ColorDerivationStrategy produces one role's color from the canonical
// block and the roles resolved before it.
type ColorDerivationStrategy interface {
	Derive(ctx *Context) string
}

// dependent strategies read other roles, which must come earlier in the table.
type dependent interface {
	Dependencies() []Role
}

// Context carries one build's inputs and memoizes the ramps strategies
// share. It is not safe for concurrent use; each build owns its own.
type Context struct {
	Block theme.Block
	Mode  theme.Mode

	tones   map[theme.Slot]ramp.ShadeRamp
	anchors *ramp.AnchorRamp
	charts  []string
	tokens  map[Role]string
}

func newContext(block theme.Block, mode theme.Mode) *Context {
	return &Context{
		Block:  block,
		Mode:   mode,
		tones:  make(map[theme.Slot]ramp.ShadeRamp),
		tokens: make(map[Role]string),
	}
}

// Tone returns the shade ramp of a canonical slot.
func (c *Context) Tone(slot theme.Slot) ramp.ShadeRamp {
	r, ok := c.tones[slot]
	if !ok {
		r = ramp.Tone(colorspace.MustNormalize(c.Block.Get(slot)))
		c.tones[slot] = r
	}
	return r
}

// Anchors returns the multi-anchor ramp through primary, secondary, the
// first accent and the interface-2 neutral.
func (c *Context) Anchors() ramp.AnchorRamp {
	if c.anchors == nil {
		r := ramp.Interpolate(normalized(c.Block.Primary, c.Block.Secondary, c.Block.Accent, c.Block.Interface2)...)
		c.anchors = &r
	}
	return *c.anchors
}

// Charts returns the chart colors against the background role.
func (c *Context) Charts() []string {
	if c.charts == nil {
		c.charts = chart.Select(normalized(c.Block.Accents()...), c.Token(RoleBackground), c.Mode)
	}
	return c.charts
}

// normalized maps every input to #rrggbb. Malformed slots become the
// fallback quietly, since Block.Diagnostics already reported them.
func normalized(inputs ...string) []string {
	out := make([]string, len(inputs))
	for i, in := range inputs {
		out[i] = colorspace.MustNormalize(in)
	}
	return out
}

// Token returns an already resolved role, or "" if it has not been derived.
func (c *Context) Token(r Role) string {
	return c.tokens[r]
}

func (c *Context) pick(light, dark int) int {
	if c.Mode.IsLight() {
		return light
	}
	return dark
}

func (c *Context) pickDelta(light, dark float64) float64 {
	if c.Mode.IsLight() {
		return light
	}
	return dark
}

// CanonicalStrategy copies a canonical slot.
type CanonicalStrategy struct {
	Slot theme.Slot
}

func (s CanonicalStrategy) Derive(ctx *Context) string {
	return colorspace.MustNormalize(ctx.Block.Get(s.Slot))
}

// RampStopStrategy takes a numeric stop from the shade ramp of a slot, so
// the role tracks the numeric scale predictably.
type RampStopStrategy struct {
	Slot  theme.Slot
	Light int
	Dark  int
}

func (s RampStopStrategy) Derive(ctx *Context) string {
	return ctx.Tone(s.Slot).Hex(ctx.pick(s.Light, s.Dark))
}

// InterpolationIndexStrategy takes an index of the multi-anchor ramp, so
// the role reads as a distinct hue rather than a shade of one slot.
type InterpolationIndexStrategy struct {
	Light int
	Dark  int
}

func (s InterpolationIndexStrategy) Derive(ctx *Context) string {
	return ctx.Anchors().At(ctx.pick(s.Light, s.Dark))
}

// ToneShiftStrategy moves another role's OKLCH lightness by a fixed delta.
type ToneShiftStrategy struct {
	From  Role
	Light float64
	Dark  float64
}

func (s ToneShiftStrategy) Derive(ctx *Context) string {
	return colorspace.ToOklch(ctx.Token(s.From)).Shift(ctx.pickDelta(s.Light, s.Dark)).Hex()
}

func (s ToneShiftStrategy) Dependencies() []Role { return []Role{s.From} }

// ForegroundStrategy picks black or white text for another role.
type ForegroundStrategy struct {
	On Role
}

func (s ForegroundStrategy) Derive(ctx *Context) string {
	return contrast.BestTextColor(ctx.Token(s.On))
}

func (s ForegroundStrategy) Dependencies() []Role { return []Role{s.On} }

// ChartStrategy takes the Index-th chart color (zero based).
type ChartStrategy struct {
	Index int
}

func (s ChartStrategy) Derive(ctx *Context) string {
	charts := ctx.Charts()
	return charts[colorspace.Clamp(s.Index, 0, len(charts)-1)]
}

func (s ChartStrategy) Dependencies() []Role { return []Role{RoleBackground} }

// FixedStrategy always yields the same color.
type FixedStrategy struct {
	Hex string
}

func (s FixedStrategy) Derive(*Context) string {
	return colorspace.MustNormalize(s.Hex)
}

// AliasStrategy repeats another role.
type AliasStrategy struct {
	Role Role
}

func (s AliasStrategy) Derive(ctx *Context) string {
	return ctx.Token(s.Role)
}

func (s AliasStrategy) Dependencies() []Role { return []Role{s.Role} }

// Rule binds a role to the strategy that derives it.
type Rule struct {
	Role     Role
	Strategy ColorDerivationStrategy
}

// ValidateTable checks that roles are unique and that every role a
// strategy reads is derived earlier in the table.
func ValidateTable(rules []Rule) error {
	seen := make(map[Role]bool, len(rules))
	for _, r := range rules {
		if seen[r.Role] {
			return fmt.Errorf("role %s defined twice", r.Role)
		}
		if d, ok := r.Strategy.(dependent); ok {
			for _, dep := range d.Dependencies() {
				if !seen[dep] {
					return fmt.Errorf("role %s depends on %s which is not derived before it", r.Role, dep)
				}
			}
		}
		seen[r.Role] = true
	}
	return nil
}
