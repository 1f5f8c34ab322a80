package syntax

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/contrast"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

var ErrUnknownAlgorithm = errors.New("unknown contrast algorithm")

type Algorithm string

const (
	// WCAG enforces relative-luminance contrast ratios.
	WCAG Algorithm = "wcag"
	// DPS enforces Delta Phi Star lightness contrast, which keeps colors
	// more saturated at the same perceived readability.
	DPS Algorithm = "dps"
)

func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case WCAG:
		return WCAG, nil
	case DPS, "":
		return DPS, nil
	}
	return "", fmt.Errorf("%w: %q (must be 'dps' or 'wcag')", ErrUnknownAlgorithm, s)
}

// Targets returns the minimum contrast for body colors and for the dimmer
// bright row.
func (a Algorithm) Targets() (normal, secondary float64) {
	if a == WCAG {
		return contrast.MinAA, contrast.MinA
	}
	return 40, 35
}

type Options struct {
	Algorithm Algorithm
}

// Size is the number of ANSI palette entries.
const Size = 16

// Palette is a 16 color ANSI palette plus the inputs it was derived from.
// Index 0 is the background; 7 and 15 are body text.
type Palette struct {
	Mode        theme.Mode
	Algorithm   Algorithm
	Colors      [Size]string
	Diagnostics []colorspace.Diagnostic
}

// Hue anchors in degrees for the fixed ANSI colors.
const (
	redHue    = 0.0
	greenHue  = 119.0
	yellowHue = 54.0
)

// Generate derives a terminal and syntax palette from a canonical block.
// primary drives blue and cyan, accent drives magenta, and secondary is
// kept as cyan so the brand color shows up in code. Every entry is nudged
// to meet the algorithm's contrast target against the background.
func Generate(block theme.Block, mode theme.Mode, opts Options) Palette {
	algo := opts.Algorithm
	if algo == "" {
		algo = DPS
	}
	light := mode.IsLight()

	p := Palette{
		Mode:      mode,
		Algorithm: algo,
		Diagnostics: colorspace.Check(block.Background, block.Text, block.Text2, block.Text3,
			block.Primary, block.Secondary, block.Accent),
	}

	bg := colorspace.MustNormalize(block.Background)
	h, s, v := hsvOf(block.Primary)
	ah, as, av := hsvOf(block.Accent)
	sh, ss, sv := hsvOf(block.Secondary)

	var c [Size]string
	c[0] = bg
	c[6] = colorspace.MustNormalize(block.Secondary)
	c[7] = colorspace.MustNormalize(block.Text2)
	c[8] = colorspace.MustNormalize(block.Text3)
	c[15] = colorspace.MustNormalize(block.Text)

	if light {
		c[1] = hsv(redHue, 0.75, 0.85)
		c[2] = hsv(greenHue, math.Max(s*0.9, 0.75), v*0.6)
		c[3] = hsv(yellowHue, 0.65, 0.7)
		c[4] = hsv(h, math.Max(s*0.9, 0.7), v*1.1)
		c[5] = hsv(ah, math.Max(as*0.9, 0.7), av*0.85)

		c[9] = hsv(redHue, 0.6, 0.9)
		c[10] = hsv(greenHue, math.Max(s*0.8, 0.7), v*0.65)
		c[11] = hsv(yellowHue, 0.55, 0.85)
		c[12] = hsv(sh, ss*1.1, sv*1.2)
		c[13] = hsv(ah, math.Max(as*0.9, 0.75), av*1.25)
		c[14] = hsv(h+29, math.Max(s*0.75, 0.65), v*1.25)
	} else {
		c[1] = hsv(redHue, 0.6, 0.8)
		c[2] = hsv(greenHue, 0.35, 0.85)
		c[3] = hsv(yellowHue, 0.30, 0.88)
		c[4] = hsv(h, math.Max(s*0.8, 0.6), v*1.6)
		c[5] = hsv(ah, math.Max(as*0.7, 0.6), av*0.85)

		c[9] = hsv(redHue, 0.45, 0.9)
		c[10] = hsv(greenHue, 0.30, 0.90)
		c[11] = hsv(yellowHue, 0.25, 0.94)
		c[12] = retone(c[6], 0.85)
		c[13] = hsv(ah, math.Max(as*0.7, 0.6), math.Min(av*1.3, 0.9))
		c[14] = hsv(h+7, math.Max(s*0.6, 0.5), math.Min(v*1.2, 0.85))
	}

	normal, secondary := algo.Targets()
	for i := 1; i < Size; i++ {
		target := normal
		if i >= 8 && i < 15 {
			target = secondary
		}
		c[i] = enforce(algo, c[i], bg, target, light)
	}

	p.Colors = c
	return p
}

func enforce(algo Algorithm, fg, bg string, target float64, light bool) string {
	if algo == WCAG {
		return contrast.Ensure(fg, bg, target, light)
	}
	return contrast.EnsureLc(fg, bg, target, light)
}

func hsvOf(hex string) (h, s, v float64) {
	c, err := colorspace.Parse(hex)
	if err != nil {
		c = colorspace.Fallback.Color()
	}
	return c.Hsv()
}

func hsv(h, s, v float64) string {
	return colorful.Hsv(colorspace.NormalizeHue(h), colorspace.Clamp(s, 0, 1), colorspace.Clamp(v, 0, 1)).Clamped().Hex()
}

// retone moves a color to OKLCH lightness l, keeping hue and as much chroma
// as the gamut allows.
func retone(hex string, l float64) string {
	o := colorspace.ToOklch(hex)
	o.L = l
	return o.Hex()
}

// Hex returns palette entry i, clamped to the palette range.
func (p Palette) Hex(i int) string {
	return p.Colors[colorspace.Clamp(i, 0, Size-1)]
}

// Background and Foreground are the editor canvas and body text.
func (p Palette) Background() string { return p.Colors[0] }
func (p Palette) Foreground() string { return p.Colors[15] }

// Role names a syntax element.
type Role string

const (
	RoleComment   Role = "comment"
	RoleKeyword   Role = "keyword"
	RoleStorage   Role = "storage"
	RoleString    Role = "string"
	RoleNumber    Role = "number"
	RoleConstant  Role = "constant"
	RoleType      Role = "type"
	RoleFunction  Role = "function"
	RoleVariable  Role = "variable"
	RoleProperty  Role = "property"
	RoleParameter Role = "parameter"
	RoleNamespace Role = "namespace"
	RoleOperator  Role = "operator"
	RoleError     Role = "error"
	RoleWarning   Role = "warning"
)

// RoleIndex maps each syntax role to its palette entry, in display order.
var RoleIndex = []struct {
	Role  Role
	Index int
}{
	{RoleComment, 8},
	{RoleKeyword, 5},
	{RoleStorage, 13},
	{RoleString, 2},
	{RoleNumber, 3},
	{RoleConstant, 11},
	{RoleType, 12},
	{RoleFunction, 4},
	{RoleVariable, 15},
	{RoleProperty, 7},
	{RoleParameter, 14},
	{RoleNamespace, 6},
	{RoleOperator, 7},
	{RoleError, 1},
	{RoleWarning, 11},
}

// Role returns the color for a syntax role, or "" if the role is unknown.
func (p Palette) Role(r Role) string {
	for _, ri := range RoleIndex {
		if ri.Role == r {
			return p.Colors[ri.Index]
		}
	}
	return ""
}

// Roles returns every syntax role keyed by name.
func (p Palette) Roles() map[string]string {
	m := make(map[string]string, len(RoleIndex))
	for _, ri := range RoleIndex {
		m[string(ri.Role)] = p.Colors[ri.Index]
	}
	return m
}
