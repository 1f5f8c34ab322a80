package export

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/danktheme/internal/contrast"
	"github.com/AvengeMedia/danktheme/internal/ramp"
	"github.com/AvengeMedia/danktheme/internal/semantic"
)

const swatchWidth = 40

// Swatch is one labeled color in a terminal preview.
type Swatch struct {
	Label string
	Hex   string
}

// Swatches renders one line per swatch, filled with its color and labeled
// in the readable text color for that fill.
func Swatches(items []Swatch) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(it.Hex)).
			Foreground(lipgloss.Color(contrast.BestTextColor(it.Hex))).
			Width(swatchWidth).
			Padding(0, 1)
		lines = append(lines, style.Render(fmt.Sprintf("%-26s %s", it.Label, it.Hex)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RampSwatches labels each shade with its stop and WCAG level.
func RampSwatches(r ramp.ShadeRamp) []Swatch {
	items := make([]Swatch, 0, len(r.Shades))
	for _, s := range r.Shades {
		items = append(items, Swatch{Label: fmt.Sprintf("%d %s", s.Stop, s.Level), Hex: s.Hex})
	}
	return items
}

// TokenSwatches lists a token set in role order.
func TokenSwatches(s semantic.TokenSet) []Swatch {
	items := make([]Swatch, 0, len(s.Roles))
	for _, r := range s.Roles {
		items = append(items, Swatch{Label: string(r), Hex: s.Get(r)})
	}
	return items
}

// HexSwatches labels plain colors by their 1-based position.
func HexSwatches(prefix string, hexes []string) []Swatch {
	items := make([]Swatch, 0, len(hexes))
	for i, h := range hexes {
		items = append(items, Swatch{Label: fmt.Sprintf("%s%d", prefix, i+1), Hex: h})
	}
	return items
}
