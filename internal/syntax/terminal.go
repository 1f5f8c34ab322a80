package syntax

import (
	"io"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/config"
	"github.com/AvengeMedia/danktheme/internal/contrast"
)

// selectionMix is how far the selection background moves from the
// background toward the blue entry.
const selectionMix = 0.35

// Terminal is the data terminal color templates are rendered from.
type Terminal struct {
	Background          string
	Foreground          string
	Cursor              string
	SelectionBackground string
	SelectionForeground string
	Colors              [Size]string
}

func (p Palette) Terminal() Terminal {
	bg, _ := colorspace.Parse(p.Colors[0])
	blue, _ := colorspace.Parse(p.Colors[4])
	sel := bg.BlendLab(blue, selectionMix).Clamped().Hex()

	return Terminal{
		Background:          p.Colors[0],
		Foreground:          p.Colors[15],
		Cursor:              p.Colors[4],
		SelectionBackground: sel,
		SelectionForeground: contrast.BestTextColor(sel),
		Colors:              p.Colors,
	}
}

// WriteTerminal renders the palette as a color file for the named terminal
// (alacritty, foot, ghostty or kitty).
func (p Palette) WriteTerminal(w io.Writer, name string) error {
	tmpl, err := config.TerminalTemplate(name)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, p.Terminal())
}
