package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/danktheme/internal/export"
	"github.com/AvengeMedia/danktheme/internal/log"
	"github.com/AvengeMedia/danktheme/internal/ramp"
	"github.com/AvengeMedia/danktheme/internal/semantic"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [theme_file]",
	Short: "Build semantic UI tokens from a canonical theme",
	Long:  "Build the semantic token set (background, primary, muted, ring, chart-1..5, sidebar...) for both modes and write it as css, json, yaml or tailwind",
	Args:  cobra.MaximumNArgs(1),
	Run:   runTokens,
}

func init() {
	tokensCmd.Flags().Bool("fill", false, "Fill missing slots from a neutral bootstrap of each background")
	tokensCmd.Flags().Bool("report", false, "Print foreground/background contrast pairs instead of tokens")
}

func runTokens(cmd *cobra.Command, args []string) {
	fill, _ := cmd.Flags().GetBool("fill")
	report, _ := cmd.Flags().GetBool("report")

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		log.Fatalf("%v", err)
	}

	t, err := completeTheme(loadTheme(args), fill)
	if err != nil {
		log.Fatalf("Incomplete theme (use --fill to derive missing slots): %v", err)
	}

	tokens := semantic.BuildTheme(t)

	if report {
		emit(func(w io.Writer) error { return writePairs(w, tokens) })
		return
	}

	if format == export.FormatTailwind {
		emit(func(w io.Writer) error { return export.Tailwind(w, themeRamps(t.Block(currentMode()))) })
		return
	}

	emit(func(w io.Writer) error { return export.Write(w, format, tokens) })
	if showPreview() && format == export.FormatCSS {
		fmt.Println(export.Swatches(export.TokenSwatches(tokens.Light)))
	}
}

// themeRamps builds shade ramps for every chromatic slot of a block.
func themeRamps(b theme.Block) map[string]ramp.ShadeRamp {
	slots := []theme.Slot{
		theme.SlotPrimary, theme.SlotSecondary,
		theme.SlotAccent, theme.SlotAccent2, theme.SlotAccent3,
		theme.SlotInterface2,
	}
	out := make(map[string]ramp.ShadeRamp, len(slots))
	for _, s := range slots {
		out[string(s)] = ramp.Tone(b.Get(s))
	}
	return out
}

func writePairs(w io.Writer, t semantic.ThemeTokens) error {
	for _, set := range []semantic.TokenSet{t.Light, t.Dark} {
		if _, err := fmt.Fprintf(w, "# %s\n", set.Mode); err != nil {
			return err
		}
		for _, p := range set.Pairs {
			fmt.Fprintf(w, "%-28s on %-16s %6.2f:1 %s\n", p.Foreground, p.Background, p.Result.Ratio, p.Result.Level)
		}
	}
	return nil
}
