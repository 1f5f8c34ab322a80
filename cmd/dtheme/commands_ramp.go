package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/danktheme/internal/export"
	"github.com/AvengeMedia/danktheme/internal/log"
	"github.com/AvengeMedia/danktheme/internal/ramp"
)

var rampCmd = &cobra.Command{
	Use:   "ramp <hex_color>...",
	Short: "Generate 50-950 shade ramps",
	Long:  "Generate an 11-stop shade ramp for each color, with luminance and WCAG contrast against white and black",
	Args:  cobra.MinimumNArgs(1),
	Run:   runRamp,
}

func init() {
	rampCmd.Flags().Bool("json", false, "Output ramps as JSON")
	rampCmd.Flags().Bool("tailwind", false, "Output ramps as a Tailwind colors module")
}

func runRamp(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")
	asTailwind, _ := cmd.Flags().GetBool("tailwind")

	ramps := make([]ramp.ShadeRamp, 0, len(args))
	for _, a := range args {
		ramps = append(ramps, ramp.Tone(a))
	}

	switch {
	case asJSON:
		emit(func(w io.Writer) error { return writeJSON(w, ramps) })
	case asTailwind:
		emit(func(w io.Writer) error { return export.Tailwind(w, namedRamps(cfg.Name, ramps)) })
	default:
		emit(func(w io.Writer) error {
			for i, r := range ramps {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := writeRampTable(w, r); err != nil {
					return err
				}
			}
			return nil
		})
		if showPreview() {
			for _, r := range ramps {
				fmt.Println(export.Swatches(export.RampSwatches(r)))
			}
		}
	}
}

func namedRamps(name string, ramps []ramp.ShadeRamp) map[string]ramp.ShadeRamp {
	out := make(map[string]ramp.ShadeRamp, len(ramps))
	if len(ramps) == 1 {
		out[name] = ramps[0]
		return out
	}
	for i, r := range ramps {
		out[fmt.Sprintf("%s-%d", name, i+1)] = r
	}
	return out
}

func writeRampTable(w io.Writer, r ramp.ShadeRamp) error {
	if _, err := fmt.Fprintf(w, "# %s (anchor %d)\n", r.Base, r.AnchorStop); err != nil {
		return err
	}
	fmt.Fprintf(w, "%-5s %-8s %7s %7s %7s %s\n", "stop", "hex", "lum", "white", "black", "level")
	for _, s := range r.Shades {
		fmt.Fprintf(w, "%-5d %-8s %7.4f %7.2f %7.2f %s\n",
			s.Stop, s.Hex, s.Luminance, s.ContrastWhite, s.ContrastBlack, s.Level)
	}
	for _, d := range r.Diagnostics {
		log.Warnf("%s: %v", d.Input, d.Err)
	}
	return nil
}
