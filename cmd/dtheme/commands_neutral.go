package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/danktheme/internal/export"
	"github.com/AvengeMedia/danktheme/internal/ramp"
)

var neutralCmd = &cobra.Command{
	Use:   "neutral <seed_color>",
	Short: "Derive the 8 neutral slots from a seed",
	Long:  "Derive background, interface and text neutrals from one seed color for the selected --mode",
	Args:  cobra.ExactArgs(1),
	Run:   runNeutral,
}

func init() {
	neutralCmd.Flags().Bool("json", false, "Output as JSON")
}

func runNeutral(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")
	n := ramp.Neutral(args[0], currentMode())

	if asJSON {
		emit(func(w io.Writer) error { return writeJSON(w, n) })
		return
	}

	emit(func(w io.Writer) error { return writeNeutral(w, n) })
	if showPreview() {
		items := make([]export.Swatch, 0, len(n.Steps))
		for _, s := range n.Steps {
			items = append(items, export.Swatch{Label: string(s.Slot), Hex: s.Hex})
		}
		fmt.Println(export.Swatches(items))
	}
}

func writeNeutral(w io.Writer, n ramp.NeutralRamp) error {
	for _, s := range n.Steps {
		if _, err := fmt.Fprintf(w, "%-13s %s\n", s.Slot, s.Hex); err != nil {
			return err
		}
	}
	return nil
}
