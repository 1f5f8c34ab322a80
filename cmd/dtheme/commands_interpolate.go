package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/danktheme/internal/export"
	"github.com/AvengeMedia/danktheme/internal/ramp"
)

var interpolateCmd = &cobra.Command{
	Use:   "interpolate <hex_color>...",
	Short: "Interpolate an 11-color ramp through 3-4 anchors",
	Long:  "Walk an 11-color path through up to four anchor colors. Fewer than three anchors are padded by repeating the last one; extras are ignored.",
	Args:  cobra.MinimumNArgs(1),
	Run:   runInterpolate,
}

func init() {
	interpolateCmd.Flags().Bool("closed", false, "Return to the first anchor at the end of the path")
	interpolateCmd.Flags().Bool("json", false, "Output as JSON")
}

func runInterpolate(cmd *cobra.Command, args []string) {
	closed, _ := cmd.Flags().GetBool("closed")
	asJSON, _ := cmd.Flags().GetBool("json")

	path := ramp.OpenPath
	if closed {
		path = ramp.ClosedPath
	}
	r := ramp.InterpolatePath(path, args...)

	if asJSON {
		emit(func(w io.Writer) error { return writeJSON(w, r) })
		return
	}

	emit(func(w io.Writer) error { return writeIndexed(w, r.Colors) })
	if showPreview() {
		fmt.Println(export.Swatches(export.HexSwatches("", r.Colors)))
	}
}

func writeIndexed(w io.Writer, colors []string) error {
	for i, c := range colors {
		if _, err := fmt.Fprintf(w, "%2d %s\n", i, c); err != nil {
			return err
		}
	}
	return nil
}
