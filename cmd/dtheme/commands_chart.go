package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/danktheme/internal/chart"
	"github.com/AvengeMedia/danktheme/internal/export"
)

var chartCmd = &cobra.Command{
	Use:   "chart <background> <accent>...",
	Short: "Select five chart colors",
	Long:  "Pick five distinct chart colors from the accents, nudged to stay visible on the background in the selected --mode",
	Args:  cobra.MinimumNArgs(2),
	Run:   runChart,
}

func runChart(cmd *cobra.Command, args []string) {
	colors := chart.Select(args[1:], args[0], currentMode())

	if cfg.Format == "json" {
		emit(func(w io.Writer) error { return writeJSON(w, colors) })
		return
	}
	emit(func(w io.Writer) error { return writeIndexed(w, colors) })
	if showPreview() {
		fmt.Println(export.Swatches(export.HexSwatches("chart-", colors)))
	}
}
