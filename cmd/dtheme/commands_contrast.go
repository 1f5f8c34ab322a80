package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/contrast"
	"github.com/AvengeMedia/danktheme/internal/log"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Measure contrast between two colors",
	Long:  "Report the WCAG contrast ratio and level, Delta Phi Star contrast and the best black/white text color for the background",
	Args:  cobra.ExactArgs(2),
	Run:   runContrast,
}

func init() {
	contrastCmd.Flags().Float64("ensure", 0, "Nudge the foreground until it reaches this WCAG ratio")
	contrastCmd.Flags().Float64("ensure-lc", 0, "Nudge the foreground until it reaches this Delta Phi Star contrast")
}

type contrastReport struct {
	Foreground string          `json:"foreground"`
	Background string          `json:"background"`
	Result     contrast.Result `json:"result"`
	Lc         float64         `json:"lc"`
	BestText   string          `json:"bestText"`
	Adjusted   string          `json:"adjusted,omitempty"`
}

func runContrast(cmd *cobra.Command, args []string) {
	ensure, _ := cmd.Flags().GetFloat64("ensure")
	ensureLc, _ := cmd.Flags().GetFloat64("ensure-lc")

	for _, d := range colorspace.Diagnose(args...) {
		log.Fatalf("Invalid color: %v", d)
	}

	r := newContrastReport(args[0], args[1], currentMode().IsLight(), ensure, ensureLc)
	if cfg.Format == "json" {
		emit(func(w io.Writer) error { return writeJSON(w, r) })
		return
	}
	emit(func(w io.Writer) error { return writeContrast(w, r) })
}

func newContrastReport(fg, bg string, light bool, ensure, ensureLc float64) contrastReport {
	r := contrastReport{
		Foreground: colorspace.MustNormalize(fg),
		Background: colorspace.MustNormalize(bg),
		Result:     contrast.Evaluate(fg, bg),
		Lc:         contrast.Lc(fg, bg, light),
		BestText:   contrast.BestTextColor(bg),
	}
	switch {
	case ensure > 0:
		r.Adjusted = contrast.Ensure(fg, bg, ensure, light)
	case ensureLc > 0:
		r.Adjusted = contrast.EnsureLc(fg, bg, ensureLc, light)
	}
	return r
}

func writeContrast(w io.Writer, r contrastReport) error {
	_, err := fmt.Fprintf(w, "%s on %s\nratio     %.2f:1\nlevel     %s\nlc        %.1f\nbest text %s\n",
		r.Foreground, r.Background, r.Result.Ratio, r.Result.Level, r.Lc, r.BestText)
	if err != nil {
		return err
	}
	if r.Adjusted != "" {
		_, err = fmt.Fprintf(w, "adjusted  %s (%.2f:1)\n", r.Adjusted, contrast.Ratio(r.Adjusted, r.Background))
	}
	return err
}
