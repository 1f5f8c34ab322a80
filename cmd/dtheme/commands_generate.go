package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/danktheme/internal/log"
	"github.com/AvengeMedia/danktheme/internal/ramp"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate <seed_color>",
	Short: "Bootstrap a canonical theme from one color",
	Long:  "Bootstrap a complete light and dark canonical theme from a single seed color. The light seed is pinned as the light background.",
	Args:  cobra.ExactArgs(1),
	Run:   runGenerate,
}

func init() {
	generateCmd.Flags().String("dark-seed", "", "Seed for the dark block (default: derived from the seed)")
}

func runGenerate(cmd *cobra.Command, args []string) {
	darkSeed, _ := cmd.Flags().GetString("dark-seed")

	t := ramp.BootstrapTheme(cfg.Name, args[0], darkSeed)

	if cfg.Output != "" {
		if err := theme.Save(appFs, cfg.Output, t); err != nil {
			log.Fatalf("Error saving theme: %v", err)
		}
		log.Infof("Wrote %s", cfg.Output)
		return
	}

	emit(func(w io.Writer) error { return writeTheme(w, t, cfg.Format == "json") })
}

func writeTheme(w io.Writer, t theme.Theme, asJSON bool) error {
	data, err := theme.Marshal(t, asJSON)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func bootstrapDefaults(seed string, mode theme.Mode) theme.Block {
	if strings.TrimSpace(seed) == "" {
		log.Warnf("No %s background to bootstrap from, using neutral gray", mode)
	}
	return ramp.Bootstrap(seed, mode)
}
