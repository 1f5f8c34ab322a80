package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/danktheme/internal/config"
	"github.com/AvengeMedia/danktheme/internal/log"
)

var (
	appFs   = afero.NewOsFs()
	loader  = config.NewLoader(appFs)
	cfg     = &config.Config{}
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "dtheme",
	Short: "Derive design tokens from canonical color palettes",
	Long: `dtheme turns a small canonical palette (backgrounds, interface neutrals, text
tiers, primary, secondary and accents) into shade ramps, semantic UI tokens,
chart colors and terminal/editor syntax palettes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/dtheme/config.yaml)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("mode", "light", "Theme mode: light or dark")
	flags.String("contrast", "dps", "Contrast algorithm for syntax palettes: dps or wcag")
	flags.String("format", "css", "Token output format: css, json, yaml or tailwind")
	flags.StringP("output", "o", "", "Write output to this file instead of stdout")
	flags.String("theme", "", "Canonical theme file (yaml or json)")
	flags.String("name", "dtheme", "Theme name used in generated files")
	flags.Bool("no-preview", false, "Disable colored swatch previews")

	v := loader.Viper()
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("mode", flags.Lookup("mode"))
	_ = v.BindPFlag("contrast", flags.Lookup("contrast"))
	_ = v.BindPFlag("format", flags.Lookup("format"))
	_ = v.BindPFlag("output", flags.Lookup("output"))
	_ = v.BindPFlag("theme", flags.Lookup("theme"))
	_ = v.BindPFlag("name", flags.Lookup("name"))
	_ = v.BindPFlag("no_preview", flags.Lookup("no-preview"))

	rootCmd.AddCommand(
		rampCmd,
		interpolateCmd,
		neutralCmd,
		tokensCmd,
		contrastCmd,
		chartCmd,
		syntaxCmd,
		generateCmd,
	)
}

func initConfig() error {
	if cfgFile != "" {
		loader.WithConfigFile(cfgFile)
	}

	loaded, err := loader.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	log.SetLevel(cfg.LogLevel)
	log.Debugf("Config: mode=%s format=%s contrast=%s", cfg.Mode, cfg.Format, cfg.Contrast)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
