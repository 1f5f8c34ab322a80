package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/AvengeMedia/danktheme/internal/export"
	"github.com/AvengeMedia/danktheme/internal/log"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

func currentMode() theme.Mode {
	m, err := theme.ParseMode(cfg.Mode)
	if err != nil {
		log.Fatalf("Invalid mode: %v", err)
	}
	return m
}

func showPreview() bool {
	return !cfg.NoPreview && cfg.Output == ""
}

// emit sends fn's output to --output when set, stdout otherwise.
func emit(fn func(io.Writer) error) {
	if cfg.Output == "" {
		if err := fn(os.Stdout); err != nil {
			log.Fatalf("Error writing output: %v", err)
		}
		return
	}

	if err := export.WriteFile(appFs, cfg.Output, fn); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
	log.Infof("Wrote %s", cfg.Output)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// loadTheme reads the theme named by the first argument or by --theme.
func loadTheme(args []string) theme.Theme {
	path := cfg.Theme
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		log.Fatalf("No theme file given (pass a path or set --theme)")
	}

	t, err := theme.Load(appFs, path)
	if err != nil {
		log.Fatalf("Error loading theme: %v", err)
	}
	return t
}

// completeTheme validates t, optionally filling missing slots from a
// neutral bootstrap of each mode's background.
func completeTheme(t theme.Theme, fill bool) (theme.Theme, error) {
	if fill {
		t.Light = t.Light.WithDefaults(bootstrapDefaults(t.Light.Background, theme.Light))
		t.Dark = t.Dark.WithDefaults(bootstrapDefaults(t.Dark.Background, theme.Dark))
	}
	return t, t.Validate()
}

func readFile(path string) ([]byte, error) {
	return afero.ReadFile(appFs, filepath.Clean(path))
}
