package theme

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads a canonical theme from a .json, .yaml or .yml file. The theme
// is not validated; callers decide whether to Validate or WithDefaults.
func Load(fs afero.Fs, path string) (Theme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}

	var t Theme
	if isJSON(path) {
		err = json.Unmarshal(data, &t)
	} else {
		err = yaml.Unmarshal(data, &t)
	}
	if err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes t as indented JSON or as YAML.
func Marshal(t Theme, asJSON bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if asJSON {
		data, err = json.MarshalIndent(t, "", "  ")
	} else {
		data, err = yaml.Marshal(t)
	}
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return data, nil
}

// Save writes t to path, choosing the encoding from the extension.
func Save(fs afero.Fs, path string, t Theme) error {
	data, err := Marshal(t, isJSON(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return afero.WriteFile(fs, path, data, 0o644)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
