package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/AvengeMedia/danktheme/internal/ramp"
	"github.com/AvengeMedia/danktheme/internal/semantic"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	FormatCSS      Format = "css"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTailwind Format = "tailwind"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSS, FormatJSON, FormatYAML, FormatTailwind}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Extension is the file extension conventionally used for f.
func (f Format) Extension() string {
	switch f {
	case FormatTailwind:
		return ".js"
	case FormatYAML:
		return ".yaml"
	}
	return "." + string(f)
}

// CSS writes the light tokens as :root custom properties and the dark
// tokens under .dark, in role order.
func CSS(w io.Writer, t semantic.ThemeTokens) error {
	var b strings.Builder
	writeBlock(&b, ":root", t.Light)
	b.WriteString("\n")
	writeBlock(&b, ".dark", t.Dark)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeBlock(b *strings.Builder, selector string, s semantic.TokenSet) {
	fmt.Fprintf(b, "%s {\n", selector)
	for _, r := range s.Roles {
		fmt.Fprintf(b, "  --%s: %s;\n", r, s.Get(r))
	}
	b.WriteString("}\n")
}

type document struct {
	Light map[string]string `json:"light" yaml:"light"`
	Dark  map[string]string `json:"dark" yaml:"dark"`
}

func newDocument(t semantic.ThemeTokens) document {
	return document{Light: t.Light.Map(), Dark: t.Dark.Map()}
}

// JSON writes {"light": {...}, "dark": {...}} role maps.
func JSON(w io.Writer, t semantic.ThemeTokens) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(t))
}

// YAML writes the same document as JSON in YAML form.
func YAML(w io.Writer, t semantic.ThemeTokens) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(t)); err != nil {
		return err
	}
	return enc.Close()
}

// Tailwind writes shade ramps as a Tailwind colors module, stops in
// numeric order.
func Tailwind(w io.Writer, ramps map[string]ramp.ShadeRamp) error {
	names := make([]string, 0, len(ramps))
	for n := range ramps {
		names = append(names, n)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("module.exports = {\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  %s: {\n", strconv.Quote(n))
		for _, s := range ramps[n].Shades {
			fmt.Fprintf(&b, "    %d: %s,\n", s.Stop, strconv.Quote(s.Hex))
		}
		b.WriteString("  },\n")
	}
	b.WriteString("};\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Write serializes theme tokens in a token format. Tailwind output needs
// ramps and is written with Tailwind directly.
func Write(w io.Writer, f Format, t semantic.ThemeTokens) error {
	switch f {
	case FormatCSS:
		return CSS(w, t)
	case FormatJSON:
		return JSON(w, t)
	case FormatYAML:
		return YAML(w, t)
	}
	return fmt.Errorf("%w: %q cannot encode semantic tokens", ErrUnknownFormat, f)
}

// WriteFile creates path (and its parent directories) on fs and streams
// fn's output into it. The output goes to a temporary file in the same
// directory that is renamed over path only once fn succeeds, so a failed
// write leaves any previous file untouched.
func WriteFile(fs afero.Fs, path string, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	perm := os.FileMode(0o644)
	if info, err := fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = fs.Remove(tmpPath)
	}

	if err := fn(tmp); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := fs.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
