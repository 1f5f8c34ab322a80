package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/AvengeMedia/danktheme/internal/ramp"
	"github.com/AvengeMedia/danktheme/internal/semantic"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

func sampleTheme() theme.Theme {
	return theme.Theme{
		Name: "slate",
		Light: theme.Block{
			Background: "#fafeff", Background2: "#f1f5f9",
			Interface: "#e2e8f0", Interface2: "#cbd5e1", Interface3: "#94a3b8",
			Text: "#0f172a", Text2: "#334155", Text3: "#64748b",
			Primary: "#1e3c78", Secondary: "#2563eb",
			Accent: "#db2777", Accent2: "#16a34a", Accent3: "#ea580c",
		},
		Dark: theme.Block{
			Background: "#0b1120", Background2: "#111827",
			Interface: "#1f2937", Interface2: "#374151", Interface3: "#4b5563",
			Text: "#f8fafc", Text2: "#cbd5e1", Text3: "#94a3b8",
			Primary: "#60a5fa", Secondary: "#3b82f6",
			Accent: "#f472b6", Accent2: "#4ade80", Accent3: "#fb923c",
		},
	}
}

func sampleTokens() semantic.ThemeTokens {
	return semantic.BuildTheme(sampleTheme())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"css", FormatCSS, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{" yaml ", FormatYAML, false},
		{"tailwind", FormatTailwind, false},
		{"scss", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".css", FormatCSS.Extension())
	assert.Equal(t, ".json", FormatJSON.Extension())
	assert.Equal(t, ".yaml", FormatYAML.Extension())
	assert.Equal(t, ".js", FormatTailwind.Extension())
}

func TestCSS(t *testing.T) {
	tokens := sampleTokens()

	var buf bytes.Buffer
	require.NoError(t, CSS(&buf, tokens))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, ":root {\n  --background: #fafeff;\n"))
	assert.Contains(t, out, ".dark {\n  --background: #0b1120;\n")
	assert.Contains(t, out, "  --primary: "+tokens.Light.Get(semantic.RolePrimary)+";\n")
	assert.Equal(t, 2*len(semantic.DefaultTable), strings.Count(out, "  --"))

	root := out[:strings.Index(out, ".dark")]
	assert.Less(t, strings.Index(root, "--background:"), strings.Index(root, "--sidebar-border:"))
}

func TestJSON(t *testing.T) {
	tokens := sampleTokens()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, tokens))

	var doc map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, tokens.Light.Map(), doc["light"])
	assert.Equal(t, tokens.Dark.Map(), doc["dark"])
}

func TestYAML(t *testing.T) {
	tokens := sampleTokens()

	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, tokens))

	var doc map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "#fafeff", doc["light"]["background"])
	assert.Equal(t, tokens.Dark.Map(), doc["dark"])
}

func TestTailwind(t *testing.T) {
	ramps := map[string]ramp.ShadeRamp{
		"brand":  ramp.Tone("#3b82f6"),
		"accent": ramp.Tone("#db2777"),
	}

	var buf bytes.Buffer
	require.NoError(t, Tailwind(&buf, ramps))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "module.exports = {\n"))
	assert.Contains(t, out, `    500: "#3b82f6",`)
	assert.Less(t, strings.Index(out, `"accent"`), strings.Index(out, `"brand"`))

	brand := out[strings.Index(out, `"brand"`):]
	assert.Less(t, strings.Index(brand, "    50:"), strings.Index(brand, "    100:"))
	assert.Less(t, strings.Index(brand, "    900:"), strings.Index(brand, "    950:"))
}

func TestWriteDispatch(t *testing.T) {
	tokens := sampleTokens()
	for _, f := range []Format{FormatCSS, FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, tokens), f)
		assert.NotEmpty(t, buf.String(), f)
	}

	err := Write(io.Discard, FormatTailwind, tokens)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	tokens := sampleTokens()

	err := WriteFile(fs, "/out/themes/slate.css", func(w io.Writer) error {
		return CSS(w, tokens)
	})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/out/themes/slate.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ":root {")
}

func TestWriteFilePropagatesWriterError(t *testing.T) {
	fs := afero.NewMemMapFs()
	boom := errors.New("boom")

	err := WriteFile(fs, "/x.css", func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)

	exists, err := afero.Exists(fs, "/x.css")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteFileKeepsPreviousFileOnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/theme.css", []byte("previous theme"), 0o644))
	boom := errors.New("boom")

	err := WriteFile(fs, "/out/theme.css", func(w io.Writer) error {
		if err := CSS(w, sampleTokens()); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := afero.ReadFile(fs, "/out/theme.css")
	require.NoError(t, err)
	assert.Equal(t, "previous theme", string(data))

	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "theme.css", entries[0].Name())
}

func TestWriteFileReplacesPreviousFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/theme.css", []byte("previous theme"), 0o600))

	err := WriteFile(fs, "/out/theme.css", func(w io.Writer) error {
		return CSS(w, sampleTokens())
	})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/out/theme.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ":root {")

	info, err := fs.Stat("/out/theme.css")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteFileReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := WriteFile(fs, "/x/y.css", func(io.Writer) error { return nil })
	assert.Error(t, err)
}

func TestSwatches(t *testing.T) {
	out := Swatches([]Swatch{
		{Label: "primary", Hex: "#1e3c78"},
		{Label: "sidebar-primary-foreground", Hex: "#ffffff"},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "primary")
	assert.Contains(t, lines[0], "#1e3c78")
	assert.Contains(t, lines[1], "sidebar-primary-foreground")
}

func TestSwatchHelpers(t *testing.T) {
	r := ramp.Tone("#3b82f6")
	rs := RampSwatches(r)
	require.Len(t, rs, ramp.Size)
	assert.Equal(t, "#3b82f6", rs[5].Hex)
	assert.True(t, strings.HasPrefix(rs[5].Label, "500 "))

	set := sampleTokens().Light
	ts := TokenSwatches(set)
	require.Len(t, ts, len(set.Roles))
	assert.Equal(t, "background", ts[0].Label)

	hs := HexSwatches("chart-", []string{"#ff0000", "#00ff00"})
	assert.Equal(t, Swatch{Label: "chart-2", Hex: "#00ff00"}, hs[1])
}
