package config

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrUnknownTemplate = errors.New("unknown terminal template")

// Terminal color file templates. Each is executed with a value exposing
// Background, Foreground, Cursor, SelectionBackground, SelectionForeground
// and the 16 entry Colors array.

const AlacrittyTheme = `[colors.primary]
background = '{{.Background}}'
foreground = '{{.Foreground}}'

[colors.selection]
text = '{{.SelectionForeground}}'
background = '{{.SelectionBackground}}'

[colors.cursor]
text = '{{.Background}}'
cursor = '{{.Cursor}}'

[colors.normal]
black   = '{{index .Colors 0}}'
red     = '{{index .Colors 1}}'
green   = '{{index .Colors 2}}'
yellow  = '{{index .Colors 3}}'
blue    = '{{index .Colors 4}}'
magenta = '{{index .Colors 5}}'
cyan    = '{{index .Colors 6}}'
white   = '{{index .Colors 7}}'

[colors.bright]
black   = '{{index .Colors 8}}'
red     = '{{index .Colors 9}}'
green   = '{{index .Colors 10}}'
yellow  = '{{index .Colors 11}}'
blue    = '{{index .Colors 12}}'
magenta = '{{index .Colors 13}}'
cyan    = '{{index .Colors 14}}'
white   = '{{index .Colors 15}}'
`

const GhosttyTheme = `background = {{.Background}}
foreground = {{.Foreground}}
cursor-color = {{.Cursor}}
selection-background = {{.SelectionBackground}}
selection-foreground = {{.SelectionForeground}}
{{range $i, $c := .Colors}}palette = {{$i}}={{$c}}
{{end}}`

const KittyTheme = `cursor {{.Cursor}}
cursor_text_color {{.Background}}

foreground            {{.Foreground}}
background            {{.Background}}
selection_foreground  {{.SelectionForeground}}
selection_background  {{.SelectionBackground}}
url_color             {{index .Colors 4}}
{{range $i, $c := .Colors}}color{{$i}}   {{$c}}
{{end}}`

const FootTheme = `[cursor]
color={{bare .Background}} {{bare .Cursor}}

[colors]
foreground={{bare .Foreground}}
background={{bare .Background}}
selection-foreground={{bare .SelectionForeground}}
selection-background={{bare .SelectionBackground}}
{{range $i, $c := .Colors}}{{if lt $i 8}}regular{{$i}}{{else}}bright{{sub $i 8}}{{end}}={{bare $c}}
{{end}}`

var terminalTemplates = map[string]string{
	"alacritty": AlacrittyTheme,
	"ghostty":   GhosttyTheme,
	"kitty":     KittyTheme,
	"foot":      FootTheme,
}

var funcs = template.FuncMap{
	"bare": func(hex string) string { return strings.TrimPrefix(hex, "#") },
	"sub":  func(a, b int) int { return a - b },
}

// Terminals lists the supported terminal template names.
func Terminals() []string {
	names := maps.Keys(terminalTemplates)
	slices.Sort(names)
	return names
}

// TerminalTemplate parses the named terminal template.
func TerminalTemplate(name string) (*template.Template, error) {
	src, ok := terminalTemplates[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return template.New(name).Funcs(funcs).Parse(src)
}
