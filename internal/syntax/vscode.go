package syntax

import (
	"encoding/json"
	"fmt"
)

type VSCodeTheme struct {
	Schema               string                        `json:"$schema"`
	Name                 string                        `json:"name"`
	Type                 string                        `json:"type"`
	Colors               map[string]string             `json:"colors"`
	TokenColors          []VSCodeTokenColor            `json:"tokenColors"`
	SemanticHighlighting bool                          `json:"semanticHighlighting"`
	SemanticTokenColors  map[string]VSCodeTokenSetting `json:"semanticTokenColors"`
}

type VSCodeTokenColor struct {
	Scope    []string           `json:"scope"`
	Settings VSCodeTokenSetting `json:"settings"`
}

type VSCodeTokenSetting struct {
	Foreground string `json:"foreground,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// workbench maps VSCode UI keys to palette entries. An alpha suffix is
// appended to the hex when set.
var workbench = []struct {
	key   string
	index int
	alpha string
}{
	{"editor.background", 0, ""},
	{"editor.foreground", 15, ""},
	{"editorLineNumber.foreground", 8, ""},
	{"editorLineNumber.activeForeground", 7, ""},
	{"editorCursor.foreground", 4, ""},
	{"editor.selectionBackground", 4, "40"},
	{"editor.inactiveSelectionBackground", 8, "30"},
	{"editor.lineHighlightBackground", 8, "18"},
	{"editorIndentGuide.background", 8, "40"},
	{"editorIndentGuide.activeBackground", 8, ""},
	{"editorWhitespace.foreground", 8, "60"},
	{"editorBracketMatch.background", 4, "30"},
	{"editorBracketMatch.border", 4, ""},
	{"activityBar.background", 0, ""},
	{"activityBar.foreground", 15, ""},
	{"activityBar.activeBorder", 4, ""},
	{"activityBarBadge.background", 4, ""},
	{"activityBarBadge.foreground", 0, ""},
	{"sideBar.background", 0, ""},
	{"sideBar.foreground", 7, ""},
	{"sideBar.border", 8, "40"},
	{"sideBarSectionHeader.foreground", 15, ""},
	{"list.activeSelectionBackground", 4, "40"},
	{"list.activeSelectionForeground", 15, ""},
	{"list.hoverBackground", 8, "20"},
	{"list.highlightForeground", 4, ""},
	{"statusBar.background", 0, ""},
	{"statusBar.foreground", 7, ""},
	{"statusBar.border", 8, "40"},
	{"tab.activeBackground", 0, ""},
	{"tab.inactiveBackground", 0, ""},
	{"tab.activeForeground", 15, ""},
	{"tab.inactiveForeground", 8, ""},
	{"tab.activeBorder", 4, ""},
	{"titleBar.activeBackground", 0, ""},
	{"titleBar.activeForeground", 15, ""},
	{"titleBar.inactiveForeground", 8, ""},
	{"input.foreground", 15, ""},
	{"input.border", 8, "60"},
	{"input.placeholderForeground", 8, ""},
	{"button.background", 4, ""},
	{"button.foreground", 0, ""},
	{"button.hoverBackground", 12, ""},
	{"focusBorder", 4, ""},
	{"badge.background", 6, ""},
	{"badge.foreground", 0, ""},
	{"panel.background", 0, ""},
	{"panel.border", 8, "40"},
	{"panelTitle.activeBorder", 4, ""},
	{"terminal.background", 0, ""},
	{"terminal.foreground", 15, ""},
	{"gitDecoration.modifiedResourceForeground", 6, ""},
	{"gitDecoration.deletedResourceForeground", 1, ""},
	{"gitDecoration.untrackedResourceForeground", 10, ""},
	{"gitDecoration.ignoredResourceForeground", 8, ""},
	{"gitDecoration.conflictingResourceForeground", 5, ""},
	{"editorError.foreground", 1, ""},
	{"editorWarning.foreground", 11, ""},
	{"editorInfo.foreground", 4, ""},
	{"editorGutter.addedBackground", 10, ""},
	{"editorGutter.modifiedBackground", 6, ""},
	{"editorGutter.deletedBackground", 1, ""},
	{"diffEditor.insertedTextBackground", 10, "20"},
	{"diffEditor.removedTextBackground", 1, "20"},
	{"scrollbarSlider.background", 8, "40"},
	{"scrollbarSlider.hoverBackground", 8, "60"},
	{"scrollbarSlider.activeBackground", 8, "80"},
	{"breadcrumb.foreground", 8, ""},
	{"breadcrumb.focusForeground", 15, ""},
	{"peekView.border", 4, ""},
}

var ansiNames = [Size]string{
	"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White",
	"BrightBlack", "BrightRed", "BrightGreen", "BrightYellow",
	"BrightBlue", "BrightMagenta", "BrightCyan", "BrightWhite",
}

// textmateScopes binds TextMate scopes to syntax roles.
var textmateScopes = []struct {
	scopes []string
	role   Role
	style  string
}{
	{[]string{"comment", "punctuation.definition.comment"}, RoleComment, "italic"},
	{[]string{"keyword", "storage.modifier"}, RoleKeyword, ""},
	{[]string{"storage.type", "support.type"}, RoleStorage, ""},
	{[]string{"variable", "meta.object-literal.key", "support.variable"}, RoleVariable, ""},
	{[]string{"string", "constant.other.symbol", "markup.raw"}, RoleString, ""},
	{[]string{"constant.numeric", "constant.character"}, RoleNumber, ""},
	{[]string{"constant.language", "variable.language"}, RoleConstant, ""},
	{[]string{"entity.name.type", "entity.name.class", "support.class"}, RoleType, ""},
	{[]string{"entity.name.function", "support.function"}, RoleFunction, ""},
	{[]string{"entity.name.namespace", "entity.name.package"}, RoleNamespace, ""},
	{[]string{"keyword.operator"}, RoleOperator, ""},
	{[]string{"variable.parameter"}, RoleParameter, ""},
	{[]string{"invalid"}, RoleError, ""},
	{[]string{"markup.heading"}, RoleFunction, "bold"},
	{[]string{"markup.italic"}, RoleKeyword, "italic"},
}

var semanticRoles = map[string]Role{
	"variable":          RoleVariable,
	"variable.readonly": RoleConstant,
	"property":          RoleProperty,
	"function":          RoleFunction,
	"method":            RoleFunction,
	"type":              RoleType,
	"class":             RoleType,
	"typeParameter":     RoleStorage,
	"enumMember":        RoleConstant,
	"string":            RoleString,
	"number":            RoleNumber,
	"comment":           RoleComment,
	"keyword":           RoleKeyword,
	"operator":          RoleOperator,
	"parameter":         RoleParameter,
	"namespace":         RoleNamespace,
}

// VSCode renders the palette as a VSCode color theme.
func (p Palette) VSCode(name string) VSCodeTheme {
	kind := "dark"
	if p.Mode.IsLight() {
		kind = "light"
	}

	t := VSCodeTheme{
		Schema:               "vscode://schemas/color-theme",
		Name:                 name,
		Type:                 kind,
		Colors:               make(map[string]string, len(workbench)+Size),
		SemanticHighlighting: true,
		SemanticTokenColors:  make(map[string]VSCodeTokenSetting, len(semanticRoles)),
	}

	for _, w := range workbench {
		t.Colors[w.key] = p.Colors[w.index] + w.alpha
	}
	for k, v := range p.terminalColors() {
		t.Colors[k] = v
	}

	for _, tm := range textmateScopes {
		t.TokenColors = append(t.TokenColors, VSCodeTokenColor{
			Scope:    tm.scopes,
			Settings: VSCodeTokenSetting{Foreground: p.Role(tm.role), FontStyle: tm.style},
		})
	}

	for k, r := range semanticRoles {
		setting := VSCodeTokenSetting{Foreground: p.Role(r)}
		if r == RoleComment {
			setting.FontStyle = "italic"
		}
		t.SemanticTokenColors[k] = setting
	}
	return t
}

func (p Palette) terminalColors() map[string]string {
	m := make(map[string]string, Size)
	for i, n := range ansiNames {
		m["terminal.ansi"+n] = p.Colors[i]
	}
	return m
}

// EnrichVSCodeTheme recolors an existing VSCode theme: terminal colors are
// replaced, matching TextMate scopes get the palette's role colors and
// semantic token colors are set. Keys the palette does not know about are
// preserved.
func EnrichVSCodeTheme(data []byte, p Palette) ([]byte, error) {
	var t map[string]any
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse vscode theme: %w", err)
	}

	colors, ok := t["colors"].(map[string]any)
	if !ok {
		colors = make(map[string]any)
		t["colors"] = colors
	}
	for k, v := range p.terminalColors() {
		colors[k] = v
	}

	scopeColor := make(map[string]string)
	for _, tm := range textmateScopes {
		for _, s := range tm.scopes {
			if _, seen := scopeColor[s]; !seen {
				scopeColor[s] = p.Role(tm.role)
			}
		}
	}

	if tokens, ok := t["tokenColors"].([]any); ok {
		for _, tc := range tokens {
			entry, ok := tc.(map[string]any)
			if !ok {
				continue
			}
			settings, ok := entry["settings"].(map[string]any)
			if !ok {
				continue
			}
			for _, s := range scopesOf(entry["scope"]) {
				if c, ok := scopeColor[s]; ok {
					settings["foreground"] = c
					break
				}
			}
		}
	}

	semantic, ok := t["semanticTokenColors"].(map[string]any)
	if !ok {
		semantic = make(map[string]any)
		t["semanticTokenColors"] = semantic
	}
	for k, r := range semanticRoles {
		if existing, ok := semantic[k].(map[string]any); ok {
			existing["foreground"] = p.Role(r)
			continue
		}
		semantic[k] = map[string]any{"foreground": p.Role(r)}
	}

	return json.MarshalIndent(t, "", "  ")
}

// scopesOf accepts both the string and the array form of a TextMate scope.
func scopesOf(v any) []string {
	switch s := v.(type) {
	case string:
		return []string{s}
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}
