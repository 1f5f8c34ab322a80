package semantic

import (
	"github.com/AvengeMedia/danktheme/internal/colorspace"
	"github.com/AvengeMedia/danktheme/internal/contrast"
	"github.com/AvengeMedia/danktheme/internal/log"
	"github.com/AvengeMedia/danktheme/internal/theme"
)

// Pair records the contrast of a foreground role against the role it sits on.
type Pair struct {
	Foreground Role            `json:"foreground"`
	Background Role            `json:"background"`
	Result     contrast.Result `json:"result"`
}

// TokenSet is the full set of semantic roles for one mode.
type TokenSet struct {
	Mode        theme.Mode
	Roles       []Role
	Tokens      map[Role]string
	Pairs       []Pair
	Diagnostics []colorspace.Diagnostic
}

// Get returns the color of a role, or "" if the set has no such role.
func (s TokenSet) Get(r Role) string {
	return s.Tokens[r]
}

// Map returns the tokens keyed by role name.
func (s TokenSet) Map() map[string]string {
	m := make(map[string]string, len(s.Tokens))
	for r, v := range s.Tokens {
		m[string(r)] = v
	}
	return m
}

// Build derives every role in DefaultTable from a canonical block. The
// block should be complete; empty or malformed slots fall back to neutral
// gray and are reported in Diagnostics.
func Build(block theme.Block, mode theme.Mode) TokenSet {
	return BuildWith(DefaultTable, block, mode)
}

// BuildWith derives tokens using a custom rule table.
func BuildWith(rules []Rule, block theme.Block, mode theme.Mode) TokenSet {
	ctx := newContext(block, mode)
	set := TokenSet{
		Mode:        mode,
		Roles:       make([]Role, 0, len(rules)),
		Diagnostics: block.Diagnostics(),
	}

	for _, r := range rules {
		v := r.Strategy.Derive(ctx)
		ctx.tokens[r.Role] = v
		set.Roles = append(set.Roles, r.Role)

		if fg, ok := r.Strategy.(ForegroundStrategy); ok {
			res := contrast.Evaluate(v, ctx.Token(fg.On))
			set.Pairs = append(set.Pairs, Pair{Foreground: r.Role, Background: fg.On, Result: res})
			if res.Level == contrast.LevelFail || res.Level == contrast.LevelA {
				log.Debugf("%s on %s only reaches %.2f:1", r.Role, fg.On, res.Ratio)
			}
		}
	}

	set.Tokens = ctx.tokens
	return set
}

// ThemeTokens holds both modes of a theme.
type ThemeTokens struct {
	Light TokenSet
	Dark  TokenSet
}

// BuildTheme derives tokens for both modes.
func BuildTheme(t theme.Theme) ThemeTokens {
	return ThemeTokens{
		Light: Build(t.Light, theme.Light),
		Dark:  Build(t.Dark, theme.Dark),
	}
}
