// Package theme holds the canonical data model: the thirteen author-chosen
// color slots per mode, and the light/dark pair that makes a theme.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AvengeMedia/danktheme/internal/colorspace"
)

var (
	ErrMissingSlot = errors.New("missing canonical slot")
	ErrUnknownMode = errors.New("unknown mode")
	ErrUnknownSlot = errors.New("unknown canonical slot")
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q (must be 'light' or 'dark')", ErrUnknownMode, s)
}

func (m Mode) IsLight() bool {
	return m != Dark
}

func (m Mode) String() string {
	return string(m)
}

type Slot string

const (
	SlotBackground  Slot = "background"
	SlotBackground2 Slot = "background-2"
	SlotInterface   Slot = "interface"
	SlotInterface2  Slot = "interface-2"
	SlotInterface3  Slot = "interface-3"
	SlotText        Slot = "text"
	SlotText2       Slot = "text-2"
	SlotText3       Slot = "text-3"
	SlotPrimary     Slot = "primary"
	SlotSecondary   Slot = "secondary"
	SlotAccent      Slot = "accent"
	SlotAccent2     Slot = "accent-2"
	SlotAccent3     Slot = "accent-3"
)

// Slots lists every canonical slot in file order.
var Slots = []Slot{
	SlotBackground, SlotBackground2,
	SlotInterface, SlotInterface2, SlotInterface3,
	SlotText, SlotText2, SlotText3,
	SlotPrimary, SlotSecondary,
	SlotAccent, SlotAccent2, SlotAccent3,
}

// Block is one mode's canonical colors. Values are hex strings; the
// 8-digit #rrggbbaa wire form is accepted and the alpha is ignored.
type Block struct {
	Background  string `json:"background" yaml:"background"`
	Background2 string `json:"background-2" yaml:"background-2"`
	Interface   string `json:"interface" yaml:"interface"`
	Interface2  string `json:"interface-2" yaml:"interface-2"`
	Interface3  string `json:"interface-3" yaml:"interface-3"`
	Text        string `json:"text" yaml:"text"`
	Text2       string `json:"text-2" yaml:"text-2"`
	Text3       string `json:"text-3" yaml:"text-3"`
	Primary     string `json:"primary" yaml:"primary"`
	Secondary   string `json:"secondary" yaml:"secondary"`
	Accent      string `json:"accent" yaml:"accent"`
	Accent2     string `json:"accent-2" yaml:"accent-2"`
	Accent3     string `json:"accent-3" yaml:"accent-3"`
}

func (b *Block) field(s Slot) *string {
	switch s {
	case SlotBackground:
		return &b.Background
	case SlotBackground2:
		return &b.Background2
	case SlotInterface:
		return &b.Interface
	case SlotInterface2:
		return &b.Interface2
	case SlotInterface3:
		return &b.Interface3
	case SlotText:
		return &b.Text
	case SlotText2:
		return &b.Text2
	case SlotText3:
		return &b.Text3
	case SlotPrimary:
		return &b.Primary
	case SlotSecondary:
		return &b.Secondary
	case SlotAccent:
		return &b.Accent
	case SlotAccent2:
		return &b.Accent2
	case SlotAccent3:
		return &b.Accent3
	}
	return nil
}

// Get returns the value of slot s, or "" for an unknown slot.
func (b Block) Get(s Slot) string {
	if f := b.field(s); f != nil {
		return *f
	}
	return ""
}

// With returns a copy of b with slot s set to hex.
func (b Block) With(s Slot, hex string) (Block, error) {
	f := b.field(s)
	if f == nil {
		return b, fmt.Errorf("%w: %q", ErrUnknownSlot, s)
	}
	*f = hex
	return b, nil
}

// Accents returns the three accent slots in order.
func (b Block) Accents() []string {
	return []string{b.Accent, b.Accent2, b.Accent3}
}

// Missing lists the empty slots.
func (b Block) Missing() []Slot {
	var missing []Slot
	for _, s := range Slots {
		if strings.TrimSpace(b.Get(s)) == "" {
			missing = append(missing, s)
		}
	}
	return missing
}

// Validate fails when any slot is empty or does not parse as a color.
func (b Block) Validate() error {
	var errs []error
	for _, s := range Slots {
		v := b.Get(s)
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSlot, s))
			continue
		}
		if _, err := colorspace.Parse(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s, err))
		}
	}
	return errors.Join(errs...)
}

// Diagnostics reports every slot value, empty ones included, that will be
// replaced by the neutral fallback during derivation.
func (b Block) Diagnostics() []colorspace.Diagnostic {
	values := make([]string, 0, len(Slots))
	for _, s := range Slots {
		values = append(values, b.Get(s))
	}
	return colorspace.Check(values...)
}

// WithDefaults fills every empty slot of b from defaults.
func (b Block) WithDefaults(defaults Block) Block {
	for _, s := range Slots {
		if strings.TrimSpace(b.Get(s)) == "" {
			*b.field(s) = defaults.Get(s)
		}
	}
	return b
}

// Normalized returns b with every parseable slot in lowercase #rrggbb form.
// Unparseable values are kept verbatim so diagnostics still see them.
func (b Block) Normalized() Block {
	for _, s := range Slots {
		f := b.field(s)
		if hex, err := colorspace.Normalize(*f); err == nil {
			*f = hex
		}
	}
	return b
}

// Theme is a named pair of canonical blocks.
type Theme struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Light Block  `json:"light" yaml:"light"`
	Dark  Block  `json:"dark" yaml:"dark"`
}

func (t Theme) Block(m Mode) Block {
	if m == Dark {
		return t.Dark
	}
	return t.Light
}

func (t Theme) Validate() error {
	var errs []error
	if err := t.Light.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("light: %w", err))
	}
	if err := t.Dark.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("dark: %w", err))
	}
	return errors.Join(errs...)
}
