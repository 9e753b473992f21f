// SPDX-License-Identifier: MIT
package themes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thatcatcamp/autotheme/internal/codec"
	"github.com/thatcatcamp/autotheme/internal/color"
)

// Theme is a complete generated palette set. Every color in it is written in
// ColorType. A Theme is never modified after generation.
type Theme struct {
	colorType color.Format
	baseColor string
	palettes  map[Role]Palette
}

// ColorType returns the format every color in the theme uses
func (t *Theme) ColorType() color.Format {
	return t.colorType
}

// BaseColor returns the input color rendered in ColorType
func (t *Theme) BaseColor() string {
	return t.baseColor
}

// Palette returns the shades generated for a role
func (t *Theme) Palette(r Role) Palette {
	return t.palettes[r]
}

// Color is a shortcut for Palette(r).Get(s)
func (t *Theme) Color(r Role, s Shade) (string, bool) {
	return t.palettes[r].Get(s)
}

// Canonical parses a stored color back to OKLCH. The value went through
// ColorType's quantization so it is close to, not equal to, what was
// generated.
func (t *Theme) Canonical(r Role, s Shade) (color.OKLCH, bool) {
	c, ok := t.Color(r, s)
	if !ok {
		return color.OKLCH{}, false
	}
	return color.Parse(c, t.colorType), true
}

// Fields lists the theme's fields in declaration order for codec.Serialize
func (t *Theme) Fields() []codec.Field {
	if t == nil {
		return nil
	}
	fields := []codec.Field{
		codec.Scalar("colorType", t.colorType.String()),
		codec.Scalar("baseColor", t.baseColor),
	}
	for _, r := range roleOrder {
		entries := t.palettes[r].entries
		pairs := make([]codec.Pair, 0, len(entries))
		for _, e := range entries {
			pairs = append(pairs, codec.Pair{Key: e.Shade.String(), Value: e.Color})
		}
		fields = append(fields, codec.Map(r.String(), pairs))
	}
	return fields
}

type themeView struct {
	ColorType color.Format `json:"colorType" yaml:"colorType"`
	BaseColor string       `json:"baseColor" yaml:"baseColor"`
	Primary   Palette      `json:"primary" yaml:"primary"`
	Secondary Palette      `json:"secondary" yaml:"secondary"`
	Tertiary  Palette      `json:"tertiary" yaml:"tertiary"`
	Accent    Palette      `json:"accent" yaml:"accent"`
	Neutral   Palette      `json:"neutral" yaml:"neutral"`
}

func (t *Theme) view() themeView {
	return themeView{
		ColorType: t.colorType,
		BaseColor: t.baseColor,
		Primary:   t.palettes[Primary],
		Secondary: t.palettes[Secondary],
		Tertiary:  t.palettes[Tertiary],
		Accent:    t.palettes[Accent],
		Neutral:   t.palettes[Neutral],
	}
}

// MarshalJSON writes the theme the way page styling code consumes it
func (t *Theme) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(t.view()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (t *Theme) MarshalYAML() (interface{}, error) {
	return t.view(), nil
}

// FromDocument rebuilds a theme from a decoded codec document. Roles missing
// from the document come back as empty palettes.
func FromDocument(doc *codec.Document) (*Theme, error) {
	if doc == nil {
		return nil, errors.New("document is nil")
	}

	ct, ok := doc.Scalar("colorType")
	if !ok {
		return nil, errors.New("document has no colorType")
	}
	format, err := color.ParseFormat(ct)
	if err != nil {
		return nil, err
	}
	base, ok := doc.Scalar("baseColor")
	if !ok {
		return nil, errors.New("document has no baseColor")
	}

	t := &Theme{colorType: format, baseColor: base, palettes: make(map[Role]Palette, len(roleOrder))}
	for _, section := range doc.Maps {
		role, err := ParseRole(section.Key)
		if err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, len(section.Entries))
		for _, p := range section.Entries {
			shade, err := ParseShade(p.Key)
			if err != nil {
				return nil, fmt.Errorf("role %s: %w", role, err)
			}
			entries = append(entries, Entry{Shade: shade, Color: p.Value})
		}
		t.palettes[role] = Palette{entries: entries}
	}
	return t, nil
}
