// SPDX-License-Identifier: MIT
package themes

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Entry is one shade of a palette
type Entry struct {
	Shade Shade
	Color string
}

// Palette maps shade stops to rendered colors, in stop order
type Palette struct {
	entries []Entry
}

// Len returns the number of shades in the palette
func (p Palette) Len() int {
	return len(p.entries)
}

// Get returns the color for a shade
func (p Palette) Get(s Shade) (string, bool) {
	for _, e := range p.entries {
		if e.Shade == s {
			return e.Color, true
		}
	}
	return "", false
}

// Entries returns a copy of the entries
func (p Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Shades returns the stops present in the palette
func (p Palette) Shades() []Shade {
	out := make([]Shade, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e.Shade)
	}
	return out
}

// Nearest returns the color of the present stop closest to s. It reports
// false only for an empty palette.
func (p Palette) Nearest(s Shade) (string, bool) {
	if c, ok := p.Get(s); ok {
		return c, true
	}
	want := s.index()
	best, bestDist := -1, 0
	for i, e := range p.entries {
		d := e.Shade.index() - want
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return "", false
	}
	return p.entries[best].Color, true
}

// MarshalJSON writes {"50": "...", "100": "..."} keeping stop order
func (p Palette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range p.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		val, err := json.Marshal(e.Color)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`"` + e.Shade.String() + `":`)
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes an ordered mapping
func (p Palette) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range p.entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Shade.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Color},
		)
	}
	return node, nil
}
