// SPDX-License-Identifier: MIT
package themes

import (
	"sort"

	"github.com/thatcatcamp/autotheme/internal/color"
)

// Preset is a named base color a theme can be generated from
type Preset struct {
	Name string `json:"name" yaml:"name"` // "slate", "indigo", etc.
	Base string `json:"base" yaml:"base"` // hex color #RRGGBB
}

var presets = map[string]string{
	"slate":      "#64748b",
	"indigo":     "#4f46e5",
	"rose":       "#e11d48",
	"emerald":    "#059669",
	"navy":       "#000080",
	"purple":     "#a855f7",
	"teal":       "#14b8a6",
	"amber":      "#f59e0b",
	"crimson":    "#c41e3a",
	"green":      "#22c55e",
	"blue":       "#3b82f6",
	"neutral":    "#6b7280",
	"orange":     "#f97316",
	"pink":       "#ec4899",
	"royal-blue": "#1e40af",
}

// GetPreset returns a preset by name, or nil if there is none
func GetPreset(name string) *Preset {
	base, ok := presets[name]
	if !ok {
		return nil
	}
	return &Preset{Name: name, Base: base}
}

// ListPresets returns all presets sorted by name
func ListPresets() []*Preset {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Preset, 0, len(names))
	for _, name := range names {
		out = append(out, GetPreset(name))
	}
	return out
}

// Generate builds a theme from the preset's base color
func (p *Preset) Generate(opts Options) *Theme {
	opts.Input = color.Hex
	return GenerateWithOptions(p.Base, opts)
}
