// SPDX-License-Identifier: MIT
package color

import (
	"fmt"
	"strings"
)

// Format identifies one of the textual color encodings
type Format string

const (
	Hex   Format = "hex"
	RGB   Format = "rgb"
	HSL   Format = "hsl"
	OKLab Format = "oklab"
	OKLCh Format = "oklch"
)

// Formats returns every supported format in a stable order
func Formats() []Format {
	return []Format{Hex, RGB, HSL, OKLab, OKLCh}
}

// ParseFormat resolves a user supplied format name such as "HEX" or " oklch"
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown color format %q (must be hex, rgb, hsl, oklab or oklch)", name)
}

func (f Format) String() string {
	return string(f)
}

// Value is a color string tagged with the format it is written in
type Value struct {
	Format Format `json:"format" yaml:"format"`
	Text   string `json:"text" yaml:"text"`
}

// Canonical parses the value into its OKLCH form
func (v Value) Canonical() OKLCH {
	return Parse(v.Text, v.Format)
}

// As re-renders the value in another format
func (v Value) As(f Format) Value {
	return Value{Format: f, Text: Render(v.Canonical(), f)}
}

func (v Value) String() string {
	return v.Text
}
