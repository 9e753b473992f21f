// SPDX-License-Identifier: MIT
package themes

import (
	"math"

	"github.com/thatcatcamp/autotheme/internal/color"
)

// Options controls theme generation
type Options struct {
	Input  color.Format
	Output color.Format
	Min    Shade
	Max    Shade
}

// DefaultOptions reads hex, writes hex and covers shades 50 to 900
func DefaultOptions() Options {
	return Options{
		Input:  color.Hex,
		Output: color.Hex,
		Min:    Shade50,
		Max:    Shade900,
	}
}

// ShadeColor is one generated stop before rendering
type ShadeColor struct {
	Shade Shade
	Color color.OKLCH
}

// Generate builds a theme from base, which is read in format in and written in
// format out. Unparseable input falls back to mid gray. Only the stops from
// first to last are produced; a reversed range gives empty palettes.
func Generate(base string, in, out color.Format, first, last Shade) *Theme {
	return GenerateWithOptions(base, Options{Input: in, Output: out, Min: first, Max: last})
}

// GenerateWithOptions is Generate with an Options value
func GenerateWithOptions(base string, opts Options) *Theme {
	c := color.Parse(base, opts.Input)
	grid := Derive(c, opts.Min, opts.Max)

	t := &Theme{
		colorType: opts.Output,
		baseColor: color.Render(c, opts.Output),
		palettes:  make(map[Role]Palette, len(roleOrder)),
	}
	for _, r := range roleOrder {
		stops := grid[r]
		entries := make([]Entry, 0, len(stops))
		for _, sc := range stops {
			entries = append(entries, Entry{Shade: sc.Shade, Color: color.Render(sc.Color, opts.Output)})
		}
		t.palettes[r] = Palette{entries: entries}
	}
	return t
}

// Derive computes the canonical colors of every role for the stops from
// first to last. Alpha is carried from the base.
func Derive(base color.OKLCH, first, last Shade) map[Role][]ShadeColor {
	stops := ShadeRange(first, last)
	grid := make(map[Role][]ShadeColor, len(roleOrder))
	for _, r := range roleOrder {
		hue := color.NormalizeHue(base.H + r.HueOffset())
		chroma := base.C * r.ChromaScale()

		out := make([]ShadeColor, 0, len(stops))
		for _, s := range stops {
			l := s.Lightness()
			out = append(out, ShadeColor{
				Shade: s,
				Color: color.OKLCH{L: l, C: adjustChroma(chroma, l), H: hue, Alpha: base.Alpha},
			})
		}
		grid[r] = out
	}
	return grid
}

// adjustChroma tapers chroma toward the lightness extremes, peaking at 55 and
// never dropping under 30% of the input.
func adjustChroma(chroma, lightness float64) float64 {
	d := math.Abs(lightness-55) / 55
	return chroma * math.Max(0.3, 1-d*d*0.5)
}

// ParseOptions builds Options from textual values such as flags or query
// parameters. Empty values keep the defaults.
func ParseOptions(in, out, first, last string) (Options, error) {
	opts := DefaultOptions()
	var err error
	if in != "" {
		if opts.Input, err = color.ParseFormat(in); err != nil {
			return opts, err
		}
	}
	if out != "" {
		if opts.Output, err = color.ParseFormat(out); err != nil {
			return opts, err
		}
	}
	if first != "" {
		if opts.Min, err = ParseShade(first); err != nil {
			return opts, err
		}
	}
	if last != "" {
		if opts.Max, err = ParseShade(last); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
