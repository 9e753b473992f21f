// SPDX-License-Identifier: MIT
package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/autotheme/internal/color"
)

func TestGenerateFullRange(t *testing.T) {
	theme := Generate("#a855f7", color.Hex, color.Hex, Shade50, Shade950)

	assert.Equal(t, color.Hex, theme.ColorType())
	assert.Equal(t, "#a855f7", theme.BaseColor())
	for _, r := range Roles() {
		p := theme.Palette(r)
		require.Equal(t, 11, p.Len(), "role %s", r)
		assert.Equal(t, Shades(), p.Shades(), "role %s", r)
		for _, e := range p.Entries() {
			assert.True(t, color.ValidHex(e.Color), "role %s shade %s: %q", r, e.Shade, e.Color)
		}
	}
}

func TestGenerateSingleShade(t *testing.T) {
	theme := Generate("#a855f7", color.Hex, color.Hex, Shade500, Shade500)
	for _, r := range Roles() {
		p := theme.Palette(r)
		require.Equal(t, 1, p.Len(), "role %s", r)
		_, ok := p.Get(Shade500)
		assert.True(t, ok)
	}
}

func TestGenerateReversedRange(t *testing.T) {
	theme := Generate("#a855f7", color.Hex, color.Hex, Shade900, Shade50)

	assert.Equal(t, "#a855f7", theme.BaseColor())
	for _, r := range Roles() {
		assert.Equal(t, 0, theme.Palette(r).Len(), "role %s", r)
	}
}

func TestGenerateDefaults(t *testing.T) {
	theme := GenerateWithOptions("#a855f7", DefaultOptions())

	p := theme.Palette(Primary)
	require.Equal(t, 10, p.Len())
	_, ok := p.Get(Shade950)
	assert.False(t, ok, "default range stops at 900")
}

func TestGenerateRendersBaseInOutputFormat(t *testing.T) {
	theme := Generate("#A855F7", color.Hex, color.RGB, Shade50, Shade950)
	assert.Equal(t, "rgba(168, 85, 247, 1)", theme.BaseColor())
	assert.Equal(t, color.RGB, theme.ColorType())

	c, _ := theme.Color(Accent, Shade500)
	assert.Regexp(t, `^rgba\(\d+, \d+, \d+, 1\)$`, c)
}

func TestGenerateMalformedBaseIsGray(t *testing.T) {
	theme := Generate("not a color", color.Hex, color.OKLCh, Shade500, Shade500)
	assert.Equal(t, color.Render(color.Fallback, color.OKLCh), theme.BaseColor())

	c, ok := theme.Canonical(Accent, Shade500)
	require.True(t, ok)
	assert.InDelta(t, 0, c.C, 1e-9)
}

func TestDeriveHueRelations(t *testing.T) {
	base := color.Parse("#a855f7", color.Hex)
	grid := Derive(base, Shade50, Shade950)

	want := map[Role]float64{
		Primary:   base.H,
		Secondary: color.NormalizeHue(base.H + 30),
		Tertiary:  color.NormalizeHue(base.H - 30),
		Accent:    color.NormalizeHue(base.H + 180),
		Neutral:   base.H,
	}
	for r, h := range want {
		for _, sc := range grid[r] {
			assert.InDelta(t, h, sc.Color.H, 1e-9, "role %s shade %s", r, sc.Shade)
		}
	}
}

func TestDeriveHueWraps(t *testing.T) {
	grid := Derive(color.OKLCH{L: 60, C: 0.1, H: 10, Alpha: 1}, Shade500, Shade500)
	assert.InDelta(t, 340, grid[Tertiary][0].Color.H, 1e-9)
	assert.InDelta(t, 190, grid[Accent][0].Color.H, 1e-9)

	grid = Derive(color.OKLCH{L: 60, C: 0.1, H: 350, Alpha: 1}, Shade500, Shade500)
	assert.InDelta(t, 20, grid[Secondary][0].Color.H, 1e-9)
}

func TestDeriveLightnessDecreases(t *testing.T) {
	grid := Derive(color.Parse("#14b8a6", color.Hex), Shade50, Shade950)
	for _, r := range Roles() {
		stops := grid[r]
		for i := 1; i < len(stops); i++ {
			assert.Less(t, stops[i].Color.L, stops[i-1].Color.L, "role %s at %s", r, stops[i].Shade)
		}
	}
}

func TestDeriveChroma(t *testing.T) {
	base := color.OKLCH{L: 60, C: 0.2, H: 120, Alpha: 0.5}
	grid := Derive(base, Shade50, Shade950)

	for _, sc := range grid[Primary] {
		assert.InDelta(t, adjustChroma(0.2, sc.Shade.Lightness()), sc.Color.C, 1e-12)
		assert.Equal(t, 0.5, sc.Color.Alpha)
	}
	for _, sc := range grid[Neutral] {
		assert.InDelta(t, adjustChroma(0.02, sc.Shade.Lightness()), sc.Color.C, 1e-12)
	}
}

func TestAdjustChroma(t *testing.T) {
	assert.InDelta(t, 1.0, adjustChroma(1, 55), 1e-12)
	assert.InDelta(t, 0.5, adjustChroma(1, 0), 1e-12)
	assert.InDelta(t, 0.5, adjustChroma(1, 110), 1e-12)
	assert.InDelta(t, 0.3, adjustChroma(1, 200), 1e-12)
	assert.Less(t, adjustChroma(1, 97), adjustChroma(1, 77))
}

func TestPurplePrimary500(t *testing.T) {
	base := color.Parse("#a855f7", color.Hex)
	theme := Generate("#a855f7", color.Hex, color.OKLCh, Shade50, Shade950)

	c, ok := theme.Canonical(Primary, Shade500)
	require.True(t, ok)
	assert.InDelta(t, 55, c.L, 0.5)
	assert.InDelta(t, base.H, c.H, 0.5)
}

func TestPurplePrimary500HexToHex(t *testing.T) {
	base := color.Parse("#a855f7", color.Hex)
	theme := Generate("#a855f7", color.Hex, color.Hex, Shade50, Shade950)

	hex, ok := theme.Color(Primary, Shade500)
	require.True(t, ok)
	require.True(t, color.ValidHex(hex), "got %q", hex)

	c, ok := color.TryParse(hex, color.Hex)
	require.True(t, ok)
	assert.InDelta(t, 55, c.L, 0.5)
	assert.InDelta(t, base.H, c.H, 0.5)
}

func TestShadeRange(t *testing.T) {
	assert.Equal(t, []Shade{Shade300, Shade400, Shade500}, ShadeRange(Shade300, Shade500))
	assert.Empty(t, ShadeRange(Shade500, Shade300))
	assert.Empty(t, ShadeRange(Shade(42), Shade500))
}

func TestParseShade(t *testing.T) {
	s, err := ParseShade(" 950 ")
	require.NoError(t, err)
	assert.Equal(t, Shade950, s)
	assert.True(t, s.LightText())
	assert.False(t, Shade400.LightText())

	_, err = ParseShade("550")
	assert.Error(t, err)
	_, err = ParseShade("abc")
	assert.Error(t, err)
}

func TestPaletteNearest(t *testing.T) {
	p := Generate("#a855f7", color.Hex, color.Hex, Shade300, Shade600).Palette(Primary)

	got, ok := p.Nearest(Shade50)
	require.True(t, ok)
	want, _ := p.Get(Shade300)
	assert.Equal(t, want, got)

	got, _ = p.Nearest(Shade950)
	want, _ = p.Get(Shade600)
	assert.Equal(t, want, got)

	_, ok = Palette{}.Nearest(Shade500)
	assert.False(t, ok)
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions("", "OKLCH", "100", "")
	require.NoError(t, err)
	assert.Equal(t, color.Hex, opts.Input)
	assert.Equal(t, color.OKLCh, opts.Output)
	assert.Equal(t, Shade100, opts.Min)
	assert.Equal(t, Shade900, opts.Max)

	_, err = ParseOptions("cmyk", "", "", "")
	assert.Error(t, err)
	_, err = ParseOptions("", "", "", "1000")
	assert.Error(t, err)
}
