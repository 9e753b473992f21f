// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"

	"github.com/thatcatcamp/autotheme/internal/color"
)

func TestGenerateCSS(t *testing.T) {
	theme := GetPreset("slate").Generate(DefaultOptions())
	css := GenerateCSS(GenerateColors(theme, false))

	if css == "" {
		t.Fatal("GenerateCSS returned empty string")
	}
}

func TestGeneratedCSSContainsVariables(t *testing.T) {
	theme := GetPreset("indigo").Generate(DefaultOptions())
	css := GenerateCSS(GenerateColors(theme, false))

	expectedVars := []string{
		"--color-primary",
		"--color-primary-contrast",
		"--color-accent",
		"--color-accent-hover",
		"--color-secondary",
		"--color-bg",
		"--color-surface",
		"--color-text",
		"--color-text-muted",
		"--color-border",
	}

	for _, variable := range expectedVars {
		if !strings.Contains(css, variable) {
			t.Errorf("CSS missing variable: %s", variable)
		}
	}
	if strings.Contains(css, "%!") {
		t.Errorf("CSS contains a formatting error:\n%s", css)
	}
}

func TestGeneratedCSSContainsHexValues(t *testing.T) {
	theme := GetPreset("rose").Generate(DefaultOptions())
	colors := GenerateColors(theme, false)
	css := GenerateCSS(colors)

	if !strings.Contains(css, colors.Primary) {
		t.Errorf("CSS does not contain primary color: %s", colors.Primary)
	}
	if !strings.Contains(css, colors.Background) {
		t.Errorf("CSS does not contain background color: %s", colors.Background)
	}
}

func TestPaletteCSSDeclaresEveryShade(t *testing.T) {
	theme := Generate("#a855f7", color.Hex, color.Hex, Shade50, Shade950)
	css := PaletteCSS(theme)

	if !strings.Contains(css, "--color-base: #a855f7;") {
		t.Errorf("CSS missing base color:\n%s", css)
	}
	for _, r := range Roles() {
		for _, s := range Shades() {
			name := "--color-" + r.String() + "-" + s.String() + ": "
			if !strings.Contains(css, name) {
				t.Errorf("CSS missing %s", name)
			}
		}
	}
}

func TestThemeCSSIsValid(t *testing.T) {
	theme := GetPreset("emerald").Generate(DefaultOptions())
	css := ThemeCSS(theme, true) // dark mode

	if !strings.Contains(css, ":root {") {
		t.Fatal("CSS missing :root selector")
	}
	if strings.Count(css, "{") != strings.Count(css, "}") {
		t.Fatal("CSS braces are unbalanced")
	}
}

func TestCSSGenerationLightVsDark(t *testing.T) {
	theme := GetPreset("navy").Generate(DefaultOptions())
	cssLight := ThemeCSS(theme, false)
	cssDark := ThemeCSS(theme, true)

	if cssLight == cssDark {
		t.Fatal("Light and dark CSS should be different")
	}
}
