// SPDX-License-Identifier: MIT
package themes

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/thatcatcamp/autotheme/internal/color"
)

// Colors represents the semantic colors page styling draws from a theme
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text drawn on Primary
	Secondary       string
	Accent          string // Complementary highlight
	AccentHover     string
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string // Success state color
	Error           string // Error state color
	Warning         string // Warning state color
}

// pick names the shade each semantic slot is drawn from
type pick struct {
	role     Role
	shade    Shade
	fallback string
}

// scheme maps every semantic slot to a stop for one mode
type scheme struct {
	primary, secondary, accent, accentHover  pick
	background, surface, text, muted, border pick
}

var lightScheme = scheme{
	primary:     pick{Primary, Shade500, "#64748b"},
	secondary:   pick{Secondary, Shade500, "#0f172a"},
	accent:      pick{Accent, Shade500, "#64748b"},
	accentHover: pick{Accent, Shade600, "#475569"},
	background:  pick{Neutral, Shade50, "#ffffff"},
	surface:     pick{Neutral, Shade100, "#f9fafb"},
	text:        pick{Neutral, Shade900, "#000000"},
	muted:       pick{Neutral, Shade600, "#6b7280"},
	border:      pick{Neutral, Shade200, "#e5e7eb"},
}

var darkScheme = scheme{
	primary:     pick{Primary, Shade400, "#f1f5f9"},
	secondary:   pick{Secondary, Shade400, "#e2e8f0"},
	accent:      pick{Accent, Shade400, "#94a3b8"},
	accentHover: pick{Accent, Shade300, "#cbd5e1"},
	background:  pick{Neutral, Shade950, "#0f172a"},
	surface:     pick{Neutral, Shade900, "#1e293b"},
	text:        pick{Neutral, Shade50, "#f1f5f9"},
	muted:       pick{Neutral, Shade400, "#94a3b8"},
	border:      pick{Neutral, Shade700, "#334155"},
}

// Status colors are fixed hues, only converted to the theme's format
const (
	successHex = "#22c55e"
	errorHex   = "#ef4444"
	warningHex = "#f59e0b"
)

// GenerateColors generates the semantic color set from a theme for light or dark mode
func GenerateColors(theme *Theme, darkMode bool) *Colors {
	if darkMode {
		return generateDarkColors(theme)
	}
	return generateLightColors(theme)
}

// generateLightColors creates colors for light mode
func generateLightColors(theme *Theme) *Colors {
	return buildColors(theme, lightScheme)
}

// generateDarkColors creates colors for dark mode
func generateDarkColors(theme *Theme) *Colors {
	return buildColors(theme, darkScheme)
}

func buildColors(theme *Theme, s scheme) *Colors {
	c := &Colors{
		Primary:     resolve(theme, s.primary),
		Secondary:   resolve(theme, s.secondary),
		Accent:      resolve(theme, s.accent),
		AccentHover: resolve(theme, s.accentHover),
		Background:  resolve(theme, s.background),
		Surface:     resolve(theme, s.surface),
		Text:        resolve(theme, s.text),
		TextMuted:   resolve(theme, s.muted),
		Border:      resolve(theme, s.border),
		Success:     color.Convert(successHex, color.Hex, theme.ColorType()),
		Error:       color.Convert(errorHex, color.Hex, theme.ColorType()),
		Warning:     color.Convert(warningHex, color.Hex, theme.ColorType()),
	}
	c.PrimaryContrast = color.Render(ContrastText(color.Parse(c.Primary, theme.ColorType())), theme.ColorType())
	return c
}

// resolve takes the nearest generated stop, falling back to a fixed color
// when the role has no shades at all.
func resolve(theme *Theme, p pick) string {
	if c, ok := theme.Palette(p.role).Nearest(p.shade); ok {
		return c
	}
	return color.Convert(p.fallback, color.Hex, theme.ColorType())
}

var (
	white = color.OKLCH{L: 100, C: 0, H: 0, Alpha: 1}
	black = color.OKLCH{L: 0, C: 0, H: 0, Alpha: 1}
)

// Luminance is the WCAG relative luminance of c
func Luminance(c color.OKLCH) float64 {
	rgb := color.ToSRGB(c)
	r, g, b := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio is the WCAG contrast ratio between two colors, from 1 to 21
func ContrastRatio(a, b color.OKLCH) float64 {
	la, lb := Luminance(a), Luminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// ContrastText returns white or black, whichever reads better on bg
func ContrastText(bg color.OKLCH) color.OKLCH {
	if ContrastRatio(white, bg) >= ContrastRatio(black, bg) {
		return white
	}
	return black
}
