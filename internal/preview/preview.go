// SPDX-License-Identifier: MIT

// Package preview draws a generated theme as terminal swatches.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/themes"
)

const cellWidth = 9

// Styles holds the fixed styles around the swatch grid
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
}

// BuildStyles derives the frame styles from the theme's own semantic colors
func BuildStyles(theme *themes.Theme) Styles {
	colors := themes.GenerateColors(theme, false)
	return Styles{
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color(hex(colors.Primary, theme))).Bold(true),
		Label: lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color(hex(colors.Text, theme))),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(hex(colors.TextMuted, theme))),
	}
}

// hex re-renders a theme color as #rrggbb since terminals only take sRGB
func hex(c string, theme *themes.Theme) string {
	return color.Convert(c, theme.ColorType(), color.Hex)[:7]
}

// Swatch renders one shade cell with readable text on top
func Swatch(theme *themes.Theme, role themes.Role, shade themes.Shade) string {
	canonical, ok := theme.Canonical(role, shade)
	if !ok {
		return lipgloss.NewStyle().Width(cellWidth).Render("")
	}
	bg := color.Render(canonical, color.Hex)[:7]
	fg := color.Render(themes.ContrastText(canonical), color.Hex)
	return lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Render(shade.String())
}

// Render draws a header, then one row of swatches per role. Stops missing
// from every palette are left out.
func Render(theme *themes.Theme) string {
	styles := BuildStyles(theme)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Base " + theme.BaseColor()))
	b.WriteString(styles.Muted.Render("  (" + theme.ColorType().String() + ")"))
	b.WriteString("\n\n")

	shades := theme.Palette(themes.Primary).Shades()
	if len(shades) == 0 {
		b.WriteString(styles.Muted.Render("no shades in range"))
		b.WriteString("\n")
		return b.String()
	}

	for _, role := range themes.Roles() {
		cells := []string{styles.Label.Render(role.String())}
		for _, s := range shades {
			cells = append(cells, Swatch(theme, role, s))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}
