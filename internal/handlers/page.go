// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/themes"
)

// pageCSS lays out the preview page on top of a theme's semantic variables
const pageCSS = `
:root {
	--font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--spacing-sm: 8px;
	--spacing-base: 16px;
	--spacing-lg: 40px;
	--radius-base: 6px;
}

* { box-sizing: border-box; }

body {
	font-family: var(--font-family);
	margin: 0;
	padding: var(--spacing-lg);
	line-height: 1.5;
}

h1 { font-size: 28px; font-weight: 700; margin: 0 0 var(--spacing-sm); }
h2 { font-size: 20px; font-weight: 600; margin: var(--spacing-lg) 0 var(--spacing-base); }
small { color: var(--color-text-muted); }

.grid { display: grid; grid-template-columns: 110px repeat(var(--stops), 1fr); gap: 4px; }
.grid .role { font-weight: 600; align-self: center; }
.swatch {
	border-radius: var(--radius-base);
	padding: var(--spacing-sm);
	font-size: 12px;
	min-height: 56px;
	overflow-wrap: anywhere;
}

.card {
	background: var(--color-surface);
	border: 1px solid var(--color-border);
	border-radius: var(--radius-base);
	padding: var(--spacing-base);
	max-width: 560px;
}

.status { display: flex; gap: var(--spacing-base); margin-top: var(--spacing-base); }
.status span { font-weight: 600; }
.status .success { color: var(--color-success); }
.status .warning { color: var(--color-warning); }
.status .error { color: var(--color-error); }
`

// renderPreviewPage draws every swatch plus a few components styled by the
// theme's semantic colors
func renderPreviewPage(title string, theme *themes.Theme, dark bool) string {
	var grid strings.Builder
	shades := theme.Palette(themes.Primary).Shades()
	for _, r := range themes.Roles() {
		fmt.Fprintf(&grid, `<div class="role">%s</div>`, r)
		for _, s := range shades {
			c, _ := theme.Color(r, s)
			canonical, _ := theme.Canonical(r, s)
			text := color.Render(themes.ContrastText(canonical), color.Hex)
			fmt.Fprintf(&grid, `<div class="swatch" style="background: %s; color: %s"><strong>%s</strong><br>%s</div>`,
				html.EscapeString(c), text, s, html.EscapeString(c))
		}
	}

	mode := "light"
	if dark {
		mode = "dark"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>%s</title>
	<style>
%s
%s
.grid { --stops: %d; }
	</style>
</head>
<body>
	<h1>%s</h1>
	<small>Base %s, %s colors, %s scheme</small>

	<h2>Palettes</h2>
	<div class="grid">%s</div>

	<h2>Components</h2>
	<div class="card">
		<p>Body text on the surface color with a <a href="#">link</a> and <span class="accent">accent</span> text.</p>
		<p><small>Muted supporting text.</small></p>
		<button type="button">Primary action</button>
		<div class="status"><span class="success">Saved</span><span class="warning">Draft</span><span class="error">Failed</span></div>
	</div>
</body>
</html>
`,
		html.EscapeString(title),
		themes.ThemeCSS(theme, dark),
		pageCSS,
		len(shades),
		html.EscapeString(title),
		html.EscapeString(theme.BaseColor()),
		theme.ColorType(),
		mode,
		grid.String(),
	)
}

func servePage(c *gin.Context, page string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// PreviewPageHandler renders an HTML preview of a generated theme
func PreviewPageHandler(c *gin.Context) {
	req, err := parseThemeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme := themes.GenerateWithOptions(req.base, req.options)
	servePage(c, renderPreviewPage("Theme preview", theme, c.Query("dark") == "true"))
}

// SavedPreviewPageHandler renders an HTML preview of a saved theme
func SavedPreviewPageHandler(c *gin.Context) {
	saved, theme, ok := loadSaved(c)
	if !ok {
		return
	}

	dark := saved.DarkMode
	if v := c.Query("dark"); v != "" {
		dark = v == "true"
	}
	servePage(c, renderPreviewPage(saved.Name, theme, dark))
}
