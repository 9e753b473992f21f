// SPDX-License-Identifier: MIT
package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/themes"
)

func TestRenderListsRolesAndShades(t *testing.T) {
	theme := themes.Generate("#a855f7", color.Hex, color.OKLCh, themes.Shade100, themes.Shade300)
	out := Render(theme)

	assert.Contains(t, out, "Base oklch(")
	for _, r := range themes.Roles() {
		assert.Contains(t, out, r.String())
	}
	for _, s := range []string{"100", "200", "300"} {
		assert.Contains(t, out, s)
	}
	assert.Equal(t, len(themes.Roles())+2, strings.Count(out, "\n"))
}

func TestRenderEmptyRange(t *testing.T) {
	theme := themes.Generate("#a855f7", color.Hex, color.Hex, themes.Shade900, themes.Shade50)
	assert.Contains(t, Render(theme), "no shades in range")
}

func TestSwatchWidth(t *testing.T) {
	theme := themes.Generate("#14b8a6", color.Hex, color.Hex, themes.Shade500, themes.Shade500)

	cell := Swatch(theme, themes.Accent, themes.Shade500)
	assert.Equal(t, cellWidth, len(stripANSI(cell)))
	assert.Contains(t, cell, "500")

	missing := Swatch(theme, themes.Accent, themes.Shade50)
	assert.Equal(t, cellWidth, len(stripANSI(missing)))
}

func TestHexDropsAlpha(t *testing.T) {
	theme := themes.Generate("#a855f780", color.Hex, color.Hex, themes.Shade500, themes.Shade500)
	c, _ := theme.Color(themes.Primary, themes.Shade500)
	assert.Len(t, c, 9)
	assert.Len(t, hex(c, theme), 7)
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
