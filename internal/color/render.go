// SPDX-License-Identifier: MIT
package color

import (
	"fmt"
	"math"
	"strconv"
)

// Render writes c in the given format. An unrecognized format renders as hex.
func Render(c OKLCH, f Format) string {
	switch f {
	case OKLCh:
		return fmt.Sprintf("oklch(%.2f%% %.4f %.2fdeg / %s)", c.L, c.C, c.H, formatAlpha(c.Alpha))
	case OKLab:
		a, b := c.Lab()
		return fmt.Sprintf("oklab(%.2f%% %.4f %.4f / %s)", c.L, a, b, formatAlpha(c.Alpha))
	case RGB:
		rgb := ToSRGB(c)
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", to8bit(rgb.R), to8bit(rgb.G), to8bit(rgb.B), formatAlpha(rgb.Alpha))
	case HSL:
		rgb := ToSRGB(c)
		h, s, l := srgbToHSL(rgb)
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)",
			int(math.Round(h*360)), int(math.Round(s*100)), int(math.Round(l*100)), formatAlpha(rgb.Alpha))
	default:
		return renderHex(c)
	}
}

// Convert re-encodes text from one format into another
func Convert(text string, from, to Format) string {
	return Render(Parse(text, from), to)
}

func renderHex(c OKLCH) string {
	rgb := ToSRGB(c)
	if rgb.Alpha < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", to8bit(rgb.R), to8bit(rgb.G), to8bit(rgb.B), to8bit(clamp01(rgb.Alpha)))
	}
	return fmt.Sprintf("#%02x%02x%02x", to8bit(rgb.R), to8bit(rgb.G), to8bit(rgb.B))
}

func to8bit(c float64) int {
	return int(math.Round(c * 255))
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
