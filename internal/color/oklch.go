// SPDX-License-Identifier: MIT

// Package color converts between textual CSS color encodings and the OKLCH
// representation all palette arithmetic is done in.
package color

import "math"

// OKLCH is the canonical color record.
// L is perceptual lightness in 0-100, C is chroma (>= 0), H is hue in degrees
// within [0,360) and Alpha is opacity in 0-1.
type OKLCH struct {
	L     float64 `json:"l" yaml:"l"`
	C     float64 `json:"c" yaml:"c"`
	H     float64 `json:"h" yaml:"h"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
}

// Fallback is returned for any input that does not match its format grammar.
// It is indistinguishable from a genuine mid gray.
var Fallback = OKLCH{L: 50, C: 0, H: 0, Alpha: 1}

// NormalizeHue wraps degrees into [0,360)
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -0 and values that round up to 360 after the add
	if h >= 360 || h == 0 {
		return 0
	}
	return h
}

// Lab returns the Cartesian a and b axes of the color
func (c OKLCH) Lab() (a, b float64) {
	rad := c.H * math.Pi / 180
	return c.C * math.Cos(rad), c.C * math.Sin(rad)
}

// WithHue returns a copy rotated to the given hue
func (c OKLCH) WithHue(h float64) OKLCH {
	c.H = NormalizeHue(h)
	return c
}

// fromLab converts Cartesian OKLab (L in 0-100) to polar form
func fromLab(l, a, b, alpha float64) OKLCH {
	return OKLCH{
		L:     l,
		C:     math.Hypot(a, b),
		H:     NormalizeHue(math.Atan2(b, a) * 180 / math.Pi),
		Alpha: alpha,
	}
}
