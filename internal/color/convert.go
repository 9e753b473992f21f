// SPDX-License-Identifier: MIT
package color

import "math"

// SRGB is a gamma encoded sRGB color with channels in 0-1
type SRGB struct {
	R, G, B, Alpha float64
}

// toLinear removes the sRGB transfer curve
func toLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// toGamma applies the sRGB transfer curve
func toGamma(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func clamp01(c float64) float64 {
	return math.Max(0, math.Min(1, c))
}

// FromSRGB converts gamma encoded sRGB to OKLCH
func FromSRGB(c SRGB) OKLCH {
	r := toLinear(c.R)
	g := toLinear(c.G)
	b := toLinear(c.B)

	// M1: linear sRGB to cone response
	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	// M2: cone response to Lab
	L := 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	A := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	B := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s

	return fromLab(L*100, A, B, c.Alpha)
}

// ToSRGB converts OKLCH to gamma encoded sRGB. Out of gamut channels are
// clamped to 0-1, no other gamut mapping is attempted.
func ToSRGB(c OKLCH) SRGB {
	L := c.L / 100
	A, B := c.Lab()

	l := L + 0.3963377774*A + 0.2158037573*B
	m := L - 0.1055613458*A - 0.0638541728*B
	s := L - 0.0894841775*A - 1.2914855480*B

	l = l * l * l
	m = m * m * m
	s = s * s * s

	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return SRGB{
		R:     clamp01(toGamma(r)),
		G:     clamp01(toGamma(g)),
		B:     clamp01(toGamma(b)),
		Alpha: c.Alpha,
	}
}

// hslToSRGB converts hue in degrees and saturation/lightness in 0-1
func hslToSRGB(h, s, l, alpha float64) SRGB {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return SRGB{R: r + m, G: g + m, B: b + m, Alpha: alpha}
}

// srgbToHSL returns hue in 0-1 turns, saturation and lightness in 0-1
func srgbToHSL(c SRGB) (h, s, l float64) {
	hi := math.Max(c.R, math.Max(c.G, c.B))
	lo := math.Min(c.R, math.Min(c.G, c.B))
	l = (hi + lo) / 2

	if hi == lo {
		return 0, 0, l
	}

	d := hi - lo
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	switch hi {
	case c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	return h / 6, s, l
}
