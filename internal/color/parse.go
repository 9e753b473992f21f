// SPDX-License-Identifier: MIT
package color

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbPattern   = regexp.MustCompile(`^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*([\d.]+)\s*\)$`)
	hslPattern   = regexp.MustCompile(`^hsla\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*,\s*([\d.]+)\s*\)$`)
	oklabPattern = regexp.MustCompile(`^oklab\(\s*([\d.]+)%\s+([-\d.]+)\s+([-\d.]+)\s*/\s*([\d.]+)\s*\)$`)
	// deg is optional so values written without the unit still parse
	oklchPattern = regexp.MustCompile(`^oklch\(\s*([\d.]+)%\s+([\d.]+)\s+([\d.]+)(?:deg)?\s*/\s*([\d.]+)\s*\)$`)
)

// Parse converts text in the given format to OKLCH. Malformed input never
// errors: it yields Fallback. An unrecognized format is treated as hex.
func Parse(text string, f Format) OKLCH {
	c, _ := TryParse(text, f)
	return c
}

// TryParse behaves like Parse but also reports whether the text matched the
// format grammar. When ok is false the returned color is Fallback.
func TryParse(text string, f Format) (c OKLCH, ok bool) {
	text = strings.TrimSpace(text)
	switch f {
	case RGB:
		c, ok = parseRGB(text)
	case HSL:
		c, ok = parseHSL(text)
	case OKLab:
		c, ok = parseOKLab(text)
	case OKLCh:
		c, ok = parseOKLCh(text)
	default:
		c, ok = parseHex(text)
	}
	if !ok {
		return Fallback, false
	}
	return c, true
}

func parseHex(text string) (OKLCH, bool) {
	digits := strings.TrimPrefix(text, "#")

	var channels []string
	switch len(digits) {
	case 3:
		channels = []string{
			strings.Repeat(digits[0:1], 2),
			strings.Repeat(digits[1:2], 2),
			strings.Repeat(digits[2:3], 2),
		}
	case 6:
		channels = []string{digits[0:2], digits[2:4], digits[4:6]}
	case 8:
		channels = []string{digits[0:2], digits[2:4], digits[4:6], digits[6:8]}
	default:
		return Fallback, false
	}

	values := []float64{0, 0, 0, 1}
	for i, ch := range channels {
		n, err := strconv.ParseUint(ch, 16, 8)
		if err != nil {
			return Fallback, false
		}
		values[i] = float64(n) / 255
	}

	return FromSRGB(SRGB{R: values[0], G: values[1], B: values[2], Alpha: values[3]}), true
}

func parseRGB(text string) (OKLCH, bool) {
	m := rgbPattern.FindStringSubmatch(text)
	if m == nil {
		return Fallback, false
	}

	var ch [3]float64
	for i := range ch {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > 255 {
			return Fallback, false
		}
		ch[i] = float64(n) / 255
	}
	alpha, ok := parseAlpha(m[4])
	if !ok {
		return Fallback, false
	}

	return FromSRGB(SRGB{R: ch[0], G: ch[1], B: ch[2], Alpha: alpha}), true
}

func parseHSL(text string) (OKLCH, bool) {
	m := hslPattern.FindStringSubmatch(text)
	if m == nil {
		return Fallback, false
	}

	h, err := strconv.Atoi(m[1])
	if err != nil || h > 360 {
		return Fallback, false
	}
	s, err := strconv.Atoi(m[2])
	if err != nil || s > 100 {
		return Fallback, false
	}
	l, err := strconv.Atoi(m[3])
	if err != nil || l > 100 {
		return Fallback, false
	}
	alpha, ok := parseAlpha(m[4])
	if !ok {
		return Fallback, false
	}

	return FromSRGB(hslToSRGB(float64(h), float64(s)/100, float64(l)/100, alpha)), true
}

func parseOKLab(text string) (OKLCH, bool) {
	m := oklabPattern.FindStringSubmatch(text)
	if m == nil {
		return Fallback, false
	}

	nums, ok := parseFloats(m[1:4])
	if !ok {
		return Fallback, false
	}
	alpha, ok := parseAlpha(m[4])
	if !ok {
		return Fallback, false
	}

	return fromLab(nums[0], nums[1], nums[2], alpha), true
}

func parseOKLCh(text string) (OKLCH, bool) {
	m := oklchPattern.FindStringSubmatch(text)
	if m == nil {
		return Fallback, false
	}

	nums, ok := parseFloats(m[1:4])
	if !ok {
		return Fallback, false
	}
	alpha, ok := parseAlpha(m[4])
	if !ok {
		return Fallback, false
	}

	return OKLCH{L: nums[0], C: nums[1], H: NormalizeHue(nums[2]), Alpha: alpha}, true
}

func parseFloats(fields []string) ([]float64, bool) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func parseAlpha(field string) (float64, bool) {
	a, err := strconv.ParseFloat(field, 64)
	if err != nil || a > 1 {
		return 0, false
	}
	return a, true
}
