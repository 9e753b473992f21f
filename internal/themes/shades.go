// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strconv"
	"strings"
)

// Shade is one of the eleven shade stops, named by its label. 50 is the
// lightest and 950 the darkest.
type Shade int

const (
	Shade50  Shade = 50
	Shade100 Shade = 100
	Shade200 Shade = 200
	Shade300 Shade = 300
	Shade400 Shade = 400
	Shade500 Shade = 500
	Shade600 Shade = 600
	Shade700 Shade = 700
	Shade800 Shade = 800
	Shade900 Shade = 900
	Shade950 Shade = 950
)

var shadeStops = []Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400, Shade500,
	Shade600, Shade700, Shade800, Shade900, Shade950,
}

// Target lightness per stop, Tailwind-like distribution
var shadeLightness = map[Shade]float64{
	Shade50:  97,
	Shade100: 94,
	Shade200: 86,
	Shade300: 77,
	Shade400: 66,
	Shade500: 55,
	Shade600: 45,
	Shade700: 35,
	Shade800: 25,
	Shade900: 15,
	Shade950: 8,
}

// Shades returns all stops from lightest to darkest
func Shades() []Shade {
	out := make([]Shade, len(shadeStops))
	copy(out, shadeStops)
	return out
}

// ParseShade accepts a stop label such as "500"
func ParseShade(s string) (Shade, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Shade(n).Valid() {
		return 0, fmt.Errorf("invalid shade %q (must be one of 50, 100, 200, ... 900, 950)", s)
	}
	return Shade(n), nil
}

// Valid reports whether s is one of the eleven stops
func (s Shade) Valid() bool {
	_, ok := shadeLightness[s]
	return ok
}

// Lightness returns the OKLCH lightness the stop is generated at
func (s Shade) Lightness() float64 {
	return shadeLightness[s]
}

// LightText reports whether text drawn on this shade should be light
func (s Shade) LightText() bool {
	return s >= Shade500
}

func (s Shade) String() string {
	return strconv.Itoa(int(s))
}

func (s Shade) index() int {
	for i, stop := range shadeStops {
		if stop == s {
			return i
		}
	}
	return -1
}

// ShadeRange returns the stops from first to last inclusive. A reversed range
// or a bound that is not a stop yields an empty slice.
func ShadeRange(first, last Shade) []Shade {
	lo, hi := first.index(), last.index()
	if lo < 0 || hi < 0 || lo > hi {
		return nil
	}
	return Shades()[lo : hi+1]
}
