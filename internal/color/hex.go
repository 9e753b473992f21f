// SPDX-License-Identifier: MIT
package color

import (
	"regexp"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#?([A-Fa-f0-9]{3}|[A-Fa-f0-9]{6}|[A-Fa-f0-9]{8})$`)

// ValidHex reports whether s is a 3, 6 or 8 digit hex color, with or without
// the leading #
func ValidHex(s string) bool {
	return hexPattern.MatchString(strings.TrimSpace(s))
}

// ExpandHex normalizes a valid hex color to lower case with a leading # and
// expands the 3 digit shorthand. Invalid input is returned unchanged.
func ExpandHex(s string) string {
	s = strings.TrimSpace(s)
	if !ValidHex(s) {
		return s
	}
	digits := strings.ToLower(strings.TrimPrefix(s, "#"))
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return "#" + digits
}
