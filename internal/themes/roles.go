// SPDX-License-Identifier: MIT
package themes

import "fmt"

// Role is one of the five semantic palette slots
type Role string

const (
	Primary   Role = "primary"
	Secondary Role = "secondary"
	Tertiary  Role = "tertiary"
	Accent    Role = "accent"
	Neutral   Role = "neutral"
)

type roleDef struct {
	hueOffset   float64
	chromaScale float64
}

// Hue rotations give analogous secondary/tertiary and a complementary
// accent. Neutral keeps the base hue with most of its chroma removed.
var roleDefs = map[Role]roleDef{
	Primary:   {hueOffset: 0, chromaScale: 1},
	Secondary: {hueOffset: 30, chromaScale: 1},
	Tertiary:  {hueOffset: -30, chromaScale: 1},
	Accent:    {hueOffset: 180, chromaScale: 1},
	Neutral:   {hueOffset: 0, chromaScale: 0.1},
}

var roleOrder = []Role{Primary, Secondary, Tertiary, Accent, Neutral}

// Roles returns the roles in declaration order
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// ParseRole validates a role name
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleDefs[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// HueOffset is the rotation in degrees applied to the base hue
func (r Role) HueOffset() float64 {
	return roleDefs[r].hueOffset
}

// ChromaScale multiplies the base chroma
func (r Role) ChromaScale() float64 {
	return roleDefs[r].chromaScale
}

func (r Role) String() string {
	return string(r)
}
