// SPDX-License-Identifier: MIT

// Package codec implements the compact delimited text form used to persist
// and transport themes.
//
// A serialized value has a scalar section of key:value pairs, each followed
// by the escape character, and a nested section of key:{k:v|k:v} maps. A
// doubled escape character separates the two sections and consecutive maps:
//
//	colorType:hex|baseColor:#a855f7||primary:{50:#faf5ff|100:#f3e8ff}||neutral:{...}
//
// The Legacy version writes exactly that and cannot represent values that
// contain the escape character, a colon or braces. V2, the default, prefixes
// the scalar section with version:2 and backslash-escapes those characters.
package codec

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrNotTheme is returned when Serialize is given a value that does not
	// describe its fields
	ErrNotTheme = errors.New("value is not a serializable theme")
	// ErrEmptyInput is returned when Deserialize is given an empty string
	ErrEmptyInput = errors.New("serialized theme is empty")
	// ErrInvalidEscape is returned for escape characters the grammar reserves
	ErrInvalidEscape = errors.New("invalid escape character")
	// ErrMalformed is returned by the V2 reader for structurally broken input
	ErrMalformed = errors.New("malformed serialized theme")
	// ErrUnrepresentable is returned when Legacy output could not be read back
	ErrUnrepresentable = errors.New("value cannot be written in the legacy grammar")
)

// DefaultEscape separates fields when no escape option is given
const DefaultEscape = '|'

// Version selects the wire grammar
type Version int

const (
	// Detect lets Deserialize pick the version from the input. Serialize
	// treats it as V2.
	Detect Version = iota
	Legacy
	V2
)

func (v Version) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case V2:
		return "2"
	default:
		return "detect"
	}
}

// ParseVersion accepts "legacy", "1", "2", "v2" or "" (detect)
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "detect", "auto":
		return Detect, nil
	case "legacy", "1", "v1":
		return Legacy, nil
	case "2", "v2":
		return V2, nil
	}
	return Detect, fmt.Errorf("unknown codec version %q", s)
}

const versionKey = "version"

type options struct {
	escape  rune
	version Version
}

// Option configures Serialize and Deserialize
type Option func(*options)

// WithEscape sets the field separator. The same rune must be used on both
// ends.
func WithEscape(r rune) Option {
	return func(o *options) {
		o.escape = r
	}
}

// WithVersion forces a grammar version
func WithVersion(v Version) Option {
	return func(o *options) {
		o.version = v
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{escape: DefaultEscape, version: Detect}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ValidateEscape(o.escape); err != nil {
		return o, err
	}
	return o, nil
}

// ValidateEscape rejects runes that collide with the rest of the grammar
func ValidateEscape(r rune) error {
	switch {
	case r == ':' || r == '{' || r == '}' || r == '\\':
		return fmt.Errorf("%w: %q is part of the grammar", ErrInvalidEscape, r)
	case r == utf8.RuneError || r == 0 || unicode.IsSpace(r):
		return fmt.Errorf("%w: %q", ErrInvalidEscape, r)
	}
	return nil
}

// EscapeFromString converts a configured escape string to a rune. Empty
// means DefaultEscape.
func EscapeFromString(s string) (rune, error) {
	if s == "" {
		return DefaultEscape, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("%w: %q must be a single character", ErrInvalidEscape, s)
	}
	return r, ValidateEscape(r)
}

// ParseOptions builds options from textual settings such as config values
// or query parameters. Empty strings keep the defaults.
func ParseOptions(escape, version string) ([]Option, error) {
	r, err := EscapeFromString(escape)
	if err != nil {
		return nil, err
	}
	v, err := ParseVersion(version)
	if err != nil {
		return nil, err
	}
	return []Option{WithEscape(r), WithVersion(v)}, nil
}
