// SPDX-License-Identifier: MIT
package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Serialize encodes v, which must implement Fielder, into the delimited text
// form. Scalars of one character or less and empty maps are skipped.
func Serialize(v any, opts ...Option) (string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}

	f, ok := v.(Fielder)
	if !ok {
		return "", ErrNotTheme
	}
	fields := f.Fields()
	if fields == nil {
		return "", ErrNotTheme
	}

	w := writer{esc: string(o.escape), escaped: o.version != Legacy}
	if !w.escaped {
		if err := checkLegacy(fields, w.esc); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	if w.escaped {
		b.WriteString(versionKey + ":2" + w.esc)
	}

	for _, field := range fields {
		if field.IsMap() || utf8.RuneCountInString(field.Value) <= 1 {
			continue
		}
		b.WriteString(w.quote(field.Key) + ":" + w.quote(field.Value) + w.esc)
	}

	for _, field := range fields {
		if !field.IsMap() || len(field.Entries) == 0 {
			continue
		}
		b.WriteString(w.esc + w.quote(field.Key) + ":{")
		for i, p := range field.Entries {
			b.WriteString(w.quote(p.Key) + ":" + w.quote(p.Value))
			if i < len(field.Entries)-1 {
				b.WriteString(w.esc)
			}
		}
		b.WriteString("}" + w.esc)
	}

	out := strings.TrimSuffix(b.String(), w.esc)
	if !w.escaped {
		out = strings.TrimSpace(out)
	}
	return out, nil
}

// checkLegacy rejects fields the unescaped grammar would split or misread.
// Values may hold a colon since the reader splits on the first one.
func checkLegacy(fields []Field, esc string) error {
	check := func(key, value string) error {
		if strings.ContainsAny(key, esc+":{}") {
			return fmt.Errorf("%w: key %q", ErrUnrepresentable, key)
		}
		if strings.ContainsAny(value, esc+"{}") {
			return fmt.Errorf("%w: %s value %q contains %q or braces", ErrUnrepresentable, key, value, esc)
		}
		return nil
	}
	for _, field := range fields {
		if !field.IsMap() {
			if utf8.RuneCountInString(field.Value) <= 1 {
				continue
			}
			if err := check(field.Key, field.Value); err != nil {
				return err
			}
			continue
		}
		if len(field.Entries) == 0 {
			continue
		}
		if err := check(field.Key, ""); err != nil {
			return err
		}
		for _, p := range field.Entries {
			if err := check(p.Key, p.Value); err != nil {
				return fmt.Errorf("%s: %w", field.Key, err)
			}
		}
	}
	return nil
}

type writer struct {
	esc     string
	escaped bool
}

func (w writer) quote(s string) string {
	if !w.escaped {
		return s
	}
	if !strings.ContainsAny(s, w.esc+`:{}\`) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r == '\\' || r == ':' || r == '{' || r == '}' || string(r) == w.esc {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
