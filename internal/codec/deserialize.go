// SPDX-License-Identifier: MIT
package codec

import (
	"fmt"
	"strings"
)

// Deserialize decodes text produced by Serialize. Unless a version is forced
// with WithVersion, text that starts with the version:2 pair is read with the
// escaping grammar and anything else with the legacy one.
func Deserialize(text string, opts ...Option) (*Document, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	esc := string(o.escape)
	version := o.version
	if version == Detect {
		version = Legacy
		marker := versionKey + ":2"
		if text == marker || strings.HasPrefix(text, marker+esc) {
			version = V2
		}
	}

	if version == Legacy {
		return readLegacy(text, esc), nil
	}
	return readV2(text, o.escape)
}

// readLegacy splits on the first doubled escape. Text without one is all
// scalars, pairs split on the first colon only and empty pieces are dropped.
func readLegacy(text, esc string) *Document {
	doc := &Document{Version: Legacy}
	sentinel := esc + esc

	scalars, maps := text, ""
	if i := strings.Index(text, sentinel); i >= 0 {
		scalars, maps = text[:i], text[i+len(sentinel):]
	}

	doc.Scalars = splitPairs(scalars, esc)

	if maps == "" {
		return doc
	}
	for _, chunk := range strings.Split(maps, sentinel) {
		if chunk == "" {
			continue
		}
		key, body, _ := strings.Cut(chunk, ":")
		body = strings.TrimSuffix(strings.TrimPrefix(body, "{"), "}")
		doc.Maps = append(doc.Maps, Section{Key: key, Entries: splitPairs(body, esc)})
	}
	return doc
}

func splitPairs(s, esc string) []Pair {
	var pairs []Pair
	for _, piece := range strings.Split(s, esc) {
		if piece == "" {
			continue
		}
		k, v, _ := strings.Cut(piece, ":")
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return pairs
}

// reader walks V2 text honouring backslash escapes
type reader struct {
	src []rune
	pos int
	esc rune
}

const eof = rune(-1)

func (r *reader) peek() rune {
	if r.pos >= len(r.src) {
		return eof
	}
	return r.src[r.pos]
}

// token reads up to the first unescaped stop rune, which is not consumed
func (r *reader) token(stops ...rune) (string, rune, error) {
	var b strings.Builder
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		if c == '\\' {
			if r.pos+1 >= len(r.src) {
				return "", eof, fmt.Errorf("%w: dangling escape at offset %d", ErrMalformed, r.pos)
			}
			b.WriteRune(r.src[r.pos+1])
			r.pos += 2
			continue
		}
		for _, s := range stops {
			if c == s {
				return b.String(), c, nil
			}
		}
		b.WriteRune(c)
		r.pos++
	}
	return b.String(), eof, nil
}

func (r *reader) pair(stops ...rune) (Pair, rune, error) {
	key, stop, err := r.token(append([]rune{':'}, stops...)...)
	if err != nil {
		return Pair{}, eof, err
	}
	if stop != ':' {
		return Pair{Key: key}, stop, nil
	}
	r.pos++
	value, stop, err := r.token(stops...)
	if err != nil {
		return Pair{}, eof, err
	}
	return Pair{Key: key, Value: value}, stop, nil
}

func readV2(text string, esc rune) (*Document, error) {
	doc := &Document{Version: V2}
	r := &reader{src: []rune(text), esc: esc}

	for r.peek() != eof {
		if r.peek() == esc {
			r.pos++
			section, err := r.section()
			if err != nil {
				return nil, err
			}
			doc.Maps = append(doc.Maps, section)
			if r.peek() == esc {
				r.pos++
			}
			continue
		}

		p, stop, err := r.pair(esc)
		if err != nil {
			return nil, err
		}
		if stop == esc {
			r.pos++
		}
		if p.Key == versionKey && len(doc.Scalars) == 0 && len(doc.Maps) == 0 {
			continue
		}
		doc.Scalars = append(doc.Scalars, p)
	}
	return doc, nil
}

func (r *reader) section() (Section, error) {
	start := r.pos
	key, stop, err := r.token(':', r.esc)
	if err != nil {
		return Section{}, err
	}
	if stop != ':' {
		return Section{}, fmt.Errorf("%w: map at offset %d has no key separator", ErrMalformed, start)
	}
	r.pos++
	if r.peek() != '{' {
		return Section{}, fmt.Errorf("%w: map %q does not open with {", ErrMalformed, key)
	}
	r.pos++

	s := Section{Key: key}
	if r.peek() == '}' {
		r.pos++
		return s, nil
	}
	for {
		p, stop, err := r.pair(r.esc, '}')
		if err != nil {
			return Section{}, err
		}
		if p.Key != "" || p.Value != "" {
			s.Entries = append(s.Entries, p)
		}
		switch stop {
		case '}':
			r.pos++
			return s, nil
		case eof:
			return Section{}, fmt.Errorf("%w: map %q is not closed", ErrMalformed, key)
		default:
			r.pos++
		}
	}
}
