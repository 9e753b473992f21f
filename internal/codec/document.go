// SPDX-License-Identifier: MIT
package codec

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Pair is one key:value entry
type Pair struct {
	Key   string
	Value string
}

// Field is one top level entry of a serializable value: either a scalar
// string or a nested map of pairs
type Field struct {
	Key     string
	Value   string
	Entries []Pair
	nested  bool
}

// Scalar builds a string field
func Scalar(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Map builds a nested map field
func Map(key string, entries []Pair) Field {
	return Field{Key: key, Entries: entries, nested: true}
}

// IsMap reports whether the field is a nested map
func (f Field) IsMap() bool {
	return f.nested
}

// Fielder is implemented by values Serialize accepts. Fields must be
// returned in declaration order.
type Fielder interface {
	Fields() []Field
}

// Section is a decoded nested map
type Section struct {
	Key     string
	Entries []Pair
}

// Document is the decoded, theme-like form of a serialized string
type Document struct {
	Version Version
	Scalars []Pair
	Maps    []Section
}

// Scalar looks up a scalar value by key
func (d *Document) Scalar(key string) (string, bool) {
	for _, p := range d.Scalars {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Map looks up a nested map by key
func (d *Document) Map(key string) ([]Pair, bool) {
	for _, s := range d.Maps {
		if s.Key == key {
			return s.Entries, true
		}
	}
	return nil, false
}

// Fields lets a decoded document be serialized again
func (d *Document) Fields() []Field {
	if d == nil {
		return nil
	}
	fields := make([]Field, 0, len(d.Scalars)+len(d.Maps))
	for _, p := range d.Scalars {
		fields = append(fields, Scalar(p.Key, p.Value))
	}
	for _, s := range d.Maps {
		fields = append(fields, Map(s.Key, s.Entries))
	}
	return fields
}

// MarshalJSON writes the document as an object that keeps input order
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeKey := func(k string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		return nil
	}

	for _, p := range d.Scalars {
		if err := writeKey(p.Key); err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	for _, s := range d.Maps {
		if err := writeKey(s.Key); err != nil {
			return nil, err
		}
		inner, err := marshalPairs(s.Entries)
		if err != nil {
			return nil, err
		}
		buf.Write(inner)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalPairs(pairs []Pair) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the document as an ordered mapping
func (d *Document) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range d.Scalars {
		root.Content = append(root.Content, stringNode(p.Key), stringNode(p.Value))
	}
	for _, s := range d.Maps {
		inner := &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range s.Entries {
			inner.Content = append(inner.Content, stringNode(p.Key), stringNode(p.Value))
		}
		root.Content = append(root.Content, stringNode(s.Key), inner)
	}
	return root, nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
