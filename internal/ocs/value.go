// Package ocs parses the OCS launcher configuration text format: a
// line-oriented grammar of [bracketed\section\paths] and key=tt:value lines,
// read into a nested, typed section tree. The tree is built once per parse
// and never mutated afterwards.
package ocs

// Value is one entry in a section tree: an integer, a text string, a byte
// sequence, or a nested section. The closed set keeps interpreters exhaustive.
type Value interface {
	isValue()
}

// Int is a dw: value.
type Int int

// String is a ws: value, decoded from UTF-16 code units.
type String string

// Bytes is a bn: value.
type Bytes []byte

func (Int) isValue()      {}
func (String) isValue()   {}
func (Bytes) isValue()    {}
func (*Section) isValue() {}

// Section is a mapping from key to Value. Keys are case-sensitive.
type Section struct {
	values map[string]Value
}

// NewSection creates an empty section.
func NewSection() *Section {
	return &Section{values: make(map[string]Value)}
}

// Set stores a value under key, replacing any previous entry.
func (s *Section) Set(key string, v Value) {
	s.values[key] = v
}

// Len returns the number of entries in the section.
func (s *Section) Len() int {
	return len(s.values)
}

// Int returns the integer stored under key, if present and of that type.
func (s *Section) Int(key string) (int, bool) {
	v, ok := s.values[key].(Int)
	return int(v), ok
}

// String returns the string stored under key, if present and of that type.
func (s *Section) String(key string) (string, bool) {
	v, ok := s.values[key].(String)
	return string(v), ok
}

// Bytes returns the byte sequence stored under key, if present and of that type.
func (s *Section) Bytes(key string) ([]byte, bool) {
	v, ok := s.values[key].(Bytes)
	return []byte(v), ok
}

// Child returns the nested section stored under key, if present and of that type.
func (s *Section) Child(key string) (*Section, bool) {
	v, ok := s.values[key].(*Section)
	return v, ok
}
