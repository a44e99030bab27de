// Package jsonval decodes arbitrary JSON documents into Go values while
// preserving object key order. The standard library decodes objects into
// maps, which loses the declaration order needed for stable field and
// header ordering downstream.
package jsonval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Member is a single key/value pair of an object.
type Member struct {
	Name  string
	Value interface{}
}

// Object is a JSON object with its members in document order.
type Object []Member

// Get returns the value of the first member with the given name.
func (o Object) Get(name string) (interface{}, bool) {
	for _, m := range o {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the member names in document order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Name
	}
	return keys
}

// MarshalJSON writes the object with its original key order.
func (o Object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')

	for i, m := range o {
		if i > 0 {
			b.WriteByte(',')
		}

		k, err := json.Marshal(m.Name)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')

		v, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}

	b.WriteByte('}')
	return b.Bytes(), nil
}

// String renders the object as compact JSON. Used when an object value
// needs a raw string form.
func (o Object) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", []Member(o))
	}
	return string(b)
}

// Decode reads a single JSON value from r. Objects are decoded as Object,
// arrays as []interface{}, and numbers as json.Number. Trailing non-space
// content after the value is an error.
func Decode(r io.Reader) (interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// The document must contain exactly one value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after JSON value")
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())

	default:
		// string, bool, json.Number or nil.
		return tok, nil
	}
}

func decodeObject(dec *json.Decoder) (Object, error) {
	obj := Object{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		obj = append(obj, Member{Name: key, Value: val})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]interface{}, error) {
	arr := []interface{}{}

	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}
