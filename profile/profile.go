// Package profile infers a structural and statistical summary from
// tabular, textual, or nested JSON input. It classifies table columns as
// numeric or categorical, computes summary statistics, and surveys the
// shape of non-tabular JSON documents.
package profile

import (
	"encoding/json"
	"strings"
)

// Kind identifies the declared shape of an input source.
type Kind string

const (
	KindText       Kind = "text"
	KindTable      Kind = "delimited_table"
	KindStructured Kind = "structured"
)

// Profile is the summary produced for one source. The concrete type is
// one of *TextProfile, *TableProfile or *StructureProfile.
type Profile interface {
	// ProfileKind returns the variant tag of the profile.
	ProfileKind() string
}

// WordCount is a ranked word with its frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ValueCount is a ranked categorical value with its frequency.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TextProfile summarizes unstructured text.
type TextProfile struct {
	LineCount         int         `json:"line_count"`
	CharCount         int         `json:"char_count"`
	WordCount         int         `json:"word_count"`
	UniqueWordCount   int         `json:"unique_word_count"`
	AvgWordLength     float64     `json:"avg_word_length"`
	LongestLineLength int         `json:"longest_line_length"`
	TopWords          []WordCount `json:"top_words"`
}

func (*TextProfile) ProfileKind() string { return "text" }

// ColumnKind is the classification of a table column.
type ColumnKind string

const (
	ColumnNumeric     ColumnKind = "numeric"
	ColumnCategorical ColumnKind = "categorical"
)

// NumericSummary holds the statistics of a numeric column, computed over
// the coerced numeric subset of its present values.
type NumericSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// CategoricalSummary holds the value ranking of a categorical column.
type CategoricalSummary struct {
	ObservedCount int          `json:"observed_count"`
	TopValues     []ValueCount `json:"top_values"`
}

// ColumnProfile is the classification result for one field.
type ColumnProfile struct {
	Name         string     `json:"name"`
	Kind         ColumnKind `json:"kind"`
	MissingCount int        `json:"missing_count"`

	// Exactly one of the two payloads is set, matching Kind.
	Numeric     *NumericSummary     `json:"numeric,omitempty"`
	Categorical *CategoricalSummary `json:"categorical,omitempty"`
}

// TableProfile summarizes a row-oriented dataset.
type TableProfile struct {
	RowCount    int              `json:"row_count"`
	ColumnCount int              `json:"column_count"`
	HeaderOrder []string         `json:"header_order"`
	Columns     []*ColumnProfile `json:"columns"`
}

func (*TableProfile) ProfileKind() string { return "table" }

// Shape of a structure profile.
const (
	ShapeObject = "object"
	ShapeList   = "list"
	ShapeScalar = "scalar"
)

// KeySummary describes one key of a surveyed object.
type KeySummary struct {
	Name string    `json:"name"`
	Type ValueType `json:"type"`

	// Array-valued keys carry their length and, when the leading element
	// is a primitive, a bounded sample.
	Length *int          `json:"length,omitempty"`
	Sample []interface{} `json:"sample,omitempty"`

	// Object-valued keys carry a bounded sample of their key names.
	Keys []string `json:"keys,omitempty"`
}

// StructureProfile summarizes a JSON value that is not tabular: a single
// object, a list of primitives, or a bare scalar.
type StructureProfile struct {
	Shape string `json:"shape"`

	// Object shape.
	Keys []KeySummary `json:"keys,omitempty"`

	// List shape.
	Length       int           `json:"length,omitempty"`
	ElementTypes []string      `json:"element_types,omitempty"`
	Sample       []interface{} `json:"sample,omitempty"`

	// Scalar shape.
	ValueType ValueType `json:"value_type,omitempty"`
}

func (*StructureProfile) ProfileKind() string { return "structure" }

// Field is a named raw value within a record.
type Field struct {
	Name  string
	Value interface{}
}

// Record is an ordered sequence of fields observed in one row or object.
// Field order determines header order on first appearance.
type Record []Field

// Get returns the value of the first field with the given name.
func (r Record) Get(name string) (interface{}, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

const (
	UnknownType ValueType = iota
	NullType
	BoolType
	IntType
	FloatType
	StringType
	ArrayType
	ObjectType
)

// ValueType is the runtime type tag of a decoded value.
type ValueType uint8

func (v ValueType) String() string {
	switch v {
	case NullType:
		return "null"
	case BoolType:
		return "boolean"
	case IntType:
		return "integer"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	}

	return ""
}

func (v ValueType) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *ValueType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	var t ValueType

	switch strings.ToLower(s) {
	case "null":
		t = NullType
	case "boolean":
		t = BoolType
	case "integer":
		t = IntType
	case "float":
		t = FloatType
	case "string":
		t = StringType
	case "array":
		t = ArrayType
	case "object":
		t = ObjectType
	}

	*v = t

	return nil
}
