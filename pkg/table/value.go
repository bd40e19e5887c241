package table

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind tells text and float columns (and their values) apart.
type Kind uint8

const (
	// Text holds raw CSV cells.
	Text Kind = iota
	// Float holds parsed numbers, NaN for empty cells.
	Float
)

// String returns "text" or "float".
func (k Kind) String() string {
	if k == Float {
		return "float"
	}
	return "text"
}

// Value is a single cell.
type Value struct {
	Kind  Kind
	Text  string
	Float float64
}

// TextValue returns a text cell.
func TextValue(s string) Value { return Value{Kind: Text, Text: s} }

// FloatValue returns a float cell.
func FloatValue(f float64) Value { return Value{Kind: Float, Float: f} }

// IsNaN reports whether v is a float cell holding NaN.
func (v Value) IsNaN() bool {
	return v.Kind == Float && math.IsNaN(v.Float)
}

// String formats the cell: text as-is, floats in shortest form, NaN as "NaN".
func (v Value) String() string {
	if v.Kind == Text {
		return v.Text
	}
	return strconv.FormatFloat(v.Float, 'g', -1, 64)
}

// MarshalJSON encodes text as a string and floats as numbers. NaN and the
// infinities have no JSON form and encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == Text {
		return json.Marshal(v.Text)
	}
	if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float)
}

// MarshalYAML encodes text as a string and floats as numbers (.nan for NaN).
func (v Value) MarshalYAML() (any, error) {
	if v.Kind == Text {
		return v.Text, nil
	}
	return v.Float, nil
}
