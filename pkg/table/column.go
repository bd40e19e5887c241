package table

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Column is a named sequence of cells of a single [Kind].
//
// The slices returned by [Column.Strings] and [Column.Floats] share storage
// with the table and must not be modified.
type Column struct {
	name   string
	kind   Kind
	text   []string
	floats []float64
	vec    *mat.VecDense
}

// NewTextColumn returns a text column holding values.
func NewTextColumn(name string, values []string) Column {
	return Column{name: name, kind: Text, text: values}
}

// NewFloatColumn returns a float column holding values.
func NewFloatColumn(name string, values []float64) Column {
	return Column{name: name, kind: Float, floats: values}
}

// Name returns the column label.
func (c Column) Name() string { return c.name }

// Kind returns Text or Float.
func (c Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c Column) Len() int {
	if c.kind == Float {
		return len(c.floats)
	}
	return len(c.text)
}

// At returns the i-th cell. It panics if i is out of range, like a slice
// index; use [Table.GetRow] for checked access.
func (c Column) At(i int) Value {
	if c.kind == Float {
		return FloatValue(c.floats[i])
	}
	return TextValue(c.text[i])
}

// Strings returns the cells as text. Float cells are formatted with
// [Value.String].
func (c Column) Strings() []string {
	if c.kind == Text {
		return c.text
	}
	out := make([]string, len(c.floats))
	for i, f := range c.floats {
		out[i] = FloatValue(f).String()
	}
	return out
}

// Floats returns the cells of a float column, or nil for a text column.
func (c Column) Floats() []float64 {
	if c.kind != Float {
		return nil
	}
	return c.floats
}

// Values returns every cell as a [Value].
func (c Column) Values() []Value {
	out := make([]Value, c.Len())
	for i := range out {
		out[i] = c.At(i)
	}
	return out
}

// NaNCount returns the number of NaN cells; zero for text columns.
func (c Column) NaNCount() int {
	n := 0
	for _, f := range c.Floats() {
		if math.IsNaN(f) {
			n++
		}
	}
	return n
}

// numeric returns a copy of c in fixed-size array form. Float columns are
// backed by a VecDense; text columns stay opaque string arrays.
func (c Column) numeric() Column {
	if c.kind == Text {
		return NewTextColumn(c.name, slices.Clip(slices.Clone(c.text)))
	}
	return newVecColumn(c.name, slices.Clone(c.floats))
}

func newVecColumn(name string, data []float64) Column {
	c := NewFloatColumn(name, slices.Clip(data))
	if len(data) == 0 {
		c.vec = &mat.VecDense{}
		return c
	}
	c.vec = mat.NewVecDense(len(data), c.floats)
	return c
}
