package table

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/exoplaneteu/exoplaneteu/pkg/errors"
)

const (
	// NameColumn is the column that every table carries first.
	NameColumn = "name"

	// NoNaNSuffix marks a [Table.Get] key as a request for the column
	// without NaN entries.
	NoNaNSuffix = "_nonan"
)

// Table is the column-oriented catalog.
type Table struct {
	order   []string
	cols    map[string]Column
	numeric bool
}

// New builds a table from cols. Column names must be unique, a "name"
// column must be present, and every column must have the same length as it.
// The "name" column is moved to the front; the others keep their order.
func New(cols ...Column) (*Table, error) {
	t := &Table{
		order: make([]string, 0, len(cols)),
		cols:  make(map[string]Column, len(cols)),
	}
	for _, c := range cols {
		if _, dup := t.cols[c.name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate column %q", c.name)
		}
		t.cols[c.name] = c
		t.order = append(t.order, c.name)
	}

	nameCol, ok := t.cols[NameColumn]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "table has no %q column", NameColumn)
	}
	rows := nameCol.Len()
	for _, name := range t.order {
		if n := t.cols[name].Len(); n != rows {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"column %q has %d entries, want %d", name, n, rows)
		}
	}

	t.moveToFront(NameColumn)
	return t, nil
}

func (t *Table) moveToFront(name string) {
	for i, n := range t.order {
		if n == name {
			copy(t.order[1:i+1], t.order[:i])
			t.order[0] = name
			return
		}
	}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// HasColumn reports whether the table has a column called name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// RowCount returns the length of the "name" column.
func (t *Table) RowCount() int {
	return t.cols[NameColumn].Len()
}

// Len is an alias for [Table.RowCount].
func (t *Table) Len() int { return t.RowCount() }

// NumericBacked reports whether [Table.ToNumeric] has converted this table.
func (t *Table) NumericBacked() bool { return t.numeric }

// String describes the table for logs and the REPL-style summary.
func (t *Table) String() string {
	return fmt.Sprintf("exoplanet.eu data: table with %d entries", t.RowCount())
}

// GetColumn returns the column called name.
func (t *Table) GetColumn(name string) (Column, error) {
	c, ok := t.cols[name]
	if !ok {
		return Column{}, errors.New(errors.ErrCodeUnknownColumn, "no column %q", name)
	}
	return c, nil
}

// GetColumnWithoutNaN returns the column called name with NaN entries
// removed, order preserved. Text columns cannot hold NaN and are returned
// unchanged, so this accessor works on any column.
func (t *Table) GetColumnWithoutNaN(name string) (Column, error) {
	c, err := t.GetColumn(name)
	if err != nil {
		return Column{}, err
	}
	if c.kind != Float {
		return c, nil
	}
	if t.numeric && c.vec != nil {
		return dropNaNVec(c), nil
	}
	return dropNaN(c), nil
}

// Get resolves a column key. A key ending in "_nonan" is served by
// [Table.GetColumnWithoutNaN] on the key without the suffix; any other key
// by [Table.GetColumn]. A column whose own name ends in "_nonan" wins over
// the suffix convention.
func (t *Table) Get(key string) (Column, error) {
	if t.HasColumn(key) {
		return t.GetColumn(key)
	}
	if base, ok := strings.CutSuffix(key, NoNaNSuffix); ok {
		return t.GetColumnWithoutNaN(base)
	}
	return t.GetColumn(key)
}

// GetRow returns the i-th catalog entry across all columns.
func (t *Table) GetRow(i int) (Row, error) {
	if i < 0 || i >= t.RowCount() {
		return Row{}, errors.New(errors.ErrCodeIndexOutOfRange,
			"row %d out of range [0, %d)", i, t.RowCount())
	}
	r := Row{
		names:  t.Columns(),
		values: make([]Value, len(t.order)),
	}
	for j, name := range t.order {
		r.values[j] = t.cols[name].At(i)
	}
	return r, nil
}

// ToNumeric converts every column to fixed-size array form: float columns
// are copied into a gonum VecDense, text columns into clipped string
// arrays. With inPlace the receiver is converted and returned; otherwise a
// converted copy is returned and the receiver is left untouched. Either
// way the result is numeric-backed.
func (t *Table) ToNumeric(inPlace bool) *Table {
	dst := t
	if !inPlace {
		dst = &Table{
			order: t.Columns(),
			cols:  make(map[string]Column, len(t.cols)),
		}
	}
	for _, name := range t.order {
		dst.cols[name] = t.cols[name].numeric()
	}
	dst.numeric = true
	return dst
}

// Vector returns a float column as a gonum vector. On a numeric-backed
// table the vector shares storage with the table; otherwise it is a copy.
func (t *Table) Vector(name string) (*mat.VecDense, error) {
	c, err := t.GetColumn(name)
	if err != nil {
		return nil, err
	}
	if c.kind != Float {
		return nil, errors.New(errors.ErrCodeInvalidValue, "column %q is not numeric", name)
	}
	if c.vec != nil {
		return c.vec, nil
	}
	return c.numeric().vec, nil
}

// dropNaN filters element by element over the plain slice.
func dropNaN(c Column) Column {
	out := make([]float64, 0, len(c.floats))
	for _, f := range c.floats {
		if !math.IsNaN(f) {
			out = append(out, f)
		}
	}
	return NewFloatColumn(c.name, out)
}

// dropNaNVec builds a keep-mask over the vector and compresses it into a
// new vector-backed column.
func dropNaNVec(c Column) Column {
	n := c.vec.Len()
	mask := make([]bool, n)
	kept := 0
	for i := 0; i < n; i++ {
		if !math.IsNaN(c.vec.AtVec(i)) {
			mask[i] = true
			kept++
		}
	}
	out := make([]float64, 0, kept)
	for i, keep := range mask {
		if keep {
			out = append(out, c.vec.AtVec(i))
		}
	}
	return newVecColumn(c.name, out)
}
