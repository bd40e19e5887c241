package table

import (
	"encoding/json"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/exoplaneteu/exoplaneteu/pkg/errors"
)

// Summary holds descriptive statistics of a float column. Mean, Std, Min
// and Max are computed over the non-NaN entries and are NaN when there are
// none. Std is the sample standard deviation.
type Summary struct {
	Name  string  `json:"name" yaml:"name"`
	Count int     `json:"count" yaml:"count"`
	NaN   int     `json:"nan" yaml:"nan"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Std   float64 `json:"std" yaml:"std"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
}

// Describe summarizes the float column called name.
func (t *Table) Describe(name string) (Summary, error) {
	c, err := t.GetColumn(name)
	if err != nil {
		return Summary{}, err
	}
	if c.kind != Float {
		return Summary{}, errors.New(errors.ErrCodeInvalidValue, "column %q is not numeric", name)
	}
	clean, err := t.GetColumnWithoutNaN(name)
	if err != nil {
		return Summary{}, err
	}

	x := clean.Floats()
	s := Summary{
		Name:  name,
		Count: len(x),
		NaN:   c.Len() - len(x),
		Mean:  math.NaN(),
		Std:   math.NaN(),
		Min:   math.NaN(),
		Max:   math.NaN(),
	}
	if len(x) == 0 {
		return s, nil
	}
	s.Min = floats.Min(x)
	s.Max = floats.Max(x)
	if len(x) == 1 {
		s.Mean = x[0]
		return s, nil
	}
	s.Mean, s.Std = stat.MeanStdDev(x, nil)
	return s, nil
}

// MarshalJSON encodes the statistics with NaN as null.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
		NaN   int    `json:"nan"`
		Mean  Value  `json:"mean"`
		Std   Value  `json:"std"`
		Min   Value  `json:"min"`
		Max   Value  `json:"max"`
	}{s.Name, s.Count, s.NaN, FloatValue(s.Mean), FloatValue(s.Std), FloatValue(s.Min), FloatValue(s.Max)})
}

// FloatColumns returns the names of the float columns in table order.
func (t *Table) FloatColumns() []string {
	var out []string
	for _, name := range t.order {
		if t.cols[name].kind == Float {
			out = append(out, name)
		}
	}
	return out
}
