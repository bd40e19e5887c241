package catalog

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/exoplaneteu/exoplaneteu/pkg/errors"
	"github.com/exoplaneteu/exoplaneteu/pkg/table"
)

// commentedNameLabel is how the first header label arrives: the catalog
// export prefixes its header line with a comment marker.
const commentedNameLabel = "# name"

// Parser turns the catalog CSV into a [table.Table].
type Parser struct {
	// FloatColumns are converted to float64; empty cells become NaN.
	// Columns listed here but absent from the header are skipped.
	FloatColumns []string

	// Logger receives the column/row summary. Nil discards it.
	Logger *log.Logger
}

// Parse reads a catalog with the default float columns and no logging.
func Parse(r io.Reader) (*table.Table, error) {
	p := Parser{FloatColumns: floatColumns}
	return p.parse(r, "catalog")
}

// ParseFile reads the catalog stored at path.
func (p *Parser) ParseFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeArtifactNotFound, err, "no cached catalog at %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return p.parse(f, filepath.Base(path))
}

// Parse reads a catalog from r.
func (p *Parser) Parse(r io.Reader) (*table.Table, error) {
	return p.parse(r, "catalog")
}

func (p *Parser) parse(r io.Reader, source string) (*table.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s is empty: no header row", source)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read header of %s", source)
	}

	labels := make([]string, len(header))
	copy(labels, header)
	labels[0] = strings.TrimPrefix(labels[0], "\ufeff")
	if labels[0] == commentedNameLabel {
		labels[0] = table.NameColumn
	}

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "duplicate column %q in %s", l, source)
		}
		index[l] = i
	}
	if _, ok := index[table.NameColumn]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s has no %q column", source, table.NameColumn)
	}

	// Labels come from the header line, so a header without data rows
	// still yields every column.
	cells := make([][]string, len(labels))
	rows := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read %s", source)
		}
		for i, v := range rec {
			cells[i] = append(cells[i], v)
		}
		rows++
	}

	isFloat := make(map[string]bool, len(p.FloatColumns))
	for _, name := range p.FloatColumns {
		isFloat[name] = true
	}

	cols := make([]table.Column, len(labels))
	for i, l := range labels {
		if !isFloat[l] {
			cols[i] = table.NewTextColumn(l, cells[i])
			continue
		}
		values, err := parseFloats(l, cells[i])
		if err != nil {
			return nil, err
		}
		cols[i] = table.NewFloatColumn(l, values)
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "build table from %s", source)
	}

	if p.Logger != nil {
		p.Logger.Infof("There are %d columns with %d entries each in `%s`", len(labels), rows, source)
	}
	return t, nil
}

// parseFloats converts a column: "" becomes NaN, anything else must parse
// as a float.
func parseFloats(column string, raw []string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, v := range raw {
		if v == "" {
			out[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidValue, err,
				"column %q row %d: %q is not a number", column, i, v)
		}
		out[i] = f
	}
	return out, nil
}
