package table

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Row is one catalog entry: every column name paired with that column's
// value at a given index, in column order.
type Row struct {
	names  []string
	values []Value
}

// Names returns the column names in table order.
func (r Row) Names() []string { return r.names }

// Values returns the cells in table order.
func (r Row) Values() []Value { return r.values }

// Len returns the number of cells.
func (r Row) Len() int { return len(r.names) }

// Get returns the cell for column name.
func (r Row) Get(name string) (Value, bool) {
	for i, n := range r.names {
		if n == name {
			return r.values[i], true
		}
	}
	return Value{}, false
}

// Map returns the row as an unordered map.
func (r Row) Map() map[string]Value {
	m := make(map[string]Value, len(r.names))
	for i, n := range r.names {
		m[n] = r.values[i]
	}
	return m
}

// MarshalJSON encodes the row as a JSON object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		val, err := r.values[i].MarshalJSON()
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

// MarshalYAML encodes the row as a YAML mapping with keys in column order.
func (r Row) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, n := range r.names {
		var key, val yaml.Node
		if err := key.Encode(n); err != nil {
			return nil, err
		}
		v, _ := r.values[i].MarshalYAML()
		if err := val.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}
